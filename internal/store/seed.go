package store

import (
	"context"
	"fmt"

	"workshop-genie/internal/model"
)

// SampleWorkshops returns the demo catalogue.
func SampleWorkshops() []model.InsertWorkshop {
	return []model.InsertWorkshop{
		{
			Title:       "Digital Marketing Mastery",
			Description: "Learn the fundamentals of digital marketing including SEO, social media, and content marketing strategies.",
			Category:    "Marketing",
			Instructor:  "Sarah Johnson",
			Location:    "New York",
			Date:        "2025-01-15",
			Time:        "10:00 AM",
			Duration:    "3 hours",
			Price:       "299.00",
			Capacity:    25,
			Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400",
			Rating:      "4.8",
			Tags:        []string{"SEO", "Social Media", "Content Marketing"},
		},
		{
			Title:       "React Development Bootcamp",
			Description: "Intensive hands-on workshop covering React fundamentals, hooks, and modern development practices.",
			Category:    "Technology",
			Instructor:  "Mike Chen",
			Location:    "San Francisco",
			Date:        "2025-01-20",
			Time:        "9:00 AM",
			Duration:    "6 hours",
			Price:       "450.00",
			Capacity:    20,
			Image:       "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=400",
			Rating:      "4.9",
			Tags:        []string{"React", "JavaScript", "Frontend"},
		},
		{
			Title:       "Entrepreneurship Fundamentals",
			Description: "Essential skills for starting and running a successful business, including business planning and funding strategies.",
			Category:    "Business",
			Instructor:  "David Rodriguez",
			Location:    "Austin",
			Date:        "2025-01-25",
			Time:        "1:00 PM",
			Duration:    "4 hours",
			Price:       "350.00",
			Capacity:    30,
			Image:       "https://images.unsplash.com/photo-1556761175-b413da4baf72?w=400",
			Rating:      "4.7",
			Tags:        []string{"Business Planning", "Funding", "Startups"},
		},
		{
			Title:       "Creative Writing Workshop",
			Description: "Explore creative writing techniques, develop your unique voice, and craft compelling narratives.",
			Category:    "Arts",
			Instructor:  "Emily Watson",
			Location:    "Seattle",
			Date:        "2025-02-01",
			Time:        "2:00 PM",
			Duration:    "3 hours",
			Price:       "180.00",
			Capacity:    15,
			Image:       "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=400",
			Rating:      "4.6",
			Tags:        []string{"Writing", "Creativity", "Storytelling"},
		},
		{
			Title:       "Data Science with Python",
			Description: "Learn data analysis, visualization, and machine learning fundamentals using Python and popular libraries.",
			Category:    "Technology",
			Instructor:  "Dr. Alex Kumar",
			Location:    "Boston",
			Date:        "2025-02-05",
			Time:        "10:00 AM",
			Duration:    "8 hours",
			Price:       "500.00",
			Capacity:    18,
			Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400",
			Rating:      "4.9",
			Tags:        []string{"Python", "Data Science", "Machine Learning"},
		},
		{
			Title:       "Photography Masterclass",
			Description: "Master the art of photography with professional techniques for composition, lighting, and post-processing.",
			Category:    "Arts",
			Instructor:  "Maria Lopez",
			Location:    "Los Angeles",
			Date:        "2025-02-10",
			Time:        "11:00 AM",
			Duration:    "5 hours",
			Price:       "380.00",
			Capacity:    12,
			Image:       "https://images.unsplash.com/photo-1606983340126-99ab4feaa64a?w=400",
			Rating:      "4.8",
			Tags:        []string{"Photography", "Composition", "Editing"},
		},
	}
}

// Seed inserts SampleWorkshops when the catalogue is empty and returns how many were created.
func Seed(ctx context.Context, s Store) (int, error) {
	existing, err := s.GetWorkshops(ctx)
	if err != nil {
		return 0, fmt.Errorf("Seed: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	n := 0
	for _, in := range SampleWorkshops() {
		if _, err := s.CreateWorkshop(ctx, in); err != nil {
			return n, fmt.Errorf("Seed: %w", err)
		}
		n++
	}
	return n, nil
}
