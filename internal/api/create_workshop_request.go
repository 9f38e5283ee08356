package api

import "workshop-genie/internal/model"

// swagger:model api.CreateWorkshopRequest
type CreateWorkshopRequest struct {
	Title       string   `json:"title" validate:"required" example:"Digital Marketing Mastery"`
	Description string   `json:"description" validate:"required" example:"SEO, social media and content marketing."`
	Category    string   `json:"category" validate:"required" example:"Marketing"`
	Instructor  string   `json:"instructor" validate:"required" example:"Sarah Johnson"`
	Location    string   `json:"location" validate:"required" example:"New York"`
	Date        string   `json:"date" validate:"required" example:"2025-01-15"`
	Time        string   `json:"time" validate:"required" example:"10:00 AM"`
	Duration    string   `json:"duration" validate:"required" example:"3 hours"`
	Price       string   `json:"price" validate:"required,decimal" example:"299.00"`
	Capacity    int      `json:"capacity" validate:"gt=0" example:"25"`
	Image       string   `json:"image" validate:"required,url" example:"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400"`
	Rating      string   `json:"rating" validate:"required,rating" example:"4.8"`
	Tags        []string `json:"tags" validate:"required,dive,required" example:"SEO,Social Media"`
}

func (r CreateWorkshopRequest) ToInsert() model.InsertWorkshop {
	tags := make([]string, len(r.Tags))
	copy(tags, r.Tags)
	return model.InsertWorkshop{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Instructor:  r.Instructor,
		Location:    r.Location,
		Date:        r.Date,
		Time:        r.Time,
		Duration:    r.Duration,
		Price:       r.Price,
		Capacity:    r.Capacity,
		Image:       r.Image,
		Rating:      r.Rating,
		Tags:        tags,
	}
}
