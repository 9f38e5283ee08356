package store

import (
	"context"
	"sync"
	"time"

	"workshop-genie/internal/model"
)

var timeNow = time.Now

// Memory 是預設的行程內儲存。三張表各自以 1 起算的流水號作為 id，
// 沒有刪除操作，所以依 id 遞增走訪即為插入順序。
type Memory struct {
	mu sync.RWMutex

	users     map[int]model.User
	workshops map[int]model.Workshop
	bookings  map[int]model.Booking

	nextUserID     int
	nextWorkshopID int
	nextBookingID  int
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users:          make(map[int]model.User),
		workshops:      make(map[int]model.Workshop),
		bookings:       make(map[int]model.Booking),
		nextUserID:     1,
		nextWorkshopID: 1,
		nextBookingID:  1,
	}
}

/* ---------- users ---------- */

func (m *Memory) GetUser(_ context.Context, id int) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	return m.findUser(func(u model.User) bool { return u.Username == username }), nil
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return m.findUser(func(u model.User) bool { return u.Email == email }), nil
}

func (m *Memory) findUser(match func(model.User) bool) *model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id := 1; id < m.nextUserID; id++ {
		if u, ok := m.users[id]; ok && match(u) {
			return &u
		}
	}
	return nil
}

func (m *Memory) CreateUser(_ context.Context, in model.InsertUser) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := model.User{
		ID:       m.nextUserID,
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
	}
	m.users[u.ID] = u
	m.nextUserID++
	return &u, nil
}

/* ---------- workshops ---------- */

func (m *Memory) GetWorkshops(_ context.Context) ([]model.Workshop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.workshopsLocked(), nil
}

func (m *Memory) workshopsLocked() []model.Workshop {
	out := make([]model.Workshop, 0, len(m.workshops))
	for id := 1; id < m.nextWorkshopID; id++ {
		if w, ok := m.workshops[id]; ok {
			out = append(out, cloneWorkshop(w))
		}
	}
	return out
}

func (m *Memory) GetWorkshop(_ context.Context, id int) (*model.Workshop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.workshops[id]
	if !ok {
		return nil, nil
	}
	w = cloneWorkshop(w)
	return &w, nil
}

func (m *Memory) GetWorkshopsByCategory(ctx context.Context, category string) ([]model.Workshop, error) {
	ws, _ := m.GetWorkshops(ctx)
	return byCategory(ws, category), nil
}

func (m *Memory) GetWorkshopsByLocation(ctx context.Context, location string) ([]model.Workshop, error) {
	ws, _ := m.GetWorkshops(ctx)
	return byLocation(ws, location), nil
}

func (m *Memory) SearchWorkshops(ctx context.Context, f model.WorkshopFilter) ([]model.Workshop, error) {
	ws, _ := m.GetWorkshops(ctx)
	return searchIn(ws, f), nil
}

func (m *Memory) CreateWorkshop(_ context.Context, in model.InsertWorkshop) (*model.Workshop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := model.Workshop{
		ID:          m.nextWorkshopID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Instructor:  in.Instructor,
		Location:    in.Location,
		Date:        in.Date,
		Time:        in.Time,
		Duration:    in.Duration,
		Price:       in.Price,
		Capacity:    in.Capacity,
		Enrolled:    0,
		Image:       in.Image,
		Rating:      in.Rating,
		Tags:        append([]string(nil), in.Tags...),
	}
	m.workshops[w.ID] = w
	m.nextWorkshopID++
	w = cloneWorkshop(w)
	return &w, nil
}

func (m *Memory) UpdateWorkshopEnrollment(_ context.Context, id, enrolled int) (*model.Workshop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.workshops[id]
	if !ok {
		return nil, nil
	}
	w.Enrolled = enrolled
	m.workshops[id] = w
	w = cloneWorkshop(w)
	return &w, nil
}

/* ---------- bookings ---------- */

func (m *Memory) GetBooking(_ context.Context, id int) (*model.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	b = cloneBooking(b)
	return &b, nil
}

func (m *Memory) GetBookingsByUser(_ context.Context, userID int) ([]model.Booking, error) {
	return m.findBookings(func(b model.Booking) bool { return b.UserID == userID }), nil
}

func (m *Memory) GetBookingsByWorkshop(_ context.Context, workshopID int) ([]model.Booking, error) {
	return m.findBookings(func(b model.Booking) bool { return b.WorkshopID == workshopID }), nil
}

func (m *Memory) findBookings(match func(model.Booking) bool) []model.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Booking, 0)
	for id := 1; id < m.nextBookingID; id++ {
		if b, ok := m.bookings[id]; ok && match(b) {
			out = append(out, cloneBooking(b))
		}
	}
	return out
}

// CreateBooking 不檢查容量也不驗證 user/workshop 是否存在；
// workshop 存在時 enrolled 加一，與新增預約在同一把鎖內完成。
func (m *Memory) CreateBooking(_ context.Context, in model.InsertBooking) (*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := model.Booking{
		ID:               m.nextBookingID,
		UserID:           in.UserID,
		WorkshopID:       in.WorkshopID,
		BookingDate:      timeNow().UTC(),
		Status:           model.BookingStatusConfirmed,
		ParticipantName:  in.ParticipantName,
		ParticipantEmail: in.ParticipantEmail,
		ParticipantPhone: blankToNil(in.ParticipantPhone),
		SpecialRequests:  blankToNil(in.SpecialRequests),
	}
	m.bookings[b.ID] = b
	m.nextBookingID++

	if w, ok := m.workshops[in.WorkshopID]; ok {
		w.Enrolled++
		m.workshops[w.ID] = w
	}
	b = cloneBooking(b)
	return &b, nil
}

func (m *Memory) UpdateBookingStatus(_ context.Context, id int, status string) (*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	b.Status = status
	m.bookings[id] = b
	b = cloneBooking(b)
	return &b, nil
}

/* ---------- helpers ---------- */

func cloneWorkshop(w model.Workshop) model.Workshop {
	w.Tags = append([]string{}, w.Tags...)
	return w
}

func cloneBooking(b model.Booking) model.Booking {
	b.ParticipantPhone = cloneString(b.ParticipantPhone)
	b.SpecialRequests = cloneString(b.SpecialRequests)
	return b
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
