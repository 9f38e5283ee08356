package store

import (
	"context"

	"workshop-genie/internal/model"
)

// FakeStore 供 handler 與 service 測試使用；未設定的方法被呼叫時 panic
type FakeStore struct {
	GetUserFn                  func(ctx context.Context, id int) (*model.User, error)
	GetUserByUsernameFn        func(ctx context.Context, username string) (*model.User, error)
	GetUserByEmailFn           func(ctx context.Context, email string) (*model.User, error)
	CreateUserFn               func(ctx context.Context, in model.InsertUser) (*model.User, error)
	GetWorkshopsFn             func(ctx context.Context) ([]model.Workshop, error)
	GetWorkshopFn              func(ctx context.Context, id int) (*model.Workshop, error)
	GetWorkshopsByCategoryFn   func(ctx context.Context, category string) ([]model.Workshop, error)
	GetWorkshopsByLocationFn   func(ctx context.Context, location string) ([]model.Workshop, error)
	SearchWorkshopsFn          func(ctx context.Context, f model.WorkshopFilter) ([]model.Workshop, error)
	CreateWorkshopFn           func(ctx context.Context, in model.InsertWorkshop) (*model.Workshop, error)
	UpdateWorkshopEnrollmentFn func(ctx context.Context, id, enrolled int) (*model.Workshop, error)
	GetBookingFn               func(ctx context.Context, id int) (*model.Booking, error)
	GetBookingsByUserFn        func(ctx context.Context, userID int) ([]model.Booking, error)
	GetBookingsByWorkshopFn    func(ctx context.Context, workshopID int) ([]model.Booking, error)
	CreateBookingFn            func(ctx context.Context, in model.InsertBooking) (*model.Booking, error)
	UpdateBookingStatusFn      func(ctx context.Context, id int, status string) (*model.Booking, error)
}

var _ Store = (*FakeStore)(nil)

func (f *FakeStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	if f.GetUserFn != nil {
		return f.GetUserFn(ctx, id)
	}
	panic("unexpected GetUser")
}

func (f *FakeStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.GetUserByUsernameFn != nil {
		return f.GetUserByUsernameFn(ctx, username)
	}
	panic("unexpected GetUserByUsername")
}

func (f *FakeStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.GetUserByEmailFn != nil {
		return f.GetUserByEmailFn(ctx, email)
	}
	panic("unexpected GetUserByEmail")
}

func (f *FakeStore) CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error) {
	if f.CreateUserFn != nil {
		return f.CreateUserFn(ctx, in)
	}
	panic("unexpected CreateUser")
}

func (f *FakeStore) GetWorkshops(ctx context.Context) ([]model.Workshop, error) {
	if f.GetWorkshopsFn != nil {
		return f.GetWorkshopsFn(ctx)
	}
	panic("unexpected GetWorkshops")
}

func (f *FakeStore) GetWorkshop(ctx context.Context, id int) (*model.Workshop, error) {
	if f.GetWorkshopFn != nil {
		return f.GetWorkshopFn(ctx, id)
	}
	panic("unexpected GetWorkshop")
}

func (f *FakeStore) GetWorkshopsByCategory(ctx context.Context, category string) ([]model.Workshop, error) {
	if f.GetWorkshopsByCategoryFn != nil {
		return f.GetWorkshopsByCategoryFn(ctx, category)
	}
	panic("unexpected GetWorkshopsByCategory")
}

func (f *FakeStore) GetWorkshopsByLocation(ctx context.Context, location string) ([]model.Workshop, error) {
	if f.GetWorkshopsByLocationFn != nil {
		return f.GetWorkshopsByLocationFn(ctx, location)
	}
	panic("unexpected GetWorkshopsByLocation")
}

func (f *FakeStore) SearchWorkshops(ctx context.Context, filter model.WorkshopFilter) ([]model.Workshop, error) {
	if f.SearchWorkshopsFn != nil {
		return f.SearchWorkshopsFn(ctx, filter)
	}
	panic("unexpected SearchWorkshops")
}

func (f *FakeStore) CreateWorkshop(ctx context.Context, in model.InsertWorkshop) (*model.Workshop, error) {
	if f.CreateWorkshopFn != nil {
		return f.CreateWorkshopFn(ctx, in)
	}
	panic("unexpected CreateWorkshop")
}

func (f *FakeStore) UpdateWorkshopEnrollment(ctx context.Context, id, enrolled int) (*model.Workshop, error) {
	if f.UpdateWorkshopEnrollmentFn != nil {
		return f.UpdateWorkshopEnrollmentFn(ctx, id, enrolled)
	}
	panic("unexpected UpdateWorkshopEnrollment")
}

func (f *FakeStore) GetBooking(ctx context.Context, id int) (*model.Booking, error) {
	if f.GetBookingFn != nil {
		return f.GetBookingFn(ctx, id)
	}
	panic("unexpected GetBooking")
}

func (f *FakeStore) GetBookingsByUser(ctx context.Context, userID int) ([]model.Booking, error) {
	if f.GetBookingsByUserFn != nil {
		return f.GetBookingsByUserFn(ctx, userID)
	}
	panic("unexpected GetBookingsByUser")
}

func (f *FakeStore) GetBookingsByWorkshop(ctx context.Context, workshopID int) ([]model.Booking, error) {
	if f.GetBookingsByWorkshopFn != nil {
		return f.GetBookingsByWorkshopFn(ctx, workshopID)
	}
	panic("unexpected GetBookingsByWorkshop")
}

func (f *FakeStore) CreateBooking(ctx context.Context, in model.InsertBooking) (*model.Booking, error) {
	if f.CreateBookingFn != nil {
		return f.CreateBookingFn(ctx, in)
	}
	panic("unexpected CreateBooking")
}

func (f *FakeStore) UpdateBookingStatus(ctx context.Context, id int, status string) (*model.Booking, error) {
	if f.UpdateBookingStatusFn != nil {
		return f.UpdateBookingStatusFn(ctx, id, status)
	}
	panic("unexpected UpdateBookingStatus")
}
