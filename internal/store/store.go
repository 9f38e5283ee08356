// Package store holds the storage service: the Store contract and its
// in-memory, PostgreSQL and Redis-cached implementations.
package store

import (
	"context"
	"errors"

	"workshop-genie/internal/model"
)

var (
	// ErrDuplicateUser is returned by backends that enforce unique username/email.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrWorkshopFull is returned by backends that refuse to book past capacity.
	ErrWorkshopFull = errors.New("workshop is fully booked")
)

// Store is the storage service. Lookups by id or key return (nil, nil) when
// nothing matches; absence is never an error. List results keep insertion order.
type Store interface {
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// CreateUser assigns the next id. Uniqueness is checked by the caller.
	CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error)

	GetWorkshops(ctx context.Context) ([]model.Workshop, error)
	GetWorkshop(ctx context.Context, id int) (*model.Workshop, error)
	GetWorkshopsByCategory(ctx context.Context, category string) ([]model.Workshop, error)
	GetWorkshopsByLocation(ctx context.Context, location string) ([]model.Workshop, error)
	SearchWorkshops(ctx context.Context, f model.WorkshopFilter) ([]model.Workshop, error)
	// CreateWorkshop assigns the next id and starts enrolled at 0.
	CreateWorkshop(ctx context.Context, in model.InsertWorkshop) (*model.Workshop, error)
	// UpdateWorkshopEnrollment overwrites enrolled without a capacity check.
	UpdateWorkshopEnrollment(ctx context.Context, id, enrolled int) (*model.Workshop, error)

	GetBooking(ctx context.Context, id int) (*model.Booking, error)
	GetBookingsByUser(ctx context.Context, userID int) ([]model.Booking, error)
	GetBookingsByWorkshop(ctx context.Context, workshopID int) ([]model.Booking, error)
	// CreateBooking stores a confirmed booking dated now and increments the
	// referenced workshop's enrolled count by one. Memory stores unconditionally
	// and only bumps enrolled when the workshop exists; Postgres refuses with
	// ErrWorkshopFull, storing nothing, when the workshop is full or missing.
	// Callers check the workshop and its capacity first.
	CreateBooking(ctx context.Context, in model.InsertBooking) (*model.Booking, error)
	// UpdateBookingStatus overwrites status; any value is accepted.
	UpdateBookingStatus(ctx context.Context, id int, status string) (*model.Booking, error)
}
