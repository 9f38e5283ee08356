package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"workshop-genie/internal/model"
	"workshop-genie/internal/store"
)

var (
	ErrWorkshopNotFound = errors.New("workshop not found")
	ErrWorkshopFull     = errors.New("workshop is fully booked")
)

const lockStripes = 64

// Bookings 負責「檢查容量→建立預約」。同一 workshop 的預約在行程內依序執行，
// 因此 enrolled 不會超過 capacity。
type Bookings struct {
	store store.Store
	locks [lockStripes]sync.Mutex
}

func NewBookings(s store.Store) *Bookings {
	return &Bookings{store: s}
}

func (b *Bookings) lockFor(workshopID int) *sync.Mutex {
	i := workshopID % lockStripes
	if i < 0 {
		i = -i
	}
	return &b.locks[i]
}

// Book 依序：查 workshop（不存在 ErrWorkshopNotFound）→ 已滿 ErrWorkshopFull → 建立預約
func (b *Bookings) Book(ctx context.Context, in model.InsertBooking) (*model.Booking, error) {
	mu := b.lockFor(in.WorkshopID)
	mu.Lock()
	defer mu.Unlock()

	w, err := b.store.GetWorkshop(ctx, in.WorkshopID)
	if err != nil {
		return nil, fmt.Errorf("Book: %w", err)
	}
	if w == nil {
		return nil, ErrWorkshopNotFound
	}
	if w.IsFull() {
		return nil, ErrWorkshopFull
	}

	booking, err := b.store.CreateBooking(ctx, in)
	if err != nil {
		if errors.Is(err, store.ErrWorkshopFull) {
			return nil, ErrWorkshopFull
		}
		return nil, fmt.Errorf("Book: %w", err)
	}
	return booking, nil
}
