package model

import "time"

// Booking status values. Only BookingStatusConfirmed is produced by creation;
// UpdateBookingStatus accepts any string.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID               int       `db:"id" json:"id"`
	UserID           int       `db:"user_id" json:"userId"`
	WorkshopID       int       `db:"workshop_id" json:"workshopId"`
	BookingDate      time.Time `db:"booking_date" json:"bookingDate"`
	Status           string    `db:"status" json:"status"`
	ParticipantName  string    `db:"participant_name" json:"participantName"`
	ParticipantEmail string    `db:"participant_email" json:"participantEmail"`
	ParticipantPhone *string   `db:"participant_phone" json:"participantPhone"`
	SpecialRequests  *string   `db:"special_requests" json:"specialRequests"`
}

// InsertBooking omits id, bookingDate and status.
type InsertBooking struct {
	UserID           int
	WorkshopID       int
	ParticipantName  string
	ParticipantEmail string
	ParticipantPhone *string
	SpecialRequests  *string
}
