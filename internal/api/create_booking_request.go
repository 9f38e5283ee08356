package api

import (
	"strings"

	"workshop-genie/internal/model"
)

// CreateBookingRequest 預約的 insert 形狀；userId / workshopId 以指標區分「未提供」與 0，
// 範圍限於資料庫 INTEGER
// swagger:model api.CreateBookingRequest
type CreateBookingRequest struct {
	UserID           *int    `json:"userId" validate:"required,gte=-2147483648,lte=2147483647" example:"1"`
	WorkshopID       *int    `json:"workshopId" validate:"required,gte=-2147483648,lte=2147483647" example:"3"`
	ParticipantName  string  `json:"participantName" validate:"required" example:"Alice Chen"`
	ParticipantEmail string  `json:"participantEmail" validate:"required,email" example:"alice@example.com"`
	ParticipantPhone *string `json:"participantPhone,omitempty" example:"+1 555 0100"`
	SpecialRequests  *string `json:"specialRequests,omitempty" example:"Vegetarian lunch"`
}

// ToInsert must only be called after validation succeeded.
func (r CreateBookingRequest) ToInsert() model.InsertBooking {
	return model.InsertBooking{
		UserID:           *r.UserID,
		WorkshopID:       *r.WorkshopID,
		ParticipantName:  r.ParticipantName,
		ParticipantEmail: r.ParticipantEmail,
		ParticipantPhone: optional(r.ParticipantPhone),
		SpecialRequests:  optional(r.SpecialRequests),
	}
}

// optional maps blank strings to "no value".
func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
