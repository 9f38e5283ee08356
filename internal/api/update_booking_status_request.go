package api

// swagger:model api.UpdateBookingStatusRequest
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required" example:"cancelled"`
}
