package bookings

import (
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/handler"
	"workshop-genie/internal/store"

	"github.com/labstack/echo/v4"
)

// GetHandler 取得單一預約
// @Summary     Get a booking
// @Tags        bookings
// @Produce     json
// @Param       id  path     int true "Booking ID"
// @Success     200 {object} model.Booking
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /bookings/{id} [get]
func GetHandler(s store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c, "id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		}
		b, err := s.GetBooking(c.Request().Context(), id)
		if err != nil {
			c.Logger().Errorf("get booking %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch booking"})
		}
		if b == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		}
		return c.JSON(http.StatusOK, b)
	}
}
