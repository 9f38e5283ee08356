package bookings

import (
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/handler"
	"workshop-genie/internal/store"

	"github.com/labstack/echo/v4"
)

// UpdateStatusHandler 修改預約狀態（管理端）。任何非空字串皆可，
// 取消預約不會釋出名額。
// @Summary     Update booking status
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       id   path     int                            true "Booking ID"
// @Param       body body     api.UpdateBookingStatusRequest true "New status"
// @Success     200  {object} model.Booking
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    AdminKey
// @Router      /bookings/{id}/status [patch]
func UpdateStatusHandler(s store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c, "id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		}
		var req api.UpdateBookingStatusRequest
		if verr := handler.BindAndValidate(c, &req); verr != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid status data", Details: verr.Issues})
		}
		b, err := s.UpdateBookingStatus(c.Request().Context(), id, req.Status)
		if err != nil {
			c.Logger().Errorf("update booking %d status: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update booking"})
		}
		if b == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		}
		return c.JSON(http.StatusOK, b)
	}
}
