package bookings

import (
	"context"
	"errors"
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/handler"
	"workshop-genie/internal/model"
	"workshop-genie/internal/service"

	"github.com/labstack/echo/v4"
)

// Booker 是 *service.Bookings 提供給 handler 的行為
type Booker interface {
	Book(ctx context.Context, in model.InsertBooking) (*model.Booking, error)
}

// CreateHandler 建立預約
// @Summary     Book a workshop
// @Description 驗證資料後檢查容量，成功時 workshop 的 enrolled 加一
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateBookingRequest true "Booking"
// @Success     201  {object} model.Booking
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /bookings [post]
func CreateHandler(b Booker) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateBookingRequest
		if verr := handler.BindAndValidate(c, &req); verr != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking data", Details: verr.Issues})
		}

		booking, err := b.Book(c.Request().Context(), req.ToInsert())
		switch {
		case errors.Is(err, service.ErrWorkshopNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Workshop not found"})
		case errors.Is(err, service.ErrWorkshopFull):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Workshop is fully booked"})
		case err != nil:
			c.Logger().Errorf("create booking: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		}
		return c.JSON(http.StatusCreated, booking)
	}
}
