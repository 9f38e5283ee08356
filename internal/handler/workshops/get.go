package workshops

import (
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/handler"
	"workshop-genie/internal/store"

	"github.com/labstack/echo/v4"
)

// GetHandler 取得單一 workshop
// @Summary     Get a workshop
// @Tags        workshops
// @Produce     json
// @Param       id  path     int true "Workshop ID"
// @Success     200 {object} model.Workshop
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /workshops/{id} [get]
func GetHandler(s store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c, "id")
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid workshop ID"})
		}
		w, err := s.GetWorkshop(c.Request().Context(), id)
		if err != nil {
			c.Logger().Errorf("get workshop %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch workshop"})
		}
		if w == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Workshop not found"})
		}
		return c.JSON(http.StatusOK, w)
	}
}
