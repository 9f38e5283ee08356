package workshops

import (
	"net/http"

	"workshop-genie/internal/api"
	"workshop-genie/internal/handler"
	"workshop-genie/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateHandler 新增 workshop（管理端）
// @Summary     Create a workshop
// @Description enrolled 由伺服器設為 0
// @Tags        workshops
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateWorkshopRequest true "Workshop"
// @Success     201  {object} model.Workshop
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    AdminKey
// @Router      /workshops [post]
func CreateHandler(s store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateWorkshopRequest
		if verr := handler.BindAndValidate(c, &req); verr != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid workshop data", Details: verr.Issues})
		}
		w, err := s.CreateWorkshop(c.Request().Context(), req.ToInsert())
		if err != nil {
			c.Logger().Errorf("create workshop: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create workshop"})
		}
		return c.JSON(http.StatusCreated, w)
	}
}
