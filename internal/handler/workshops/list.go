package workshops

import (
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"workshop-genie/internal/api"
	"workshop-genie/internal/model"
	"workshop-genie/internal/store"

	"github.com/labstack/echo/v4"
)

// leadingNumber 取出字串開頭的十進位數字，"300usd" 視為 300
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ListHandler 列出或搜尋 workshop
// @Summary     List workshops
// @Description 任一篩選參數非空時進行搜尋（AND 條件），否則回傳全部 workshop
// @Tags        workshops
// @Produce     json
// @Param       category query string false "類別（不分大小寫，完全相符）"
// @Param       location query string false "地點（不分大小寫，包含即可）"
// @Param       priceMin query number false "最低價格（含）"
// @Param       priceMax query number false "最高價格（含）"
// @Success     200 {array}  model.Workshop
// @Failure     500 {object} api.ErrorResponse
// @Router      /workshops [get]
func ListHandler(s store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		filter, searching := filterFromQuery(c)

		var (
			ws  []model.Workshop
			err error
		)
		if searching {
			ws, err = s.SearchWorkshops(ctx, filter)
		} else {
			ws, err = s.GetWorkshops(ctx)
		}
		if err != nil {
			c.Logger().Errorf("list workshops: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch workshops"})
		}
		if ws == nil {
			ws = []model.Workshop{}
		}
		return c.JSON(http.StatusOK, ws)
	}
}

// filterFromQuery 回傳篩選條件，以及是否有任一參數非空
func filterFromQuery(c echo.Context) (model.WorkshopFilter, bool) {
	category := c.QueryParam("category")
	location := c.QueryParam("location")
	priceMin := c.QueryParam("priceMin")
	priceMax := c.QueryParam("priceMax")

	f := model.WorkshopFilter{Category: category, Location: location}
	if priceMin != "" {
		v := parsePrice(priceMin)
		f.PriceMin = &v
	}
	if priceMax != "" {
		v := parsePrice(priceMax)
		f.PriceMax = &v
	}
	return f, category != "" || location != "" || priceMin != "" || priceMax != ""
}

// parsePrice 解析開頭的數字；無法解析時回傳 NaN，任何價格都不符合
func parsePrice(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
