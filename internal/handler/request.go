package handler

import (
	"errors"
	"strconv"

	"workshop-genie/internal/validation"

	"github.com/labstack/echo/v4"
)

// BindAndValidate 解析 JSON 本體並驗證；型別錯誤與欄位錯誤都以 *validation.Error 回傳
func BindAndValidate(c echo.Context, req interface{}) *validation.Error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Internal != nil {
			err = he.Internal
		}
		return validation.FromDecodeError(err)
	}
	if err := c.Validate(req); err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			return ve
		}
		return &validation.Error{Issues: []validation.Issue{{Field: validation.RootField, Message: err.Error()}}}
	}
	return nil
}

// ParseID 讀取整數路徑參數；超出資料庫 INTEGER 範圍的值視為無效
func ParseID(c echo.Context, name string) (int, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}
