package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and satisfies echo.Validator.
// Failures are returned as *Error with JSON field paths.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	// 自訂規則名稱固定，註冊失敗只會是程式錯誤
	if err := v.RegisterValidation("decimal", isDecimal); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("rating", isRating); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("maxbytes", hasMaxBytes); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

// Validate checks i against its `validate` tags.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{Field: fieldPath(fe), Message: message(fe)})
	}
	return &Error{Issues: issues}
}

// fieldPath drops the struct name from the namespace: "CreateBookingRequest.userId" -> "userId".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "url":
		return "Invalid url"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "min":
		return fmt.Sprintf("Must contain at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("Must contain at most %s character(s)", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("Must be at most %s bytes long", fe.Param())
	case "decimal":
		return "Must be a non-negative decimal number"
	case "rating":
		return "Must be a decimal between 0 and 5"
	}
	return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
}

// parseDecimal 不接受前後空白，存入的字串必須能被原樣解析
func parseDecimal(s string) (float64, bool) {
	if s != strings.TrimSpace(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func isDecimal(fl validator.FieldLevel) bool {
	v, ok := parseDecimal(fl.Field().String())
	return ok && v >= 0
}

func isRating(fl validator.FieldLevel) bool {
	v, ok := parseDecimal(fl.Field().String())
	return ok && v >= 0 && v <= 5
}

// hasMaxBytes 以位元組計算長度；validator 的 max 計算的是 rune
func hasMaxBytes(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("maxbytes: bad param %q", fl.Param()))
	}
	return len(fl.Field().String()) <= n
}
