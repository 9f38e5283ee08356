package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// RootField 代表整個請求本體而非單一欄位
const RootField = "(root)"

// Issue 單一欄位的驗證問題
// swagger:model validation.Issue
type Issue struct {
	Field   string `json:"field" example:"participantEmail"`
	Message string `json:"message" example:"Required"`
}

// Error 一或多個欄位驗證失敗
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Field+": "+is.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FromDecodeError converts a JSON decoding failure into a structured Error so
// wrong primitive types are reported the same way as missing fields.
func FromDecodeError(err error) *Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = RootField
		}
		return &Error{Issues: []Issue{{
			Field:   field,
			Message: fmt.Sprintf("Expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value),
		}}}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &Error{Issues: []Issue{{Field: RootField, Message: "Malformed JSON"}}}
	}
	return &Error{Issues: []Issue{{Field: RootField, Message: "Invalid request body"}}}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return t.Kind().String()
}
