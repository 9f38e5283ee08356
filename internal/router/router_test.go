package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workshop-genie/internal/api"
	"workshop-genie/internal/middleware"
	"workshop-genie/internal/model"
	"workshop-genie/internal/service"
	"workshop-genie/internal/store"
	"workshop-genie/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, adminKey string) *echo.Echo {
	t.Helper()
	s := store.NewMemory()
	_, err := store.Seed(context.Background(), s)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	Setup(e, Deps{
		Store:       s,
		Accounts:    service.NewAccounts(s, service.PasswordPlain),
		Bookings:    service.NewBookings(s),
		AdminAPIKey: adminKey,
	})
	return e
}

func do(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSetupRoutes(t *testing.T) {
	e := newServer(t, "")

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/health",
		http.MethodGet + " /api/ping",
		http.MethodGet + " /api/workshops",
		http.MethodPost + " /api/workshops",
		http.MethodGet + " /api/workshops/:id",
		http.MethodGet + " /api/workshops/:id/bookings",
		http.MethodPost + " /api/bookings",
		http.MethodGet + " /api/bookings/:id",
		http.MethodPatch + " /api/bookings/:id/status",
		http.MethodPost + " /api/users",
		http.MethodGet + " /api/users/:id",
		http.MethodGet + " /api/users/:id/bookings",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /swagger/*",
	}
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestBookingFlow(t *testing.T) {
	e := newServer(t, "")

	rec := do(e, http.MethodPost, "/api/users", `{"username":"ann","email":"ann@example.com","password":"pw","name":"Ann"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodPost, "/api/auth/login", `{"email":"ann@example.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Photography Masterclass: 12 seats
	body := `{"userId":1,"workshopId":6,"participantName":"Ann","participantEmail":"ann@example.com"}`
	for i := 0; i < 12; i++ {
		rec = do(e, http.MethodPost, "/api/bookings", body, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec = do(e, http.MethodPost, "/api/bookings", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/workshops/6", "", nil)
	var w model.Workshop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &w))
	require.Equal(t, 12, w.Enrolled)

	rec = do(e, http.MethodGet, "/api/users/1/bookings", "", nil)
	var bs []model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bs))
	require.Len(t, bs, 12)

	rec = do(e, http.MethodGet, "/api/workshops/6/bookings", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bs))
	require.Len(t, bs, 12)
}

func TestAdminRoutes(t *testing.T) {
	body := `{"status":"cancelled"}`

	disabled := newServer(t, "")
	rec := do(disabled, http.MethodPatch, "/api/bookings/1/status", body, map[string]string{middleware.AdminKeyHeader: "x"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	e := newServer(t, "secret")
	rec = do(e, http.MethodPatch, "/api/bookings/1/status", body, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "missing admin key", resp.Error)

	rec = do(e, http.MethodPatch, "/api/bookings/1/status", body, map[string]string{middleware.AdminKeyHeader: "secret"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	e := newServer(t, "")
	rec := do(e, http.MethodGet, "/api/nothing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
