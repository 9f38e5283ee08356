package workshops

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workshop-genie/internal/api"
	"workshop-genie/internal/model"
	"workshop-genie/internal/store"
	"workshop-genie/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

func newCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func seededStore(t *testing.T) *store.Memory {
	t.Helper()
	s := store.NewMemory()
	_, err := store.Seed(context.Background(), s)
	require.NoError(t, err)
	return s
}

func decodeWorkshops(t *testing.T, rec *httptest.ResponseRecorder) []model.Workshop {
	t.Helper()
	var ws []model.Workshop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ws))
	return ws
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func prices(ws []model.Workshop) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Price)
	}
	return out
}

func TestListHandler(t *testing.T) {
	e := newEcho()

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"all", "", []string{"299.00", "450.00", "350.00", "180.00", "500.00", "380.00"}},
		{"price range", "?priceMin=300&priceMax=400", []string{"350.00", "380.00"}},
		{"category", "?category=technology", []string{"450.00", "500.00"}},
		{"location substring", "?location=angeles", []string{"380.00"}},
		{"blank params list everything", "?category=&location=", []string{"299.00", "450.00", "350.00", "180.00", "500.00", "380.00"}},
		{"unparseable bound", "?priceMin=cheap", []string{}},
		{"leading number", "?priceMax=200usd", []string{"180.00"}},
		{"and semantics", "?category=Arts&priceMin=200", []string{"380.00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, rec := newCtx(e, http.MethodGet, "/api/workshops"+tc.query, "")
			require.NoError(t, ListHandler(seededStore(t))(ctx))
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tc.want, prices(decodeWorkshops(t, rec)))
		})
	}

	t.Run("empty store renders array", func(t *testing.T) {
		fs := &store.FakeStore{
			GetWorkshopsFn: func(context.Context) ([]model.Workshop, error) { return nil, nil },
		}
		ctx, rec := newCtx(e, http.MethodGet, "/api/workshops", "")
		require.NoError(t, ListHandler(fs)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("search error", func(t *testing.T) {
		fs := &store.FakeStore{
			SearchWorkshopsFn: func(context.Context, model.WorkshopFilter) ([]model.Workshop, error) {
				return nil, errors.New("down")
			},
		}
		ctx, rec := newCtx(e, http.MethodGet, "/api/workshops?category=Arts", "")
		require.NoError(t, ListHandler(fs)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "Failed to fetch workshops", decodeError(t, rec).Error)
	})
}

func TestParsePrice(t *testing.T) {
	require.Equal(t, 300.0, parsePrice("300"))
	require.Equal(t, 12.5, parsePrice(" 12.5abc"))
	require.Equal(t, 0.5, parsePrice(".5"))
	require.Equal(t, -3.0, parsePrice("-3"))
	require.True(t, math.IsNaN(parsePrice("abc")))
	require.True(t, math.IsNaN(parsePrice("")))
}

func TestGetHandler(t *testing.T) {
	e := newEcho()
	s := seededStore(t)

	ctx, rec := newCtx(e, http.MethodGet, "/", "")
	require.NoError(t, GetHandler(s)(withID(ctx, "2")))
	require.Equal(t, http.StatusOK, rec.Code)
	var w model.Workshop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &w))
	require.Equal(t, "React Development Bootcamp", w.Title)
	require.Equal(t, []string{"React", "JavaScript", "Frontend"}, w.Tags)

	ctx, rec = newCtx(e, http.MethodGet, "/", "")
	require.NoError(t, GetHandler(s)(withID(ctx, "99")))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Workshop not found", decodeError(t, rec).Error)

	ctx, rec = newCtx(e, http.MethodGet, "/", "")
	require.NoError(t, GetHandler(s)(withID(ctx, "abc")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid workshop ID", decodeError(t, rec).Error)

	fs := &store.FakeStore{
		GetWorkshopFn: func(context.Context, int) (*model.Workshop, error) { return nil, errors.New("down") },
	}
	ctx, rec = newCtx(e, http.MethodGet, "/", "")
	require.NoError(t, GetHandler(fs)(withID(ctx, "1")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Failed to fetch workshop", decodeError(t, rec).Error)
}

const validWorkshop = `{
	"title": "Go Concurrency",
	"description": "Channels and goroutines.",
	"category": "Technology",
	"instructor": "Rob",
	"location": "Remote",
	"date": "2025-03-01",
	"time": "9:00 AM",
	"duration": "2 hours",
	"price": "120.00",
	"capacity": 10,
	"image": "https://example.com/go.png",
	"rating": "4.5",
	"tags": ["Go"]
}`

func TestCreateHandler(t *testing.T) {
	e := newEcho()

	t.Run("ok", func(t *testing.T) {
		s := seededStore(t)
		ctx, rec := newCtx(e, http.MethodPost, "/api/workshops", validWorkshop)
		require.NoError(t, CreateHandler(s)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)

		var w model.Workshop
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &w))
		require.Equal(t, 7, w.ID)
		require.Zero(t, w.Enrolled)
		require.Equal(t, "120.00", w.Price)
	})

	t.Run("invalid fields", func(t *testing.T) {
		body := strings.Replace(validWorkshop, `"capacity": 10`, `"capacity": 0`, 1)
		body = strings.Replace(body, `"price": "120.00"`, `"price": "-1"`, 1)
		ctx, rec := newCtx(e, http.MethodPost, "/api/workshops", body)
		require.NoError(t, CreateHandler(store.NewMemory())(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		require.Equal(t, "Invalid workshop data", resp.Error)
		fields := map[string]string{}
		for _, d := range resp.Details {
			fields[d.Field] = d.Message
		}
		require.Equal(t, "Must be a non-negative decimal number", fields["price"])
		require.Equal(t, "Must be greater than 0", fields["capacity"])
	})

	t.Run("padded price rejected", func(t *testing.T) {
		body := strings.Replace(validWorkshop, `"price": "120.00"`, `"price": " 120.00"`, 1)
		ctx, rec := newCtx(e, http.MethodPost, "/api/workshops", body)
		require.NoError(t, CreateHandler(store.NewMemory())(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, []validation.Issue{{Field: "price", Message: "Must be a non-negative decimal number"}}, decodeError(t, rec).Details)
	})

	t.Run("wrong type", func(t *testing.T) {
		body := strings.Replace(validWorkshop, `"capacity": 10`, `"capacity": "ten"`, 1)
		ctx, rec := newCtx(e, http.MethodPost, "/api/workshops", body)
		require.NoError(t, CreateHandler(store.NewMemory())(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		require.Len(t, resp.Details, 1)
		require.Equal(t, "capacity", resp.Details[0].Field)
		require.Equal(t, "Expected number, received string", resp.Details[0].Message)
	})

	t.Run("store error", func(t *testing.T) {
		fs := &store.FakeStore{
			CreateWorkshopFn: func(context.Context, model.InsertWorkshop) (*model.Workshop, error) {
				return nil, errors.New("down")
			},
		}
		ctx, rec := newCtx(e, http.MethodPost, "/api/workshops", validWorkshop)
		require.NoError(t, CreateHandler(fs)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestBookingsHandler(t *testing.T) {
	e := newEcho()
	s := seededStore(t)
	_, err := s.CreateBooking(context.Background(), model.InsertBooking{UserID: 1, WorkshopID: 3, ParticipantName: "Ann", ParticipantEmail: "ann@x.io"})
	require.NoError(t, err)

	ctx, rec := newCtx(e, http.MethodGet, "/", "")
	require.NoError(t, BookingsHandler(s)(withID(ctx, "3")))
	require.Equal(t, http.StatusOK, rec.Code)
	var bs []model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bs))
	require.Len(t, bs, 1)

	ctx, rec = newCtx(e, http.MethodGet, "/", "")
	require.NoError(t, BookingsHandler(s)(withID(ctx, "4")))
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	ctx, rec = newCtx(e, http.MethodGet, "/", "")
	require.NoError(t, BookingsHandler(s)(withID(ctx, "x")))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	fs := &store.FakeStore{
		GetBookingsByWorkshopFn: func(context.Context, int) ([]model.Booking, error) { return nil, errors.New("down") },
	}
	ctx, rec = newCtx(e, http.MethodGet, "/", "")
	require.NoError(t, BookingsHandler(fs)(withID(ctx, "3")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Failed to fetch workshop bookings", decodeError(t, rec).Error)
}
