package store

import (
	"context"
	"testing"

	"workshop-genie/internal/model"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	w := model.Workshop{Category: "Technology", Location: "San Francisco", Price: "450.00"}

	require.True(t, Matches(w, model.WorkshopFilter{}))
	require.True(t, Matches(w, model.WorkshopFilter{Category: "technology"}))
	require.False(t, Matches(w, model.WorkshopFilter{Category: "Arts"}))
	require.True(t, Matches(w, model.WorkshopFilter{Location: "FRAN"}))
	require.False(t, Matches(w, model.WorkshopFilter{Location: "Boston"}))
	require.True(t, Matches(w, model.WorkshopFilter{PriceMin: ptr(450.0), PriceMax: ptr(450.0)}))
	require.False(t, Matches(w, model.WorkshopFilter{PriceMax: ptr(449.99)}))

	bad := model.Workshop{Price: "free"}
	require.True(t, Matches(bad, model.WorkshopFilter{}))
	require.False(t, Matches(bad, model.WorkshopFilter{PriceMin: ptr(0.0)}))

	padded := model.Workshop{Price: " 299.00 "}
	require.True(t, Matches(padded, model.WorkshopFilter{PriceMin: ptr(0.0), PriceMax: ptr(1000.0)}))
	require.False(t, Matches(padded, model.WorkshopFilter{PriceMin: ptr(300.0)}))
}

func TestSearchPaddedPrice(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_, err := m.CreateWorkshop(ctx, model.InsertWorkshop{Title: "Padded", Price: " 299.00", Capacity: 5, Rating: "4"})
	require.NoError(t, err)

	ws, err := m.SearchWorkshops(ctx, model.WorkshopFilter{PriceMin: ptr(0.0), PriceMax: ptr(1000.0)})
	require.NoError(t, err)
	require.Len(t, ws, 1)
	require.Equal(t, "Padded", ws[0].Title)
}
