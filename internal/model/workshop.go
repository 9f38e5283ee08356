package model

import (
	"math"
	"strconv"
	"strings"
)

type Workshop struct {
	ID          int      `db:"id" json:"id"`
	Title       string   `db:"title" json:"title"`
	Description string   `db:"description" json:"description"`
	Category    string   `db:"category" json:"category"`
	Instructor  string   `db:"instructor" json:"instructor"`
	Location    string   `db:"location" json:"location"`
	Date        string   `db:"date" json:"date"`
	Time        string   `db:"time" json:"time"`
	Duration    string   `db:"duration" json:"duration"`
	Price       string   `db:"price" json:"price"`
	Capacity    int      `db:"capacity" json:"capacity"`
	Enrolled    int      `db:"enrolled" json:"enrolled"`
	Image       string   `db:"image" json:"image"`
	Rating      string   `db:"rating" json:"rating"`
	Tags        []string `db:"tags" json:"tags"`
}

// PriceValue parses Price, ignoring surrounding blanks as NUMERIC does.
// An unparseable price yields NaN, which fails every bound.
func (w Workshop) PriceValue() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(w.Price), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// IsFull reports whether no seat is left.
func (w Workshop) IsFull() bool {
	return w.Enrolled >= w.Capacity
}

// InsertWorkshop omits the server-assigned id and enrolled count.
type InsertWorkshop struct {
	Title       string
	Description string
	Category    string
	Instructor  string
	Location    string
	Date        string
	Time        string
	Duration    string
	Price       string
	Capacity    int
	Image       string
	Rating      string
	Tags        []string
}

// WorkshopFilter 搜尋條件；空字串或 nil 代表不限制
type WorkshopFilter struct {
	Category string
	Location string
	PriceMin *float64
	PriceMax *float64
}

// IsZero reports whether the filter imposes no constraint at all.
func (f WorkshopFilter) IsZero() bool {
	return f.Category == "" && f.Location == "" && f.PriceMin == nil && f.PriceMax == nil
}
