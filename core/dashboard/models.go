package dashboard

import (
	"math"
	"strconv"
	"strings"
)

// Unmatched reasons
const (
	ReasonUnknown   = "unknown category"
	ReasonDuplicate = "duplicate category"
)

// Number is a float64 that also decodes from quoted numbers and null.
// Values that cannot be read as a finite number decode to 0.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number(parseLenient(b))
	return nil
}

func (n Number) Float64() float64 { return float64(n) }

// Int is an int that decodes like Number, truncating fractions (10.0 and "10" are 10).
type Int int

func (i *Int) UnmarshalJSON(b []byte) error {
	f := math.Trunc(parseLenient(b))
	switch {
	case f > math.MaxInt32:
		f = math.MaxInt32
	case f < math.MinInt32:
		f = math.MinInt32
	}
	*i = Int(f)
	return nil
}

func (i Int) Int() int { return int(i) }

// parseLenient reads a JSON number, quoted or not. Anything else is 0.
func parseLenient(b []byte) float64 {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(b)), `"`))
	if s == "" || s == "null" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

type (
	// Payload is the backend response carrying a student's ratings.
	Payload struct {
		Success bool  `json:"success"`
		Data    *Data `json:"data,omitempty"`
	}

	Data struct {
		Categories []CategoryRating `json:"categories"`
		Summary    *Summary         `json:"summary,omitempty"`
	}

	CategoryRating struct {
		CategoryID    Int    `json:"category_id"`
		CategoryName  string `json:"category_name"`
		AverageRating Number `json:"average_rating"`
		RecordCount   Int    `json:"record_count"`
	}

	Summary struct {
		AverageOverall Number `json:"average_overall"`
		TotalRecords   Int    `json:"total_records"`
		FilteredPeriod string `json:"filtered_period"`
	}
)

type (
	// Card is the view of one intelligence category. There is exactly one per canonical category per Dashboard.
	Card struct {
		ID            string  `json:"id"`
		Title         string  `json:"title"`
		Icon          string  `json:"icon"`
		Description   string  `json:"description"`
		Rating        float64 `json:"rating"`
		Level         string  `json:"level"`
		Color         string  `json:"color"`
		LevelColor    string  `json:"level_color"`
		RecordCount   int     `json:"record_count"`
		IsPlaceholder bool    `json:"is_placeholder"`
	}

	Overall struct {
		Rating              float64 `json:"rating"`
		Level               string  `json:"level"`
		LevelColor          string  `json:"level_color"`
		TotalRecords        int     `json:"total_records"`
		FilteredPeriodLabel string  `json:"filtered_period_label"`
	}

	// Unmatched describes a backend category record that did not make it into a real card.
	Unmatched struct {
		Name       string `json:"name"`
		CategoryID int    `json:"category_id"`
		Reason     string `json:"reason"`
		Suggestion string `json:"suggestion,omitempty"` // advisory canonical id
	}

	Dashboard struct {
		Cards     []Card      `json:"cards"`
		Overall   Overall     `json:"overall"`
		Unmatched []Unmatched `json:"unmatched"`
	}
)
