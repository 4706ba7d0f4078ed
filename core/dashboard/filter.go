package dashboard

import (
	"net/url"
	"strconv"
	"time"

	"github.com/trezcool/talanta/core"
)

// Filters IDs
const (
	FilterAll          = "all"
	FilterCurrentYear  = "current-year"
	FilterCurrentMonth = "current-month"
)

var Filters = []Filter{
	{ID: FilterAll, Label: "All Time"},
	{ID: FilterCurrentYear, Label: "Current Year"},
	{ID: FilterCurrentMonth, Label: "Current Month"},
}

// Filter is a time window selectable in the UI.
type Filter struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// QueryParams are the backend query parameters of a Filter. Zero fields are omitted.
type QueryParams struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"` // 1-12
}

func (qp QueryParams) IsEmpty() bool { return qp.Year == 0 && qp.Month == 0 }

func (qp QueryParams) Values() url.Values {
	v := make(url.Values)
	if qp.IsEmpty() {
		return v
	}
	if qp.Year != 0 {
		v.Set("year", strconv.Itoa(qp.Year))
	}
	if qp.Month != 0 {
		v.Set("month", strconv.Itoa(qp.Month))
	}
	return v
}

// LookupFilter finds a Filter by (case-insensitive) ID.
func LookupFilter(id string) (Filter, bool) {
	id = core.CleanString(id, true /* lower */)
	for _, f := range Filters {
		if f.ID == id {
			return f, true
		}
	}
	return Filter{}, false
}

// Translate converts a Filter ID into backend query parameters relative to `now`.
// Unknown IDs are treated as FilterAll.
func Translate(filterID string, now time.Time) QueryParams {
	switch core.CleanString(filterID, true /* lower */) {
	case FilterCurrentYear:
		return QueryParams{Year: now.Year()}
	case FilterCurrentMonth:
		return QueryParams{Year: now.Year(), Month: int(now.Month())}
	default:
		return QueryParams{}
	}
}
