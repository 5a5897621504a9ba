// Package datatable is the list engine shared by every screen: text search,
// categorical filters, an optional date range, pagination and status counts
// over an in-memory slice of records.
package datatable

import (
	"net/url"
	"strconv"
	"strings"

	"erp/internal/validation"
)

const (
	// All disables a categorical filter.
	All = "all"

	DefaultLimit = 50
	MaxLimit     = 500
	MaxPage      = 1_000_000

	// NoResultsMessage is shown when a filter leaves nothing to display.
	NoResultsMessage = "검색 결과가 없습니다."
)

// Field exposes one string-valued column of T.
type Field[T any] struct {
	Name    string
	Label   string
	Value   func(T) string
	Options []string
}

// Spec configures how a screen's rows are searched, filtered and counted.
type Spec[T any] struct {
	// Search fields are matched case-insensitively against Query.Search.
	Search []Field[T]
	// Filters are categorical selectors keyed by Field.Name.
	Filters []Field[T]
	// Date, when set, is compared against Query.From and Query.To.
	Date *Field[T]
	// Counts are the aggregations shown as summary cards.
	Counts []Field[T]
}

// Query is a parsed list request.
type Query struct {
	Search  string            `json:"search,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
	From    string            `json:"from,omitempty"`
	To      string            `json:"to,omitempty"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
}

// ParseQuery reads search, filter, date and paging parameters. Only the
// filter names listed are picked up from v.
func ParseQuery(v url.Values, filters []string) (Query, error) {
	q := Query{
		Search:  v.Get("search"),
		Filters: make(map[string]string),
		From:    v.Get("from"),
		To:      v.Get("to"),
		Page:    1,
		Limit:   DefaultLimit,
	}
	for _, name := range filters {
		if sel := v.Get(name); sel != "" {
			q.Filters[name] = sel
		}
	}

	ve := &validation.ValidationErrors{}
	validation.ValidateDateRange(ve, "from", q.From, "to", q.To)
	if s := v.Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		switch {
		case err != nil || n < 1:
			ve.Add("page", "must be a positive integer")
		case n > MaxPage:
			ve.Add("page", "must be at most "+strconv.Itoa(MaxPage))
		default:
			q.Page = n
		}
	}
	if s := v.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			ve.Add("limit", "must be a positive integer")
		} else {
			q.Limit = min(n, MaxLimit)
		}
	}
	if err := ve.Err(); err != nil {
		return Query{}, err
	}
	return q, nil
}

// Selected returns the active value of a categorical filter, or All.
func (q Query) Selected(name string) string {
	if sel := q.Filters[name]; sel != "" {
		return sel
	}
	return All
}

// FilterNames lists the categorical filter keys of the spec.
func (s Spec[T]) FilterNames() []string {
	names := make([]string, len(s.Filters))
	for i, f := range s.Filters {
		names[i] = f.Name
	}
	return names
}

// Filter returns the rows matching q, preserving order.
func (s Spec[T]) Filter(rows []T, q Query) []T {
	term := strings.ToLower(q.Search)
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if s.Match(r, q, term) {
			out = append(out, r)
		}
	}
	return out
}

// Match reports whether a single row passes q. term must already be
// lower-cased.
func (s Spec[T]) Match(r T, q Query, term string) bool {
	for _, f := range s.Filters {
		sel := q.Filters[f.Name]
		if sel == "" || sel == All {
			continue
		}
		if f.Value(r) != sel {
			return false
		}
	}
	if s.Date != nil {
		d := s.Date.Value(r)
		if q.From != "" && d < q.From {
			return false
		}
		if q.To != "" && d > q.To {
			return false
		}
	}
	if term == "" {
		return true
	}
	for _, f := range s.Search {
		if strings.Contains(strings.ToLower(f.Value(r)), term) {
			return true
		}
	}
	return false
}

// Page is one slice of a filtered result.
type Page[T any] struct {
	Rows      []T  `json:"rows"`
	Total     int  `json:"total"`
	Page      int  `json:"page"`
	Limit     int  `json:"limit"`
	NoResults bool `json:"noResults"`
}

// Paginate slices rows for the requested page. Total is the length of rows.
func Paginate[T any](rows []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	p := Page[T]{Total: len(rows), Page: page, Limit: limit, NoResults: len(rows) == 0}
	pages := len(rows) / limit
	if len(rows)%limit != 0 {
		pages++
	}
	if page > pages {
		p.Rows = []T{}
		return p
	}
	start := (page - 1) * limit
	end := start + min(limit, len(rows)-start)
	p.Rows = rows[start:end]
	return p
}

// Apply filters rows and returns the requested page.
func (s Spec[T]) Apply(rows []T, q Query) Page[T] {
	return Paginate(s.Filter(rows, q), q.Page, q.Limit)
}

// Distinct lists the values of f in first-seen order. It feeds filter
// dropdowns for fields without a declared option list.
func Distinct[T any](rows []T, f Field[T]) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rows {
		v := f.Value(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
