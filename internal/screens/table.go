// Package screens binds every registered list screen to its record type,
// its search and filter configuration and its slice of the store.
package screens

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/invopop/jsonschema"

	"erp/internal/datatable"
	"erp/internal/schema"
	"erp/internal/store"
	"erp/internal/validation"
)

// ErrInvalidBody is returned when a row body is not valid JSON for the
// screen's record type.
var ErrInvalidBody = errors.New("invalid request body")

// Info identifies a screen.
type Info struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Module string `json:"module"`
	Path   string `json:"path,omitempty"`
	// DayHeader shows a single-day date header with prev, next and today
	// navigation.
	DayHeader bool `json:"dayHeader,omitempty"`
	// LeaveRange shows a period picker with its inclusive day count.
	LeaveRange bool `json:"leaveRange,omitempty"`
}

// Column is a header of the rendered table.
type Column struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Filter describes one categorical selector and its current value.
type Filter struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Options  []string `json:"options"`
	Selected string   `json:"selected"`
}

// Card is a free-form summary figure shown next to the status counts.
type Card struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Grid is the string rendering of a page of rows.
type Grid struct {
	Columns []Column   `json:"columns"`
	IDs     []string   `json:"ids"`
	Cells   [][]string `json:"cells"`
}

// Result is one filtered, paginated listing.
type Result struct {
	Rows      any                `json:"rows"`
	Counts    []datatable.Counts `json:"counts"`
	Cards     []Card             `json:"cards,omitempty"`
	Filters   []Filter           `json:"filters"`
	HasDate   bool               `json:"hasDate"`
	NoResults bool               `json:"noResults"`
	Message   string             `json:"message,omitempty"`
	Total     int                `json:"-"`
	Page      int                `json:"-"`
	Limit     int                `json:"-"`
	Grid      Grid               `json:"-"`
}

// Screen is the behaviour shared by every registered screen.
type Screen interface {
	Info() Info
	FilterNames() []string
	List(ctx context.Context, q datatable.Query) (Result, error)
	Summary(ctx context.Context, q datatable.Query) ([]datatable.Counts, error)
	Get(ctx context.Context, id string) (any, error)
	Create(ctx context.Context, body []byte) (string, any, error)
	Update(ctx context.Context, id string, body []byte) (any, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context, now time.Time) error
	Export(ctx context.Context, q datatable.Query) ([]string, [][]string, error)
	Schema() *jsonschema.Schema
	Len(ctx context.Context) (int, error)
}

// Def configures a Table.
type Def[T any] struct {
	ID    string
	Title string
	Spec  datatable.Spec[T]
	// Columns are rendered in order in the HTML table and in exports.
	Columns []datatable.Field[T]
	// Derived adds columns that depend on the whole collection.
	Derived func(all []T) []datatable.Field[T]
	Key     func(T) string
	SetKey  func(*T, string)
	// IDPrefix seeds generated ids such as INB-004. Empty means the screen
	// uses plain integers.
	IDPrefix string
	// Prepare recomputes derived fields before a row is stored.
	Prepare  func(*T) error
	Validate func(T, *validation.ValidationErrors)
	Seed     func(now time.Time) []T
	// Cards adds summary figures. all is the whole collection and filtered
	// the rows matching the request.
	Cards func(ctx context.Context, all, filtered []T) ([]Card, error)
	// CountFiltered aggregates the filtered rows instead of the whole set.
	CountFiltered bool
	DayHeader     bool
	LeaveRange    bool
}

// Table is the generic Screen implementation.
type Table[T any] struct {
	def  Def[T]
	coll *store.Collection[T]

	mu   sync.RWMutex
	info Info
}

// New binds def to st.
func New[T any](st *store.Store, def Def[T]) *Table[T] {
	return &Table[T]{
		def:  def,
		info: Info{
			ID:         def.ID,
			Title:      def.Title,
			Module:     moduleOf(def.ID),
			DayHeader:  def.DayHeader,
			LeaveRange: def.LeaveRange,
		},
		coll: store.NewCollection(st, def.ID, def.Key),
	}
}

func moduleOf(id string) string {
	if len(id) < 3 {
		return id
	}
	return id[:3]
}

func (t *Table[T]) Info() Info {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.info
}

func (t *Table[T]) setPath(p string) {
	t.mu.Lock()
	t.info.Path = p
	t.mu.Unlock()
}

func (t *Table[T]) FilterNames() []string { return t.def.Spec.FilterNames() }

// Rows returns the whole collection in insertion order.
func (t *Table[T]) Rows(ctx context.Context) ([]T, error) {
	return t.coll.List(ctx)
}

// Filtered returns the rows matching q, unpaginated.
func (t *Table[T]) Filtered(ctx context.Context, q datatable.Query) ([]T, error) {
	rows, err := t.coll.List(ctx)
	if err != nil {
		return nil, err
	}
	return t.def.Spec.Filter(rows, q), nil
}

// Find returns the typed record stored under id.
func (t *Table[T]) Find(ctx context.Context, id string) (T, error) {
	return t.coll.Get(ctx, id)
}

func (t *Table[T]) Len(ctx context.Context) (int, error) {
	rows, err := t.coll.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (t *Table[T]) columns(all []T) []datatable.Field[T] {
	cols := t.def.Columns
	if t.def.Derived != nil {
		cols = append(append([]datatable.Field[T](nil), cols...), t.def.Derived(all)...)
	}
	return cols
}

func (t *Table[T]) filters(all []T, q datatable.Query) []Filter {
	out := make([]Filter, 0, len(t.def.Spec.Filters))
	for _, f := range t.def.Spec.Filters {
		opts := f.Options
		if len(opts) == 0 {
			opts = datatable.Distinct(all, f)
		}
		out = append(out, Filter{Name: f.Name, Label: f.Label, Options: opts, Selected: q.Selected(f.Name)})
	}
	return out
}

func (t *Table[T]) counts(all, filtered []T) []datatable.Counts {
	if t.def.CountFiltered {
		return t.def.Spec.CountAll(filtered)
	}
	return t.def.Spec.CountAll(all)
}

func grid[T any](cols []datatable.Field[T], key func(T) string, rows []T) Grid {
	g := Grid{Columns: make([]Column, len(cols)), IDs: make([]string, len(rows)), Cells: make([][]string, len(rows))}
	for i, c := range cols {
		g.Columns[i] = Column{Name: c.Name, Label: c.Label}
	}
	for i, r := range rows {
		g.IDs[i] = key(r)
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = c.Value(r)
		}
		g.Cells[i] = cells
	}
	return g
}

// List filters, aggregates and paginates the collection.
func (t *Table[T]) List(ctx context.Context, q datatable.Query) (Result, error) {
	all, err := t.coll.List(ctx)
	if err != nil {
		return Result{}, err
	}
	filtered := t.def.Spec.Filter(all, q)
	page := datatable.Paginate(filtered, q.Page, q.Limit)

	res := Result{
		Rows:      page.Rows,
		Counts:    t.counts(all, filtered),
		Filters:   t.filters(all, q),
		HasDate:   t.def.Spec.Date != nil,
		NoResults: page.NoResults,
		Total:     page.Total,
		Page:      page.Page,
		Limit:     page.Limit,
		Grid:      grid(t.columns(all), t.def.Key, page.Rows),
	}
	if res.NoResults {
		res.Message = datatable.NoResultsMessage
	}
	if t.def.Cards != nil {
		cards, err := t.def.Cards(ctx, all, filtered)
		if err != nil {
			return Result{}, err
		}
		res.Cards = cards
	}
	return res, nil
}

// Summary returns only the aggregations.
func (t *Table[T]) Summary(ctx context.Context, q datatable.Query) ([]datatable.Counts, error) {
	all, err := t.coll.List(ctx)
	if err != nil {
		return nil, err
	}
	return t.counts(all, t.def.Spec.Filter(all, q)), nil
}

// Export renders every row matching q, ignoring pagination.
func (t *Table[T]) Export(ctx context.Context, q datatable.Query) ([]string, [][]string, error) {
	all, err := t.coll.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	g := grid(t.columns(all), t.def.Key, t.def.Spec.Filter(all, q))
	headers := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		headers[i] = c.Label
	}
	return headers, g.Cells, nil
}

func (t *Table[T]) Get(ctx context.Context, id string) (any, error) {
	return t.coll.Get(ctx, id)
}

func (t *Table[T]) decode(body []byte) (T, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return v, nil
}

func (t *Table[T]) check(v *T) error {
	if t.def.Prepare != nil {
		if err := t.def.Prepare(v); err != nil {
			ve := &validation.ValidationErrors{}
			ve.Add("body", err.Error())
			return ve
		}
	}
	if t.def.Validate != nil {
		ve := &validation.ValidationErrors{}
		t.def.Validate(*v, ve)
		return ve.Err()
	}
	return nil
}

// Create decodes body, assigns an id when it has none and stores the row.
func (t *Table[T]) Create(ctx context.Context, body []byte) (string, any, error) {
	v, err := t.decode(body)
	if err != nil {
		return "", nil, err
	}
	if t.def.Key(v) == "" {
		all, err := t.coll.List(ctx)
		if err != nil {
			return "", nil, err
		}
		keys := make([]string, len(all))
		for i, r := range all {
			keys[i] = t.def.Key(r)
		}
		t.def.SetKey(&v, NextID(t.def.IDPrefix, keys))
	}
	if err := t.check(&v); err != nil {
		return "", nil, err
	}
	if err := t.coll.Insert(ctx, v); err != nil {
		return "", nil, err
	}
	return t.def.Key(v), v, nil
}

// Update replaces the row stored under id. The body may omit the id but
// cannot change it.
func (t *Table[T]) Update(ctx context.Context, id string, body []byte) (any, error) {
	v, err := t.decode(body)
	if err != nil {
		return nil, err
	}
	switch t.def.Key(v) {
	case "":
		t.def.SetKey(&v, id)
	case id:
	default:
		ve := &validation.ValidationErrors{}
		ve.Add("id", "cannot be changed")
		return nil, ve
	}
	if err := t.check(&v); err != nil {
		return nil, err
	}
	if err := t.coll.Update(ctx, id, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	return t.coll.Delete(ctx, id)
}

// Seed replaces the collection with the fixture rows.
func (t *Table[T]) Seed(ctx context.Context, now time.Time) error {
	rows := t.def.Seed(now)
	if t.def.Prepare != nil {
		for i := range rows {
			if err := t.def.Prepare(&rows[i]); err != nil {
				return fmt.Errorf("seed %s: %w", t.def.ID, err)
			}
		}
	}
	return t.coll.Replace(ctx, rows)
}

func (t *Table[T]) Schema() *jsonschema.Schema {
	return schema.Reflect(new(T))
}
