package screens

import (
	"context"
	"fmt"
	"time"

	"erp/internal/menu"
	"erp/internal/store"
)

// Registry holds every screen in menu order together with typed handles
// for the endpoints that need more than the generic listing.
type Registry struct {
	order []Screen
	byID  map[string]Screen

	HR  *HR
	WMS *WMS
	ACC *ACC
}

type pathSetter interface{ setPath(string) }

// NewRegistry builds all screens over st. Paths are looked up in tree.
func NewRegistry(st *store.Store, tree *menu.Tree) *Registry {
	r := &Registry{byID: make(map[string]Screen)}
	r.HR = newHR(st)
	r.ACC = newACC(st)
	r.WMS = newWMS(st)

	for _, group := range [][]Screen{r.HR.screens(), r.ACC.screens(), r.WMS.screens()} {
		for _, s := range group {
			r.register(s, tree)
		}
	}
	return r
}

func (r *Registry) register(s Screen, tree *menu.Tree) {
	id := s.Info().ID
	if _, dup := r.byID[id]; dup {
		panic(fmt.Sprintf("screen %s registered twice", id))
	}
	r.byID[id] = s
	r.order = append(r.order, s)
	if tree != nil {
		locate(s, tree)
	}
}

// Relocate re-reads every screen's path from tree. Screens the tree no
// longer lists lose their path. It is safe to call while requests are
// served.
func (r *Registry) Relocate(tree *menu.Tree) {
	for _, s := range r.order {
		locate(s, tree)
	}
}

func locate(s Screen, tree *menu.Tree) {
	ps, ok := s.(pathSetter)
	if !ok {
		return
	}
	path := ""
	if it, ok := tree.FindID(s.Info().ID); ok {
		path = it.Path
	}
	ps.setPath(path)
}

// Get returns the screen with id.
func (r *Registry) Get(id string) (Screen, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// All lists screens in registration order.
func (r *Registry) All() []Screen {
	return append([]Screen(nil), r.order...)
}

// Seed replaces every screen's rows with its fixtures. now pins the dates
// that fixtures derive from today.
func (r *Registry) Seed(ctx context.Context, now time.Time) error {
	for _, s := range r.order {
		if err := s.Seed(ctx, now); err != nil {
			return err
		}
	}
	return nil
}

// SeedMissing seeds only the screens that hold no rows, so a file-backed
// store keeps its edits across restarts. It returns how many were seeded.
func (r *Registry) SeedMissing(ctx context.Context, now time.Time) (int, error) {
	n := 0
	for _, s := range r.order {
		rows, err := s.Len(ctx)
		if err != nil {
			return n, err
		}
		if rows > 0 {
			continue
		}
		if err := s.Seed(ctx, now); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
