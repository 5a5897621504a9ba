package menu

import (
	"sort"
	"strings"
)

// Expansion is the set of expanded menu ids carried by one request.
type Expansion map[string]bool

// ParseExpansion reads a comma separated id list.
func ParseExpansion(s string) Expansion {
	e := Expansion{}
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			e[id] = true
		}
	}
	return e
}

// NewExpansion builds an expansion from explicit ids.
func NewExpansion(ids ...string) Expansion {
	e := Expansion{}
	for _, id := range ids {
		e[id] = true
	}
	return e
}

// Toggle returns a copy with id flipped. The receiver is not modified.
func (e Expansion) Toggle(id string) Expansion {
	out := make(Expansion, len(e)+1)
	for k, v := range e {
		if v {
			out[k] = true
		}
	}
	if out[id] {
		delete(out, id)
	} else {
		out[id] = true
	}
	return out
}

// Has reports whether id is expanded.
func (e Expansion) Has(id string) bool { return e[id] }

// IDs returns the expanded ids sorted.
func (e Expansion) IDs() []string {
	ids := make([]string, 0, len(e))
	for id, on := range e {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (e Expansion) String() string { return strings.Join(e.IDs(), ",") }

// Node is a rendered menu entry. Children are only populated when the node
// is expanded.
type Node struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Path        string `json:"path,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Depth       int    `json:"depth"`
	Active      bool   `json:"active"`
	Expanded    bool   `json:"expanded"`
	HasChildren bool   `json:"hasChildren"`
	Children    []Node `json:"children,omitempty"`
}

// Render lays out the tree for the given route. An item is active when its
// path equals active exactly. Ancestors of the active item are expanded in
// addition to the ids in exp.
func (t *Tree) Render(active string, exp Expansion) []Node {
	open := make(Expansion, len(exp))
	for id, on := range exp {
		if on {
			open[id] = true
		}
	}
	if _, parents, ok := t.Find(active); ok {
		for _, p := range parents {
			open[p.ID] = true
		}
	}
	return renderItems(t.Items, active, open, 0)
}

func renderItems(items []Item, active string, open Expansion, depth int) []Node {
	nodes := make([]Node, 0, len(items))
	for _, it := range items {
		n := Node{
			ID:          it.ID,
			Title:       it.Title,
			Path:        it.Path,
			Icon:        it.Icon,
			Depth:       depth,
			Active:      it.Path != "" && it.Path == active,
			HasChildren: len(it.Children) > 0,
		}
		if n.HasChildren && open[it.ID] {
			n.Expanded = true
			n.Children = renderItems(it.Children, active, open, depth+1)
		}
		nodes = append(nodes, n)
	}
	return nodes
}
