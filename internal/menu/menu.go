package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_menu.yaml
var defaultMenu []byte

// ErrInvalidTree is returned when a menu document fails structural checks.
var ErrInvalidTree = errors.New("invalid menu tree")

// ErrUnknownModule is returned by Module for ids that are not top-level entries.
var ErrUnknownModule = errors.New("unknown module")

// Item is one entry of the navigation tree. Groups have children and
// usually no path; leaves route to a page.
type Item struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Path        string `yaml:"path,omitempty" json:"path,omitempty"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Children    []Item `yaml:"children,omitempty" json:"children,omitempty"`
}

// Tree is the whole sidebar plus the ids expanded when a request carries no
// expansion state of its own.
type Tree struct {
	Items    []Item   `yaml:"items" json:"items"`
	Expanded []string `yaml:"expanded,omitempty" json:"expanded,omitempty"`
}

// Parse decodes and checks a YAML menu document.
func Parse(data []byte) (*Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads a menu document from disk.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded menu tree.
func Default() *Tree {
	t, err := Parse(defaultMenu)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tree) check() error {
	if len(t.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidTree)
	}
	seen := make(map[string]bool)
	var problems []string
	walk(t.Items, nil, func(it *Item, _ []*Item) bool {
		switch {
		case it.ID == "":
			problems = append(problems, fmt.Sprintf("item %q has no id", it.Title))
		case seen[it.ID]:
			problems = append(problems, fmt.Sprintf("duplicate id %s", it.ID))
		}
		if strings.TrimSpace(it.Title) == "" {
			problems = append(problems, fmt.Sprintf("item %s has no title", it.ID))
		}
		if it.Path != "" && !strings.HasPrefix(it.Path, "/") {
			problems = append(problems, fmt.Sprintf("item %s path must start with /", it.ID))
		}
		seen[it.ID] = true
		return true
	})
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTree, strings.Join(problems, "; "))
	}
	return nil
}

// walk visits items depth-first, passing the chain of ancestors. Returning
// false from fn stops the walk.
func walk(items []Item, parents []*Item, fn func(it *Item, parents []*Item) bool) bool {
	for i := range items {
		it := &items[i]
		if !fn(it, parents) {
			return false
		}
		if len(it.Children) > 0 {
			chain := append(append([]*Item(nil), parents...), it)
			if !walk(it.Children, chain, fn) {
				return false
			}
		}
	}
	return true
}

// FindID returns the item with the given id.
func (t *Tree) FindID(id string) (*Item, bool) {
	var found *Item
	walk(t.Items, nil, func(it *Item, _ []*Item) bool {
		if it.ID == id {
			found = it
			return false
		}
		return true
	})
	return found, found != nil
}

// Find returns the item routed at path together with its ancestors.
func (t *Tree) Find(path string) (*Item, []*Item, bool) {
	var (
		found   *Item
		lineage []*Item
	)
	walk(t.Items, nil, func(it *Item, parents []*Item) bool {
		if it.Path != "" && it.Path == path {
			found = it
			lineage = parents
			return false
		}
		return true
	})
	return found, lineage, found != nil
}

// Leaves lists every routable item without children, in menu order.
func (t *Tree) Leaves() []Item {
	var out []Item
	walk(t.Items, nil, func(it *Item, _ []*Item) bool {
		if it.Path != "" && len(it.Children) == 0 {
			out = append(out, Item{ID: it.ID, Title: it.Title, Path: it.Path, Icon: it.Icon})
		}
		return true
	})
	return out
}

// Crumb is one step of a breadcrumb trail.
type Crumb struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path,omitempty"`
}

// Breadcrumb returns the chain from the top-level entry down to the item
// routed at path. Unknown paths give an empty trail.
func (t *Tree) Breadcrumb(path string) []Crumb {
	it, parents, ok := t.Find(path)
	if !ok {
		return []Crumb{}
	}
	out := make([]Crumb, 0, len(parents)+1)
	for _, p := range parents {
		out = append(out, Crumb{ID: p.ID, Title: p.Title, Path: p.Path})
	}
	return append(out, Crumb{ID: it.ID, Title: it.Title, Path: it.Path})
}

// Group is a section of a module hub page.
type Group struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Items       []Item `json:"items"`
}

// Hub is the landing page of a top-level module such as /HRS.
type Hub struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Path   string  `json:"path,omitempty"`
	Groups []Group `json:"groups"`
}

// Module builds the hub for a top-level entry. Leaves hanging directly off
// the module are collected into a group of their own.
func (t *Tree) Module(id string) (Hub, error) {
	for _, top := range t.Items {
		if top.ID != id {
			continue
		}
		hub := Hub{ID: top.ID, Title: top.Title, Path: top.Path, Groups: []Group{}}
		var loose []Item
		for _, child := range top.Children {
			if len(child.Children) == 0 {
				loose = append(loose, child)
				continue
			}
			g := Group{ID: child.ID, Title: child.Title, Description: child.Description, Icon: child.Icon}
			for _, leaf := range child.Children {
				g.Items = append(g.Items, Item{ID: leaf.ID, Title: leaf.Title, Path: leaf.Path, Icon: leaf.Icon})
			}
			hub.Groups = append(hub.Groups, g)
		}
		if len(loose) > 0 {
			hub.Groups = append(hub.Groups, Group{ID: top.ID, Title: top.Title, Items: loose})
		}
		return hub, nil
	}
	return Hub{}, fmt.Errorf("%w: %s", ErrUnknownModule, id)
}
