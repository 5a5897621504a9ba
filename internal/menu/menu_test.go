package menu

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

const smallMenu = `
expanded: [A]
items:
  - id: home
    title: Home
    path: /
  - id: A
    title: Alpha
    path: /A
    children:
      - id: A1
        title: Alpha One
        description: first group
        children:
          - {id: A0101, title: Leaf A, path: /A/one/A0101}
          - {id: A0102, title: Leaf B, path: /A/one/A0102}
      - {id: A0201, title: Loose, path: /A/A0201}
  - id: B
    title: Beta
    children:
      - id: B1
        title: Beta One
        children:
          - {id: B0101, title: Leaf C, path: /B/one/B0101}
`

func mustParse(t *testing.T, doc string) *Tree {
	t.Helper()
	tree, err := Parse([]byte(doc))
	require.NoError(t, err)
	return tree
}

func TestDefaultTree(t *testing.T) {
	tree := Default()

	hrs, ok := tree.FindID("HRS0101")
	require.True(t, ok)
	assert.Equal(t, "/HRS/attendance/HRS0101", hrs.Path)
	assert.Equal(t, []string{"HRS"}, tree.Expanded)

	leaves := tree.Leaves()
	assert.Greater(t, len(leaves), 60)
	assert.Equal(t, "dashboard", leaves[0].ID)
}

func TestParseRejectsBadTrees(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "items: []"},
		{"duplicate id", "items:\n  - {id: A, title: a}\n  - {id: A, title: b}"},
		{"missing title", "items:\n  - {id: A}"},
		{"relative path", "items:\n  - {id: A, title: a, path: A}"},
		{"not yaml", "items: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.doc)
			}
		})
	}
}

func TestRenderActiveIsExactMatch(t *testing.T) {
	tree := mustParse(t, smallMenu)

	nodes := tree.Render("/A/one/A0101", NewExpansion())
	require.Len(t, nodes, 3)

	alpha := nodes[1]
	assert.True(t, alpha.Expanded, "ancestor of active item should open")
	assert.False(t, alpha.Active)
	group := alpha.Children[0]
	assert.True(t, group.Expanded)
	assert.True(t, group.Children[0].Active)
	assert.False(t, group.Children[1].Active)

	// a prefix of a leaf path is not a match
	nodes = tree.Render("/A/one", NewExpansion())
	assert.False(t, nodes[1].Active)
	assert.False(t, nodes[1].Expanded)
}

func TestRenderCollapsedHidesChildren(t *testing.T) {
	tree := mustParse(t, smallMenu)

	nodes := tree.Render("/", NewExpansion())
	for _, n := range nodes {
		assert.False(t, n.Expanded, n.ID)
		assert.Empty(t, n.Children, n.ID)
	}
	assert.True(t, nodes[0].Active)
	assert.True(t, nodes[2].HasChildren)

	nodes = tree.Render("/", NewExpansion("B"))
	want := []Node{{ID: "B1", Title: "Beta One", Depth: 1, HasChildren: true}}
	if diff := cmp.Diff(want, nodes[2].Children); diff != "" {
		t.Errorf("Render children mismatch (-want +got):\n%s", diff)
	}
}

func TestExpansionToggle(t *testing.T) {
	e := ParseExpansion(" A, ,B ")
	assert.Equal(t, "A,B", e.String())

	closed := e.Toggle("A")
	assert.False(t, closed.Has("A"))
	assert.True(t, e.Has("A"), "Toggle must not modify receiver")

	reopened := closed.Toggle("A")
	assert.Equal(t, []string{"A", "B"}, reopened.IDs())
}

func TestBreadcrumb(t *testing.T) {
	tree := mustParse(t, smallMenu)

	got := tree.Breadcrumb("/B/one/B0101")
	want := []Crumb{
		{ID: "B", Title: "Beta"},
		{ID: "B1", Title: "Beta One"},
		{ID: "B0101", Title: "Leaf C", Path: "/B/one/B0101"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Breadcrumb mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, tree.Breadcrumb("/missing"))
}

func TestModuleHub(t *testing.T) {
	tree := mustParse(t, smallMenu)

	hub, err := tree.Module("A")
	require.NoError(t, err)
	require.Len(t, hub.Groups, 2)
	assert.Equal(t, "first group", hub.Groups[0].Description)
	assert.Len(t, hub.Groups[0].Items, 2)
	assert.Equal(t, "A0201", hub.Groups[1].Items[0].ID)

	_, err = tree.Module("A1")
	assert.ErrorIs(t, err, ErrUnknownModule)
}

func TestWatcherReloadsTree(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallMenu), 0o644))

	holder := NewHolder(mustParse(t, smallMenu))
	w, err := NewWatcher(path, holder, zap.NewNop())
	require.NoError(t, err)

	reloaded := make(chan *Tree, 4)
	w.OnReload = func(t *Tree) { reloaded <- t }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	// a broken document is rejected and the old tree stays
	require.NoError(t, os.WriteFile(path, []byte("items: []"), 0o644))
	time.Sleep(400 * time.Millisecond)
	assert.Len(t, holder.Tree().Items, 3)

	require.NoError(t, os.WriteFile(path, []byte("items:\n  - {id: only, title: Only, path: /}\n"), 0o644))
	select {
	case tree := <-reloaded:
		assert.Equal(t, "only", tree.Items[0].ID)
	case <-time.After(3 * time.Second):
		t.Fatal("menu was not reloaded")
	}
	assert.Len(t, holder.Tree().Items, 1)

	w.Stop()
}
