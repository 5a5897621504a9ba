package wms

import (
	"sort"

	"erp/internal/models"
)

// CategoryNode is a rendered row of the category tree.
type CategoryNode struct {
	models.Category
	ParentName  string         `json:"parentName,omitempty"`
	Depth       int            `json:"depth"`
	HasChildren bool           `json:"hasChildren"`
	Expanded    bool           `json:"expanded"`
	Children    []CategoryNode `json:"children,omitempty"`
}

// CategoryTree builds the tree over the visible categories. Children are
// ordered by SortOrder and only rendered under expanded codes. A category
// whose parent is not visible is not shown. all resolves parent names.
func CategoryTree(all, visible []models.Category, expanded map[string]bool) []CategoryNode {
	names := make(map[string]string, len(all))
	for _, c := range all {
		names[c.Code] = c.Name
	}
	children := make(map[string][]models.Category)
	for _, c := range visible {
		parent := ""
		if c.ParentCode != nil {
			parent = *c.ParentCode
		}
		children[parent] = append(children[parent], c)
	}
	for _, list := range children {
		sort.SliceStable(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	}

	var build func(parent string, depth int) []CategoryNode
	build = func(parent string, depth int) []CategoryNode {
		list := children[parent]
		out := make([]CategoryNode, 0, len(list))
		for _, c := range list {
			n := CategoryNode{
				Category:    c,
				Depth:       depth,
				HasChildren: len(children[c.Code]) > 0,
				Expanded:    expanded[c.Code],
			}
			if c.ParentCode != nil {
				n.ParentName = names[*c.ParentCode]
			}
			if n.HasChildren && n.Expanded {
				n.Children = build(c.Code, depth+1)
			}
			out = append(out, n)
		}
		return out
	}
	return build("", 0)
}

// LevelCount is the number of categories at one depth.
type LevelCount struct {
	Level int `json:"level"`
	Count int `json:"count"`
}

// LevelCounts groups categories by Level in ascending order.
func LevelCounts(cats []models.Category) []LevelCount {
	counts := make(map[int]int)
	for _, c := range cats {
		counts[c.Level]++
	}
	out := make([]LevelCount, 0, len(counts))
	for level, n := range counts {
		out = append(out, LevelCount{Level: level, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}
