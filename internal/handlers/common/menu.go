package common

import (
	"errors"
	"net/http"

	"erp/internal/menu"
	"erp/internal/response"
)

// MenuView is the rendered sidebar.
type MenuView struct {
	Active   string      `json:"active"`
	Expanded []string    `json:"expanded"`
	Items    []menu.Node `json:"items"`
}

// Menu renders the sidebar for the active route. expanded is a comma
// separated list of open ids; toggle flips one id before rendering. Without
// either, the tree's configured defaults apply.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	tree := h.Nav.Tree()
	q := r.URL.Query()

	var exp menu.Expansion
	if _, ok := q["expanded"]; ok {
		exp = menu.ParseExpansion(q.Get("expanded"))
	} else {
		exp = menu.NewExpansion(tree.Expanded...)
	}
	if id := q.Get("toggle"); id != "" {
		exp = exp.Toggle(id)
	}
	active := q.Get("active")
	response.JSON(w, MenuView{Active: active, Expanded: exp.IDs(), Items: tree.Render(active, exp)})
}

// MenuModule returns the hub of a top-level module such as HRS.
func (h *Handler) MenuModule(w http.ResponseWriter, r *http.Request, id string) {
	hub, err := h.Nav.Tree().Module(id)
	if errors.Is(err, menu.ErrUnknownModule) {
		response.Err(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, hub)
}

// Breadcrumb returns the trail for the path query parameter.
func (h *Handler) Breadcrumb(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		response.Err(w, "path is required", http.StatusBadRequest)
		return
	}
	response.JSON(w, h.Nav.Tree().Breadcrumb(path))
}
