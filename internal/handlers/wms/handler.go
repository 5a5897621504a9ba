// Package wms serves the warehouse master-data views that need the whole
// collection: unit conversion chains and the category tree.
package wms

import (
	"net/http"
	"strings"

	"erp/internal/datatable"
	"erp/internal/response"
	"erp/internal/screens"
	wmscalc "erp/internal/wms"
)

// Handler holds dependencies for warehouse handlers.
type Handler struct {
	Registry *screens.Registry
}

// Conversion describes how one unit converts to the base unit.
type Conversion struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	BaseUnit    string  `json:"baseUnit"`
	Rate        float64 `json:"rate"`
	Convertible bool    `json:"convertible"`
	Text        string  `json:"text"`
}

// UnitConversion resolves the conversion chain of the unit with code.
func (h *Handler) UnitConversion(w http.ResponseWriter, r *http.Request, code string) {
	units, err := h.Registry.WMS.Units.Rows(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	for _, u := range units {
		if u.Code != code {
			continue
		}
		rate, ok := wmscalc.ConversionRate(units, u.Code)
		response.JSON(w, Conversion{
			Code:        u.Code,
			Name:        u.Name,
			BaseUnit:    u.BaseUnit,
			Rate:        rate,
			Convertible: ok,
			Text:        wmscalc.Conversion(units, u),
		})
		return
	}
	response.Err(w, "unknown unit: "+code, http.StatusNotFound)
}

// CategoryTreeView is the WMS0607 tree with its level cards.
type CategoryTreeView struct {
	Nodes  []wmscalc.CategoryNode `json:"nodes"`
	Levels []wmscalc.LevelCount   `json:"levels"`
}

// CategoryTree renders the category tree. search and status narrow the
// visible categories; expanded is a comma separated list of open codes, or
// "all".
func (h *Handler) CategoryTree(w http.ResponseWriter, r *http.Request) {
	cats := h.Registry.WMS.Categories
	q, err := datatable.ParseQuery(r.URL.Query(), cats.FilterNames())
	if err != nil {
		response.Error(w, err)
		return
	}
	all, err := cats.Rows(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	visible, err := cats.Filtered(r.Context(), q)
	if err != nil {
		response.Error(w, err)
		return
	}

	expanded := make(map[string]bool)
	switch raw := r.URL.Query().Get("expanded"); raw {
	case "":
	case "all":
		for _, c := range all {
			expanded[c.Code] = true
		}
	default:
		for _, code := range strings.Split(raw, ",") {
			if code = strings.TrimSpace(code); code != "" {
				expanded[code] = true
			}
		}
	}
	response.JSON(w, CategoryTreeView{
		Nodes:  wmscalc.CategoryTree(all, visible, expanded),
		Levels: wmscalc.LevelCounts(all),
	})
}
