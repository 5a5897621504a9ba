package server

import (
	"net/http"
	"strings"

	"erp/internal/response"
)

func (a *App) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Pages
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET":
			a.pages.LoginPage(w, r)
		case "POST":
			a.pages.LoginSubmit(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "POST" {
			a.pages.Logout(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/", a.page)

	// Auth routes
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == "POST" {
			a.admin.HandleLogin(w, r)
		} else {
			response.Err(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == "POST" {
			a.admin.HandleLogout(w, r)
		} else {
			response.Err(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		a.admin.HandleMe(w, r)
	})

	mux.Handle("/ws", a.Hub)
	mux.HandleFunc("/api/v1/", a.api)
	return mux
}

// page routes the HTML side: the dashboard at /, module hubs at /{module}
// and any path ending in a registered screen id.
func (a *App) page(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" && r.Method != "HEAD" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	path := strings.Trim(r.URL.Path, "/")
	if path == "" {
		a.pages.Dashboard(w, r)
		return
	}
	parts := strings.Split(path, "/")
	last := parts[len(parts)-1]
	switch {
	case len(parts) == 1 && a.isModule(last):
		a.pages.Module(w, r, last)
	case a.isScreen(last):
		a.pages.Screen(w, r, last)
	default:
		a.pages.NotFound(w, r)
	}
}

func (a *App) isModule(id string) bool {
	for _, it := range a.Menu.Tree().Items {
		if it.ID == id && it.Path == "/"+id {
			return true
		}
	}
	return false
}

func (a *App) isScreen(id string) bool {
	_, ok := a.Registry.Get(id)
	return ok
}

func (a *App) api(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/")
	path = strings.TrimSuffix(path, "/")
	parts := strings.Split(path, "/")

	switch {
	// Dashboard
	case path == "dashboard" && r.Method == "GET":
		a.common.Dashboard(w, r)

	// Navigation
	case path == "menu" && r.Method == "GET":
		a.common.Menu(w, r)
	case path == "menu/breadcrumb" && r.Method == "GET":
		a.common.Breadcrumb(w, r)
	case parts[0] == "menu" && len(parts) == 3 && parts[1] == "modules" && r.Method == "GET":
		a.common.MenuModule(w, r, parts[2])

	// Calendar
	case path == "calendar" && r.Method == "GET":
		a.common.Calendar(w, r)
	case path == "leave/days" && r.Method == "GET":
		a.common.LeaveDays(w, r)

	// Screens
	case parts[0] == "screens" && len(parts) == 1 && r.Method == "GET":
		a.records.ListScreens(w, r)
	case parts[0] == "screens" && len(parts) == 2 && r.Method == "GET":
		a.records.List(w, r, parts[1])
	case parts[0] == "screens" && len(parts) == 3 && parts[2] == "summary" && r.Method == "GET":
		a.records.Summary(w, r, parts[1])
	case parts[0] == "screens" && len(parts) == 3 && parts[2] == "schema" && r.Method == "GET":
		a.records.Schema(w, r, parts[1])
	case parts[0] == "screens" && len(parts) == 3 && parts[2] == "export" && r.Method == "GET":
		a.records.Export(w, r, parts[1])
	case parts[0] == "screens" && len(parts) == 3 && parts[2] == "rows" && r.Method == "POST":
		a.records.CreateRow(w, r, parts[1])
	case parts[0] == "screens" && len(parts) == 4 && parts[2] == "rows" && r.Method == "GET":
		a.records.GetRow(w, r, parts[1], parts[3])
	case parts[0] == "screens" && len(parts) == 4 && parts[2] == "rows" && r.Method == "PUT":
		a.records.UpdateRow(w, r, parts[1], parts[3])
	case parts[0] == "screens" && len(parts) == 4 && parts[2] == "rows" && r.Method == "DELETE":
		a.records.DeleteRow(w, r, parts[1], parts[3])

	// HR
	case parts[0] == "hr" && len(parts) == 4 && parts[1] == "leave" && parts[2] == "balance" && r.Method == "GET":
		a.hr.LeaveBalance(w, r, parts[3])
	case path == "hr/payroll/summary" && r.Method == "GET":
		a.hr.PayrollSummary(w, r)
	case parts[0] == "hr" && len(parts) == 3 && parts[1] == "payslips" && r.Method == "GET":
		a.hr.Payslip(w, r, parts[2])
	case parts[0] == "hr" && len(parts) == 4 && parts[1] == "employees" && parts[3] == "profile" && r.Method == "GET":
		a.hr.Profile(w, r, parts[2])

	// Accounting
	case path == "acc/vouchers/totals" && r.Method == "GET":
		a.acc.VoucherTotals(w, r)

	// Warehouse
	case parts[0] == "wms" && len(parts) == 4 && parts[1] == "units" && parts[3] == "conversion" && r.Method == "GET":
		a.wms.UnitConversion(w, r, parts[2])
	case path == "wms/categories/tree" && r.Method == "GET":
		a.wms.CategoryTree(w, r)

	// Admin
	case path == "audit" && r.Method == "GET":
		a.admin.AuditLog(w, r)
	case path == "admin/reset" && r.Method == "POST":
		a.admin.Reset(w, r)

	default:
		response.Err(w, "not found", http.StatusNotFound)
	}
}
