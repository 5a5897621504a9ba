// Package web renders the server-side pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"erp/internal/menu"
	"erp/internal/models"
	"erp/internal/screens"
)

//go:embed templates/*.html
var files embed.FS

// Page names.
const (
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageHub       = "hub"
	PageScreen    = "screen"
	PageNotFound  = "notfound"
)

// standalone pages are rendered without the sidebar layout.
var standalone = map[string]bool{PageLogin: true}

// Layout is the chrome shared by every page behind the login.
type Layout struct {
	Title      string
	Company    string
	User       models.User
	Menu       []menu.Node
	Breadcrumb []menu.Crumb
	// Content is the page-specific payload.
	Content any
}

// LoginView is the payload of the login page.
type LoginView struct {
	Company string
	UserID  string
	Error   string
}

// ScreenView is the payload of a generic table page.
type ScreenView struct {
	Info   screens.Info
	Result screens.Result
	// Query is the request's query string, reused by pagination and
	// export links.
	Query      url.Values
	Search     string
	From       string
	To         string
	TotalPages int
	Error      string

	Day   *DayNav
	Leave *LeaveRange
}

// DayNav is the date header of single-day screens such as attendance.
type DayNav struct {
	Date    string
	Display string
	Today   bool
	Error   string
}

// LeaveRange is the period picker of the leave request screen.
type LeaveRange struct {
	Start string
	End   string
	Days  int
	Error string
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"indent": func(depth int) template.CSS {
		return template.CSS(fmt.Sprintf("padding-left:%dpx", 12+depth*16))
	},
	// setParam returns query with each key/value pair of kv set, for
	// pagination and navigation links.
	"setParam": func(query url.Values, kv ...string) template.URL {
		q := url.Values{}
		for k, v := range query {
			q[k] = append([]string(nil), v...)
		}
		for i := 0; i+1 < len(kv); i += 2 {
			q.Set(kv[i], kv[i+1])
		}
		return template.URL("?" + q.Encode())
	},
	"join": strings.Join,
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	names := []string{PageLogin, PageDashboard, PageHub, PageScreen, PageNotFound}
	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		patterns := []string{"templates/" + name + ".html"}
		if !standalone[name] {
			patterns = append([]string{"templates/layout.html"}, patterns...)
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(files, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes page into w. Output is buffered so a template error never
// leaves a half-written page.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	entry := "layout"
	if standalone[page] {
		entry = page
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, entry, data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
