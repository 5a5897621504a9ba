package pages

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"erp/internal/calendar"
	"erp/internal/dashboard"
	"erp/internal/datatable"
	"erp/internal/menu"
	"erp/internal/web"
)

// Dashboard renders the landing page.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := dashboard.Build(r.Context(), h.Registry, calendar.Format(h.now()))
	if err != nil {
		h.logger().Error("build dashboard", zap.Error(err))
		http.Error(w, "dashboard unavailable", http.StatusInternalServerError)
		return
	}
	d.Date = calendar.FormatKorean(h.now())
	h.render(w, http.StatusOK, web.PageDashboard, h.layout(r, "대시보드", "/", d))
}

// Module renders the hub of a top-level module.
func (h *Handler) Module(w http.ResponseWriter, r *http.Request, id string) {
	hub, err := h.Menu.Tree().Module(id)
	if errors.Is(err, menu.ErrUnknownModule) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger().Error("module hub", zap.String("module", id), zap.Error(err))
		http.Error(w, "module unavailable", http.StatusInternalServerError)
		return
	}
	h.render(w, http.StatusOK, web.PageHub, h.layout(r, hub.Title, r.URL.Path, hub))
}

// Screen renders a generic table page. An invalid query keeps the page up
// with its unfiltered first page and the validation message.
func (h *Handler) Screen(w http.ResponseWriter, r *http.Request, id string) {
	s, ok := h.Registry.Get(id)
	if !ok {
		h.NotFound(w, r)
		return
	}
	info := s.Info()
	values := r.URL.Query()
	var day *web.DayNav
	if info.DayHeader {
		day = h.dayNav(values.Get("date"), values.Get("step"))
		// Links carry the resolved date so paging never repeats a step.
		values.Set("date", day.Date)
		values.Del("step")
	}
	view := web.ScreenView{
		Info:   info,
		Query:  values,
		Search: values.Get("search"),
		From:   values.Get("from"),
		To:     values.Get("to"),
		Day:    day,
	}
	if info.LeaveRange {
		view.Leave = leaveRange(values.Get("start"), values.Get("end"))
	}

	q, err := datatable.ParseQuery(values, s.FilterNames())
	if err != nil {
		view.Error = err.Error()
		q = datatable.Query{Page: 1, Limit: datatable.DefaultLimit}
	}
	res, err := s.List(r.Context(), q)
	if err != nil {
		h.logger().Error("list screen", zap.String("screen", id), zap.Error(err))
		http.Error(w, "screen unavailable", http.StatusInternalServerError)
		return
	}
	view.Result = res
	view.TotalPages = max(1, (res.Total+res.Limit-1)/res.Limit)

	path := info.Path
	if path == "" {
		path = r.URL.Path
	}
	h.render(w, http.StatusOK, web.PageScreen, h.layout(r, info.Title, path, view))
}

// dayNav resolves the date header. A bad date or step falls back to today.
func (h *Handler) dayNav(date, step string) *web.DayNav {
	now := h.now()
	nav := &web.DayNav{}
	d, err := calendar.Resolve(date, step, now)
	switch {
	case errors.Is(err, calendar.ErrUnknownStep):
		nav.Error = "알 수 없는 날짜 이동입니다."
		d = calendar.Day(now)
	case err != nil:
		nav.Error = "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)"
		d = calendar.Day(now)
	}
	nav.Date = calendar.Format(d)
	nav.Display = calendar.FormatKorean(d)
	nav.Today = nav.Date == calendar.Format(now)
	return nav
}

// leaveRange counts the days of a requested leave period.
func leaveRange(start, end string) *web.LeaveRange {
	lr := &web.LeaveRange{Start: start, End: end}
	if start == "" && end == "" {
		return lr
	}
	days, err := calendar.DaysBetween(start, end)
	switch {
	case errors.Is(err, calendar.ErrInvalidRange):
		lr.Error = "종료일이 시작일보다 빠릅니다."
	case err != nil:
		lr.Error = "휴가 기간을 올바르게 입력하세요. (YYYY-MM-DD)"
	default:
		lr.Days = days
	}
	return lr
}

// NotFound renders the 404 page inside the layout.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, web.PageNotFound, h.layout(r, "페이지를 찾을 수 없습니다", r.URL.Path, r.URL.Path))
}
