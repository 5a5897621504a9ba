package common

import (
	"errors"
	"net/http"

	"erp/internal/calendar"
	"erp/internal/response"
	"erp/internal/validation"
)

// CalendarDay is the date header of the attendance screen.
type CalendarDay struct {
	Date    string `json:"date"`
	Display string `json:"display"`
	Today   bool   `json:"today"`
}

// Calendar moves the displayed date. Query: date (default today) and an
// optional step of prev, next or today.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	current, err := calendar.Resolve(r.URL.Query().Get("date"), r.URL.Query().Get("step"), now)
	if errors.Is(err, calendar.ErrUnknownStep) {
		response.Err(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		response.Err(w, "date must be a valid date (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	response.JSON(w, CalendarDay{
		Date:    calendar.Format(current),
		Display: calendar.FormatKorean(current),
		Today:   calendar.Format(current) == calendar.Format(now),
	})
}

// LeaveDaysResult is the day count of a leave request.
type LeaveDaysResult struct {
	From string `json:"from"`
	To   string `json:"to"`
	Days int    `json:"days"`
}

// LeaveDays counts the days of a leave request, both ends included.
func (h *Handler) LeaveDays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")

	ve := &validation.ValidationErrors{}
	validation.RequireField(ve, "from", from)
	validation.RequireField(ve, "to", to)
	validation.ValidateDate(ve, "from", from)
	validation.ValidateDate(ve, "to", to)
	if ve.HasErrors() {
		response.Error(w, ve)
		return
	}

	days, err := calendar.DaysBetween(from, to)
	if errors.Is(err, calendar.ErrInvalidRange) {
		ve.Add("to", "must not be before from")
		response.Error(w, ve)
		return
	}
	if err != nil {
		response.Err(w, err.Error(), http.StatusBadRequest)
		return
	}
	response.JSON(w, LeaveDaysResult{From: from, To: to, Days: days})
}
