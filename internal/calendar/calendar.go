// Package calendar holds the date arithmetic behind the attendance and
// leave screens.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// ErrInvalidRange is returned when a range ends before it starts.
var ErrInvalidRange = errors.New("end date is before start date")

// ErrUnknownStep is returned by Navigate for steps other than prev, next
// and today.
var ErrUnknownStep = errors.New("unknown step")

// Steps accepted by Navigate.
const (
	StepPrev  = "prev"
	StepNext  = "next"
	StepToday = "today"
)

var weekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// Clock returns the current time. Handlers take one so tests can pin "today".
type Clock func() time.Time

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Parse reads a YYYY-MM-DD date in loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string { return t.Format(Layout) }

// Navigate moves the displayed date one day back or forward, or resets it to
// the day of now.
func Navigate(current time.Time, step string, now time.Time) (time.Time, error) {
	switch step {
	case StepPrev:
		return Day(current).AddDate(0, 0, -1), nil
	case StepNext:
		return Day(current).AddDate(0, 0, 1), nil
	case StepToday:
		return Day(now), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownStep, step)
}

// Resolve parses date (empty means the day of now) and applies an optional
// step to it.
func Resolve(date, step string, now time.Time) (time.Time, error) {
	current := Day(now)
	if date != "" {
		d, err := Parse(date, now.Location())
		if err != nil {
			return time.Time{}, err
		}
		current = d
	}
	if step == "" {
		return current, nil
	}
	return Navigate(current, step, now)
}

// LeaveDays counts calendar days in [from, to], both ends included.
func LeaveDays(from, to time.Time) (int, error) {
	a := civil(from)
	b := civil(to)
	if b.Before(a) {
		return 0, ErrInvalidRange
	}
	return int(b.Sub(a).Hours()/24) + 1, nil
}

// DaysBetween parses a YYYY-MM-DD range and counts its days, both ends
// included.
func DaysBetween(from, to string) (int, error) {
	a, err := Parse(from, time.UTC)
	if err != nil {
		return 0, err
	}
	b, err := Parse(to, time.UTC)
	if err != nil {
		return 0, err
	}
	return LeaveDays(a, b)
}

// civil maps a date to UTC midnight so DST shifts cannot skew day counts.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatKorean renders t the way the attendance header shows it, for example
// "2023년 6월 1일 목요일".
func FormatKorean(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일 %s", t.Year(), int(t.Month()), t.Day(), weekdays[t.Weekday()])
}
