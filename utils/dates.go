package utils

import (
	"fmt"
	"strings"
	"time"
)

// Accepted layouts, tried in order. Single-digit day and month are allowed.
var dateLayouts = []string{
	"2006-1-2", // input type=date
	"2/1/2006", // DD/MM/YYYY
}

// DateResult is the outcome of ParseDate. Parsing never fails; when the
// input could not be used the result carries today's date and the reason.
type DateResult struct {
	Date      time.Time
	Defaulted bool
	Reason    string
}

func (r DateResult) Value() time.Time {
	return r.Date
}

// ParseDate normalizes ISO or day-first text into a calendar date at UTC
// midnight. Empty or unparsable text yields today.
func ParseDate(text string, today time.Time) DateResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return DateResult{Date: DateOf(today), Defaulted: true, Reason: "empty date"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return DateResult{Date: DateOf(t)}
		}
	}
	return DateResult{
		Date:      DateOf(today),
		Defaulted: true,
		Reason:    fmt.Sprintf("unrecognised date %q", text),
	}
}

// DateOf drops the clock part, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves a month start by n calendar months; time.Date rolls the year.
func AddMonths(monthStart time.Time, n int) time.Time {
	year, month, _ := monthStart.Date()
	return time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}

// MonthLabel renders "Jan 2025".
func MonthLabel(monthStart time.Time) string {
	return monthStart.Format("Jan 2006")
}

// Compact renders the YYYYMMDD form used in human-readable codes.
func Compact(t time.Time) string {
	return t.Format("20060102")
}
