package format

import (
	"strings"
	"time"

	"github.com/footprint-tools/fanout/internal/config"
)

// Layout holds resolved Go time layouts for display_date and display_time.
type Layout struct {
	Date      string
	DateShort string
	Time      string
}

// NewLayout resolves the display_date and display_time config values.
// Empty values fall back to "Jan 02" and "24h".
func NewLayout(displayDate, displayTime string) Layout {
	if displayDate == "" {
		displayDate = "Jan 02"
	}

	l := Layout{Time: "15:04"}
	if displayTime == "12h" {
		l.Time = "3:04 PM"
	}

	switch displayDate {
	case "mm/dd/yyyy":
		l.Date, l.DateShort = "01/02/2006", "01/02"
	case "yyyy-mm-dd":
		l.Date, l.DateShort = "2006-01-02", "01-02"
	case "dd/mm/yyyy":
		l.Date, l.DateShort = "02/01/2006", "02/01"
	default:
		l.Date, l.DateShort = displayDate, stripYear(displayDate)
	}

	return l
}

// stripYear derives a short layout from a custom one by removing year patterns.
func stripYear(layout string) string {
	short := layout
	for _, year := range []string{"2006", "/06", "-06", " 06"} {
		short = strings.ReplaceAll(short, year, "")
	}
	short = strings.Trim(strings.TrimSpace(short), "/-")
	if short == "" {
		return "Jan 02"
	}
	return short
}

// DateTime formats t as e.g. "23/01/2024 15:04".
func (l Layout) DateTime(t time.Time) string {
	return t.Format(l.Date) + " " + t.Format(l.Time)
}

// DateTimeShort formats t without the year, e.g. "Jan 23 3:04 PM".
func (l Layout) DateTimeShort(t time.Time) string {
	return t.Format(l.DateShort) + " " + t.Format(l.Time)
}

func current() Layout {
	date, _ := config.Get("display_date")
	clock, _ := config.Get("display_time")
	return NewLayout(date, clock)
}

// DateTime formats t using the configured layout.
func DateTime(t time.Time) string {
	return current().DateTime(t.Local())
}

// DateTimeShort formats t using the configured layout, without the year.
func DateTimeShort(t time.Time) string {
	return current().DateTimeShort(t.Local())
}
