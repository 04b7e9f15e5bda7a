package utils

import (
	"strings"
	"time"
)

// DateLayoutBR is the day-first layout the spreadsheets use.
const DateLayoutBR = "02/01/2006"

var monthsPT = map[string]string{
	"January": "Janeiro", "February": "Fevereiro", "March": "Março",
	"April": "Abril", "May": "Maio", "June": "Junho",
	"July": "Julho", "August": "Agosto", "September": "Setembro",
	"October": "Outubro", "November": "Novembro", "December": "Dezembro",
}

var weekdaysPT = map[time.Weekday]string{
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// WeekdayOrderPT lists the Portuguese weekday names Monday-first, the order
// the dashboards display them in.
var WeekdayOrderPT = []string{
	"Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira",
	"Sexta-feira", "Sábado", "Domingo",
}

// ParseDateBR parses a DD/MM/YYYY cell. Anything else (blank, ISO dates,
// free text) yields ok=false; an unparseable date is absent, not an error.
func ParseDateBR(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayoutBR, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDateBR renders a date back in the sheet's DD/MM/YYYY convention.
func FormatDateBR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutBR)
}

// TranslateMonthPT replaces English month names in a formatted string with
// their Portuguese equivalents.
func TranslateMonthPT(text string) string {
	for en, pt := range monthsPT {
		text = strings.ReplaceAll(text, en, pt)
	}
	return text
}

// MonthYearPT renders a date as "Janeiro/2006" for display and grouping.
func MonthYearPT(t time.Time) string {
	return TranslateMonthPT(t.Format("January/2006"))
}

// WeekdayPT returns the Portuguese name of the date's weekday.
func WeekdayPT(t time.Time) string {
	return weekdaysPT[t.Weekday()]
}

// Midnight truncates a time to the start of its day, so that inclusive
// date-range comparisons are not thrown off by time-of-day components.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
