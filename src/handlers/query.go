package handlers

import (
	"net/http"
	"time"

	"github.com/Gabrielkempp/biasi/src/services"
	"github.com/Gabrielkempp/biasi/src/utils"
)

// parsePeriodQuery reads the shared date-window parameters. Dates are
// accepted in ISO (2006-01-02) or Brazilian (02/01/2006) form; a bad value
// is treated as absent rather than rejected.
func parsePeriodQuery(r *http.Request) services.PeriodQuery {
	q := services.PeriodQuery{Preset: r.URL.Query().Get("preset")}
	if t, ok := parseQueryDate(r.URL.Query().Get("start")); ok {
		q.Start = t
	}
	if t, ok := parseQueryDate(r.URL.Query().Get("end")); ok {
		q.End = t
	}
	return q
}

func parseQueryDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return utils.ParseDateBR(s)
}
