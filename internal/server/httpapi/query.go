package httpapi

import (
	"net/http"
	"time"

	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/timex"
)

const badDateMessage = "Invalid date format. Use YYYY-MM-DD format."

// parseListQuery reads the shared sportType/startDate/endDate filter
// parameters. On a malformed date it writes the error response and reports
// false.
func parseListQuery(w http.ResponseWriter, r *http.Request) (models.Query, bool) {
	q := models.Query{SportType: r.URL.Query().Get("sportType")}

	var ok bool
	if q.From, ok = parseDateParam(w, r, "startDate"); !ok {
		return models.Query{}, false
	}
	if q.To, ok = parseDateParam(w, r, "endDate"); !ok {
		return models.Query{}, false
	}
	return q, true
}

func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (timex.Date, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return timex.Date{}, true
	}
	d, err := timex.ParseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, badDateMessage)
		return timex.Date{}, false
	}
	return d, true
}

// monthRange returns the first and last day of the given calendar month.
func monthRange(year, month int) (timex.Date, timex.Date) {
	from := timex.NewDate(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
	return from, timex.NewDate(from.AddDate(0, 1, -1))
}
