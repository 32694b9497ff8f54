package httpapi

import (
	"net/http"
	"strconv"

	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	stats, err := s.analytics.Dashboard(r.Context(), identity)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleInvestmentTotal(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	value, err := s.analytics.TotalInvestment(r.Context(), identity)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, value)
}

func (s *Server) handleProfitTotal(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	value, err := s.analytics.TotalProfit(r.Context(), identity)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, value)
}

func (s *Server) handleReportOverall(w http.ResponseWriter, r *http.Request) {
	s.report(w, r, models.Query{})
}

func (s *Server) handleReportMonthly(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}
	from, to := monthRange(year, month)
	s.report(w, r, models.Query{From: from, To: to})
}

func (s *Server) handleReportBySport(w http.ResponseWriter, r *http.Request) {
	sport := r.URL.Query().Get("sportType")
	if sport == "" {
		writeError(w, http.StatusBadRequest, "sportType query parameter is required")
		return
	}
	s.report(w, r, models.Query{SportType: sport})
}

func (s *Server) handleReportDateRange(w http.ResponseWriter, r *http.Request) {
	q, ok := parseListQuery(w, r)
	if !ok {
		return
	}
	if !q.HasDateRange() {
		writeError(w, http.StatusBadRequest, "startDate and endDate query parameters are required")
		return
	}
	s.report(w, r, q)
}

func (s *Server) report(w http.ResponseWriter, r *http.Request, q models.Query) {
	identity, _ := auth.IdentityFromContext(r.Context())

	report, err := s.analytics.Report(r.Context(), identity, q)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func parseYearMonth(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year query parameter must be a number")
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "month query parameter must be between 1 and 12")
		return 0, 0, false
	}
	return year, month, true
}
