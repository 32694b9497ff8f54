package httpapi

import (
	"fmt"
	"net/http"

	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/services"
)

func (s *Server) handleExportOverall(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	export, err := s.exports.Overall(r.Context(), identity)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeCSV(w, export)
}

func (s *Server) handleExportMonthly(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	export, err := s.exports.Monthly(r.Context(), identity, year, month)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeCSV(w, export)
}

func (s *Server) handleExportBySport(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	sport := r.URL.Query().Get("sportType")
	if sport == "" {
		writeError(w, http.StatusBadRequest, "sportType query parameter is required")
		return
	}

	export, err := s.exports.BySport(r.Context(), identity, sport)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeCSV(w, export)
}

func writeCSV(w http.ResponseWriter, export *services.Export) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}
