package httpapi

import (
	"net/http"

	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
)

func (s *Server) handleScheduleCreate(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	var in models.ScheduleInput
	if !decodeBody(w, r, &in) {
		return
	}

	schedule, err := s.schedules.Create(r.Context(), identity, in)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Schedule created successfully",
		"data":    schedule,
		"success": true,
	})
}

func (s *Server) handleScheduleList(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	q, ok := parseListQuery(w, r)
	if !ok {
		return
	}

	list, err := s.schedules.List(r.Context(), identity, q)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	if list == nil {
		list = []*models.Schedule{}
	}

	user := "anonymous"
	if identity.IsAuthenticated() {
		user = identity.Username()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"schedules": list,
		"success":   true,
		"user":      user,
	})
}

func (s *Server) handleScheduleUpcoming(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	list, err := s.schedules.Upcoming(r.Context(), identity)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	if list == nil {
		list = []*models.Schedule{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleScheduleGet(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	schedule, err := s.schedules.Get(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (s *Server) handleScheduleDelete(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	if err := s.schedules.Delete(r.Context(), identity, r.PathValue("id")); err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Schedule deleted successfully",
		"success": true,
	})
}
