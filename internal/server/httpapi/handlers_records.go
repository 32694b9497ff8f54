package httpapi

import (
	"net/http"

	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
)

func (s *Server) handleRecordCreate(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	var in models.RecordInput
	if !decodeBody(w, r, &in) {
		return
	}

	record, err := s.records.Create(r.Context(), identity, in)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Investment record created successfully",
		"data":    record,
		"success": true,
	})
}

func (s *Server) handleRecordList(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	q, ok := parseListQuery(w, r)
	if !ok {
		return
	}

	list, err := s.records.List(r.Context(), identity, q)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	if list == nil {
		list = []*models.Record{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleRecordGet(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	record, err := s.records.Get(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleRecordUpdate(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	var in models.RecordInput
	if !decodeBody(w, r, &in) {
		return
	}

	record, err := s.records.Update(r.Context(), identity, r.PathValue("id"), in)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Investment record updated successfully",
		"data":    record,
		"success": true,
	})
}

func (s *Server) handleRecordDelete(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	if err := s.records.Delete(r.Context(), identity, r.PathValue("id")); err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Investment record deleted successfully",
		"success": true,
	})
}
