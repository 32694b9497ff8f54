package httpapi

import "net/http"

type registerRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := s.auth.Register(r.Context(), req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "User registered successfully",
		"token":    result.Token,
		"username": result.Username,
		"success":  true,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(r.Context(), w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Login successful",
		"token":    result.Token,
		"username": result.Username,
		"success":  true,
	})
}

// handleLogout is a stateless acknowledgement: tokens are not tracked
// server-side, so the client just discards its copy.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Logged out successfully",
		"success": true,
	})
}
