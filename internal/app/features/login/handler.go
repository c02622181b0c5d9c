// internal/app/features/login/handler.go
package login

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/pulseboard/internal/app/system/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Handler signs callers in against the shared dashboard credentials.
// There is no user collection behind this: one email, one bcrypt hash,
// both from configuration.
type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.Manager

	// DashboardEmail and PasswordHash are the configured credentials.
	// PasswordHash is a bcrypt hash, never the plain password.
	DashboardEmail string
	PasswordHash   string
}

func NewHandler(sessionMgr *auth.Manager, email, passwordHash string, logger *zap.Logger) *Handler {
	return &Handler{
		Log:            logger,
		SessionMgr:     sessionMgr,
		DashboardEmail: email,
		PasswordHash:   passwordHash,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email string `json:"email"`
}

// ServeLogin handles POST /login. Accepts JSON or form-encoded
// credentials; on success the session cookie is set and the signed-in
// email echoed back.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	req, err := readCredentials(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if !h.credentialsMatch(req.Email, req.Password) {
		h.Log.Info("login rejected", zap.String("email", req.Email))
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, req.Email); err != nil {
		h.Log.Error("login: save session", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(loginResponse{Email: req.Email})
}

func (h *Handler) credentialsMatch(email, password string) bool {
	if !strings.EqualFold(strings.TrimSpace(email), h.DashboardEmail) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(password)) == nil
}

func readCredentials(r *http.Request) (loginRequest, error) {
	var req loginRequest

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return loginRequest{}, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return loginRequest{}, err
	}
	req.Email = r.PostFormValue("email")
	req.Password = r.PostFormValue("password")
	return req, nil
}
