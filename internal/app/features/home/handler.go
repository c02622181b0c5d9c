package home

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/pulseboard/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler serves the service root: name, version, and who is signed in.
type Handler struct {
	Log     *zap.Logger
	Version string
}

func NewHandler(version string, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		Version: version,
	}
}

type rootResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Email   string `json:"email,omitempty"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – service info                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	resp := rootResponse{
		Service: "pulseboard",
		Version: h.Version,
	}
	if u, ok := auth.CurrentUser(r); ok {
		resp.Email = u.Email
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
