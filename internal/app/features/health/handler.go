package health

import (
	"encoding/json"
	"net/http"

	"github.com/echoboard/echoboard/internal/app/mock"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Srv *mock.Server
	Log *zap.Logger
}

// NewHandler constructs a health Handler over the mock engine.
func NewHandler(srv *mock.Server, logger *zap.Logger) *Handler {
	return &Handler{Srv: srv, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Projects int    `json:"projects"`
	Ideas    int    `json:"ideas"`
	Users    int    `json:"users"`
}

// Serve handles GET /health.
//
// The mock backend has no database to ping, so health is always 200
// with a snapshot of the in-memory store:
//
//	{ "status":"ok", "projects":2, "ideas":14, "users":5 }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	for _, p := range h.Srv.Store().Projects() {
		resp.Projects++
		resp.Ideas += len(p.Ideas)
		resp.Users += len(p.Users)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
