package handler

import (
	"context"
	"net/http"

	"github.com/corebank/ledgerengine/internal/usecase"
)

// ConfigService administers the configuration snapshot.
type ConfigService interface {
	Refresh(ctx context.Context) (usecase.SnapshotStats, error)
	Current() (usecase.SnapshotStats, error)
}

// ConfigHandler handles configuration requests.
type ConfigHandler struct {
	config ConfigService
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(config ConfigService) *ConfigHandler {
	return &ConfigHandler{config: config}
}

// Refresh reloads the configuration snapshot.
func (h *ConfigHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	stats, err := h.config.Refresh(r.Context())
	if err != nil {
		writeDomainError(w, r, "failed to refresh configuration", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Version returns the active snapshot stats.
func (h *ConfigHandler) Version(w http.ResponseWriter, r *http.Request) {
	stats, err := h.config.Current()
	if err != nil {
		writeDomainError(w, r, "no configuration loaded", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
