package handlers

import (
	"log/slog"
	"net/http"

	"contentforge/internal/cache"
	"contentforge/internal/models"
	"contentforge/internal/store"
)

// Vibes serves the vibe catalog for the front-end picker.
type Vibes struct {
	vibeStore *store.VibeStore
	vibeCache *cache.VibeCache
}

// NewVibes creates a new Vibes handler group.
func NewVibes(vibeStore *store.VibeStore, vibeCache *cache.VibeCache) *Vibes {
	return &Vibes{vibeStore: vibeStore, vibeCache: vibeCache}
}

// List returns the full vibe catalog ordered by name, served from the
// Valkey cache when warm. Cache failures fall through to the database.
func (h *Vibes) List(w http.ResponseWriter, r *http.Request) {
	if vibes, ok := h.vibeCache.Get(r.Context()); ok {
		writeJSON(w, http.StatusOK, map[string]any{"vibes": vibes})
		return
	}

	vibes, err := h.vibeStore.List()
	if err != nil {
		slog.Error("list vibes failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if vibes == nil {
		vibes = []models.Vibe{}
	}

	h.vibeCache.Set(r.Context(), vibes)
	writeJSON(w, http.StatusOK, map[string]any{"vibes": vibes})
}
