// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"contentforge/internal/ai"
)

// Admin groups administrative HTTP handlers. Currently that is runtime
// AI provider selection; the config value only sets the boot default.
type Admin struct {
	registry *ai.Registry // nil when no provider is configured
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(registry *ai.Registry) *Admin {
	return &Admin{registry: registry}
}

type setProviderRequest struct {
	Provider string `json:"provider"`
}

// AIProviders reports the active provider and every provider with a key.
func (a *Admin) AIProviders(w http.ResponseWriter, r *http.Request) {
	if a.registry == nil {
		writeJSON(w, http.StatusOK, map[string]any{"active": "", "available": []string{}})
		return
	}

	available := a.registry.Available()
	if available == nil {
		available = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"active":    a.registry.ActiveName(),
		"available": available,
	})
}

// AISetProvider switches the active AI provider at runtime. Only providers
// with a configured API key can be selected.
func (a *Admin) AISetProvider(w http.ResponseWriter, r *http.Request) {
	if a.registry == nil {
		writeError(w, http.StatusBadRequest, "no AI providers are configured")
		return
	}

	var in setProviderRequest
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(in.Provider)
	if name == "" {
		writeValidationErrors(w, map[string]string{"provider": "Provider is required"})
		return
	}

	if !a.registry.HasProvider(name) {
		writeError(w, http.StatusBadRequest, "provider is not available (no API key configured)")
		return
	}
	if err := a.registry.SetActive(name); err != nil {
		slog.Warn("failed to switch ai provider", "provider", name, "error", err)
		writeError(w, http.StatusBadRequest, "provider is not available (no API key configured)")
		return
	}

	slog.Info("ai provider switched", "provider", name)
	writeJSON(w, http.StatusOK, map[string]any{
		"active":    a.registry.ActiveName(),
		"available": a.registry.Available(),
	})
}
