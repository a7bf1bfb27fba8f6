// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"contentforge/internal/ai"
	"contentforge/internal/generator"
	"contentforge/internal/middleware"
	"contentforge/internal/models"
	"contentforge/internal/store"
)

// contentNotFoundMsg mirrors brandNotFoundMsg for generated content rows.
const contentNotFoundMsg = "content not found or access denied"

// aiGenerateTimeout bounds a single provider call. The template fallback
// makes a slow provider a latency problem, not a correctness one.
const aiGenerateTimeout = 30 * time.Second

// Content groups generation and content history HTTP handlers.
type Content struct {
	brandStore   *store.BrandStore
	contentStore *store.ContentStore
	vibeStore    *store.VibeStore
	registry     *ai.Registry // nil when no provider is configured
}

// NewContent creates a new Content handler group. registry may be nil, in
// which case every generation uses the deterministic templates.
func NewContent(brandStore *store.BrandStore, contentStore *store.ContentStore, vibeStore *store.VibeStore, registry *ai.Registry) *Content {
	return &Content{
		brandStore:   brandStore,
		contentStore: contentStore,
		vibeStore:    vibeStore,
		registry:     registry,
	}
}

type generateRequest struct {
	ContentType models.ContentType `json:"content_type"`
	Prompt      string             `json:"prompt"`
}

// Generate produces marketing copy for one of the caller's brands and
// records it. The deterministic template output is the baseline; a
// configured AI provider may replace the text, and any provider failure
// falls back to the template.
func (h *Content) Generate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	brandID, err := urlUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, brandNotFoundMsg)
		return
	}

	var in generateRequest
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validateGeneration(&in); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	brand, err := h.brandStore.FindForOwner(brandID, sess.UserID)
	if err != nil {
		slog.Error("find brand for generation failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if brand == nil {
		writeError(w, http.StatusNotFound, brandNotFoundMsg)
		return
	}

	// A missing vibe row is fine, generation degrades to neutral defaults.
	vibe, err := h.vibeStore.FindByName(brand.CompanyVibe)
	if err != nil {
		slog.Warn("vibe lookup failed, using defaults", "vibe", brand.CompanyVibe, "error", err)
		vibe = nil
	}

	text := generator.Generate(brand, vibe, in.ContentType, in.Prompt)

	if providerText, ok := h.generateWithProvider(r.Context(), brand, vibe, &in); ok {
		text = providerText
	}

	// A request abandoned mid-generation must not leave a record behind.
	// The provider path reports cancellation as an ordinary failure, so
	// check the request context before the insert.
	if err := r.Context().Err(); err != nil {
		slog.Info("generation abandoned before save", "brand_id", brand.ID, "reason", err)
		return
	}

	record, err := h.contentStore.Create(brand.ID, in.ContentType, in.Prompt, text)
	if err != nil {
		slog.Error("store generated content failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"content": record})
}

// generateWithProvider runs the moderation check and the active provider.
// Returns ok=false whenever the template text should stand: no registry,
// no active provider, flagged prompt, provider error, or empty output.
func (h *Content) generateWithProvider(ctx context.Context, brand *models.Brand, vibe *models.Vibe, in *generateRequest) (string, bool) {
	if h.registry == nil {
		return "", false
	}
	if _, err := h.registry.Active(); err != nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, aiGenerateTimeout)
	defer cancel()

	if in.Prompt != "" {
		mod, err := h.registry.CheckPrompt(ctx, in.Prompt)
		if err != nil {
			slog.Warn("moderation check failed, using template output", "error", err)
			return "", false
		}
		if !mod.Safe {
			slog.Info("prompt flagged by moderation", "categories", mod.Categories)
			return "", false
		}
	}

	system, user := generator.Prompts(brand, vibe, in.ContentType, in.Prompt)
	text, err := h.registry.Generate(ctx, system, user)
	if err != nil {
		slog.Warn("ai generation failed, using template output",
			"provider", h.registry.ActiveName(), "error", err)
		return "", false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	return text, true
}

// History returns all generation results for a brand, newest first.
func (h *Content) History(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	brandID, err := urlUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, brandNotFoundMsg)
		return
	}

	brand, err := h.brandStore.FindForOwner(brandID, sess.UserID)
	if err != nil {
		slog.Error("find brand for history failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if brand == nil {
		writeError(w, http.StatusNotFound, brandNotFoundMsg)
		return
	}

	items, err := h.contentStore.ListByBrand(brand.ID)
	if err != nil {
		slog.Error("list generated content failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if items == nil {
		items = []models.GeneratedContent{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"content": items})
}

// Delete removes one generation result. Ownership is checked through the
// parent brand; a repeat delete reports NotFound.
func (h *Content) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := urlUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, contentNotFoundMsg)
		return
	}

	record, err := h.contentStore.FindByID(id)
	if err != nil {
		slog.Error("find generated content failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, contentNotFoundMsg)
		return
	}

	brand, err := h.brandStore.FindForOwner(record.BrandID, sess.UserID)
	if err != nil {
		slog.Error("owner check for content delete failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if brand == nil {
		writeError(w, http.StatusNotFound, contentNotFoundMsg)
		return
	}

	deleted, err := h.contentStore.Delete(record.ID)
	if err != nil {
		slog.Error("delete generated content failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, contentNotFoundMsg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
