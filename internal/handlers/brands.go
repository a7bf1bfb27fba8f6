// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"contentforge/internal/cache"
	"contentforge/internal/middleware"
	"contentforge/internal/models"
	"contentforge/internal/store"
)

// brandNotFoundMsg covers both a missing brand and one owned by another
// user. The two cases are indistinguishable to the caller.
const brandNotFoundMsg = "brand not found or access denied"

// Brands groups all brand profile HTTP handlers.
type Brands struct {
	brandStore *store.BrandStore
	vibeStore  *store.VibeStore
	vibeCache  *cache.VibeCache
}

// NewBrands creates a new Brands handler group.
func NewBrands(brandStore *store.BrandStore, vibeStore *store.VibeStore, vibeCache *cache.VibeCache) *Brands {
	return &Brands{
		brandStore: brandStore,
		vibeStore:  vibeStore,
		vibeCache:  vibeCache,
	}
}

// brandRequest is the create/update payload. CustomVibeName is transient
// input; it is never stored on the brand itself.
type brandRequest struct {
	BrandName      string `json:"brand_name"`
	Description    string `json:"description"`
	CompanyVibe    string `json:"company_vibe"`
	CustomVibeName string `json:"custom_vibe_name"`
	SellingPoints  string `json:"selling_points"`
	Emotion        string `json:"emotion"`
}

// resolveVibe rewrites the "Custom" sentinel into a real vibe matrix row.
// It returns the vibe name to store on the brand.
func (h *Brands) resolveVibe(r *http.Request, in *brandRequest) (string, error) {
	if in.CompanyVibe != models.VibeCustom {
		return in.CompanyVibe, nil
	}

	name := strings.TrimSpace(in.CustomVibeName)
	emotion := in.Emotion
	if emotion == "" {
		emotion = "neutral"
	}

	if _, err := h.vibeStore.Ensure(name, "Custom", emotion, "Custom vibe: "+name); err != nil {
		return "", err
	}
	h.vibeCache.Invalidate(r.Context())
	return name, nil
}

// List returns the caller's brands, newest first.
func (h *Brands) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	brands, err := h.brandStore.ListByOwner(sess.UserID)
	if err != nil {
		slog.Error("list brands failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if brands == nil {
		brands = []models.Brand{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"brands": brands})
}

// Create validates and stores a new brand profile.
func (h *Brands) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var in brandRequest
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validateBrand(&in); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	vibeName, err := h.resolveVibe(r, &in)
	if err != nil {
		slog.Error("resolve custom vibe failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	brand, err := h.brandStore.Create(&models.Brand{
		UserID:        sess.UserID,
		BrandName:     strings.TrimSpace(in.BrandName),
		Description:   in.Description,
		CompanyVibe:   vibeName,
		SellingPoints: in.SellingPoints,
		Emotion:       in.Emotion,
	})
	if err != nil {
		slog.Error("create brand failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"brand": brand})
}

// Get returns one of the caller's brands by id.
func (h *Brands) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := urlUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, brandNotFoundMsg)
		return
	}

	brand, err := h.brandStore.FindForOwner(id, sess.UserID)
	if err != nil {
		slog.Error("find brand failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if brand == nil {
		writeError(w, http.StatusNotFound, brandNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"brand": brand})
}

// Update validates and replaces the mutable fields of a brand.
func (h *Brands) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := urlUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, brandNotFoundMsg)
		return
	}

	var in brandRequest
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validateBrand(&in); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	vibeName, err := h.resolveVibe(r, &in)
	if err != nil {
		slog.Error("resolve custom vibe failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	brand, err := h.brandStore.Update(&models.Brand{
		ID:            id,
		BrandName:     strings.TrimSpace(in.BrandName),
		Description:   in.Description,
		CompanyVibe:   vibeName,
		SellingPoints: in.SellingPoints,
		Emotion:       in.Emotion,
	}, sess.UserID)
	if err != nil {
		slog.Error("update brand failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if brand == nil {
		writeError(w, http.StatusNotFound, brandNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"brand": brand})
}

// Delete removes a brand. Its generated content cascades away with it.
// Deleting an already-deleted brand reports NotFound.
func (h *Brands) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := urlUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, brandNotFoundMsg)
		return
	}

	deleted, err := h.brandStore.Delete(id, sess.UserID)
	if err != nil {
		slog.Error("delete brand failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, brandNotFoundMsg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
