// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON HTTP API. Handlers are grouped per
// resource (Auth, Brands, Content, Vibes) and constructed with their store
// dependencies. Responses use two envelopes: {"error": "..."} for single
// failures and {"errors": {field: message}} for validation.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// maxBodyBytes caps request bodies; brand profiles and prompts are small.
const maxBodyBytes = 1 << 20

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError emits a single-message error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationErrors emits the field-keyed validation envelope. Every
// failing field is reported in one response.
func writeValidationErrors(w http.ResponseWriter, errs map[string]string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}

// readJSON decodes the request body into dst, rejecting unknown fields and
// oversized bodies.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// urlUUID parses the named chi URL parameter as a UUID.
func urlUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

// Health reports whether the service's backing stores are reachable.
type Health struct {
	db     *sql.DB
	valkey *redis.Client
}

// NewHealth creates the health check handler.
func NewHealth(db *sql.DB, valkey *redis.Client) *Health {
	return &Health{db: db, valkey: valkey}
}

// Check pings PostgreSQL and Valkey. Returns 503 when either is down.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if err := h.db.PingContext(ctx); err != nil {
		dbStatus = "down"
	}

	valkeyStatus := "up"
	if err := h.valkey.Ping(ctx).Err(); err != nil {
		valkeyStatus = "down"
	}

	status := http.StatusOK
	overall := "ok"
	if dbStatus != "up" || valkeyStatus != "up" {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	writeJSON(w, status, map[string]string{
		"status":   overall,
		"database": dbStatus,
		"valkey":   valkeyStatus,
	})
}
