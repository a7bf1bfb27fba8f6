// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"contentforge/internal/models"
)

// VibeStore handles vibe matrix database operations. Vibe rows are shared
// reference data with no owner.
type VibeStore struct {
	db *sql.DB
}

// NewVibeStore creates a new VibeStore with the given database connection.
func NewVibeStore(db *sql.DB) *VibeStore {
	return &VibeStore{db: db}
}

// List returns the full vibe catalog ordered by name.
func (s *VibeStore) List() ([]models.Vibe, error) {
	rows, err := s.db.Query(`
		SELECT id, vibe_name, tone_keywords, emotion, description, created_at
		FROM vibe_matrix
		ORDER BY vibe_name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list vibes: %w", err)
	}
	defer rows.Close()

	var vibes []models.Vibe
	for rows.Next() {
		var v models.Vibe
		if err := rows.Scan(
			&v.ID, &v.Name, &v.ToneKeywords, &v.Emotion, &v.Description, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vibe: %w", err)
		}
		vibes = append(vibes, v)
	}
	return vibes, rows.Err()
}

// FindByName retrieves a vibe by its name. Returns nil if not found; a
// missing vibe is not an error, generation degrades to neutral defaults.
func (s *VibeStore) FindByName(name string) (*models.Vibe, error) {
	v := &models.Vibe{}
	err := s.db.QueryRow(`
		SELECT id, vibe_name, tone_keywords, emotion, description, created_at
		FROM vibe_matrix WHERE vibe_name = $1
	`, name).Scan(
		&v.ID, &v.Name, &v.ToneKeywords, &v.Emotion, &v.Description, &v.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find vibe by name: %w", err)
	}
	return v, nil
}

// Ensure inserts a vibe if absent and returns the stored row. When the name
// already exists the existing row is returned untouched; two concurrent
// callers racing on the same new name are resolved by the unique index on
// vibe_name, first writer wins and the loser reads the winner's row back.
func (s *VibeStore) Ensure(name, tone, emotion, description string) (*models.Vibe, error) {
	v := &models.Vibe{}
	err := s.db.QueryRow(`
		INSERT INTO vibe_matrix (vibe_name, tone_keywords, emotion, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (vibe_name) DO NOTHING
		RETURNING id, vibe_name, tone_keywords, emotion, description, created_at
	`, name, tone, emotion, description).Scan(
		&v.ID, &v.Name, &v.ToneKeywords, &v.Emotion, &v.Description, &v.CreatedAt,
	)
	if err == nil {
		return v, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("ensure vibe: %w", err)
	}

	// Conflict path: the row already existed, read it back.
	existing, err := s.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("ensure vibe %s: row vanished after conflict", name)
	}
	return existing, nil
}
