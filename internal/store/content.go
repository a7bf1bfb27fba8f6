// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"contentforge/internal/models"
)

// ContentStore handles generated content database operations. Rows are
// immutable after insert; callers verify brand ownership before any write.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

// Create inserts a new generation result and returns it with the generated ID.
func (s *ContentStore) Create(brandID uuid.UUID, contentType models.ContentType, prompt, generatedText string) (*models.GeneratedContent, error) {
	c := &models.GeneratedContent{}
	err := s.db.QueryRow(`
		INSERT INTO generated_content (brand_id, content_type, prompt, generated_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, brand_id, content_type, prompt, generated_text, created_at
	`, brandID, contentType, prompt, generatedText).Scan(
		&c.ID, &c.BrandID, &c.ContentType, &c.Prompt, &c.GeneratedText, &c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create generated content: %w", err)
	}
	return c, nil
}

// ListByBrand returns all generation results for a brand, newest first.
func (s *ContentStore) ListByBrand(brandID uuid.UUID) ([]models.GeneratedContent, error) {
	rows, err := s.db.Query(`
		SELECT id, brand_id, content_type, prompt, generated_text, created_at
		FROM generated_content
		WHERE brand_id = $1
		ORDER BY created_at DESC
	`, brandID)
	if err != nil {
		return nil, fmt.Errorf("list generated content: %w", err)
	}
	defer rows.Close()

	var items []models.GeneratedContent
	for rows.Next() {
		var c models.GeneratedContent
		if err := rows.Scan(
			&c.ID, &c.BrandID, &c.ContentType, &c.Prompt, &c.GeneratedText, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan generated content: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a generation result by its UUID. Returns nil if not found.
func (s *ContentStore) FindByID(id uuid.UUID) (*models.GeneratedContent, error) {
	c := &models.GeneratedContent{}
	err := s.db.QueryRow(`
		SELECT id, brand_id, content_type, prompt, generated_text, created_at
		FROM generated_content WHERE id = $1
	`, id).Scan(
		&c.ID, &c.BrandID, &c.ContentType, &c.Prompt, &c.GeneratedText, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find generated content by id: %w", err)
	}
	return c, nil
}

// Delete removes a generation result. Returns false when nothing was deleted.
func (s *ContentStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM generated_content WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete generated content: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete generated content rows affected: %w", err)
	}
	return n > 0, nil
}
