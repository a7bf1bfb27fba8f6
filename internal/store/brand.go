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

// BrandStore handles all brand profile database operations. Every query is
// scoped to the owning user; a brand owned by someone else is
// indistinguishable from a missing one.
type BrandStore struct {
	db *sql.DB
}

// NewBrandStore creates a new BrandStore with the given database connection.
func NewBrandStore(db *sql.DB) *BrandStore {
	return &BrandStore{db: db}
}

// ListByOwner returns all brands owned by userID, newest first.
func (s *BrandStore) ListByOwner(userID uuid.UUID) ([]models.Brand, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, brand_name, description, company_vibe, selling_points, emotion, created_at, updated_at
		FROM brands
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var brands []models.Brand
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.BrandName, &b.Description, &b.CompanyVibe,
			&b.SellingPoints, &b.Emotion, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

// FindForOwner retrieves a brand by id when it belongs to userID.
// Returns nil when the brand is missing or owned by another user.
func (s *BrandStore) FindForOwner(id, userID uuid.UUID) (*models.Brand, error) {
	b := &models.Brand{}
	err := s.db.QueryRow(`
		SELECT id, user_id, brand_name, description, company_vibe, selling_points, emotion, created_at, updated_at
		FROM brands WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&b.ID, &b.UserID, &b.BrandName, &b.Description, &b.CompanyVibe,
		&b.SellingPoints, &b.Emotion, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find brand: %w", err)
	}
	return b, nil
}

// Create inserts a new brand and returns it with the generated ID.
func (s *BrandStore) Create(b *models.Brand) (*models.Brand, error) {
	result := &models.Brand{}
	err := s.db.QueryRow(`
		INSERT INTO brands (user_id, brand_name, description, company_vibe, selling_points, emotion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, brand_name, description, company_vibe, selling_points, emotion, created_at, updated_at
	`, b.UserID, b.BrandName, b.Description, b.CompanyVibe, b.SellingPoints, b.Emotion,
	).Scan(
		&result.ID, &result.UserID, &result.BrandName, &result.Description, &result.CompanyVibe,
		&result.SellingPoints, &result.Emotion, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return result, nil
}

// Update replaces the mutable fields of a brand owned by userID.
// Returns nil when the brand is missing or owned by another user.
func (s *BrandStore) Update(b *models.Brand, userID uuid.UUID) (*models.Brand, error) {
	result := &models.Brand{}
	err := s.db.QueryRow(`
		UPDATE brands
		SET brand_name = $1, description = $2, company_vibe = $3,
		    selling_points = $4, emotion = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, brand_name, description, company_vibe, selling_points, emotion, created_at, updated_at
	`, b.BrandName, b.Description, b.CompanyVibe, b.SellingPoints, b.Emotion, b.ID, userID,
	).Scan(
		&result.ID, &result.UserID, &result.BrandName, &result.Description, &result.CompanyVibe,
		&result.SellingPoints, &result.Emotion, &result.CreatedAt, &result.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return result, nil
}

// Delete removes a brand owned by userID. Returns false when nothing was
// deleted, either because the brand does not exist or is owned by someone
// else. Generated content rows cascade at the schema level.
func (s *BrandStore) Delete(id, userID uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM brands WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete brand: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete brand rows affected: %w", err)
	}
	return n > 0, nil
}
