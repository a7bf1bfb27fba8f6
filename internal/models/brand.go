// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// VibeCustom is the sentinel value a client sends in company_vibe to
// request a custom vibe. It is rewritten to the custom vibe's name before
// the brand is stored; a persisted brand never carries this value.
const VibeCustom = "Custom"

// Brand represents a brand profile owned by a single user. CompanyVibe
// always names a row in the vibe matrix once the brand is persisted.
type Brand struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	BrandName     string    `json:"brand_name"`
	Description   string    `json:"description"`
	CompanyVibe   string    `json:"company_vibe"`
	SellingPoints string    `json:"selling_points"`
	Emotion       string    `json:"emotion,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
