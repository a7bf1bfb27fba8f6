// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Vibe is one row of the vibe matrix: a named style with tone keywords,
// a dominant emotion, and a human-readable description. Names are unique.
type Vibe struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"vibe_name"`
	ToneKeywords string    `json:"tone_keywords"`
	Emotion      string    `json:"emotion"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
