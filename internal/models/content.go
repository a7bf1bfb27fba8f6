// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentType identifies the kind of marketing copy to produce.
type ContentType string

const (
	ContentTypeSocialPost  ContentType = "social_post"
	ContentTypeEmailSubj   ContentType = "email_subject"
	ContentTypeEmailBody   ContentType = "email_body"
	ContentTypeProductDesc ContentType = "product_description"
	ContentTypeAdCopy      ContentType = "ad_copy"
)

// ContentTypes lists the recognized content types in display order.
// Unrecognized values are still generated via a generic template.
var ContentTypes = []ContentType{
	ContentTypeSocialPost,
	ContentTypeEmailSubj,
	ContentTypeEmailBody,
	ContentTypeProductDesc,
	ContentTypeAdCopy,
}

// GeneratedContent is one stored generation result. Rows are immutable
// after insert; there is no update path.
type GeneratedContent struct {
	ID            uuid.UUID   `json:"id"`
	BrandID       uuid.UUID   `json:"brand_id"`
	ContentType   ContentType `json:"content_type"`
	Prompt        string      `json:"prompt"`
	GeneratedText string      `json:"generated_text"`
	CreatedAt     time.Time   `json:"created_at"`
}
