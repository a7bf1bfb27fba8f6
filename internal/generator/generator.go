// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator produces marketing copy for a brand by substituting
// brand and vibe attributes into fixed per-content-type templates. It is
// pure: identical inputs always yield byte-identical output, which is what
// the provider-backed path falls back to on any failure.
package generator

import (
	"fmt"
	"strings"

	"contentforge/internal/models"
)

// ResolveEmotion picks the emotion driving generation. The brand's own
// emotion wins when set; otherwise the vibe entry's emotion; "neutral"
// when neither is available.
func ResolveEmotion(brand *models.Brand, vibe *models.Vibe) string {
	if brand.Emotion != "" {
		return brand.Emotion
	}
	if vibe != nil {
		return vibe.Emotion
	}
	return "neutral"
}

// Generate renders the template for contentType. vibe may be nil when the
// brand's vibe has no catalog entry. The prompt steers provider-backed
// generation only; the template path does not consume it.
func Generate(brand *models.Brand, vibe *models.Vibe, contentType models.ContentType, prompt string) string {
	_ = prompt

	name := brand.BrandName
	vibeName := brand.CompanyVibe
	selling := brand.SellingPoints
	emotion := ResolveEmotion(brand, vibe)

	switch contentType {
	case models.ContentTypeSocialPost:
		return fmt.Sprintf("✨ Looking for %s solutions? %s delivers with our %s approach!\n\n%s.\n\n#%s #%s #Innovation",
			emotionAdjective(emotion), name, vibeName, firstSellingPoint(selling), stripSpaces(name), vibeName)
	case models.ContentTypeEmailSubj:
		return fmt.Sprintf("Discover how %s's %s solutions can transform your experience", name, vibeName)
	case models.ContentTypeEmailBody:
		return fmt.Sprintf("Dear Valued Customer,\n\nWe're excited to share with you our latest %s innovations at %s.\n\nOur team has been working tirelessly to create solutions that are not only effective but also embody the %s feeling that our brand represents.\n\n%s\n\nDiscover more about what we offer and how we can help you achieve your goals.\n\nBest regards,\nThe %s Team",
			vibeName, name, emotion, selling, name)
	case models.ContentTypeProductDesc:
		return fmt.Sprintf("Introducing the latest offering from %s, designed with our signature %s approach. This product embodies %s and delivers exceptional results.\n\n%s\n\nExperience the difference with %s.",
			name, vibeName, emotion, selling, name)
	case models.ContentTypeAdCopy:
		return fmt.Sprintf("%s | %s SOLUTIONS\n\n%s.\n\nDiscover the power of %s in every experience. Click now to transform your expectations.",
			name, strings.ToUpper(vibeName), firstSellingPoint(selling), emotion)
	default:
		return fmt.Sprintf("Content for %s featuring our %s approach and %s.", name, vibeName, selling)
	}
}

// Prompts builds the system and user prompts for provider-backed
// generation. The system prompt pins the brand voice; the user prompt
// carries the request. Output from a provider replaces the template text
// but is stored through the exact same record path.
func Prompts(brand *models.Brand, vibe *models.Vibe, contentType models.ContentType, prompt string) (system, user string) {
	var sb strings.Builder
	sb.WriteString("You are a marketing copywriter for the brand \"")
	sb.WriteString(brand.BrandName)
	sb.WriteString("\". Brand description: ")
	sb.WriteString(brand.Description)
	sb.WriteString(". Brand vibe: ")
	sb.WriteString(brand.CompanyVibe)
	if vibe != nil && vibe.ToneKeywords != "" {
		sb.WriteString(" (tone: ")
		sb.WriteString(vibe.ToneKeywords)
		sb.WriteString(")")
	}
	sb.WriteString(". Target emotion: ")
	sb.WriteString(ResolveEmotion(brand, vibe))
	sb.WriteString(". Key selling points: ")
	sb.WriteString(brand.SellingPoints)
	sb.WriteString(" Respond with the copy only, no preamble.")

	user = fmt.Sprintf("Write a %s for this brand. Request: %s",
		strings.ReplaceAll(string(contentType), "_", " "), prompt)
	return sb.String(), user
}

// emotionAdjective maps an emotion to the adjective used in social posts.
// The match is case-sensitive.
func emotionAdjective(emotion string) string {
	switch emotion {
	case "Joy":
		return "exciting"
	case "Trust":
		return "reliable"
	default:
		return "innovative"
	}
}

// firstSellingPoint returns everything before the first period, or the
// whole string when there is none.
func firstSellingPoint(sellingPoints string) string {
	before, _, _ := strings.Cut(sellingPoints, ".")
	return before
}

// stripSpaces removes every whitespace run, for hashtag use.
func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
