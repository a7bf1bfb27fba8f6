package handlers

import (
	"strings"
	"unicode/utf8"

	"contentforge/internal/models"
)

// Validation limits for brand and generation fields.
const (
	maxBrandNameLen     = 200
	maxDescriptionLen   = 2_000
	maxSellingPointsLen = 2_000
	maxVibeNameLen      = 100
	maxPromptLen        = 4_000
)

// validateBrand checks brand inputs and returns a field-keyed error map.
// All failing fields are reported together; an empty map means valid.
func validateBrand(in *brandRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(in.BrandName) == "" {
		errs["brandName"] = "Brand name is required"
	} else if utf8.RuneCountInString(in.BrandName) > maxBrandNameLen {
		errs["brandName"] = "Brand name is too long (max 200 characters)"
	}

	if strings.TrimSpace(in.Description) == "" {
		errs["description"] = "Description is required"
	} else if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		errs["description"] = "Description is too long (max 2,000 characters)"
	}

	if strings.TrimSpace(in.CompanyVibe) == "" {
		errs["companyVibe"] = "Please select a company vibe"
	} else if in.CompanyVibe == models.VibeCustom {
		if strings.TrimSpace(in.CustomVibeName) == "" {
			errs["customVibeName"] = "Custom vibe name is required"
		} else if utf8.RuneCountInString(in.CustomVibeName) > maxVibeNameLen {
			errs["customVibeName"] = "Custom vibe name is too long (max 100 characters)"
		}
	}

	if strings.TrimSpace(in.SellingPoints) == "" {
		errs["sellingPoints"] = "Selling points are required"
	} else if utf8.RuneCountInString(in.SellingPoints) > maxSellingPointsLen {
		errs["sellingPoints"] = "Selling points are too long (max 2,000 characters)"
	}

	return errs
}

// validateGeneration checks generation request inputs.
func validateGeneration(in *generateRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(string(in.ContentType)) == "" {
		errs["contentType"] = "Content type is required"
	}
	if utf8.RuneCountInString(in.Prompt) > maxPromptLen {
		errs["prompt"] = "Prompt is too long (max 4,000 characters)"
	}

	return errs
}
