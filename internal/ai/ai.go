// Package ai implements the content analysis policy behind flag triage:
// priority classification and summary generation. The rule-based engine is
// the default; a model-backed engine can be swapped in behind the same
// interfaces without touching callers.
package ai

import "github.com/modboard/backend/internal/models"

// Classifier maps flagged content to a priority tier. Implementations must
// return a value for any input, including empty or very long strings —
// classification is advisory, never a validator.
type Classifier interface {
	CalculatePriority(content string) models.Priority
}

// SummaryGenerator produces a short human-readable description of flagged
// content. Implementations must be side-effect free and total.
type SummaryGenerator interface {
	GenerateSummary(content string, contentType models.ContentType) string
}

// Service bundles both capabilities the way the moderation service consumes
// them.
type Service interface {
	Classifier
	SummaryGenerator
}
