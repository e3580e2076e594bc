package ai

import (
	"fmt"

	"github.com/modboard/backend/internal/models"
)

// PreviewLimit is the maximum number of characters of flagged content
// included in a summary before truncation.
const PreviewLimit = 100

// TruncationMarker is appended to a preview when the content was cut off.
const TruncationMarker = "..."

// Preview returns content truncated to PreviewLimit characters, with the
// truncation marker appended only when something was actually cut. Counted
// in runes so multi-byte content is never split mid-character.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= PreviewLimit {
		return content
	}
	return string(runes[:PreviewLimit]) + TruncationMarker
}

// GenerateSummary builds the templated summary for a flagged item. The
// wording varies by content type; the preview handling does not.
func (s *RuleService) GenerateSummary(content string, contentType models.ContentType) string {
	preview := Preview(content)

	switch contentType {
	case models.ContentTypeMessage:
		return "Flagged message: " + preview
	case models.ContentTypeImage:
		return "Flagged image report: " + preview
	case models.ContentTypeReport:
		return "User report: " + preview
	default:
		return fmt.Sprintf("Flagged %s content: %s", contentType, preview)
	}
}
