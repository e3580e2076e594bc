package ai

import (
	"strings"
	"testing"

	"github.com/modboard/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPreviewShortContent(t *testing.T) {
	assert.Equal(t, "hello", Preview("hello"))
	assert.Equal(t, "", Preview(""))

	exact := strings.Repeat("a", PreviewLimit)
	assert.Equal(t, exact, Preview(exact), "content at the limit is not truncated")
}

func TestPreviewTruncation(t *testing.T) {
	long := strings.Repeat("a", PreviewLimit+1)
	got := Preview(long)

	assert.Equal(t, strings.Repeat("a", PreviewLimit)+TruncationMarker, got)
}

func TestPreviewCountsRunes(t *testing.T) {
	long := strings.Repeat("あ", PreviewLimit+50)
	got := Preview(long)

	assert.Equal(t, strings.Repeat("あ", PreviewLimit)+TruncationMarker, got)
}

func TestGenerateSummaryTemplates(t *testing.T) {
	svc := NewRuleService()

	assert.Equal(t, "Flagged message: some text", svc.GenerateSummary("some text", models.ContentTypeMessage))
	assert.Equal(t, "Flagged image report: some text", svc.GenerateSummary("some text", models.ContentTypeImage))
	assert.Equal(t, "User report: some text", svc.GenerateSummary("some text", models.ContentTypeReport))
}

func TestGenerateSummaryEmptyContent(t *testing.T) {
	svc := NewRuleService()

	assert.Equal(t, "Flagged message: ", svc.GenerateSummary("", models.ContentTypeMessage))
}

func TestGenerateSummaryTruncatesLongContent(t *testing.T) {
	svc := NewRuleService()

	long := strings.Repeat("x", 500)
	got := svc.GenerateSummary(long, models.ContentTypeReport)

	assert.Equal(t, "User report: "+strings.Repeat("x", PreviewLimit)+TruncationMarker, got)
	assert.True(t, strings.HasSuffix(got, TruncationMarker))
}
