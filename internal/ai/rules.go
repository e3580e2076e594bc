package ai

import (
	"strings"

	"github.com/modboard/backend/internal/models"
)

// Default keyword lists. These are content policy, not code: edit the lists,
// not the matching. Order matters — the high list is checked in full before
// the medium list is consulted, so content carrying keywords from both tiers
// always classifies high.
var (
	HighPriorityKeywords = []string{
		"violence", "threat", "harassment", "abuse", "illegal",
		"drug", "weapon", "hate", "discrimination", "suicide",
	}

	MediumPriorityKeywords = []string{
		"spam", "scam", "inappropriate", "offensive", "bullying",
	}
)

// RuleService is the deterministic rule-based implementation of Service.
// Matching is case-insensitive substring containment, so a keyword embedded
// in a longer word still triggers ("drug" matches "drugstore"). That mirrors
// the moderation policy this service replaced and is covered by tests; do
// not tighten it to word-boundary matching without a policy decision.
type RuleService struct {
	high   []string
	medium []string
}

// NewRuleService returns a RuleService using the default keyword lists.
func NewRuleService() *RuleService {
	return NewRuleServiceWithKeywords(HighPriorityKeywords, MediumPriorityKeywords)
}

// NewRuleServiceWithKeywords returns a RuleService with custom tier lists.
// Keywords are lowercased once here so classification is a plain Contains
// scan per call.
func NewRuleServiceWithKeywords(high, medium []string) *RuleService {
	return &RuleService{
		high:   lowerAll(high),
		medium: lowerAll(medium),
	}
}

func lowerAll(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = strings.ToLower(kw)
	}
	return out
}

// CalculatePriority classifies content by keyword containment: any high-tier
// keyword wins, else any medium-tier keyword, else low.
func (s *RuleService) CalculatePriority(content string) models.Priority {
	lower := strings.ToLower(content)

	for _, kw := range s.high {
		if strings.Contains(lower, kw) {
			return models.PriorityHigh
		}
	}
	for _, kw := range s.medium {
		if strings.Contains(lower, kw) {
			return models.PriorityMedium
		}
	}
	return models.PriorityLow
}
