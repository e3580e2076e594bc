// Package services holds the orchestration layer between HTTP handlers and
// persistence.
package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/modboard/backend/internal/ai"
	"github.com/modboard/backend/internal/models"
	"github.com/modboard/backend/internal/store"
)

// MaxContentLength is the maximum accepted content size in characters,
// measured after trimming.
const MaxContentLength = 10000

// ErrValidation is the base error for malformed input. Specific causes wrap
// it, so handlers can classify with errors.Is and still surface the detail.
var ErrValidation = errors.New("validation failed")

// FlagService orchestrates flag triage: it validates input, derives priority
// and summary through the AI capabilities, and delegates persistence to the
// injected store.
type FlagService struct {
	store store.FlagStore
	ai    ai.Service
}

func NewFlagService(st store.FlagStore, aiService ai.Service) *FlagService {
	return &FlagService{store: st, ai: aiService}
}

// Create validates the request, computes priority and summary, and persists
// the item. Content is stored trimmed; priority and summary are computed
// from that same trimmed string, so validation and persisted data agree.
func (s *FlagService) Create(contentType models.ContentType, content string) (*models.FlaggedItem, error) {
	if !contentType.Valid() {
		return nil, fmt.Errorf("%w: content_type must be message, image, or report", ErrValidation)
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: content cannot be empty or whitespace only", ErrValidation)
	}
	if utf8.RuneCountInString(trimmed) > MaxContentLength {
		return nil, fmt.Errorf("%w: content exceeds maximum length of %d characters", ErrValidation, MaxContentLength)
	}

	priority := s.ai.CalculatePriority(trimmed)
	summary := s.ai.GenerateSummary(trimmed, contentType)

	return s.store.Insert(contentType, trimmed, priority, summary)
}

func (s *FlagService) Get(id uint) (*models.FlaggedItem, error) {
	return s.store.Get(id)
}

func (s *FlagService) List() ([]models.FlaggedItem, error) {
	return s.store.List()
}

// UpdateStatus validates the status value and delegates. Any status may
// follow any other; there is no transition graph.
func (s *FlagService) UpdateStatus(id uint, status models.Status) (*models.FlaggedItem, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be pending, approved, rejected, or escalated", ErrValidation)
	}
	return s.store.UpdateStatus(id, status)
}

func (s *FlagService) Delete(id uint) error {
	return s.store.Delete(id)
}

func (s *FlagService) Stats() (*models.FlagStats, error) {
	return s.store.Stats()
}
