package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/modboard/backend/internal/models"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenAIService is the model-backed implementation of Service. Both
// capabilities are contractually infallible, so every transport or parse
// failure degrades to the rule-based policy instead of surfacing an error.
type OpenAIService struct {
	apiKey   string
	apiURL   string
	model    string
	client   *http.Client
	fallback *RuleService
}

func NewOpenAIService(apiKey, model string, timeout time.Duration) *OpenAIService {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIService{
		apiKey:   apiKey,
		apiURL:   defaultOpenAIURL,
		model:    model,
		client:   &http.Client{Timeout: timeout},
		fallback: NewRuleService(),
	}
}

func (s *OpenAIService) CalculatePriority(content string) models.Priority {
	prompt := fmt.Sprintf(`Classify the urgency of this flagged content for a moderation queue.
Respond with exactly one word: high, medium, or low.

Content:
%s`, content)

	answer, err := s.complete("You are a content moderation triage assistant. Respond with a single word.", prompt)
	if err != nil {
		slog.Warn("openai priority call failed, using rule-based fallback", "error", err)
		return s.fallback.CalculatePriority(content)
	}

	switch models.Priority(strings.ToLower(strings.TrimSpace(answer))) {
	case models.PriorityHigh:
		return models.PriorityHigh
	case models.PriorityMedium:
		return models.PriorityMedium
	case models.PriorityLow:
		return models.PriorityLow
	}
	slog.Warn("openai returned unusable priority, using rule-based fallback", "answer", answer)
	return s.fallback.CalculatePriority(content)
}

func (s *OpenAIService) GenerateSummary(content string, contentType models.ContentType) string {
	prompt := fmt.Sprintf(`Summarize this flagged %s for a moderator in one or two sentences. Be factual, do not speculate.

Content:
%s`, contentType, content)

	answer, err := s.complete("You are a content moderation assistant writing short factual summaries.", prompt)
	if err != nil {
		slog.Warn("openai summary call failed, using template fallback", "error", err)
		return s.fallback.GenerateSummary(content, contentType)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return s.fallback.GenerateSummary(content, contentType)
	}
	return answer
}

func (s *OpenAIService) complete(system, user string) (string, error) {
	reqBody, err := json.Marshal(openAIRequest{
		Model: s.model,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.0,
		MaxTokens:   200,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return parsed.Choices[0].Message.Content, nil
}
