package models

import "time"

type ContentType string

const (
	ContentTypeMessage ContentType = "message"
	ContentTypeImage   ContentType = "image"
	ContentTypeReport  ContentType = "report"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeMessage, ContentTypeImage, ContentTypeReport:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusEscalated Status = "escalated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusEscalated:
		return true
	}
	return false
}

// FlaggedItem is a single unit of content submitted for moderator review.
// Priority and AISummary are computed once at creation and never revised;
// only Status (and UpdatedAt) change afterwards.
type FlaggedItem struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentType ContentType `gorm:"size:20;not null;index" json:"content_type"`
	Content     string      `gorm:"type:text;not null" json:"content"`
	Priority    Priority    `gorm:"size:10;not null;index" json:"priority"`
	Status      Status      `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AISummary   string      `gorm:"type:text;not null" json:"ai_summary"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// FlagStats is the aggregate snapshot served by the dashboard. Every item is
// counted exactly once per breakdown, so the priority counts and the status
// counts each sum to TotalFlags.
type FlagStats struct {
	TotalFlags      int64 `json:"total_flags"`
	HighPriority    int64 `json:"high_priority"`
	MediumPriority  int64 `json:"medium_priority"`
	LowPriority     int64 `json:"low_priority"`
	PendingStatus   int64 `json:"pending_status"`
	ApprovedStatus  int64 `json:"approved_status"`
	RejectedStatus  int64 `json:"rejected_status"`
	EscalatedStatus int64 `json:"escalated_status"`
}
