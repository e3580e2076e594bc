package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/modboard/backend/internal/models"
	"gorm.io/gorm"
)

// GormStore implements FlagStore on a GORM handle (PostgreSQL or SQLite).
// Id assignment is the database's auto-increment primary key, so concurrent
// inserts never collide.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(contentType models.ContentType, content string, priority models.Priority, aiSummary string) (*models.FlaggedItem, error) {
	item := models.FlaggedItem{
		ContentType: contentType,
		Content:     content,
		Priority:    priority,
		Status:      models.StatusPending,
		AISummary:   aiSummary,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to insert flagged item: %w", err)
	}
	return &item, nil
}

func (s *GormStore) Get(id uint) (*models.FlaggedItem, error) {
	var item models.FlaggedItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlagNotFound
		}
		return nil, fmt.Errorf("failed to fetch flagged item: %w", err)
	}
	return &item, nil
}

func (s *GormStore) List() ([]models.FlaggedItem, error) {
	var items []models.FlaggedItem
	if err := s.db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list flagged items: %w", err)
	}
	return items, nil
}

func (s *GormStore) UpdateStatus(id uint, status models.Status) (*models.FlaggedItem, error) {
	// Status and updated_at go out in one UPDATE so no reader can observe
	// one without the other.
	result := s.db.Model(&models.FlaggedItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update flagged item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrFlagNotFound
	}

	return s.Get(id)
}

func (s *GormStore) Delete(id uint) error {
	result := s.db.Delete(&models.FlaggedItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete flagged item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFlagNotFound
	}
	return nil
}

// Stats runs a single aggregate query. Counting in SQL (instead of fetching
// all rows and counting in Go) is what makes the snapshot consistent under
// concurrent writes.
func (s *GormStore) Stats() (*models.FlagStats, error) {
	var stats models.FlagStats
	err := s.db.Raw(`
		SELECT
			COUNT(*) AS total_flags,
			COALESCE(SUM(CASE WHEN priority = 'high' THEN 1 ELSE 0 END), 0) AS high_priority,
			COALESCE(SUM(CASE WHEN priority = 'medium' THEN 1 ELSE 0 END), 0) AS medium_priority,
			COALESCE(SUM(CASE WHEN priority = 'low' THEN 1 ELSE 0 END), 0) AS low_priority,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_status,
			COALESCE(SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END), 0) AS approved_status,
			COALESCE(SUM(CASE WHEN status = 'rejected' THEN 1 ELSE 0 END), 0) AS rejected_status,
			COALESCE(SUM(CASE WHEN status = 'escalated' THEN 1 ELSE 0 END), 0) AS escalated_status
		FROM flagged_items
	`).Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return &stats, nil
}
