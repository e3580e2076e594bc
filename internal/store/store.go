// Package store owns persistence for flagged items.
package store

import (
	"errors"

	"github.com/modboard/backend/internal/models"
)

// ErrFlagNotFound is returned by any operation referencing an id that does
// not exist in the store.
var ErrFlagNotFound = errors.New("flagged item not found")

// FlagStore is the persistence contract for flagged items. Implementations
// must assign ids atomically (never read-then-increment), keep each write
// atomic, and compute Stats as a single consistent snapshot rather than
// counting fetched rows in application code.
type FlagStore interface {
	// Insert persists a new item, assigning its id and timestamps, and
	// returns the full record.
	Insert(contentType models.ContentType, content string, priority models.Priority, aiSummary string) (*models.FlaggedItem, error)

	// Get returns the item with the given id, or ErrFlagNotFound.
	Get(id uint) (*models.FlaggedItem, error)

	// List returns all items, newest first (created_at DESC with id as the
	// tiebreak, so the order is stable for a fixed dataset).
	List() ([]models.FlaggedItem, error)

	// UpdateStatus sets status and updated_at in a single atomic write and
	// returns the updated record, or ErrFlagNotFound.
	UpdateStatus(id uint, status models.Status) (*models.FlaggedItem, error)

	// Delete permanently removes the item, or returns ErrFlagNotFound.
	Delete(id uint) error

	// Stats returns the aggregate snapshot.
	Stats() (*models.FlagStats, error)
}
