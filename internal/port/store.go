package port

import (
	"context"

	"github.com/staffgrid/timecard/internal/domain"
)

// BatchStore persists generation runs so a batch can be re-inspected later.
type BatchStore interface {
	// Save persists the batch, assigning an ID if it has none.
	Save(ctx context.Context, batch *domain.Batch) error

	// Load returns the batch by ID.
	Load(ctx context.Context, id string) (*domain.Batch, error)

	// List returns the IDs of all saved batches.
	List(ctx context.Context) ([]string, error)
}
