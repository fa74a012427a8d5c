package repositories

import "context"

// MenuRepository defines data access for the published menu structure.
type MenuRepository interface {
	// Get returns the published structure as raw JSON, or ErrNotFound
	// when nothing has been published yet.
	Get(ctx context.Context) ([]byte, error)

	// Save upserts the published structure.
	Save(ctx context.Context, raw []byte, updatedBy string) error
}
