package repositories

import (
	"context"

	"tenderdesk/internal/domain/models"
)

// FolderRepository defines data access for briefcase folders.
type FolderRepository interface {
	// Create inserts a folder and fills in its generated ID and timestamp.
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder with its direct file count.
	GetByID(ctx context.Context, id int64) (*models.Folder, error)

	// ListAll returns every folder, siblings in append order.
	ListAll(ctx context.Context) ([]models.Folder, error)

	// FindChild returns the child with the given name directly under
	// the parent, or ErrNotFound.
	FindChild(ctx context.Context, parentID int64, name string) (*models.Folder, error)
}
