package repositories

import (
	"context"

	"tenderdesk/internal/domain/models"
)

// FileRepository defines data access for file records.
type FileRepository interface {
	// Create inserts a file record and fills in its generated ID and timestamp.
	Create(ctx context.Context, file *models.FileRecord) error

	// GetByID retrieves a file record.
	GetByID(ctx context.Context, id int64) (*models.FileRecord, error)

	// ListByFolder returns the files directly inside a folder.
	ListByFolder(ctx context.Context, folderID int64) ([]models.FileRecord, error)
}
