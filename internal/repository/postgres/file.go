package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tenderdesk/internal/domain"
	"tenderdesk/internal/domain/models"
)

// FileRepository persists file records. Payloads live in the object
// store; only metadata and the storage key are kept here.
type FileRepository struct {
	pool *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(config *RepositoryConfig) *FileRepository {
	return &FileRepository{pool: config.Pool}
}

// Create inserts a file record and fills in its generated ID and timestamp.
func (r *FileRepository) Create(ctx context.Context, file *models.FileRecord) error {
	query := `
		INSERT INTO files (folder_id, name, original_name, file_type, storage_key, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		file.FolderID,
		file.Name,
		file.OriginalName,
		file.FileType,
		file.StorageKey,
		file.CreatedBy,
	).Scan(&file.ID, &file.CreatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("%w: folder does not exist", domain.ErrValidation)
		}
		return fmt.Errorf("create file record: %w", err)
	}

	return nil
}

// GetByID retrieves a file record.
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.FileRecord, error) {
	query := `
		SELECT id, folder_id, name, original_name, file_type, storage_key, created_by, created_at
		FROM files
		WHERE id = $1
	`

	var file models.FileRecord
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.FolderID,
		&file.Name,
		&file.OriginalName,
		&file.FileType,
		&file.StorageKey,
		&file.CreatedBy,
		&file.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("file %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get file: %w", err)
	}

	return &file, nil
}

// ListByFolder returns the files directly inside a folder, oldest first.
func (r *FileRepository) ListByFolder(ctx context.Context, folderID int64) ([]models.FileRecord, error) {
	query := `
		SELECT id, folder_id, name, original_name, file_type, storage_key, created_by, created_at
		FROM files
		WHERE folder_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, folderID)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var files []models.FileRecord
	for rows.Next() {
		var file models.FileRecord
		if err := rows.Scan(
			&file.ID,
			&file.FolderID,
			&file.Name,
			&file.OriginalName,
			&file.FileType,
			&file.StorageKey,
			&file.CreatedBy,
			&file.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	return files, nil
}
