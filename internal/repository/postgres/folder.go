package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tenderdesk/internal/domain"
	"tenderdesk/internal/domain/models"
)

// FolderRepository persists briefcase folders.
type FolderRepository struct {
	pool *pgxpool.Pool
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) *FolderRepository {
	return &FolderRepository{pool: config.Pool}
}

// Create inserts a folder and fills in its generated ID and timestamp.
func (r *FolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := `
		INSERT INTO folders (parent_id, name, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		folder.ParentID,
		folder.Name,
		folder.CreatedBy,
	).Scan(&folder.ID, &folder.CreatedAt)

	if err != nil {
		if isPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("a folder named %q already exists in this location", folder.Name),
				ResourceType: "folder",
			}
		}
		if isPgForeignKeyError(err) {
			return fmt.Errorf("%w: parent folder does not exist", domain.ErrValidation)
		}
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// GetByID retrieves a folder with its direct file count.
func (r *FolderRepository) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	query := `
		SELECT f.id, f.parent_id, f.name, f.created_by, f.created_at,
		       COUNT(fi.id) AS file_count
		FROM folders f
		LEFT JOIN files fi ON fi.folder_id = f.id
		WHERE f.id = $1
		GROUP BY f.id
	`

	var folder models.Folder
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&folder.ID,
		&folder.ParentID,
		&folder.Name,
		&folder.CreatedBy,
		&folder.CreatedAt,
		&folder.FileCount,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}

// ListAll returns every folder with its direct file count, ordered by
// creation (id ascending) so siblings keep append order.
func (r *FolderRepository) ListAll(ctx context.Context) ([]models.Folder, error) {
	query := `
		SELECT f.id, f.parent_id, f.name, f.created_by, f.created_at,
		       COUNT(fi.id) AS file_count
		FROM folders f
		LEFT JOIN files fi ON fi.folder_id = f.id
		GROUP BY f.id
		ORDER BY f.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(
			&folder.ID,
			&folder.ParentID,
			&folder.Name,
			&folder.CreatedBy,
			&folder.CreatedAt,
			&folder.FileCount,
		); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	return folders, nil
}

// FindChild returns the child with the given name directly under the
// parent, or ErrNotFound.
func (r *FolderRepository) FindChild(ctx context.Context, parentID int64, name string) (*models.Folder, error) {
	query := `
		SELECT f.id, f.parent_id, f.name, f.created_by, f.created_at,
		       COUNT(fi.id) AS file_count
		FROM folders f
		LEFT JOIN files fi ON fi.folder_id = f.id
		WHERE f.parent_id = $1 AND f.name = $2
		GROUP BY f.id
	`

	var folder models.Folder
	err := r.pool.QueryRow(ctx, query, parentID, name).Scan(
		&folder.ID,
		&folder.ParentID,
		&folder.Name,
		&folder.CreatedBy,
		&folder.CreatedAt,
		&folder.FileCount,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %q: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("find child folder: %w", err)
	}

	return &folder, nil
}
