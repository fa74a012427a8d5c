package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tenderdesk/internal/domain"
)

// MenuRepository persists the single published menu structure document.
type MenuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(config *RepositoryConfig) *MenuRepository {
	return &MenuRepository{pool: config.Pool}
}

// Get returns the published structure as raw JSON, or ErrNotFound when
// nothing has been published yet.
func (r *MenuRepository) Get(ctx context.Context) ([]byte, error) {
	query := `SELECT structure FROM menu_structures WHERE id = 1`

	var raw []byte
	if err := r.pool.QueryRow(ctx, query).Scan(&raw); err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("menu structure: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get menu structure: %w", err)
	}

	return raw, nil
}

// Save upserts the published structure.
func (r *MenuRepository) Save(ctx context.Context, raw []byte, updatedBy string) error {
	query := `
		INSERT INTO menu_structures (id, structure, updated_by, updated_at)
		VALUES (1, $1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET structure = EXCLUDED.structure,
		    updated_by = EXCLUDED.updated_by,
		    updated_at = now()
	`

	if _, err := r.pool.Exec(ctx, query, raw, updatedBy); err != nil {
		return fmt.Errorf("save menu structure: %w", err)
	}

	return nil
}
