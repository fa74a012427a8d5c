package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"tenderdesk/internal/cache"
	"tenderdesk/internal/domain/models"
	"tenderdesk/internal/domain/repositories"
	"tenderdesk/internal/navigation"
)

// MenuService serves and publishes the navigation configuration. The
// published document is cached in Redis when a cache is configured.
type MenuService struct {
	menuRepo repositories.MenuRepository
	cache    *cache.MenuCache // nil disables caching
	logger   *slog.Logger
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repositories.MenuRepository, cache *cache.MenuCache, logger *slog.Logger) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		cache:    cache,
		logger:   logger,
	}
}

// Published returns the published menu items, or ErrNotFound when no
// structure has been published. Clients fall back to their own default
// tree in that case.
func (s *MenuService) Published(ctx context.Context) ([]models.MenuItem, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx); ok {
			return navigation.ParseMenuStructure(raw)
		}
	}

	raw, err := s.menuRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	items, err := navigation.ParseMenuStructure(raw)
	if err != nil {
		// A stored document failing validation means it was corrupted
		// after publish; surface it rather than serving a broken tree.
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, raw)
	}

	return items, nil
}

// Resolved returns the published menu items, falling back to the
// built-in default tree when nothing has been published.
func (s *MenuService) Resolved(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.Published(ctx)
	if err == nil {
		return items, nil
	}
	if !isNotFound(err) {
		return nil, err
	}
	return navigation.DefaultMenu()
}

// Publish validates and stores a new menu structure, then refreshes the
// cache.
func (s *MenuService) Publish(ctx context.Context, ident *models.Identity, raw []byte) ([]models.MenuItem, error) {
	items, err := navigation.ParseMenuStructure(raw)
	if err != nil {
		return nil, err
	}

	// Re-encode the sanitized form so dropped entries never reach storage.
	clean, err := json.Marshal(models.MenuStructure{MenuStructure: items})
	if err != nil {
		return nil, err
	}

	updatedBy := ""
	if ident != nil {
		updatedBy = ident.Username
	}
	if err := s.menuRepo.Save(ctx, clean, updatedBy); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
		s.cache.Set(ctx, clean)
	}

	s.logger.Info("menu structure published",
		"item_count", len(items),
		"updated_by", updatedBy,
	)

	return items, nil
}
