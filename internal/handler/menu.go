package handler

import (
	"io"
	"log/slog"
	"net/http"

	"tenderdesk/internal/config"
	"tenderdesk/internal/domain/models"
	"tenderdesk/internal/httputil"
	"tenderdesk/internal/navigation"
	"tenderdesk/internal/service"
)

// MenuHandler serves and publishes the navigation configuration
type MenuHandler struct {
	menuService *service.MenuService
	resolver    *navigation.Resolver
	logger      *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService, resolver *navigation.Resolver, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		resolver:    resolver,
		logger:      logger,
	}
}

// GetMenuStructure returns the published menu configuration. Responds
// 404 when nothing has been published; clients fall back to their
// built-in default tree.
// GET /api/menu-structure
func (h *MenuHandler) GetMenuStructure(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuService.Published(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.MenuStructure{MenuStructure: items})
}

// PublishMenuStructure stores a new menu configuration. Admin only.
// PUT /api/menu-structure
func (h *MenuHandler) PublishMenuStructure(w http.ResponseWriter, r *http.Request) {
	ident := httputil.GetIdentity(r)
	if ident == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if !h.resolver.IsAdmin(ident) {
		httputil.RespondError(w, http.StatusForbidden, "admin access required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxJSONBytes)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	items, err := h.menuService.Publish(r.Context(), ident, raw)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, models.MenuStructure{MenuStructure: items})
}
