package handler

import (
	"log/slog"
	"net/http"

	"tenderdesk/internal/httputil"
	"tenderdesk/internal/navigation"
	"tenderdesk/internal/service"
)

// NavigationHandler renders the permission-filtered navigation tree for
// the calling identity.
type NavigationHandler struct {
	menuService *service.MenuService
	resolver    *navigation.Resolver
	logger      *slog.Logger
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(menuService *service.MenuService, resolver *navigation.Resolver, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{
		menuService: menuService,
		resolver:    resolver,
		logger:      logger,
	}
}

// GetNavigation builds the renderable tree for the caller. The optional
// route query parameter marks the active item and auto-expands its
// section. Anonymous callers get the unrestricted items only.
// GET /api/navigation?route=/tenders
func (h *NavigationHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuService.Resolved(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	ident := httputil.GetIdentity(r)
	route := r.URL.Query().Get("route")

	tree := navigation.NewTree(h.resolver, items)
	nodes := tree.Build(ident, route, navigation.DefaultExpansion(items))

	httputil.RespondJSON(w, http.StatusOK, nodes)
}
