package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"supplier-portal/internal/store"
	"supplier-portal/pkg/logger"
	"supplier-portal/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SupplierHandler serves read-only queries over the generated corpus
type SupplierHandler struct {
	store *store.SupplierStore
}

// NewSupplierHandler creates a supplier handler on the given store
func NewSupplierHandler(s *store.SupplierStore) *SupplierHandler {
	return &SupplierHandler{store: s}
}

// queryInt parses an optional integer query parameter. A missing parameter
// yields the default; a malformed one is a client error, never a silent
// fallback.
func queryInt(c echo.Context, name string, defaultValue int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return value, nil
}

// paginationParams decodes skip/limit with the corpus size as the limit default
func (h *SupplierHandler) paginationParams(c echo.Context) (skip, limit int, err error) {
	skip, err = queryInt(c, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(c, "limit", h.store.Count())
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

// ListSuppliers handles GET /api/suppliers
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSupplierOperation("list")

	skip, limit, err := h.paginationParams(c)
	if err != nil {
		log.Warn("Malformed pagination parameters", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	data, total := h.store.Paginate(skip, limit)
	log.Info("Suppliers listed",
		zap.Int("skip", skip),
		zap.Int("limit", limit),
		zap.Int("count", len(data)),
		zap.Int("total", total))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    data,
		"total":   total,
	})
}

// DashboardSuppliers handles GET /api/dashboard/suppliers. Same pagination
// as ListSuppliers, dashboard payload keys.
func (h *SupplierHandler) DashboardSuppliers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSupplierOperation("dashboard_list")

	skip, limit, err := h.paginationParams(c)
	if err != nil {
		log.Warn("Malformed pagination parameters", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	suppliers, total := h.store.Paginate(skip, limit)
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"suppliers": suppliers,
		"total":     total,
	})
}

// DashboardStats handles GET /api/dashboard/stats
func (h *SupplierHandler) DashboardStats(c echo.Context) error {
	prometheus.RecordSupplierOperation("stats")

	stats := h.store.Stats()
	return c.JSON(http.StatusOK, echo.Map{
		"success":         true,
		"totalSuppliers":  stats.TotalSuppliers,
		"totalCategories": stats.TotalCategories,
		"avgRating":       stats.AvgRating,
		"verifiedCount":   stats.VerifiedCount,
	})
}

// SearchSuppliers handles GET /api/dashboard/suppliers/search
func (h *SupplierHandler) SearchSuppliers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSupplierOperation("search")

	query := c.QueryParam("q")
	results := h.store.Search(query)
	log.Info("Supplier search",
		zap.String("query", query),
		zap.Int("results", len(results)))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"results": results,
	})
}
