package stats

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/notifyd/internal/api/respond"
	"github.com/aliskhannn/notifyd/internal/model"
)

// notificationService defines the read-only operations the debug API exposes.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/stats/mock.go -package=mocks
type notificationService interface {
	Stats() (int, uint32)
	ListNotifications() []model.Notification
}

// Handler serves the read-only debug endpoints. The bus is the only surface
// that mutates the registry; this one just looks at it.
type Handler struct {
	service notificationService
}

// NewHandler creates a new Handler instance.
func NewHandler(s notificationService) *Handler {
	return &Handler{service: s}
}

// StatsResponse mirrors the heartbeat metric: tracked record count and the
// next allocator value, read independently (not an atomic snapshot).
type StatsResponse struct {
	Count  int    `json:"count"`
	NextID uint32 `json:"next_id"`
}

// GetStats handles GET requests for the registry stats.
func (h *Handler) GetStats(c *ginext.Context) {
	count, nextID := h.service.Stats()

	respond.OK(c.Writer, StatsResponse{Count: count, NextID: nextID})
}

// GetAll handles GET requests for the tracked notification snapshot.
func (h *Handler) GetAll(c *ginext.Context) {
	respond.OK(c.Writer, h.service.ListNotifications())
}
