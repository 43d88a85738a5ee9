package bus

import (
	"github.com/godbus/dbus/v5"

	"github.com/aliskhannn/notifyd/internal/model"
)

// notificationService defines the operations the bus handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../mocks/bus/mock.go -package=mocks
type notificationService interface {
	Notify(req model.NotifyRequest) uint32
	Capabilities() []string
	CloseNotification(id uint32) bool
	ServerInformation() model.ServerInformation
}

// Handler carries exactly the four methods exported on the bus under
// org.freedesktop.Notifications. Method names and signatures are fixed by the
// protocol; godbus exports every public method of the value, so nothing else
// may live on this type.
type Handler struct {
	service notificationService
}

// NewHandler creates a new Handler instance.
func NewHandler(s notificationService) *Handler {
	return &Handler{service: s}
}

// Notify handles org.freedesktop.Notifications.Notify.
func (h *Handler) Notify(
	appName string,
	replacesID uint32,
	appIcon string,
	summary string,
	body string,
	actions []string,
	hints map[string]dbus.Variant,
	expireTimeout int32,
) (uint32, *dbus.Error) {
	id := h.service.Notify(model.NotifyRequest{
		AppName:       appName,
		ReplacesID:    replacesID,
		AppIcon:       appIcon,
		Summary:       summary,
		Body:          body,
		Actions:       actions,
		Hints:         decodeHints(hints),
		ExpireTimeout: expireTimeout,
	})

	return id, nil
}

// GetCapabilities handles org.freedesktop.Notifications.GetCapabilities.
func (h *Handler) GetCapabilities() ([]string, *dbus.Error) {
	return h.service.Capabilities(), nil
}

// CloseNotification handles org.freedesktop.Notifications.CloseNotification.
// Closing an unknown id is not a protocol error; the call always succeeds.
func (h *Handler) CloseNotification(id uint32) *dbus.Error {
	h.service.CloseNotification(id)
	return nil
}

// GetServerInformation handles
// org.freedesktop.Notifications.GetServerInformation.
func (h *Handler) GetServerInformation() (string, string, string, string, *dbus.Error) {
	info := h.service.ServerInformation()
	return info.Name, info.Vendor, info.Version, info.SpecVersion, nil
}
