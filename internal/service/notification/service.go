package notification

import (
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notifyd/internal/model"
)

// Server identity returned by GetServerInformation, constant across calls.
const (
	serverName  = "notifyd"
	vendor      = "aliskhannn"
	version     = "0.1.0"
	specVersion = "1.2"
)

// capabilities advertised to clients. The set and its order are fixed.
var capabilities = []string{"body", "body-markup", "actions", "persistence"}

// notificationRegistry defines the registry operations the service depends on.
//
//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks
type notificationRegistry interface {
	AllocateID() uint32
	Save(n model.Notification)
	Remove(id uint32) (model.Notification, bool)
	Stats() (int, uint32)
	List() []model.Notification
}

// Service implements the four operations of the notification protocol on top
// of the registry. None of them has an error path: the published interface
// cannot fail, benign oddities are logged and the call returns normally.
type Service struct {
	registry notificationRegistry
}

// NewService creates a new Service instance backed by the given registry.
func NewService(registry notificationRegistry) *Service {
	return &Service{registry: registry}
}

// Notify stores or replaces a notification and returns its effective id.
//
// A non-zero ReplacesID is used verbatim: the registry is not checked first,
// so a client may claim an id that was never issued and a new record is
// created under it. A zero ReplacesID gets a fresh id from the allocator.
// Actions and hints are not persisted, only inspected for logging.
func (s *Service) Notify(req model.NotifyRequest) uint32 {
	id := req.ReplacesID
	if id == 0 {
		id = s.registry.AllocateID()
	}

	s.registry.Save(model.Notification{
		ID:            id,
		AppName:       req.AppName,
		Summary:       req.Summary,
		Body:          req.Body,
		Icon:          req.AppIcon,
		ExpireTimeout: req.ExpireTimeout,
	})

	zlog.Logger.Info().
		Uint32("id", id).
		Str("app", req.AppName).
		Str("summary", req.Summary).
		Str("body", req.Body).
		Msg("notification received")

	if len(req.Actions) > 0 {
		zlog.Logger.Debug().Uint32("id", id).Strs("actions", req.Actions).Msg("actions available")
	}

	if urgency, ok := req.Hints.Urgency(); ok {
		zlog.Logger.Debug().Uint32("id", id).Uint8("urgency", urgency).Msg("urgency hint")
	}

	return id
}

// Capabilities returns the fixed capability set.
func (s *Service) Capabilities() []string {
	zlog.Logger.Debug().Msg("client requested capabilities")
	return capabilities
}

// CloseNotification removes the notification under id and reports whether one
// existed. Closing an unknown id is logged and completes normally.
func (s *Service) CloseNotification(id uint32) bool {
	removed, ok := s.registry.Remove(id)
	if !ok {
		zlog.Logger.Warn().Uint32("id", id).Msg("attempt to close nonexistent notification")
		return false
	}

	zlog.Logger.Info().Uint32("id", id).Str("summary", removed.Summary).Msg("closing notification")

	return true
}

// ServerInformation returns the fixed server identity tuple.
func (s *Service) ServerInformation() model.ServerInformation {
	zlog.Logger.Debug().Msg("client requested server information")

	return model.ServerInformation{
		Name:        serverName,
		Vendor:      vendor,
		Version:     version,
		SpecVersion: specVersion,
	}
}

// Stats reports the tracked record count and the next allocator value.
func (s *Service) Stats() (int, uint32) {
	return s.registry.Stats()
}

// ListNotifications returns a snapshot of all tracked notifications.
func (s *Service) ListNotifications() []model.Notification {
	return s.registry.List()
}
