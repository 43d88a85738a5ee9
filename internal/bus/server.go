package bus

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	// WellKnownName is the bus name clients address; only one process may
	// hold it at a time.
	WellKnownName = "org.freedesktop.Notifications"

	// ObjectPath is the fixed path the handler is exported at.
	ObjectPath dbus.ObjectPath = "/org/freedesktop/Notifications"
)

// Server owns the session bus connection, the well-known name and the
// exported handler.
type Server struct {
	conn    *dbus.Conn
	busName string
}

// NewServer connects to the session bus, acquires busName and exports the
// handler at the notification object path. Name acquisition uses DoNotQueue:
// if another daemon already owns the name this fails immediately instead of
// waiting in line.
func NewServer(handler *Handler, busName string, strategy retry.Strategy) (*Server, error) {
	var conn *dbus.Conn

	err := retry.Do(func() error {
		var err error
		conn, err = dbus.ConnectSessionBus()
		return err
	}, strategy)
	if err != nil {
		return nil, fmt.Errorf("connect to session bus: %w", err)
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("request name %s: %w", busName, err)
	}

	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()

		zlog.Logger.Error().Str("name", busName).Msg("could not acquire bus name")
		zlog.Logger.Error().Msg("another notification daemon is likely already running")
		zlog.Logger.Error().Msg("stop it first, e.g.: killall dunst")

		return nil, fmt.Errorf("name %s already taken", busName)
	}

	if err := conn.Export(handler, ObjectPath, WellKnownName); err != nil {
		conn.Close()
		return nil, fmt.Errorf("export handler: %w", err)
	}

	node := &introspect.Node{
		Name: string(ObjectPath),
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name:    WellKnownName,
				Methods: introspect.Methods(handler),
			},
		},
	}

	if err := conn.Export(introspect.NewIntrospectable(node), ObjectPath, "org.freedesktop.DBus.Introspectable"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("export introspection: %w", err)
	}

	zlog.Logger.Info().Str("name", busName).Msg("acquired bus name")

	return &Server{conn: conn, busName: busName}, nil
}

// Close releases the well-known name and closes the connection. Calls that
// are mid-flight are abandoned; each registry mutation is a single
// uninterruptible step, so none of them leaves a partial effect behind.
func (s *Server) Close() error {
	if _, err := s.conn.ReleaseName(s.busName); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to release bus name")
	}

	return s.conn.Close()
}
