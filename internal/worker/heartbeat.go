package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// statsProvider reports the current registry stats.
//
//go:generate mockgen -source=heartbeat.go -destination=../mocks/worker/mock.go -package=mocks
type statsProvider interface {
	Stats() (int, uint32)
}

// Heartbeat periodically logs registry stats so operators can see the daemon
// is alive. With the defaults (60s interval, report every 10th tick) one
// status line appears every ten minutes.
type Heartbeat struct {
	service     statsProvider
	interval    time.Duration
	reportEvery int
}

// NewHeartbeat creates a new Heartbeat instance.
func NewHeartbeat(s statsProvider, interval time.Duration, reportEvery int) *Heartbeat {
	return &Heartbeat{
		service:     s,
		interval:    interval,
		reportEvery: reportEvery,
	}
}

// Run ticks until ctx is cancelled, logging stats on every reportEvery-th
// tick.
func (h *Heartbeat) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	ticks := 0

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("heartbeat stopped")
			return
		case <-ticker.C:
			ticks++
			if ticks%h.reportEvery != 0 {
				continue
			}

			count, nextID := h.service.Stats()
			zlog.Logger.Info().
				Int("active_notifications", count).
				Uint32("next_id", nextID).
				Msg("status")
		}
	}
}
