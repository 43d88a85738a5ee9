package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	mocks "github.com/aliskhannn/notifyd/internal/mocks/worker"
)

func TestHeartbeat_Run_ReportsEveryNthTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockstatsProvider(ctrl)

	// 10ms ticks reporting every 3rd tick: expect at least one report
	// within 100ms, and no report before three ticks have passed.
	mockService.EXPECT().Stats().Return(2, uint32(3)).MinTimes(1)

	h := NewHeartbeat(mockService, 10*time.Millisecond, 3)

	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	time.Sleep(100 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestHeartbeat_Run_NoReportBeforeCadence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockstatsProvider(ctrl)
	// reportEvery of 10 with 20ms ticks: within 60ms no report may fire.

	h := NewHeartbeat(mockService, 20*time.Millisecond, 10)

	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	time.Sleep(60 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestHeartbeat_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockstatsProvider(ctrl)

	h := NewHeartbeat(mockService, time.Hour, 10)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("heartbeat did not stop after context cancellation")
	}
}
