// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/internal/mock"
	"github.com/MKhiriev/go-rx-api/models"
	"github.com/MKhiriev/go-rx-api/rxapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// spyUserService считает вызовы LoadUsers и запоминает последние id.
type spyUserService struct {
	calls atomic.Int64
	err   error

	mu  sync.Mutex
	ids []int64
}

func (s *spyUserService) LoadUsers(_ context.Context, ids []int64) ([]models.User, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.ids = slices.Clone(ids)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return []models.User{{ID: ids[0]}}, nil
}

func (s *spyUserService) LoadChain(context.Context, int64, int64) ([]models.User, error) {
	return nil, nil
}

func (s *spyUserService) lastIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestRefreshJob_Start_CallsLoadUsers(t *testing.T) {
	spy := &spyUserService{}
	job := NewRefreshJob(spy, nil)

	// Интервал 10ms - за 55ms должно быть ~5 тиков
	job.Start(context.Background(), []int64{4}, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "LoadUsers должен быть вызван несколько раз, вызвано: %d", got)
	assert.Equal(t, []int64{4}, spy.lastIDs())
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyUserService{}
	job := NewRefreshJob(spy, nil)

	job.Start(context.Background(), []int64{1}, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyUserService{}, nil)
	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyUserService{}
	job := NewRefreshJob(spy, nil)

	// interval <= 0 → DefaultRefreshInterval, за 20ms вызовов быть не должно
	job.Start(context.Background(), []int64{1}, -time.Second)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestRefreshJob_Restart_UsesNewIDs(t *testing.T) {
	spy := &spyUserService{}
	job := NewRefreshJob(spy, nil)

	job.Start(context.Background(), []int64{1}, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Start(context.Background(), []int64{2, 3}, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Equal(t, []int64{2, 3}, spy.lastIDs())
}

func TestRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewRefreshJob(&spyUserService{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, []int64{1}, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

// ── Handler ──────────────────────────────────────────────────────────────────

func TestRefreshJob_DeliversThroughExecutor(t *testing.T) {
	spy := &spyUserService{err: assert.AnError}
	q := rxapi.NewSerialQueue()
	job := NewRefreshJob(spy, q)

	results := make(chan RefreshResult, 16)
	job.SetHandler(func(r RefreshResult) {
		select {
		case results <- r:
		default:
		}
	})

	job.Start(context.Background(), []int64{1}, 10*time.Millisecond)
	select {
	case r := <-results:
		assert.ErrorIs(t, r.Err, assert.AnError)
		assert.False(t, r.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("no refresh result delivered")
	}
	job.Stop()
	require.NoError(t, q.Close(context.Background()))
}

func TestRefreshJob_NoHandler_Drops(t *testing.T) {
	spy := &spyUserService{}
	job := NewRefreshJob(spy, nil)

	assert.NotPanics(t, func() {
		job.Start(context.Background(), []int64{1}, 5*time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		job.Stop()
	})
	assert.Positive(t, spy.calls.Load())
}

// ── Services ─────────────────────────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs := NewServices(mock.NewMockUserAdapter(ctrl), nil, logger.Nop())

	require.NotNil(t, svcs)
	assert.NotNil(t, svcs.Users)
	assert.NotNil(t, svcs.Refresh)
}
