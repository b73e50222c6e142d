package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-rx-api/rxapi"
)

// DefaultRefreshInterval is used when Start gets a non-positive interval.
const DefaultRefreshInterval = 5 * time.Minute

type refreshJob struct {
	users    UserService
	executor rxapi.Executor

	mu      sync.Mutex
	handler func(RefreshResult)
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob that calls users.LoadUsers on a ticker
// and hands every outcome to the handler through executor (rxapi.Immediate
// when nil). The job is idle until Start is called.
func NewRefreshJob(users UserService, executor rxapi.Executor) RefreshJob {
	if executor == nil {
		executor = rxapi.Immediate
	}
	return &refreshJob{users: users, executor: executor}
}

// SetHandler implements RefreshJob.
func (j *refreshJob) SetHandler(fn func(RefreshResult)) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.handler = fn
}

func (j *refreshJob) deliver(res RefreshResult) {
	j.mu.Lock()
	handler := j.handler
	j.mu.Unlock()

	if handler != nil {
		j.executor.Execute(func() { handler(res) })
	}
}

// Start implements RefreshJob.
func (j *refreshJob) Start(ctx context.Context, ids []int64, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	ids = slices.Clone(ids)

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				users, err := j.users.LoadUsers(jobCtx, ids)
				if jobCtx.Err() != nil {
					return
				}
				j.deliver(RefreshResult{Users: users, Err: err, At: time.Now()})
			}
		}
	}()
}

// Stop implements RefreshJob.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
