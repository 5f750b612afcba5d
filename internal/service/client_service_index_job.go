package service

import (
	"context"
	"sync"
	"time"

	"github.com/reznik99/cloud-storage-client/internal/logger"
)

type indexRefreshJob struct {
	fileService ClientFileService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewIndexRefreshJob creates an indexRefreshJob that calls
// fileService.RefreshIndex on a ticker. The job is idle until Start is
// called.
func NewIndexRefreshJob(fileService ClientFileService) IndexRefreshJob {
	return &indexRefreshJob{fileService: fileService}
}

// Start implements IndexRefreshJob. It stops any previously running job,
// then launches a background goroutine that refreshes the local metadata
// cache every interval. If interval is zero or negative it defaults to
// 5 minutes. The goroutine exits when ctx is cancelled or Stop is called.
func (j *indexRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

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
				if err := j.fileService.RefreshIndex(jobCtx); err != nil {
					logger.FromContext(jobCtx).Warn().Err(err).
						Str("func", "indexRefreshJob.Start").
						Msg("periodic index refresh failed")
				}
			}
		}
	}()
}

// Stop implements IndexRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *indexRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
