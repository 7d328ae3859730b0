package service

import (
	"context"
	"sync"
	"time"

	"github.com/elntools/rspace-summary/models"
)

type refreshJob struct {
	summary SummaryService
	notify  func(records []models.FormRecord, err error)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls summary.Collect on a ticker
// and delivers each result through notify. The job is idle until Start is
// called.
func NewRefreshJob(summary SummaryService, notify func(records []models.FormRecord, err error)) RefreshJob {
	return &refreshJob{summary: summary, notify: notify}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that collects every interval. If interval
// is zero or negative it defaults to 2 minutes. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, notebookID, formID string, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Minute
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
				records, err := j.summary.Collect(jobCtx, notebookID, formID)
				if jobCtx.Err() != nil {
					return
				}
				j.notify(records, err)
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
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
