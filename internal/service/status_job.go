package service

import (
	"context"
	"sync"
	"time"
)

type clientStatusJob struct {
	lettersService LettersService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientStatusJob creates a job that calls RefreshStatus on a ticker. The
// job is idle until Start is called.
func NewClientStatusJob(lettersService LettersService) ClientStatusJob {
	return &clientStatusJob{lettersService: lettersService}
}

// Start implements ClientStatusJob. It stops any previously running job, then
// launches a goroutine that refreshes the status every interval. A zero or
// negative interval only stops the previous job. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *clientStatusJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		return
	}

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
				// failures are logged by the service
				_, _ = j.lettersService.RefreshStatus(jobCtx)
			}
		}
	}()
}

// Stop implements ClientStatusJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientStatusJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
