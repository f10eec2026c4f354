package generation

import (
	"context"
	"sync"
	"time"

	"EstateDesk/entity"
)

// Watcher tracks one job through two redundant mechanisms at once: the
// hub's push subscription and a fixed-interval polling loop capped at a
// bounded number of attempts. Both feed the same local state; when they
// fire around the same time the last writer by updated_at wins, so a
// stale poll result can never overwrite a fresher push event.
type Watcher struct {
	jobID string

	mu      sync.Mutex
	current *entity.GenerationJob

	done     chan struct{}
	doneOnce sync.Once
}

// Watch starts observing a job. The subscription leg runs until the job
// completes or Stop is called; the polling leg stops on its own after
// the attempt cap, mirroring the bounded retry of the original flow.
func (s *Service) Watch(jobID string) *Watcher {
	w := &Watcher{
		jobID: jobID,
		done:  make(chan struct{}),
	}

	events, cancel := s.hub.SubscribeJobs()
	go func() {
		defer cancel()
		for {
			select {
			case <-w.done:
				return
			case job, ok := <-events:
				if !ok {
					return
				}
				if job.ID != jobID {
					continue
				}
				w.apply(&job)
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()
		for attempt := 0; attempt < s.pollAttempts; attempt++ {
			select {
			case <-w.done:
				return
			case <-ticker.C:
				job, err := s.repo.GetGenerationJob(context.Background(), jobID)
				if err != nil || job == nil {
					continue
				}
				w.apply(job)
			}
		}
	}()

	return w
}

func (w *Watcher) apply(job *entity.GenerationJob) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.current != nil && job.UpdatedAt.Before(w.current.UpdatedAt) {
		return
	}
	w.current = job

	if job.Status == entity.JobStatusDone {
		w.doneOnce.Do(func() { close(w.done) })
	}
}

// Current returns the latest observed job state, or nil before the first
// observation.
func (w *Watcher) Current() *entity.GenerationJob {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Done is closed once the job reaches its terminal status.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Stop tears the watcher down early.
func (w *Watcher) Stop() {
	w.doneOnce.Do(func() { close(w.done) })
}
