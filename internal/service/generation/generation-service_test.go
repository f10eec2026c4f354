package generation

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EstateDesk/entity"
	"EstateDesk/internal/config"
)

type fakeRepo struct {
	mu      sync.Mutex
	jobs    map[string]*entity.GenerationJob
	objects map[string]entity.ObjectMetadata
	failPut bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		jobs:    make(map[string]*entity.GenerationJob),
		objects: make(map[string]entity.ObjectMetadata),
	}
}

func (f *fakeRepo) InsertGenerationJob(_ context.Context, job *entity.GenerationJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeRepo) MarkGenerationDone(_ context.Context, id string, output []string, updatedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.jobs[id]; ok {
		job.Status = entity.JobStatusDone
		job.Output = output
		job.UpdatedAt = updatedAt
	}
	return nil
}

func (f *fakeRepo) GetGenerationJob(_ context.Context, id string) (*entity.GenerationJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

func (f *fakeRepo) GetAllGenerationJobs(_ context.Context) ([]entity.GenerationJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.GenerationJob
	for _, job := range f.jobs {
		out = append(out, *job)
	}
	return out, nil
}

func (f *fakeRepo) UploadObject(_ context.Context, path string, reader io.Reader, meta entity.ObjectMetadata) (int64, error) {
	if f.failPut {
		return 0, assert.AnError
	}
	n, _ := io.Copy(io.Discard, reader)
	f.mu.Lock()
	f.objects[path] = meta
	f.mu.Unlock()
	return n, nil
}

type fakeHub struct {
	mu     sync.Mutex
	events []entity.GenerationJob
	subs   []chan entity.GenerationJob
}

func (h *fakeHub) BroadcastJob(job entity.GenerationJob) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, job)
	for _, sub := range h.subs {
		select {
		case sub <- job:
		default:
		}
	}
}

func (h *fakeHub) SubscribeJobs() (<-chan entity.GenerationJob, func()) {
	ch := make(chan entity.GenerationJob, 16)
	h.mu.Lock()
	h.subs = append(h.subs, ch)
	h.mu.Unlock()
	return ch, func() {}
}

func newTestService(repo *fakeRepo, hub *fakeHub) *Service {
	conf := &config.Config{}
	conf.Storage.Bucket = "estatedesk"
	conf.Storage.PublicBaseURL = "http://127.0.0.1:9100"
	conf.Generation.DelayMs = 0

	svc := NewGenerationService(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.SetRepository(repo)
	if hub != nil {
		svc.SetHub(hub)
	}
	svc.sleep = func(time.Duration) {}
	return svc
}

func TestCreateMockHappyPath(t *testing.T) {
	repo := newFakeRepo()
	hub := &fakeHub{}
	svc := newTestService(repo, hub)

	job, err := svc.CreateMock(context.Background(), "prop-1")
	require.NoError(t, err)

	assert.Equal(t, entity.JobStatusDone, job.Status)
	require.Len(t, job.Output, 1)
	assert.Contains(t, job.Output[0], "alt=media&token=")
	assert.Contains(t, job.Output[0], "ai%2F"+job.ID)

	stored, _ := repo.GetGenerationJob(context.Background(), job.ID)
	assert.Equal(t, entity.JobStatusDone, stored.Status)
	assert.Equal(t, job.Output, stored.Output)

	require.Len(t, repo.objects, 1)
	for path, meta := range repo.objects {
		assert.Regexp(t, `^ai/`+job.ID+`/mock_\d+\.png$`, path)
		assert.Equal(t, "image/png", meta.MIMEType)
		assert.NotEmpty(t, meta.Token)
	}

	require.Len(t, hub.events, 1)
	assert.Equal(t, job.ID, hub.events[0].ID)
}

func TestCreateMockImageWriteFailureLeavesQueuedJob(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	repo.failPut = true

	job, err := svc.CreateMock(context.Background(), "prop-1")
	require.Error(t, err)
	assert.Nil(t, job)

	// the queued record stays behind, no cleanup
	jobs, _ := repo.GetAllGenerationJobs(context.Background())
	require.Len(t, jobs, 1)
	assert.Equal(t, entity.JobStatusQueued, jobs[0].Status)
}

func TestWatcherReceivesPushEvent(t *testing.T) {
	repo := newFakeRepo()
	hub := &fakeHub{}
	svc := newTestService(repo, hub)
	svc.pollInterval = time.Hour // push only

	w := svc.Watch("job-1")
	defer w.Stop()

	hub.BroadcastJob(entity.GenerationJob{
		ID:        "job-1",
		Status:    entity.JobStatusDone,
		UpdatedAt: time.Now(),
	})

	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("watcher did not observe the pushed terminal state")
	}
	assert.Equal(t, entity.JobStatusDone, w.Current().Status)
}

func TestWatcherPollingFallback(t *testing.T) {
	repo := newFakeRepo()
	hub := &fakeHub{}
	svc := newTestService(repo, hub)
	svc.pollInterval = 5 * time.Millisecond

	now := time.Now()
	repo.jobs["job-1"] = &entity.GenerationJob{
		ID:        "job-1",
		Status:    entity.JobStatusDone,
		UpdatedAt: now,
	}

	w := svc.Watch("job-1")
	defer w.Stop()

	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("polling leg did not observe the terminal state")
	}
	assert.Equal(t, entity.JobStatusDone, w.Current().Status)
}

func TestWatcherLastWriterByTimestampWins(t *testing.T) {
	repo := newFakeRepo()
	hub := &fakeHub{}
	svc := newTestService(repo, hub)
	svc.pollInterval = time.Hour

	w := svc.Watch("job-1")
	defer w.Stop()

	now := time.Now()
	fresh := &entity.GenerationJob{ID: "job-1", Status: entity.JobStatusQueued, UpdatedAt: now}
	stale := &entity.GenerationJob{ID: "job-1", Status: entity.JobStatusQueued, UpdatedAt: now.Add(-time.Minute)}

	w.apply(fresh)
	w.apply(stale)

	assert.Equal(t, fresh.UpdatedAt, w.Current().UpdatedAt, "stale write must not overwrite a fresher one")
}

func TestWatcherIgnoresOtherJobs(t *testing.T) {
	repo := newFakeRepo()
	hub := &fakeHub{}
	svc := newTestService(repo, hub)
	svc.pollInterval = time.Hour

	w := svc.Watch("job-1")
	defer w.Stop()

	hub.BroadcastJob(entity.GenerationJob{ID: "job-2", Status: entity.JobStatusDone, UpdatedAt: time.Now()})

	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, w.Current())
}
