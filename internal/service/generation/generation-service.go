package generation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"EstateDesk/entity"
	"EstateDesk/internal/config"
	"EstateDesk/internal/lib/objecturl"
	"EstateDesk/internal/lib/sl"
)

type Repository interface {
	InsertGenerationJob(ctx context.Context, job *entity.GenerationJob) error
	MarkGenerationDone(ctx context.Context, id string, output []string, updatedAt time.Time) error
	GetGenerationJob(ctx context.Context, id string) (*entity.GenerationJob, error)
	GetAllGenerationJobs(ctx context.Context) ([]entity.GenerationJob, error)
	UploadObject(ctx context.Context, path string, reader io.Reader, meta entity.ObjectMetadata) (int64, error)
}

type Broadcaster interface {
	BroadcastJob(job entity.GenerationJob)
	SubscribeJobs() (<-chan entity.GenerationJob, func())
}

// Service runs mock visual-generation jobs: it fabricates a placeholder
// image after a fixed delay instead of calling a real generation backend.
type Service struct {
	repo Repository
	hub  Broadcaster
	conf *config.Config
	log  *slog.Logger

	sleep        func(d time.Duration)
	now          func() time.Time
	pollInterval time.Duration
	pollAttempts int
}

func NewGenerationService(conf *config.Config, logger *slog.Logger) *Service {
	return &Service{
		conf:         conf,
		log:          logger.With(sl.Module("generation-service")),
		sleep:        time.Sleep,
		now:          time.Now,
		pollInterval: 2 * time.Second,
		pollAttempts: 10,
	}
}

func (s *Service) SetRepository(repo Repository) {
	s.repo = repo
}

func (s *Service) SetHub(hub Broadcaster) {
	s.hub = hub
}

// CreateMock runs the whole mock generation sequence synchronously:
// insert a queued job, wait the configured delay, store the placeholder
// image with a capability token, then flip the job to done with the
// output URL. No step compensates an earlier one; if the image write
// fails, the queued job record stays behind.
func (s *Service) CreateMock(ctx context.Context, propertyID string) (*entity.GenerationJob, error) {
	now := s.now()
	job := &entity.GenerationJob{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		Status:     entity.JobStatusQueued,
		Output:     []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.InsertGenerationJob(ctx, job); err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	s.sleep(time.Duration(s.conf.Generation.DelayMs) * time.Millisecond)

	path := fmt.Sprintf("ai/%s/mock_%d.png", job.ID, s.now().UnixMilli())
	token := objecturl.NewToken()
	meta := entity.ObjectMetadata{
		MIMEType: "image/png",
		Token:    token,
		JobID:    job.ID,
	}

	if _, err := s.repo.UploadObject(ctx, path, bytes.NewReader(placeholderPNG), meta); err != nil {
		return nil, fmt.Errorf("store placeholder: %w", err)
	}

	url := objecturl.Download(s.conf.Storage.PublicBaseURL, s.conf.Storage.Bucket, path, token)

	job.Status = entity.JobStatusDone
	job.Output = []string{url}
	job.UpdatedAt = s.now()

	if err := s.repo.MarkGenerationDone(ctx, job.ID, job.Output, job.UpdatedAt); err != nil {
		return nil, fmt.Errorf("mark job done: %w", err)
	}

	if s.hub != nil {
		s.hub.BroadcastJob(*job)
	}

	s.log.With(
		slog.String("job_id", job.ID),
		slog.String("property_id", propertyID),
	).Info("mock generation completed")

	return job, nil
}

// Get retrieves a job by id; nil when absent.
func (s *Service) Get(ctx context.Context, id string) (*entity.GenerationJob, error) {
	return s.repo.GetGenerationJob(ctx, id)
}

// ListAll retrieves every job for the admin live view.
func (s *Service) ListAll(ctx context.Context) ([]entity.GenerationJob, error) {
	return s.repo.GetAllGenerationJobs(ctx)
}
