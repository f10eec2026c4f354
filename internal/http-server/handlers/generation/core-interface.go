package generation

import (
	"context"

	"EstateDesk/entity"
)

// Core defines the methods required by generation handlers.
type Core interface {
	CreateGenerationMock(ctx context.Context, propertyID string) (*entity.GenerationJob, error)
	GetAllGenerationJobs(ctx context.Context) ([]entity.GenerationJob, error)
}
