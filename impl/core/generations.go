package core

import (
	"context"

	"EstateDesk/entity"
)

func (c *Core) CreateGenerationMock(ctx context.Context, propertyID string) (*entity.GenerationJob, error) {
	return c.generations.CreateMock(ctx, propertyID)
}

func (c *Core) GetGenerationJob(ctx context.Context, id string) (*entity.GenerationJob, error) {
	return c.generations.Get(ctx, id)
}

func (c *Core) GetAllGenerationJobs(ctx context.Context) ([]entity.GenerationJob, error) {
	return c.generations.ListAll(ctx)
}
