package core

import (
	"context"
	"io"

	"EstateDesk/entity"
)

func (c *Core) OpenStoredObject(ctx context.Context, path string) (entity.ObjectMetadata, io.ReadCloser, error) {
	return c.objects.OpenObject(ctx, path)
}
