package core

import (
	"context"

	"EstateDesk/entity"
	listingsvc "EstateDesk/internal/service/listing"
)

func (c *Core) CreateListingDraft(ctx context.Context, owner, title, location string) (*entity.Listing, error) {
	return c.listings.CreateDraft(ctx, owner, title, location)
}

// UploadListingPhotos runs the sequential upload flow. Per-file progress
// reaches clients over the hub, so no extra callback is attached here.
func (c *Core) UploadListingPhotos(ctx context.Context, listingID string, files []listingsvc.File) (*entity.Listing, error) {
	return c.listings.UploadPhotos(ctx, listingID, files, nil)
}

func (c *Core) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	return c.listings.Get(ctx, id)
}

func (c *Core) GetListingsByOwner(ctx context.Context, owner string) ([]entity.Listing, error) {
	return c.listings.ListByOwner(ctx, owner)
}

func (c *Core) GetPublicListing(ctx context.Context, id string) (*listingsvc.PublicListing, error) {
	return c.listings.PublicView(ctx, id)
}

func (c *Core) UploadPropertyPhoto(ctx context.Context, propertyID, fileName, contentType string, data []byte) (string, string, error) {
	return c.listings.UploadPhoto(ctx, propertyID, fileName, contentType, data)
}
