package listing

import (
	"context"

	"EstateDesk/entity"
	listingsvc "EstateDesk/internal/service/listing"
)

// Core defines the methods required by listing handlers.
type Core interface {
	CreateListingDraft(ctx context.Context, owner, title, location string) (*entity.Listing, error)
	UploadListingPhotos(ctx context.Context, listingID string, files []listingsvc.File) (*entity.Listing, error)
	GetListing(ctx context.Context, id string) (*entity.Listing, error)
	GetListingsByOwner(ctx context.Context, owner string) ([]entity.Listing, error)
}
