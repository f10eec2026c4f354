package public

import (
	"context"

	"EstateDesk/entity"
	leadsvc "EstateDesk/internal/service/lead"
	listingsvc "EstateDesk/internal/service/listing"
)

// Core defines the methods required by the public, unauthenticated
// listing page and its lead-capture form.
type Core interface {
	GetPublicListing(ctx context.Context, id string) (*listingsvc.PublicListing, error)
	SubmitLead(ctx context.Context, propertyID string, req leadsvc.SubmitRequest) (*entity.Lead, error)
}
