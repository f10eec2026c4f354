package core

import (
	"context"
	"io"
	"log/slog"

	"EstateDesk/entity"
	crmstore "EstateDesk/internal/crm"
	"EstateDesk/internal/lib/sl"
	leadsvc "EstateDesk/internal/service/lead"
	listingsvc "EstateDesk/internal/service/listing"
	"EstateDesk/internal/ws"
)

type ListingService interface {
	CreateDraft(ctx context.Context, owner, title, location string) (*entity.Listing, error)
	UploadPhotos(ctx context.Context, listingID string, files []listingsvc.File, progress func(current, total int)) (*entity.Listing, error)
	UploadPhoto(ctx context.Context, propertyID, fileName, contentType string, data []byte) (string, string, error)
	Get(ctx context.Context, id string) (*entity.Listing, error)
	ListByOwner(ctx context.Context, owner string) ([]entity.Listing, error)
	PublicView(ctx context.Context, id string) (*listingsvc.PublicListing, error)
}

type GenerationService interface {
	CreateMock(ctx context.Context, propertyID string) (*entity.GenerationJob, error)
	Get(ctx context.Context, id string) (*entity.GenerationJob, error)
	ListAll(ctx context.Context) ([]entity.GenerationJob, error)
}

type LeadService interface {
	Submit(ctx context.Context, propertyID string, req leadsvc.SubmitRequest) (*entity.Lead, error)
	List(ctx context.Context) ([]entity.Lead, error)
	SetStatus(ctx context.Context, id, status string) error
}

type AuthService interface {
	Login(username, password string) (*entity.UserAuth, error)
	Logout(token string)
	AuthenticateByToken(token string) (*entity.UserAuth, error)
}

type ObjectStore interface {
	OpenObject(ctx context.Context, path string) (entity.ObjectMetadata, io.ReadCloser, error)
}

type CrmStore interface {
	Dispatch(a crmstore.Action) crmstore.State
	Snapshot() crmstore.State
}

// Core ties the services together behind the single Handler interface
// the HTTP layer consumes. Dependencies are attached with setters after
// construction, mirroring the boot order in main.
type Core struct {
	listings    ListingService
	generations GenerationService
	leads       LeadService
	auth        AuthService
	objects     ObjectStore
	crm         CrmStore
	hub         *ws.Hub
	log         *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetListingService(s ListingService) {
	c.listings = s
}

func (c *Core) SetGenerationService(s GenerationService) {
	c.generations = s
}

func (c *Core) SetLeadService(s LeadService) {
	c.leads = s
}

func (c *Core) SetAuthService(s AuthService) {
	c.auth = s
}

func (c *Core) SetObjectStore(s ObjectStore) {
	c.objects = s
}

func (c *Core) SetCrmStore(s CrmStore) {
	c.crm = s
}

func (c *Core) SetHub(hub *ws.Hub) {
	c.hub = hub
}

func (c *Core) Hub() *ws.Hub {
	return c.hub
}
