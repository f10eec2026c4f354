package listing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"EstateDesk/entity"
	"EstateDesk/internal/config"
	"EstateDesk/internal/lib/filename"
	"EstateDesk/internal/lib/objecturl"
	"EstateDesk/internal/lib/sl"
	"EstateDesk/internal/lib/validate"
)

var (
	ErrNoFiles       = errors.New("no files selected")
	ErrMissingFields = errors.New("title and location are required")
)

type Repository interface {
	InsertListing(ctx context.Context, listing *entity.Listing) error
	UpdateListingPhotos(ctx context.Context, id string, photos []entity.Photo, status string) error
	GetListing(ctx context.Context, id string) (*entity.Listing, error)
	GetListingsByOwner(ctx context.Context, owner string) ([]entity.Listing, error)
	GetListingGallery(ctx context.Context, id string) ([]any, error)
	UploadObject(ctx context.Context, path string, reader io.Reader, meta entity.ObjectMetadata) (int64, error)
	OpenObject(ctx context.Context, path string) (entity.ObjectMetadata, io.ReadCloser, error)
}

type Broadcaster interface {
	BroadcastListing(listing entity.Listing)
	BroadcastUploadProgress(listingID string, current, total int)
}

// File is one image submitted through the upload flow.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// PublicListing is the read-only shape served on the shareable page:
// no owner, gallery flattened to display URLs.
type PublicListing struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Gallery   []string  `json:"gallery"`
}

type Service struct {
	repo Repository
	hub  Broadcaster
	conf *config.Config
	log  *slog.Logger
}

func NewListingService(conf *config.Config, logger *slog.Logger) *Service {
	return &Service{
		conf: conf,
		log:  logger.With(sl.Module("listing-service")),
	}
}

func (s *Service) SetRepository(repo Repository) {
	s.repo = repo
}

func (s *Service) SetHub(hub Broadcaster) {
	s.hub = hub
}

type draftInput struct {
	Title    string `validate:"required"`
	Location string `validate:"required"`
}

// CreateDraft validates the text fields and inserts an empty draft
// listing. Validation failures happen before any write.
func (s *Service) CreateDraft(ctx context.Context, owner, title, location string) (*entity.Listing, error) {
	if err := validate.Struct(draftInput{Title: title, Location: location}); err != nil {
		return nil, ErrMissingFields
	}

	listing := &entity.Listing{
		ID:        uuid.NewString(),
		Title:     title,
		Location:  location,
		Status:    entity.ListingStatusDraft,
		Owner:     owner,
		CreatedAt: time.Now(),
		Photos:    []entity.Photo{},
	}

	if err := s.repo.InsertListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("insert listing: %w", err)
	}

	s.log.With(
		slog.String("listing_id", listing.ID),
		slog.String("owner", owner),
	).Info("draft listing created")

	return listing, nil
}

// UploadPhotos runs the sequential photo upload flow for a draft listing.
// Uploads are intentionally serialized to bound concurrent write load on
// the object store. Progress is reported 1-indexed before each upload.
// Any failure aborts the whole flow and leaves the listing in whatever
// partial state it reached; there is no rollback and no resume.
func (s *Service) UploadPhotos(ctx context.Context, listingID string, files []File, progress func(current, total int)) (*entity.Listing, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	photos := make([]entity.Photo, 0, len(files))
	for i, file := range files {
		if progress != nil {
			progress(i+1, len(files))
		}
		if s.hub != nil {
			s.hub.BroadcastUploadProgress(listingID, i+1, len(files))
		}

		photo, err := s.storePhoto(ctx, listingID, file)
		if err != nil {
			return nil, fmt.Errorf("upload photo %d of %d: %w", i+1, len(files), err)
		}
		photos = append(photos, photo)
	}

	if err := s.repo.UpdateListingPhotos(ctx, listingID, photos, entity.ListingStatusUploaded); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("reload listing: %w", err)
	}
	if listing != nil && s.hub != nil {
		s.hub.BroadcastListing(*listing)
	}

	s.log.With(
		slog.String("listing_id", listingID),
		slog.Int("photos", len(photos)),
	).Info("listing photos uploaded")

	return listing, nil
}

// UploadPhoto stores a single photo object for a property and returns its
// storage path and public download URL. It does not touch the listing
// record; that is the caller's concern.
func (s *Service) UploadPhoto(ctx context.Context, propertyID, fileName, contentType string, data []byte) (string, string, error) {
	photo, err := s.storePhoto(ctx, propertyID, File{
		Name:        fileName,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return "", "", err
	}
	return photo.StoragePath, photo.URL, nil
}

func (s *Service) storePhoto(ctx context.Context, propertyID string, file File) (entity.Photo, error) {
	name := filename.Unique(file.Name)
	path := fmt.Sprintf("properties/%s/photos/%s", propertyID, name)
	token := objecturl.NewToken()

	meta := entity.ObjectMetadata{
		MIMEType:     file.ContentType,
		CacheControl: s.conf.Storage.CacheControl,
		Token:        token,
		PropertyID:   propertyID,
	}

	size, err := s.repo.UploadObject(ctx, path, bytes.NewReader(file.Data), meta)
	if err != nil {
		return entity.Photo{}, fmt.Errorf("store object: %w", err)
	}

	return entity.Photo{
		Name:        name,
		StoragePath: path,
		URL:         objecturl.Download(s.conf.Storage.PublicBaseURL, s.conf.Storage.Bucket, path, token),
		Size:        size,
		MIMEType:    file.ContentType,
		UploadedAt:  time.Now(),
	}, nil
}

// Get retrieves a listing by id; nil when absent.
func (s *Service) Get(ctx context.Context, id string) (*entity.Listing, error) {
	return s.repo.GetListing(ctx, id)
}

// ListByOwner retrieves the signed-in owner's listings for the dashboard.
func (s *Service) ListByOwner(ctx context.Context, owner string) ([]entity.Listing, error) {
	return s.repo.GetListingsByOwner(ctx, owner)
}

// PublicView assembles the shareable read-only listing page. Legacy photo
// entries of any shape are resolved to display URLs; entries that resolve
// to nothing are dropped. Returns nil when the listing is absent.
func (s *Service) PublicView(ctx context.Context, id string) (*PublicListing, error) {
	listing, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, nil
	}

	raw, err := s.repo.GetListingGallery(ctx, id)
	if err != nil {
		return nil, err
	}

	gallery := make([]string, 0, len(raw))
	for _, photo := range raw {
		if url := entity.ResolvePhotoURL(photo, s.resolveStoragePath(ctx)); url != "" {
			gallery = append(gallery, url)
		}
	}

	return &PublicListing{
		ID:        listing.ID,
		Title:     listing.Title,
		Location:  listing.Location,
		Status:    listing.Status,
		CreatedAt: listing.CreatedAt,
		Gallery:   gallery,
	}, nil
}

// resolveStoragePath turns a bare storage path from a legacy photo record
// into a tokened public URL by looking the object's metadata back up.
// Unresolvable paths fall back to the raw path.
func (s *Service) resolveStoragePath(ctx context.Context) func(path string) string {
	return func(path string) string {
		meta, reader, err := s.repo.OpenObject(ctx, path)
		if err != nil {
			s.log.With(slog.String("path", path), sl.Err(err)).Debug("legacy photo path not resolvable")
			return path
		}
		reader.Close()
		return objecturl.Download(s.conf.Storage.PublicBaseURL, s.conf.Storage.Bucket, path, meta.Token)
	}
}
