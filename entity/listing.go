package entity

import (
	"net/http"
	"time"

	"EstateDesk/internal/lib/validate"
)

const (
	ListingStatusDraft    = "draft"
	ListingStatusUploaded = "uploaded"
)

// Photo describes one uploaded gallery image. Immutable once written.
type Photo struct {
	Name        string    `json:"name" bson:"name"`
	StoragePath string    `json:"storagePath" bson:"storage_path"`
	URL         string    `json:"downloadURL" bson:"download_url"`
	Size        int64     `json:"size" bson:"size"`
	MIMEType    string    `json:"mimeType" bson:"mime_type"`
	UploadedAt  time.Time `json:"uploadedAt" bson:"uploaded_at"`
}

// Listing is a property record. Created as a draft with no photos,
// flipped to uploaded once the photo upload flow completes.
type Listing struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title" validate:"required"`
	Location  string    `json:"location" bson:"location" validate:"required"`
	Status    string    `json:"status" bson:"status"`
	Owner     string    `json:"owner" bson:"owner"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	Photos    []Photo   `json:"photos" bson:"photos"`
}

func (l *Listing) Bind(_ *http.Request) error {
	return validate.Struct(l)
}
