package entity

import "time"

const (
	JobStatusQueued = "queued"
	JobStatusDone   = "done"
)

// GenerationJob tracks one mock visual-generation request for a property.
// The status transition is a single linear step: queued -> done.
type GenerationJob struct {
	ID         string    `json:"id" bson:"_id"`
	PropertyID string    `json:"propertyId" bson:"property_id"`
	Status     string    `json:"status" bson:"status"`
	Output     []string  `json:"output" bson:"output"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updated_at"`
}
