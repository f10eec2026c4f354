package entity

import "time"

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusClosed    = "closed"
)

// LeadContact holds the visitor details captured by the public form.
type LeadContact struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Lead is a contact inquiry submitted against a public listing.
type Lead struct {
	ID         string      `json:"id" bson:"_id"`
	PropertyID string      `json:"propertyId" bson:"property_id"`
	Contact    LeadContact `json:"contact" bson:"contact"`
	Message    string      `json:"message" bson:"message"`
	Status     string      `json:"status" bson:"status"`
	CreatedAt  time.Time   `json:"createdAt" bson:"created_at"`
}

// ValidLeadStatus reports whether s is one of the known lead statuses.
func ValidLeadStatus(s string) bool {
	return s == LeadStatusNew || s == LeadStatusContacted || s == LeadStatusClosed
}
