package entity

import "time"

// CRM entities live only in the in-memory mock CRM store. They are flat
// records scoped to five independent collections; references between them
// (a deal's contact id) are free-text strings, not validated.

type CrmLead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	PropertyID string    `json:"propertyId,omitempty"`
	Source     string    `json:"source,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Contact struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Company      string   `json:"company,omitempty"`
	Email        string   `json:"email,omitempty"`
	LastActivity string   `json:"lastActivity,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

type Deal struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	ContactID string  `json:"contactId,omitempty"`
	Value     float64 `json:"value"`
	Stage     string  `json:"stage"`
}

// InboxMessage status "Closed" marks a handled conversation; anything
// else counts as open.
type InboxMessage struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	Subject    string    `json:"subject"`
	Preview    string    `json:"preview,omitempty"`
	Status     string    `json:"status"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Task status "done" marks completion; anything else counts as open.
type Task struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Assignee string    `json:"assignee,omitempty"`
	Status   string    `json:"status"`
	Due      time.Time `json:"due,omitempty"`
}

// CrmCounts is the derived projection over the five collections. It is
// recomputed on every store transition and never left stale.
type CrmCounts struct {
	Leads int `json:"leads"`
	Inbox int `json:"inbox"`
	Tasks int `json:"tasks"`
}
