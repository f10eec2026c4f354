package ws

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"EstateDesk/entity"
)

// Event represents a server-push event sent to connected clients.
type Event struct {
	Type string `json:"type"` // "listing_updated", "job_updated", "lead_created", "upload_progress"
	Data any    `json:"data"`
}

// Hub maintains the set of active WebSocket clients and broadcasts
// document-change events. Dashboard, admin, and property-detail views
// subscribe here instead of polling, with one exception: the generation
// watcher runs a bounded polling loop alongside its subscription.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	jobSubs map[chan entity.GenerationJob]bool
	jobMu   sync.RWMutex

	log *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		jobSubs:    make(map[chan entity.GenerationJob]bool),
		log:        log,
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastListing sends a listing_updated event to all connected clients.
func (h *Hub) BroadcastListing(listing entity.Listing) {
	h.broadcast <- &Event{
		Type: "listing_updated",
		Data: listing,
	}
}

// BroadcastJob sends a job_updated event to all connected clients and to
// in-process job subscribers.
func (h *Hub) BroadcastJob(job entity.GenerationJob) {
	h.jobMu.RLock()
	for sub := range h.jobSubs {
		select {
		case sub <- job:
		default:
		}
	}
	h.jobMu.RUnlock()

	h.broadcast <- &Event{
		Type: "job_updated",
		Data: job,
	}
}

// BroadcastLead sends a lead_created event to all connected clients.
func (h *Hub) BroadcastLead(lead entity.Lead) {
	h.broadcast <- &Event{
		Type: "lead_created",
		Data: lead,
	}
}

// BroadcastUploadProgress reports the 1-indexed position of the photo
// about to be uploaded for a listing.
func (h *Hub) BroadcastUploadProgress(listingID string, current, total int) {
	h.broadcast <- &Event{
		Type: "upload_progress",
		Data: map[string]any{
			"listingId": listingID,
			"current":   current,
			"total":     total,
			"message":   fmt.Sprintf("Uploading photo %d of %d", current, total),
		},
	}
}

// SubscribeJobs registers an in-process subscriber for job events.
// The returned cancel function must be called to release the channel.
func (h *Hub) SubscribeJobs() (<-chan entity.GenerationJob, func()) {
	ch := make(chan entity.GenerationJob, 16)

	h.jobMu.Lock()
	h.jobSubs[ch] = true
	h.jobMu.Unlock()

	cancel := func() {
		h.jobMu.Lock()
		delete(h.jobSubs, ch)
		h.jobMu.Unlock()
	}
	return ch, cancel
}
