package lead

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"EstateDesk/entity"
	"EstateDesk/internal/lib/sl"
	"EstateDesk/internal/lib/validate"
)

var (
	ErrMissingFields = errors.New("name, email and message are required")
	ErrBadStatus     = errors.New("unknown lead status")
)

type Repository interface {
	InsertLead(ctx context.Context, lead *entity.Lead) error
	GetAllLeads(ctx context.Context) ([]entity.Lead, error)
	UpdateLeadStatus(ctx context.Context, id, status string) error
}

type Broadcaster interface {
	BroadcastLead(lead entity.Lead)
}

// SubmitRequest is the public lead-capture form. Website is the hidden
// honeypot field: humans never fill it, bots do.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Website string `json:"website"`
}

type submitInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Message string `validate:"required"`
}

type Service struct {
	repo Repository
	hub  Broadcaster
	log  *slog.Logger
}

func NewLeadService(logger *slog.Logger) *Service {
	return &Service{
		log: logger.With(sl.Module("lead-service")),
	}
}

func (s *Service) SetRepository(repo Repository) {
	s.repo = repo
}

func (s *Service) SetHub(hub Broadcaster) {
	s.hub = hub
}

// Submit processes a public lead submission. A tripped honeypot discards
// the submission silently and returns (nil, nil): the response must be
// indistinguishable from success to the submitter. Validation failures
// happen before any write.
func (s *Service) Submit(ctx context.Context, propertyID string, req SubmitRequest) (*entity.Lead, error) {
	if req.Website != "" {
		s.log.With(slog.String("property_id", propertyID)).Debug("honeypot tripped, submission discarded")
		return nil, nil
	}

	if err := validate.Struct(submitInput{Name: req.Name, Email: req.Email, Message: req.Message}); err != nil {
		return nil, ErrMissingFields
	}

	lead := &entity.Lead{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		Contact: entity.LeadContact{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		},
		Message:   req.Message,
		Status:    entity.LeadStatusNew,
		CreatedAt: time.Now(),
	}

	if err := s.repo.InsertLead(ctx, lead); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastLead(*lead)
	}

	s.log.With(
		slog.String("lead_id", lead.ID),
		slog.String("property_id", propertyID),
	).Info("lead captured")

	return lead, nil
}

// List retrieves every captured lead, newest first.
func (s *Service) List(ctx context.Context) ([]entity.Lead, error) {
	return s.repo.GetAllLeads(ctx)
}

// SetStatus applies an admin status change to a lead.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	if !entity.ValidLeadStatus(status) {
		return ErrBadStatus
	}
	return s.repo.UpdateLeadStatus(ctx, id, status)
}
