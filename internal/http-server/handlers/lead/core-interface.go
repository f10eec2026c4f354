package lead

import (
	"context"

	"EstateDesk/entity"
	leadsvc "EstateDesk/internal/service/lead"
)

// Core defines the methods required by lead handlers.
type Core interface {
	SubmitLead(ctx context.Context, propertyID string, req leadsvc.SubmitRequest) (*entity.Lead, error)
	GetAllLeads(ctx context.Context) ([]entity.Lead, error)
	SetLeadStatus(ctx context.Context, id, status string) error
}
