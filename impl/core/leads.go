package core

import (
	"context"

	"EstateDesk/entity"
	leadsvc "EstateDesk/internal/service/lead"
)

func (c *Core) SubmitLead(ctx context.Context, propertyID string, req leadsvc.SubmitRequest) (*entity.Lead, error) {
	return c.leads.Submit(ctx, propertyID, req)
}

func (c *Core) GetAllLeads(ctx context.Context) ([]entity.Lead, error) {
	return c.leads.List(ctx)
}

func (c *Core) SetLeadStatus(ctx context.Context, id, status string) error {
	return c.leads.SetStatus(ctx, id, status)
}
