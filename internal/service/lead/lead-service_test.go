package lead

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EstateDesk/entity"
)

type fakeRepo struct {
	leads []entity.Lead
}

func (f *fakeRepo) InsertLead(_ context.Context, lead *entity.Lead) error {
	f.leads = append(f.leads, *lead)
	return nil
}

func (f *fakeRepo) GetAllLeads(_ context.Context) ([]entity.Lead, error) {
	return f.leads, nil
}

func (f *fakeRepo) UpdateLeadStatus(_ context.Context, id, status string) error {
	for i := range f.leads {
		if f.leads[i].ID == id {
			f.leads[i].Status = status
		}
	}
	return nil
}

func newTestService(repo *fakeRepo) *Service {
	svc := NewLeadService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.SetRepository(repo)
	return svc
}

func TestSubmitCreatesNewLead(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	lead, err := svc.Submit(context.Background(), "prop-1", SubmitRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Is this still available?",
	})
	require.NoError(t, err)
	require.NotNil(t, lead)

	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Equal(t, "prop-1", lead.PropertyID)
	assert.False(t, lead.CreatedAt.IsZero(), "timestamp is server-assigned")
	assert.Len(t, repo.leads, 1)
}

func TestSubmitHoneypotSilentDiscard(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	lead, err := svc.Submit(context.Background(), "prop-1", SubmitRequest{
		Name:    "Bot",
		Email:   "bot@example.com",
		Message: "spam",
		Website: "http://spam.example.com",
	})

	// indistinguishable from success: no error, nothing stored
	assert.NoError(t, err)
	assert.Nil(t, lead)
	assert.Empty(t, repo.leads)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		req  SubmitRequest
	}{
		{name: "missing name", req: SubmitRequest{Email: "a@b.c", Message: "hi"}},
		{name: "missing email", req: SubmitRequest{Name: "Ana", Message: "hi"}},
		{name: "missing message", req: SubmitRequest{Name: "Ana", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := newTestService(repo)

			_, err := svc.Submit(context.Background(), "prop-1", tt.req)
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Empty(t, repo.leads)
		})
	}
}

func TestSubmitPhoneOptional(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	lead, err := svc.Submit(context.Background(), "prop-1", SubmitRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "hi",
	})
	require.NoError(t, err)
	assert.Empty(t, lead.Contact.Phone)
}

func TestSetStatus(t *testing.T) {
	repo := &fakeRepo{leads: []entity.Lead{{ID: "l1", Status: entity.LeadStatusNew}}}
	svc := newTestService(repo)

	require.NoError(t, svc.SetStatus(context.Background(), "l1", entity.LeadStatusContacted))
	assert.Equal(t, entity.LeadStatusContacted, repo.leads[0].Status)

	assert.ErrorIs(t, svc.SetStatus(context.Background(), "l1", "archived"), ErrBadStatus)
}
