package public

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EstateDesk/entity"
	leadsvc "EstateDesk/internal/service/lead"
	listingsvc "EstateDesk/internal/service/listing"
)

type fakeCore struct {
	listing   *listingsvc.PublicListing
	submitted []leadsvc.SubmitRequest
}

func (f *fakeCore) GetPublicListing(_ context.Context, id string) (*listingsvc.PublicListing, error) {
	if f.listing != nil && f.listing.ID == id {
		return f.listing, nil
	}
	return nil, nil
}

func (f *fakeCore) SubmitLead(_ context.Context, _ string, req leadsvc.SubmitRequest) (*entity.Lead, error) {
	if req.Website != "" {
		return nil, nil
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return nil, leadsvc.ErrMissingFields
	}
	f.submitted = append(f.submitted, req)
	return &entity.Lead{ID: "lead-1", Status: entity.LeadStatusNew}, nil
}

func newRouter(core *fakeCore) *chi.Mux {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	router.Route("/p/{id}", func(r chi.Router) {
		r.Get("/", GetListing(log, core))
		r.Post("/leads", SubmitLead(log, core))
	})
	return router
}

func TestGetListingUnknownIDAnswersGeneric404(t *testing.T) {
	router := newRouter(&fakeCore{})

	req := httptest.NewRequest(http.MethodGet, "/p/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["error"])
}

func TestGetListingReturnsPublicView(t *testing.T) {
	router := newRouter(&fakeCore{
		listing: &listingsvc.PublicListing{
			ID:      "list-1",
			Title:   "Sunny loft",
			Gallery: []string{"http://127.0.0.1:9100/v0/b/estatedesk/o/x?alt=media&token=t"},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/p/list-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sunny loft")
}

func TestSubmitLeadHoneypotLooksLikeSuccess(t *testing.T) {
	core := &fakeCore{}
	router := newRouter(core)

	honeypot := `{"name":"Bot","email":"bot@spam.com","message":"hi","website":"http://spam.example"}`
	req := httptest.NewRequest(http.MethodPost, "/p/list-1/leads", strings.NewReader(honeypot))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	human := `{"name":"Ana","email":"ana@example.com","message":"Still available?"}`
	req2 := httptest.NewRequest(http.MethodPost, "/p/list-1/leads", strings.NewReader(human))
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)

	// Same status, same body shape: the bot gets no signal.
	assert.Equal(t, rec2.Code, rec.Code)
	assert.Equal(t, rec2.Body.String(), rec.Body.String())

	// Only the human submission reached the service.
	require.Len(t, core.submitted, 1)
	assert.Equal(t, "Ana", core.submitted[0].Name)
}

func TestSubmitLeadMissingFields(t *testing.T) {
	router := newRouter(&fakeCore{})

	req := httptest.NewRequest(http.MethodPost, "/p/list-1/leads", strings.NewReader(`{"name":"Ana"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
