package generation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EstateDesk/entity"
)

type fakeCore struct {
	job *entity.GenerationJob
	err error
}

func (f *fakeCore) CreateGenerationMock(_ context.Context, propertyID string) (*entity.GenerationJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	job := *f.job
	job.PropertyID = propertyID
	return &job, nil
}

func (f *fakeCore) GetAllGenerationJobs(_ context.Context) ([]entity.GenerationJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.job == nil {
		return nil, nil
	}
	return []entity.GenerationJob{*f.job}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateMockMissingPropertyID(t *testing.T) {
	handler := CreateMock(testLogger(), &fakeCore{})

	req := httptest.NewRequest(http.MethodGet, "/createGenerationMockHttp", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "propertyId is required", body["error"])
}

func TestCreateMockReturnsFlatPayload(t *testing.T) {
	handler := CreateMock(testLogger(), &fakeCore{
		job: &entity.GenerationJob{
			ID:     "job-1",
			Status: entity.JobStatusDone,
			Output: []string{"http://127.0.0.1:9100/v0/b/estatedesk/o/ai%2Fjob-1%2Fmock_1.png?alt=media&token=t"},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/createGenerationMockHttp?propertyId=prop-1", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body createMockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "job-1", body.ID)
	assert.Contains(t, body.Output, "alt=media&token=")
}

func TestCreateMockBackendFailure(t *testing.T) {
	handler := CreateMock(testLogger(), &fakeCore{err: errors.New("storage offline")})

	req := httptest.NewRequest(http.MethodGet, "/createGenerationMockHttp?propertyId=prop-1", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}
