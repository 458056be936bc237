package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-data-generator/internal/config"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/internal/scheduler"
	"github.com/vfg2006/sales-data-generator/internal/usecases/authenticating"
	"github.com/vfg2006/sales-data-generator/pkg/apiErrors"
	"github.com/vfg2006/sales-data-generator/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	log.SetupTestLogger()
}

const (
	adminEmail    = "admin@example.com"
	adminPassword = "senha-admin"
)

type fakeGeneration struct {
	run       *domain.DatasetRun
	err       error
	triggered bool
	busy      bool
	runs      []*domain.DatasetRun
	runsErr   error
	limit     uint64
}

func (f *fakeGeneration) RunNow(context.Context) (*domain.DatasetRun, error) {
	return f.run, f.err
}

func (f *fakeGeneration) TriggerManualSync() bool {
	f.triggered = !f.busy
	return !f.busy
}

func (f *fakeGeneration) GetStatus() map[string]any {
	return map[string]any{"schedule_enabled": true, "schedule_cron": "0 2 * * *"}
}

func (f *fakeGeneration) LastRun() *domain.DatasetRun {
	return f.run
}

func (f *fakeGeneration) ListRuns(_ context.Context, limit uint64) ([]*domain.DatasetRun, error) {
	f.limit = limit
	return f.runs, f.runsErr
}

func newTestHandler(t *testing.T, generation *fakeGeneration) (http.Handler, authenticating.Authenticator) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:            "segredo",
			AdminEmail:        adminEmail,
			AdminPasswordHash: string(hash),
			TokenTTL:          time.Hour,
		},
	}
	authenticator := authenticating.NewService(cfg)

	return NewHandler(authenticator, generation, generation), authenticator
}

func login(t *testing.T, handler http.Handler) string {
	t.Helper()

	body := `{"email":"` + adminEmail + `","password":"` + adminPassword + `"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response["token"])
	return response["token"]
}

func authorizedRequest(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr), rec.Body.String())
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeGeneration{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeGeneration{})

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"admin@example.com","password":"errada"}`)
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
}

func TestLogin_MalformedBody(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeGeneration{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeGeneration{})

	for _, path := range []string{"/v1/datasets/last", "/v1/datasets/runs", "/v1/cron/status"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code, path)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authorizedRequest(http.MethodGet, "/v1/datasets/last", "nao-e-um-jwt"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerateDataset(t *testing.T) {
	run := &domain.DatasetRun{
		ID:     "run123",
		Seed:   42,
		Status: domain.DatasetRunStatusCompleted,
		Metadata: &domain.DatasetMetadata{
			TotalTransactions: 100003,
			UniqueProducts:    50,
		},
	}
	handler, _ := newTestHandler(t, &fakeGeneration{run: run})
	token := login(t, handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authorizedRequest(http.MethodPost, "/v1/datasets/generate", token))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response domain.DatasetRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "run123", response.ID)
	require.NotNil(t, response.Metadata)
	assert.Equal(t, 100003, response.Metadata.TotalTransactions)
}

func TestGenerateDataset_Errors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectedHTTP int
	}{
		{
			name:         "configuração inválida",
			err:          domain.NewConfigurationError(domain.StageConfig, "N deve ser positivo"),
			expectedCode: apiErrors.ErrGenerationConfig,
			expectedHTTP: http.StatusUnprocessableEntity,
		},
		{
			name:         "falha na escrita",
			err:          domain.NewOutputWriteError(domain.StageExportCSV, nil),
			expectedCode: apiErrors.ErrGenerationOutput,
			expectedHTTP: http.StatusInternalServerError,
		},
		{
			name:         "falha no banco",
			err:          domain.NewOutputWriteError(domain.StageExportDB, nil),
			expectedCode: apiErrors.ErrGenerationDatabase,
			expectedHTTP: http.StatusInternalServerError,
		},
		{
			name:         "geração em andamento",
			err:          scheduler.ErrGenerationInProgress,
			expectedCode: apiErrors.ErrGenerationRunning,
			expectedHTTP: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestHandler(t, &fakeGeneration{err: tt.err})
			token := login(t, handler)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, authorizedRequest(http.MethodPost, "/v1/datasets/generate", token))

			assert.Equal(t, tt.expectedHTTP, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestGetLastRun_NoneYet(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeGeneration{})
	token := login(t, handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authorizedRequest(http.MethodGet, "/v1/datasets/last", token))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNoDatasetYet, decodeAPIError(t, rec).Code)
}

func TestListRuns(t *testing.T) {
	generation := &fakeGeneration{runs: []*domain.DatasetRun{{ID: "b"}, {ID: "a"}}}
	handler, _ := newTestHandler(t, generation)
	token := login(t, handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authorizedRequest(http.MethodGet, "/v1/datasets/runs?limit=5", token))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(5), generation.limit)

	var runs []domain.DatasetRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 2)
	assert.Equal(t, "b", runs[0].ID)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authorizedRequest(http.MethodGet, "/v1/datasets/runs?limit=abc", token))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRuns_EmptyIsArray(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeGeneration{})
	token := login(t, handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authorizedRequest(http.MethodGet, "/v1/datasets/runs", token))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCronRoutes(t *testing.T) {
	generation := &fakeGeneration{}
	handler, _ := newTestHandler(t, generation)
	token := login(t, handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authorizedRequest(http.MethodPost, "/v1/cron/generation/run", token))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, generation.triggered)

	generation.busy = true
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authorizedRequest(http.MethodPost, "/v1/cron/generation/run", token))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authorizedRequest(http.MethodGet, "/v1/cron/status", token))
	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "0 2 * * *", status["generation"]["schedule_cron"])
}

func TestUnknownRoute(t *testing.T) {
	handler, _ := newTestHandler(t, &fakeGeneration{})
	token := login(t, handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authorizedRequest(http.MethodGet, "/v1/nada", token))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
}
