// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shopventory/internal/api"
	"github.com/taibuivan/shopventory/internal/lists"
	"github.com/taibuivan/shopventory/internal/platform/config"
	"github.com/taibuivan/shopventory/internal/platform/sec"
)

type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token == "alice-token" {
		return &sec.AuthClaims{UserID: "alice"}, nil
	}
	return nil, errors.New("invalid")
}

// emptyRepository stores nothing and finds nothing.
type emptyRepository struct{}

func (emptyRepository) FetchAll(context.Context, lists.Session) ([]lists.List, error) {
	return nil, nil
}

func (emptyRepository) Get(context.Context, lists.Session, string) (*lists.List, error) {
	return nil, errors.New("not stored")
}

func (emptyRepository) Create(context.Context, lists.Session, *lists.List) error { return nil }

func (emptyRepository) Delete(context.Context, lists.Session, string) error { return nil }

func newTestServer(t *testing.T, dependencies api.HealthDependencies) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "production", AllowedOriginSuffix: "shopventory.app"}
	liveness, readiness := api.NewHealthHandlers(dependencies, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, cfg, logger, stubVerifier{}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Lists:     lists.NewHandler(lists.NewService(emptyRepository{}, logger)),
	})
	return server.Handler()
}

func get(handler http.Handler, path, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestServer_Health(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	recorder := get(handler, "/health", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, recorder.Body.String())
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestServer_Readiness(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("connection refused") }

	recorder := get(newTestServer(t, api.HealthDependencies{CheckDatabase: healthy, CheckCache: healthy}), "/ready", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ready"`)

	recorder = get(newTestServer(t, api.HealthDependencies{CheckDatabase: healthy, CheckCache: failing}), "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
	assert.Contains(t, recorder.Body.String(), "connection refused")
}

func TestServer_ListsRequireAuthentication(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	assert.Equal(t, http.StatusUnauthorized, get(handler, "/api/v1/lists", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(handler, "/api/v1/lists", "forged").Code)

	recorder := get(handler, "/api/v1/lists", "alice-token")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":[]}`, strings.TrimSpace(recorder.Body.String()))
}

func TestServer_UnknownRoute(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	assert.Equal(t, http.StatusNotFound, get(handler, "/api/v1/unknown", "alice-token").Code)
}
