package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resource-service/internal/config"
	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/internal/mock"
	"github.com/MKhiriev/resource-service/internal/service"
	"github.com/MKhiriev/resource-service/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testHandler struct {
	handler   *Handler
	router    http.Handler
	resources *mock.MockResourceService
	appInfo   *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, origins ...string) *testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	resources := mock.NewMockResourceService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{
		ResourceService: resources,
		AppInfoService:  appInfo,
	}, config.Server{AllowedOrigins: origins}, logger.Nop())

	return &testHandler{
		handler:   h,
		router:    h.Init(),
		resources: resources,
		appInfo:   appInfo,
	}
}

func (th *testHandler) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	th.router.ServeHTTP(rr, req)
	return rr
}

var testCreatedAt = time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)

func widget() models.Resource {
	return models.Resource{
		ID:        1,
		Name:      "Widget",
		Tags:      []string{"a", "b"},
		CreatedAt: testCreatedAt,
	}
}

func strPtr(s string) *string { return &s }

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serve(th *testHandler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	th.router.ServeHTTP(rr, req)
	return rr
}
