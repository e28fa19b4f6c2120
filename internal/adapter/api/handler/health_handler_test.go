package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/swifttrack/backoffice/internal/adapter/store"
	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/usecase"
)

func newHealthFixture(s *store.MemoryStore) *HealthHandler {
	return NewHealthHandler(s, usecase.NewDriverUseCase(s), usecase.NewCustomerUseCase(s))
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newHealthFixture(store.NewMemoryStore())

	if assert.NoError(t, h.Health(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
	}
}

func TestDashboardStats(t *testing.T) {
	s := store.NewMemoryStore()
	s.Seed(document.CollectionDrivers, "d1", document.Document{"firstName": "Amina", "status": "active"})
	s.Seed(document.CollectionDrivers, "d2", document.Document{"firstName": "Joseph", "status": "offline"})
	s.Seed(document.CollectionCustomers, "c1", document.Document{"firstName": "Grace"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newHealthFixture(s)

	if assert.NoError(t, h.DashboardStats(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), `"drivers"`)
		assert.Contains(t, rec.Body.String(), `"customers"`)
	}
}

func TestStoreHealthSamplesCollections(t *testing.T) {
	s := store.NewMemoryStore()
	s.Seed(document.CollectionFAQs, "f1", document.Document{"question": "How do I top up?"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/store/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newHealthFixture(s)

	if assert.NoError(t, h.StoreHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"connected":true`)
		assert.Contains(t, rec.Body.String(), `"f1"`)
	}
}
