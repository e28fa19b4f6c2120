package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/usecase"
	"github.com/swifttrack/backoffice/pkg/response"
)

type HealthHandler struct {
	store           document.Store
	driverUseCase   *usecase.DriverUseCase
	customerUseCase *usecase.CustomerUseCase
}

func NewHealthHandler(store document.Store, driverUseCase *usecase.DriverUseCase, customerUseCase *usecase.CustomerUseCase) *HealthHandler {
	return &HealthHandler{
		store:           store,
		driverUseCase:   driverUseCase,
		customerUseCase: customerUseCase,
	}
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) DashboardStats(c echo.Context) error {
	ctx := c.Request().Context()
	return response.Success(c, map[string]interface{}{
		"drivers":   h.driverUseCase.Stats(ctx),
		"customers": h.customerUseCase.Stats(ctx),
	})
}

type collectionProbe struct {
	DocumentCount int      `json:"document_count"`
	SampleIDs     []string `json:"sample_ids"`
	Error         string   `json:"error,omitempty"`
}

// StoreHealth samples each known collection so operators can confirm the
// store connection and spot renamed collections quickly.
func (h *HealthHandler) StoreHealth(c echo.Context) error {
	ctx := c.Request().Context()

	probes := make(map[string]collectionProbe, len(document.Collections))
	connected := false
	for _, collection := range document.Collections {
		records, err := h.store.Query(ctx, collection, nil, nil, nil, 5)
		if err != nil {
			probes[collection] = collectionProbe{Error: err.Error()}
			continue
		}
		connected = true

		probe := collectionProbe{DocumentCount: len(records), SampleIDs: []string{}}
		for _, rec := range records {
			probe.SampleIDs = append(probe.SampleIDs, rec.ID)
		}
		probes[collection] = probe
	}

	return response.Success(c, map[string]interface{}{
		"connected":   connected,
		"collections": probes,
	})
}
