package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swifttrack/backoffice/internal/usecase"
	"github.com/swifttrack/backoffice/pkg/errors"
	"github.com/swifttrack/backoffice/pkg/response"
)

type OrderHandler struct {
	tripUseCase *usecase.TripUseCase
}

func NewOrderHandler(tripUseCase *usecase.TripUseCase) *OrderHandler {
	return &OrderHandler{tripUseCase: tripUseCase}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	return response.Success(c, h.tripUseCase.OrdersView(c.Request().Context()))
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order := h.tripUseCase.GetTripByID(c.Request().Context(), c.Param("id"))
	if order == nil {
		return response.Error(c, errors.NotFound("Order", nil))
	}
	return response.Success(c, order)
}
