package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/usecase"
	"github.com/swifttrack/backoffice/pkg/errors"
	"github.com/swifttrack/backoffice/pkg/response"
)

type CustomerHandler struct {
	customerUseCase *usecase.CustomerUseCase
}

func NewCustomerHandler(customerUseCase *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{customerUseCase: customerUseCase}
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers := h.customerUseCase.GetAllCustomers(c.Request().Context())
	return response.Success(c, map[string]interface{}{
		"customers": customers,
		"count":     len(customers),
	})
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var data document.Document
	if err := c.Bind(&data); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if len(data) == 0 {
		return response.Error(c, errors.BadRequest("Customer data is required", nil))
	}

	id, ok := h.customerUseCase.CreateCustomer(c.Request().Context(), data)
	if !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to create customer", nil))
	}
	return response.Created(c, map[string]string{"customer_id": id})
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customer := h.customerUseCase.GetCustomerByID(c.Request().Context(), c.Param("id"))
	if customer == nil {
		return response.Error(c, errors.NotFound("Customer", nil))
	}
	return response.Success(c, customer)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	var data document.Document
	if err := c.Bind(&data); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if ok := h.customerUseCase.UpdateCustomer(c.Request().Context(), c.Param("id"), data); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to update customer", nil))
	}
	return response.Success(c, map[string]string{"message": "Customer updated successfully"})
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	if ok := h.customerUseCase.DeleteCustomer(c.Request().Context(), c.Param("id")); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to delete customer", nil))
	}
	return response.Success(c, map[string]string{"message": "Customer deleted successfully"})
}

func (h *CustomerHandler) GetCustomerLiveStatus(c echo.Context) error {
	return response.Success(c, h.customerUseCase.LiveStatus(c.Request().Context(), c.Param("id")))
}
