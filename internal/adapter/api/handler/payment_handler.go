package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
	"github.com/swifttrack/backoffice/internal/usecase"
	"github.com/swifttrack/backoffice/pkg/errors"
	"github.com/swifttrack/backoffice/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{paymentUseCase: paymentUseCase}
}

func (h *PaymentHandler) ListPaymentModes(c echo.Context) error {
	return response.Success(c, h.paymentUseCase.GetAllPaymentModes(c.Request().Context()))
}

type paymentModeRequest struct {
	Name     string `json:"name" validate:"required"`
	IsActive bool   `json:"isActive"`
}

func (h *PaymentHandler) CreatePaymentMode(c echo.Context) error {
	var req paymentModeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	id, ok := h.paymentUseCase.CreatePaymentMode(c.Request().Context(), document.Document{
		entity.PaymentModeFieldName:     req.Name,
		entity.PaymentModeFieldIsActive: req.IsActive,
	})
	if !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to create payment mode", nil))
	}
	return response.Created(c, map[string]string{"payment_mode_id": id})
}

func (h *PaymentHandler) UpdatePaymentMode(c echo.Context) error {
	var data document.Document
	if err := c.Bind(&data); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if ok := h.paymentUseCase.UpdatePaymentMode(c.Request().Context(), c.Param("id"), data); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to update payment mode", nil))
	}
	return response.Success(c, map[string]string{"message": "Payment mode updated successfully"})
}

func (h *PaymentHandler) DeletePaymentMode(c echo.Context) error {
	if ok := h.paymentUseCase.DeletePaymentMode(c.Request().Context(), c.Param("id")); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to delete payment mode", nil))
	}
	return response.Success(c, map[string]string{"message": "Payment mode deleted successfully"})
}

func (h *PaymentHandler) ListPaymentSettings(c echo.Context) error {
	return response.Success(c, h.paymentUseCase.GetAllPaymentSettings(c.Request().Context()))
}

type paymentSettingRequest struct {
	VehicleTypeID string  `json:"vehicleTypeId" validate:"required"`
	PricePerKm    float64 `json:"pricePerKm" validate:"min=0"`
	AddOnFee      float64 `json:"addOnFee" validate:"min=0"`
}

func (h *PaymentHandler) CreatePaymentSetting(c echo.Context) error {
	var req paymentSettingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	id, ok := h.paymentUseCase.CreatePaymentSetting(c.Request().Context(), document.Document{
		entity.PaymentSettingFieldVehicleTypeID: req.VehicleTypeID,
		entity.PaymentSettingFieldPricePerKm:    req.PricePerKm,
		entity.PaymentSettingFieldAddOnFee:      req.AddOnFee,
	})
	if !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to create payment setting", nil))
	}
	return response.Created(c, map[string]string{"payment_setting_id": id})
}

func (h *PaymentHandler) UpdatePaymentSetting(c echo.Context) error {
	var data document.Document
	if err := c.Bind(&data); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if ok := h.paymentUseCase.UpdatePaymentSetting(c.Request().Context(), c.Param("id"), data); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to update payment setting", nil))
	}
	return response.Success(c, map[string]string{"message": "Payment setting updated successfully"})
}

func (h *PaymentHandler) DeletePaymentSetting(c echo.Context) error {
	if ok := h.paymentUseCase.DeletePaymentSetting(c.Request().Context(), c.Param("id")); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to delete payment setting", nil))
	}
	return response.Success(c, map[string]string{"message": "Payment setting deleted successfully"})
}

func (h *PaymentHandler) ListVehicleTypes(c echo.Context) error {
	return response.Success(c, h.paymentUseCase.GetAllVehicleTypes(c.Request().Context()))
}
