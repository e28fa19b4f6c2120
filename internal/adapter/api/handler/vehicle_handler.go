package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swifttrack/backoffice/internal/usecase"
	"github.com/swifttrack/backoffice/pkg/errors"
	"github.com/swifttrack/backoffice/pkg/response"
)

type VehicleHandler struct {
	vehicleUseCase *usecase.VehicleUseCase
}

func NewVehicleHandler(vehicleUseCase *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{vehicleUseCase: vehicleUseCase}
}

func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	return response.Success(c, h.vehicleUseCase.ManagementView(c.Request().Context()))
}

func (h *VehicleHandler) SetApproval(c echo.Context) error {
	var req approvalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if ok := h.vehicleUseCase.SetApproval(c.Request().Context(), c.Param("id"), *req.Approved); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to update vehicle status", nil))
	}
	return response.Success(c, map[string]string{"message": "Vehicle status updated successfully"})
}

func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	if ok := h.vehicleUseCase.DeleteVehicle(c.Request().Context(), c.Param("id")); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to delete vehicle", nil))
	}
	return response.Success(c, map[string]string{"message": "Vehicle deleted successfully"})
}
