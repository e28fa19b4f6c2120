package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/usecase"
	"github.com/swifttrack/backoffice/pkg/errors"
	"github.com/swifttrack/backoffice/pkg/response"
)

type DriverHandler struct {
	driverUseCase *usecase.DriverUseCase
	ratingUseCase *usecase.RatingUseCase
}

func NewDriverHandler(driverUseCase *usecase.DriverUseCase, ratingUseCase *usecase.RatingUseCase) *DriverHandler {
	return &DriverHandler{
		driverUseCase: driverUseCase,
		ratingUseCase: ratingUseCase,
	}
}

func (h *DriverHandler) ListDrivers(c echo.Context) error {
	ctx := c.Request().Context()
	drivers := h.driverUseCase.GetAllDrivers(ctx)

	return response.Success(c, map[string]interface{}{
		"drivers": drivers,
		"count":   len(drivers),
		"stats":   h.driverUseCase.OnlineStats(ctx),
	})
}

func (h *DriverHandler) CreateDriver(c echo.Context) error {
	var data document.Document
	if err := c.Bind(&data); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if len(data) == 0 {
		return response.Error(c, errors.BadRequest("Driver data is required", nil))
	}

	id, ok := h.driverUseCase.CreateDriver(c.Request().Context(), data)
	if !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to create driver", nil))
	}
	return response.Created(c, map[string]string{"driver_id": id})
}

func (h *DriverHandler) GetDriver(c echo.Context) error {
	driver := h.driverUseCase.GetDriverByID(c.Request().Context(), c.Param("id"))
	if driver == nil {
		return response.Error(c, errors.NotFound("Driver", nil))
	}
	return response.Success(c, driver)
}

func (h *DriverHandler) GetDriverDetail(c echo.Context) error {
	detail := h.driverUseCase.Detail(c.Request().Context(), c.Param("id"))
	if detail == nil {
		return response.Error(c, errors.NotFound("Driver", nil))
	}
	return response.Success(c, detail)
}

func (h *DriverHandler) UpdateDriver(c echo.Context) error {
	var data document.Document
	if err := c.Bind(&data); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if ok := h.driverUseCase.UpdateDriver(c.Request().Context(), c.Param("id"), data); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to update driver", nil))
	}
	return response.Success(c, map[string]string{"message": "Driver updated successfully"})
}

type approvalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

func (h *DriverHandler) SetApproval(c echo.Context) error {
	var req approvalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if ok := h.driverUseCase.SetApproval(c.Request().Context(), c.Param("id"), *req.Approved); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to update driver status", nil))
	}
	return response.Success(c, map[string]string{"message": "Driver status updated successfully"})
}

func (h *DriverHandler) DeleteDriver(c echo.Context) error {
	if ok := h.driverUseCase.DeleteDriver(c.Request().Context(), c.Param("id")); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to delete driver", nil))
	}
	return response.Success(c, map[string]string{"message": "Driver deleted successfully"})
}

func (h *DriverHandler) GetDriverRatings(c echo.Context) error {
	return response.Success(c, h.ratingUseCase.DriverRatings(c.Request().Context(), c.Param("id")))
}

func (h *DriverHandler) GetDriverEarnings(c echo.Context) error {
	return response.Success(c, h.driverUseCase.Earnings(c.Request().Context(), c.Param("id")))
}

func (h *DriverHandler) GetDriverLiveStatus(c echo.Context) error {
	return response.Success(c, h.driverUseCase.LiveStatus(c.Request().Context(), c.Param("id")))
}
