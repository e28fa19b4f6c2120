package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swifttrack/backoffice/internal/usecase"
	"github.com/swifttrack/backoffice/pkg/response"
)

type MailingHandler struct {
	mailingUseCase *usecase.MailingUseCase
}

func NewMailingHandler(mailingUseCase *usecase.MailingUseCase) *MailingHandler {
	return &MailingHandler{mailingUseCase: mailingUseCase}
}

type mailingRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (h *MailingHandler) MailCustomers(c echo.Context) error {
	var req mailingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.mailingUseCase.MailCustomers(c.Request().Context(), req.Subject, req.Message))
}

func (h *MailingHandler) MailDrivers(c echo.Context) error {
	var req mailingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, h.mailingUseCase.MailDrivers(c.Request().Context(), req.Subject, req.Message))
}
