package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swifttrack/backoffice/internal/usecase"
	"github.com/swifttrack/backoffice/pkg/errors"
	"github.com/swifttrack/backoffice/pkg/response"
)

type FAQHandler struct {
	faqUseCase *usecase.FAQUseCase
}

func NewFAQHandler(faqUseCase *usecase.FAQUseCase) *FAQHandler {
	return &FAQHandler{faqUseCase: faqUseCase}
}

type faqRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

func (h *FAQHandler) ListFAQs(c echo.Context) error {
	return response.Success(c, h.faqUseCase.GetAllFAQs(c.Request().Context()))
}

func (h *FAQHandler) GetFAQ(c echo.Context) error {
	faq := h.faqUseCase.GetFAQByID(c.Request().Context(), c.Param("id"))
	if faq == nil {
		return response.Error(c, errors.NotFound("FAQ", nil))
	}
	return response.Success(c, faq)
}

func (h *FAQHandler) CreateFAQ(c echo.Context) error {
	var req faqRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	id, ok := h.faqUseCase.CreateFAQ(c.Request().Context(), req.Question, req.Answer)
	if !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to create FAQ", nil))
	}
	return response.Created(c, map[string]string{"faq_id": id})
}

func (h *FAQHandler) UpdateFAQ(c echo.Context) error {
	var req faqRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if ok := h.faqUseCase.UpdateFAQ(c.Request().Context(), c.Param("id"), req.Question, req.Answer); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to update FAQ", nil))
	}
	return response.Success(c, map[string]string{"message": "FAQ updated successfully"})
}

func (h *FAQHandler) DeleteFAQ(c echo.Context) error {
	if ok := h.faqUseCase.DeleteFAQ(c.Request().Context(), c.Param("id")); !ok {
		return response.Error(c, errors.StoreUnavailable("Failed to delete FAQ", nil))
	}
	return response.Success(c, map[string]string{"message": "FAQ deleted successfully"})
}
