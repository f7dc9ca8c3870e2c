package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"jadlog-rates/internal/core/logger"
	"jadlog-rates/internal/features/quotes/domain"
	"jadlog-rates/internal/features/quotes/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuoteHandler handles HTTP requests for shipping quote calculation.
type QuoteHandler struct {
	service *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(s *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: s,
	}
}

// CalculateRequest is the calculate-shipping request body: the storefront
// params plus the application data blocks holding the merchant settings.
type CalculateRequest struct {
	Params      domain.QuoteParams `json:"params"`
	Application struct {
		Data       json.RawMessage `json:"data,omitempty"`
		HiddenData json.RawMessage `json:"hidden_data,omitempty"`
	} `json:"application"`
}

// ErrorResponse is the structured error payload with the module error code.
type ErrorResponse struct {
	// Error is the stable CALCULATE_* error code.
	Error string `json:"error"`
	// Message describes the failure.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CalculateShipping godoc
// @Summary Calculate shipping options
// @Description Quotes the available Jadlog services for a cart, applying the merchant shipping rules.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Cart params and merchant application data"
// @Success 200 {object} domain.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /calculate-shipping [post]
func (h *QuoteHandler) CalculateShipping(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	var req CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "PARSE_ERR",
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	cfg, err := domain.MergeMerchantConfig(req.Application.Data, req.Application.HiddenData)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "PARSE_ERR",
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	response, err := h.service.CalculateShipping(c.Context(), &req.Params, cfg)
	if err != nil {
		var calcErr *domain.CalcError
		if errors.As(err, &calcErr) {
			return c.Status(statusFor(calcErr.Code)).JSON(ErrorResponse{
				Error:   calcErr.Code,
				Message: calcErr.Message,
				RayID:   rayID,
			})
		}

		logger.Get().Error("Failed to calculate shipping",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "INTERNAL_ERR",
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	return c.JSON(response)
}

// statusFor maps a quote error code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case domain.CodeEmptyCart, domain.CodeInvalidZip:
		return http.StatusBadRequest
	}
	return http.StatusConflict
}
