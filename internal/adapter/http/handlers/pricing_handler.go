package handlers

import (
	"errors"
	request "pestpro_ops/internal/adapter/http/dto/request"
	response "pestpro_ops/internal/adapter/http/dto/response"
	"pestpro_ops/internal/usecase"
	"pestpro_ops/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)

// PricingHandler handles HTTP requests for the pricing calculator and
// persisted quotes.
//
// A degenerate acreage is not an HTTP error: the engine answers with a
// custom-quote result and the caller branches on is_custom.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// CreateQuote computes live pricing and persists a quote snapshot when the
// request carries a lead id.
func (h *PricingHandler) CreateQuote(c *gin.Context) {
	var payload request.PricingQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Quote(c.Request.Context(), payload.ToQuery(), payload.LeadID, payload.ZIP)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuoteByID fetches a persisted quote by its id.
func (h *PricingHandler) GetQuoteByID(c *gin.Context) {
	quote, err := h.usecase.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListQuotesByLead lists every quote a lead has generated.
func (h *PricingHandler) ListQuotesByLead(c *gin.Context) {
	quotes, err := h.usecase.ListQuotesByLeadID(c.Request.Context(), c.Query("lead_id"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := make([]response.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		res = append(res, response.FromQuote(q))
	}
	c.JSON(http.StatusOK, res)
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidFrequency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
