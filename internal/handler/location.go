package handler

import (
	"context"

	"agroclimate-api/internal/apperror"
	"agroclimate-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationClimateService is implemented by service.LocationClimateService.
type LocationClimateService interface {
	Climate(context.Context, models.LocationQuery) (models.Answer[models.LocationResult], error)
}

// LocationHandler handles location climate requests
type LocationHandler struct {
	service LocationClimateService
}

// NewLocationHandler creates a new location climate handler
func NewLocationHandler(svc LocationClimateService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// Location handles POST /api/location requests
//
//	@Summary		Monthly climate of an address
//	@Description	Geocodes the address, then asks the model for 12 monthly temperatures and rainfall totals.
//	@Tags			location
//	@Accept			json
//	@Produce		json
//	@Param			input	body		models.LocationQuery	true	"Free-text address"
//	@Success		200		{object}	models.LocationResult
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/location [post]
func (h *LocationHandler) Location(c *gin.Context) {
	body := bindObject(c)

	address, ok := body["address"].(string)
	if !ok {
		respondError(c, apperror.NewValidationError("Missing or invalid 'address' in body."))
		return
	}

	answer, err := h.service.Climate(c.Request.Context(), models.LocationQuery{Address: address})
	if err != nil {
		respondError(c, err)
		return
	}

	respondAnswer(c, answer)
}
