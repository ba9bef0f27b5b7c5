package handler

import (
	"context"

	"agroclimate-api/internal/apperror"
	"agroclimate-api/internal/models"

	"github.com/gin-gonic/gin"
)

// CropCalendarService is implemented by service.CropCalendarService.
type CropCalendarService interface {
	Calendar(context.Context, models.CropQuery) (models.Answer[models.CropResult], error)
}

// CropHandler handles crop calendar requests
type CropHandler struct {
	service CropCalendarService
}

// NewCropHandler creates a new crop calendar handler
func NewCropHandler(svc CropCalendarService) *CropHandler {
	return &CropHandler{service: svc}
}

// Culture handles POST /api/culture requests
//
//	@Summary		Crop calendar
//	@Description	Typical sowing date, end of season and color of a crop, estimated by the model.
//	@Tags			culture
//	@Accept			json
//	@Produce		json
//	@Param			input	body		models.CropQuery	true	"Crop and optional region"
//	@Success		200		{object}	models.CropResult
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/culture [post]
func (h *CropHandler) Culture(c *gin.Context) {
	body := bindObject(c)

	culture, ok := body["culture"].(string)
	if !ok {
		respondError(c, apperror.NewValidationError("Missing or invalid 'culture' in body."))
		return
	}
	region, _ := body["region"].(string)

	answer, err := h.service.Calendar(c.Request.Context(), models.CropQuery{Culture: culture, Region: region})
	if err != nil {
		respondError(c, err)
		return
	}

	respondAnswer(c, answer)
}
