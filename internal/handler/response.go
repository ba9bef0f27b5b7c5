package handler

import (
	"errors"
	"net/http"

	"agroclimate-api/internal/apperror"
	"agroclimate-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
	Raw    any    `json:"raw,omitempty"`
}

// respondAnswer writes the normalized value, or the raw text with a warning
// when the model output held no JSON object.
func respondAnswer[T any](c *gin.Context, answer models.Answer[T]) {
	if !answer.Parsed {
		c.JSON(http.StatusOK, models.ExtractionWarning{
			Warning: models.ExtractionWarningMessage,
			Raw:     answer.Raw,
		})
		return
	}
	c.JSON(http.StatusOK, answer.Value)
}

// respondError maps err to 400, 502 or 500.
func respondError(c *gin.Context, err error) {
	logger := zerolog.Ctx(c.Request.Context())

	var validation *apperror.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validation.Message})
		return
	}

	if upstream, ok := apperror.AsUpstream(err); ok {
		logger.Warn().Err(err).Str("service", upstream.Service).Int("status", upstream.Status).Msg("upstream call failed")
		detail := upstream.Detail
		if detail == "" && upstream.Err != nil {
			detail = upstream.Err.Error()
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:  upstream.Message,
			Detail: detail,
			Raw:    upstream.Raw,
		})
		return
	}

	logger.Error().Err(err).Msg("request failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "server_error", Detail: err.Error()})
}

// bindObject decodes the request body as a JSON object. A missing or
// non-object body decodes to an empty object so field checks report it.
func bindObject(c *gin.Context) map[string]any {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		return map[string]any{}
	}
	return body
}
