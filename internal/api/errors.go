package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"seo_tracker/internal/domain"
)

const (
	msgWebsiteNotFound = "Website not found"
	msgWebsiteExists   = "Website already exists"
	msgInternal        = "Internal server error"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors to status codes. Provider messages are
// passed through to the client, anything unexpected is hidden behind a
// generic message and attached to the context for the request log.
func respondError(c *gin.Context, err error) {
	var (
		verr *domain.ValidationError
		perr *domain.ProviderError
	)

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, errorResponse{Error: verr.Message})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgWebsiteExists})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: msgWebsiteNotFound})
	case errors.As(err, &perr):
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: perr.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: msgInternal})
	}
}
