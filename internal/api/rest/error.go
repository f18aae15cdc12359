package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jack28cas/zeroshade/internal/api/shared/dto"
	apierrors "github.com/Jack28cas/zeroshade/internal/api/shared/errors"
	"github.com/Jack28cas/zeroshade/internal/logger"
)

// respondWithError sends an error response. Server-side failures are logged
// with their details, which never reach the client.
func respondWithError(c *gin.Context, err error) {
	apiErr := apierrors.AsAPIError(err)

	if apiErr.Status >= 500 {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("code", string(apiErr.Code)),
			zap.String("path", c.Request.URL.Path),
		)
	}

	c.JSON(apiErr.Status, dto.ErrorResponse{Error: apiErr.Message})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, apierrors.NewBadRequestError(message))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, apierrors.NewNotFoundError(message))
}
