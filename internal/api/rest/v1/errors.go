package v1

import (
	"crypto/rsa"
	"errors"
	"net/http"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"
	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// statusOf maps a service error to the HTTP status reported to the client
func statusOf(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, keys.ErrPrivateKeyExport):
		return http.StatusForbidden
	case errors.Is(err, keys.ErrInvalidMetadata),
		errors.Is(err, asymmetric.ErrUnsupportedAlgorithm),
		errors.Is(err, asymmetric.ErrInvalidKeyLength),
		errors.Is(err, asymmetric.ErrDataTooLong),
		errors.Is(err, rsa.ErrDecryption):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
