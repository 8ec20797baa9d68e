package v1

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Encrypt handles the POST request to encrypt one block with a key pair's public key
// @Summary Encrypt data with a key pair
// @Tags KeyPair
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body DataRequest true "Base64 encoded clear text"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /key-pairs/{id}/encrypt [post]
func (handler *keyHandler) Encrypt(ctx *gin.Context) {
	handler.transform(ctx, "encrypt", handler.keyPairService.Encrypt)
}

// Decrypt handles the POST request to decrypt one block with a key pair's private key
// @Summary Decrypt data with a key pair
// @Tags KeyPair
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body DataRequest true "Base64 encoded cipher text"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /key-pairs/{id}/decrypt [post]
func (handler *keyHandler) Decrypt(ctx *gin.Context) {
	handler.transform(ctx, "decrypt", handler.keyPairService.Decrypt)
}

type dataOperation func(ctx context.Context, keyPairID string, data []byte) ([]byte, error)

func (handler *keyHandler) transform(ctx *gin.Context, name string, operation dataOperation) {
	keyPairID := ctx.Param("id")

	var request DataRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	data, err := base64.StdEncoding.DecodeString(request.Data)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid base64 data: %v", err))
		return
	}

	result, err := operation(ctx, keyPairID, data)
	if err != nil {
		abortWithError(ctx, statusOf(err), fmt.Sprintf("failed to %s with key pair %s: %v", name, keyPairID, err))
		return
	}

	ctx.JSON(http.StatusOK, DataResponse{Data: base64.StdEncoding.EncodeToString(result)})
}
