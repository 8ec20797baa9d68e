package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	ListAlgorithms(ctx *gin.Context)
	GenerateKeys(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type keyHandler struct {
	keyPairService keys.KeyPairService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyPairService keys.KeyPairService) KeyHandler {
	return &keyHandler{
		keyPairService: keyPairService,
	}
}

// ListAlgorithms handles the GET request listing the registered algorithms
// @Summary List supported algorithms
// @Tags Key
// @Produce json
// @Success 200 {object} AlgorithmsResponse
// @Router /algorithms [get]
func (handler *keyHandler) ListAlgorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, AlgorithmsResponse{Algorithms: handler.keyPairService.Algorithms()})
}

// GenerateKeys handles the POST request to generate a key pair
// @Summary Generate a key pair and store its metadata
// @Description Generate a key pair for the given algorithm and key size. Returns the public and the private key metadata.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeysRequest true "Key parameters"
// @Success 201 {array} CryptoKeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeysRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid key data: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	cryptoKeyMetas, err := handler.keyPairService.Generate(ctx, request.Algorithm, request.KeySize)
	if err != nil {
		abortWithError(ctx, statusOf(err), fmt.Sprintf("error generating keys: %v", err))
		return
	}

	listResponse := make([]CryptoKeyMetaResponse, 0, len(cryptoKeyMetas))
	for _, cryptoKeyMeta := range cryptoKeyMetas {
		listResponse = append(listResponse, toCryptoKeyMetaResponse(cryptoKeyMeta))
	}

	ctx.JSON(http.StatusCreated, listResponse)
}

// ListMetadata handles the GET request to list key metadata with optional query parameters
// @Summary List key metadata
// @Description Fetch key metadata filtered by key pair, algorithm, type and creation date, with pagination and sorting options.
// @Tags Key
// @Produce json
// @Param keyPairId query string false "Key pair ID"
// @Param algorithm query string false "Algorithm"
// @Param type query string false "Key type"
// @Param dateTimeCreated query string false "Created at or after (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} CryptoKeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewCryptoKeyQuery()

	query.KeyPairID = ctx.Query("keyPairId")
	query.Algorithm = ctx.Query("algorithm")
	query.Type = ctx.Query("type")

	if dateTimeCreated := ctx.Query("dateTimeCreated"); dateTimeCreated != "" {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid dateTimeCreated: %v", err))
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if raw := ctx.Query(name); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil {
				abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid %s: %s", name, raw))
				return
			}
			*target = value
		}
	}

	if sortBy := ctx.Query("sortBy"); sortBy != "" {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); sortOrder != "" {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	cryptoKeyMetas, err := handler.keyPairService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, statusOf(err), fmt.Sprintf("list query failed: %v", err))
		return
	}

	listResponse := make([]CryptoKeyMetaResponse, 0, len(cryptoKeyMetas))
	for _, cryptoKeyMeta := range cryptoKeyMetas {
		listResponse = append(listResponse, toCryptoKeyMetaResponse(cryptoKeyMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve key metadata by ID
// @Summary Retrieve key metadata by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} CryptoKeyMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	cryptoKeyMeta, err := handler.keyPairService.GetByID(ctx, keyID)
	if err != nil {
		abortWithError(ctx, statusOf(err), fmt.Sprintf("could not get key with id %s: %v", keyID, err))
		return
	}

	ctx.JSON(http.StatusOK, toCryptoKeyMetaResponse(cryptoKeyMeta))
}

// DownloadByID handles the GET request to download a public key file by ID
// @Summary Download a public key by ID
// @Description Download the stored public key file, DER or PEM encoded. Private keys are never exported.
// @Tags Key
// @Produce application/x-pem-file
// @Produce application/octet-stream
// @Param id path string true "Key ID"
// @Success 200 {file} file "Public key file"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/file [get]
func (handler *keyHandler) DownloadByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	keyMeta, err := handler.keyPairService.GetByID(ctx, keyID)
	if err != nil {
		abortWithError(ctx, statusOf(err), fmt.Sprintf("could not get key with id %s: %v", keyID, err))
		return
	}

	content, err := handler.keyPairService.ReadKeyFile(ctx, keyID)
	if err != nil {
		abortWithError(ctx, statusOf(err), fmt.Sprintf("could not download key with id %s: %v", keyID, err))
		return
	}

	contentType := "application/octet-stream"
	if keyMeta.Encoding == config.KeyEncodingPEM {
		contentType = "application/x-pem-file"
	}

	filename := fmt.Sprintf("%s-%s.%s", keyID, keyMeta.Type, keyMeta.Encoding)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, contentType, content)
}

// DeleteByID handles the DELETE request to delete a key by ID
// @Summary Delete a key by ID
// @Description Delete the key file and its metadata.
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keyPairService.DeleteByID(ctx, keyID); err != nil {
		abortWithError(ctx, statusOf(err), fmt.Sprintf("error deleting key with id %s: %v", keyID, err))
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted key with id %s", keyID)})
}
