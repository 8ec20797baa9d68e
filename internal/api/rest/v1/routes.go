package v1

import (
	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, keyPairService keys.KeyPairService) {
	v1 := r.Group(BasePath) // lookup in version file

	keyHandler := NewKeyHandler(keyPairService)

	v1.GET("/algorithms", keyHandler.ListAlgorithms)

	// Keys Routes
	v1.POST("/keys", keyHandler.GenerateKeys)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/file", keyHandler.DownloadByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Key Pair Routes
	v1.POST("/key-pairs/:id/encrypt", keyHandler.Encrypt)
	v1.POST("/key-pairs/:id/decrypt", keyHandler.Decrypt)
}
