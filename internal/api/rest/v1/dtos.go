package v1

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// GenerateKeysRequest is the body of a key pair generation request
type GenerateKeysRequest struct {
	Algorithm string `json:"algorithm" validate:"required"`
	KeySize   uint32 `json:"key_size" validate:"required,keysize"`
}

// Validate checks the algorithm and key size combination
func (r *GenerateKeysRequest) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register keysize validation: %w", err)
	}

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid key request: %w", err)
	}
	return nil
}

// DataRequest carries base64 encoded data to encrypt or decrypt.
// An empty Data is the empty message.
type DataRequest struct {
	Data string `json:"data" validate:"omitempty,base64"`
}

// Validate checks that Data is base64 encoded
func (r *DataRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("invalid data request: %w", err)
	}
	return nil
}

// DataResponse carries base64 encoded encryption or decryption output
type DataResponse struct {
	Data string `json:"data"`
}

// AlgorithmsResponse lists the algorithms keys can be generated for
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

// CryptoKeyMetaResponse is the API view of stored key metadata
type CryptoKeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	Algorithm       string    `json:"algorithm"`
	KeySize         uint32    `json:"key_size"`
	Type            string    `json:"type"`
	Encoding        string    `json:"encoding"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

func toCryptoKeyMetaResponse(meta *keys.CryptoKeyMeta) CryptoKeyMetaResponse {
	return CryptoKeyMetaResponse{
		ID:              meta.ID,
		KeyPairID:       meta.KeyPairID,
		Algorithm:       meta.Algorithm,
		KeySize:         meta.KeySize,
		Type:            meta.Type,
		Encoding:        meta.Encoding,
		DateTimeCreated: meta.DateTimeCreated,
	}
}
