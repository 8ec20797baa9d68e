package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/crypto-utils/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// CryptoKeyMeta describes one key file of a generated key pair
type CryptoKeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required"`
	KeySize         uint32    `validate:"required,keysize"`
	Type            string    `validate:"required,oneof=public private"`
	Encoding        string    `validate:"required,oneof=der pem"`
	FilePath        string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating CryptoKeyMeta struct
func (k *CryptoKeyMeta) Validate() error {
	return validateStruct(k)
}

// CryptoKeyQuery filters, sorts and pages key metadata
type CryptoKeyQuery struct {
	KeyPairID       string    `validate:"omitempty,uuid4"`
	Algorithm       string    `validate:"omitempty"`
	Type            string    `validate:"omitempty,oneof=public private"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit     int    `validate:"omitempty,gt=0"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=id key_pair_id algorithm key_size type date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewCryptoKeyQuery creates a CryptoKeyQuery with default values.
func NewCryptoKeyQuery() *CryptoKeyQuery {
	return &CryptoKeyQuery{
		Limit:     10,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating CryptoKeyQuery struct
func (q *CryptoKeyQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(s interface{}) error {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register keysize validation: %w", err)
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrInvalidMetadata, messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
