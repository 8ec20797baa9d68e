package config

import (
	"fmt"

	"github.com/MGTheTrain/crypto-utils/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Key file encodings
const (
	KeyEncodingDER = "der"
	KeyEncodingPEM = "pem"
)

// Block paddings
const (
	PaddingPKCS1v15 = "pkcs1v15"
	PaddingOAEP     = "oaep"
)

// CryptoSettings holds the defaults applied to key generation, key files and encryption
type CryptoSettings struct {
	Algorithm   string `yaml:"algorithm" validate:"required"`
	KeySize     uint32 `yaml:"key_size" validate:"required,keysize"`
	KeyDir      string `yaml:"key_dir" validate:"required"`
	KeyEncoding string `yaml:"key_encoding" validate:"required,oneof=der pem"`
	Padding     string `yaml:"padding" validate:"required,oneof=pkcs1v15 oaep"`
}

// DefaultCryptoSettings returns the settings used when no configuration file overrides them
func DefaultCryptoSettings() CryptoSettings {
	return CryptoSettings{
		Algorithm:   "RSA",
		KeySize:     2048,
		KeyDir:      "keys",
		KeyEncoding: KeyEncodingDER,
		Padding:     PaddingPKCS1v15,
	}
}

// Validate checks that all fields in CryptoSettings are valid
func (s *CryptoSettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register keysize validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CryptoSettings: %w", err)
	}
	return nil
}
