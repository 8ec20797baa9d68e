package cryptography

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"
)

// KeyEncoding selects how key files are written. Loading accepts either form.
type KeyEncoding string

const (
	// EncodingDER writes the raw ASN.1 DER bytes.
	EncodingDER KeyEncoding = "der"
	// EncodingPEM wraps the DER bytes in a PEM block.
	EncodingPEM KeyEncoding = "pem"
)

// FileExtension returns the extension used for key files of this encoding.
func (e KeyEncoding) FileExtension() string {
	return string(e)
}

// ParseKeyEncoding converts a configuration value into a KeyEncoding.
func ParseKeyEncoding(s string) (KeyEncoding, error) {
	switch e := KeyEncoding(strings.ToLower(strings.TrimSpace(s))); e {
	case EncodingDER, EncodingPEM:
		return e, nil
	default:
		return "", fmt.Errorf("unsupported key encoding: %q", s)
	}
}

// Padding selects the RSA encryption padding. Both are provided by crypto/rsa.
type Padding string

const (
	// PaddingPKCS1v15 is RSAES-PKCS1-v1_5.
	PaddingPKCS1v15 Padding = "pkcs1v15"
	// PaddingOAEP is RSAES-OAEP with SHA-256 and an empty label.
	PaddingOAEP Padding = "oaep"
)

// ParsePadding converts a configuration value into a Padding.
func ParsePadding(s string) (Padding, error) {
	switch p := Padding(strings.ToLower(strings.TrimSpace(s))); p {
	case PaddingPKCS1v15, PaddingOAEP:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported padding: %q", s)
	}
}

// Option configures an encryption module.
type Option func(*moduleOptions)

type moduleOptions struct {
	encoding KeyEncoding
	padding  Padding
}

func defaultOptions() moduleOptions {
	return moduleOptions{
		encoding: EncodingDER,
		padding:  PaddingPKCS1v15,
	}
}

// WithKeyEncoding sets the encoding of written key files.
func WithKeyEncoding(encoding KeyEncoding) Option {
	return func(o *moduleOptions) {
		o.encoding = encoding
	}
}

// WithPadding sets the encryption padding.
func WithPadding(padding Padding) Option {
	return func(o *moduleOptions) {
		o.padding = padding
	}
}

// normalize validates the options and replaces them with their canonical form.
func (o *moduleOptions) normalize() error {
	encoding, err := ParseKeyEncoding(string(o.encoding))
	if err != nil {
		return err
	}
	padding, err := ParsePadding(string(o.padding))
	if err != nil {
		return err
	}
	o.encoding, o.padding = encoding, padding
	return nil
}

// OptionsFromSettings translates the crypto settings of a configuration file into module options.
func OptionsFromSettings(settings config.CryptoSettings) ([]Option, error) {
	encoding, err := ParseKeyEncoding(settings.KeyEncoding)
	if err != nil {
		return nil, err
	}
	padding, err := ParsePadding(settings.Padding)
	if err != nil {
		return nil, err
	}
	return []Option{WithKeyEncoding(encoding), WithPadding(padding)}, nil
}
