//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uintKeyRequest struct {
	Algorithm string
	KeySize   uint32 `validate:"keysize"`
}

type intKeyRequest struct {
	Algorithm string
	KeySize   int `validate:"keysize"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("keysize", KeySizeValidation))
	return v
}

func TestKeySizeValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name      string
		algorithm string
		keySize   uint32
		valid     bool
	}{
		{"rsa 1024", "RSA", 1024, true},
		{"rsa 2048", "RSA", 2048, true},
		{"rsa 3072", "RSA", 3072, true},
		{"rsa 4096", "RSA", 4096, true},
		{"lower case algorithm", "rsa", 2048, true},
		{"rsa 512", "RSA", 512, false},
		{"rsa 256", "RSA", 256, false},
		{"rsa odd size", "RSA", 2000, false},
		{"unknown algorithm", "ElGamal", 2048, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(uintKeyRequest{Algorithm: tt.algorithm, KeySize: tt.keySize})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestKeySizeValidation_SignedField(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(intKeyRequest{Algorithm: "RSA", KeySize: 2048}))
	assert.Error(t, v.Struct(intKeyRequest{Algorithm: "RSA", KeySize: -2048}))
}
