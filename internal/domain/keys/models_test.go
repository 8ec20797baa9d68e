//go:build unit
// +build unit

package keys

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validMeta() *CryptoKeyMeta {
	return &CryptoKeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       uuid.NewString(),
		Algorithm:       "RSA",
		KeySize:         2048,
		Type:            "public",
		Encoding:        "der",
		FilePath:        "keys/pair-public.der",
		DateTimeCreated: time.Now(),
	}
}

func TestCryptoKeyMeta_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *CryptoKeyMeta)
		wantErr bool
	}{
		{"valid", func(m *CryptoKeyMeta) {}, false},
		{"private pem", func(m *CryptoKeyMeta) { m.Type = "private"; m.Encoding = "pem" }, false},
		{"missing id", func(m *CryptoKeyMeta) { m.ID = "" }, true},
		{"id not a uuid", func(m *CryptoKeyMeta) { m.ID = "abc-123" }, true},
		{"unsupported key size", func(m *CryptoKeyMeta) { m.KeySize = 512 }, true},
		{"unknown algorithm", func(m *CryptoKeyMeta) { m.Algorithm = "AES" }, true},
		{"symmetric type", func(m *CryptoKeyMeta) { m.Type = "symmetric" }, true},
		{"unknown encoding", func(m *CryptoKeyMeta) { m.Encoding = "jwk" }, true},
		{"missing path", func(m *CryptoKeyMeta) { m.FilePath = "" }, true},
		{"zero timestamp", func(m *CryptoKeyMeta) { m.DateTimeCreated = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMeta()
			tt.mutate(m)

			err := m.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMetadata)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCryptoKeyQuery_Validate(t *testing.T) {
	assert.NoError(t, NewCryptoKeyQuery().Validate())
	assert.NoError(t, (&CryptoKeyQuery{}).Validate())

	tests := []struct {
		name  string
		query *CryptoKeyQuery
	}{
		{"negative limit", &CryptoKeyQuery{Limit: -1}},
		{"negative offset", &CryptoKeyQuery{Offset: -5}},
		{"unknown sort column", &CryptoKeyQuery{SortBy: "file_path; drop table crypto_keys"}},
		{"unknown sort order", &CryptoKeyQuery{SortOrder: "sideways"}},
		{"bad key pair id", &CryptoKeyQuery{KeyPairID: "pair-1"}},
		{"bad type", &CryptoKeyQuery{Type: "symmetric"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.query.Validate(), ErrInvalidMetadata)
		})
	}
}
