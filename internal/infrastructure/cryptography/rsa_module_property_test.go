//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"crypto/rsa"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Key generation is too slow to run per case, so each property shares one key pair.

func TestRSAModule_RoundTripProperty(t *testing.T) {
	for _, padding := range []Padding{PaddingPKCS1v15, PaddingOAEP} {
		t.Run(string(padding), func(t *testing.T) {
			module := setupRSAModule(t, WithPadding(padding))
			kp := generateKeyPair(t, module)
			limit := MaxMessageSize(kp.Public.(*rsa.PublicKey), padding)

			rapid.Check(t, func(rt *rapid.T) {
				message := rapid.SliceOfN(rapid.Byte(), 0, limit).Draw(rt, "message")

				encrypted, err := module.EncryptData(kp.Public, message)
				if err != nil {
					rt.Fatalf("encrypt: %v", err)
				}
				decrypted, err := module.DecryptData(kp.Private, encrypted)
				if err != nil {
					rt.Fatalf("decrypt: %v", err)
				}
				if !bytes.Equal(message, decrypted) {
					rt.Fatalf("round trip mismatch: got %x, want %x", decrypted, message)
				}
			})
		})
	}
}

func TestRSAModule_StoreLoadPreservesDecryptionProperty(t *testing.T) {
	for _, encoding := range []KeyEncoding{EncodingDER, EncodingPEM} {
		t.Run(string(encoding), func(t *testing.T) {
			module := setupRSAModule(t, WithKeyEncoding(encoding))
			kp := generateKeyPair(t, module)
			limit := MaxMessageSize(kp.Public.(*rsa.PublicKey), PaddingPKCS1v15)

			privFile := filepath.Join(t.TempDir(), "private."+encoding.FileExtension())
			require.NoError(t, module.StorePrivateKey(privFile, kp.Private))
			loaded, err := module.LoadPrivateKey(privFile)
			require.NoError(t, err)

			rapid.Check(t, func(rt *rapid.T) {
				message := rapid.SliceOfN(rapid.Byte(), 0, limit).Draw(rt, "message")

				encrypted, err := module.EncryptData(kp.Public, message)
				if err != nil {
					rt.Fatalf("encrypt: %v", err)
				}
				decrypted, err := module.DecryptData(loaded, encrypted)
				if err != nil {
					rt.Fatalf("decrypt with loaded key: %v", err)
				}
				if !bytes.Equal(message, decrypted) {
					rt.Fatalf("round trip mismatch: got %x, want %x", decrypted, message)
				}
			})
		})
	}
}

func TestRSAModule_OversizedMessagesRejectedProperty(t *testing.T) {
	module := setupRSAModule(t)
	kp := generateKeyPair(t, module)
	limit := MaxMessageSize(kp.Public.(*rsa.PublicKey), PaddingPKCS1v15)

	rapid.Check(t, func(rt *rapid.T) {
		message := rapid.SliceOfN(rapid.Byte(), limit+1, 4*limit).Draw(rt, "message")

		if _, err := module.EncryptData(kp.Public, message); err == nil {
			rt.Fatalf("expected %d bytes to be rejected", len(message))
		}
	})
}
