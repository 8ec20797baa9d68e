package cryptography

import (
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"
)

// PEM block types of the two key encodings
const (
	pemTypePublicKey  = "PUBLIC KEY"
	pemTypePrivateKey = "PRIVATE KEY"
)

// File modes of written keys
const (
	publicKeyFileMode  os.FileMode = 0644
	privateKeyFileMode os.FileMode = 0600
)

// writeKeyFile writes der to path, PEM-armoured when requested.
// The parent directory must exist.
func writeKeyFile(path string, der []byte, blockType string, encoding KeyEncoding, perm os.FileMode) (err error) {
	file, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close key file: %w", cerr)
		}
	}()

	if encoding == EncodingPEM {
		if err := pem.Encode(file, &pem.Block{Type: blockType, Bytes: der}); err != nil {
			return fmt.Errorf("failed to encode key file: %w", err)
		}
		return nil
	}

	if _, err := file.Write(der); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

// readKeyFile returns the DER bytes held in path, unwrapping a PEM block when present.
func readKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to read key file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: key file %s is empty", asymmetric.ErrMalformedKey, path)
	}

	if block, _ := pem.Decode(data); block != nil {
		return block.Bytes, nil
	}
	return data, nil
}
