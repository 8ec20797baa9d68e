package keys

import (
	"context"
)

// KeyPairService manages generated key pairs and encrypts with them by id.
type KeyPairService interface {
	// Algorithms returns the names of the algorithms keys can be generated for.
	Algorithms() []string

	// Generate creates a key pair, stores both key files and records their metadata.
	// It returns the metadata of the public and the private key, in that order.
	Generate(ctx context.Context, algorithm string, keySize uint32) ([]*CryptoKeyMeta, error)

	// List retrieves key metadata matching the query.
	List(ctx context.Context, query *CryptoKeyQuery) ([]*CryptoKeyMeta, error)

	// GetByID retrieves the metadata of a single key.
	GetByID(ctx context.Context, keyID string) (*CryptoKeyMeta, error)

	// ReadKeyFile returns the stored file content of a public key.
	// Private keys fail with ErrPrivateKeyExport.
	ReadKeyFile(ctx context.Context, keyID string) ([]byte, error)

	// DeleteByID deletes a key file and its metadata.
	DeleteByID(ctx context.Context, keyID string) error

	// Encrypt encrypts one block with the public key of the key pair.
	Encrypt(ctx context.Context, keyPairID string, data []byte) ([]byte, error)

	// Decrypt decrypts one block with the private key of the key pair.
	Decrypt(ctx context.Context, keyPairID string, data []byte) ([]byte, error)
}

// CryptoKeyRepository defines the interface for CryptoKeyMeta persistence
type CryptoKeyRepository interface {
	Create(ctx context.Context, key *CryptoKeyMeta) error
	List(ctx context.Context, query *CryptoKeyQuery) ([]*CryptoKeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*CryptoKeyMeta, error)
	UpdateByID(ctx context.Context, key *CryptoKeyMeta) error
	DeleteByID(ctx context.Context, keyID string) error
}
