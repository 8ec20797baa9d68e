package asymmetric

import "crypto"

// EncryptionModule exposes the operations a module for asymmetric cryptography provides.
// Keys are the opaque crypto.PublicKey / crypto.PrivateKey handles of the standard library;
// a module rejects keys of other algorithms with ErrKeyTypeMismatch.
type EncryptionModule interface {
	// Algorithm returns the name the module is registered under, e.g. "RSA".
	Algorithm() string

	// GenerateKeyPair generates a public/private key pair of the given length in bits.
	GenerateKeyPair(keyLength int) (*KeyPair, error)

	// StorePublicKey persists the public key to path as X.509 SubjectPublicKeyInfo.
	StorePublicKey(path string, publicKey crypto.PublicKey) error

	// StorePrivateKey persists the private key to path as PKCS#8 PrivateKeyInfo.
	StorePrivateKey(path string, privateKey crypto.PrivateKey) error

	// LoadPublicKey loads a public key from path.
	LoadPublicKey(path string) (crypto.PublicKey, error)

	// LoadPrivateKey loads a private key from path.
	LoadPrivateKey(path string) (crypto.PrivateKey, error)

	// EncryptData encrypts a single block of clear text with the public key.
	EncryptData(publicKey crypto.PublicKey, data []byte) ([]byte, error)

	// DecryptData decrypts a single block of cipher text with the private key.
	DecryptData(privateKey crypto.PrivateKey, encryptedData []byte) ([]byte, error)
}
