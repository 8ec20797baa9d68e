package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/logger"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/validators"
)

// pkcs1v15Overhead is the minimum padding length of RSAES-PKCS1-v1_5.
const pkcs1v15Overhead = 11

// rsaModule implements asymmetric.EncryptionModule for RSA
type rsaModule struct {
	logger logger.Logger
	opts   moduleOptions
}

// NewRSAModule creates the RSA encryption module.
// Key files are DER and encryption uses PKCS#1 v1.5 unless options say otherwise.
func NewRSAModule(logger logger.Logger, opts ...Option) (asymmetric.EncryptionModule, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.normalize(); err != nil {
		return nil, fmt.Errorf("invalid RSA module options: %w", err)
	}

	return &rsaModule{
		logger: logger,
		opts:   o,
	}, nil
}

// Algorithm returns "RSA".
func (r *rsaModule) Algorithm() string {
	return asymmetric.AlgorithmRSA
}

// GenerateKeyPair generates an RSA key pair with the specified modulus length.
func (r *rsaModule) GenerateKeyPair(keyLength int) (*asymmetric.KeyPair, error) {
	if keyLength <= 0 || !validators.IsSupportedKeySize(asymmetric.AlgorithmRSA, uint64(keyLength)) {
		return nil, r.failed("GenerateKeyPair", fmt.Errorf("%w: %d bits for RSA", asymmetric.ErrInvalidKeyLength, keyLength))
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, keyLength)
	if err != nil {
		return nil, r.failed("GenerateKeyPair", fmt.Errorf("failed to generate RSA keys: %w", err))
	}

	r.logger.Info("Generated RSA key pair of ", keyLength, " bits")
	return &asymmetric.KeyPair{
		Public:  &privateKey.PublicKey,
		Private: privateKey,
	}, nil
}

// StorePublicKey saves the RSA public key as X.509 SubjectPublicKeyInfo.
func (r *rsaModule) StorePublicKey(path string, publicKey crypto.PublicKey) error {
	pub, err := asRSAPublicKey(publicKey)
	if err != nil {
		return r.failed("StorePublicKey", err)
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return r.failed("StorePublicKey", fmt.Errorf("failed to marshal public key: %w", err))
	}

	if err := writeKeyFile(path, der, pemTypePublicKey, r.opts.encoding, publicKeyFileMode); err != nil {
		return r.failed("StorePublicKey", fmt.Errorf("cannot save the public key to %s: %w", path, err))
	}

	r.logger.Info("Saved RSA public key ", path)
	return nil
}

// StorePrivateKey saves the RSA private key as PKCS#8 PrivateKeyInfo.
func (r *rsaModule) StorePrivateKey(path string, privateKey crypto.PrivateKey) error {
	priv, err := asRSAPrivateKey(privateKey)
	if err != nil {
		return r.failed("StorePrivateKey", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return r.failed("StorePrivateKey", fmt.Errorf("failed to marshal private key: %w", err))
	}

	if err := writeKeyFile(path, der, pemTypePrivateKey, r.opts.encoding, privateKeyFileMode); err != nil {
		return r.failed("StorePrivateKey", fmt.Errorf("cannot save the private key to %s: %w", path, err))
	}

	r.logger.Info("Saved RSA private key ", path)
	return nil
}

// LoadPublicKey reads an RSA public key in PKIX form, falling back to PKCS#1.
func (r *rsaModule) LoadPublicKey(path string) (crypto.PublicKey, error) {
	der, err := readKeyFile(path)
	if err != nil {
		return nil, r.failed("LoadPublicKey", fmt.Errorf("error loading the public key: %w", err))
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		pkcs1, pkcs1Err := x509.ParsePKCS1PublicKey(der)
		if pkcs1Err != nil {
			return nil, r.failed("LoadPublicKey", fmt.Errorf("%w: public key in neither PKIX nor PKCS#1 form: %w", asymmetric.ErrMalformedKey, err))
		}
		parsed = pkcs1
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, r.failed("LoadPublicKey", fmt.Errorf("%w: public key is %T", asymmetric.ErrKeyTypeMismatch, parsed))
	}

	r.logger.Debug("Loaded RSA public key ", path)
	return pub, nil
}

// LoadPrivateKey reads an RSA private key in PKCS#8 form, falling back to PKCS#1.
func (r *rsaModule) LoadPrivateKey(path string) (crypto.PrivateKey, error) {
	der, err := readKeyFile(path)
	if err != nil {
		return nil, r.failed("LoadPrivateKey", fmt.Errorf("error loading the private key: %w", err))
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		pkcs1, pkcs1Err := x509.ParsePKCS1PrivateKey(der)
		if pkcs1Err != nil {
			return nil, r.failed("LoadPrivateKey", fmt.Errorf("%w: private key in neither PKCS#8 nor PKCS#1 form: %w", asymmetric.ErrMalformedKey, err))
		}
		parsed = pkcs1
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, r.failed("LoadPrivateKey", fmt.Errorf("%w: private key is %T", asymmetric.ErrKeyTypeMismatch, parsed))
	}

	r.logger.Debug("Loaded RSA private key ", path)
	return priv, nil
}

// EncryptData encrypts one block with the public key.
// Data longer than MaxMessageSize fails with ErrDataTooLong; use hybrid
// encryption for anything larger.
func (r *rsaModule) EncryptData(publicKey crypto.PublicKey, data []byte) ([]byte, error) {
	pub, err := asRSAPublicKey(publicKey)
	if err != nil {
		return nil, r.failed("EncryptData", err)
	}

	if limit := MaxMessageSize(pub, r.opts.padding); len(data) > limit {
		return nil, r.failed("EncryptData", fmt.Errorf("%w: %d bytes, limit is %d", asymmetric.ErrDataTooLong, len(data), limit))
	}

	var encrypted []byte
	switch r.opts.padding {
	case PaddingOAEP:
		encrypted, err = rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, data, nil)
	default:
		encrypted, err = rsa.EncryptPKCS1v15(rand.Reader, pub, data)
	}
	if err != nil {
		return nil, r.failed("EncryptData", fmt.Errorf("failed to encrypt data: %w", err))
	}

	r.logger.Debug("RSA encryption succeeded")
	return encrypted, nil
}

// DecryptData decrypts one block with the private key.
func (r *rsaModule) DecryptData(privateKey crypto.PrivateKey, encryptedData []byte) ([]byte, error) {
	priv, err := asRSAPrivateKey(privateKey)
	if err != nil {
		return nil, r.failed("DecryptData", err)
	}

	var decrypted []byte
	switch r.opts.padding {
	case PaddingOAEP:
		decrypted, err = rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, encryptedData, nil)
	default:
		decrypted, err = rsa.DecryptPKCS1v15(rand.Reader, priv, encryptedData)
	}
	if err != nil {
		return nil, r.failed("DecryptData", fmt.Errorf("failed to decrypt data: %w", err))
	}

	r.logger.Debug("RSA decryption succeeded")
	return decrypted, nil
}

// failed logs err as the failure of op and returns it unchanged
func (r *rsaModule) failed(op string, err error) error {
	r.logger.Error("RSA ", op, " failed: ", err)
	return err
}

// MaxMessageSize returns the largest clear text, in bytes, that fits into one block.
// It is 0 for an unknown padding.
func MaxMessageSize(publicKey *rsa.PublicKey, padding Padding) int {
	padding, err := ParsePadding(string(padding))
	if err != nil {
		return 0
	}

	var limit int
	switch padding {
	case PaddingOAEP:
		limit = publicKey.Size() - 2*sha256.Size - 2
	default:
		limit = publicKey.Size() - pkcs1v15Overhead
	}
	if limit < 0 {
		return 0
	}
	return limit
}

func asRSAPublicKey(key crypto.PublicKey) (*rsa.PublicKey, error) {
	switch k := key.(type) {
	case nil:
		return nil, fmt.Errorf("public %w", asymmetric.ErrNilKey)
	case *rsa.PublicKey:
		if k == nil {
			return nil, fmt.Errorf("public %w", asymmetric.ErrNilKey)
		}
		return k, nil
	default:
		return nil, fmt.Errorf("%w: expected RSA public key, got %T", asymmetric.ErrKeyTypeMismatch, key)
	}
}

func asRSAPrivateKey(key crypto.PrivateKey) (*rsa.PrivateKey, error) {
	switch k := key.(type) {
	case nil:
		return nil, fmt.Errorf("private %w", asymmetric.ErrNilKey)
	case *rsa.PrivateKey:
		if k == nil {
			return nil, fmt.Errorf("private %w", asymmetric.ErrNilKey)
		}
		return k, nil
	default:
		return nil, fmt.Errorf("%w: expected RSA private key, got %T", asymmetric.ErrKeyTypeMismatch, key)
	}
}
