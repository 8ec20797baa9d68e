package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"
	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/logger"

	"github.com/google/uuid"
)

// keyPairService implements the KeyPairService interface on top of an algorithm registry,
// a directory of key files and a metadata repository
type keyPairService struct {
	registry *asymmetric.Registry
	repo     keys.CryptoKeyRepository
	keyDir   string
	encoding string
	logger   logger.Logger
}

// NewKeyPairService creates a new keyPairService instance.
// encoding is the file extension of written keys and must match the encoding the registry's modules write.
func NewKeyPairService(
	registry *asymmetric.Registry,
	repo keys.CryptoKeyRepository,
	keyDir string,
	encoding string,
	logger logger.Logger,
) (keys.KeyPairService, error) {
	if registry == nil {
		return nil, fmt.Errorf("algorithm registry cannot be nil")
	}
	if repo == nil {
		return nil, fmt.Errorf("crypto key repository cannot be nil")
	}
	if keyDir == "" {
		return nil, fmt.Errorf("key directory cannot be empty")
	}

	encoding = strings.ToLower(encoding)
	if encoding != config.KeyEncodingDER && encoding != config.KeyEncodingPEM {
		return nil, fmt.Errorf("unsupported key encoding: %q", encoding)
	}

	return &keyPairService{
		registry: registry,
		repo:     repo,
		keyDir:   keyDir,
		encoding: encoding,
		logger:   logger,
	}, nil
}

func (s *keyPairService) Algorithms() []string {
	return s.registry.Algorithms()
}

// Generate creates a key pair with the registered module, writes both key files
// and records their metadata. Files already written are removed again on failure.
func (s *keyPairService) Generate(ctx context.Context, algorithm string, keySize uint32) (metas []*keys.CryptoKeyMeta, err error) {
	defer func() {
		if err != nil {
			s.logger.Error("Generating ", algorithm, " key pair failed: ", err)
		}
	}()

	module, err := s.registry.Lookup(algorithm)
	if err != nil {
		return nil, err
	}

	keyPair, err := module.GenerateKeyPair(int(keySize))
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	if err := os.MkdirAll(s.keyDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}

	keyPairID := uuid.NewString()
	publicPath := filepath.Join(s.keyDir, fmt.Sprintf("%s-%s.%s", keyPairID, asymmetric.KeyTypePublic, s.encoding))
	privatePath := filepath.Join(s.keyDir, fmt.Sprintf("%s-%s.%s", keyPairID, asymmetric.KeyTypePrivate, s.encoding))

	var written []string
	defer func() {
		if err == nil {
			return
		}
		for _, path := range written {
			if removeErr := os.Remove(path); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				s.logger.Warn("failed to remove key file ", path, ": ", removeErr)
			}
		}
	}()

	if err = module.StorePublicKey(publicPath, asymmetric.PublicKeyOf(keyPair)); err != nil {
		return nil, fmt.Errorf("failed to store public key: %w", err)
	}
	written = append(written, publicPath)

	if err = module.StorePrivateKey(privatePath, asymmetric.PrivateKeyOf(keyPair)); err != nil {
		return nil, fmt.Errorf("failed to store private key: %w", err)
	}
	written = append(written, privatePath)

	now := time.Now().UTC()
	for _, k := range []struct{ keyType, path string }{
		{asymmetric.KeyTypePublic, publicPath},
		{asymmetric.KeyTypePrivate, privatePath},
	} {
		meta := &keys.CryptoKeyMeta{
			ID:              uuid.NewString(),
			KeyPairID:       keyPairID,
			Algorithm:       module.Algorithm(),
			KeySize:         keySize,
			Type:            k.keyType,
			Encoding:        s.encoding,
			FilePath:        k.path,
			DateTimeCreated: now,
		}
		if err = s.repo.Create(ctx, meta); err != nil {
			s.rollbackMetadata(ctx, metas)
			return nil, fmt.Errorf("failed to record %s key: %w", k.keyType, err)
		}
		metas = append(metas, meta)
	}

	s.logger.Info("Generated ", module.Algorithm(), " key pair ", keyPairID)
	return metas, nil
}

func (s *keyPairService) rollbackMetadata(ctx context.Context, metas []*keys.CryptoKeyMeta) {
	for _, meta := range metas {
		if err := s.repo.DeleteByID(ctx, meta.ID); err != nil {
			s.logger.Warn("failed to roll back key metadata ", meta.ID, ": ", err)
		}
	}
}

func (s *keyPairService) List(ctx context.Context, query *keys.CryptoKeyQuery) ([]*keys.CryptoKeyMeta, error) {
	metas, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return metas, nil
}

func (s *keyPairService) GetByID(ctx context.Context, keyID string) (*keys.CryptoKeyMeta, error) {
	meta, err := s.repo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key: %w", err)
	}
	return meta, nil
}

func (s *keyPairService) ReadKeyFile(ctx context.Context, keyID string) ([]byte, error) {
	meta, err := s.GetByID(ctx, keyID)
	if err != nil {
		return nil, err
	}
	if meta.Type != asymmetric.KeyTypePublic {
		return nil, fmt.Errorf("%w: %s", keys.ErrPrivateKeyExport, keyID)
	}

	content, err := os.ReadFile(meta.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	return content, nil
}

// DeleteByID removes the key file first so that metadata never outlives a missing file unnoticed
func (s *keyPairService) DeleteByID(ctx context.Context, keyID string) error {
	meta, err := s.GetByID(ctx, keyID)
	if err != nil {
		return err
	}

	if err := os.Remove(meta.FilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Error("Deleting key file ", meta.FilePath, " failed: ", err)
		return fmt.Errorf("failed to delete key file: %w", err)
	}

	if err := s.repo.DeleteByID(ctx, keyID); err != nil {
		s.logger.Error("Deleting key metadata ", keyID, " failed: ", err)
		return fmt.Errorf("failed to delete key metadata: %w", err)
	}

	s.logger.Info("Deleted key ", keyID)
	return nil
}

func (s *keyPairService) Encrypt(ctx context.Context, keyPairID string, data []byte) ([]byte, error) {
	meta, module, err := s.keyOfPair(ctx, keyPairID, asymmetric.KeyTypePublic)
	if err != nil {
		return nil, err
	}

	publicKey, err := module.LoadPublicKey(meta.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load public key: %w", err)
	}

	return module.EncryptData(publicKey, data)
}

func (s *keyPairService) Decrypt(ctx context.Context, keyPairID string, data []byte) ([]byte, error) {
	meta, module, err := s.keyOfPair(ctx, keyPairID, asymmetric.KeyTypePrivate)
	if err != nil {
		return nil, err
	}

	privateKey, err := module.LoadPrivateKey(meta.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	return module.DecryptData(privateKey, data)
}

// keyOfPair finds the key of the given type in a key pair together with the module of its algorithm
func (s *keyPairService) keyOfPair(ctx context.Context, keyPairID, keyType string) (*keys.CryptoKeyMeta, asymmetric.EncryptionModule, error) {
	query := keys.NewCryptoKeyQuery()
	query.KeyPairID = keyPairID
	query.Type = keyType
	query.Limit = 1

	metas, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up %s key: %w", keyType, err)
	}
	if len(metas) == 0 {
		return nil, nil, fmt.Errorf("%w: no %s key in key pair %s", keys.ErrKeyNotFound, keyType, keyPairID)
	}

	module, err := s.registry.Lookup(metas[0].Algorithm)
	if err != nil {
		return nil, nil, err
	}
	return metas[0], module, nil
}
