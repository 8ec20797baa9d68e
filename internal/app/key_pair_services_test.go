//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"
	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"
	"github.com/MGTheTrain/crypto-utils/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, repo keys.CryptoKeyRepository, encoding string) (keys.KeyPairService, string) {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	enc, err := cryptography.ParseKeyEncoding(encoding)
	require.NoError(t, err)

	registry, err := cryptography.NewDefaultRegistry(log, cryptography.WithKeyEncoding(enc))
	require.NoError(t, err)

	keyDir := filepath.Join(t.TempDir(), "keys")
	service, err := NewKeyPairService(registry, repo, keyDir, encoding, log)
	require.NoError(t, err)
	return service, keyDir
}

func TestNewKeyPairService_InvalidArguments(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	registry, err := cryptography.NewDefaultRegistry(log)
	require.NoError(t, err)
	repo := new(MockCryptoKeyRepository)

	tests := []struct {
		name     string
		registry *asymmetric.Registry
		repo     keys.CryptoKeyRepository
		keyDir   string
		encoding string
	}{
		{"nil registry", nil, repo, "keys", config.KeyEncodingDER},
		{"nil repository", registry, nil, "keys", config.KeyEncodingDER},
		{"empty key dir", registry, repo, "", config.KeyEncodingDER},
		{"unknown encoding", registry, repo, "keys", "jwk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewKeyPairService(tt.registry, tt.repo, tt.keyDir, tt.encoding, log)
			assert.Nil(t, service)
			assert.Error(t, err)
		})
	}
}

func TestKeyPairService_Algorithms(t *testing.T) {
	service, _ := newTestService(t, new(MockCryptoKeyRepository), config.KeyEncodingDER)
	assert.Equal(t, []string{asymmetric.AlgorithmRSA}, service.Algorithms())
}

func TestKeyPairService_Generate(t *testing.T) {
	for _, encoding := range []string{config.KeyEncodingDER, config.KeyEncodingPEM} {
		t.Run(encoding, func(t *testing.T) {
			repo := new(MockCryptoKeyRepository)
			repo.On("Create", mock.Anything, mock.AnythingOfType("*keys.CryptoKeyMeta")).Return(nil).Twice()

			service, keyDir := newTestService(t, repo, encoding)

			metas, err := service.Generate(context.Background(), "rsa", asymmetric.KeyLength1024)
			require.NoError(t, err)
			require.Len(t, metas, 2)

			public, private := metas[0], metas[1]
			assert.Equal(t, asymmetric.KeyTypePublic, public.Type)
			assert.Equal(t, asymmetric.KeyTypePrivate, private.Type)
			assert.Equal(t, public.KeyPairID, private.KeyPairID)
			assert.Equal(t, asymmetric.AlgorithmRSA, public.Algorithm)
			assert.Equal(t, encoding, private.Encoding)
			assert.Equal(t, filepath.Join(keyDir, public.KeyPairID+"-public."+encoding), public.FilePath)
			assert.Equal(t, filepath.Join(keyDir, private.KeyPairID+"-private."+encoding), private.FilePath)

			info, err := os.Stat(private.FilePath)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
			assert.FileExists(t, public.FilePath)

			repo.AssertExpectations(t)
		})
	}
}

func TestKeyPairService_Generate_UnsupportedAlgorithm(t *testing.T) {
	repo := new(MockCryptoKeyRepository)
	service, keyDir := newTestService(t, repo, config.KeyEncodingDER)

	_, err := service.Generate(context.Background(), "DSA", asymmetric.KeyLength2048)
	assert.ErrorIs(t, err, asymmetric.ErrUnsupportedAlgorithm)
	assert.NoDirExists(t, keyDir)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestKeyPairService_Generate_InvalidKeySize(t *testing.T) {
	repo := new(MockCryptoKeyRepository)
	service, _ := newTestService(t, repo, config.KeyEncodingDER)

	_, err := service.Generate(context.Background(), asymmetric.AlgorithmRSA, 512)
	assert.ErrorIs(t, err, asymmetric.ErrInvalidKeyLength)
}

func TestKeyPairService_Generate_RepositoryFailureRollsBack(t *testing.T) {
	repo := new(MockCryptoKeyRepository)
	dbErr := errors.New("database unavailable")
	repo.On("Create", mock.Anything, mock.MatchedBy(func(k *keys.CryptoKeyMeta) bool {
		return k.Type == asymmetric.KeyTypePublic
	})).Return(nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(k *keys.CryptoKeyMeta) bool {
		return k.Type == asymmetric.KeyTypePrivate
	})).Return(dbErr).Once()
	repo.On("DeleteByID", mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()

	service, keyDir := newTestService(t, repo, config.KeyEncodingDER)

	metas, err := service.Generate(context.Background(), asymmetric.AlgorithmRSA, asymmetric.KeyLength1024)
	assert.Nil(t, metas)
	assert.ErrorIs(t, err, dbErr)

	entries, readErr := os.ReadDir(keyDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
	repo.AssertExpectations(t)
}

func TestKeyPairService_ReadKeyFile(t *testing.T) {
	repo := new(MockCryptoKeyRepository)
	service, _ := newTestService(t, repo, config.KeyEncodingPEM)

	publicPath := testutil.CreateTestFile(t, "pair-public.pem", []byte("-----BEGIN PUBLIC KEY-----"))
	repo.On("GetByID", mock.Anything, "public-id").Return(&keys.CryptoKeyMeta{
		ID: "public-id", Type: asymmetric.KeyTypePublic, FilePath: publicPath,
	}, nil)
	repo.On("GetByID", mock.Anything, "private-id").Return(&keys.CryptoKeyMeta{
		ID: "private-id", Type: asymmetric.KeyTypePrivate, FilePath: "unused",
	}, nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, keys.ErrKeyNotFound)

	content, err := service.ReadKeyFile(context.Background(), "public-id")
	require.NoError(t, err)
	assert.Equal(t, []byte("-----BEGIN PUBLIC KEY-----"), content)

	_, err = service.ReadKeyFile(context.Background(), "private-id")
	assert.ErrorIs(t, err, keys.ErrPrivateKeyExport)

	_, err = service.ReadKeyFile(context.Background(), "missing")
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}

func TestKeyPairService_DeleteByID(t *testing.T) {
	repo := new(MockCryptoKeyRepository)
	service, _ := newTestService(t, repo, config.KeyEncodingDER)

	path := testutil.CreateTestFile(t, "pair-private.der", []byte{0x30})
	repo.On("GetByID", mock.Anything, "key-id").Return(&keys.CryptoKeyMeta{ID: "key-id", FilePath: path}, nil)
	repo.On("DeleteByID", mock.Anything, "key-id").Return(nil)

	require.NoError(t, service.DeleteByID(context.Background(), "key-id"))
	assert.NoFileExists(t, path)
	repo.AssertExpectations(t)
}

func TestKeyPairService_DeleteByID_MissingFile(t *testing.T) {
	repo := new(MockCryptoKeyRepository)
	service, _ := newTestService(t, repo, config.KeyEncodingDER)

	repo.On("GetByID", mock.Anything, "key-id").Return(&keys.CryptoKeyMeta{
		ID: "key-id", FilePath: filepath.Join(t.TempDir(), "gone.der"),
	}, nil)
	repo.On("DeleteByID", mock.Anything, "key-id").Return(nil)

	assert.NoError(t, service.DeleteByID(context.Background(), "key-id"))
	repo.AssertExpectations(t)
}

func TestKeyPairService_EncryptDecrypt(t *testing.T) {
	repo := new(MockCryptoKeyRepository)
	var created []*keys.CryptoKeyMeta
	repo.On("Create", mock.Anything, mock.AnythingOfType("*keys.CryptoKeyMeta")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(*keys.CryptoKeyMeta))
		}).Return(nil)

	service, _ := newTestService(t, repo, config.KeyEncodingDER)

	metas, err := service.Generate(context.Background(), asymmetric.AlgorithmRSA, asymmetric.KeyLength1024)
	require.NoError(t, err)
	require.Len(t, created, 2)
	keyPairID := metas[0].KeyPairID

	repo.On("List", mock.Anything, mock.MatchedBy(func(q *keys.CryptoKeyQuery) bool {
		return q.KeyPairID == keyPairID && q.Type == asymmetric.KeyTypePublic
	})).Return([]*keys.CryptoKeyMeta{created[0]}, nil)
	repo.On("List", mock.Anything, mock.MatchedBy(func(q *keys.CryptoKeyQuery) bool {
		return q.KeyPairID == keyPairID && q.Type == asymmetric.KeyTypePrivate
	})).Return([]*keys.CryptoKeyMeta{created[1]}, nil)

	message := []byte("This is a test message")
	ciphertext, err := service.Encrypt(context.Background(), keyPairID, message)
	require.NoError(t, err)
	assert.Len(t, ciphertext, 128)

	plaintext, err := service.Decrypt(context.Background(), keyPairID, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, message, plaintext)

	_, err = service.Encrypt(context.Background(), keyPairID, make([]byte, 128))
	assert.ErrorIs(t, err, asymmetric.ErrDataTooLong)
}

func TestKeyPairService_Encrypt_UnknownKeyPair(t *testing.T) {
	repo := new(MockCryptoKeyRepository)
	repo.On("List", mock.Anything, mock.Anything).Return([]*keys.CryptoKeyMeta{}, nil)

	service, _ := newTestService(t, repo, config.KeyEncodingDER)

	_, err := service.Encrypt(context.Background(), "5b4f0a2e-1111-4222-8333-444455556666", []byte("data"))
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)

	_, err = service.Decrypt(context.Background(), "5b4f0a2e-1111-4222-8333-444455556666", []byte("data"))
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}

func TestKeyPairService_GenerateLogsFailure(t *testing.T) {
	recorder := &testutil.RecordingLogger{}
	registry, err := cryptography.NewDefaultRegistry(recorder)
	require.NoError(t, err)

	repo := new(MockCryptoKeyRepository)
	service, err := NewKeyPairService(registry, repo, t.TempDir(), config.KeyEncodingDER, recorder)
	require.NoError(t, err)

	_, err = service.Generate(context.Background(), "ElGamal", 2048)
	require.ErrorIs(t, err, asymmetric.ErrUnsupportedAlgorithm)

	logged := recorder.Errors()
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "ElGamal")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
