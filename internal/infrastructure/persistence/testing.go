//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"
	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repository
type TestContext struct {
	DB            *gorm.DB
	CryptoKeyRepo keys.CryptoKeyRepository
}

// SetupTestDB opens and migrates a throwaway database, closed again through t.Cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanup := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
	case config.PostgresDbType:
		name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: name,
		}
		cleanup = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, name)
		}
	default:
		t.Fatalf("unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanup()
	})

	require.NoError(t, Migrate(db))

	repo, err := NewGormCryptoKeyRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return &TestContext{
		DB:            db,
		CryptoKeyRepo: repo,
	}
}

// CreateTestKey returns valid RSA key metadata of the given type
func CreateTestKey(t *testing.T, keyPairID, keyType string) *keys.CryptoKeyMeta {
	t.Helper()

	id := uuid.NewString()
	return &keys.CryptoKeyMeta{
		ID:              id,
		KeyPairID:       keyPairID,
		Algorithm:       asymmetric.AlgorithmRSA,
		KeySize:         asymmetric.KeyLength2048,
		Type:            keyType,
		Encoding:        config.KeyEncodingDER,
		FilePath:        "keys/" + keyPairID + "-" + keyType + ".der",
		DateTimeCreated: time.Now().UTC(),
	}
}
