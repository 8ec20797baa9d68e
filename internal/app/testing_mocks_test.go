//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/crypto-utils/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockCryptoKeyRepository is a mock implementation of CryptoKeyRepository
type MockCryptoKeyRepository struct {
	mock.Mock
}

func (m *MockCryptoKeyRepository) Create(ctx context.Context, key *keys.CryptoKeyMeta) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCryptoKeyRepository) List(ctx context.Context, query *keys.CryptoKeyQuery) ([]*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockCryptoKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockCryptoKeyRepository) UpdateByID(ctx context.Context, key *keys.CryptoKeyMeta) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCryptoKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}
