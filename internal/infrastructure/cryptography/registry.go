package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/logger"
)

// NewDefaultRegistry returns a registry holding every module of this package.
// The options apply to each module.
func NewDefaultRegistry(logger logger.Logger, opts ...Option) (*asymmetric.Registry, error) {
	rsaModule, err := NewRSAModule(logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA module: %w", err)
	}

	registry, err := asymmetric.NewRegistry(rsaModule)
	if err != nil {
		return nil, fmt.Errorf("failed to build algorithm registry: %w", err)
	}
	return registry, nil
}
