package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"
	"github.com/MGTheTrain/crypto-utils/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger(settings config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(&settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// lookupModule builds a registry for the given encoding and padding and returns the module of algorithm
func lookupModule(log logger.Logger, algorithm, encoding, padding string) (asymmetric.EncryptionModule, error) {
	var opts []cryptography.Option

	if encoding != "" {
		keyEncoding, err := cryptography.ParseKeyEncoding(encoding)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cryptography.WithKeyEncoding(keyEncoding))
	}

	if padding != "" {
		p, err := cryptography.ParsePadding(padding)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cryptography.WithPadding(p))
	}

	registry, err := cryptography.NewDefaultRegistry(log, opts...)
	if err != nil {
		return nil, err
	}
	return registry.Lookup(algorithm)
}

// stringFlags reads several string flags at once
func stringFlags(cmd *cobra.Command, names ...string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		value, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", name, err)
		}
		values[name] = value
	}
	return values, nil
}

func writeOutputFile(path string, data []byte) error {
	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
