// Package main is the entry point for the crypto-utils-cli application.
// It loads the CLI configuration, registers the asymmetric encryption commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/crypto-utils/cmd/crypto-utils-cli/internal/commands"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cliConfig, err := config.InitializeCliConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	rootCmd := &cobra.Command{
		Use:   "crypto-utils-cli",
		Short: "Asymmetric encryption CLI tool",
		Long: `crypto-utils-cli generates key pairs, stores them as X.509 (public) and
PKCS#8 (private) files in DER or PEM encoding, and encrypts or decrypts
single blocks of data with them.

Flag defaults come from the YAML file named by CONFIG_PATH, if set.`,
		SilenceUsage: true,
	}

	if err := commands.InitAsymmetricCommands(rootCmd, cliConfig); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
