package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"
	"github.com/MGTheTrain/crypto-utils/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AsymmetricCommandHandler encapsulates logic for handling asymmetric encryption operations via CLI.
type AsymmetricCommandHandler struct {
	settings config.CryptoSettings
	logger   logger.Logger
}

// NewAsymmetricCommandHandler initializes a new AsymmetricCommandHandler from the CLI configuration.
func NewAsymmetricCommandHandler(cfg *config.CliConfig) (*AsymmetricCommandHandler, error) {
	loggerInstance, err := setupLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AsymmetricCommandHandler{
		settings: cfg.Crypto,
		logger:   loggerInstance,
	}, nil
}

// AlgorithmsCmd prints the registered algorithms, one per line
func (commandHandler *AsymmetricCommandHandler) AlgorithmsCmd(cmd *cobra.Command, _ []string) error {
	registry, err := cryptography.NewDefaultRegistry(commandHandler.logger)
	if err != nil {
		return err
	}

	for _, algorithm := range registry.Algorithms() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), algorithm); err != nil {
			return err
		}
	}
	return nil
}

// GenerateKeysCmd generates a key pair and persists it in the selected directory
func (commandHandler *AsymmetricCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "algorithm", "key-dir", "encoding")
	if err != nil {
		return err
	}
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}

	keyEncoding, err := cryptography.ParseKeyEncoding(flags["encoding"])
	if err != nil {
		return err
	}

	module, err := lookupModule(commandHandler.logger, flags["algorithm"], string(keyEncoding), "")
	if err != nil {
		return err
	}

	keyPair, err := module.GenerateKeyPair(keySize)
	if err != nil {
		return err
	}

	keyDir := flags["key-dir"]
	if err := os.MkdirAll(keyDir, 0o700); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}

	uniqueID := uuid.NewString()
	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public.%s", uniqueID, keyEncoding.FileExtension()))
	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private.%s", uniqueID, keyEncoding.FileExtension()))

	if err := module.StorePublicKey(publicKeyFilePath, asymmetric.PublicKeyOf(keyPair)); err != nil {
		return err
	}
	if err := module.StorePrivateKey(privateKeyFilePath, asymmetric.PrivateKeyOf(keyPair)); err != nil {
		return err
	}

	commandHandler.logger.Info("Generated ", module.Algorithm(), " key pair ", uniqueID)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", publicKeyFilePath, privateKeyFilePath)
	return err
}

// EncryptCmd encrypts one block read from a file with a stored public key
func (commandHandler *AsymmetricCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "algorithm", "input-file", "output-file", "public-key", "padding")
	if err != nil {
		return err
	}

	module, err := lookupModule(commandHandler.logger, flags["algorithm"], "", flags["padding"])
	if err != nil {
		return err
	}

	publicKey, err := module.LoadPublicKey(flags["public-key"])
	if err != nil {
		return err
	}

	plainText, err := os.ReadFile(filepath.Clean(flags["input-file"]))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	encryptedData, err := module.EncryptData(publicKey, plainText)
	if err != nil {
		return err
	}

	if err := writeOutputFile(flags["output-file"], encryptedData); err != nil {
		return err
	}

	commandHandler.logger.Info("Encrypted data path ", flags["output-file"])
	return nil
}

// DecryptCmd decrypts one block read from a file with a stored private key
func (commandHandler *AsymmetricCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "algorithm", "input-file", "output-file", "private-key", "padding")
	if err != nil {
		return err
	}

	module, err := lookupModule(commandHandler.logger, flags["algorithm"], "", flags["padding"])
	if err != nil {
		return err
	}

	privateKey, err := module.LoadPrivateKey(flags["private-key"])
	if err != nil {
		return err
	}

	encryptedData, err := os.ReadFile(filepath.Clean(flags["input-file"]))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	decryptedData, err := module.DecryptData(privateKey, encryptedData)
	if err != nil {
		return err
	}

	if err := writeOutputFile(flags["output-file"], decryptedData); err != nil {
		return err
	}

	commandHandler.logger.Info("Decrypted data path ", flags["output-file"])
	return nil
}

// InitAsymmetricCommands registers the asymmetric encryption commands; flag defaults come from cfg
func InitAsymmetricCommands(rootCmd *cobra.Command, cfg *config.CliConfig) error {
	handler, err := NewAsymmetricCommandHandler(cfg)
	if err != nil {
		return fmt.Errorf("failed to create asymmetric command handler: %w", err)
	}
	defaults := cfg.Crypto

	var algorithmsCmd = &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported asymmetric algorithms",
		Args:  cobra.NoArgs,
		RunE:  handler.AlgorithmsCmd,
	}
	rootCmd.AddCommand(algorithmsCmd)

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a key pair",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().StringP("algorithm", "", defaults.Algorithm, "Asymmetric algorithm")
	generateKeysCmd.Flags().IntP("key-size", "", int(defaults.KeySize), "Key size in bits (1024, 2048, 3072 or 4096 for RSA)")
	generateKeysCmd.Flags().StringP("key-dir", "", defaults.KeyDir, "Directory to store the keys")
	generateKeysCmd.Flags().StringP("encoding", "", defaults.KeyEncoding, "Key file encoding (der or pem)")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with a public key",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("algorithm", "", defaults.Algorithm, "Asymmetric algorithm")
	encryptCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptCmd.Flags().StringP("public-key", "", "", "Path to public key")
	encryptCmd.Flags().StringP("padding", "", defaults.Padding, "Encryption padding (pkcs1v15 or oaep)")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with a private key",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("algorithm", "", defaults.Algorithm, "Asymmetric algorithm")
	decryptCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptCmd.Flags().StringP("private-key", "", "", "Path to private key")
	decryptCmd.Flags().StringP("padding", "", defaults.Padding, "Encryption padding (pkcs1v15 or oaep)")
	rootCmd.AddCommand(decryptCmd)

	var demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run an in-memory and a file-based encryption round trip",
		Args:  cobra.NoArgs,
		RunE:  handler.DemoCmd,
	}
	demoCmd.Flags().StringP("algorithm", "", defaults.Algorithm, "Asymmetric algorithm")
	demoCmd.Flags().IntP("key-size", "", int(defaults.KeySize), "Key size in bits")
	demoCmd.Flags().StringP("message", "", defaultDemoMessage, "Message to encrypt")
	demoCmd.Flags().StringP("encoding", "", defaults.KeyEncoding, "Key file encoding (der or pem)")
	demoCmd.Flags().StringP("padding", "", defaults.Padding, "Encryption padding (pkcs1v15 or oaep)")
	rootCmd.AddCommand(demoCmd)

	for _, required := range []struct {
		cmd  *cobra.Command
		name string
	}{
		{encryptCmd, "input-file"}, {encryptCmd, "output-file"}, {encryptCmd, "public-key"},
		{decryptCmd, "input-file"}, {decryptCmd, "output-file"}, {decryptCmd, "private-key"},
	} {
		if err := required.cmd.MarkFlagRequired(required.name); err != nil {
			return fmt.Errorf("failed to mark %s flag required: %w", required.name, err)
		}
	}

	return nil
}
