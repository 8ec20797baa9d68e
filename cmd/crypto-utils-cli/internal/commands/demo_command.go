package commands

import (
	"bytes"
	"crypto"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"

	"github.com/spf13/cobra"
)

const defaultDemoMessage = "This is a simple test message"

// DemoCmd encrypts a message with a fresh key pair, decrypts it in memory, then stores
// and reloads both keys in a temporary directory and decrypts again. It fails unless
// both round trips return the message.
func (commandHandler *AsymmetricCommandHandler) DemoCmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "algorithm", "message", "encoding", "padding")
	if err != nil {
		return err
	}
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}

	module, err := lookupModule(commandHandler.logger, flags["algorithm"], flags["encoding"], flags["padding"])
	if err != nil {
		return err
	}

	message := []byte(flags["message"])
	out := cmd.OutOrStdout()

	keyPair, err := module.GenerateKeyPair(keySize)
	if err != nil {
		return err
	}

	decrypted, err := roundTrip(module, asymmetric.PublicKeyOf(keyPair), asymmetric.PrivateKeyOf(keyPair), message)
	if err != nil {
		return fmt.Errorf("in-memory round trip: %w", err)
	}
	if _, err := fmt.Fprintf(out, "in-memory: %s\n", decrypted); err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "crypto-utils-demo-")
	if err != nil {
		return fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			commandHandler.logger.Warn("failed to remove ", dir, ": ", err)
		}
	}()

	publicKeyPath := filepath.Join(dir, module.Algorithm()+"-public.key")
	privateKeyPath := filepath.Join(dir, module.Algorithm()+"-private.key")

	if err := module.StorePublicKey(publicKeyPath, asymmetric.PublicKeyOf(keyPair)); err != nil {
		return err
	}
	if err := module.StorePrivateKey(privateKeyPath, asymmetric.PrivateKeyOf(keyPair)); err != nil {
		return err
	}

	publicKey, err := module.LoadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}
	privateKey, err := module.LoadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}

	decrypted, err = roundTrip(module, publicKey, privateKey, message)
	if err != nil {
		return fmt.Errorf("file round trip: %w", err)
	}
	_, err = fmt.Fprintf(out, "file system: %s\n", decrypted)
	return err
}

func roundTrip(module asymmetric.EncryptionModule, publicKey crypto.PublicKey, privateKey crypto.PrivateKey, message []byte) ([]byte, error) {
	encrypted, err := module.EncryptData(publicKey, message)
	if err != nil {
		return nil, err
	}

	decrypted, err := module.DecryptData(privateKey, encrypted)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(decrypted, message) {
		return nil, fmt.Errorf("decrypted data does not match the message")
	}
	return decrypted, nil
}
