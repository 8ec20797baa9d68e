//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-utils/internal/domain/asymmetric"
	"github.com/MGTheTrain/crypto-utils/internal/pkg/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRootCmd(t *testing.T) *cobra.Command {
	t.Helper()

	cfg := config.DefaultCliConfig()
	cfg.Crypto.KeySize = asymmetric.KeyLength1024

	rootCmd := &cobra.Command{Use: "crypto-utils-cli", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, InitAsymmetricCommands(rootCmd, cfg))
	return rootCmd
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := newTestRootCmd(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func generateKeys(t *testing.T, keyDir, encoding string) (string, string) {
	t.Helper()

	out, err := execute(t, "generate-keys", "--key-dir", keyDir, "--encoding", encoding)
	require.NoError(t, err)

	paths := strings.Fields(out)
	require.Len(t, paths, 2)
	return paths[0], paths[1]
}

func TestAlgorithmsCmd(t *testing.T) {
	out, err := execute(t, "algorithms")
	require.NoError(t, err)
	assert.Equal(t, "RSA\n", out)
}

func TestGenerateKeysCmd(t *testing.T) {
	keyDir := filepath.Join(t.TempDir(), "nested", "keys")

	publicKeyPath, privateKeyPath := generateKeys(t, keyDir, "pem")

	assert.True(t, strings.HasSuffix(publicKeyPath, "-public.pem"))
	assert.True(t, strings.HasSuffix(privateKeyPath, "-private.pem"))
	assert.Equal(t, keyDir, filepath.Dir(publicKeyPath))

	content, err := os.ReadFile(privateKeyPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "BEGIN PRIVATE KEY")
}

func TestGenerateKeysCmd_InvalidInput(t *testing.T) {
	keyDir := t.TempDir()

	_, err := execute(t, "generate-keys", "--key-dir", keyDir, "--key-size", "512")
	assert.ErrorIs(t, err, asymmetric.ErrInvalidKeyLength)

	_, err = execute(t, "generate-keys", "--key-dir", keyDir, "--algorithm", "DSA")
	assert.ErrorIs(t, err, asymmetric.ErrUnsupportedAlgorithm)

	_, err = execute(t, "generate-keys", "--key-dir", keyDir, "--encoding", "jwk")
	assert.Error(t, err)

	entries, err := os.ReadDir(keyDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEncryptDecryptCmd_RoundTrip(t *testing.T) {
	for _, padding := range []string{"pkcs1v15", "oaep"} {
		t.Run(padding, func(t *testing.T) {
			dir := t.TempDir()
			publicKeyPath, privateKeyPath := generateKeys(t, dir, "der")

			inputFile := filepath.Join(dir, "message.txt")
			encryptedFile := filepath.Join(dir, "message.enc")
			decryptedFile := filepath.Join(dir, "message.dec")
			require.NoError(t, os.WriteFile(inputFile, []byte("This is a simple test message"), 0600))

			_, err := execute(t, "encrypt", "--input-file", inputFile, "--output-file", encryptedFile,
				"--public-key", publicKeyPath, "--padding", padding)
			require.NoError(t, err)

			_, err = execute(t, "decrypt", "--input-file", encryptedFile, "--output-file", decryptedFile,
				"--private-key", privateKeyPath, "--padding", padding)
			require.NoError(t, err)

			decrypted, err := os.ReadFile(decryptedFile)
			require.NoError(t, err)
			assert.Equal(t, "This is a simple test message", string(decrypted))
		})
	}
}

func TestEncryptCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	publicKeyPath, privateKeyPath := generateKeys(t, dir, "der")

	tooLong := filepath.Join(dir, "too-long.txt")
	require.NoError(t, os.WriteFile(tooLong, bytes.Repeat([]byte("a"), 200), 0600))

	_, err := execute(t, "encrypt", "--input-file", tooLong, "--output-file", filepath.Join(dir, "out"),
		"--public-key", publicKeyPath)
	assert.ErrorIs(t, err, asymmetric.ErrDataTooLong)
	assert.NoFileExists(t, filepath.Join(dir, "out"))

	_, err = execute(t, "encrypt", "--input-file", tooLong, "--output-file", filepath.Join(dir, "out"),
		"--public-key", privateKeyPath)
	assert.Error(t, err)

	_, err = execute(t, "encrypt", "--input-file", tooLong, "--output-file", filepath.Join(dir, "out"))
	assert.ErrorContains(t, err, "public-key")
}

func TestDecryptCmd_WrongPadding(t *testing.T) {
	dir := t.TempDir()
	publicKeyPath, privateKeyPath := generateKeys(t, dir, "pem")

	inputFile := filepath.Join(dir, "message.txt")
	encryptedFile := filepath.Join(dir, "message.enc")
	require.NoError(t, os.WriteFile(inputFile, []byte("hello"), 0600))

	_, err := execute(t, "encrypt", "--input-file", inputFile, "--output-file", encryptedFile,
		"--public-key", publicKeyPath, "--padding", "oaep")
	require.NoError(t, err)

	_, err = execute(t, "decrypt", "--input-file", encryptedFile, "--output-file", filepath.Join(dir, "message.dec"),
		"--private-key", privateKeyPath, "--padding", "pkcs1v15")
	assert.Error(t, err)
}

func TestDemoCmd(t *testing.T) {
	for _, encoding := range []string{"der", "pem"} {
		t.Run(encoding, func(t *testing.T) {
			out, err := execute(t, "demo", "--encoding", encoding, "--message", "round trip")
			require.NoError(t, err)
			assert.Equal(t, "in-memory: round trip\nfile system: round trip\n", out)
		})
	}
}

func TestDemoCmd_MessageTooLong(t *testing.T) {
	_, err := execute(t, "demo", "--message", strings.Repeat("x", 200))
	assert.ErrorIs(t, err, asymmetric.ErrDataTooLong)
}
