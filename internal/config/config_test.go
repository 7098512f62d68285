package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/balance-sheet/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BSHEET_TEST_VALUE=from-dotenv\n"), 0600))
	t.Setenv("BSHEET_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("BSHEET_TEST_VALUE"))

	logger := logging.NewMockLogger()
	loaded := loadEnvFile(logger, filepath.Join(dir, "missing.env"), envFile)

	assert.Equal(t, envFile, loaded)
	assert.Equal(t, "from-dotenv", GetEnv("BSHEET_TEST_VALUE", "fallback"))
}

func TestLoadEnvFile_NoneFound(t *testing.T) {
	logger := logging.NewMockLogger()
	assert.Empty(t, loadEnvFile(logger, filepath.Join(t.TempDir(), ".env")))
	assert.True(t, logger.HasEntry("DEBUG", "No .env file found, using environment variables"))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BSHEET_GET_ENV", "set")
	assert.Equal(t, "set", GetEnv("BSHEET_GET_ENV", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BSHEET_GET_ENV_MISSING_KEY", "fallback"))
}
