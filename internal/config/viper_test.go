package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, ',', config.DelimiterRune())
	assert.Equal(t, "", config.Template.File)
	assert.Equal(t, "data", config.Dirs.Data)
	assert.Equal(t, "Validated", config.Dirs.Validated)
	assert.Equal(t, "Mistakes detected", config.Dirs.Mistakes)
	assert.Equal(t, "test_results", config.Dirs.Results)
	assert.Equal(t, 4, config.Batch.Workers)
	assert.Equal(t, []string{"json", "csv"}, config.Report.Formats)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, validateConfig(config))
	assert.Equal(t, "Mistakes detected", config.Dirs.Mistakes)
	assert.Equal(t, []string{"json", "csv"}, config.Report.Formats)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"BSHEET_LOG_LEVEL":      "debug",
		"BSHEET_LOG_FORMAT":     "json",
		"BSHEET_CSV_DELIMITER":  ";",
		"BSHEET_TEMPLATE_FILE":  "template.json",
		"BSHEET_DIRS_MISTAKES":  "rejected",
		"BSHEET_BATCH_WORKERS":  "8",
		"BSHEET_REPORT_FORMATS": "csv",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, "template.json", config.Template.File)
	assert.Equal(t, "rejected", config.Dirs.Mistakes)
	assert.Equal(t, 8, config.Batch.Workers)
	assert.Equal(t, []string{"csv"}, config.Report.Formats)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()

	configContent := `
log:
  level: "warn"
  format: "json"
template:
  file: "config/template.yaml"
dirs:
  results: "reports"
batch:
  workers: 2
report:
  formats: ["json"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "config/template.yaml", config.Template.File)
	assert.Equal(t, "reports", config.Dirs.Results)
	assert.Equal(t, "data", config.Dirs.Data, "unset keys keep their defaults")
	assert.Equal(t, 2, config.Batch.Workers)
	assert.Equal(t, []string{"json"}, config.Report.Formats)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte("batch:\n  workers: 2\nlog:\n  level: warn\n"), 0600))
	chdir(t, tempDir)

	t.Setenv("BSHEET_BATCH_WORKERS", "16")

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, 16, config.Batch.Workers, "environment beats config file")
	assert.Equal(t, "warn", config.Log.Level, "config file beats defaults")
}

func TestInitializeConfig_InvalidFile(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte("log: [unterminated"), 0600))
	chdir(t, tempDir)

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Log.Level = "info"
		c.Log.Format = "text"
		c.CSV.Delimiter = ","
		c.Dirs.Data = "data"
		c.Dirs.Validated = "Validated"
		c.Dirs.Mistakes = "Mistakes detected"
		c.Dirs.Results = "test_results"
		c.Batch.Workers = 4
		c.Report.Formats = []string{"json"}
		return c
	}
	require.NoError(t, validateConfig(valid()))

	tests := []struct {
		name        string
		mutate      func(c *Config)
		errContains string
	}{
		{name: "log level", mutate: func(c *Config) { c.Log.Level = "loud" }, errContains: "invalid log level"},
		{name: "log format", mutate: func(c *Config) { c.Log.Format = "xml" }, errContains: "invalid log format"},
		{name: "delimiter", mutate: func(c *Config) { c.CSV.Delimiter = ";;" }, errContains: "single character"},
		{name: "no workers", mutate: func(c *Config) { c.Batch.Workers = 0 }, errContains: "batch.workers"},
		{name: "too many workers", mutate: func(c *Config) { c.Batch.Workers = 65 }, errContains: "batch.workers"},
		{name: "no formats", mutate: func(c *Config) { c.Report.Formats = nil }, errContains: "report.formats"},
		{name: "bad format", mutate: func(c *Config) { c.Report.Formats = []string{"xml"} }, errContains: "unsupported output format"},
		{name: "empty dir", mutate: func(c *Config) { c.Dirs.Validated = " " }, errContains: "dirs.validated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.ErrorContains(t, validateConfig(c), tt.errContains)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	c := &Config{}
	c.Log.Level = "debug"
	c.Log.Format = "json"
	logger := ConfigureLoggingFromConfig(c)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	c.Log.Level = "nope"
	c.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(c)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(originalDir) })
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, envVar := range []string{
		"BSHEET_LOG_LEVEL",
		"BSHEET_LOG_FORMAT",
		"BSHEET_CSV_DELIMITER",
		"BSHEET_TEMPLATE_FILE",
		"BSHEET_DIRS_DATA",
		"BSHEET_DIRS_VALIDATED",
		"BSHEET_DIRS_MISTAKES",
		"BSHEET_DIRS_RESULTS",
		"BSHEET_BATCH_WORKERS",
		"BSHEET_REPORT_FORMATS",
	} {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
