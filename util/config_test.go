package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)

	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "production", config.Environment)
	require.Equal(t, "info", config.LogLevel)
	require.Equal(t, "html", config.OutputFormat)
	require.Equal(t, int64(1<<20), config.MaxInputBytes)
	require.Equal(t, 4, config.ParseWorkers)
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	content := "ENVIRONMENT=development\nOUTPUT_FORMAT=text\nPARSE_WORKERS=2\nTERM_LINK_COLOR=33\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	t.Setenv("PARSE_WORKERS", "8")
	t.Setenv("TERM_CODE_COLOR", "#aaaaaa")

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, "development", config.Environment)
	require.Equal(t, "text", config.OutputFormat)
	require.Equal(t, 8, config.ParseWorkers)
	require.Equal(t, "33", config.TermLinkColor)
	require.Equal(t, "#aaaaaa", config.TermCodeColor)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		LogLevel:      "debug",
		OutputFormat:  "term",
		MaxInputBytes: 10,
		ParseWorkers:  1,
	}

	type tc struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}

	tests := []tc{
		{
			name:   "valid",
			modify: func(c *Config) {},
		},
		{
			name:   "empty_log_level",
			modify: func(c *Config) { c.LogLevel = "" },
		},
		{
			name:    "unknown_log_level",
			modify:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
		{
			name:    "unknown_format",
			modify:  func(c *Config) { c.OutputFormat = "pdf" },
			wantErr: true,
		},
		{
			name:    "no_workers",
			modify:  func(c *Config) { c.ParseWorkers = 0 },
			wantErr: true,
		},
		{
			name:    "negative_input_limit",
			modify:  func(c *Config) { c.MaxInputBytes = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)

			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	resetViper(t)
	t.Setenv("OUTPUT_FORMAT", "pdf")

	_, err := LoadConfig(t.TempDir())
	require.ErrorContains(t, err, "OutputFormat")
}

func TestSetupLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	SetupLogger(Config{LogLevel: "warn"})
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetupLogger(Config{LogLevel: "nonsense"})
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
