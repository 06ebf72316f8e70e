package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLoggerConfigFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want LoggerConfig
	}{
		{
			name: "defaults",
			env:  map[string]string{"LOG_LEVEL": "", "LOG_FORMAT": "", "LOG_OUTPUT": ""},
			want: LoggerConfig{Level: "info", Format: "json", Output: "stdout"},
		},
		{
			name: "log file for the dojo laptop",
			env:  map[string]string{"LOG_LEVEL": "debug", "LOG_FORMAT": "console", "LOG_OUTPUT": "/var/log/dojo/server.log"},
			want: LoggerConfig{Level: "debug", Format: "console", Output: "/var/log/dojo/server.log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, LoadLoggerConfigFromEnv())
		})
	}
}

func TestLoad_LoggerBlockOverlaysEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "stderr")

	logFile := filepath.Join(t.TempDir(), "dojo.log")
	path := filepath.Join(t.TempDir(), "dojo.yaml")
	content := "logger:\n  level: debug\n  output: " + logFile + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, LoggerConfig{Level: "debug", Format: "json", Output: logFile}, cfg.Logger,
		"keys absent from the file keep their env value")
	assert.NoError(t, cfg.Logger.Validate())
	assert.False(t, cfg.Logger.IsProduction())
}

func TestLoggerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  LoggerConfig
		wantErr string
	}{
		{name: "stdout", config: LoggerConfig{Level: "info", Format: "json", Output: "stdout"}},
		{name: "stderr console", config: LoggerConfig{Level: "warn", Format: "console", Output: "stderr"}},
		{name: "file path output", config: LoggerConfig{Level: "error", Format: "json", Output: "data/logs/server.log"}},
		{name: "empty output", config: LoggerConfig{Level: "debug", Format: "json"}},
		{name: "unknown level", config: LoggerConfig{Level: "verbose", Format: "json"}, wantErr: "invalid log level"},
		{name: "upper case level", config: LoggerConfig{Level: "INFO", Format: "json"}, wantErr: "invalid log level"},
		{name: "unknown format", config: LoggerConfig{Level: "info", Format: "logfmt"}, wantErr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoggerConfig_IsProduction(t *testing.T) {
	tests := []struct {
		config LoggerConfig
		want   bool
	}{
		{config: LoggerConfig{Level: "info", Format: "json"}, want: true},
		{config: LoggerConfig{Level: "error", Format: "json", Output: "server.log"}, want: true},
		{config: LoggerConfig{Level: "debug", Format: "json"}, want: false},
		{config: LoggerConfig{Level: "info", Format: "console"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.config.Level+"/"+tt.config.Format, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.IsProduction())
		})
	}
}
