package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func()
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults applied",
			setup: func() {
				viper.Reset()
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 4, cfg.Analyze.Workers)
				assert.Equal(t, "thread", cfg.Analyze.Term)
				assert.Equal(t, int64(DefaultMaxInputBytes), cfg.Analyze.MaxInputBytes)
				assert.Equal(t, "text", cfg.Output.Format)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "explicit values",
			setup: func() {
				viper.Reset()
				viper.Set("analyze.workers", 8)
				viper.Set("analyze.term", "error")
				viper.Set("output.format", "json")
				viper.Set("logging.level", "debug")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8, cfg.Analyze.Workers)
				assert.Equal(t, "error", cfg.Analyze.Term)
				assert.Equal(t, "json", cfg.Output.Format)
				assert.Equal(t, "debug", cfg.Logging.Level)
			},
		},
		{
			name: "zero workers rejected",
			setup: func() {
				viper.Reset()
				viper.Set("analyze.workers", 0)
			},
			expectError: true,
		},
		{
			name: "negative workers rejected",
			setup: func() {
				viper.Reset()
				viper.Set("analyze.workers", -2)
			},
			expectError: true,
		},
		{
			name: "empty term rejected",
			setup: func() {
				viper.Reset()
				viper.Set("analyze.term", "")
			},
			expectError: true,
		},
		{
			name: "unknown format rejected",
			setup: func() {
				viper.Reset()
				viper.Set("output.format", "xml")
			},
			expectError: true,
		},
		{
			name: "unknown log level rejected",
			setup: func() {
				viper.Reset()
				viper.Set("logging.level", "verbose")
			},
			expectError: true,
		},
		{
			name: "negative debounce rejected",
			setup: func() {
				viper.Reset()
				viper.Set("watch.debounce_millis", -1)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			cfg, err := Load()

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoad_WatchDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Watch.DebounceMillis)
}
