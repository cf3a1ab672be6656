package logger

import (
	"medifax-client/internal/app/config"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	t.Run("Level From Config", func(t *testing.T) {
		driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}
		internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

		logger, err := NewZapLogger(driverConfig, internalConfig)

		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.InfoLevel))
		assert.True(t, logger.Core().Enabled(zap.WarnLevel))
	})

	t.Run("Unknown Level Falls Back To Info", func(t *testing.T) {
		driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "verbose"}}
		internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

		logger, err := NewZapLogger(driverConfig, internalConfig)

		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.DebugLevel))
		assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	})

	t.Run("Production Writes To Files", func(t *testing.T) {
		dir := t.TempDir()
		driverConfig := &config.DriverConfig{Logger: config.Logger{
			Level:               "info",
			OutputFileName:      filepath.Join(dir, "logger.log"),
			OutputErrorFileName: filepath.Join(dir, "logger_error.log"),
		}}
		internalConfig := &config.InternalConfig{App: config.App{Env: "production"}}

		logger, err := NewZapLogger(driverConfig, internalConfig)

		require.NoError(t, err)
		logger.Info("written")
		assert.FileExists(t, filepath.Join(dir, "logger.log"))
	})
}
