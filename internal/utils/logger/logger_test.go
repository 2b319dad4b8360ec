package logger

import (
	"context"
	"testing"

	"uptime/internal/app/server/config"
	"uptime/internal/utils/logger/slogpretty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name           string
		env            string
		expectedLevel  slog.Level
		expectedPretty bool
	}{
		{
			name:           "local environment",
			env:            config.EnvLocal,
			expectedLevel:  slog.LevelDebug,
			expectedPretty: true,
		},
		{
			name:           "dev environment",
			env:            config.EnvDev,
			expectedLevel:  slog.LevelDebug,
			expectedPretty: false,
		},
		{
			name:           "prod environment",
			env:            config.EnvProd,
			expectedLevel:  slog.LevelInfo,
			expectedPretty: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.expectedLevel <= slog.LevelInfo, logger.Enabled(ctx, slog.LevelInfo))
			_, pretty := logger.Handler().(*slogpretty.PrettyHandler)
			assert.Equal(t, tt.expectedPretty, pretty)
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog(slog.LevelWarn)
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
}

func TestNewLoggerLevels(t *testing.T) {
	ctx := context.Background()

	// prod: INFO и выше
	prodLogger := New(config.EnvProd)
	assert.False(t, prodLogger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, prodLogger.Enabled(ctx, slog.LevelInfo))

	// dev: DEBUG и выше
	devLogger := New(config.EnvDev)
	assert.True(t, devLogger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, devLogger.Enabled(ctx, slog.LevelInfo))

	// local: DEBUG, цветной вывод
	localLogger := New(config.EnvLocal)
	assert.True(t, localLogger.Enabled(ctx, slog.LevelDebug))
}

func TestNewWithLevel(t *testing.T) {
	ctx := context.Background()

	prodDebug := NewWithLevel(config.EnvProd, "debug")
	assert.True(t, prodDebug.Enabled(ctx, slog.LevelDebug))

	devWarn := NewWithLevel(config.EnvDev, "WARN")
	assert.False(t, devWarn.Enabled(ctx, slog.LevelInfo))
	assert.True(t, devWarn.Enabled(ctx, slog.LevelWarn))

	garbage := NewWithLevel(config.EnvProd, "loud")
	assert.False(t, garbage.Enabled(ctx, slog.LevelDebug))
	assert.True(t, garbage.Enabled(ctx, slog.LevelInfo))
}
