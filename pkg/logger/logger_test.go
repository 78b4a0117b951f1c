package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/pkg/config"
)

func TestNewHonorsLevel(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "production"},
		Log:    config.LogConfig{Level: "warn"},
	}

	logger, err := New(cfg)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "loud"}}

	_, err := New(cfg)
	assert.Error(t, err)
}
