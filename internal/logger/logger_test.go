package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHelpersWriteToLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = prev })

	Info("ingredient created", zap.String("name", "Flour"))
	Warn("redis unavailable")
	Error("delete failed", zap.Error(assert.AnError))

	entries := logs.All()
	assert.Len(t, entries, 3)
	assert.Equal(t, "ingredient created", entries[0].Message)
	assert.Equal(t, "Flour", entries[0].ContextMap()["name"])
	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
}

func TestInit(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	assert.NoError(t, Init("development"))
	assert.NotNil(t, Logger)
	assert.NoError(t, Init("production"))
}
