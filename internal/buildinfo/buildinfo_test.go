package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestNewInfoDefaults проверяет подстановку "N/A" для пустых значений
func TestNewInfoDefaults(t *testing.T) {
	info := NewInfo("", "", "")

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}

func TestString(t *testing.T) {
	info := NewInfo("v1.0.0", "2024-01-01", "abc123")
	assert.Equal(t, "Version: v1.0.0, Date: 2024-01-01, Commit: abc123", info.String())
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("Build info", NewInfo("v1.0.0", "", "abc123").Fields()...)

	entry := logs.All()[0]
	assert.Equal(t, map[string]interface{}{
		"version":    "v1.0.0",
		"build_date": "N/A",
		"commit":     "abc123",
	}, entry.ContextMap())
}
