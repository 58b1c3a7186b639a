package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "creditcard", cfg.PaymentMethod)
	assert.True(t, decimal.RequireFromString("100").Equal(cfg.Amount))
	assert.False(t, cfg.StrictAmount)
	assert.Equal(t, "", cfg.ExportFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PATTERN_PAYMENT_METHOD", "paypal")
	t.Setenv("PATTERN_AMOUNT", " 1234.5 ")
	t.Setenv("PATTERN_STRICT_AMOUNT", "true")
	t.Setenv("PATTERN_EXPORT_FORMAT", "JSON")
	t.Setenv("PATTERN_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "paypal", cfg.PaymentMethod)
	assert.True(t, decimal.RequireFromString("1234.5").Equal(cfg.Amount))
	assert.True(t, cfg.StrictAmount)
	assert.Equal(t, "json", cfg.ExportFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidAmount(t *testing.T) {
	t.Setenv("PATTERN_AMOUNT", "ten dollars")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid amount "ten dollars"`)
}
