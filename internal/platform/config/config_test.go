package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Environment_BaseURL(t *testing.T) {
	assert.Equal(t, "https://core.newebpay.com", Production.BaseURL())
	assert.Equal(t, "https://ccore.newebpay.com", Sandbox.BaseURL())
	assert.Equal(t, "https://core.newebpay.com", Environment("").BaseURL())
}

func Test_FromEnv_Defaults(t *testing.T) {
	t.Setenv("NEWEBPAY_ADDR", "")
	t.Setenv("NEWEBPAY_SANDBOX", "")

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, Production, cfg.Environment)
}

func Test_FromEnv_Overrides(t *testing.T) {
	t.Setenv("NEWEBPAY_ADDR", ":9000")
	t.Setenv("NEWEBPAY_SANDBOX", "true")
	t.Setenv("NEWEBPAY_MERCHANT_ID", "MS12345678")
	t.Setenv("NEWEBPAY_HASH_KEY", "12345678901234567890123456789012")
	t.Setenv("NEWEBPAY_HASH_IV", "1234567890123456")

	cfg := FromEnv()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, Sandbox, cfg.Environment)
	assert.Equal(t, "MS12345678", cfg.MerchantID)
	assert.Equal(t, "12345678901234567890123456789012", cfg.HashKey)
	assert.Equal(t, "1234567890123456", cfg.HashIV)
}
