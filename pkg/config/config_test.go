package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador-zatca/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "facturador-zatca", cfg.App.Name)
	assert.Equal(t, "0.15", cfg.ZATCA.VATRate.String())
	assert.Equal(t, "Riyals", cfg.ZATCA.CurrencyEN)
	assert.Equal(t, "ريال", cfg.ZATCA.CurrencyAR)
	assert.Equal(t, 128, cfg.ZATCA.QRSize)
	assert.Equal(t, config.ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ZATCA_VAT_RATE", "0.05")
	t.Setenv("ZATCA_QR_SIZE", "256")
	t.Setenv("AI_PROVIDER", "Anthropic")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.05", cfg.ZATCA.VATRate.String())
	assert.Equal(t, 256, cfg.ZATCA.QRSize)
	assert.Equal(t, config.ProviderAnthropic, cfg.AI.Provider)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
}

func TestLoad_ValoresInvalidos(t *testing.T) {
	cases := map[string]string{
		"ZATCA_VAT_RATE": "1.5",
		"ZATCA_QR_SIZE":  "10",
		"AI_PROVIDER":    "openai",
		"HTTP_PORT":      "70000",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}

	t.Run("ZATCA_VAT_RATE no numérico", func(t *testing.T) {
		t.Setenv("ZATCA_VAT_RATE", "quince")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
