package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"kp_generator/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(config.InsecureDefaultSecretKey, cfg.HTTP.SecretKey)
	rq.Equal("weight_proportional", cfg.Pricing.Mode)

	rq.Equal(filepath.Join("templates_docs", "template.xlsx"), cfg.Documents.ExcelPath())
	rq.Equal(filepath.Join("templates_docs", "template.docx"), cfg.Documents.WordPath())
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("SECRET_KEY", "prod-secret")
	t.Setenv("PRICING_MODE", "quantity_flat")
	t.Setenv("TEMPLATES_DIR", "/srv/kp/templates")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("prod-secret", cfg.HTTP.SecretKey)
	rq.Equal("quantity_flat", cfg.Pricing.Mode)
	rq.Equal("/srv/kp/templates/template.xlsx", cfg.Documents.ExcelPath())
}

func TestLoadRejectsUnknownPricingMode(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PRICING_MODE", "margin_only")

	_, err := config.Load()
	rq.Error(err)
}
