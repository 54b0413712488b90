package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// InsecureDefaultSecretKey — дефолт для локальной разработки. В продакшене
// SECRET_KEY обязан быть переопределён.
const InsecureDefaultSecretKey = "your-secret-key-here"

type Config struct {
	App       App
	HTTP      HTTP
	Probe     Probe
	Metrics   Metrics
	Documents Documents
	Pricing   Pricing
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"kp-generator"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080" validate:"required"`
	SecretKey       string        `env:"SECRET_KEY" envDefault:"your-secret-key-here" validate:"required"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen  int           `env:"LOG_FIELD_MAX_LEN" envDefault:"2048" validate:"gt=0"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8091" validate:"required"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":8092" validate:"required"`
}

// Documents описывает расположение шаблонов. Плейсхолдеры в Word-шаблоне —
// одинарные фигурные скобки: {company}, {final_price} и т.д.
type Documents struct {
	TemplatesDir  string `env:"TEMPLATES_DIR" envDefault:"templates_docs" validate:"required"`
	ExcelTemplate string `env:"EXCEL_TEMPLATE" envDefault:"template.xlsx" validate:"required"`
	WordTemplate  string `env:"WORD_TEMPLATE" envDefault:"template.docx" validate:"required"`
	WebDir        string `env:"WEB_TEMPLATES_DIR" envDefault:"web/templates" validate:"required"`
	StaticDir     string `env:"WEB_STATIC_DIR" envDefault:"web/static" validate:"required"`
}

func (d Documents) ExcelPath() string {
	return filepath.Join(d.TemplatesDir, d.ExcelTemplate)
}

func (d Documents) WordPath() string {
	return filepath.Join(d.TemplatesDir, d.WordTemplate)
}

type Pricing struct {
	// Два поддерживаемых режима расчёта; см. internal/domain/service/pricing.
	Mode string `env:"PRICING_MODE" envDefault:"weight_proportional" validate:"oneof=quantity_flat weight_proportional"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("validate.Struct: %w", err)
	}

	return config, nil
}
