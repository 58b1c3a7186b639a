package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, e.g. PATTERN_AMOUNT.
const EnvPrefix = "PATTERN"

// Config is shared by the demo programs. With no environment set it reproduces the
// fixed demo inputs.
type Config struct {
	PaymentMethod string          `mapstructure:"payment_method"`
	Amount        decimal.Decimal `mapstructure:"-"`
	StrictAmount  bool            `mapstructure:"strict_amount"`
	ExportFormat  string          `mapstructure:"export_format"`
	LogLevel      string          `mapstructure:"log_level"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(v.GetString("amount")))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount %q", v.GetString("amount"))
	}
	cfg.Amount = amount
	cfg.ExportFormat = strings.ToLower(strings.TrimSpace(cfg.ExportFormat))
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("payment_method", "creditcard")
	v.SetDefault("amount", "100.00")
	v.SetDefault("strict_amount", false)
	v.SetDefault("export_format", "")
	v.SetDefault("log_level", "warn")
}
