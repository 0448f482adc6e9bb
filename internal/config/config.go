package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fintrack-dev/fintrack/internal/ledger"
)

// FileName is the default config file name.
const FileName = "fintrack.yaml"

// EnvPrefix prefixes environment overrides, e.g. FINTRACK_BUDGET_MONTHLY.
const EnvPrefix = "FINTRACK"

// Config represents the top-level fintrack.yaml configuration.
type Config struct {
	Ledger     LedgerConfig `yaml:"ledger" mapstructure:"ledger"`
	Currency   string       `yaml:"currency" mapstructure:"currency"`
	Budget     BudgetConfig `yaml:"budget" mapstructure:"budget"`
	Categories []string     `yaml:"categories" mapstructure:"categories"`
	Log        LogConfig    `yaml:"log" mapstructure:"log"`
}

// LedgerConfig locates the transaction file.
type LedgerConfig struct {
	File string `yaml:"file" mapstructure:"file"` // relative to the config file's directory
}

// BudgetConfig holds the monthly expense budget.
type BudgetConfig struct {
	Monthly      decimal.Decimal `yaml:"monthly" mapstructure:"monthly"` // 0 = no budget
	ProgressMode string          `yaml:"progress_mode" mapstructure:"progress_mode"`
}

// MarshalYAML writes the budget as a plain number rather than a quoted string.
func (b BudgetConfig) MarshalYAML() (any, error) {
	return struct {
		Monthly      *yaml.Node `yaml:"monthly"`
		ProgressMode string     `yaml:"progress_mode"`
	}{
		Monthly:      &yaml.Node{Kind: yaml.ScalarNode, Value: b.Monthly.String()},
		ProgressMode: b.ProgressMode,
	}, nil
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Pretty bool   `yaml:"pretty" mapstructure:"pretty"`
}

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			File: "transactions.csv",
		},
		Currency: money.USD,
		Budget: BudgetConfig{
			Monthly:      decimal.Zero,
			ProgressMode: string(ledger.ProgressLiteral),
		},
		Categories: []string{"Rent", "Food", "Others"},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Load reads a fintrack.yaml file from disk. Values may be overridden by
// FINTRACK_* environment variables; keys missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return decode(v)
}

// LoadOrDefault is Load, falling back to Default (still subject to
// environment overrides) when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return decode(newViper())
	}
	return cfg, err
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		decimalHook,
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalHook decodes YAML numbers and env strings into decimal.Decimal.
func decimalHook(from, to reflect.Type, data any) (any, error) {
	if to != decimalType || from == decimalType {
		return data, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(fmt.Sprint(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing amount %v: %w", data, err)
	}
	return d, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("ledger.file", def.Ledger.File)
	v.SetDefault("currency", def.Currency)
	v.SetDefault("budget.monthly", def.Budget.Monthly.String())
	v.SetDefault("budget.progress_mode", def.Budget.ProgressMode)
	v.SetDefault("categories", def.Categories)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.pretty", def.Log.Pretty)
	return v
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Ledger.File) == "" {
		errs = append(errs, "ledger.file must not be empty")
	}
	if money.GetCurrency(c.Currency) == nil {
		errs = append(errs, fmt.Sprintf("unknown currency %q", c.Currency))
	}
	if c.Budget.Monthly.IsNegative() {
		errs = append(errs, fmt.Sprintf("budget.monthly must not be negative, got %s", c.Budget.Monthly))
	}
	if _, err := ledger.ParseProgressMode(c.Budget.ProgressMode); err != nil {
		errs = append(errs, "budget.progress_mode: "+err.Error())
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// LedgerPath resolves the ledger file against the directory holding the
// config file.
func (c *Config) LedgerPath(configPath string) string {
	if filepath.IsAbs(c.Ledger.File) {
		return c.Ledger.File
	}
	return filepath.Join(filepath.Dir(configPath), c.Ledger.File)
}

// HasCategory reports whether name is one of the configured categories.
// An empty list accepts any name.
func (c *Config) HasCategory(name string) bool {
	return len(c.Categories) == 0 || slices.Contains(c.Categories, name)
}
