package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"conncheck/internal/domain"
)

type Config struct {
	Env     string       `mapstructure:"env"`
	Timeout int          `mapstructure:"timeout"`
	Domains []string     `mapstructure:"domains"`
	Verbose bool         `mapstructure:"verbose"`
	Quiet   bool         `mapstructure:"quiet"`
	Report  ReportConfig `mapstructure:"report"`
}

// ReportConfig configures the optional run-report sinks. Both are off
// unless the corresponding destination is set.
type ReportConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
	URL     string   `mapstructure:"url"`
	Name    string   `mapstructure:"name"`
	Token   string   `mapstructure:"token"`
}

// ErrHelp is returned by Load when -h/--help was requested; usage has
// already been printed.
var ErrHelp = pflag.ErrHelp

// Load merges, in increasing precedence: defaults, an optional YAML
// config file, environment variables, and CLI flags.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("conncheck", pflag.ContinueOnError)
	fs.StringArrayP("domains", "d", nil, "add custom domain to test (can be used multiple times)")
	fs.IntP("timeout", "t", 3, "connection timeout in seconds")
	fs.BoolP("verbose", "v", false, "show detailed connection attempts")
	fs.BoolP("quiet", "q", false, "show only failed connections")
	fs.String("env", "local", "log mode: local, dev or prod")
	configPath := fs.String("config", "", "path to config file")
	fs.StringSlice("report-brokers", nil, "kafka brokers for the run-report sink")
	fs.String("report-topic", "", "kafka topic for the run-report sink")
	fs.String("report-url", "", "backend URL for the run-report sink")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if *configPath != "" {
		v.SetConfigFile(*configPath)
	} else {
		v.SetConfigName("conncheck")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if *configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for key, flag := range map[string]string{
		"env":            "env",
		"timeout":        "timeout",
		"domains":        "domains",
		"verbose":        "verbose",
		"quiet":          "quiet",
		"report.brokers": "report-brokers",
		"report.topic":   "report-topic",
		"report.url":     "report-url",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("timeout", 3)
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)

	// Report sink defaults
	v.SetDefault("report.brokers", []string{})
	v.SetDefault("report.topic", "")
	v.SetDefault("report.url", "")
	v.SetDefault("report.name", "conncheck")
	v.SetDefault("report.token", "")
}

// Validate rejects configurations that must fail before any network
// activity happens.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.Verbose && c.Quiet {
		return errors.New("cannot use both --verbose and --quiet")
	}
	return nil
}

// CheckDomains returns the full ordered list to check: the default
// domains followed by any user-supplied ones, duplicates kept.
func (c *Config) CheckDomains() []string {
	domains := make([]string, 0, len(domain.DefaultDomains)+len(c.Domains))
	domains = append(domains, domain.DefaultDomains...)
	domains = append(domains, c.Domains...)
	return domains
}

func (c *Config) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// KafkaReportEnabled reports whether the Kafka sink is configured.
func (c *Config) KafkaReportEnabled() bool {
	return len(c.Report.Brokers) > 0 && c.Report.Topic != ""
}

// BackendReportEnabled reports whether the HTTP sink is configured.
func (c *Config) BackendReportEnabled() bool {
	return c.Report.URL != ""
}
