package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Paths    PathsConfig  `mapstructure:"paths"`
	Synth    SynthConfig  `mapstructure:"synth"`
	Server   ServerConfig `mapstructure:"server"`
}

type PathsConfig struct {
	LetterBank string `mapstructure:"letter_bank"`
}

type SynthConfig struct {
	Bank       string `mapstructure:"bank"`
	MaxLetters int    `mapstructure:"max_letters"`
	SampleRate int    `mapstructure:"sample_rate"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	Workers         int    `mapstructure:"workers"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
	RequestTimeout  int    `mapstructure:"request_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps each config key to the command-line flag that sets it.
var flagKeys = map[string]string{
	"log_level":               "log-level",
	"paths.letter_bank":       "paths-letter-bank",
	"synth.bank":              "bank",
	"synth.max_letters":       "synth-max-letters",
	"synth.sample_rate":       "synth-sample-rate",
	"server.listen_addr":      "server-listen-addr",
	"server.workers":          "workers",
	"server.max_text_bytes":   "max-text-bytes",
	"server.request_timeout":  "request-timeout",
	"server.shutdown_timeout": "shutdown-timeout",
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Paths: PathsConfig{
			LetterBank: "",
		},
		Synth: SynthConfig{
			Bank:       BankTone,
			MaxLetters: 32,
			SampleRate: 22050,
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			Workers:         2,
			MaxTextBytes:    4096,
			RequestTimeout:  30,
			ShutdownTimeout: 30,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level: debug|info|warn|error")
	fs.String("paths-letter-bank", defaults.Paths.LetterBank, "Path to the letter recording manifest (JSON)")
	fs.String("bank", defaults.Synth.Bank, "Letter bank: tone|manifest")
	fs.Int("synth-max-letters", defaults.Synth.MaxLetters, "Maximum characters per synthesis call")
	fs.Int("synth-sample-rate", defaults.Synth.SampleRate, "Output sample rate in Hz")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("workers", defaults.Server.Workers, "Maximum concurrent synthesis requests")
	fs.Int("max-text-bytes", defaults.Server.MaxTextBytes, "Maximum request text size in bytes")
	fs.Int("request-timeout", defaults.Server.RequestTimeout, "Per-request timeout in seconds")
	fs.Int("shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown timeout in seconds")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("FRY")
	replacer := strings.NewReplacer("-", "_", ".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("fry")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	bank, err := NormalizeBank(cfg.Synth.Bank)
	if err != nil {
		return Config{}, err
	}
	cfg.Synth.Bank = bank

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("paths.letter_bank", c.Paths.LetterBank)
	v.SetDefault("synth.bank", c.Synth.Bank)
	v.SetDefault("synth.max_letters", c.Synth.MaxLetters)
	v.SetDefault("synth.sample_rate", c.Synth.SampleRate)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.workers", c.Server.Workers)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
}

// bindFlags binds every registered config flag under its dotted key, so that
// an unset flag still lets env and config file values through.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}
