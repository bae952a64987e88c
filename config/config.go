package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	ac "github.com/cordialsys/addrconv"
	"github.com/cordialsys/addrconv/chain/tron"
	"github.com/cordialsys/addrconv/config/constants"
	"github.com/cordialsys/addrconv/convert"
	converrors "github.com/cordialsys/addrconv/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level  string `yaml:"level,omitempty" mapstructure:"level"`
	Format string `yaml:"format,omitempty" mapstructure:"format"`
}

type Config struct {
	// base58 or hex, used when no format is given to evm -> tron conversions
	DefaultFormat string `yaml:"default_format,omitempty" mapstructure:"default_format"`
	// omit the 0x prefix on tron -> evm conversions
	NoPrefix bool `yaml:"no_prefix,omitempty" mapstructure:"no_prefix"`
	// EIP-55 mixed case on tron -> evm conversions
	Checksum bool `yaml:"checksum,omitempty" mapstructure:"checksum"`
	// btcutil or mr-tron
	Base58Codec string    `yaml:"base58_codec,omitempty" mapstructure:"base58_codec"`
	Log         LogConfig `yaml:"log,omitempty" mapstructure:"log"`
}

var LogLevels = []string{"trace", "debug", "info", "warn", "error"}
var LogFormats = []string{"json", "text", "color-text"}

func Defaults() *Config {
	return &Config{
		DefaultFormat: string(ac.DefaultFormat),
		NoPrefix:      false,
		Checksum:      false,
		Base58Codec:   tron.CodecBtcutil,
		Log: LogConfig{
			Level:  "info",
			Format: "color-text",
		},
	}
}

func getViper() *viper.Viper {
	// new instance of viper to avoid conflicts with the global one
	v := viper.New()
	// addrconv.yaml, addrconv.toml, addrconv.json, ...
	v.SetConfigName(constants.ConfigName)

	// If the config location env is set, use that.
	if path := os.Getenv(constants.ConfigEnv); path != "" {
		v.SetConfigFile(path)
	}

	// otherwise, prioritize current path or parent
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	// Lastly, check home dir
	v.AddConfigPath(constants.DefaultHome)

	// ADDRCONV_DEFAULT_FORMAT, ADDRCONV_LOG_LEVEL, ...
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Defaults()
	v.SetDefault("default_format", defaults.DefaultFormat)
	v.SetDefault("no_prefix", defaults.NoPrefix)
	v.SetDefault("checksum", defaults.Checksum)
	v.SetDefault("base58_codec", defaults.Base58Codec)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	return v
}

// Load configuration.
// 1. An explicit path wins, then ADDRCONV_CONFIG, then ./addrconv.*, ../addrconv.*, ~/.addrconv/addrconv.*
// 2. A missing config file is not an error, the defaults are used.
// 3. ADDRCONV_* environment variables override both.
func Load(path string) (*Config, error) {
	v := getViper()
	if path != "" {
		v.SetConfigFile(path)
	}
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("fatal error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if _, err := ac.ParseOutputFormat(cfg.DefaultFormat); err != nil {
		return converrors.InvalidArgumentf("invalid default_format: %v", err)
	}
	if _, err := tron.CodecByName(cfg.Base58Codec); err != nil {
		return converrors.InvalidArgumentf("invalid base58_codec: %v", err)
	}
	if cfg.Log.Level != "" && !contains(LogLevels, strings.ToLower(cfg.Log.Level)) {
		return converrors.InvalidArgumentf("invalid log level '%s', options: %v", cfg.Log.Level, LogLevels)
	}
	if cfg.Log.Format != "" && !contains(LogFormats, strings.ToLower(cfg.Log.Format)) {
		return converrors.InvalidArgumentf("invalid log format '%s', options: %v", cfg.Log.Format, LogFormats)
	}
	return nil
}

func (cfg *Config) OutputFormat() ac.OutputFormat {
	format, err := ac.ParseOutputFormat(cfg.DefaultFormat)
	if err != nil {
		return ac.DefaultFormat
	}
	return format
}

// ConverterOptions translates the configuration into converter options.
func (cfg *Config) ConverterOptions() []convert.Option {
	options := []convert.Option{
		convert.OptionChecksum(cfg.Checksum),
	}
	if codec, err := tron.CodecByName(cfg.Base58Codec); err == nil {
		options = append(options, convert.OptionCodec(codec))
	}
	return options
}

func (cfg *Config) String() string {
	bz, err := yaml.Marshal(cfg)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
