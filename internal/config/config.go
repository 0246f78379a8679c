package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port int    `mapstructure:"port"`
		Host string `mapstructure:"host"`
	} `mapstructure:"server"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Parser ParserConfig `mapstructure:"parser"`
	Lint   LintConfig   `mapstructure:"lint"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// ParserConfig selects a parser implementation by name and carries its
// pattern configuration as plain strings.
type ParserConfig struct {
	Name    string            `mapstructure:"name"`
	Header  string            `mapstructure:"header"`
	Footers map[string]string `mapstructure:"footers"`
}

type LintConfig struct {
	Enabled         bool     `mapstructure:"enabled"`
	Types           []string `mapstructure:"types"`
	Scopes          []string `mapstructure:"scopes"`
	MaxHeaderLength int      `mapstructure:"max_header_length"`
	RequireScope    bool     `mapstructure:"require_scope"`
	ForbiddenWords  []string `mapstructure:"forbidden_words"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DefaultHeaderPattern recognizes Conventional Commits 1.0.0 headers.
const DefaultHeaderPattern = `^(?P<type>[a-z]+)(?:\((?P<scope>\S+)\))?(?P<breaking_change_header>!)?: (?P<subject>.+)$`

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults describe a working
		// conventional-commit parser.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables
	viper.SetEnvPrefix("COMMITIZEN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("log.level", "INFO")

	viper.SetDefault("parser.name", "generic")
	viper.SetDefault("parser.header", DefaultHeaderPattern)
	viper.SetDefault("parser.footers", map[string]string{
		"breaking_change_footer": `^BREAKING CHANGE:.+$`,
	})

	viper.SetDefault("lint.enabled", true)
	viper.SetDefault("lint.types", []string{
		"feat", "fix", "docs", "style", "refactor", "perf",
		"test", "build", "ci", "chore", "revert",
	})
	viper.SetDefault("lint.scopes", []string{"*"})
	viper.SetDefault("lint.max_header_length", 72)

	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.ttl", 24*time.Hour)
	viper.SetDefault("cache.redis.addr", "localhost:6379")
	viper.SetDefault("cache.redis.db", 0)
}
