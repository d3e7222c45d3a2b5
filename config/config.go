package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/paologalligit/showtime/constant"
	"github.com/paologalligit/showtime/persistence"
	"github.com/spf13/viper"
)

var ErrDuplicateTheatre = errors.New("duplicate theatre")

type Config struct {
	DataDir     string          `mapstructure:"data_dir" validate:"required_if=Store file"`
	Store       string          `mapstructure:"store" validate:"oneof=file postgres redis"`
	DatabaseURL string          `mapstructure:"database_url" validate:"required_if=Store postgres"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Log         LogConfig       `mapstructure:"log"`
	TicketQR    bool            `mapstructure:"ticket_qr"`
	Theatres    []TheatreConfig `mapstructure:"theatres" validate:"required,min=1,dive"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
	Prefix   string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

type TheatreConfig struct {
	Movie string `mapstructure:"movie" validate:"required"`
	Seats int    `mapstructure:"seats" validate:"gte=1"`
}

// Load reads .env, then the YAML config (configFile, or showtime.yaml in the
// working directory when empty), then SHOWTIME_* environment variables.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load() // Load .env if present, ignore error

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(constant.CONFIG_NAME)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(constant.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// plain DATABASE_URL keeps working for existing .env files
	_ = v.BindEnv("database_url", constant.ENV_PREFIX+"_DATABASE_URL", "DATABASE_URL")

	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", constant.DEFAULT_DATA_DIR)
	v.SetDefault("store", constant.DEFAULT_STORE)
	v.SetDefault("database_url", "")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", constant.REDIS_KEY_PREFIX)
	v.SetDefault("log.level", constant.DEFAULT_LOG_LEVEL)
	v.SetDefault("log.format", constant.DEFAULT_LOG_FORMAT)
	v.SetDefault("ticket_qr", false)

	theatres := make([]map[string]any, 0, len(constant.DefaultLineup))
	for _, seed := range constant.DefaultLineup {
		theatres = append(theatres, map[string]any{"movie": seed.Movie, "seats": seed.Seats})
	}
	v.SetDefault("theatres", theatres)
}

// Validate checks the struct tags and that no two theatres share an artifact.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	seen := make(map[string]string, len(c.Theatres))
	for _, t := range c.Theatres {
		key := persistence.ArtifactKey(t.Movie)
		if key == "" {
			return fmt.Errorf("theatre %q: %w", t.Movie, persistence.ErrEmptyArtifactKey)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q and %q both map to %q", ErrDuplicateTheatre, other, t.Movie, key)
		}
		seen[key] = t.Movie
	}
	return nil
}

func (c *Config) Seeds() []constant.TheatreSeed {
	seeds := make([]constant.TheatreSeed, 0, len(c.Theatres))
	for _, t := range c.Theatres {
		seeds = append(seeds, constant.TheatreSeed{Movie: t.Movie, Seats: t.Seats})
	}
	return seeds
}

func (c *Config) StoreOptions() *persistence.StoreOptions {
	return &persistence.StoreOptions{
		Backend:     c.Store,
		DataDir:     c.DataDir,
		DatabaseURL: c.DatabaseURL,
		Redis: persistence.RedisOptions{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		},
	}
}
