package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"impostor/internal/domain"
)

// EnvPrefix is prepended to every environment variable, e.g. IMPOSTOR_SERVER_PORT
const EnvPrefix = "IMPOSTOR"

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Storage StorageConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port      int
	Host      string
	Env       string // "development" or "production"
	PublicURL string // base of join links; derived from the request when empty
}

// GameConfig holds the table rules. Variant picks a preset and any knob
// set explicitly overrides it.
type GameConfig struct {
	Variant           string
	MinPlayers        int
	MaxPlayers        int
	ResetClearsRoster bool
	Voting            bool
	AllVotersAgree    bool
	RevealDelay       time.Duration
	AvoidRepeatWords  bool
	TableCodeLength   int
}

// StorageConfig holds roster persistence configuration
type StorageConfig struct {
	Driver string // "memory" or "sqlite"
	DSN    string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// NewViper returns a viper instance with defaults and environment binding
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.public_url", "")

	v.SetDefault("game.variant", string(domain.VariantPositional))
	v.SetDefault("game.table_code_length", 6)

	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.dsn", "file:impostor.db?_busy_timeout=5000")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	return v
}

// Load reads an optional .env file and an optional config file into v and
// returns the resolved configuration
func Load(v *viper.Viper, envFile, configFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	preset, err := domain.SettingsFor(v.GetString("game.variant"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:      v.GetInt("server.port"),
			Host:      v.GetString("server.host"),
			Env:       v.GetString("server.env"),
			PublicURL: strings.TrimRight(v.GetString("server.public_url"), "/"),
		},
		Game: GameConfig{
			Variant:           string(preset.Variant),
			MinPlayers:        preset.MinPlayers,
			MaxPlayers:        preset.MaxPlayers,
			ResetClearsRoster: preset.ResetClearsRoster,
			Voting:            preset.Voting,
			AllVotersAgree:    preset.AllVotersAgree,
			RevealDelay:       preset.RevealDelay,
			AvoidRepeatWords:  preset.AvoidRepeatWords,
			TableCodeLength:   v.GetInt("game.table_code_length"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("storage.driver")),
			DSN:    v.GetString("storage.dsn"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
	}

	// knobs have no defaults so IsSet only sees explicit values
	if v.IsSet("game.min_players") {
		cfg.Game.MinPlayers = v.GetInt("game.min_players")
	}
	if v.IsSet("game.max_players") {
		cfg.Game.MaxPlayers = v.GetInt("game.max_players")
	}
	if v.IsSet("game.reset_clears_roster") {
		cfg.Game.ResetClearsRoster = v.GetBool("game.reset_clears_roster")
	}
	if v.IsSet("game.voting") {
		cfg.Game.Voting = v.GetBool("game.voting")
	}
	if v.IsSet("game.all_voters_agree") {
		cfg.Game.AllVotersAgree = v.GetBool("game.all_voters_agree")
	}
	if v.IsSet("game.reveal_delay") {
		cfg.Game.RevealDelay = v.GetDuration("game.reveal_delay")
	}
	if v.IsSet("game.avoid_repeat_words") {
		cfg.Game.AvoidRepeatWords = v.GetBool("game.avoid_repeat_words")
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Server.Port)
	}
	if _, err := domain.SettingsFor(c.Game.Variant); err != nil {
		return err
	}
	if c.Game.MinPlayers < 1 {
		return fmt.Errorf("min players must be at least 1: %d", c.Game.MinPlayers)
	}
	if c.Game.MaxPlayers != 0 && c.Game.MaxPlayers < c.Game.MinPlayers {
		return fmt.Errorf("max players (%d) is below min players (%d)", c.Game.MaxPlayers, c.Game.MinPlayers)
	}
	if c.Game.RevealDelay < 0 {
		return errors.New("reveal delay cannot be negative")
	}
	switch c.Storage.Driver {
	case "memory":
	case "sqlite":
		if c.Storage.DSN == "" {
			return errors.New("sqlite storage needs a dsn")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// Settings returns the table rules for new tables
func (c *Config) Settings() domain.Settings {
	return domain.Settings{
		Variant:           domain.Variant(c.Game.Variant),
		MinPlayers:        c.Game.MinPlayers,
		MaxPlayers:        c.Game.MaxPlayers,
		ResetClearsRoster: c.Game.ResetClearsRoster,
		Voting:            c.Game.Voting,
		AllVotersAgree:    c.Game.AllVotersAgree,
		RevealDelay:       c.Game.RevealDelay,
		AvoidRepeatWords:  c.Game.AvoidRepeatWords,
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
