package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"impostor/internal/config"
)

// flagKeys maps command line flags to configuration keys
var flagKeys = map[string]string{
	"host":          "server.host",
	"port":          "server.port",
	"env":           "server.env",
	"public-url":    "server.public_url",
	"variant":       "game.variant",
	"storage":       "storage.driver",
	"dsn":           "storage.dsn",
	"log-level":     "logging.level",
	"log-format":    "logging.format",
	"reveal-delay":  "game.reveal_delay",
	"avoid-repeats": "game.avoid_repeat_words",
}

// newCmd builds the root command. run receives the validated configuration.
func newCmd(run func(context.Context, *config.Config) error) *cobra.Command {
	v := config.NewViper()

	var configFile, envFile string

	cmd := &cobra.Command{
		Use:           "impostor",
		Short:         "Pass-the-device party game: find the player who does not know the word.",
		Args:          cobra.ExactArgs(0),
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, envFile, configFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&configFile, "config", "c", "", "path to a config file (yaml, toml or json)")
	fs.StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")
	fs.StringP("host", "b", "0.0.0.0", "address to bind to (env: IMPOSTOR_SERVER_HOST)")
	fs.IntP("port", "p", 8080, "port to listen on (env: IMPOSTOR_SERVER_PORT)")
	fs.String("env", "development", "development or production (env: IMPOSTOR_SERVER_ENV)")
	fs.String("public-url", "", "base URL for join links (env: IMPOSTOR_SERVER_PUBLIC_URL)")
	fs.String("variant", "positional", "table rules: positional or roster (env: IMPOSTOR_GAME_VARIANT)")
	fs.Duration("reveal-delay", 0, "delay before the next player can take the device (env: IMPOSTOR_GAME_REVEAL_DELAY)")
	fs.Bool("avoid-repeats", false, "skip words already played at the table (env: IMPOSTOR_GAME_AVOID_REPEAT_WORDS)")
	fs.String("storage", "memory", "roster storage: memory or sqlite (env: IMPOSTOR_STORAGE_DRIVER)")
	fs.String("dsn", "", "sqlite data source name (env: IMPOSTOR_STORAGE_DSN)")
	fs.String("log-level", "info", "debug, info, warn or error (env: IMPOSTOR_LOGGING_LEVEL)")
	fs.String("log-format", "text", "text or json (env: IMPOSTOR_LOGGING_FORMAT)")

	fs.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("impostor v{{.Version}}\n")

	return cmd
}
