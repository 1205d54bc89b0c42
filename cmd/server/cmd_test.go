package main

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"regexp"
	"strings"
	"testing"
	"time"

	"impostor/internal/config"
)

func TestFlagsReachValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad port", []string{"--port", "0", "--env-file", ""}, "invalid port"},
		{"bad variant", []string{"--variant", "chaos", "--env-file", ""}, "unknown variant"},
		{"bad storage", []string{"--storage", "postgres", "--env-file", ""}, "unknown storage driver"},
		{"extra args", []string{"serve"}, "accepts 0 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newCmd(func(context.Context, *config.Config) error {
				t.Fatal("run called with an invalid configuration")
				return nil
			})
			cmd.SetArgs(tt.args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)

			err := cmd.Execute()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("want error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestUnsetFlagsKeepPresetAndDefaults(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantDelay     time.Duration
		wantDSN       string
		wantAvoid     bool
		wantMaxPlayer int
	}{
		{
			name:          "positional preset",
			args:          []string{"--port", "9000", "--env-file", ""},
			wantDelay:     time.Second,
			wantDSN:       "file:impostor.db?_busy_timeout=5000",
			wantMaxPlayer: 10,
		},
		{
			name:          "roster preset",
			args:          []string{"--variant", "roster", "--env-file", ""},
			wantDelay:     time.Second,
			wantDSN:       "file:impostor.db?_busy_timeout=5000",
			wantMaxPlayer: 20,
		},
		{
			name:          "explicit flags win",
			args:          []string{"--reveal-delay", "250ms", "--dsn", "file:other.db", "--avoid-repeats", "--env-file", ""},
			wantDelay:     250 * time.Millisecond,
			wantDSN:       "file:other.db",
			wantAvoid:     true,
			wantMaxPlayer: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *config.Config
			cmd := newCmd(func(_ context.Context, cfg *config.Config) error {
				got = cfg
				return nil
			})
			cmd.SetArgs(tt.args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if got == nil {
				t.Fatal("run was not called")
			}
			if got.Game.RevealDelay != tt.wantDelay {
				t.Errorf("reveal delay = %v, want %v", got.Game.RevealDelay, tt.wantDelay)
			}
			if got.Storage.DSN != tt.wantDSN {
				t.Errorf("dsn = %q, want %q", got.Storage.DSN, tt.wantDSN)
			}
			if got.Game.AvoidRepeatWords != tt.wantAvoid {
				t.Errorf("avoid repeats = %v, want %v", got.Game.AvoidRepeatWords, tt.wantAvoid)
			}
			if got.Game.MaxPlayers != tt.wantMaxPlayer {
				t.Errorf("max players = %d, want %d", got.Game.MaxPlayers, tt.wantMaxPlayer)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOpenRosterStore(t *testing.T) {
	s, closeFn, err := openRosterStore(config.StorageConfig{Driver: "sqlite", DSN: "file:cmdtest?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer closeFn()

	if err := s.Save(t.Context(), "device-1", []string{"Ana"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	mem, closeMem, err := openRosterStore(config.StorageConfig{Driver: "memory"})
	if err != nil || mem == nil {
		t.Fatalf("open memory: %v", err)
	}
	closeMem()
}

func TestWebClientElementsExist(t *testing.T) {
	script, err := fs.ReadFile(webFS, "web/static/app.js")
	if err != nil {
		t.Fatalf("read app.js: %v", err)
	}
	page, err := fs.ReadFile(webFS, "web/index.html")
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}

	ids := regexp.MustCompile(`\$\("([a-z-]+)"\)`).FindAllStringSubmatch(string(script), -1)
	if len(ids) == 0 {
		t.Fatal("no element lookups found in app.js")
	}
	for _, m := range ids {
		if !strings.Contains(string(page), `id="`+m[1]+`"`) {
			t.Errorf("app.js renders into #%s but index.html has no such element", m[1])
		}
	}

	for _, field := range []string{"view.civilians", "view.maxPlayers ||"} {
		if !strings.Contains(string(script), field) {
			t.Errorf("app.js does not use %s", field)
		}
	}
}
