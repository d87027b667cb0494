package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hop-and-holler/server/internal/game"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("expected default addr, got %q", cfg.Server.Addr)
	}

	gc := cfg.GameConfig()
	if gc.MaxPlayers != game.DefaultMaxPlayers || gc.TickInterval != game.DefaultTickInterval {
		t.Fatalf("unexpected default game config: %+v", gc)
	}
	if gc.WorldWidth != game.DefaultWorldWidth || gc.WorldHeight != game.DefaultWorldHeight {
		t.Fatalf("unexpected default world size: %+v", gc)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":7777"
max_players = 8

[world]
tick_ms = 100
move_speed = 5.0

[chat]
history = 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":7777" {
		t.Fatalf("expected overridden addr, got %q", cfg.Server.Addr)
	}

	gc := cfg.GameConfig()
	if gc.MaxPlayers != 8 || gc.TickInterval != 100*time.Millisecond || gc.MoveSpeed != 5.0 {
		t.Fatalf("unexpected overridden values: %+v", gc)
	}
	// Untouched sections keep their defaults.
	if gc.Gravity != game.DefaultGravity || gc.WorldWidth != game.DefaultWorldWidth {
		t.Fatalf("unset values must keep defaults: %+v", gc)
	}
	if gc.ChatHistory != 10 {
		t.Fatalf("expected chat history 10, got %d", gc.ChatHistory)
	}
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	path := writeConfig(t, `[server`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestTokenRegistryFromConfig(t *testing.T) {
	path := writeConfig(t, `
[[tokens]]
token = "secret-1"
name = "Dana"

[[tokens]]
token = "secret-2"
name = "Eve"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	tokens := cfg.TokenRegistry()
	if tokens.Len() != 2 {
		t.Fatalf("expected 2 tokens, got %d", tokens.Len())
	}
	if name, ok := tokens.Lookup("secret-2"); !ok || name != "Eve" {
		t.Fatalf("expected Eve, got %q (%v)", name, ok)
	}
	if _, ok := tokens.Lookup("player1"); ok {
		t.Fatalf("demo tokens must not leak in when tokens are configured")
	}
}

func TestTokenRegistryDefaultsToDemoSet(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	tokens := cfg.TokenRegistry()
	if name, ok := tokens.Lookup("player1"); !ok || name != "Alice" {
		t.Fatalf("expected demo token player1 -> Alice, got %q (%v)", name, ok)
	}
}
