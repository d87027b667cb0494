// Package config loads the server's TOML configuration. Every value is fixed
// at process start; there is no hot reload.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"hop-and-holler/server/internal/game"
	"hop-and-holler/server/internal/logging"
	"hop-and-holler/server/internal/proto"
)

type Config struct {
	Server  ServerConfig   `toml:"server"`
	World   WorldConfig    `toml:"world"`
	Chat    ChatConfig     `toml:"chat"`
	Logging logging.Config `toml:"logging"`
	Tokens  []TokenConfig  `toml:"tokens"`
}

type ServerConfig struct {
	Addr          string `toml:"addr"`
	MaxPlayers    int    `toml:"max_players"`
	MaxFrameBytes int    `toml:"max_frame_bytes"`
}

type WorldConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	TickMillis   int     `toml:"tick_ms"`
	MoveSpeed    float64 `toml:"move_speed"`
	RotateSpeed  float64 `toml:"rotate_speed"`
	JumpVelocity float64 `toml:"jump_velocity"`
	Gravity      float64 `toml:"gravity"`
}

type ChatConfig struct {
	History int `toml:"history"`
}

// TokenConfig is one pre-provisioned credential.
type TokenConfig struct {
	Token string `toml:"token"`
	Name  string `toml:"name"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          ":9000",
			MaxPlayers:    game.DefaultMaxPlayers,
			MaxFrameBytes: proto.DefaultMaxFrameBytes,
		},
		World: WorldConfig{
			Width:        game.DefaultWorldWidth,
			Height:       game.DefaultWorldHeight,
			TickMillis:   int(game.DefaultTickInterval / time.Millisecond),
			MoveSpeed:    game.DefaultMoveSpeed,
			RotateSpeed:  game.DefaultRotateSpeed,
			JumpVelocity: game.DefaultJumpVelocity,
			Gravity:      game.DefaultGravity,
		},
		Chat: ChatConfig{History: game.DefaultChatHistory},
		Logging: logging.Config{
			Level: "info",
			File:  "server.log",
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error: the defaults stand alone.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// GameConfig maps the file shape onto the core's tuning struct.
func (c *Config) GameConfig() game.Config {
	return game.Config{
		MaxPlayers:    c.Server.MaxPlayers,
		WorldWidth:    c.World.Width,
		WorldHeight:   c.World.Height,
		MoveSpeed:     c.World.MoveSpeed,
		RotateSpeed:   c.World.RotateSpeed,
		JumpVelocity:  c.World.JumpVelocity,
		Gravity:       c.World.Gravity,
		TickInterval:  time.Duration(c.World.TickMillis) * time.Millisecond,
		ChatHistory:   c.Chat.History,
		MaxFrameBytes: c.Server.MaxFrameBytes,
	}
}

// TokenRegistry builds the credential table: the configured tokens, or the
// demo set when none are configured.
func (c *Config) TokenRegistry() *game.TokenRegistry {
	if len(c.Tokens) == 0 {
		return game.DefaultTokens()
	}
	registry := game.NewTokenRegistry()
	for _, entry := range c.Tokens {
		registry.Register(entry.Token, entry.Name)
	}
	return registry
}
