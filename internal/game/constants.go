package game

import "time"

// Defaults mirror the shared client/server contract; the config file may
// override any of them except the wire limits.
const (
	DefaultTickInterval = 50 * time.Millisecond // 20 Hz
	DefaultMoveSpeed    = 12.5                  // world units per second
	DefaultRotateSpeed  = 3.0                   // radians per second
	DefaultJumpVelocity = 15.0                  // initial vertical impulse
	DefaultGravity      = 30.0                  // world units per second squared
	DefaultWorldWidth   = 100.0
	DefaultWorldHeight  = 75.0
	DefaultMaxPlayers   = 64
	DefaultChatHistory  = 100
	MaxTokens           = 100
)

// Config carries every tunable the core consumes, fixed at process start.
type Config struct {
	MaxPlayers    int
	WorldWidth    float64
	WorldHeight   float64
	MoveSpeed     float64
	RotateSpeed   float64
	JumpVelocity  float64
	Gravity       float64
	TickInterval  time.Duration
	ChatHistory   int
	MaxFrameBytes int
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MaxPlayers:   DefaultMaxPlayers,
		WorldWidth:   DefaultWorldWidth,
		WorldHeight:  DefaultWorldHeight,
		MoveSpeed:    DefaultMoveSpeed,
		RotateSpeed:  DefaultRotateSpeed,
		JumpVelocity: DefaultJumpVelocity,
		Gravity:      DefaultGravity,
		TickInterval: DefaultTickInterval,
		ChatHistory:  DefaultChatHistory,
	}
}
