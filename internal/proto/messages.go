// Package proto implements the JSON wire protocol: decoding untrusted client
// frames into typed messages and encoding the server's outbound frames.
package proto

// Protocol version sent nowhere on the wire yet, but pinned for clients.
const Version = 1

// Client -> server message types.
const (
	TypeAuth  = "auth"
	TypeInput = "input"
	TypeChat  = "chat"
)

// Server -> client message types.
const (
	TypeAuthOK        = "auth_ok"
	TypeAuthFail      = "auth_fail"
	TypeState         = "state"
	TypeChatBroadcast = "chat_broadcast"
	TypePlayerJoin    = "player_join"
	TypePlayerLeave   = "player_leave"
)

// Wire-level size limits, in bytes. Overlong string fields are truncated on
// decode; frames beyond the configured frame limit are rejected whole.
const (
	MaxNameBytes         = 32
	MaxTokenBytes        = 64
	MaxChatBytes         = 256
	DefaultMaxFrameBytes = 4096
)

// InputMask packs the six control flags into one byte. The bit layout is part
// of the shared contract with clients and must not change.
type InputMask uint8

const (
	InputUp InputMask = 1 << iota
	InputDown
	InputLeft
	InputRight
	InputJump
	InputAction
)

// Has reports whether every bit in flag is set in the mask.
func (m InputMask) Has(flag InputMask) bool {
	return m&flag == flag
}

// ClientMessage is the decoded form of one inbound frame. Exactly one of
// Auth, Input, or Chat is produced per successfully decoded frame.
type ClientMessage interface {
	clientMessage()
}

// Auth carries the credential presented by a connection.
type Auth struct {
	Token string
}

// Input carries the latest control bitmask for a player.
type Input struct {
	Mask InputMask
}

// Chat carries one chat line from a player.
type Chat struct {
	Text string
}

func (Auth) clientMessage()  {}
func (Input) clientMessage() {}
func (Chat) clientMessage()  {}

// PlayerState is the per-player slice of a state snapshot frame.
type PlayerState struct {
	ID    int     `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Angle float64 `json:"angle"`
	Name  string  `json:"name"`
}
