package game

import "hop-and-holler/server/internal/proto"

// Player is one registry slot. A slot is either fully empty (Active false,
// every other field zero) or occupied; the ID is assigned when the slot is
// acquired and never mutated afterwards.
type Player struct {
	Active        bool
	Authenticated bool
	ID            int
	Handle        string
	Name          string
	Token         string

	// Kinematic state, advanced by the simulation each tick.
	X, Y, Z  float64
	Angle    float64 // radians, normalized to [0, 2*pi)
	VZ       float64 // vertical velocity
	Grounded bool
	Jumping  bool

	// Last-received control bitmask; last write wins.
	Inputs proto.InputMask
}

// snapshot copies the broadcastable slice of the player for a state frame.
func (p *Player) snapshot() proto.PlayerState {
	return proto.PlayerState{
		ID:    p.ID,
		X:     p.X,
		Y:     p.Y,
		Z:     p.Z,
		Angle: p.Angle,
		Name:  p.Name,
	}
}
