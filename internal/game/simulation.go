package game

import (
	"math"

	"hop-and-holler/server/internal/proto"
)

// advancePlayer integrates one authenticated player's kinematic state by dt
// seconds. Integration order: rotation, translation, jump, gravity, world
// wrap. Angle 0 faces +y; increasing angle rotates toward +x.
func advancePlayer(p *Player, cfg Config, dt float64) {
	inputs := p.Inputs

	if inputs.Has(proto.InputLeft) {
		p.Angle -= cfg.RotateSpeed * dt
	}
	if inputs.Has(proto.InputRight) {
		p.Angle += cfg.RotateSpeed * dt
	}
	p.Angle = normalizeAngle(p.Angle)

	move := 0.0
	if inputs.Has(proto.InputUp) {
		move += cfg.MoveSpeed * dt
	}
	if inputs.Has(proto.InputDown) {
		move -= cfg.MoveSpeed * dt
	}
	if move != 0 {
		p.X += math.Sin(p.Angle) * move
		p.Y += math.Cos(p.Angle) * move
	}

	// Jump is gated strictly on the grounded flag; airborne jump presses
	// never alter vertical velocity.
	if inputs.Has(proto.InputJump) && p.Grounded {
		p.VZ = cfg.JumpVelocity
		p.Grounded = false
		p.Jumping = true
	}

	// Gravity is skipped entirely while grounded so resting players do not
	// jitter against the floor.
	if !p.Grounded {
		p.VZ -= cfg.Gravity * dt
		p.Z += p.VZ * dt
		if p.Z <= 0 {
			p.Z = 0
			p.VZ = 0
			p.Grounded = true
			p.Jumping = false
		}
	}

	p.X = wrapCoordinate(p.X, cfg.WorldWidth)
	p.Y = wrapCoordinate(p.Y, cfg.WorldHeight)
}

// normalizeAngle wraps an angle into [0, 2*pi).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// wrapCoordinate wraps a position into [0, limit); crossing an edge
// reappears at the opposite edge.
func wrapCoordinate(v, limit float64) float64 {
	v = math.Mod(v, limit)
	if v < 0 {
		v += limit
	}
	if v >= limit {
		v -= limit
	}
	return v
}
