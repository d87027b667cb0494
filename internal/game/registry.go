package game

import (
	"errors"

	"hop-and-holler/server/internal/proto"
)

// ErrServerFull is returned when every player slot is occupied; the caller
// must reject the connection without mutating any slot.
var ErrServerFull = errors.New("server full")

// Registry owns the fixed table of player slots and the connection->slot
// association. Slot index order is the canonical iteration order for the
// simulation and for broadcast fan-out; the array-plus-linear-scan layout is
// deliberate, keeping that order deterministic at this scale.
//
// The Registry is not safe for concurrent use; the Hub serializes access.
type Registry struct {
	slots  []Player
	nextID int
	tokens *TokenRegistry
	spawnX float64
	spawnY float64
}

// NewRegistry builds a registry with cfg.MaxPlayers empty slots.
func NewRegistry(cfg Config, tokens *TokenRegistry) *Registry {
	if tokens == nil {
		tokens = NewTokenRegistry()
	}
	return &Registry{
		slots:  make([]Player, cfg.MaxPlayers),
		nextID: 1,
		tokens: tokens,
		spawnX: cfg.WorldWidth / 2,
		spawnY: cfg.WorldHeight / 2,
	}
}

// AddConnection claims the first free slot for the handle, assigns a fresh
// id, and places the player at the default spawn, unauthenticated.
func (r *Registry) AddConnection(handle string) (*Player, error) {
	for i := range r.slots {
		slot := &r.slots[i]
		if slot.Active {
			continue
		}
		*slot = Player{
			Active:   true,
			ID:       r.nextID,
			Handle:   handle,
			X:        r.spawnX,
			Y:        r.spawnY,
			Grounded: true,
		}
		r.nextID++
		return slot, nil
	}
	return nil, ErrServerFull
}

// RemoveConnection frees the slot bound to the handle. Idempotent: unknown
// handles are a no-op.
func (r *Registry) RemoveConnection(handle string) {
	for i := range r.slots {
		if r.slots[i].Active && r.slots[i].Handle == handle {
			r.slots[i] = Player{}
			return
		}
	}
}

// FindByConnection returns the active player bound to the handle, or nil.
func (r *Registry) FindByConnection(handle string) *Player {
	for i := range r.slots {
		if r.slots[i].Active && r.slots[i].Handle == handle {
			return &r.slots[i]
		}
	}
	return nil
}

// FindByID returns the active player with the given id, or nil.
func (r *Registry) FindByID(id int) *Player {
	for i := range r.slots {
		if r.slots[i].Active && r.slots[i].ID == id {
			return &r.slots[i]
		}
	}
	return nil
}

// Authenticate resolves the token against the token registry. On success the
// slot gains its identity and the authenticated flag; on failure the slot is
// left untouched.
func (r *Registry) Authenticate(p *Player, token string) bool {
	if p == nil {
		return false
	}
	name, ok := r.tokens.Lookup(token)
	if !ok {
		return false
	}
	p.Authenticated = true
	p.Token = token
	p.Name = name
	return true
}

// SetInput overwrites the player's control bitmask unconditionally.
func (r *Registry) SetInput(p *Player, mask proto.InputMask) {
	if p != nil {
		p.Inputs = mask
	}
}

// ActivePlayers returns every occupied, authenticated slot in slot order.
// The returned pointers alias registry storage and are only valid until the
// next registry mutation.
func (r *Registry) ActivePlayers() []*Player {
	players := make([]*Player, 0, len(r.slots))
	for i := range r.slots {
		if r.slots[i].Active && r.slots[i].Authenticated {
			players = append(players, &r.slots[i])
		}
	}
	return players
}

// AuthenticatedCount reports how many slots are occupied and authenticated.
func (r *Registry) AuthenticatedCount() int {
	count := 0
	for i := range r.slots {
		if r.slots[i].Active && r.slots[i].Authenticated {
			count++
		}
	}
	return count
}
