package game

import "hop-and-holler/server/internal/proto"

// TokenRegistry maps pre-provisioned credential strings to display names.
// It is populated at startup and read-only afterwards; lookup is an exact
// string match over a small fixed-capacity table.
type TokenRegistry struct {
	entries []tokenEntry
}

type tokenEntry struct {
	token string
	name  string
}

// NewTokenRegistry returns an empty registry.
func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{entries: make([]tokenEntry, 0, MaxTokens)}
}

// DefaultTokens returns the demo credential set used when the config
// provisions none.
func DefaultTokens() *TokenRegistry {
	t := NewTokenRegistry()
	t.Register("player1", "Alice")
	t.Register("player2", "Bob")
	t.Register("player3", "Charlie")
	t.Register("debug", "Debug Player")
	return t
}

// Register adds one token -> name mapping, truncating both to their wire
// bounds. Returns false when the table is full or the token is empty.
func (t *TokenRegistry) Register(token, name string) bool {
	if token == "" || len(t.entries) >= MaxTokens {
		return false
	}
	if len(token) > proto.MaxTokenBytes {
		token = token[:proto.MaxTokenBytes]
	}
	if len(name) > proto.MaxNameBytes {
		name = name[:proto.MaxNameBytes]
	}
	t.entries = append(t.entries, tokenEntry{token: token, name: name})
	return true
}

// Lookup resolves a token to its display name.
func (t *TokenRegistry) Lookup(token string) (string, bool) {
	for _, e := range t.entries {
		if e.token == token {
			return e.name, true
		}
	}
	return "", false
}

// Len reports the number of provisioned tokens.
func (t *TokenRegistry) Len() int {
	return len(t.entries)
}
