package game

import "time"

// ChatEntry is one retained chat line. The author name is snapshotted so the
// entry survives the author disconnecting.
type ChatEntry struct {
	PlayerID  int    `json:"player_id"`
	Name      string `json:"name"`
	Text      string `json:"msg"`
	Timestamp int64  `json:"ts"` // milliseconds since epoch
}

// ChatHistory is a fixed-capacity ring of chat entries. Once full, the
// oldest entry is overwritten.
type ChatHistory struct {
	entries []ChatEntry
	head    int // next write position
	count   int // saturates at capacity
	now     func() time.Time
}

// NewChatHistory builds an empty ring holding at most capacity entries.
func NewChatHistory(capacity int) *ChatHistory {
	if capacity <= 0 {
		capacity = DefaultChatHistory
	}
	return &ChatHistory{
		entries: make([]ChatEntry, capacity),
		now:     time.Now,
	}
}

// Append stamps and stores one chat line. Empty text is rejected.
func (c *ChatHistory) Append(playerID int, name, text string) bool {
	if text == "" {
		return false
	}
	c.entries[c.head] = ChatEntry{
		PlayerID:  playerID,
		Name:      name,
		Text:      text,
		Timestamp: c.now().UnixMilli(),
	}
	c.head = (c.head + 1) % len(c.entries)
	if c.count < len(c.entries) {
		c.count++
	}
	return true
}

// Recent returns up to n entries, most recent first. Recycled slots are
// never returned.
func (c *ChatHistory) Recent(n int) []ChatEntry {
	if n > c.count {
		n = c.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]ChatEntry, n)
	for i := 0; i < n; i++ {
		idx := (c.head - 1 - i + len(c.entries)) % len(c.entries)
		out[i] = c.entries[idx]
	}
	return out
}

// Len reports the number of retained entries.
func (c *ChatHistory) Len() int {
	return c.count
}
