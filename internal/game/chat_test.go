package game

import (
	"fmt"
	"testing"
	"time"
)

func newTestChat(capacity int) (*ChatHistory, *time.Time) {
	c := NewChatHistory(capacity)
	now := time.UnixMilli(1_700_000_000_000)
	c.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	return c, &now
}

func TestChatAppendRejectsEmptyText(t *testing.T) {
	c, _ := newTestChat(4)
	if c.Append(1, "Alice", "") {
		t.Fatalf("empty text must be rejected")
	}
	if c.Len() != 0 {
		t.Fatalf("rejected append must not store an entry")
	}
}

func TestChatRecentNewestFirst(t *testing.T) {
	c, _ := newTestChat(8)
	for i := 1; i <= 3; i++ {
		if !c.Append(i, "Alice", fmt.Sprintf("line %d", i)) {
			t.Fatalf("append %d failed", i)
		}
	}

	recent := c.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Text != "line 3" || recent[1].Text != "line 2" {
		t.Fatalf("expected newest first, got %q then %q", recent[0].Text, recent[1].Text)
	}
	if recent[0].Timestamp <= recent[1].Timestamp {
		t.Fatalf("timestamps must decrease with age")
	}
}

func TestChatRecentClampsToStoredCount(t *testing.T) {
	c, _ := newTestChat(8)
	c.Append(1, "Alice", "only line")

	if got := c.Recent(100); len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got := c.Recent(0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
}

func TestChatRingNeverExceedsCapacity(t *testing.T) {
	const capacity = 4
	c, _ := newTestChat(capacity)

	for i := 1; i <= capacity*3; i++ {
		c.Append(i, "Bob", fmt.Sprintf("line %d", i))
		if c.Len() > capacity {
			t.Fatalf("history grew past capacity: %d", c.Len())
		}
	}
	if c.Len() != capacity {
		t.Fatalf("expected saturated count %d, got %d", capacity, c.Len())
	}

	recent := c.Recent(capacity)
	for i, entry := range recent {
		want := fmt.Sprintf("line %d", capacity*3-i)
		if entry.Text != want {
			t.Fatalf("entry %d: expected %q, got %q", i, want, entry.Text)
		}
	}
}

func TestChatEntrySnapshotsAuthorName(t *testing.T) {
	c, _ := newTestChat(4)
	c.Append(7, "Charlie", "hello")

	entry := c.Recent(1)[0]
	if entry.PlayerID != 7 || entry.Name != "Charlie" {
		t.Fatalf("expected author snapshot, got %+v", entry)
	}
}
