package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// session adapts a gorilla connection to the hub's Conn seam: text frames,
// bounded write deadline, one writer at a time.
type session struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newSession(conn *websocket.Conn) *session {
	return &session{conn: conn}
}

func (s *session) WriteText(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *session) Close() error {
	return s.conn.Close()
}
