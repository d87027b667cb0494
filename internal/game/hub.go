package game

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"hop-and-holler/server/internal/proto"
)

// Conn is the transport seam the Hub writes through. Implementations carry
// their own write deadlines; the Hub only sees success or failure.
type Conn interface {
	WriteText(data []byte) error
	Close() error
}

// Hub is the session and broadcast controller. It owns the player registry,
// the chat history, and the tick counter, and serializes every external
// entrypoint behind one mutex: connect, disconnect, receive, and the tick
// each run to completion before the next begins, so all shared state is
// mutated callback-at-a-time, exactly like a single-threaded reactor.
type Hub struct {
	mu          sync.Mutex
	cfg         Config
	registry    *Registry
	chat        *ChatHistory
	subscribers map[string]Conn
	tick        uint64
	logger      *zap.SugaredLogger
}

// NewHub wires a hub from its owned collections. A nil logger disables
// logging, a nil token registry provisions the demo credentials.
func NewHub(cfg Config, tokens *TokenRegistry, logger *zap.SugaredLogger) *Hub {
	if tokens == nil {
		tokens = DefaultTokens()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Hub{
		cfg:         cfg,
		registry:    NewRegistry(cfg, tokens),
		chat:        NewChatHistory(cfg.ChatHistory),
		subscribers: make(map[string]Conn),
		logger:      logger,
	}
}

// Connect claims a slot for a new transport connection. On ErrServerFull no
// slot is mutated and the caller must close the connection.
func (h *Hub) Connect(handle string, conn Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	player, err := h.registry.AddConnection(handle)
	if err != nil {
		h.logger.Warnw("rejecting connection, no free slots", "handle", handle)
		return err
	}
	h.subscribers[handle] = conn
	h.logger.Infow("connection established", "handle", handle, "player_id", player.ID)
	return nil
}

// Disconnect releases the slot bound to the handle and closes its
// connection. If the player was authenticated the others are told first.
// Safe to call for handles that were never connected.
func (h *Hub) Disconnect(handle string) {
	h.mu.Lock()
	player := h.registry.FindByConnection(handle)
	if player != nil && player.Authenticated {
		h.broadcastLocked(proto.EncodePlayerLeave(player.ID), handle)
	}
	if player != nil {
		h.logger.Infow("connection closed", "handle", handle, "player_id", player.ID, "name", player.Name)
	}
	h.registry.RemoveConnection(handle)
	conn := h.subscribers[handle]
	delete(h.subscribers, handle)
	h.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
}

// Receive processes one raw inbound frame. Undecodable frames are dropped
// with a log line and no reply; the connection stays open.
func (h *Hub) Receive(handle string, payload []byte) {
	msg, err := proto.Decode(payload, h.cfg.MaxFrameBytes)
	if err != nil {
		h.logger.Debugw("dropping undecodable frame", "handle", handle, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	player := h.registry.FindByConnection(handle)
	if player == nil {
		h.logger.Debugw("frame from unknown connection", "handle", handle)
		return
	}

	switch m := msg.(type) {
	case proto.Auth:
		h.handleAuthLocked(player, m.Token)
	case proto.Input:
		if !player.Authenticated {
			return
		}
		h.registry.SetInput(player, m.Mask)
	case proto.Chat:
		if !player.Authenticated {
			return
		}
		h.handleChatLocked(player, m.Text)
	}
}

func (h *Hub) handleAuthLocked(player *Player, token string) {
	if player.Authenticated {
		h.sendLocked(player.Handle, proto.EncodeAuthFail("already authenticated"))
		return
	}
	if !h.registry.Authenticate(player, token) {
		h.logger.Infow("authentication failed", "player_id", player.ID)
		h.sendLocked(player.Handle, proto.EncodeAuthFail("invalid token"))
		return
	}
	h.sendLocked(player.Handle, proto.EncodeAuthOK(player.ID, player.Name))
	h.broadcastLocked(proto.EncodePlayerJoin(player.ID, player.Name), player.Handle)
	h.logger.Infow("player joined", "player_id", player.ID, "name", player.Name)
}

func (h *Hub) handleChatLocked(player *Player, text string) {
	if !h.chat.Append(player.ID, player.Name, text) {
		return
	}
	// Chat goes to everyone including the sender; join/leave exclude the
	// triggering connection. The asymmetry is part of the contract.
	h.broadcastLocked(proto.EncodeChatBroadcast(player.ID, player.Name, text), "")
}

// broadcastLocked fans one pre-encoded frame out to every authenticated
// connection in canonical slot order, optionally excluding one handle. A
// failed send is logged and skipped; it never aborts the fan-out.
func (h *Hub) broadcastLocked(data []byte, exclude string) {
	for _, player := range h.registry.ActivePlayers() {
		if player.Handle == exclude {
			continue
		}
		h.sendLocked(player.Handle, data)
	}
}

func (h *Hub) sendLocked(handle string, data []byte) {
	conn, ok := h.subscribers[handle]
	if !ok {
		return
	}
	if err := conn.WriteText(data); err != nil {
		h.logger.Warnw("send failed", "handle", handle, "error", err)
	}
}

// step advances the world by one fixed timestep and broadcasts the snapshot.
// The tick counter always advances; the broadcast is skipped when nobody is
// authenticated.
func (h *Hub) step() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.tick++
	dt := h.cfg.TickInterval.Seconds()

	players := h.registry.ActivePlayers()
	for _, player := range players {
		advancePlayer(player, h.cfg, dt)
	}
	if len(players) == 0 {
		return
	}

	states := make([]proto.PlayerState, 0, len(players))
	for _, player := range players {
		states = append(states, player.snapshot())
	}
	h.broadcastLocked(proto.EncodeState(h.tick, states), "")
}

// RunSimulation drives the fixed-rate tick until the stop channel closes.
// The timer is re-armed explicitly after each firing, so shutdown is simply
// not re-arming it.
func (h *Hub) RunSimulation(stop <-chan struct{}) {
	timer := time.NewTimer(h.cfg.TickInterval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
			h.step()
			timer.Reset(h.cfg.TickInterval)
		}
	}
}

// Tick reports the current simulation tick.
func (h *Hub) Tick() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tick
}

// AuthenticatedCount reports how many connections hold an authenticated slot.
func (h *Hub) AuthenticatedCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.AuthenticatedCount()
}

// RecentChat returns up to n retained chat entries, most recent first.
func (h *Hub) RecentChat(n int) []ChatEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.chat.Recent(n)
}

// Diagnostics is the snapshot served by the diagnostics endpoint.
type Diagnostics struct {
	Tick         uint64 `json:"tick"`
	TickMillis   int64  `json:"tickMillis"`
	Players      int    `json:"players"`
	ChatMessages int    `json:"chatMessages"`
}

// DiagnosticsSnapshot exposes run-state for the diagnostics endpoint.
func (h *Hub) DiagnosticsSnapshot() Diagnostics {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Diagnostics{
		Tick:         h.tick,
		TickMillis:   h.cfg.TickInterval.Milliseconds(),
		Players:      h.registry.AuthenticatedCount(),
		ChatMessages: h.chat.Len(),
	}
}
