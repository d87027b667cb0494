package proto

import "encoding/json"

// Outbound frame shapes. Name and reason fields are always present, encoding
// as "" when empty, never omitted or null.

type authOKFrame struct {
	Type     string `json:"type"`
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
}

type authFailFrame struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type stateFrame struct {
	Type    string        `json:"type"`
	Tick    uint64        `json:"tick"`
	Players []PlayerState `json:"players"`
}

type chatBroadcastFrame struct {
	Type     string `json:"type"`
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Msg      string `json:"msg"`
}

type playerJoinFrame struct {
	Type     string `json:"type"`
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
}

type playerLeaveFrame struct {
	Type     string `json:"type"`
	PlayerID int    `json:"player_id"`
}

// marshal is total for the frame types above; they contain nothing
// json.Marshal can reject.
func marshal(v any) []byte {
	data, _ := json.Marshal(v)
	return data
}

// EncodeAuthOK builds the reply confirming a successful authentication.
func EncodeAuthOK(playerID int, name string) []byte {
	return marshal(authOKFrame{Type: TypeAuthOK, PlayerID: playerID, Name: name})
}

// EncodeAuthFail builds the reply rejecting an authentication attempt.
func EncodeAuthFail(reason string) []byte {
	return marshal(authFailFrame{Type: TypeAuthFail, Reason: reason})
}

// EncodeState builds the per-tick world snapshot frame. A nil player slice
// encodes as an empty array, not null.
func EncodeState(tick uint64, players []PlayerState) []byte {
	if players == nil {
		players = []PlayerState{}
	}
	return marshal(stateFrame{Type: TypeState, Tick: tick, Players: players})
}

// EncodeChatBroadcast builds the chat fan-out frame.
func EncodeChatBroadcast(playerID int, name, msg string) []byte {
	return marshal(chatBroadcastFrame{Type: TypeChatBroadcast, PlayerID: playerID, Name: name, Msg: msg})
}

// EncodePlayerJoin builds the notification that a player authenticated.
func EncodePlayerJoin(playerID int, name string) []byte {
	return marshal(playerJoinFrame{Type: TypePlayerJoin, PlayerID: playerID, Name: name})
}

// EncodePlayerLeave builds the notification that a player disconnected.
func EncodePlayerLeave(playerID int) []byte {
	return marshal(playerLeaveFrame{Type: TypePlayerLeave, PlayerID: playerID})
}
