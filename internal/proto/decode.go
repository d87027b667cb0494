package proto

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode failure classes. Callers drop the frame either way; the distinction
// only feeds logging.
var (
	ErrFrameTooLarge  = errors.New("frame exceeds maximum size")
	ErrMalformedFrame = errors.New("malformed frame")
	ErrUnknownType    = errors.New("unknown message type")
)

// envelope holds every field any client frame may carry. Scalar fields stay
// raw so a wrong-typed value degrades to absent instead of failing the
// frame. Only "type" is strict: it must be a JSON string.
type envelope struct {
	Type   string          `json:"type"`
	Token  json.RawMessage `json:"token"`
	Up     json.RawMessage `json:"up"`
	Down   json.RawMessage `json:"down"`
	Left   json.RawMessage `json:"left"`
	Right  json.RawMessage `json:"right"`
	Jump   json.RawMessage `json:"jump"`
	Action json.RawMessage `json:"action"`
	Msg    json.RawMessage `json:"msg"`
}

// Decode parses one untrusted client frame. maxLen bounds the accepted frame
// size in bytes; zero or negative falls back to DefaultMaxFrameBytes.
// Decoding never mutates any server state and is safe on hostile input.
func Decode(payload []byte, maxLen int) (ClientMessage, error) {
	if maxLen <= 0 {
		maxLen = DefaultMaxFrameBytes
	}
	if len(payload) > maxLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(payload))
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}

	switch env.Type {
	case TypeAuth:
		return Auth{Token: truncate(stringField(env.Token), MaxTokenBytes)}, nil
	case TypeInput:
		var mask InputMask
		if truthy(env.Up) {
			mask |= InputUp
		}
		if truthy(env.Down) {
			mask |= InputDown
		}
		if truthy(env.Left) {
			mask |= InputLeft
		}
		if truthy(env.Right) {
			mask |= InputRight
		}
		if truthy(env.Jump) {
			mask |= InputJump
		}
		if truthy(env.Action) {
			mask |= InputAction
		}
		return Input{Mask: mask}, nil
	case TypeChat:
		return Chat{Text: truncate(stringField(env.Msg), MaxChatBytes)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
}

// truthy reports whether a raw field holds JSON true or a nonzero number.
// Absent fields and any other value count as unset.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0
	}
	return false
}

// stringField extracts a raw field as a string, treating absent or
// wrong-typed values as empty.
func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// truncate bounds a string to max bytes.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
