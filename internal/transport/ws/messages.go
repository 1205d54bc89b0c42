package ws

import (
	"encoding/json"
	"time"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgChooseCategory    MessageType = "choose_category"
	MsgChoosePlayerCount MessageType = "choose_player_count"
	MsgAddPlayer         MessageType = "add_player"
	MsgRemovePlayer      MessageType = "remove_player"
	MsgStartRound        MessageType = "start_round"
	MsgReveal            MessageType = "reveal"
	MsgAdvance           MessageType = "advance"
	MsgOpenVoting        MessageType = "open_voting"
	MsgCastVote          MessageType = "cast_vote"
	MsgShowResults       MessageType = "show_results"
	MsgReplay            MessageType = "replay"
	MsgPing              MessageType = "ping"
)

// Server → Client message types
const (
	MsgConnected    MessageType = "connected"
	MsgError        MessageType = "error"
	MsgScreen       MessageType = "screen"
	MsgSetup        MessageType = "setup"
	MsgTurn         MessageType = "turn"
	MsgRevealCard   MessageType = "reveal"
	MsgAdvanceReady MessageType = "advance_ready"
	MsgVoting       MessageType = "voting"
	MsgResults      MessageType = "results"
	MsgValidation   MessageType = "validation"
	MsgPong         MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Client message payloads

// ChooseCategoryPayload is the payload for choose_category message
type ChooseCategoryPayload struct {
	Category string `json:"category"`
}

// ChoosePlayerCountPayload is the payload for choose_player_count message
type ChoosePlayerCountPayload struct {
	Count int `json:"count"`
}

// AddPlayerPayload is the payload for add_player message
type AddPlayerPayload struct {
	Name string `json:"name"`
}

// RemovePlayerPayload is the payload for remove_player message
type RemovePlayerPayload struct {
	Index int `json:"index"`
}

// CastVotePayload is the payload for cast_vote message. VoterID is only
// read when each player votes separately.
type CastVotePayload struct {
	VoterID   int `json:"voterId,omitempty"`
	SuspectID int `json:"suspectId"`
}

// Server message payloads

// ConnectedPayload is the payload for connected message
type ConnectedPayload struct {
	DeviceID  string                 `json:"deviceId"`
	TableCode string                 `json:"tableCode"`
	State     map[string]interface{} `json:"state"`
}

// ScreenPayload is the payload for screen message
type ScreenPayload struct {
	Screen string `json:"screen"`
}

// ErrorPayload is the payload for error and validation messages
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrCodeInvalidMessage marks malformed traffic; game rule codes come from
// app.ErrorCode
const ErrCodeInvalidMessage = "INVALID_MESSAGE"
