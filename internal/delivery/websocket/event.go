package websocket

import "encoding/json"

// Inbound event names on the wire.
const (
	eventJoinRoom       = "joinRoom"
	eventLeaveRoom      = "leaveRoom"
	eventChatMessage    = "chatMessage"
	eventPrivateMessage = "privateMessage"
	eventUserTyping     = "userTyping"
	eventStopTyping     = "stopTyping"
)

// envelope frames every inbound client event. Data is event-specific; for
// stopTyping it is a bare JSON string naming the room.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type roomUserPayload struct {
	Room     string `json:"room"`
	Username string `json:"username"`
}

type chatMessagePayload struct {
	Room     string `json:"room"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type privateMessagePayload struct {
	ToUser   string `json:"toUser"`
	FromUser string `json:"fromUser"`
	Message  string `json:"message"`
}
