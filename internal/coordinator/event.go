package coordinator

// Outbound event names on the wire.
const (
	EventMessage    = "message"
	EventPrivate    = "privateMessage"
	EventTyping     = "userTyping"
	EventStopTyping = "stopTyping"
	EventError      = "error"
)

// BotUsername signs presence notifications generated by the coordinator.
const BotUsername = "Chat Bot"

// Event is one outbound notification, consumed by the transport layer and
// never retained by the coordinator. Data is nil for stopTyping and a bare
// username string for userTyping.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// ChatPayload carries group and presence messages.
type ChatPayload struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// PrivatePayload carries direct messages.
type PrivatePayload struct {
	FromUser string `json:"fromUser"`
	Message  string `json:"message"`
}

// ErrorPayload carries errors surfaced to a single connection.
type ErrorPayload struct {
	Message string `json:"message"`
}

func chatEvent(username, message string) Event {
	return Event{Event: EventMessage, Data: ChatPayload{Username: username, Message: message}}
}

func presenceEvent(text string) Event {
	return chatEvent(BotUsername, text)
}

func privateEvent(fromUser, message string) Event {
	return Event{Event: EventPrivate, Data: PrivatePayload{FromUser: fromUser, Message: message}}
}

func typingEvent(username string) Event {
	return Event{Event: EventTyping, Data: username}
}

func stopTypingEvent() Event {
	return Event{Event: EventStopTyping}
}

func errorEvent(message string) Event {
	return Event{Event: EventError, Data: ErrorPayload{Message: message}}
}
