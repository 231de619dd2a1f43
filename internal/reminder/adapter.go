// Package reminder builds daily task digests and delivers them to chat
// platforms (Slack, Discord) or a local command.
package reminder

import "context"

// Adapter is the interface platform-specific senders must satisfy.
// Reminders are one-way: adapters only connect, send, and close.
type Adapter interface {
	// Connect establishes a connection to the platform.
	Connect(ctx context.Context) error

	// Send delivers an outbound message to the platform.
	Send(ctx context.Context, msg OutboundMessage) error

	// Close gracefully shuts down the adapter connection.
	Close() error
}

// OutboundMessage represents a message to be sent to the platform.
type OutboundMessage struct {
	ChannelID string           // target channel (empty for adapter default)
	Text      string           // message text (platform-native formatting)
	Events    []FormattedEvent // structured digest attachments
}

// FormattedEvent is a digest section formatted for display in chat.
type FormattedEvent struct {
	Title    string  // headline (e.g. "3 tasks overdue")
	Body     string  // detail text
	Severity string  // "info", "warning", "error", "success"
	Color    string  // sidebar color hint (e.g. "#36a64f" for success)
	Fields   []Field // key-value metadata pairs
}

// Field is a key-value pair displayed in an event attachment.
type Field struct {
	Name  string
	Value string
	Short bool // hint: render side-by-side with another field
}
