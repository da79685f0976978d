// Package message defines the structures holding messages for
// monitors and notifiers.
package message

// Message encapsulates the messages to both monitors and notifiers.
type Message struct {
	NotifierMessage
	MonitorMessage
}

// New creates a new, empty message.
func New() Message {
	return Message{
		MonitorMessage:  NewMonitorMessage(),
		NotifierMessage: NewNotifierMessage(),
	}
}

// NewFailuref creates a message reporting a failure to both monitors and notifiers.
func NewFailuref(format string, args ...any) Message {
	return Message{
		MonitorMessage:  NewMonitorMessagef(false, format, args...),
		NotifierMessage: NewNotifierMessagef(format, args...),
	}
}
