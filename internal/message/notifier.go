package message

import (
	"fmt"
	"strings"
)

// NotifierMessage holds the sentences to push to notifiers.
type NotifierMessage []string

// NewNotifierMessage creates a new empty NotifierMessage.
func NewNotifierMessage() NotifierMessage { return nil }

// NewNotifierMessagef creates a new NotifierMessage containing one formatted string.
func NewNotifierMessagef(format string, args ...any) NotifierMessage {
	return NotifierMessage{fmt.Sprintf(format, args...)}
}

// Format turns the message into a single string.
func (m NotifierMessage) Format() string { return strings.Join(m, " ") }

// IsEmpty checks if the message is empty.
func (m NotifierMessage) IsEmpty() bool { return len(m) == 0 }
