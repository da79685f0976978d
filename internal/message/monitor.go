package message

import (
	"fmt"
	"strings"
)

// MonitorMessage holds the messages and success/failure status for monitors.
type MonitorMessage struct {
	OK    bool
	Lines []string
}

// NewMonitorMessage creates a new empty MonitorMessage.
func NewMonitorMessage() MonitorMessage {
	return MonitorMessage{
		OK:    true,
		Lines: nil,
	}
}

// NewMonitorMessagef creates a new MonitorMessage containing one formatted line.
func NewMonitorMessagef(ok bool, format string, args ...any) MonitorMessage {
	return MonitorMessage{
		OK:    ok,
		Lines: []string{fmt.Sprintf(format, args...)},
	}
}

// Format turns the message into a single string.
func (m MonitorMessage) Format() string {
	return strings.Join(m.Lines, "\n")
}

// IsEmpty checks if the message has no lines.
func (m MonitorMessage) IsEmpty() bool { return len(m.Lines) == 0 }
