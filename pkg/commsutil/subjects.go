package commsutil

import (
	"fmt"
	"strings"
)

// Default COMMS subjects.
const (
	SubjectInteractions = "interactions.v1.dispatch"
	SubjectDispatched   = "interactions.dispatched"
)

// BuildDispatchedSubject builds the per-type subject of dispatch
// notifications, e.g. interactions.dispatched.modal.
func BuildDispatchedSubject(eventType string) string {
	return fmt.Sprintf("%s.%s", SubjectDispatched, Token(eventType))
}

// Token makes s safe to use as a single subject token. Separators,
// wildcards and whitespace become underscores; an empty string becomes
// "unknown".
func Token(s string) string {
	if s == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\r', '\n':
			return '_'
		}
		return r
	}, s)
}
