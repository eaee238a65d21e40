package commsutil

import "testing"

func TestBuildDispatchedSubject(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		want      string
	}{
		{"command", "command", "interactions.dispatched.command"},
		{"modal", "modal", "interactions.dispatched.modal"},
		{"empty", "", "interactions.dispatched.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildDispatchedSubject(tt.eventType)
			if got != tt.want {
				t.Errorf("commsutil:subjects_test - BuildDispatchedSubject(%q) = %q, want %q", tt.eventType, got, tt.want)
			}
		})
	}
}

func TestToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ping", "ping"},
		{"feedback.submit", "feedback_submit"},
		{"a*b>c", "a_b_c"},
		{"two words", "two_words"},
		{"feedback:dismiss", "feedback:dismiss"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		if got := Token(tt.in); got != tt.want {
			t.Errorf("commsutil:subjects_test - Token(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
