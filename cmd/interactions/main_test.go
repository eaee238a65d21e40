package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const mainTestPrefix = "cmd/interactions:main_test"

func TestUsage_ContainsCommands(t *testing.T) {
	required := []string{"serve", "migrate up", "migrate status", "clear", "register", "commands", "DATABASE_URL", "TRANSPORTS"}
	for _, word := range required {
		if !strings.Contains(usage, word) {
			t.Errorf("%s - usage should contain %q", mainTestPrefix, word)
		}
	}
}

func TestPrintCommands(t *testing.T) {
	var buf bytes.Buffer
	if err := printCommands(&buf); err != nil {
		t.Fatalf("%s - printCommands: %v", mainTestPrefix, err)
	}

	var cmds []struct {
		Name    string `json:"name"`
		Options []struct {
			Name         string `json:"name"`
			Autocomplete bool   `json:"autocomplete"`
		} `json:"options"`
	}
	if err := json.Unmarshal(buf.Bytes(), &cmds); err != nil {
		t.Fatalf("%s - output is not JSON: %v\n%s", mainTestPrefix, err, buf.String())
	}

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name] = true
	}
	for _, want := range []string{"ping", "feedback", "feedback-recent"} {
		if !names[want] {
			t.Errorf("%s - missing command %q in %s", mainTestPrefix, want, buf.String())
		}
	}
}
