package db

import (
	"strings"
	"testing"
)

const poolStatusTestPrefix = "db:pool_status_test"

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name    string
		applied bool
		want    []string
	}{
		{"applied", true, []string{"applied (schema present", "1 migration files in migrations"}},
		{"not applied", false, []string{"not applied", "interactions migrate up", "1 migration files in migrations"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusLine(tt.applied, 1, "migrations")
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("%s - statusLine = %q, missing %q", poolStatusTestPrefix, got, w)
				}
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, DefaultListLimit},
		{0, DefaultListLimit},
		{1, 1},
		{10, 10},
		{MaxListLimit, MaxListLimit},
		{MaxListLimit + 1, MaxListLimit},
	}
	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("%s - ClampLimit(%d) = %d, want %d", poolStatusTestPrefix, tt.in, got, tt.want)
		}
	}
}
