package cmd

import (
	"path/filepath"
	"testing"
)

func TestIsWatchInput(t *testing.T) {
	dir := filepath.Join("home", "proj")
	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(dir, "go.mod"), true},
		{filepath.Join(dir, "glint.yaml"), true},
		{filepath.Join(dir, "app.go"), true},
		{filepath.Join(dir, "main.go"), false},
		{filepath.Join(dir, "context", "theme.go"), false},
		{filepath.Join(dir, "components", "counter_card.go"), false},
		// Outputs never count as inputs even under matching basenames.
		{filepath.Join(dir, "components", "app.go"), false},
		{filepath.Join(dir, ".git", "config"), false},
	}
	for _, tt := range tests {
		if got := isWatchInput(dir, tt.path); got != tt.want {
			t.Errorf("isWatchInput(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
