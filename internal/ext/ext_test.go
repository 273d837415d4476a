package ext

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValue(t *testing.T) {
	if got := DefaultValue("", "main"); got != "main" {
		t.Errorf("expected fallback main, got %q", got)
	}
	if got := DefaultValue("develop", "main"); got != "develop" {
		t.Errorf("expected develop, got %q", got)
	}
	if got := DefaultValue(0, 7); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestResolvePath(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "srv", "data.csv")
	tests := []struct {
		name     string
		base     string
		path     string
		expected string
	}{
		{name: "Relative path is joined", base: "/opt/tool", path: "data/x.csv", expected: filepath.Join("/opt/tool", "data/x.csv")},
		{name: "Absolute path is kept", base: "/opt/tool", path: abs, expected: abs},
		{name: "Empty path stays empty", base: "/opt/tool", path: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePath(tt.base, tt.path); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestReplaceHomeDirWithTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory")
	}
	if got := ReplaceHomeDirWithTilde(filepath.Join(home, "projects")); got != filepath.Join("~", "projects") {
		t.Errorf("expected ~/projects, got %q", got)
	}
	if got := ReplaceHomeDirWithTilde(home + "sibling"); got != home+"sibling" {
		t.Errorf("expected sibling path untouched, got %q", got)
	}
}
