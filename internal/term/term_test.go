package term

import (
	"os"
	"path/filepath"
	"testing"
)

func TestColorEnabledModes(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	fd := f.Fd()

	tests := []struct {
		mode     string
		expected bool
	}{
		{"always", true},
		{"never", false},
		{"auto", false},
		{"", false},
	}

	for i, tt := range tests {
		got, err := ColorEnabled(tt.mode, fd)
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error %v", i, err)
		}
		if got != tt.expected {
			t.Fatalf("tests[%d] - ColorEnabled(%q) = %v, expected %v", i, tt.mode, got, tt.expected)
		}
	}

	if _, err := ColorEnabled("rainbow", fd); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestRegularFileIsNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f.Fd()) {
		t.Fatal("a regular file is not a terminal")
	}
}

func TestNoColorDisablesAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	on, err := ColorEnabled("auto", os.Stdout.Fd())
	if err != nil || on {
		t.Fatalf("NO_COLOR must disable auto colour, got %v, %v", on, err)
	}
}
