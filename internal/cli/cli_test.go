package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(ConfigEnv, "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.Color != "auto" || cfg.Concurrency != 4 || cfg.Server.Addr == "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.Policy().AllowIntegerWidening {
		t.Fatal("default policy should allow widening")
	}

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil || cfg.Color != "auto" {
		t.Fatalf("missing file should yield defaults, got %+v, %v", cfg, err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "declcheck.json")
	data := `{"verbose": true, "color": "never", "widening": false, "requires": ">= 0.1.0", "concurrency": 2}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !cfg.Verbose || cfg.Color != "never" || cfg.Concurrency != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Policy().AllowIntegerWidening {
		t.Fatal("widening: false must disable widening")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.json")
	if err := os.WriteFile(path, []byte(`{"debug": true}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigEnv, path)

	cfg, err := LoadConfig("")
	if err != nil || !cfg.Debug {
		t.Fatalf("expected debug config from env, got %+v, %v", cfg, err)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"verbose": `},
		{"bad color", `{"color": "sometimes"}`},
		{"negative concurrency", `{"concurrency": -1}`},
		{"unsatisfied requires", `{"requires": ">= 99.0.0"}`},
		{"bad constraint", `{"requires": "not a constraint"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.json")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Fatalf("expected error for %s", tt.data)
			}
		})
	}
}

func TestCheckRequires(t *testing.T) {
	tests := []struct {
		constraint string
		version    string
		ok         bool
	}{
		{"", "0.3.0", true},
		{"^0.3", "0.3.7", true},
		{">= 0.2, < 1.0", "0.3.0", true},
		{"~0.2", "0.3.0", false},
		{">= 1.0.0", "0.3.0", false},
	}

	for i, tt := range tests {
		err := CheckRequires(tt.constraint, tt.version)
		if (err == nil) != tt.ok {
			t.Fatalf("tests[%d] - CheckRequires(%q, %q) = %v, expected ok=%v",
				i, tt.constraint, tt.version, err, tt.ok)
		}
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	off := false
	cfg := DefaultConfig()
	cfg.Widening = &off

	if err := cfg.SaveConfig(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Widening == nil || *loaded.Widening {
		t.Fatal("widening setting lost")
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(false, false)
	l.SetOutput(&buf)
	l.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Info("hidden")
	l.Debug("hidden")
	l.Warn("careful %d", 1)
	if got := buf.String(); got != "[WARN] 03:04:05: careful 1\n" {
		t.Fatalf("unexpected output %q", got)
	}

	buf.Reset()
	l.Verbose = true
	l.Info("shown")
	l.Debug("hidden")
	if strings.Count(buf.String(), "\n") != 1 || !strings.Contains(buf.String(), "[INFO]") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestPrintVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf, "declcheck", true)

	var out struct {
		Tool string      `json:"tool"`
		Info VersionInfo `json:"version_info"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if out.Tool != "declcheck" || out.Info.Version != Version {
		t.Fatalf("unexpected version output %+v", out)
	}
}

func TestServerRequiresIsSeparateFromToolRequires(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	data := `{"requires": ">= 0.1.0", "server": {"requires": ">= 99.0.0"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("server constraint must not gate the local version: %v", err)
	}
	if cfg.Server.Requires != ">= 99.0.0" || cfg.Requires != ">= 0.1.0" {
		t.Fatalf("unexpected constraints %+v", cfg)
	}

	if err := os.WriteFile(path, []byte(`{"server": {"requires": "not a constraint"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed server constraint")
	}
}

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		args     []string
		min, max int
		ok       bool
	}{
		{nil, 0, 1, true},
		{[]string{"a"}, 1, 1, true},
		{nil, 1, 1, false},
		{[]string{"a", "b"}, 1, 1, false},
		{[]string{"a", "b", "c"}, 1, -1, true},
	}

	for i, tt := range tests {
		err := ValidateArgs(tt.args, tt.min, tt.max)
		if (err == nil) != tt.ok {
			t.Fatalf("tests[%d] - ValidateArgs(%v, %d, %d) = %v, expected ok=%v",
				i, tt.args, tt.min, tt.max, err, tt.ok)
		}
	}
}
