package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.WarnLevel},
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warning", log.WarnLevel},
		{" error ", log.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
}

func TestOp(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, log.DebugLevel))
	defer SetLogger(nil)

	done := Op("diff", "first", "cs:3")
	done(nil, "lines", 2)

	out := buf.String()
	for _, want := range []string{"operation start", "operation complete", "op=diff", "first=cs:3", "lines=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	Op("diff")(errors.New("boom"))
	if !strings.Contains(buf.String(), "operation failed") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("failure not logged:\n%s", buf.String())
	}
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmpatch.log")
	closeFn, err := Init(path, log.InfoLevel)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	L().Info("hello", "k", "v")
	if err := closeFn(); err != nil {
		t.Fatalf("close error: %v", err)
	}
	SetLogger(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}
}

func TestInit_Disabled(t *testing.T) {
	closeFn, err := Init("", log.DebugLevel)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	L().Info("dropped")
}

func TestInit_BadPath(t *testing.T) {
	if _, err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), log.InfoLevel); err == nil {
		t.Error("expected error for unwritable path")
	}
}
