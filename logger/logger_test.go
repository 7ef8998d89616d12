package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("Output = %q, want stdout", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("Timestamp should default to true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "collect", "elements", 42)
	if m["op"] != "collect" || m["elements"] != 42 {
		t.Errorf("Fields = %v", m)
	}
}

func TestFields_OddPairs(t *testing.T) {
	m := Fields("op", "collect", "dangling")
	if len(m) != 1 {
		t.Errorf("expected dangling key dropped, got %v", m)
	}
}

func TestNop_Discards(t *testing.T) {
	l := Nop()
	// Must not panic and must not write anywhere observable.
	l.Info("ignored")
	l.Error("ignored", Fields("k", "v"))
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := &Logger{zl: zerolog.New(&buf)}
	l := base.WithComponent("stream")
	l.Info("hello")
	if !strings.Contains(buf.String(), `"component":"stream"`) {
		t.Errorf("output = %q, want component field", buf.String())
	}
}

func TestWithContext_DrainID(t *testing.T) {
	var buf bytes.Buffer
	base := &Logger{zl: zerolog.New(&buf)}
	ctx := ContextWithDrainID(context.Background(), "abc-123")
	base.WithContext(ctx).Info("drained")
	if !strings.Contains(buf.String(), "abc-123") {
		t.Errorf("output = %q, want drain id", buf.String())
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	base := &Logger{zl: zerolog.New(&buf)}
	base.WithError(errTest{}).Error("failed")
	if !strings.Contains(buf.String(), "kaput") {
		t.Errorf("output = %q, want error text", buf.String())
	}
}

type errTest struct{}

func (errTest) Error() string { return "kaput" }

func TestWithContext_Partition(t *testing.T) {
	var buf bytes.Buffer
	base := &Logger{zl: zerolog.New(&buf)}
	ctx := ContextWithPartition(context.Background(), "left/3")
	base.WithContext(ctx).Info("folded")
	if !strings.Contains(buf.String(), "left/3") {
		t.Errorf("output = %q, want partition label", buf.String())
	}
}
