package server_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/example/go-fry-tts/internal/server"
)

// capturingHandler captures all slog records during a test.
type capturingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (c *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }
func (c *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, r)
	return nil
}
func (c *capturingHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return c }
func (c *capturingHandler) WithGroup(name string) slog.Handler       { return c }

func (c *capturingHandler) find(msg string) (slog.Record, map[string]any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.records {
		if r.Message != msg {
			continue
		}
		m := make(map[string]any)
		r.Attrs(func(a slog.Attr) bool {
			m[a.Key] = a.Value.Any()
			return true
		})
		return r, m, true
	}
	return slog.Record{}, nil, false
}

func TestSynth_LogsCompletionWithTypedAttrs(t *testing.T) {
	cap := &capturingHandler{}
	h := newTestHandler(&stubSynthesizer{chunks: [][]int16{{1, 2, 3}}}, server.WithLogger(slog.New(cap)))

	rec := postJSON(h, "/synth", map[string]any{"text": "Hello world."})
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	r, attrs, ok := cap.find("synthesis complete")
	if !ok {
		t.Fatal("want a synthesis complete record")
	}
	if r.Level != slog.LevelInfo {
		t.Errorf("level = %v, want INFO", r.Level)
	}
	if attrs["text_len"] != int64(len("Hello world.")) {
		t.Errorf("text_len = %v, want %d", attrs["text_len"], len("Hello world."))
	}
	if attrs["samples"] != int64(3) {
		t.Errorf("samples = %v, want 3", attrs["samples"])
	}
	for _, key := range []string{"duration_ms", "wav_bytes"} {
		if _, ok := attrs[key]; !ok {
			t.Errorf("want %s attribute in log record", key)
		}
	}
}

func TestSynth_LogsFailureAtErrorLevel(t *testing.T) {
	cap := &capturingHandler{}
	h := newTestHandler(&stubSynthesizer{err: errors.New("bank exploded")}, server.WithLogger(slog.New(cap)))

	rec := postJSON(h, "/synth", map[string]any{"text": "hello"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", rec.Code)
	}

	r, attrs, ok := cap.find("synthesis failed")
	if !ok {
		t.Fatal("want a synthesis failed record")
	}
	if r.Level != slog.LevelError {
		t.Errorf("level = %v, want ERROR", r.Level)
	}
	if attrs["error"] != "bank exploded" {
		t.Errorf("error = %v, want %q", attrs["error"], "bank exploded")
	}
}

func TestSynth_StreamAbortAfterHeaderIsLogged(t *testing.T) {
	cap := &capturingHandler{}
	stub := &stubSynthesizer{chunks: [][]int16{{1}}, err: errors.New("mid-stream")}
	h := newTestHandler(stub, server.WithLogger(slog.New(cap)))

	rec := postJSON(h, "/synth", map[string]any{"text": "hello", "stream": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200 once the header is out, got %d", rec.Code)
	}

	if _, _, ok := cap.find("synthesis stream aborted"); !ok {
		t.Error("want a synthesis stream aborted record")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := server.ParseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
