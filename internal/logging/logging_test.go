package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json"}, zapcore.AddSync(&buf))
	log.Debug("generated", zap.String("code", "2412"), zap.Int("points", 33))
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}
	if entry["msg"] != "generated" || entry["code"] != "2412" || entry["level"] != "debug" {
		t.Errorf("unexpected entry %v", entry)
	}
	if _, ok := entry["ts"]; ok {
		t.Error("timestamp should be omitted")
	}
}

func TestLevelFallback(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "bogus"}, zapcore.AddSync(&buf))
	log.Debug("hidden")
	log.Info("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry logged at fallback info level")
	}
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "shown") {
		t.Errorf("expected console info entry, got %q", out)
	}
}
