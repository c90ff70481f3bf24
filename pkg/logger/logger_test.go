package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	log.Info("engine ready")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}

	if entry["message"] != "engine ready" {
		t.Errorf("Expected message 'engine ready', got %v", entry["message"])
	}

	if entry["level"] != "info" {
		t.Errorf("Expected level info, got %v", entry["level"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Debug("hidden")
	log.Info("also hidden")
	log.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info output to be suppressed, got %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("Expected warn output to appear, got %s", out)
	}
}

func TestComponentField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug").Component("pillars")

	log.Info("composed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}

	if entry["component"] != "pillars" {
		t.Errorf("Expected component field 'pillars', got %v", entry["component"])
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	log.WithFields(map[string]interface{}{
		"pillar": "甲寅",
		"idx60":  50,
	}).Debug("day pillar")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}

	if entry["pillar"] != "甲寅" {
		t.Errorf("Expected pillar field 甲寅, got %v", entry["pillar"])
	}

	if entry["idx60"] != float64(50) {
		t.Errorf("Expected idx60 field 50, got %v", entry["idx60"])
	}
}
