package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry[AttrKeyService] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry[AttrKeyService])
	}

	if logEntry[AttrKeyVersion] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry[AttrKeyVersion])
	}

	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg=test message, got %v", logEntry["msg"])
	}

	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}
}

func TestTextLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       LogLevelDebug,
		Format:      LogFormatText,
		ServiceName: "test-service",
		Version:     "dev",
		Environment: EnvironmentTest,
	}

	InitLoggerWithWriter(config, &buf)

	Warn("something odd")

	output := buf.String()
	if !strings.Contains(output, "something odd") {
		t.Errorf("Expected output to contain message, got %q", output)
	}
	if !strings.Contains(output, "test-service") {
		t.Errorf("Expected output to contain service name, got %q", output)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:  LogLevelError,
		Format: LogFormatText,
	}

	InitLoggerWithWriter(config, &buf)

	Info("should be filtered")
	Error("should appear")

	output := buf.String()
	if strings.Contains(output, "should be filtered") {
		t.Errorf("Info message leaked through error-level filter: %q", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Errorf("Error message missing from output: %q", output)
	}
}

func TestTraceIDContext(t *testing.T) {
	id := GenerateTraceID()
	if id == "" {
		t.Fatal("GenerateTraceID returned empty string")
	}

	ctx := WithTraceID(context.Background(), id)

	got, ok := TraceIDFromContext(ctx)
	if !ok {
		t.Fatal("TraceIDFromContext did not find the trace ID")
	}
	if got != id {
		t.Errorf("Expected trace ID %q, got %q", id, got)
	}

	if _, ok := TraceIDFromContext(context.Background()); ok {
		t.Error("TraceIDFromContext found an ID in an empty context")
	}
}

func TestFromContextIncludesTraceID(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelInfo, Format: LogFormatJSON}, &buf)

	ctx := WithTraceID(context.Background(), "trace-123")
	FromContext(ctx).Info("traced message")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry[AttrKeyTraceID] != "trace-123" {
		t.Errorf("Expected trace_id=trace-123, got %v", logEntry[AttrKeyTraceID])
	}
}

func TestReporterForwardsToSlog(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelInfo, Format: LogFormatText}, &buf)

	reporter := NewReporter()
	reporter.Warn(context.Background(), "slot skipped", "slot", "crate_rifle")
	reporter.Error(context.Background(), "bad maximum", "template", "weapon_relic")

	output := buf.String()
	if !strings.Contains(output, "slot skipped") {
		t.Errorf("Warn output missing: %q", output)
	}
	if !strings.Contains(output, "bad maximum") {
		t.Errorf("Error output missing: %q", output)
	}
}
