package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	l := &Logger{redact: true}
	out := l.sanitizeKVs([]interface{}{"openai_api_key", "sk-123", "program", "Computer Science"})
	if out[1] != "[REDACTED]" {
		t.Fatalf("expected api key redacted, got %v", out[1])
	}
	if out[3] != "Computer Science" {
		t.Fatalf("expected program untouched, got %v", out[3])
	}
}

func TestSanitizeKVsHashesStudentID(t *testing.T) {
	l := &Logger{redact: true, salt: "pepper"}
	out := l.sanitizeKVs([]interface{}{"student_id", "abc-123"})
	got, ok := out[1].(string)
	if !ok || !strings.HasPrefix(got, "hash:") {
		t.Fatalf("expected hashed value, got %v", out[1])
	}
	again := l.sanitizeKVs([]interface{}{"student_id", "abc-123"})
	if again[1] != got {
		t.Fatalf("expected stable hash, got %v and %v", got, again[1])
	}
}

func TestSanitizeKVsDisabled(t *testing.T) {
	l := &Logger{redact: false}
	out := l.sanitizeKVs([]interface{}{"password", "hunter2"})
	if out[1] != "hunter2" {
		t.Fatalf("expected passthrough when redaction disabled, got %v", out[1])
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	l := &Logger{redact: true}
	out := l.sanitizeKVs([]interface{}{"stage", "curate", "dangling"})
	if len(out) != 3 || out[2] != "dangling" {
		t.Fatalf("expected dangling key preserved, got %v", out)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("ignored", "k", "v")
	if l.With("k", "v") != nil {
		t.Fatalf("expected nil With on nil logger")
	}
}
