package promptstyle

import (
	"strings"
	"testing"
)

func TestApplySystemIsIdempotent(t *testing.T) {
	once := ApplySystem("Build a plan.\nMore rules.", "json")
	if !strings.HasPrefix(once, marker) {
		t.Fatalf("expected marker prefix, got %q", once)
	}
	if !strings.Contains(once, "Task summary: Build a plan.") {
		t.Fatalf("expected task summary from first line, got %q", once)
	}
	if !strings.Contains(once, "single JSON object") {
		t.Fatalf("expected json guidance")
	}
	if twice := ApplySystem(once, "json"); twice != once {
		t.Fatalf("expected idempotent output")
	}
}

func TestApplySystemEmpty(t *testing.T) {
	if got := ApplySystem("   ", "json"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
