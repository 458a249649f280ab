package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromUnwrapsChain(t *testing.T) {
	inner := New(http.StatusUnprocessableEntity, "resolution_failed", errors.New("no prefixes"))
	wrapped := fmt.Errorf("handler: %w", inner)
	got := From(wrapped)
	if got.Status != http.StatusUnprocessableEntity || got.Code != "resolution_failed" {
		t.Fatalf("unexpected error: status=%d code=%q", got.Status, got.Code)
	}
}

func TestFromDefaultsToInternal(t *testing.T) {
	got := From(errors.New("boom"))
	if got.Status != http.StatusInternalServerError || got.Code != "internal_error" {
		t.Fatalf("unexpected error: status=%d code=%q", got.Status, got.Code)
	}
	if From(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	if msg := (&Error{Code: "invalid_request"}).Error(); msg != "invalid_request" {
		t.Fatalf("want code as message, got %q", msg)
	}
	if msg := (&Error{Status: 418}).Error(); msg != "api error (418)" {
		t.Fatalf("want status message, got %q", msg)
	}
}
