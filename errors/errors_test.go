package errors

import (
	"errors"
	"io"
	"testing"
)

func TestInvariantf(t *testing.T) {
	cause := io.EOF

	t.Run("wrap error", func(t *testing.T) {
		err := Invariantf("boom: %v", cause)
		if !errors.Is(err, cause) {
			t.Fatalf("expected errors.Is to return true")
		}
	})

	t.Run("handles nil", func(t *testing.T) {
		var err *InvariantError
		if errors.Is(err, cause) {
			t.Fatalf("expected errors.Is to return false")
		}
	})

	t.Run("handle no arguments", func(t *testing.T) {
		err := Invariantf("boom")
		if errors.Is(err, cause) {
			t.Fatalf("expected errors.Is to return false")
		}
	})

	t.Run("handle non-error argument arguments", func(t *testing.T) {
		err := Invariantf("boom: %v", "shaka")
		if errors.Is(err, cause) {
			t.Fatalf("expected errors.Is to return false")
		}
	})

	t.Run("only the last argument is wrapped", func(t *testing.T) {
		err := Invariantf("boom: %v then %v", cause, "shaka")
		if errors.Is(err, cause) {
			t.Fatalf("expected errors.Is to return false for a non-final error argument")
		}
	})
}

func TestErrorMessage(t *testing.T) {
	t.Run("prefixes the package name", func(t *testing.T) {
		err := Invariantf("query %q requires an identifying argument", "node")
		want := `relayql: query "node" requires an identifying argument`
		if got := err.Error(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("nil receiver", func(t *testing.T) {
		var err *InvariantError
		if got := err.Error(); got != "<nil>" {
			t.Fatalf("got %q, want %q", got, "<nil>")
		}
	})
}
