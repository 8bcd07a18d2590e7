package logger

import (
	"path/filepath"
	"testing"
)

func TestInitIsIdempotent(t *testing.T) {
	t.Setenv("ACALA_LOG_FILE", filepath.Join(t.TempDir(), "acala.log"))

	Init("debug")
	first := Get()

	// A second Init must not replace the logger or attach another sink.
	Init("info")
	if Get() != first {
		t.Fatalf("expected repeated Init to keep the first logger")
	}
}
