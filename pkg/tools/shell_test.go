package tools

import (
	"context"
	"strings"
	"testing"
)

func TestShellCapturesStdout(t *testing.T) {
	out, err := Shell(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimRight(out, "\n") != "hello" {
		t.Fatalf("expected %q, got %q", "hello", out)
	}
}

func TestShellNonZeroExitIsNotAnError(t *testing.T) {
	_, err := Shell(context.Background(), "exit 3")
	if err != nil {
		t.Fatalf("a non-zero exit should not itself be an error: %v", err)
	}
}
