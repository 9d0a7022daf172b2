package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunVersionSucceeds(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "nhlpbp version") {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

func TestRunReportsErrorsWithExitOne(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"fetch", "--to-season", "bad"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "Error: ") {
		t.Fatalf("expected error on stderr, got %q", stderr.String())
	}
}
