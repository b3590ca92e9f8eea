package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/campfire-cantos/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Game.Seed = 99
	cfg.Save.Path = filepath.Join(t.TempDir(), "camp.json")
	return cfg
}

func TestRunPlaysUntilQuit(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("look\n\ndrink\nquit\nstatus\n")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := run(context.Background(), testConfig(t), logger, in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Campfire Cantos") {
		t.Fatalf("expected banner, got:\n%s", got)
	}
	if !strings.Contains(got, "You drink from") {
		t.Fatalf("expected drink narration, got:\n%s", got)
	}
	if strings.Contains(got, "Health    ") {
		t.Fatalf("expected input after quit to be ignored, got:\n%s", got)
	}
}

func TestRunSummarisesOnEOF(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := run(context.Background(), testConfig(t), logger, strings.NewReader("rest\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "The campfire fades behind you.") {
		t.Fatalf("expected closing summary on EOF, got:\n%s", out.String())
	}
}

func TestPipedInputIsNotATerminal(t *testing.T) {
	if isTerminal(strings.NewReader("look\n")) {
		t.Fatalf("expected a string reader to take the scripted path")
	}
}
