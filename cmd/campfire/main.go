package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/appengine-ltd/campfire-cantos/internal/config"
	"github.com/appengine-ltd/campfire-cantos/internal/session"
	"github.com/appengine-ltd/campfire-cantos/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		seed        int64
		savePath    string
		journalDir  string
		logLevel    string
		dumpConfig  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "YAML config file overlaid on the built-in defaults")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = config value, then time-based)")
	flag.StringVar(&savePath, "save", "", "default save path (.db/.sqlite for SQLite)")
	flag.StringVar(&journalDir, "journal-dir", "", "write a CSV journal of every command to this directory")
	flag.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	flag.StringVar(&dumpConfig, "dump-config", "", "write the effective config as YAML to this path and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("Campfire Cantos %s (%s) %s\n", version, commit, date)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if savePath != "" {
		cfg.Save.Path = savePath
	}
	if journalDir != "" {
		cfg.Journal.Enabled = true
		cfg.Journal.Dir = journalDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if dumpConfig != "" {
		if err := cfg.WriteYAML(dumpConfig); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdin, os.Stdout); err != nil {
		slog.Error("campfire stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := session.New(session.Options{Config: cfg, Seed: seed, Logger: logger})
	if err != nil {
		return err
	}
	defer s.Close()
	logger.Debug("session started", "session", s.ID, "seed", seed)

	if isTerminal(in) {
		return play(ctx, s, in, out)
	}

	fmt.Fprintln(out, ui.Banner(version))
	for _, line := range s.Intro() {
		fmt.Fprintln(out, line)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		reply := s.Handle(ctx, line)
		for _, l := range reply.Lines {
			fmt.Fprintln(out, l)
		}
		if reply.Quit {
			return nil
		}
		if ctx.Err() != nil {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	// EOF without quit still gets the summary.
	for _, l := range s.Handle(ctx, "quit").Lines {
		fmt.Fprintln(out, l)
	}
	return nil
}

// isTerminal reports whether input comes from a person at a terminal rather
// than a pipe or script.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func play(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	intro := append([]string{ui.Banner(version)}, s.Intro()...)
	m := ui.NewPlayModel(intro, func(line string) ([]string, bool) {
		reply := s.Handle(ctx, line)
		return reply.Lines, reply.Quit
	})
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("play: %w", err)
	}
	if pm, ok := final.(ui.PlayModel); !ok || !pm.Done() {
		for _, l := range s.Handle(ctx, "quit").Lines {
			fmt.Fprintln(out, l)
		}
	}
	return nil
}
