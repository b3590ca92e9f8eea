// Package session runs one play session: it parses player input, hands game
// commands to the core, handles save/load/quit itself and journals each turn.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/campfire-cantos/internal/config"
	"github.com/appengine-ltd/campfire-cantos/internal/game"
	"github.com/appengine-ltd/campfire-cantos/internal/parser"
	"github.com/appengine-ltd/campfire-cantos/internal/save"
	"github.com/appengine-ltd/campfire-cantos/internal/telemetry"
	"github.com/appengine-ltd/campfire-cantos/internal/ui"
)

type Options struct {
	Config *config.Config
	Seed   int64
	// Rand overrides the seeded source, for scripted runs.
	Rand   game.Rand
	Logger *slog.Logger
	Now    func() time.Time
}

// Reply is what the player sees after one line of input.
type Reply struct {
	Lines []string
	Quit  bool
}

type Session struct {
	ID string

	game    *game.Game
	parser  *parser.Parser
	journal *telemetry.Journal
	log     *slog.Logger
	cfg     *config.Config
	now     func() time.Time
	turn    int
}

func New(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load("")
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	id := uuid.NewString()
	logger = logger.With("session", id)

	balance := cfg.Balance
	g, err := game.NewGame(game.Options{
		Seed:    opts.Seed,
		Rand:    opts.Rand,
		Balance: &balance,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	journal, err := telemetry.NewJournal(cfg.JournalDir(), id)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	return &Session{
		ID:      id,
		game:    g,
		parser:  parser.New(),
		journal: journal,
		log:     logger,
		cfg:     cfg,
		now:     now,
	}, nil
}

func (s *Session) Game() *game.Game { return s.game }

// Intro is shown once before the first prompt.
func (s *Session) Intro() []string {
	return []string{ui.Look(s.game)}
}

// Handle processes one line of player input.
func (s *Session) Handle(ctx context.Context, line string) Reply {
	intent := s.parser.Parse(parser.ParseContext{Recipes: game.RecipeNames()}, line)
	if intent.Clarify != nil {
		return Reply{Lines: []string{ui.Clarify(intent.Clarify)}}
	}

	switch game.Command(intent.Verb) {
	case game.CommandHelp:
		return Reply{Lines: []string{ui.Help()}}
	case game.CommandSave:
		return s.save(ctx, intent.Arg())
	case game.CommandLoad:
		return s.load(ctx, intent.Arg())
	case game.CommandQuit:
		return s.quit()
	}

	cmd, ok := game.ParseCommand(intent.Verb)
	if !ok || !cmd.Core() {
		return Reply{Lines: ui.Lines(s.game.Execute(game.CommandNone, ""))}
	}
	arg := intent.Arg()
	out := s.game.Execute(cmd, arg)
	s.record(arg, out)

	lines := ui.Lines(out)
	if screen := ui.Screen(s.game, out); screen != "" {
		lines = append(lines, screen)
	}
	if out.Has(game.TagCollapsed) {
		lines = append(lines, "Only load, save, help, quit and the status screens remain.")
	}
	return Reply{Lines: lines}
}

func (s *Session) record(arg string, out game.Outcome) {
	s.turn++
	if err := s.journal.Write(telemetry.EntryFor(s.ID, s.turn, arg, s.game, out)); err != nil {
		s.log.Warn("journal write failed", "err", err)
	}
}

func (s *Session) savePath(arg string) string {
	if arg != "" {
		return arg
	}
	return s.cfg.Save.Path
}

func (s *Session) save(ctx context.Context, arg string) Reply {
	path := s.savePath(arg)
	store, err := save.ForPath(path)
	if err != nil {
		s.log.Warn("save failed", "path", path, "err", err)
		return Reply{Lines: []string{fmt.Sprintf("Save failed: %v", err)}}
	}
	defer store.Close()

	if err := store.Save(ctx, s.game.Snapshot(s.ID, s.now().UTC())); err != nil {
		s.log.Warn("save failed", "path", path, "err", err)
		return Reply{Lines: []string{fmt.Sprintf("Save failed: %v", err)}}
	}
	s.log.Info("game saved", "path", path)
	return Reply{Lines: []string{fmt.Sprintf("Saved to %s.", path)}}
}

func (s *Session) load(ctx context.Context, arg string) Reply {
	path := s.savePath(arg)
	store, err := save.ForPath(path)
	if err != nil {
		s.log.Warn("load failed", "path", path, "err", err)
		return Reply{Lines: []string{fmt.Sprintf("Load failed: %v", err)}}
	}
	defer store.Close()

	snap, err := store.Load(ctx)
	if errors.Is(err, save.ErrNotFound) {
		return Reply{Lines: []string{fmt.Sprintf("No save found at %s.", path)}}
	}
	if err == nil {
		err = s.game.Restore(snap)
	}
	if err != nil {
		s.log.Warn("load failed", "path", path, "err", err)
		return Reply{Lines: []string{fmt.Sprintf("Load failed: %v", err)}}
	}

	s.log.Info("game loaded", "path", path, "saved_session", snap.SessionID)
	lines := []string{fmt.Sprintf("Loaded %s.", path)}
	if !snap.SavedAt.IsZero() {
		lines[0] = fmt.Sprintf("Loaded %s (saved %s).", path, snap.SavedAt.Local().Format(time.DateTime))
	}
	return Reply{Lines: append(lines, ui.Look(s.game))}
}

func (s *Session) quit() Reply {
	summary := s.journal.Summary()
	if err := s.journal.WriteSummary(); err != nil {
		s.log.Warn("summary write failed", "err", err)
	}
	lines := []string{summary.String()}
	if p := s.journal.Path(); p != "" {
		lines = append(lines, "Journal: "+p)
	}
	return Reply{Lines: append(lines, "The campfire fades behind you."), Quit: true}
}

func (s *Session) Close() error {
	return s.journal.Close()
}
