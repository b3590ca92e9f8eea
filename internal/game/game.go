package game

import (
	"fmt"
	"io"
	"log/slog"
)

// Options configures a new Game. Zero values fall back to defaults.
type Options struct {
	Seed    int64
	Rand    Rand
	Flavor  Rand
	Balance *Balance
	Logger  *slog.Logger
}

// Game is the single mutable aggregate for one play session. It is not safe
// for concurrent use.
type Game struct {
	Player  Player
	World   *World
	Climate Climate
	Balance Balance

	rng       Rand
	flavor    Rand
	log       *slog.Logger
	collapsed bool
}

// NewGame starts a session. Draw order: starting location, then opening weather.
func NewGame(opts Options) (*Game, error) {
	balance := DefaultBalance()
	if opts.Balance != nil {
		balance = opts.Balance.Clone()
	}
	if err := balance.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = NewRand(opts.Seed)
	}
	flavor := opts.Flavor
	if flavor == nil {
		flavor = NewRand(opts.Seed ^ 0x5eed)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	world := DefaultWorld()
	weathers := WeatherCatalog()
	g := &Game{
		World:   world,
		Balance: balance,
		rng:     rng,
		flavor:  flavor,
		log:     logger,
	}
	g.Player = newPlayer(balance, rng.IntN(world.Len()))
	g.Climate = Climate{
		Weather: weathers[rng.IntN(len(weathers))],
		Seasons: SeasonCatalog(),
	}
	g.log.Debug("game started",
		"location", g.Location().Name,
		"weather", g.Climate.Weather.Name,
	)
	return g, nil
}

func (g *Game) Location() *Environment {
	return g.World.At(g.Player.Location)
}

// Collapsed reports the terminal state. A collapsed game accepts no actions.
func (g *Game) Collapsed() bool {
	return g.collapsed
}

func (g *Game) AmbientTemp() int {
	return g.Climate.AmbientTemp(g.Location())
}

// FireFailureChance is the per-tick probability that a lit fire goes out.
func (g *Game) FireFailureChance() float64 {
	chance := g.Balance.FireFailureBase - g.Climate.FireModifier()
	if g.Player.CampComfort >= g.Balance.ComfortEaseLevel {
		chance -= g.Balance.ComfortFireEase
	}
	return clampFloat(chance, 0, 1)
}

func (g *Game) HuntChance() float64 {
	chance := g.Balance.HuntBase
	if g.Player.Inventory.Has(ItemRope, 1) {
		chance += g.Balance.HuntRopeBonus
	}
	chance += g.Climate.HuntModifier()
	return clampFloat(chance, g.Balance.HuntMinChance, g.Balance.HuntMaxChance)
}
