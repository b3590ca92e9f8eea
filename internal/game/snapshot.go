package game

import (
	"errors"
	"fmt"
	"time"
)

// SnapshotVersion is bumped whenever the persisted field list changes.
// Version 1 saves carry no season or event block.
const SnapshotVersion = 2

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the persisted form of a game.
type Snapshot struct {
	Version      int                   `json:"version"`
	SessionID    string                `json:"session_id,omitempty"`
	SavedAt      time.Time             `json:"saved_at"`
	Player       Player                `json:"player"`
	Weather      Weather               `json:"weather"`
	Season       *SeasonClock          `json:"season,omitempty"`
	Event        *EventClock           `json:"event,omitempty"`
	Environments []EnvironmentSnapshot `json:"environments"`
}

type SeasonClock struct {
	Index int `json:"index"`
	Hours int `json:"hours"`
}

type EventClock struct {
	Active     *ActiveEvent `json:"active,omitempty"`
	ClockHours int          `json:"clock_hours"`
}

// EnvironmentSnapshot records one location's nodes keyed by item name.
type EnvironmentSnapshot struct {
	Name  string                  `json:"name"`
	Nodes map[string]ResourceNode `json:"nodes"`
}

// Snapshot captures the full mutable state.
func (g *Game) Snapshot(sessionID string, now time.Time) Snapshot {
	c := g.Climate
	snap := Snapshot{
		Version:   SnapshotVersion,
		SessionID: sessionID,
		SavedAt:   now.UTC(),
		Player:    g.Player.clone(),
		Weather:   c.Weather,
		Season:    &SeasonClock{Index: c.SeasonIndex, Hours: c.SeasonHours},
		Event:     &EventClock{ClockHours: c.EventClockHours},
	}
	if c.ActiveEvent != nil {
		active := *c.ActiveEvent
		snap.Event.Active = &active
	}
	for _, env := range g.World.Environments {
		es := EnvironmentSnapshot{Name: env.Name, Nodes: make(map[string]ResourceNode, len(env.Nodes))}
		for _, n := range env.Nodes {
			es.Nodes[n.Item] = *n
		}
		snap.Environments = append(snap.Environments, es)
	}
	return snap
}

// Restore replaces the game state with snap. On error the current state is
// left untouched.
func (g *Game) Restore(snap Snapshot) error {
	if err := g.validatePlayer(snap.Player); err != nil {
		return err
	}

	world := DefaultWorld()
	if len(snap.Environments) != world.Len() {
		return fmt.Errorf("%w: %d environments, want %d", ErrInvalidSnapshot, len(snap.Environments), world.Len())
	}
	for i, es := range snap.Environments {
		env := world.At(i)
		if es.Name != env.Name {
			return fmt.Errorf("%w: environment %d is %q, want %q", ErrInvalidSnapshot, i, es.Name, env.Name)
		}
		for item, saved := range es.Nodes {
			n, ok := env.Node(item)
			if !ok {
				return fmt.Errorf("%w: %s has no %s node", ErrInvalidSnapshot, env.Name, item)
			}
			if saved.MaxCount < 0 || saved.Count < 0 || saved.Count > saved.MaxCount {
				return fmt.Errorf("%w: %s %s count %d outside [0,%d]", ErrInvalidSnapshot, env.Name, item, saved.Count, saved.MaxCount)
			}
			if saved.Stress < 0 || saved.Stress > maxNodeStress {
				return fmt.Errorf("%w: %s %s stress %d outside [0,%d]", ErrInvalidSnapshot, env.Name, item, saved.Stress, maxNodeStress)
			}
			saved.Item = item
			*n = saved
		}
	}

	climate := Climate{Weather: snap.Weather, Seasons: SeasonCatalog()}
	if snap.Season != nil {
		if snap.Season.Index < 0 || snap.Season.Index >= len(climate.Seasons) {
			return fmt.Errorf("%w: season index %d", ErrInvalidSnapshot, snap.Season.Index)
		}
		climate.SeasonIndex = snap.Season.Index
		climate.SeasonHours = max(0, snap.Season.Hours)
	}
	if snap.Event != nil {
		climate.EventClockHours = max(0, snap.Event.ClockHours)
		if snap.Event.Active != nil && snap.Event.Active.RemainingHours > 0 {
			active := *snap.Event.Active
			climate.ActiveEvent = &active
		}
	}

	player := snap.Player.clone()
	if player.Inventory == nil {
		player.Inventory = Inventory{}
	}

	g.World = world
	g.Climate = climate
	g.Player = player
	g.collapsed = player.Health <= 0
	g.log.Debug("snapshot restored",
		"session", snap.SessionID,
		"version", snap.Version,
		"location", g.Location().Name,
	)
	return nil
}

func (g *Game) validatePlayer(p Player) error {
	checks := []struct {
		name   string
		value  int
		lo, hi int
	}{
		{"health", p.Health, -maxVital, maxVital},
		{"hunger", p.Hunger, 0, maxVital},
		{"thirst", p.Thirst, 0, maxVital},
		{"body_temp", p.BodyTemp, minBodyTemp, maxBodyTemp},
		{"location", p.Location, 0, g.World.Len() - 1},
		{"hours", p.Hours, 0, hoursPerDay - 1},
		{"shelter.level", p.Shelter.Level, ShelterNone, ShelterEnchanted},
		{"camp_comfort", p.CampComfort, 0, maxComfort},
	}
	for _, c := range checks {
		if c.value < c.lo || c.value > c.hi {
			return fmt.Errorf("%w: player %s %d outside [%d,%d]", ErrInvalidSnapshot, c.name, c.value, c.lo, c.hi)
		}
	}
	for item, qty := range p.Inventory {
		if qty < 0 {
			return fmt.Errorf("%w: inventory %s is negative", ErrInvalidSnapshot, item)
		}
	}
	return nil
}
