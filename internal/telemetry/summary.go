package telemetry

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a run's journal.
type Summary struct {
	Session    string  `csv:"session"`
	Turns      int     `csv:"turns"`
	Actions    int     `csv:"actions"`
	Hours      int     `csv:"hours"`
	HealthMean float64 `csv:"health_mean"`
	HealthStd  float64 `csv:"health_std"`
	HealthMin  int     `csv:"health_min"`
	HungerMean float64 `csv:"hunger_mean"`
	ThirstMean float64 `csv:"thirst_mean"`
	FireShare  float64 `csv:"fire_share"`
	Collapsed  bool    `csv:"collapsed"`
}

// Summarize computes vitals statistics over the entries that spent time.
func Summarize(entries []Entry) Summary {
	s := Summary{Turns: len(entries)}
	health := make([]float64, 0, len(entries))
	hunger := make([]float64, 0, len(entries))
	thirst := make([]float64, 0, len(entries))
	fire := make([]float64, 0, len(entries))
	for i, e := range entries {
		if i == 0 || e.Health < s.HealthMin {
			s.HealthMin = e.Health
		}
		if e.Collapsed {
			s.Collapsed = true
		}
		if !e.Performed {
			continue
		}
		s.Actions++
		s.Hours += e.Hours
		health = append(health, float64(e.Health))
		hunger = append(hunger, float64(e.Hunger))
		thirst = append(thirst, float64(e.Thirst))
		if e.FireLit {
			fire = append(fire, 1)
		} else {
			fire = append(fire, 0)
		}
	}
	if len(health) == 0 {
		return s
	}

	s.HealthMean = stat.Mean(health, nil)
	if len(health) > 1 {
		s.HealthStd = stat.StdDev(health, nil)
	}
	s.HungerMean = stat.Mean(hunger, nil)
	s.ThirstMean = stat.Mean(thirst, nil)
	s.FireShare = stat.Mean(fire, nil)
	return s
}

func (s Summary) String() string {
	if s.Actions == 0 {
		return fmt.Sprintf("%d commands, no time spent.", s.Turns)
	}
	out := fmt.Sprintf("%d actions over %d hours. Health averaged %.0f (±%.1f, low %d); hunger %.0f, thirst %.0f; fire lit %.0f%% of the time.",
		s.Actions, s.Hours, s.HealthMean, s.HealthStd, s.HealthMin, s.HungerMean, s.ThirstMean, s.FireShare*100)
	if s.Collapsed {
		out += " The run ended in collapse."
	}
	return out
}
