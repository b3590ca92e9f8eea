package game

import (
	"math"
	"testing"
)

func weatherNamed(t *testing.T, name string) Weather {
	t.Helper()

	for _, w := range WeatherCatalog() {
		if w.Name == name {
			return w
		}
	}
	t.Fatalf("no weather named %s", name)
	return Weather{}
}

func eventNamed(t *testing.T, name string) Event {
	t.Helper()

	for _, e := range append(EventCatalog(), ColdSeasonEvents()...) {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("no event named %s", name)
	return Event{}
}

func TestAdvanceTimeWrapsHourOfDay(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Hours = 23

	g.AdvanceTime(3)

	if g.Player.Hours != 2 {
		t.Fatalf("expected clock to wrap to 2, got %d", g.Player.Hours)
	}
}

func TestAdvanceTimeIgnoresNonPositiveHours(t *testing.T) {
	g, rng := newStableGame(t)
	rng.Floats = []float64{0.0}

	out := g.AdvanceTime(0)

	if out.Performed || g.Player.Hours != 8 || len(rng.Floats) != 1 {
		t.Fatalf("expected zero hours to do nothing, got %+v", out)
	}
}

func TestNeedsAccrueWithThirstRate(t *testing.T) {
	g, _ := newScriptedGame(t, DefaultBalance())
	g.Climate.Weather = weatherNamed(t, "Heatwave")
	g.Player.Hunger = 10
	g.Player.Thirst = 10

	g.AdvanceTime(2)

	if g.Player.Hunger != 16 {
		t.Fatalf("expected hunger 10 + (2+1)*2 = 16, got %d", g.Player.Hunger)
	}
	if g.Player.Thirst != 20 {
		t.Fatalf("expected thirst 10 + (3+2)*2 = 20, got %d", g.Player.Thirst)
	}
}

func TestNeedsCapAtOneHundred(t *testing.T) {
	g, _ := newScriptedGame(t, DefaultBalance())
	g.Player.Hunger = 99
	g.Player.Thirst = 99

	out := g.AdvanceTime(3)

	if g.Player.Hunger != 100 || g.Player.Thirst != 100 {
		t.Fatalf("expected both capped at 100, got hunger %d thirst %d", g.Player.Hunger, g.Player.Thirst)
	}
	if g.Player.Health != 95 {
		t.Fatalf("expected starvation and dehydration damage, got health %d", g.Player.Health)
	}
	if !out.Has(TagStarving) || !out.Has(TagDehydrated) {
		t.Fatalf("expected starving and dehydrated tags, got %v", out.Tags())
	}
}

func TestSurvivalPenaltiesStackInOneTick(t *testing.T) {
	g, _ := newScriptedGame(t, DefaultBalance())
	g.Player.Location = 2
	g.Player.Hunger = 95
	g.Player.Thirst = 95
	g.Player.BodyTemp = 31

	out := g.AdvanceTime(1)

	if g.Player.Health != 90 {
		t.Fatalf("expected 2+3+5 damage, got health %d", g.Player.Health)
	}
	if g.Player.BodyTemp != minBodyTemp {
		t.Fatalf("expected body temp 30, got %d", g.Player.BodyTemp)
	}
	if !out.Has(TagHypothermia) {
		t.Fatalf("expected hypothermia tag, got %v", out.Tags())
	}

	g.AdvanceTime(1)
	if g.Player.BodyTemp != minBodyTemp {
		t.Fatalf("expected body temp clamped at %d, got %d", minBodyTemp, g.Player.BodyTemp)
	}
}

func TestHyperthermiaClampsHigh(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Location = 1
	g.Climate.Weather = weatherNamed(t, "Heatwave")
	g.Player.BodyTemp = 42

	out := g.AdvanceTime(1)

	if g.Player.BodyTemp != maxBodyTemp {
		t.Fatalf("expected body temp clamped at %d, got %d", maxBodyTemp, g.Player.BodyTemp)
	}
	if !out.Has(TagHyperthermia) || g.Player.Health != 95 {
		t.Fatalf("expected hyperthermia damage, got health %d tags %v", g.Player.Health, out.Tags())
	}
}

func TestBodyTemperatureResponses(t *testing.T) {
	cases := []struct {
		name     string
		location int
		weather  string
		fire     bool
		shelter  int
		want     int
	}{
		{name: "fire warms", location: 2, weather: "Clear", fire: true, want: 38},
		{name: "cold ambient chills", location: 2, weather: "Clear", want: 36},
		{name: "mild ambient holds", location: 0, weather: "Clear", want: 37},
		{name: "shelter offsets cold", location: 2, weather: "Clear", shelter: ShelterLeanTo, want: 37},
		{name: "shelter cools heat", location: 1, weather: "Heatwave", shelter: ShelterLeanTo, want: 37},
		{name: "shelter warms mild chill", location: 0, weather: "Rain", shelter: ShelterLeanTo, want: 38},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newStableGame(t)
			g.Player.Location = tc.location
			g.Climate.Weather = weatherNamed(t, tc.weather)
			g.Player.FireLit = tc.fire
			g.Player.Shelter.Level = tc.shelter

			g.AdvanceTime(1)

			if g.Player.BodyTemp != tc.want {
				t.Fatalf("expected body temp %d, got %d (ambient %d)", tc.want, g.Player.BodyTemp, g.AmbientTemp())
			}
		})
	}
}

func TestSeasonRolloverDecaysStress(t *testing.T) {
	g, _ := newStableGame(t)
	g.Climate.SeasonHours = 47
	stick := mustNode(t, g.Location(), ItemStick)
	stick.Stress = 3

	out := g.AdvanceTime(1)

	if g.Climate.SeasonIndex != 1 || g.Climate.SeasonHours != 0 {
		t.Fatalf("expected Summer with a reset timer, got index %d hours %d", g.Climate.SeasonIndex, g.Climate.SeasonHours)
	}
	if stick.Stress != 2 {
		t.Fatalf("expected stress decayed to 2, got %d", stick.Stress)
	}
	if n, ok := out.Find(TagSeasonChanged); !ok || n.Subject != "Summer" {
		t.Fatalf("expected season change to Summer, got %v", out.Events)
	}
}

func TestSeasonsWrapAround(t *testing.T) {
	g, _ := newStableGame(t)
	g.Climate.SeasonIndex = 3
	g.Climate.SeasonHours = 47

	g.AdvanceTime(1)

	if g.Climate.Season().Name != "Spring" {
		t.Fatalf("expected Winter to wrap to Spring, got %s", g.Climate.Season().Name)
	}
}

func TestMidnightAndSeasonDecayIndependently(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Hours = 23
	g.Climate.SeasonHours = 47
	stone := mustNode(t, g.World.At(4), ItemStone)
	stone.Stress = 5

	out := g.AdvanceTime(1)

	if stone.Stress != 3 {
		t.Fatalf("expected both decay passes to fire, got stress %d", stone.Stress)
	}
	if !out.Has(TagStressEased) || !out.Has(TagSeasonChanged) {
		t.Fatalf("expected midnight and season tags, got %v", out.Tags())
	}
}

func TestMidnightOnlyWhenClockLandsOnZero(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Hours = 22
	n := mustNode(t, g.Location(), ItemFiber)
	n.Stress = 4

	g.AdvanceTime(3)

	if n.Stress != 4 {
		t.Fatalf("expected no decay when passing midnight without landing on it, got %d", n.Stress)
	}
}

func TestWeatherShiftFollowsDraws(t *testing.T) {
	g, rng := newStableGame(t)
	rng.Floats = []float64{0.2}
	rng.Ints = []int{2}

	out := g.AdvanceTime(1)

	if g.Climate.Weather.Name != "Storm" {
		t.Fatalf("expected Storm, got %s", g.Climate.Weather.Name)
	}
	if !out.Has(TagWeatherShift) {
		t.Fatalf("expected weather shift tag, got %v", out.Tags())
	}
}

func TestWeatherHoldsAboveShiftChance(t *testing.T) {
	g, rng := newStableGame(t)
	rng.Floats = []float64{0.35}
	rng.Ints = []int{2}

	g.AdvanceTime(1)

	if g.Climate.Weather.Name != "Clear" || len(rng.Ints) != 1 {
		t.Fatalf("expected weather to hold without a catalog draw, got %s", g.Climate.Weather.Name)
	}
}

func TestEventStartsOnDailyCheck(t *testing.T) {
	g, rng := newStableGame(t)
	g.Climate.EventClockHours = 23
	rng.Floats = []float64{0.05}
	rng.Ints = []int{1}

	out := g.AdvanceTime(1)

	active := g.Climate.ActiveEvent
	if active == nil || active.Event.Name != "Drought" || active.RemainingHours != 24 {
		t.Fatalf("expected a fresh 24h Drought, got %+v", active)
	}
	if g.Climate.EventClockHours != 0 {
		t.Fatalf("expected event clock to drop back to 0, got %d", g.Climate.EventClockHours)
	}
	if !out.Has(TagEventStarted) {
		t.Fatalf("expected event started tag, got %v", out.Tags())
	}
}

func TestEventExpires(t *testing.T) {
	g, _ := newStableGame(t)
	g.Climate.ActiveEvent = &ActiveEvent{Event: eventNamed(t, "Cold Snap"), RemainingHours: 1}

	out := g.AdvanceTime(1)

	if g.Climate.ActiveEvent != nil {
		t.Fatalf("expected event cleared, got %+v", g.Climate.ActiveEvent)
	}
	if n, ok := out.Find(TagEventEnded); !ok || n.Subject != "Cold Snap" {
		t.Fatalf("expected Cold Snap end tag, got %v", out.Events)
	}
}

func TestActiveEventSkipsDailyRoll(t *testing.T) {
	g, rng := newStableGame(t)
	g.Climate.ActiveEvent = &ActiveEvent{Event: eventNamed(t, "Cold Snap"), RemainingHours: 10}
	g.Climate.EventClockHours = 23
	rng.Floats = []float64{0.0}
	rng.Ints = []int{3}

	g.AdvanceTime(1)

	if g.Climate.ActiveEvent == nil || g.Climate.ActiveEvent.Event.Name != "Cold Snap" || g.Climate.ActiveEvent.RemainingHours != 9 {
		t.Fatalf("expected Cold Snap to keep running, got %+v", g.Climate.ActiveEvent)
	}
	if g.Climate.Weather.Name != "Heatwave" {
		t.Fatalf("expected the queued float to reach the weather roll, got %s", g.Climate.Weather.Name)
	}
}

func TestColdestSeasonExtendsEventTable(t *testing.T) {
	g, rng := newStableGame(t)
	g.Climate.SeasonIndex = 3
	g.Climate.EventClockHours = 23
	rng.Floats = []float64{0.0}
	rng.Ints = []int{len(EventCatalog())}

	g.AdvanceTime(1)

	if g.Climate.ActiveEvent == nil || g.Climate.ActiveEvent.Event.Name != "Blizzard Front" {
		t.Fatalf("expected Blizzard Front in Winter, got %+v", g.Climate.ActiveEvent)
	}
}

func TestModifierStackCombines(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Location = 2
	g.Climate.Weather = weatherNamed(t, "Frostwind")
	g.Climate.SeasonIndex = 3
	g.Climate.ActiveEvent = &ActiveEvent{Event: eventNamed(t, "Cold Snap"), RemainingHours: 5}

	if got := g.AmbientTemp(); got != 37-6-6-4-4 {
		t.Fatalf("expected ambient 17, got %d", got)
	}

	g.Climate.Weather = weatherNamed(t, "Heatwave")
	g.Climate.ActiveEvent = &ActiveEvent{Event: eventNamed(t, "Drought"), RemainingHours: 5}
	if got := g.Climate.ThirstRate(); got != 4 {
		t.Fatalf("expected thirst rate 2+2, got %d", got)
	}
	if got := g.Climate.RegenModifier(); got != -2 {
		t.Fatalf("expected Winter and Drought regen -2, got %d", got)
	}
}

func TestFireFailureChanceClamps(t *testing.T) {
	cases := []struct {
		name    string
		weather string
		event   string
		comfort int
		want    float64
	}{
		{name: "clear", weather: "Clear", want: 0.12},
		{name: "storm", weather: "Storm", want: 0.47},
		{name: "frostwind floors at zero", weather: "Frostwind", want: 0},
		{name: "comfort eases", weather: "Clear", comfort: 6, want: 0.08},
		{name: "storm and cold snap", weather: "Storm", event: "Cold Snap", want: 0.57},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newStableGame(t)
			g.Climate.Weather = weatherNamed(t, tc.weather)
			if tc.event != "" {
				g.Climate.ActiveEvent = &ActiveEvent{Event: eventNamed(t, tc.event), RemainingHours: 5}
			}
			g.Player.CampComfort = tc.comfort

			if got := g.FireFailureChance(); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %.2f, got %v", tc.want, got)
			}
		})
	}
}

func TestHuntChanceClamps(t *testing.T) {
	g, _ := newStableGame(t)
	g.Climate.Weather = weatherNamed(t, "Storm")
	g.Climate.SeasonIndex = 3
	g.Climate.ActiveEvent = &ActiveEvent{Event: eventNamed(t, "Blizzard Front"), RemainingHours: 5}
	if got := g.HuntChance(); got != 0.1 {
		t.Fatalf("expected floor 0.1, got %v", got)
	}

	g.Climate.Weather = weatherNamed(t, "Fairy Mist")
	g.Climate.SeasonIndex = 0
	g.Climate.ActiveEvent = &ActiveEvent{Event: eventNamed(t, "Game Migration"), RemainingHours: 5}
	g.Player.Inventory.Add(ItemRope, 1)
	g.Player.Inventory.Add(ItemFiber, 1)
	if got := g.HuntChance(); got > 0.9 || got < 0.85 {
		t.Fatalf("expected chance near the 0.9 ceiling, got %v", got)
	}
}

func TestFireDrawOnlyWhileLit(t *testing.T) {
	g, rng := newStableGame(t)
	rng.Floats = []float64{0.9, 0.0}

	g.AdvanceTime(1)
	if len(rng.Floats) != 1 {
		t.Fatalf("expected no fire draw while the fire is out, %d floats left", len(rng.Floats))
	}

	g.Player.FireLit = true
	rng.Floats = []float64{0.9, 0.0}
	out := g.AdvanceTime(1)
	if g.Player.FireLit || !out.Has(TagFireDied) {
		t.Fatalf("expected the fire to fail on a 0.0 draw, got %v", out.Tags())
	}
}

func TestCampComfort(t *testing.T) {
	cases := []struct {
		name    string
		fire    bool
		shelter int
		start   int
		hours   int
		want    int
	}{
		{name: "fire builds comfort", fire: true, start: 2, hours: 3, want: 5},
		{name: "fire caps at ten", fire: true, start: 9, hours: 3, want: 10},
		{name: "no fire decays", start: 5, hours: 3, want: 2},
		{name: "shelter slows decay", shelter: ShelterLeanTo, start: 5, hours: 3, want: 3},
		{name: "decay floors at zero", start: 1, hours: 3, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newStableGame(t)
			g.Player.FireLit = tc.fire
			g.Player.Shelter.Level = tc.shelter
			g.Player.CampComfort = tc.start

			g.AdvanceTime(tc.hours)

			if g.Player.CampComfort != tc.want {
				t.Fatalf("expected comfort %d, got %d", tc.want, g.Player.CampComfort)
			}
		})
	}
}

func TestRegenerationRunsOncePerHour(t *testing.T) {
	g, _ := newStableGame(t)
	g.Climate.SeasonIndex = 1
	stick := mustNode(t, g.Location(), ItemStick)
	stick.Count = 0

	g.AdvanceTime(3)

	if stick.Count != 6 {
		t.Fatalf("expected 3 hours of regen 2, got %d", stick.Count)
	}
}

func TestComfortGrantsLocalRegenBonus(t *testing.T) {
	g, _ := newStableGame(t)
	g.Climate.SeasonIndex = 1
	g.Player.FireLit = true
	g.Player.CampComfort = 6
	here := mustNode(t, g.Location(), ItemStick)
	there := mustNode(t, g.World.At(5), ItemStick)
	here.Count = 0
	there.Count = 0

	g.AdvanceTime(1)

	if here.Count != 3 || there.Count != 2 {
		t.Fatalf("expected local bonus only at camp, got here=%d there=%d", here.Count, there.Count)
	}
}

func TestAmbientNarrationLeavesStateAlone(t *testing.T) {
	quiet, _ := newStableGame(t)
	chatty, _ := newStableGame(t)
	chatty.flavor = &ScriptedRand{DefaultFloat: 0.0}

	quiet.AdvanceTime(5)
	out := chatty.AdvanceTime(5)

	if !out.Has(TagAmbient) {
		t.Fatalf("expected ambient narration, got %v", out.Tags())
	}
	if !sameState(quiet.Snapshot("", zeroTime), chatty.Snapshot("", zeroTime)) {
		t.Fatalf("expected narration to leave the simulation untouched")
	}
}
