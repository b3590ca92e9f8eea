package game

// Draw order for one AdvanceTime call, which scripted tests rely on:
//
//	event clock:  Float64 per elapsed check interval with no active event,
//	              followed by IntN(event table) when it starts one
//	weather:      Float64, followed by IntN(catalog) on a shift
//	fire:         Float64, only while the fire is lit
//
// Ambient narration draws from the separate flavor source only.

const ambientNarrationChance = 0.5

// AdvanceTime runs the simulation clock for hours of in-game time and
// returns the narration it produced. It does nothing once the game has
// collapsed.
func (g *Game) AdvanceTime(hours int) Outcome {
	out := Outcome{Command: CommandNone}
	if hours <= 0 || g.collapsed {
		return out
	}
	out.Performed = true
	out.Hours = hours
	g.advanceTime(hours, &out)
	return out
}

func (g *Game) advanceTime(hours int, out *Outcome) {
	if hours <= 0 || g.collapsed {
		return
	}
	p := &g.Player

	p.Hours = (p.Hours + hours) % hoursPerDay
	g.tickSeason(hours, out)
	g.tickEvent(hours, out)
	g.tickComfort(hours)
	g.rollWeather(out)
	g.tickNeeds(hours)
	g.tickBodyTemp()
	g.rollFire(out)
	g.regenerate(hours)
	if p.Hours == 0 {
		g.World.DecayAllStress()
		out.emit(TagStressEased, "midnight", 0, "")
	}
	g.narrateAmbient(out)
	g.resolveSurvival(out)
}

func (g *Game) tickSeason(hours int, out *Outcome) {
	c := &g.Climate
	c.SeasonHours += hours
	if c.SeasonHours < g.Balance.SeasonLengthHours {
		return
	}
	c.SeasonHours = 0
	if len(c.Seasons) > 0 {
		c.SeasonIndex = (c.SeasonIndex + 1) % len(c.Seasons)
	}
	g.World.DecayAllStress()
	season := c.Season()
	out.emit(TagSeasonChanged, season.Name, c.SeasonIndex, season.Description)
	g.log.Debug("season changed", "season", season.Name, "index", c.SeasonIndex)
}

func (g *Game) tickEvent(hours int, out *Outcome) {
	c := &g.Climate
	if c.ActiveEvent != nil {
		c.ActiveEvent.RemainingHours -= hours
		if c.ActiveEvent.RemainingHours <= 0 {
			ended := c.ActiveEvent.Event
			c.ActiveEvent = nil
			out.emit(TagEventEnded, ended.Name, 0, "")
			g.log.Debug("event ended", "event", ended.Name)
		}
	}

	c.EventClockHours += hours
	for c.EventClockHours >= g.Balance.EventCheckHours {
		c.EventClockHours -= g.Balance.EventCheckHours
		if c.ActiveEvent != nil {
			continue
		}
		if g.rng.Float64() >= g.Balance.EventChance {
			continue
		}
		table := c.eventTable()
		event := table[g.rng.IntN(len(table))]
		c.ActiveEvent = &ActiveEvent{Event: event, RemainingHours: event.DurationHours}
		out.emit(TagEventStarted, event.Name, event.DurationHours, event.Description)
		g.log.Debug("event started", "event", event.Name, "hours", event.DurationHours)
	}
}

func (g *Game) tickComfort(hours int) {
	p := &g.Player
	if p.FireLit {
		p.CampComfort = min(maxComfort, p.CampComfort+hours)
		return
	}
	decay := hours
	if p.Shelter.Built() {
		decay--
	}
	p.CampComfort = max(0, p.CampComfort-max(0, decay))
}

func (g *Game) rollWeather(out *Outcome) {
	if g.rng.Float64() >= g.Balance.WeatherShiftChance {
		return
	}
	catalog := WeatherCatalog()
	next := catalog[g.rng.IntN(len(catalog))]
	previous := g.Climate.Weather.Name
	g.Climate.Weather = next
	out.emit(TagWeatherShift, next.Name, 0, next.Mood)
	g.log.Debug("weather shift", "from", previous, "to", next.Name)
}

func (g *Game) tickNeeds(hours int) {
	p := &g.Player
	rate := g.Climate.ThirstRate()
	p.Hunger = min(maxVital, p.Hunger+(g.Balance.BaseHungerRate+max(0, rate/2))*hours)
	p.Thirst = min(maxVital, max(0, p.Thirst+(g.Balance.BaseThirstRate+rate)*hours))
}

func (g *Game) tickBodyTemp() {
	p := &g.Player
	b := g.Balance
	ambient := g.AmbientTemp()
	switch {
	case p.FireLit:
		p.BodyTemp++
	case ambient < b.ColdAmbient:
		p.BodyTemp--
	case ambient > b.HotAmbient:
		p.BodyTemp++
	}
	if !p.Shelter.Built() {
		return
	}
	switch {
	case ambient < b.ShelterColdAmbient:
		p.BodyTemp++
	case ambient > b.ShelterHotAmbient:
		p.BodyTemp--
	}
}

func (g *Game) rollFire(out *Outcome) {
	if !g.Player.FireLit {
		return
	}
	if g.rng.Float64() >= g.FireFailureChance() {
		return
	}
	g.Player.FireLit = false
	out.emit(TagFireDied, g.Climate.Weather.Name, 0, "")
	g.log.Debug("fire went out", "weather", g.Climate.Weather.Name, "comfort", g.Player.CampComfort)
}

func (g *Game) regenerate(hours int) {
	here := g.Location()
	seasonal := g.Climate.RegenModifier()
	local := 0
	if g.Player.CampComfort >= g.Balance.ComfortRegenLevel {
		local = g.Balance.ComfortRegenBonus
	}
	for range hours {
		g.World.eachNode(func(env *Environment, node *ResourceNode) {
			bonus := 0
			if env == here {
				bonus = local
			}
			node.Regenerate(seasonal, node.StressPenalty(), bonus)
		})
	}
}

func (g *Game) narrateAmbient(out *Outcome) {
	if g.flavor.Float64() >= ambientNarrationChance {
		return
	}
	env := g.Location()
	lines := env.Sounds.Day
	switch {
	case g.Climate.Weather.Name == "Storm" || g.Climate.Weather.Name == "Rain":
		lines = env.Sounds.Storm
	case g.Climate.InColdestSeason():
		lines = env.Sounds.Winter
	case g.Player.Hours < 6 || g.Player.Hours >= 20:
		lines = env.Sounds.Night
	}
	if len(lines) == 0 {
		return
	}
	out.emit(TagAmbient, env.Name, 0, lines[g.flavor.IntN(len(lines))])
}
