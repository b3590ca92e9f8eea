package game

// resolveSurvival applies threshold damage after a clock tick. All four
// checks are independent and may fire together.
func (g *Game) resolveSurvival(out *Outcome) {
	p := &g.Player
	b := g.Balance

	if p.Hunger >= b.StarvationLevel {
		p.Health -= b.StarvationDamage
		out.emit(TagStarving, "", b.StarvationDamage, "")
	}
	if p.Thirst >= b.DehydrationLevel {
		p.Health -= b.DehydrationDamage
		out.emit(TagDehydrated, "", b.DehydrationDamage, "")
	}
	if p.BodyTemp <= b.HypothermiaTemp {
		p.Health -= b.TemperatureDamage
		out.emit(TagHypothermia, "", b.TemperatureDamage, "")
	}
	if p.BodyTemp >= b.HyperthermiaTemp {
		p.Health -= b.TemperatureDamage
		out.emit(TagHyperthermia, "", b.TemperatureDamage, "")
	}

	p.BodyTemp = clamp(p.BodyTemp, minBodyTemp, maxBodyTemp)
	g.checkCollapse(out)
}

// checkCollapse moves the session into its terminal state once health is gone.
func (g *Game) checkCollapse(out *Outcome) {
	if g.collapsed || g.Player.Health > 0 {
		return
	}
	g.Player.Health = 0
	g.collapsed = true
	out.emit(TagCollapsed, g.Location().Name, 0, "")
	g.log.Debug("player collapsed", "location", g.Location().Name, "hour", g.Player.Hours)
}
