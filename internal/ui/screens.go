package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/campfire-cantos/internal/game"
	"github.com/appengine-ltd/campfire-cantos/internal/parser"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("2")).
		Padding(0, 1)
)

var commandHelp = map[game.Command]string{
	game.CommandLook:       "describe where you are",
	game.CommandStatus:     "show vitals, fire, shelter and weather",
	game.CommandInventory:  "list what you carry",
	game.CommandGather:     "forage the local patches (1h)",
	game.CommandHunt:       "track local game (2h)",
	game.CommandDrink:      "drink from a nearby source (1h)",
	game.CommandEat:        "eat the most filling food you hold (1h)",
	game.CommandRest:       "rest and heal (3h)",
	game.CommandTravel:     "move to another place (2h)",
	game.CommandCraft:      "craft <item>: " + strings.Join(game.RecipeNames(), ", "),
	game.CommandCook:       "cook raw meat over a lit fire (1h)",
	game.CommandExtinguish: "put the fire out (1h)",
	game.CommandSave:       "save [path]",
	game.CommandLoad:       "load [path]",
	game.CommandHelp:       "show this list",
	game.CommandQuit:       "leave the game",
}

func Banner(version string) string {
	return titleStyle.Render("Campfire Cantos") + " " + dimStyle.Render(version) + "\n" +
		dimStyle.Render("Type help for commands.")
}

func Help() string {
	lines := make([]string, 0, len(game.Commands)+1)
	lines = append(lines, titleStyle.Render("Commands"))
	for _, cmd := range game.Commands {
		lines = append(lines, fmt.Sprintf("  %-11s %s", cmd, commandHelp[cmd]))
	}
	return strings.Join(lines, "\n")
}

func Look(g *game.Game) string {
	env := g.Location()
	lines := []string{
		titleStyle.Render(env.Name) + " " + dimStyle.Render("("+env.Terrain+")"),
		env.Flavor,
		"",
	}

	patches := make([]string, 0, len(env.Nodes))
	for _, n := range env.Nodes {
		patches = append(patches, fmt.Sprintf("%s %d/%d", itemLabel(n.Item), n.Count, n.MaxCount))
	}
	lines = append(lines, "Patches: "+listOrNone(patches))
	lines = append(lines, "Wildlife: "+listOrNone(env.Huntables))

	water := make([]string, 0, len(env.WaterSources))
	for _, w := range env.WaterSources {
		water = append(water, fmt.Sprintf("%s (%s)", w.Name, w.Quality))
	}
	lines = append(lines, "Water: "+listOrNone(water))
	for _, poi := range env.POIs {
		lines = append(lines, fmt.Sprintf("  * %s: %s", poi.Name, poi.Description))
	}
	lines = append(lines, dimStyle.Render(g.Climate.Weather.Name+". "+g.Climate.Weather.Mood))
	return strings.Join(lines, "\n")
}

func Status(g *game.Game) string {
	p := g.Player
	c := g.Climate
	fire := "out"
	if p.FireLit {
		fire = "lit"
	}
	event := "none"
	if c.ActiveEvent != nil {
		event = fmt.Sprintf("%s (%dh left)", c.ActiveEvent.Event.Name, c.ActiveEvent.RemainingHours)
	}
	rows := []string{
		fmt.Sprintf("Time      %s", ClockLabel(p.Hours)),
		fmt.Sprintf("Health    %d", p.Health),
		fmt.Sprintf("Hunger    %d", p.Hunger),
		fmt.Sprintf("Thirst    %d", p.Thirst),
		fmt.Sprintf("Body      %d°C (air %d°C)", p.BodyTemp, g.AmbientTemp()),
		fmt.Sprintf("Fire      %s", fire),
		fmt.Sprintf("Comfort   %d/10", p.CampComfort),
		fmt.Sprintf("Shelter   %s", p.Shelter.Label()),
		fmt.Sprintf("Weather   %s", c.Weather.Name),
		fmt.Sprintf("Season    %s (%dh)", c.Season().Name, c.SeasonHours),
		fmt.Sprintf("Event     %s", event),
	}
	if g.Collapsed() {
		rows = append(rows, warnStyle.Render("Collapsed"))
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func Inventory(g *game.Game) string {
	inv := g.Player.Inventory
	items := inv.Items()
	if len(items) == 0 {
		return "Your pack is empty."
	}
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, titleStyle.Render("Pack"))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("  %-16s x%d", itemLabel(item), inv.Count(item)))
	}
	return strings.Join(lines, "\n")
}

// Screen returns the screen a query outcome asks for, or "".
func Screen(g *game.Game, o game.Outcome) string {
	switch {
	case o.Has(game.TagLook):
		return Look(g)
	case o.Has(game.TagStatus):
		return Status(g)
	case o.Has(game.TagInventory):
		return Inventory(g)
	}
	return ""
}

func Clarify(q *parser.ClarifyQuestion) string {
	if q == nil {
		return ""
	}
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, parser.IntentToCommandString(o))
	}
	return q.Prompt + " " + strings.Join(opts, " / ")
}

// ClockLabel formats an hour of the day as HH:00.
func ClockLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
