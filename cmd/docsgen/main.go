package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/campfire-cantos/internal/game"
	"github.com/appengine-ltd/campfire-cantos/internal/ui"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := flag.String("out", filepath.Join("docs", "reference", "catalogs"), "output directory")
	flag.Parse()

	written, err := writeCatalogs(*root)
	if err != nil {
		fatal(err)
	}
	for _, path := range written {
		fmt.Printf("wrote %s\n", path)
	}
}

func writeCatalogs(root string) ([]string, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}

	files := []docFile{
		generateEnvironmentsDoc(),
		generateClimateDoc(),
		generateRecipesDoc(),
		generateCommandsDoc(),
	}
	written := make([]string, 0, len(files)+1)
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(generateCatalogIndex(files)), 0o644); err != nil {
		return written, err
	}
	return append(written, indexPath), nil
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateEnvironmentsDoc() docFile {
	world := game.DefaultWorld()

	var b strings.Builder
	b.WriteString("# Environments\n\n")
	b.WriteString("Source: `internal/game/environment.go` (`DefaultWorld`). Travel picks uniformly among the others.\n\n")
	b.WriteString(fmt.Sprintf("Total environments: **%d**.\n\n", world.Len()))
	b.WriteString("| # | Name | Terrain | Temp Bias | Huntables | Water | Points of Interest |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for i, env := range world.Environments {
		water := make([]string, 0, len(env.WaterSources))
		for _, w := range env.WaterSources {
			label := fmt.Sprintf("%s (%s)", w.Name, w.Quality)
			if w.Risky() {
				label += " risky"
			}
			water = append(water, label)
		}
		pois := make([]string, 0, len(env.POIs))
		for _, p := range env.POIs {
			pois = append(pois, p.Name)
		}
		b.WriteString(fmt.Sprintf("| %d | %s | %s | %+d | %s | %s | %s |\n",
			i, escape(env.Name), escape(env.Terrain), env.TempBias,
			escape(strings.Join(env.Huntables, ", ")), escape(strings.Join(water, ", ")), escape(strings.Join(pois, ", "))))
	}

	b.WriteString("\n## Resource nodes\n\n")
	b.WriteString("| Environment | Item | Start | Max | Regen/h |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, env := range world.Environments {
		for _, n := range env.Nodes {
			b.WriteString(fmt.Sprintf("| %s | %s | %d | %d | %d |\n", escape(env.Name), n.Item, n.Count, n.MaxCount, n.Regen))
		}
	}

	return docFile{Name: "environments.md", Title: "Environments", Content: b.String()}
}

func generateClimateDoc() docFile {
	var b strings.Builder
	b.WriteString("# Climate\n\n")
	b.WriteString("Source: `internal/game/climate.go`. Weather, season and event modifiers add.\n\n")

	b.WriteString("## Weather\n\n")
	b.WriteString("| Name | Temp | Thirst/h | Fire | Hunt | Mood |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, w := range game.WeatherCatalog() {
		b.WriteString(fmt.Sprintf("| %s | %+d | %+d | %s | %s | %s |\n",
			w.Name, w.TemperatureShift, w.ThirstRate, formatFloat(w.FireModifier), formatFloat(w.HuntModifier), escape(w.Mood)))
	}

	b.WriteString("\n## Seasons\n\n")
	b.WriteString("| Name | Temp | Regen | Hunt | Description |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, s := range game.SeasonCatalog() {
		b.WriteString(fmt.Sprintf("| %s | %+d | %+d | %s | %s |\n",
			s.Name, s.TempShift, s.RegenModifier, formatFloat(s.HuntModifier), escape(s.Description)))
	}

	b.WriteString("\n## Events\n\n")
	b.WriteString("| Name | Hours | Temp | Thirst/h | Fire | Hunt | Regen | Coldest season only |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	writeEvents := func(events []game.Event, cold bool) {
		for _, e := range events {
			b.WriteString(fmt.Sprintf("| %s | %d | %+d | %+d | %s | %s | %+d | %s |\n",
				e.Name, e.DurationHours, e.TempShift, e.ThirstRate, formatFloat(e.FireModifier),
				formatFloat(e.HuntModifier), e.RegenModifier, yesNo(cold)))
		}
	}
	writeEvents(game.EventCatalog(), false)
	writeEvents(game.ColdSeasonEvents(), true)

	return docFile{Name: "climate.md", Title: "Climate", Content: b.String()}
}

func generateRecipesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Recipes\n\n")
	b.WriteString("Source: `internal/game/recipes.go` (`Recipes`). Crafting takes one hour.\n\n")
	b.WriteString("| Name | Kind | Materials | Shelter Level |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, r := range game.Recipes() {
		level := ""
		if r.Kind == game.RecipeShelter {
			level = strconv.Itoa(r.ShelterLevel)
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", r.Name, recipeKind(r.Kind), formatMaterials(r.Materials), level))
	}
	return docFile{Name: "recipes.md", Title: "Recipes", Content: b.String()}
}

func generateCommandsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	b.WriteString("```\n")
	b.WriteString(ui.Help())
	b.WriteString("\n```\n")
	return docFile{Name: "commands.md", Title: "Commands", Content: b.String()}
}

func recipeKind(k game.RecipeKind) string {
	switch k {
	case game.RecipeFire:
		return "fire"
	case game.RecipeShelter:
		return "shelter"
	default:
		return "item"
	}
}

func formatMaterials(items []game.Material) string {
	parts := make([]string, 0, len(items))
	for _, m := range items {
		parts = append(parts, fmt.Sprintf("%s %d", m.Item, m.Qty))
	}
	return strings.Join(parts, ", ")
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
