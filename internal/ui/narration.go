package ui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/campfire-cantos/internal/game"
)

// Line renders one narration as a sentence. Screen tags (look, status,
// inventory) render as "" and are drawn by their own screens.
func Line(n game.Narration) string {
	switch n.Tag {
	case game.TagGathered:
		return fmt.Sprintf("You gather %s from the %s.", quantity(n.Amount, n.Subject), n.Detail)
	case game.TagNodeDepleted:
		return fmt.Sprintf("The %s here is picked clean (stress %d).", itemLabel(n.Subject), n.Amount)
	case game.TagNothingToGather:
		return fmt.Sprintf("There is nothing left to gather at %s.", n.Subject)

	case game.TagHuntSuccess:
		return fmt.Sprintf("You bring down a %s: %d raw meat and %d hide.", n.Subject, n.Amount, n.Extra)
	case game.TagHuntEscaped:
		return fmt.Sprintf("The %s slips away.", n.Subject)

	case game.TagDrank:
		return fmt.Sprintf("You drink from the %s (%s). Thirst eases by %d.", n.Subject, n.Detail, n.Amount)
	case game.TagBadWater:
		return fmt.Sprintf("The %s water turns your stomach. You lose %d health.", n.Detail, n.Amount)
	case game.TagNoWater:
		return fmt.Sprintf("There is no water to be found at %s.", n.Subject)

	case game.TagCrafted:
		return fmt.Sprintf("You craft %s.", quantity(n.Amount, n.Subject))
	case game.TagFireBuilt:
		return "Sparks catch in the tinder. The campfire is burning."
	case game.TagShelterBuilt:
		return fmt.Sprintf("You raise a %s of %s.", strings.ToLower(n.Subject), n.Detail)
	case game.TagShelterKept:
		return fmt.Sprintf("Your %s already beats a %s. You keep it.", strings.ToLower(n.Subject), n.Detail)
	case game.TagMissingMaterial:
		return fmt.Sprintf("You need %d more %s.", n.Amount, itemLabel(n.Subject))
	case game.TagUnknownRecipe:
		return fmt.Sprintf("You don't know how to craft %q. Try: %s.", n.Subject, strings.Join(game.RecipeNames(), ", "))

	case game.TagCooked:
		if n.Amount == 0 {
			return "There is no raw meat to cook."
		}
		return fmt.Sprintf("You cook %d raw meat over the coals.", n.Amount)
	case game.TagMushroomRoast:
		return "A mushroom roasts at the edge of the fire."
	case game.TagNeedFire:
		return "You need a lit fire to cook."
	case game.TagNothingToCook:
		return "You have nothing to cook."

	case game.TagAte:
		return fmt.Sprintf("You eat the %s. Hunger eases by %d.", itemLabel(n.Subject), n.Amount)
	case game.TagNothingToEat:
		return "You have nothing to eat."

	case game.TagRested:
		return fmt.Sprintf("You rest and recover %d health.", n.Amount)
	case game.TagTraveled:
		return fmt.Sprintf("You leave %s and make for %s.", n.Detail, n.Subject)
	case game.TagExtinguished:
		return "You smother the fire."
	case game.TagFireAlreadyOut:
		return "The fire is already out."

	case game.TagSeasonChanged:
		return fmt.Sprintf("%s arrives. %s", n.Subject, n.Detail)
	case game.TagEventStarted:
		return fmt.Sprintf("%s (%dh): %s", n.Subject, n.Amount, n.Detail)
	case game.TagEventEnded:
		return fmt.Sprintf("The %s has passed.", n.Subject)
	case game.TagWeatherShift:
		return fmt.Sprintf("The weather turns to %s. %s", n.Subject, n.Detail)
	case game.TagFireDied:
		return fmt.Sprintf("Your fire gutters out in the %s.", strings.ToLower(n.Subject))
	case game.TagStressEased:
		return "The land rests overnight."
	case game.TagAmbient:
		return n.Detail

	case game.TagStarving:
		return fmt.Sprintf("Hunger gnaws at you (-%d health).", n.Amount)
	case game.TagDehydrated:
		return fmt.Sprintf("Your throat is parched (-%d health).", n.Amount)
	case game.TagHypothermia:
		return fmt.Sprintf("You shiver uncontrollably (-%d health).", n.Amount)
	case game.TagHyperthermia:
		return fmt.Sprintf("The heat overwhelms you (-%d health).", n.Amount)
	case game.TagCollapsed:
		return fmt.Sprintf("You collapse at %s. Your journey ends here.", n.Subject)

	case game.TagLook, game.TagStatus, game.TagInventory:
		return ""
	case game.TagAlreadyCollapsed:
		return "You have collapsed. Load a save or quit."
	case game.TagUnknownCommand:
		return "Unknown command. Type help for the list."
	}
	return string(n.Tag)
}

// Lines renders every narration of an outcome, skipping screen tags.
func Lines(o game.Outcome) []string {
	out := make([]string, 0, len(o.Events))
	for _, n := range o.Events {
		line := Line(n)
		if line == "" {
			continue
		}
		if isWarning(n.Tag) {
			line = warnStyle.Render(line)
		}
		out = append(out, line)
	}
	return out
}

func isWarning(tag game.Tag) bool {
	switch tag {
	case game.TagBadWater, game.TagStarving, game.TagDehydrated, game.TagHypothermia,
		game.TagHyperthermia, game.TagCollapsed, game.TagFireDied:
		return true
	}
	return false
}

func itemLabel(item string) string {
	return strings.ReplaceAll(item, "_", " ")
}

func quantity(n int, item string) string {
	return fmt.Sprintf("%d %s", n, itemLabel(item))
}
