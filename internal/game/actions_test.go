package game

import (
	"testing"
	"time"
)

func TestGatherDepletesLastUnit(t *testing.T) {
	g, rng := newStableGame(t)
	g.Climate.SeasonIndex = 1
	stick := mustNode(t, g.Location(), ItemStick)
	stick.Count = 1
	stick.Regen = 0
	before := g.Player.Inventory.Count(ItemStick)
	rng.Ints = []int{0, 3}

	out := g.Gather()

	if !out.Performed || out.Hours != 1 {
		t.Fatalf("expected gather to spend 1 hour, got performed=%v hours=%d", out.Performed, out.Hours)
	}
	if got := g.Player.Inventory.Count(ItemStick); got != before+1 {
		t.Fatalf("expected exactly one stick gathered, got %d -> %d", before, got)
	}
	if stick.Count != 0 {
		t.Fatalf("expected node emptied, got count %d", stick.Count)
	}
	if stick.Stress != 1 {
		t.Fatalf("expected stress 1 after depletion, got %d", stick.Stress)
	}
	if !out.Has(TagNodeDepleted) {
		t.Fatalf("expected depletion narration, got %v", out.Tags())
	}
}

func TestGatherOnExhaustedLocationStillCostsAnHour(t *testing.T) {
	g, _ := newStableGame(t)
	g.Climate.SeasonIndex = 1
	for _, n := range g.Location().Nodes {
		n.Count = 0
		n.Regen = 0
	}
	before := g.Player.Inventory.Clone()

	out := g.Gather()

	if !out.Performed || out.Hours != 1 || g.Player.Hours != 9 {
		t.Fatalf("expected the hour to pass, got performed=%v hours=%d clock=%d", out.Performed, out.Hours, g.Player.Hours)
	}
	if !out.Has(TagNothingToGather) {
		t.Fatalf("expected nothing-to-gather narration, got %v", out.Tags())
	}
	for item, qty := range before {
		if g.Player.Inventory.Count(item) != qty {
			t.Fatalf("expected inventory unchanged for %s", item)
		}
	}
}

func TestDrinkRelievesThirst(t *testing.T) {
	g, rng := newStableGame(t)
	g.Player.Thirst = 70
	rng.Ints = []int{0}

	out := g.Drink()

	if g.Player.Thirst != 35 {
		t.Fatalf("expected thirst 35, got %d", g.Player.Thirst)
	}
	if n, ok := out.Find(TagDrank); !ok || n.Subject != "Needlebrook" {
		t.Fatalf("expected to drink from Needlebrook, got %v", out.Events)
	}
	if out.Has(TagBadWater) {
		t.Fatalf("clear water must not make the player ill")
	}
}

func TestDrinkFloorsThirstAtZero(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Thirst = 10

	g.Drink()

	if g.Player.Thirst != 0 {
		t.Fatalf("expected thirst floored at 0, got %d", g.Player.Thirst)
	}
}

func TestDrinkFromRiskySourceCanHurt(t *testing.T) {
	g, rng := newStableGame(t)
	g.Player.Location = 1
	rng.Ints = []int{0}
	rng.Floats = []float64{0.1}

	out := g.Drink()

	if g.Player.Health != 95 {
		t.Fatalf("expected 5 damage from Dripstone Basin, got health %d", g.Player.Health)
	}
	if !out.Has(TagBadWater) {
		t.Fatalf("expected bad-water narration, got %v", out.Tags())
	}
}

func TestEatCookedMeatFirst(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Hunger = 80
	g.Player.Inventory.Add(ItemCookedMeat, 1)
	g.Player.Inventory.Add(ItemBerries, 2)

	out := g.Eat()

	if g.Player.Hunger != 45 {
		t.Fatalf("expected hunger 45, got %d", g.Player.Hunger)
	}
	if g.Player.Inventory.Count(ItemCookedMeat) != 0 {
		t.Fatalf("expected cooked meat consumed, got %d", g.Player.Inventory.Count(ItemCookedMeat))
	}
	if g.Player.Inventory.Count(ItemBerries) != 2 {
		t.Fatalf("expected berries untouched")
	}
	if n, _ := out.Find(TagAte); n.Subject != ItemCookedMeat || n.Amount != 35 {
		t.Fatalf("expected cooked meat narration, got %+v", n)
	}
}

func TestEatPriorityFallsThrough(t *testing.T) {
	cases := []struct {
		name   string
		item   string
		relief int
	}{
		{name: "berries", item: ItemBerries, relief: 15},
		{name: "mushroom", item: ItemMushroom, relief: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newStableGame(t)
			g.Player.Hunger = 50
			g.Player.Inventory.Add(tc.item, 1)

			g.Eat()

			if g.Player.Hunger != 50-tc.relief {
				t.Fatalf("expected hunger %d, got %d", 50-tc.relief, g.Player.Hunger)
			}
		})
	}
}

func TestEatWithNothingEdibleIsNoOp(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Hunger = 60

	out := g.Eat()

	if out.Performed || out.Hours != 0 {
		t.Fatalf("expected refusal without time cost, got %+v", out)
	}
	if g.Player.Hunger != 60 || g.Player.Hours != 8 {
		t.Fatalf("expected no state change, got hunger %d clock %d", g.Player.Hunger, g.Player.Hours)
	}
	if !out.Has(TagNothingToEat) {
		t.Fatalf("expected nothing-to-eat tag, got %v", out.Tags())
	}
}

func TestRestHealsWithShelterAndFire(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Health = 50
	g.Player.Shelter = Shelter{Level: ShelterLeanTo, Material: "wood"}
	g.Player.FireLit = true

	out := g.Rest()

	if g.Player.Health != 66 {
		t.Fatalf("expected health 66, got %d", g.Player.Health)
	}
	if out.Hours != 3 || g.Player.Hours != 11 {
		t.Fatalf("expected 3 hours to pass, got %d (clock %d)", out.Hours, g.Player.Hours)
	}
}

func TestRestCountsComfortAndCapsHealth(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.CampComfort = 9
	if got := g.RestHeal(); got != 11 {
		t.Fatalf("expected heal 8 + 9/3 = 11, got %d", got)
	}
	g.Player.Health = 95

	g.Rest()

	if g.Player.Health != 100 {
		t.Fatalf("expected health capped at 100, got %d", g.Player.Health)
	}
}

func TestHuntSuccessGrantsForcedYield(t *testing.T) {
	g, rng := newStableGame(t)
	meatBefore := g.Player.Inventory.Count(ItemRawMeat)
	hideBefore := g.Player.Inventory.Count(ItemHide)
	rng.Ints = []int{1, 3, 2}
	rng.Floats = []float64{0.0}

	out := g.Hunt()

	if got := g.Player.Inventory.Count(ItemRawMeat) - meatBefore; got != 3 {
		t.Fatalf("expected 3 raw meat, got %d", got)
	}
	if got := g.Player.Inventory.Count(ItemHide) - hideBefore; got != 2 {
		t.Fatalf("expected 2 hide, got %d", got)
	}
	n, ok := out.Find(TagHuntSuccess)
	if !ok || n.Subject != "boar" || n.Amount != 3 || n.Extra != 2 {
		t.Fatalf("expected boar hunt narration, got %+v", out.Events)
	}
	if out.Hours != 2 {
		t.Fatalf("expected hunt to take 2 hours, got %d", out.Hours)
	}
}

func TestHuntFailureYieldsNothing(t *testing.T) {
	g, rng := newStableGame(t)
	rng.Floats = []float64{0.95}

	out := g.Hunt()

	if g.Player.Inventory.Count(ItemRawMeat) != 0 || g.Player.Inventory.Count(ItemHide) != 0 {
		t.Fatalf("expected no yield from an escaped target")
	}
	if !out.Has(TagHuntEscaped) || !out.Performed {
		t.Fatalf("expected escaped hunt that still spends time, got %+v", out)
	}
}

func TestCraftMissingMaterialsIsNoOp(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Inventory.Add(ItemStick, 2)
	before := g.Player.Inventory.Clone()

	out := g.Craft("campfire")

	if out.Performed || g.Player.FireLit || g.Player.Hours != 8 {
		t.Fatalf("expected refusal with no state change, got %+v", out)
	}
	n, ok := out.Find(TagMissingMaterial)
	if !ok || n.Subject != ItemStone || n.Amount != 1 {
		t.Fatalf("expected to be one stone short, got %+v", out.Events)
	}
	for item, qty := range before {
		if g.Player.Inventory.Count(item) != qty {
			t.Fatalf("expected %s untouched", item)
		}
	}
}

func TestCraftRecipes(t *testing.T) {
	g, _ := newStableGame(t)
	inv := g.Player.Inventory
	inv.Add(ItemFiber, 3)
	inv.Add(ItemStone, 1)

	g.Craft(ItemRope)
	g.Craft(ItemSparkCrystal)

	if inv.Count(ItemRope) != 1 || inv.Count(ItemSparkCrystal) != 1 {
		t.Fatalf("expected rope and spark crystal, got %v", inv)
	}
	if inv.Count(ItemFiber) != 0 || inv.Count(ItemStone) != 0 {
		t.Fatalf("expected materials consumed, got %v", inv)
	}

	inv.Add(ItemStick, 2)
	inv.Add(ItemStone, 2)
	out := g.Craft("campfire")
	if !g.Player.FireLit || !out.Has(TagFireBuilt) {
		t.Fatalf("expected campfire to light the fire, got %v", out.Tags())
	}
}

func TestCraftShelterNeverDowngrades(t *testing.T) {
	g, _ := newStableGame(t)
	inv := g.Player.Inventory
	inv.Add(ItemStick, 20)
	inv.Add(ItemFiber, 20)
	inv.Add(ItemHide, 2)

	g.Craft("hut")
	if g.Player.Shelter.Level != ShelterHut || g.Player.Shelter.Material != "hide & wood" {
		t.Fatalf("expected hut, got %+v", g.Player.Shelter)
	}

	out := g.Craft("lean-to")
	if g.Player.Shelter.Level != ShelterHut {
		t.Fatalf("expected hut kept, got %+v", g.Player.Shelter)
	}
	if !out.Has(TagShelterKept) {
		t.Fatalf("expected shelter-kept narration, got %v", out.Tags())
	}
	if g.Player.Shelter.Label() != "Wattle hut" {
		t.Fatalf("expected Wattle hut label, got %s", g.Player.Shelter.Label())
	}
}

func TestCookNeedsFireAndFood(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.Inventory.Add(ItemRawMeat, 2)

	if out := g.Cook(); out.Performed || !out.Has(TagNeedFire) {
		t.Fatalf("expected cook without fire to refuse, got %+v", out)
	}

	g.Player.FireLit = true
	g.Player.Inventory.Remove(ItemRawMeat, 2)
	if out := g.Cook(); out.Performed || !out.Has(TagNothingToCook) {
		t.Fatalf("expected cook with nothing to refuse, got %+v", out)
	}
}

func TestCookConvertsMeatAndMaybeMushroom(t *testing.T) {
	g, rng := newStableGame(t)
	g.Player.FireLit = true
	g.Player.Inventory.Add(ItemRawMeat, 3)
	g.Player.Inventory.Add(ItemMushroom, 1)
	rng.Ints = []int{2}
	rng.Floats = []float64{0.2}

	out := g.Cook()

	inv := g.Player.Inventory
	if inv.Count(ItemRawMeat) != 1 || inv.Count(ItemCookedMeat) != 2 {
		t.Fatalf("expected 2 meat cooked, got raw=%d cooked=%d", inv.Count(ItemRawMeat), inv.Count(ItemCookedMeat))
	}
	if inv.Count(ItemMushroom) != 0 || inv.Count(ItemRoastMushroom) != 1 {
		t.Fatalf("expected mushroom roasted, got %v", inv)
	}
	if !out.Has(TagMushroomRoast) || !out.Has(TagCooked) {
		t.Fatalf("expected roast and cook narration, got %v", out.Tags())
	}
}

func TestCookNeverCooksMoreThanHeld(t *testing.T) {
	g, rng := newStableGame(t)
	g.Player.FireLit = true
	g.Player.Inventory.Add(ItemRawMeat, 1)
	rng.Ints = []int{2}

	g.Cook()

	if g.Player.Inventory.Count(ItemCookedMeat) != 1 || g.Player.Inventory.Count(ItemRawMeat) != 0 {
		t.Fatalf("expected the single raw meat cooked, got %v", g.Player.Inventory)
	}
}

func TestTravelAlwaysLeaves(t *testing.T) {
	g, rng := newStableGame(t)
	for _, draw := range []int{0, 3, 7} {
		from := g.Player.Location
		rng.Ints = []int{draw}

		out := g.Travel()

		if g.Player.Location == from {
			t.Fatalf("draw %d: expected a different location than %d", draw, from)
		}
		if out.Hours != 2 {
			t.Fatalf("expected travel to take 2 hours, got %d", out.Hours)
		}
	}
}

func TestTravelSkipsCurrentIndex(t *testing.T) {
	g, rng := newStableGame(t)
	g.Player.Location = 4
	rng.Ints = []int{4}

	g.Travel()

	if g.Player.Location != 5 {
		t.Fatalf("expected draw 4 to map past the current index to 5, got %d", g.Player.Location)
	}
}

func TestExtinguishTwiceIsIdempotent(t *testing.T) {
	g, _ := newStableGame(t)
	g.Player.FireLit = true

	first := g.Extinguish()
	if !first.Performed || g.Player.FireLit {
		t.Fatalf("expected fire put out, got %+v", first)
	}
	hour := g.Player.Hours
	snap := g.Snapshot("", time.Time{})

	second := g.Extinguish()

	if second.Performed || second.Hours != 0 || g.Player.Hours != hour {
		t.Fatalf("expected second extinguish to be a no-op, got %+v", second)
	}
	if !second.Has(TagFireAlreadyOut) {
		t.Fatalf("expected fire-already-out tag, got %v", second.Tags())
	}
	if after := g.Snapshot("", snap.SavedAt); !sameState(snap, after) {
		t.Fatalf("expected state unchanged by second extinguish")
	}
}

func TestCollapsedGameRefusesActions(t *testing.T) {
	g, _ := newScriptedGame(t, DefaultBalance())
	g.Player.Health = 3
	g.Player.Hunger = 95
	g.Player.Thirst = 95

	out := g.AdvanceTime(1)
	if !g.Collapsed() || !out.Has(TagCollapsed) {
		t.Fatalf("expected collapse, got %v", out.Tags())
	}
	if g.Player.Health != 0 {
		t.Fatalf("expected health to settle at 0, got %d", g.Player.Health)
	}

	hour := g.Player.Hours
	res := g.Gather()
	if res.Performed || !res.Has(TagAlreadyCollapsed) || g.Player.Hours != hour {
		t.Fatalf("expected gather refused after collapse, got %+v", res)
	}

	tick := g.AdvanceTime(2)
	if tick.Performed || tick.Hours != 0 || g.Player.Hours != hour {
		t.Fatalf("expected clock to stay stopped after collapse, got %+v", tick)
	}
}
