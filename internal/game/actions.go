package game

// Hour costs per action.
const (
	hoursGather     = 1
	hoursHunt       = 2
	hoursDrink      = 1
	hoursCraft      = 1
	hoursCook       = 1
	hoursEat        = 1
	hoursRest       = 3
	hoursTravel     = 2
	hoursExtinguish = 1
)

// refuse reports a policy no-op: nothing changes and no time passes.
func refuse(cmd Command, tag Tag, subject string, amount int) Outcome {
	out := Outcome{Command: cmd}
	out.emit(tag, subject, amount, "")
	return out
}

// finish spends hours on the clock after a successful resolution.
func (g *Game) finish(out Outcome, hours int) Outcome {
	out.Performed = true
	out.Hours = hours
	g.advanceTime(hours, &out)
	return out
}

// Gather harvests 1-3 units from a random stocked node at the current
// location. An exhausted location still costs the hour.
// Draws: IntN(stocked nodes), IntRange(1,3).
func (g *Game) Gather() Outcome {
	if g.collapsed {
		return refuse(CommandGather, TagAlreadyCollapsed, "", 0)
	}
	out := Outcome{Command: CommandGather}
	available := g.Location().AvailableNodes()
	if len(available) == 0 {
		out.emit(TagNothingToGather, g.Location().Name, 0, "")
		return g.finish(out, hoursGather)
	}

	node := available[g.rng.IntN(len(available))]
	requested := g.rng.IntRange(1, 3)
	got := node.Harvest(requested)
	g.Player.Inventory.Add(node.Item, got)
	out.emit(TagGathered, node.Item, got, g.Location().Terrain)
	if node.Depleted() {
		out.emit(TagNodeDepleted, node.Item, node.Stress, "")
	}
	return g.finish(out, hoursGather)
}

// Hunt chases a random local animal.
// Draws: IntN(huntables), Float64, then on success IntRange(1,3) meat and IntRange(0,2) hide.
func (g *Game) Hunt() Outcome {
	if g.collapsed {
		return refuse(CommandHunt, TagAlreadyCollapsed, "", 0)
	}
	out := Outcome{Command: CommandHunt}
	env := g.Location()
	target := "game"
	if len(env.Huntables) > 0 {
		target = env.Huntables[g.rng.IntN(len(env.Huntables))]
	}

	if g.rng.Float64() >= g.HuntChance() {
		out.emit(TagHuntEscaped, target, 0, "")
		return g.finish(out, hoursHunt)
	}
	meat := g.rng.IntRange(1, 3)
	hide := g.rng.IntRange(0, 2)
	g.Player.Inventory.Add(ItemRawMeat, meat)
	g.Player.Inventory.Add(ItemHide, hide)
	out.Events = append(out.Events, Narration{Tag: TagHuntSuccess, Subject: target, Amount: meat, Extra: hide})
	return g.finish(out, hoursHunt)
}

// Drink from a random local water source. Tainted sources may cause harm.
// Draws: IntN(sources), then Float64 only for a risky source.
func (g *Game) Drink() Outcome {
	if g.collapsed {
		return refuse(CommandDrink, TagAlreadyCollapsed, "", 0)
	}
	env := g.Location()
	if len(env.WaterSources) == 0 {
		return refuse(CommandDrink, TagNoWater, env.Name, 0)
	}
	out := Outcome{Command: CommandDrink}
	source := env.WaterSources[g.rng.IntN(len(env.WaterSources))]
	p := &g.Player
	p.Thirst = max(0, p.Thirst-g.Balance.DrinkRelief)
	out.emit(TagDrank, source.Name, g.Balance.DrinkRelief, source.Quality)
	if source.Risky() && g.rng.Float64() < g.Balance.SickWaterChance {
		p.Health -= g.Balance.SickWaterDamage
		out.emit(TagBadWater, source.Name, g.Balance.SickWaterDamage, source.Quality)
	}
	return g.finish(out, hoursDrink)
}

// Craft builds item from the recipe table. Missing materials refuse without
// spending anything.
func (g *Game) Craft(item string) Outcome {
	if g.collapsed {
		return refuse(CommandCraft, TagAlreadyCollapsed, "", 0)
	}
	recipe, ok := LookupRecipe(item)
	if !ok {
		return refuse(CommandCraft, TagUnknownRecipe, item, 0)
	}
	inv := g.Player.Inventory
	for _, m := range recipe.Materials {
		if !inv.Has(m.Item, m.Qty) {
			return refuse(CommandCraft, TagMissingMaterial, m.Item, m.Qty-inv.Count(m.Item))
		}
	}
	for _, m := range recipe.Materials {
		inv.Remove(m.Item, m.Qty)
	}

	out := Outcome{Command: CommandCraft}
	p := &g.Player
	switch recipe.Kind {
	case RecipeFire:
		p.FireLit = true
		out.emit(TagFireBuilt, recipe.Name, 0, "")
	case RecipeShelter:
		if recipe.ShelterLevel > p.Shelter.Level {
			p.Shelter = Shelter{Level: recipe.ShelterLevel, Material: recipe.Material}
			out.emit(TagShelterBuilt, p.Shelter.Label(), p.Shelter.Level, p.Shelter.Material)
		} else {
			out.emit(TagShelterKept, p.Shelter.Label(), p.Shelter.Level, recipe.Name)
		}
	default:
		inv.Add(recipe.Name, 1)
		out.emit(TagCrafted, recipe.Name, 1, "")
	}
	return g.finish(out, hoursCraft)
}

// Cook turns raw meat into cooked meat over a lit fire.
// Draws: IntRange(1,2), then Float64 only when a mushroom is held.
func (g *Game) Cook() Outcome {
	if g.collapsed {
		return refuse(CommandCook, TagAlreadyCollapsed, "", 0)
	}
	p := &g.Player
	inv := p.Inventory
	if !p.FireLit {
		return refuse(CommandCook, TagNeedFire, "", 0)
	}
	if inv.Count(ItemRawMeat) <= 0 && inv.Count(ItemMushroom) <= 0 {
		return refuse(CommandCook, TagNothingToCook, "", 0)
	}

	out := Outcome{Command: CommandCook}
	cooked := min(inv.Count(ItemRawMeat), g.rng.IntRange(1, 2))
	inv.Remove(ItemRawMeat, cooked)
	inv.Add(ItemCookedMeat, cooked)
	if inv.Count(ItemMushroom) > 0 && g.rng.Float64() < g.Balance.MushroomRoastChance {
		inv.Remove(ItemMushroom, 1)
		inv.Add(ItemRoastMushroom, 1)
		out.emit(TagMushroomRoast, ItemMushroom, 1, "")
	}
	out.emit(TagCooked, ItemRawMeat, cooked, "")
	return g.finish(out, hoursCook)
}

// foodValues is the eating priority and the hunger each unit relieves.
var foodValues = []struct {
	item   string
	relief int
}{
	{ItemCookedMeat, 35},
	{ItemBerries, 15},
	{ItemMushroom, 10},
}

// Eat consumes one unit of the best food on hand.
func (g *Game) Eat() Outcome {
	if g.collapsed {
		return refuse(CommandEat, TagAlreadyCollapsed, "", 0)
	}
	p := &g.Player
	for _, food := range foodValues {
		if p.Inventory.Count(food.item) <= 0 {
			continue
		}
		p.Inventory.Remove(food.item, 1)
		p.Hunger = max(0, p.Hunger-food.relief)
		out := Outcome{Command: CommandEat}
		out.emit(TagAte, food.item, food.relief, "")
		return g.finish(out, hoursEat)
	}
	return refuse(CommandEat, TagNothingToEat, "", 0)
}

// RestHeal is the health a rest would restore right now.
func (g *Game) RestHeal() int {
	p := g.Player
	b := g.Balance
	heal := b.RestBaseHeal + b.RestShelterHeal*p.Shelter.Level + p.CampComfort/3
	if p.FireLit {
		heal += b.RestFireHeal
	}
	return heal
}

func (g *Game) Rest() Outcome {
	if g.collapsed {
		return refuse(CommandRest, TagAlreadyCollapsed, "", 0)
	}
	heal := g.RestHeal()
	g.Player.Health = min(maxVital, g.Player.Health+heal)
	out := Outcome{Command: CommandRest}
	out.emit(TagRested, "", heal, "")
	return g.finish(out, hoursRest)
}

// Travel moves to a uniformly chosen different location.
// Draws: IntN(locations-1).
func (g *Game) Travel() Outcome {
	if g.collapsed {
		return refuse(CommandTravel, TagAlreadyCollapsed, "", 0)
	}
	from := g.Location().Name
	n := g.World.Len()
	if n > 1 {
		next := g.rng.IntN(n - 1)
		if next >= g.Player.Location {
			next++
		}
		g.Player.Location = next
	}
	out := Outcome{Command: CommandTravel}
	out.emit(TagTraveled, g.Location().Name, g.Player.Location, from)
	return g.finish(out, hoursTravel)
}

func (g *Game) Extinguish() Outcome {
	if g.collapsed {
		return refuse(CommandExtinguish, TagAlreadyCollapsed, "", 0)
	}
	if !g.Player.FireLit {
		return refuse(CommandExtinguish, TagFireAlreadyOut, "", 0)
	}
	g.Player.FireLit = false
	out := Outcome{Command: CommandExtinguish}
	out.emit(TagExtinguished, "", 0, "")
	return g.finish(out, hoursExtinguish)
}
