package game

import "slices"

// WaterSource qualities that can make the drinker ill.
var riskyWaterQualities = []string{"murky", "muddy", "risky", "salty"}

type WaterSource struct {
	Name        string
	Quality     string
	Description string
}

func (w WaterSource) Risky() bool {
	return slices.Contains(riskyWaterQualities, w.Quality)
}

type PointOfInterest struct {
	Name        string
	Description string
}

// Soundscape holds ambient narration lines keyed by time of day and conditions.
type Soundscape struct {
	Day    []string
	Night  []string
	Winter []string
	Storm  []string
}

// Environment is one location of the world registry. Everything but its
// resource nodes is fixed for the life of the process.
type Environment struct {
	Name         string
	Terrain      string
	Flavor       string
	Gatherables  []string
	Huntables    []string
	WaterSources []WaterSource
	POIs         []PointOfInterest
	TempBias     int
	Nodes        []*ResourceNode
	Sounds       Soundscape
}

// Node looks up the resource node for an item.
func (e *Environment) Node(item string) (*ResourceNode, bool) {
	if e == nil {
		return nil, false
	}
	for _, node := range e.Nodes {
		if node.Item == item {
			return node, true
		}
	}
	return nil, false
}

// AvailableNodes returns the nodes that still hold stock, in registry order.
func (e *Environment) AvailableNodes() []*ResourceNode {
	if e == nil {
		return nil
	}
	out := make([]*ResourceNode, 0, len(e.Nodes))
	for _, node := range e.Nodes {
		if !node.Depleted() {
			out = append(out, node)
		}
	}
	return out
}

// World is the fixed, ordered registry of locations.
type World struct {
	Environments []*Environment
}

func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.Environments)
}

func (w *World) At(index int) *Environment {
	if w == nil || index < 0 || index >= len(w.Environments) {
		return nil
	}
	return w.Environments[index]
}

func (w *World) eachNode(fn func(env *Environment, node *ResourceNode)) {
	if w == nil {
		return
	}
	for _, env := range w.Environments {
		for _, node := range env.Nodes {
			fn(env, node)
		}
	}
}

// DecayAllStress runs one global stress-decay pass.
func (w *World) DecayAllStress() {
	w.eachNode(func(_ *Environment, node *ResourceNode) {
		node.DecayStress()
	})
}

func node(item string, count, maxCount, regen int) *ResourceNode {
	return &ResourceNode{Item: item, Count: count, MaxCount: maxCount, Regen: regen}
}

// DefaultWorld builds a fresh registry with full starting stocks.
func DefaultWorld() *World {
	return &World{Environments: []*Environment{
		{
			Name:        "Emerald Pinewood",
			Terrain:     "Dense conifer forest",
			Flavor:      "Tall conifers crowd close and filter noon light into narrow green shafts. Needle duff springs underfoot.",
			Gatherables: []string{"stick", "fiber", "mushroom", "berries"},
			Huntables:   []string{"hare", "boar", "fox", "deer"},
			WaterSources: []WaterSource{
				{Name: "Needlebrook", Quality: "clear", Description: "A narrow cold stream running over rounded gravel."},
				{Name: "Dew Pools", Quality: "clean", Description: "Shallow hollows holding overnight condensation under conifer shade."},
			},
			POIs: []PointOfInterest{
				{Name: "Whisperfall", Description: "A small waterfall hidden behind fern curtains."},
				{Name: "Moonroot Hollow", Description: "A cave where roots glow silver at dusk."},
			},
			TempBias: -1,
			Nodes: []*ResourceNode{
				node("stick", 8, 10, 2),
				node("fiber", 6, 8, 2),
				node("mushroom", 4, 6, 1),
				node("berries", 5, 7, 1),
			},
			Sounds: Soundscape{
				Day:    []string{"Wind moves across the upper needles while the understory stays still.", "A woodpecker taps in measured bursts, then goes quiet."},
				Night:  []string{"A single owl call carries cleanly between trunks."},
				Winter: []string{"Ice at the stream margins clicks as the current works beneath it."},
				Storm:  []string{"Rain beads through layered branches and drips from bough tips."},
			},
		},
		{
			Name:        "Sunfire Canyon",
			Terrain:     "Red-rock canyon",
			Flavor:      "Sheer walls blaze orange at noon and purple at dusk. Talus fans spill from every side cut.",
			Gatherables: []string{"stone", "fiber", "berries"},
			Huntables:   []string{"lizard", "goat", "fox"},
			WaterSources: []WaterSource{
				{Name: "Dripstone Basin", Quality: "risky", Description: "A mineral pool fed by cave drips."},
				{Name: "Flash Creek", Quality: "muddy", Description: "An intermittent stream that appears after rain."},
			},
			POIs: []PointOfInterest{
				{Name: "Echo Arch", Description: "A natural stone arch that repeats your worst jokes."},
				{Name: "Skytooth Overlook", Description: "A narrow ledge with vast canyon views."},
			},
			TempBias: 3,
			Nodes: []*ResourceNode{
				node("stone", 9, 10, 2),
				node("fiber", 4, 5, 1),
				node("berries", 3, 4, 1),
			},
			Sounds: Soundscape{
				Day:    []string{"Pebbles click down talus faces as the heat loosens them."},
				Night:  []string{"Stored heat leaves the rock slowly and drips mark the shaded overhangs."},
				Winter: []string{"Cold air drains through narrow channels and sharpens every stone strike."},
				Storm:  []string{"Thunder rolls along the parallel walls while runoff braids through sand."},
			},
		},
		{
			Name:        "Frostglass Tundra",
			Terrain:     "Wind-blasted tundra",
			Flavor:      "Snow crust sparkles like crushed glass under pale light. Nothing stands taller than your knee.",
			Gatherables: []string{"stick", "fiber", "mushroom"},
			Huntables:   []string{"elk", "fox", "hare"},
			WaterSources: []WaterSource{
				{Name: "Melt Rill", Quality: "cold", Description: "A stream from thawing blue ice."},
				{Name: "Ice Lens", Quality: "clean", Description: "Clear meltwater trapped in old ice."},
			},
			POIs: []PointOfInterest{
				{Name: "Aurora Spire", Description: "A jagged tower where lights dance every night."},
				{Name: "Howl Cavern", Description: "An icy cave that sings in the wind."},
			},
			TempBias: -6,
			Nodes: []*ResourceNode{
				node("stick", 3, 5, 1),
				node("fiber", 3, 5, 1),
				node("mushroom", 2, 4, 1),
			},
			Sounds: Soundscape{
				Day:    []string{"Fine snow grains skim the surface in parallel lines."},
				Night:  []string{"Wind crosses open ground and leaves a low edge tone in your gear."},
				Winter: []string{"Rime granules scrape across stone and fabric stiffens in minutes."},
				Storm:  []string{"Blowing snow flattens the horizon into a careful guess."},
			},
		},
		{
			Name:        "Mossmere Wetlands",
			Terrain:     "Boggy marsh",
			Flavor:      "Mist drifts over reeds while frogs hold rowdy choir practice.",
			Gatherables: []string{"fiber", "berries", "mushroom"},
			Huntables:   []string{"duck", "deer", "hare"},
			WaterSources: []WaterSource{
				{Name: "Reedwater", Quality: "murky", Description: "Brown still water tangled in reeds."},
				{Name: "Sprite Spring", Quality: "clear", Description: "A tiny spring guarded by polite dragonflies."},
			},
			POIs: []PointOfInterest{
				{Name: "Singing Bog", Description: "A peat field that bubbles in eerie melodies."},
				{Name: "Lantern Stumps", Description: "Old stumps glowing with pale fungi."},
			},
			TempBias: 0,
			Nodes: []*ResourceNode{
				node("fiber", 7, 9, 2),
				node("berries", 4, 6, 1),
				node("mushroom", 6, 8, 2),
			},
			Sounds: Soundscape{
				Day:    []string{"Reed stems rattle in a crosswind over a steady insect drone."},
				Night:  []string{"Frog calls layer across the open pools."},
				Winter: []string{"Thin edge ice tings against the stems."},
				Storm:  []string{"Rain links the pools into broad shallow sheets over peat."},
			},
		},
		{
			Name:        "Starfall Coast",
			Terrain:     "Rocky coastline",
			Flavor:      "Waves crash against black cliffs and fling silver spray skyward.",
			Gatherables: []string{"stone", "fiber", "berries"},
			Huntables:   []string{"crab", "seal", "fox"},
			WaterSources: []WaterSource{
				{Name: "Rain Cistern", Quality: "clean", Description: "A carved basin collecting rainwater."},
				{Name: "Cliff Seep", Quality: "salty", Description: "Trickling water near the sea spray."},
			},
			POIs: []PointOfInterest{
				{Name: "Tide Caves", Description: "Sea caves with phosphorescent walls."},
				{Name: "Comet Watch", Description: "A promontory where meteors streak overhead."},
			},
			TempBias: 1,
			Nodes: []*ResourceNode{
				node("stone", 8, 10, 2),
				node("fiber", 4, 6, 1),
				node("berries", 3, 5, 1),
			},
			Sounds: Soundscape{
				Day:    []string{"Backwash drags gravel in a coarse rhythmic rattle."},
				Night:  []string{"Long sets arrive and the cave mouths breathe with them."},
				Winter: []string{"Cold spray drifts inland and leaves a crust where it dries."},
				Storm:  []string{"Heavy surf hits the shelves and retreats with a grinding pull."},
			},
		},
		{
			Name:        "Pinewood Edge",
			Terrain:     "Forest-meadow transition",
			Flavor:      "The canopy thins into tall grass where the forest gives way to open meadow.",
			Gatherables: []string{"stick", "fiber", "berries", "mushroom"},
			Huntables:   []string{"hare", "deer", "fox"},
			WaterSources: []WaterSource{
				{Name: "Edge Run", Quality: "clear", Description: "A quick run draining the treeline."},
				{Name: "Field Swale", Quality: "clean", Description: "A grassy dip that holds rain for days."},
			},
			POIs: []PointOfInterest{
				{Name: "Split Treeline", Description: "A lightning-split pine marking the forest edge."},
				{Name: "Fox Tracks", Description: "A muddy crossing crowded with prints."},
			},
			TempBias: 0,
			Nodes: []*ResourceNode{
				node("stick", 6, 8, 2),
				node("fiber", 6, 8, 2),
				node("berries", 5, 7, 1),
				node("mushroom", 3, 5, 1),
			},
			Sounds: Soundscape{
				Day:    []string{"Grass heads brush together while the canopy noise fades behind you."},
				Night:  []string{"Open ground carries hoof movement farther than it should."},
				Winter: []string{"Frozen grass rasps lightly under shifting wind."},
				Storm:  []string{"Rain crosses from the treetops to the field in visible sheets."},
			},
		},
		{
			Name:        "High Scrub",
			Terrain:     "Canyon-tundra transition",
			Flavor:      "Wind-bent shrubs cling to shale benches between red rock and frost.",
			Gatherables: []string{"stone", "fiber", "stick"},
			Huntables:   []string{"goat", "fox", "hare", "lizard"},
			WaterSources: []WaterSource{
				{Name: "Bench Seep", Quality: "risky", Description: "A mineral seep staining the shale orange."},
				{Name: "Snow Runnel", Quality: "cold", Description: "Meltwater threading down from a snow patch."},
			},
			POIs: []PointOfInterest{
				{Name: "Wind Notch", Description: "A gap in the ridge where the wind never rests."},
				{Name: "Shard Flats", Description: "A field of split shale plates."},
			},
			TempBias: -2,
			Nodes: []*ResourceNode{
				node("stone", 7, 9, 2),
				node("fiber", 4, 6, 1),
				node("stick", 3, 5, 1),
			},
			Sounds: Soundscape{
				Day:    []string{"Loose shale ticks downslope after each gust."},
				Night:  []string{"Cold air funnels through the cuts in a long narrow tone."},
				Winter: []string{"Spindrift crosses the exposed benches and gathers in low pockets."},
				Storm:  []string{"Gust fronts push grit over stone in a dry hiss."},
			},
		},
		{
			Name:        "Reed Margin",
			Terrain:     "Wetland-forest transition",
			Flavor:      "Alder roots knot the ground where the marsh reaches into the trees.",
			Gatherables: []string{"fiber", "berries", "mushroom", "stick"},
			Huntables:   []string{"duck", "deer", "hare", "boar"},
			WaterSources: []WaterSource{
				{Name: "Alder Flow", Quality: "clear", Description: "A clear channel between alder roots."},
				{Name: "Backwater Pocket", Quality: "murky", Description: "A still pocket thick with leaf litter."},
			},
			POIs: []PointOfInterest{
				{Name: "Root Causeway", Description: "A walkway of braided roots over the mud."},
				{Name: "Mist Lamp Fungus", Description: "A fungus ring that glows in the fog."},
			},
			TempBias: -1,
			Nodes: []*ResourceNode{
				node("fiber", 7, 9, 2),
				node("berries", 4, 6, 1),
				node("mushroom", 5, 7, 2),
				node("stick", 5, 7, 1),
			},
			Sounds: Soundscape{
				Day:    []string{"Water drips from alder roots while reed tops rattle."},
				Night:  []string{"Frog calls taper into forest insect noise."},
				Winter: []string{"Thin ice rings against the root channels."},
				Storm:  []string{"Overflow turns the footpaths into shallow flow."},
			},
		},
		{
			Name:        "Pebble Strand",
			Terrain:     "Coast-upland transition",
			Flavor:      "A shingle beach climbs into grassy bluffs above the tide line.",
			Gatherables: []string{"stone", "fiber", "stick", "berries"},
			Huntables:   []string{"crab", "fox", "deer"},
			WaterSources: []WaterSource{
				{Name: "Drift Basin", Quality: "clean", Description: "A rock basin above the tide that fills with rain."},
				{Name: "Foam Sluice", Quality: "salty", Description: "A channel where surf foam mixes with runoff."},
			},
			POIs: []PointOfInterest{
				{Name: "Shingle Fan", Description: "A wide fan of sorted pebbles."},
				{Name: "Windbreak Bluff", Description: "A bluff that blunts the sea wind."},
			},
			TempBias: 1,
			Nodes: []*ResourceNode{
				node("stone", 7, 9, 2),
				node("fiber", 4, 6, 1),
				node("stick", 4, 6, 1),
				node("berries", 3, 5, 1),
			},
			Sounds: Soundscape{
				Day:    []string{"Retreating waves roll pebbles in an even cadence."},
				Night:  []string{"Long sets arrive from offshore and fade under the grass noise."},
				Winter: []string{"Fine spray dries into a granular salt trace."},
				Storm:  []string{"Breaking sets strike the upper strand and rattle stone downslope."},
			},
		},
	}}
}
