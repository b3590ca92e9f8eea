package game

// Tag identifies which branch of a resolver or clock step fired. Tags are
// stable; wording lives in internal/ui.
type Tag string

const (
	TagGathered        Tag = "gathered"
	TagNodeDepleted    Tag = "node_depleted"
	TagNothingToGather Tag = "nothing_to_gather"

	TagHuntSuccess Tag = "hunt_success"
	TagHuntEscaped Tag = "hunt_escaped"

	TagDrank    Tag = "drank"
	TagBadWater Tag = "bad_water"
	TagNoWater  Tag = "no_water"

	TagCrafted         Tag = "crafted"
	TagFireBuilt       Tag = "fire_built"
	TagShelterBuilt    Tag = "shelter_built"
	TagShelterKept     Tag = "shelter_kept"
	TagMissingMaterial Tag = "missing_material"
	TagUnknownRecipe   Tag = "unknown_recipe"

	TagCooked        Tag = "cooked"
	TagMushroomRoast Tag = "mushroom_roasted"
	TagNeedFire      Tag = "need_fire"
	TagNothingToCook Tag = "nothing_to_cook"

	TagAte          Tag = "ate"
	TagNothingToEat Tag = "nothing_to_eat"

	TagRested Tag = "rested"

	TagTraveled Tag = "traveled"

	TagExtinguished   Tag = "extinguished"
	TagFireAlreadyOut Tag = "fire_already_out"

	TagSeasonChanged Tag = "season_changed"
	TagEventStarted  Tag = "event_started"
	TagEventEnded    Tag = "event_ended"
	TagWeatherShift  Tag = "weather_shift"
	TagFireDied      Tag = "fire_died"
	TagStressEased   Tag = "stress_eased"
	TagAmbient       Tag = "ambient"

	TagStarving     Tag = "starving"
	TagDehydrated   Tag = "dehydrated"
	TagHypothermia  Tag = "hypothermia"
	TagHyperthermia Tag = "hyperthermia"
	TagCollapsed    Tag = "collapsed"

	TagLook      Tag = "look"
	TagStatus    Tag = "status"
	TagInventory Tag = "inventory"

	TagAlreadyCollapsed Tag = "already_collapsed"
	TagUnknownCommand   Tag = "unknown_command"
)

// Narration is one line of narrative output in structured form. Extra
// carries a second quantity where a branch yields two (hunt: hide).
type Narration struct {
	Tag     Tag
	Subject string
	Amount  int
	Extra   int
	Detail  string
}

// Outcome is what a command produced. Performed is false for policy no-ops,
// in which case Hours is zero and no state changed.
type Outcome struct {
	Command   Command
	Performed bool
	Hours     int
	Events    []Narration
}

// Has reports whether any narration in the outcome carries tag.
func (o Outcome) Has(tag Tag) bool {
	for _, n := range o.Events {
		if n.Tag == tag {
			return true
		}
	}
	return false
}

// Find returns the first narration carrying tag.
func (o Outcome) Find(tag Tag) (Narration, bool) {
	for _, n := range o.Events {
		if n.Tag == tag {
			return n, true
		}
	}
	return Narration{}, false
}

func (o Outcome) Tags() []Tag {
	tags := make([]Tag, 0, len(o.Events))
	for _, n := range o.Events {
		tags = append(tags, n.Tag)
	}
	return tags
}

func (o *Outcome) emit(tag Tag, subject string, amount int, detail string) {
	o.Events = append(o.Events, Narration{Tag: tag, Subject: subject, Amount: amount, Detail: detail})
}
