package game

import (
	"maps"
	"slices"
)

// Item names the core reads or writes directly.
const (
	ItemStick         = "stick"
	ItemStone         = "stone"
	ItemFiber         = "fiber"
	ItemWater         = "water"
	ItemBerries       = "berries"
	ItemMushroom      = "mushroom"
	ItemRawMeat       = "raw_meat"
	ItemCookedMeat    = "cooked_meat"
	ItemRoastMushroom = "roasted_mushroom"
	ItemHide          = "hide"
	ItemRope          = "rope"
	ItemSparkCrystal  = "spark_crystal"
)

// Inventory maps item names to non-negative counts. Unlisted items read as zero.
type Inventory map[string]int

func (inv Inventory) Count(item string) int {
	return inv[item]
}

func (inv Inventory) Has(item string, qty int) bool {
	return inv[item] >= qty
}

func (inv Inventory) Add(item string, qty int) {
	if qty <= 0 {
		return
	}
	inv[item] += qty
}

// Remove takes up to qty units and returns how many were removed.
func (inv Inventory) Remove(item string, qty int) int {
	have := inv[item]
	taken := clamp(qty, 0, have)
	if taken == 0 {
		return 0
	}
	if have-taken == 0 {
		delete(inv, item)
		return taken
	}
	inv[item] = have - taken
	return taken
}

// Items lists the held items in name order.
func (inv Inventory) Items() []string {
	items := make([]string, 0, len(inv))
	for item, qty := range inv {
		if qty > 0 {
			items = append(items, item)
		}
	}
	slices.Sort(items)
	return items
}

func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	maps.Copy(out, inv)
	return out
}

const (
	ShelterNone = iota
	ShelterLeanTo
	ShelterHut
	ShelterEnchanted
)

var shelterLabels = []string{"No shelter", "Lean-to", "Wattle hut", "Enchanted cabin"}

type Shelter struct {
	Level    int    `json:"level"`
	Material string `json:"material"`
}

func (s Shelter) Label() string {
	return shelterLabels[clamp(s.Level, ShelterNone, ShelterEnchanted)]
}

func (s Shelter) Built() bool {
	return s.Level > ShelterNone
}

const (
	minBodyTemp = 30
	maxBodyTemp = 42
	maxVital    = 100
	maxComfort  = 10
	hoursPerDay = 24
)

type Player struct {
	Health      int       `json:"health"`
	Hunger      int       `json:"hunger"`
	Thirst      int       `json:"thirst"`
	BodyTemp    int       `json:"body_temp"`
	Location    int       `json:"location"`
	Hours       int       `json:"hours"`
	Inventory   Inventory `json:"inventory"`
	Shelter     Shelter   `json:"shelter"`
	FireLit     bool      `json:"fire_lit"`
	CampComfort int       `json:"camp_comfort"`
}

func newPlayer(b Balance, location int) Player {
	inv := Inventory{}
	for item, qty := range b.StartInventory {
		inv.Add(item, qty)
	}
	return Player{
		Health:    b.StartHealth,
		Hunger:    b.StartHunger,
		Thirst:    b.StartThirst,
		BodyTemp:  b.StartBodyTemp,
		Location:  location,
		Hours:     b.StartHour,
		Inventory: inv,
	}
}

func (p Player) clone() Player {
	p.Inventory = p.Inventory.Clone()
	return p
}
