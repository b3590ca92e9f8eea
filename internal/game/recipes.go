package game

type RecipeKind int

const (
	RecipeItem RecipeKind = iota
	RecipeFire
	RecipeShelter
)

type Material struct {
	Item string
	Qty  int
}

type Recipe struct {
	Name         string
	Kind         RecipeKind
	Materials    []Material
	ShelterLevel int
	Material     string
}

var recipes = []Recipe{
	{Name: ItemRope, Kind: RecipeItem, Materials: []Material{{ItemFiber, 3}}},
	{Name: ItemSparkCrystal, Kind: RecipeItem, Materials: []Material{{ItemStone, 2}}},
	{Name: "campfire", Kind: RecipeFire, Materials: []Material{{ItemStick, 3}, {ItemStone, 2}}},
	{Name: "lean-to", Kind: RecipeShelter, Materials: []Material{{ItemStick, 5}, {ItemFiber, 4}}, ShelterLevel: ShelterLeanTo, Material: "wood"},
	{Name: "hut", Kind: RecipeShelter, Materials: []Material{{ItemStick, 8}, {ItemFiber, 6}, {ItemHide, 2}}, ShelterLevel: ShelterHut, Material: "hide & wood"},
}

// Recipes returns the craft table in display order.
func Recipes() []Recipe {
	out := make([]Recipe, len(recipes))
	copy(out, recipes)
	return out
}

func RecipeNames() []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}
	return names
}

func LookupRecipe(name string) (Recipe, bool) {
	for _, r := range recipes {
		if r.Name == name {
			return r, true
		}
	}
	return Recipe{}, false
}
