package game

import "testing"

// newStableGame starts at Emerald Pinewood in Clear weather with hunger and
// thirst accrual switched off, so resolver effects can be read directly.
// The returned source keeps feeding the game; tests queue draws on it.
func newStableGame(t *testing.T) (*Game, *ScriptedRand) {
	t.Helper()

	balance := DefaultBalance()
	balance.BaseHungerRate = 0
	balance.BaseThirstRate = 0
	return newScriptedGame(t, balance)
}

func newScriptedGame(t *testing.T, balance Balance) (*Game, *ScriptedRand) {
	t.Helper()

	rng := NewQuietRand()
	rng.Ints = []int{0, 0}
	g, err := NewGame(Options{Rand: rng, Flavor: NewQuietRand(), Balance: &balance})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if g.Location().Name != "Emerald Pinewood" {
		t.Fatalf("expected scripted start at Emerald Pinewood, got %s", g.Location().Name)
	}
	if g.Climate.Weather.Name != "Clear" {
		t.Fatalf("expected scripted Clear weather, got %s", g.Climate.Weather.Name)
	}
	return g, rng
}

func mustNode(t *testing.T, env *Environment, item string) *ResourceNode {
	t.Helper()

	n, ok := env.Node(item)
	if !ok {
		t.Fatalf("expected %s node at %s", item, env.Name)
	}
	return n
}
