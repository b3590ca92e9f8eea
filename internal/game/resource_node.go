package game

const maxNodeStress = 10

// ResourceNode is a location-local stock of one gatherable item.
// 0 <= Count <= MaxCount holds after every operation.
type ResourceNode struct {
	Item     string `json:"item"`
	Count    int    `json:"count"`
	MaxCount int    `json:"max_count"`
	Regen    int    `json:"regen"`
	Stress   int    `json:"stress"`
}

// Harvest removes up to requested units and returns what was actually taken.
// Asking for more than the stock holds is not an error; the yield is clamped.
// Emptying the node raises its stress.
func (n *ResourceNode) Harvest(requested int) int {
	if n == nil || requested <= 0 || n.Count <= 0 {
		return 0
	}
	actual := min(n.Count, requested)
	n.Count -= actual
	if n.Count == 0 {
		n.Stress = min(maxNodeStress, n.Stress+1)
	}
	return actual
}

// Regenerate applies one hour of regrowth.
func (n *ResourceNode) Regenerate(seasonalModifier, stressPenalty, localBonus int) {
	if n == nil {
		return
	}
	gain := max(0, n.Regen+seasonalModifier-stressPenalty+localBonus)
	n.Count = clamp(n.Count+gain, 0, n.MaxCount)
}

// StressPenalty is the regen slowdown caused by recent over-harvesting.
func (n *ResourceNode) StressPenalty() int {
	if n == nil {
		return 0
	}
	return n.Stress / 3
}

func (n *ResourceNode) DecayStress() {
	if n == nil {
		return
	}
	n.Stress = max(0, n.Stress-1)
}

func (n *ResourceNode) Depleted() bool {
	return n == nil || n.Count <= 0
}
