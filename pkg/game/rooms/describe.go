package rooms

import "slices"

// Text branch names used in the catalog.
const (
	BranchDefault = "default"
	BranchFirst   = "first"
	BranchAgain   = "again"
	BranchIntro   = "intro"
	BranchStump   = "stump"

	BranchWithTree    = "with_tree"
	BranchWithoutTree = "without_tree"
	BranchHasTree     = "has_tree"
	BranchHasAxe      = "has_axe"
	BranchNoAxe       = "no_axe"
	BranchHasMap      = "has_map"
	BranchNoMap       = "no_map"

	BranchTreeHome     = "tree_home"
	BranchTreeAway     = "tree_away"
	BranchNoTree       = "no_tree"
	BranchNeighborTree = "neighbor_tree"
)

// requiredBranches lists every branch Describe can select for a kind, plus
// the ending branches of the midnight screen.
func requiredBranches(k Kind) []string {
	switch k {
	case KindHouse:
		return []string{BranchFirst, BranchWithTree, BranchWithoutTree}
	case KindShed:
		return []string{BranchHasAxe, BranchNoAxe}
	case KindBarn:
		return []string{BranchHasMap, BranchNoMap}
	case KindFrozenPond, KindSnowman:
		return []string{BranchFirst, BranchAgain}
	case KindNeighborTree, KindChristmasTree, KindWillowTree:
		return []string{BranchIntro, BranchHasTree, BranchHasAxe, BranchNoAxe, BranchStump}
	case KindMidnightScreen:
		return []string{BranchIntro, BranchTreeHome, BranchTreeAway, BranchNoTree, BranchNeighborTree}
	default:
		return []string{BranchDefault}
	}
}

// branches picks the text branches for a room of kind k. visits counts the
// entries before the current one, so 0 means a first visit. standing is false
// once a tree room's own tree has been taken.
func branches(k Kind, visits int, inventory []string, standing bool) []string {
	has := func(item string) bool {
		return slices.Contains(inventory, item)
	}

	switch k {
	case KindHouse:
		switch {
		case visits == 0:
			return []string{BranchFirst}
		case has(ItemTree):
			return []string{BranchWithTree}
		default:
			return []string{BranchWithoutTree}
		}
	case KindShed:
		if has(ItemAxe) {
			return []string{BranchHasAxe}
		}
		return []string{BranchNoAxe}
	case KindBarn:
		if has(ItemMap) {
			return []string{BranchHasMap}
		}
		return []string{BranchNoMap}
	case KindFrozenPond, KindSnowman:
		if visits == 0 {
			return []string{BranchFirst}
		}
		return []string{BranchAgain}
	case KindNeighborTree, KindChristmasTree, KindWillowTree:
		switch {
		case !standing:
			return []string{BranchStump}
		case has(ItemTree):
			return []string{BranchIntro, BranchHasTree}
		case has(ItemAxe):
			return []string{BranchIntro, BranchHasAxe}
		default:
			return []string{BranchIntro, BranchNoAxe}
		}
	case KindMidnightScreen:
		return []string{BranchIntro}
	default:
		return []string{BranchDefault}
	}
}

// Describe returns the narrative blocks shown while standing in the room.
// It depends only on its arguments, the room's catalog text and whether the
// room's tree is still standing, and always returns at least one block for a
// validated catalog.
func (r *Room) Describe(visits int, inventory []string) []string {
	standing := !r.Kind.IsTree() || r.HasItem(ItemTree)

	var blocks []string
	for _, branch := range branches(r.Kind, visits, inventory, standing) {
		blocks = append(blocks, r.text[branch]...)
	}
	return blocks
}
