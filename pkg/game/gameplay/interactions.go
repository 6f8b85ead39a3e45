package gameplay

import (
	"go.uber.org/zap"

	"tenenbaum/pkg/game/messages"
	"tenenbaum/pkg/game/rooms"
	"tenenbaum/pkg/game/state"
)

// Swings needed to fell a tree, inclusive.
const (
	MinSwings = 2
	MaxSwings = 5
)

func invalid() string {
	return messages.Get(messages.InvalidStatement)
}

// Take picks item up from the current room, trees included.
func Take(g *state.Game, item string) string {
	room := CurrentRoom(g)
	if room == nil || item == "" {
		return invalid()
	}
	if !room.RemoveItem(item) {
		return invalid()
	}

	g.PickUpItem(item)
	if item == rooms.ItemTree {
		recordTreeSource(g, room)
	}
	g.SpendTurns(1)

	g.Log.Debug("took item", zap.String("item", item), zap.String("room", room.Fullname))

	return messages.TookItemMessage(item)
}

// Cut fells the tree in the current room. It needs the axe, and costs one
// turn per swing, which may run the clock past midnight.
func Cut(g *state.Game, object string) string {
	room := CurrentRoom(g)
	switch {
	case room == nil, object != rooms.ItemTree:
		return invalid()
	case !g.HasItem(rooms.ItemAxe):
		return invalid()
	case !room.RemoveItem(rooms.ItemTree):
		return invalid()
	}

	swings := MinSwings + g.Rand.Intn(MaxSwings-MinSwings+1)
	g.PickUpItem(rooms.ItemTree)
	recordTreeSource(g, room)
	g.SpendTurns(swings)

	g.Log.Debug("felled tree",
		zap.String("room", room.Fullname),
		zap.Stringer("kind", room.Kind),
		zap.Int("swings", swings))

	return messages.TreeFellMessage(swings)
}

// recordTreeSource remembers where the carried tree came from. The latest
// tree wins, except that a neighbor's tree is never forgotten: the stump is
// still there to be found.
func recordTreeSource(g *state.Game, room *rooms.Room) {
	if g.TreeSource != nil && g.TreeSource.Kind == rooms.KindNeighborTree {
		return
	}
	g.TreeSource = room
}

// Help reports whether the help screen should be shown. Help takes no object.
func Help(object string) (string, bool) {
	if object != "" {
		return invalid(), false
	}
	return messages.Get(messages.HelpResume), true
}
