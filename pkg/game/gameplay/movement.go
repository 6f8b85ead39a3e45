package gameplay

import (
	"go.uber.org/zap"

	"tenenbaum/pkg/engine/world"
	"tenenbaum/pkg/game/messages"
	"tenenbaum/pkg/game/state"
	"tenenbaum/pkg/game/worldmap"
)

// Move walks one tile in dir. Walking into the edge of the map costs nothing.
func Move(g *state.Game, dir world.Direction) string {
	next, ok := worldmap.Move(g.Grid, g.Position, dir)
	if !ok {
		return messages.WallMessage(dir)
	}

	g.Position = next
	room := worldmap.Enter(g.Grid, next)
	g.SpendTurns(1)

	g.Log.Debug("moved",
		zap.Stringer("direction", dir),
		zap.Stringer("position", next),
		zap.String("room", room.Fullname),
		zap.Int("visits", room.Visits()))

	return messages.MoveMessage(dir, g.Rand)
}
