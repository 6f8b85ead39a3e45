// Package worldmap lays the rooms out on the 5x5 grid and answers the
// questions the turn engine and renderer ask about it.
package worldmap

import (
	"errors"
	"fmt"
	"math/rand"

	"tenenbaum/pkg/engine/world"
	"tenenbaum/pkg/game/rooms"
)

const (
	// Rows and Cols are the dimensions of the map.
	Rows = 5
	Cols = 5

	// HiddenGlyph stands in for rooms the player has not seen yet.
	HiddenGlyph = "###"
)

// ErrPoolSize is returned when the room pool does not fill the free tiles exactly.
var ErrPoolSize = errors.New("room pool size does not match free tiles")

// Build places the house in the center of a new grid and the shuffled pool on
// every other tile. The pool slice itself is not reordered.
func Build(house *rooms.Room, pool []*rooms.Room, rng *rand.Rand) (*world.Grid, error) {
	grid := world.NewGrid(Rows, Cols)
	grid.BuildAllTileConnections()

	center := grid.CenterPosition()
	if free := grid.Size() - 1; len(pool) != free {
		return nil, fmt.Errorf("build map: %d rooms for %d tiles: %w", len(pool), free, ErrPoolSize)
	}

	if err := grid.Place(center, house); err != nil {
		return nil, fmt.Errorf("build map: %w", err)
	}
	grid.SetStartTile(grid.TileAt(center))

	shuffled := make([]*rooms.Room, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	next := 0
	for _, pos := range grid.Positions() {
		if pos == center {
			continue
		}
		if err := grid.Place(pos, shuffled[next]); err != nil {
			return nil, fmt.Errorf("build map: %w", err)
		}
		next++
	}

	if msg := grid.Validate(); msg != "" {
		return nil, fmt.Errorf("build map: %s", msg)
	}

	return grid, nil
}

// RoomAt returns the room on the tile at pos, or nil outside the map.
func RoomAt(grid *world.Grid, pos world.Position) *rooms.Room {
	t := grid.TileAt(pos)
	if t == nil {
		return nil
	}
	room, _ := t.Occupant.(*rooms.Room)
	return room
}

// Move returns the position one step in dir from from, or false at the edge
// of the map.
func Move(grid *world.Grid, from world.Position, dir world.Direction) (world.Position, bool) {
	next := grid.TileAt(from).GetNeighbor(dir)
	if next == nil {
		return from, false
	}
	return next.Pos, true
}

// Enter records the player walking into the room at pos.
func Enter(grid *world.Grid, pos world.Position) *rooms.Room {
	room := RoomAt(grid, pos)
	if room != nil {
		room.Enter()
	}
	return room
}

// VisibleGlyph returns the glyph the player may see for pos: the room's own
// glyph once visited or while holding the map, otherwise HiddenGlyph.
func VisibleGlyph(grid *world.Grid, pos world.Position, hasMap bool) string {
	room := RoomAt(grid, pos)
	if room == nil {
		return HiddenGlyph
	}
	if hasMap || room.Visited() {
		return room.Glyph()
	}
	return HiddenGlyph
}

// Glyphs returns the visible glyph of every position on the map.
func Glyphs(grid *world.Grid, hasMap bool) map[world.Position]string {
	glyphs := make(map[world.Position]string, grid.Size())
	for _, pos := range grid.Positions() {
		glyphs[pos] = VisibleGlyph(grid, pos, hasMap)
	}
	return glyphs
}

// Find returns the position of the first room, in row-major order, for which
// match returns true.
func Find(grid *world.Grid, match func(*rooms.Room) bool) (world.Position, bool) {
	for _, pos := range grid.Positions() {
		if room := RoomAt(grid, pos); room != nil && match(room) {
			return pos, true
		}
	}
	return world.Position{}, false
}
