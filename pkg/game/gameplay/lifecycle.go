// Package gameplay provides the turn engine: starting a game, carrying out
// commands and deciding how it ends.
package gameplay

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"tenenbaum/pkg/game/messages"
	"tenenbaum/pkg/game/rooms"
	"tenenbaum/pkg/game/state"
	"tenenbaum/pkg/game/worldmap"
)

// BuildGame creates a game on the title screen with a freshly shuffled map.
func BuildGame(catalog *rooms.Catalog, settings state.Settings, rng *rand.Rand) (*state.Game, error) {
	g := state.NewGame(settings, rng)

	grid, err := worldmap.Build(catalog.NewHouse(), catalog.NewPool(), rng)
	if err != nil {
		return nil, fmt.Errorf("build game: %w", err)
	}

	g.Grid = grid
	g.Title = catalog.NewTitleScreen()
	g.Midnight = catalog.NewMidnightScreen()
	g.Position = grid.StartTile().Pos

	RebuildStory(g, "", g.Title.Describe(0, nil))

	return g, nil
}

// Start leaves the title screen and puts the player in the house.
func Start(g *state.Game) string {
	if g.Phase != state.PhaseTitle {
		return messages.Get(messages.InvalidStatement)
	}

	g.Phase = state.PhasePlaying
	g.Position = g.Grid.StartTile().Pos
	worldmap.Enter(g.Grid, g.Position)

	g.Log.Info("story begins",
		zap.Int("turns", g.TurnsLeft),
		zap.Stringer("position", g.Position))

	return messages.Get(messages.StoryBegins)
}

// CurrentRoom returns the room whose text fills the screen: the title or
// midnight screen outside of play, otherwise the room the player stands in.
func CurrentRoom(g *state.Game) *rooms.Room {
	switch g.Phase {
	case state.PhaseTitle:
		return g.Title
	case state.PhaseEnded:
		return g.Midnight
	default:
		return worldmap.RoomAt(g.Grid, g.Position)
	}
}

// AtHome reports whether the player is standing in the house.
func AtHome(g *state.Game) bool {
	room := worldmap.RoomAt(g.Grid, g.Position)
	return room != nil && room.Kind == rooms.KindHouse
}

// ClassifyEnding decides which of the three endings the player earned.
func ClassifyEnding(hasTree, atHome bool) state.Ending {
	switch {
	case hasTree && atHome:
		return state.EndingTreeHome
	case hasTree:
		return state.EndingTreeAway
	default:
		return state.EndingNoTree
	}
}

var endingSummaries = map[state.Ending]string{
	state.EndingTreeHome: messages.EndingTreeHome,
	state.EndingTreeAway: messages.EndingTreeAway,
	state.EndingNoTree:   messages.EndingNoTree,
}

// CheckEnding moves a game that has run out of time to the ended phase and
// reports whether it did.
func CheckEnding(g *state.Game) bool {
	if g.Phase != state.PhasePlaying || !g.OutOfTime() {
		return false
	}

	g.Ending = ClassifyEnding(g.HasItem(rooms.ItemTree), AtHome(g))
	g.Phase = state.PhaseEnded

	g.Log.Info("midnight",
		zap.Stringer("ending", g.Ending),
		zap.Int("turns_left", g.TurnsLeft),
		zap.Strings("inventory", g.Inventory))

	RebuildStory(g, messages.Get(endingSummaries[g.Ending]), EndingBlocks(g))
	return true
}

// EndingBlocks returns the midnight text for the game's ending. A tree taken
// from behind the neighbor's fence adds the arrest.
func EndingBlocks(g *state.Game) []string {
	blocks := g.Midnight.Describe(0, g.Inventory)
	ending, _ := g.Midnight.Text(g.Ending.String())
	blocks = append(blocks, ending...)

	if g.TreeSource != nil && g.TreeSource.Kind == rooms.KindNeighborTree {
		arrest, _ := g.Midnight.Text(rooms.BranchNeighborTree)
		blocks = append(blocks, arrest...)
	}
	return blocks
}
