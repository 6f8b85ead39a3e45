package gameplay

import (
	"tenenbaum/pkg/engine/layout"
	"tenenbaum/pkg/game/messages"
	"tenenbaum/pkg/game/state"
)

// StoryLines lays out the story panel: the result of the last action, then
// each block of the description, separated by blank lines and padded to height.
func StoryLines(result string, blocks []string, width, height int) []string {
	lines := layout.LeftAlign(result, width)
	lines = append(lines, layout.Blank(width))

	for _, block := range blocks {
		lines = append(lines, layout.LeftAlign(block, width)...)
		lines = append(lines, layout.Blank(width))
	}

	return layout.VertPad(lines, width, height)
}

// RebuildStory replaces the story panel.
func RebuildStory(g *state.Game, result string, blocks []string) {
	g.LastAction = result
	g.Story = StoryLines(result, blocks, g.StoryWidth, g.StoryHeight)
}

// Describe returns the current room's text as seen right now.
func Describe(g *state.Game) []string {
	switch g.Phase {
	case state.PhaseEnded:
		return EndingBlocks(g)
	case state.PhaseTitle:
		return g.Title.Describe(0, nil)
	}

	room := CurrentRoom(g)
	if room == nil {
		return nil
	}
	// The entry has already been counted.
	return room.Describe(room.Visits()-1, g.Inventory)
}

// HelpStory is the story panel shown while the help screen is up. The game
// itself is not changed.
func HelpStory(g *state.Game) []string {
	return StoryLines(
		messages.Get(messages.HelpSubtitle),
		[]string{messages.Get(messages.HelpText)},
		g.StoryWidth, g.StoryHeight)
}
