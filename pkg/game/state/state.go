// Package state holds everything that changes while a game of TENENBAUM is
// played.
package state

import (
	"math/rand"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tenenbaum/pkg/engine/layout"
	"tenenbaum/pkg/engine/world"
	"tenenbaum/pkg/game/rooms"
)

// Phase is the stage of the game loop.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Ending is decided once, when time runs out.
type Ending int

const (
	EndingNone Ending = iota
	EndingTreeHome
	EndingTreeAway
	EndingNoTree
)

func (e Ending) String() string {
	switch e {
	case EndingTreeHome:
		return "tree_home"
	case EndingTreeAway:
		return "tree_away"
	case EndingNoTree:
		return "no_tree"
	default:
		return "none"
	}
}

// Defaults used when a Settings field is zero.
const (
	DefaultStartTurns  = 20
	DefaultStoryWidth  = 46
	DefaultStoryHeight = 15
)

// Settings are the tunables of a single game.
type Settings struct {
	StartTurns  int
	StoryWidth  int
	StoryHeight int
}

func (s Settings) withDefaults() Settings {
	if s.StartTurns <= 0 {
		s.StartTurns = DefaultStartTurns
	}
	if s.StoryWidth <= 0 {
		s.StoryWidth = DefaultStoryWidth
	}
	if s.StoryHeight <= 0 {
		s.StoryHeight = DefaultStoryHeight
	}
	return s
}

// Game represents the game state for TENENBAUM
type Game struct {
	SessionID string

	Phase  Phase
	Ending Ending

	Grid     *world.Grid
	Position world.Position

	// Title and Midnight are the screens shown before and after the story.
	Title    *rooms.Room
	Midnight *rooms.Room

	// Inventory keeps items in the order they were picked up.
	Inventory []string
	// TreeSource is the room the carried tree came from, if any. A neighbor's
	// tree stays recorded even after another tree is cut.
	TreeSource *rooms.Room

	StartTurns int
	TurnsLeft  int

	// LastAction is the result line of the most recent action.
	LastAction string
	// Story is the text panel, exactly StoryHeight lines once rebuilt.
	Story       []string
	StoryWidth  int
	StoryHeight int

	Rand *rand.Rand
	Log  *zap.Logger
}

// NewGame creates a new game on the title screen. rng drives every random
// choice the game makes.
func NewGame(settings Settings, rng *rand.Rand) *Game {
	settings = settings.withDefaults()

	g := &Game{
		SessionID:   uuid.NewString(),
		Phase:       PhaseTitle,
		Inventory:   make([]string, 0, 3),
		StartTurns:  settings.StartTurns,
		TurnsLeft:   settings.StartTurns,
		StoryWidth:  settings.StoryWidth,
		StoryHeight: settings.StoryHeight,
		Rand:        rng,
	}
	g.SetLogger(zap.NewNop())
	g.ClearStory()
	return g
}

// SetLogger attaches log, tagged with the session ID.
func (g *Game) SetLogger(log *zap.Logger) {
	g.Log = log.With(zap.String("session", g.SessionID))
}

// ClearStory resets the story panel to blank lines.
func (g *Game) ClearStory() {
	g.Story = layout.VertPad(nil, g.StoryWidth, g.StoryHeight)
}

// HasItem checks if the player has a specific item
func (g *Game) HasItem(item string) bool {
	return slices.Contains(g.Inventory, item)
}

// PickUpItem adds an item to the player's inventory
func (g *Game) PickUpItem(item string) {
	if g.HasItem(item) {
		return
	}
	g.Inventory = append(g.Inventory, item)
}

// HasMap reports whether every room is revealed on the map.
func (g *Game) HasMap() bool {
	return g.HasItem(rooms.ItemMap)
}

// SpendTurns takes n turns off the clock. The count may go below zero.
func (g *Game) SpendTurns(n int) {
	g.TurnsLeft -= n
}

// OutOfTime reports whether the clock has reached midnight.
func (g *Game) OutOfTime() bool {
	return g.TurnsLeft <= 0
}

// InventoryCopy returns the inventory as a new slice.
func (g *Game) InventoryCopy() []string {
	return slices.Clone(g.Inventory)
}
