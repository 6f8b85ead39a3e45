// Package messages holds the fixed interface strings of the game. Strings are
// looked up by key from an embedded gettext catalog.
package messages

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"

	"github.com/leonelquinteros/gotext"

	"tenenbaum/pkg/engine/world"
)

// Keys used by the game. Every key has an entry in locales/en.po.
const (
	InvalidStatement   = "INVALID_STATEMENT"
	StoryBegins        = "STORY_BEGINS"
	PressEnterToStart  = "PRESS_ENTER_TO_START"
	PressEnterToReturn = "PRESS_ENTER_TO_RETURN"
	PressEnterToExit   = "PRESS_ENTER_TO_EXIT"
	Prompt             = "PROMPT"
	Wall               = "WALL"
	MoveWent           = "MOVE_WENT"
	MoveWandered       = "MOVE_WANDERED"
	MoveOnward         = "MOVE_ONWARD"
	TookItem           = "TOOK_ITEM"
	TreeFell           = "TREE_FELL"
	HelpSubtitle       = "HELP_SUBTITLE"
	HelpText           = "HELP_TEXT"
	HelpResume         = "HELP_RESUME"
	Location           = "LOCATION"
	Time               = "TIME"
	Inventory          = "INVENTORY"
	InventoryEmpty     = "INVENTORY_EMPTY"
	EndingTreeHome     = "ENDING_TREE_HOME"
	EndingTreeAway     = "ENDING_TREE_AWAY"
	EndingNoTree       = "ENDING_NO_TREE"
	TerminalTooSmall   = "TERMINAL_TOO_SMALL"
	Goodbye            = "GOODBYE"
)

// Keys lists every key the game looks up.
var Keys = []string{
	InvalidStatement, StoryBegins, PressEnterToStart, PressEnterToReturn,
	PressEnterToExit, Prompt, Wall, MoveWent, MoveWandered, MoveOnward,
	TookItem, TreeFell, HelpSubtitle, HelpText, HelpResume, Location, Time,
	Inventory, InventoryEmpty, EndingTreeHome, EndingTreeAway, EndingNoTree,
	TerminalTooSmall, Goodbye,
	"NORTH", "EAST", "SOUTH", "WEST",
}

//go:embed locales/en.po
var englishPo []byte

var po = load()

func load() *gotext.Po {
	p := gotext.NewPo()
	p.Parse(englishPo)
	return p
}

// Get returns the string for key. Unknown keys come back unchanged. Keys
// with placeholders are formatted by the helpers below.
func Get(key string) string {
	return po.Get(key)
}

// IsTranslated reports whether key has an entry in the catalog.
func IsTranslated(key string) bool {
	return po.IsTranslated(key)
}

// DirectionName returns the display name of a direction ("North").
func DirectionName(dir world.Direction) string {
	return Get(strings.ToUpper(dir.String()))
}

// WallMessage is the rejection for walking off the edge of the map.
func WallMessage(dir world.Direction) string {
	return fmt.Sprintf(Get(Wall), DirectionName(dir))
}

var moveFlavors = []string{MoveWent, MoveWandered, MoveOnward}

// MoveMessages returns every phrasing of a successful move in dir.
func MoveMessages(dir world.Direction) []string {
	name := DirectionName(dir)
	out := make([]string, len(moveFlavors))
	for i, key := range moveFlavors {
		out[i] = fmt.Sprintf(Get(key), name)
	}
	return out
}

// MoveMessage picks one phrasing of a successful move in dir.
func MoveMessage(dir world.Direction, rng *rand.Rand) string {
	return fmt.Sprintf(Get(moveFlavors[rng.Intn(len(moveFlavors))]), DirectionName(dir))
}

// TookItemMessage reports a successful take.
func TookItemMessage(item string) string {
	return fmt.Sprintf(Get(TookItem), item)
}

// TreeFellMessage reports a successful cut.
func TreeFellMessage(swings int) string {
	return fmt.Sprintf(Get(TreeFell), swings)
}

// TerminalTooSmallMessage warns that the terminal cannot hold the frame.
func TerminalTooSmallMessage(cols, rows, wantCols, wantRows int) string {
	return fmt.Sprintf(Get(TerminalTooSmall), cols, rows, wantCols, wantRows)
}
