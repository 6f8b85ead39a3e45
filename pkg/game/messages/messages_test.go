package messages

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"tenenbaum/pkg/engine/world"
)

func TestEveryKeyIsTranslated(t *testing.T) {
	for _, key := range Keys {
		assert.True(t, IsTranslated(key), key)
		assert.NotEqual(t, key, Get(key), key)
	}
}

func TestFixedStrings(t *testing.T) {
	assert.Equal(t, "Sorry, try a different command.", Get(InvalidStatement))
	assert.Equal(t, "Our story begins...", Get(StoryBegins))
	assert.Equal(t, "You're right back in the action!", Get(HelpResume))
	assert.Equal(t, "This is a text-based adventure!", Get(HelpSubtitle))
	assert.Contains(t, Get(HelpText), `"Move north!"`)
}

func TestWallMessage(t *testing.T) {
	assert.Equal(t, "You cannot go any further North!", WallMessage(world.North))
	assert.Equal(t, "You cannot go any further West!", WallMessage(world.West))
}

func TestMoveMessages(t *testing.T) {
	assert.Equal(t, []string{
		"You went West.",
		"You wandered West.",
		"You moved onward, to the West.",
	}, MoveMessages(world.West))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		assert.Contains(t, MoveMessages(world.East), MoveMessage(world.East, rng))
	}
}

func TestFormattedMessages(t *testing.T) {
	assert.Equal(t, "You took the axe.", TookItemMessage("axe"))
	assert.Equal(t, "After 3 swings of the axe, the tree fell!", TreeFellMessage(3))
	assert.Equal(t, "Your terminal is 60x20; the game is drawn at 78x23 and may look broken.",
		TerminalTooSmallMessage(60, 20, 78, 23))
}

func TestUnknownKeyPassesThrough(t *testing.T) {
	assert.Equal(t, "NOT_A_KEY", Get("NOT_A_KEY"))
}

func TestGetKeepsPlaceholders(t *testing.T) {
	assert.Equal(t, "You cannot go any further %s!", Get(Wall))
	assert.Equal(t, "After %d swings of the axe, the tree fell!", Get(TreeFell))
}
