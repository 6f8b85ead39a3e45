package rooms

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenenbaum/pkg/engine/world"
)

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog()
	require.NoError(t, err)
	return c
}

func TestLoadCatalog(t *testing.T) {
	c := loadCatalog(t)

	assert.Equal(t, "TENENBAUM: The Game", c.Title.Fullname)
	assert.Equal(t, "Midnight", c.Midnight.Nickname)
	assert.Equal(t, "Christmas Morning", c.Midnight.Fullname)
	assert.Equal(t, " H ", c.House.Glyph)
	assert.Len(t, c.Pool, 24)
}

func TestPoolComposition(t *testing.T) {
	counts := make(map[Kind]int)
	for _, room := range loadCatalog(t).NewPool() {
		counts[room.Kind]++
	}

	assert.Equal(t, map[Kind]int{
		KindShed:          1,
		KindBarn:          1,
		KindFrozenPond:    1,
		KindSnowman:       1,
		KindNeighborTree:  2,
		KindChristmasTree: 3,
		KindWillowTree:    1,
		KindFiller:        14,
	}, counts)
}

func TestPoolItems(t *testing.T) {
	for _, room := range loadCatalog(t).NewPool() {
		switch {
		case room.Kind == KindShed:
			assert.Equal(t, []string{ItemAxe}, room.ItemNames())
		case room.Kind == KindBarn:
			assert.Equal(t, []string{ItemMap}, room.ItemNames())
		case room.Kind.IsTree():
			assert.Equal(t, []string{ItemTree}, room.ItemNames(), room.Fullname)
		default:
			assert.Empty(t, room.ItemNames(), room.Fullname)
		}
	}
}

func TestNewPoolReturnsFreshRooms(t *testing.T) {
	c := loadCatalog(t)
	first := c.NewPool()
	first[0].Enter()
	first[0].RemoveItem(ItemAxe)

	second := c.NewPool()
	assert.Equal(t, 0, second[0].Visits())
	assert.Equal(t, first[0].Fullname, second[0].Fullname)
	assert.Equal(t, ItemAxe, second[0].ItemNames()[0])
}

func TestDescribeIsTotal(t *testing.T) {
	c := loadCatalog(t)
	all := append(c.NewPool(), c.NewHouse(), c.NewTitleScreen(), c.NewMidnightScreen())

	inventories := [][]string{
		nil,
		{ItemAxe},
		{ItemMap},
		{ItemTree},
		{ItemMap, ItemAxe},
		{ItemAxe, ItemTree},
		{ItemMap, ItemAxe, ItemTree},
	}

	for _, room := range all {
		for _, visits := range []int{0, 1, 7} {
			for _, inv := range inventories {
				blocks := room.Describe(visits, inv)
				require.NotEmpty(t, blocks, "%s visits=%d inv=%v", room.Fullname, visits, inv)
				for _, block := range blocks {
					assert.NotEmpty(t, strings.TrimSpace(block))
				}
			}
		}
	}
}

func TestHouseDescription(t *testing.T) {
	house := loadCatalog(t).NewHouse()

	first := house.Describe(0, nil)
	require.Len(t, first, 4)
	assert.Contains(t, first[0], "Christmas is your absolute favorite holiday.")
	assert.Contains(t, first[2], "THE TREE!")

	// The tree does not change the first-visit text.
	assert.Equal(t, first, house.Describe(0, []string{ItemTree}))

	assert.Contains(t, house.Describe(1, nil)[0], "This is your house! My, it's lovely.")
	assert.Contains(t, house.Describe(3, []string{ItemAxe, ItemTree})[0], "You found the tree! Good job.")
}

func TestTreeDescriptionFollowsInventory(t *testing.T) {
	var tree *Room
	for _, room := range loadCatalog(t).NewPool() {
		if room.Kind == KindChristmasTree {
			tree = room
			break
		}
	}
	require.NotNil(t, tree)

	intro, _ := tree.Text(BranchIntro)
	noAxe, _ := tree.Text(BranchNoAxe)
	hasAxe, _ := tree.Text(BranchHasAxe)
	hasTree, _ := tree.Text(BranchHasTree)

	assert.Equal(t, append(append([]string{}, intro...), noAxe...), tree.Describe(0, nil))
	assert.Equal(t, append(append([]string{}, intro...), hasAxe...), tree.Describe(0, []string{ItemAxe}))
	assert.Equal(t, append(append([]string{}, intro...), hasTree...), tree.Describe(2, []string{ItemAxe, ItemTree}))

	stump, ok := tree.Text(BranchStump)
	require.True(t, ok)
	require.True(t, tree.RemoveItem(ItemTree))
	assert.Equal(t, stump, tree.Describe(0, nil))
	assert.Equal(t, stump, tree.Describe(3, []string{ItemAxe, ItemTree}))
	for _, block := range tree.Describe(1, []string{ItemTree}) {
		assert.NotContains(t, block, "rises out of the snow")
	}
}

func TestRepeatVisitDescription(t *testing.T) {
	for _, room := range loadCatalog(t).NewPool() {
		if room.Kind != KindFrozenPond && room.Kind != KindSnowman {
			continue
		}
		assert.NotEqual(t, room.Describe(0, nil), room.Describe(1, nil), room.Fullname)
		assert.Equal(t, room.Describe(1, nil), room.Describe(5, nil), room.Fullname)
	}
}

func TestRoomState(t *testing.T) {
	shed := loadCatalog(t).NewPool()[0]
	require.Equal(t, KindShed, shed.Kind)

	assert.False(t, shed.Visited())
	shed.Enter()
	shed.Enter()
	assert.Equal(t, 2, shed.Visits())
	assert.True(t, shed.Visited())

	assert.True(t, shed.HasItem(ItemAxe))
	assert.True(t, shed.RemoveItem(ItemAxe))
	assert.False(t, shed.HasItem(ItemAxe))
	assert.False(t, shed.RemoveItem(ItemAxe))

	links := map[world.Direction]world.Position{world.North: world.NewPosition(0, 0)}
	shed.SetNeighbors(links)
	links[world.South] = world.NewPosition(2, 0)

	pos, ok := shed.Neighbor(world.North)
	assert.True(t, ok)
	assert.Equal(t, "A1", pos.String())
	_, ok = shed.Neighbor(world.South)
	assert.False(t, ok, "neighbor mapping must be copied")
}

func TestValidateReportsMissingBranches(t *testing.T) {
	doc := `
title:
  kind: title_screen
  fullname: Title
  text: {default: [hello]}
midnight:
  kind: midnight_screen
  fullname: Midnight
  text: {intro: [bells]}
house:
  kind: house
  nickname: Home
  fullname: Home
  glyph: " H "
  text: {first: [hi], with_tree: [yay]}
pool:
  - kind: shed
    nickname: Shed
    fullname: Shed
    glyph: " S"
    items: [axe]
    text: {no_axe: [dark], has_axe: ["  "]}
`
	_, err := ParseCatalog([]byte(doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingDescription))
	assert.True(t, errors.Is(err, ErrInvalidRoom))

	msg := err.Error()
	assert.Contains(t, msg, `house: branch "without_tree"`)
	assert.Contains(t, msg, `midnight: branch "tree_home"`)
	assert.Contains(t, msg, `branch "has_axe"`)
	assert.Contains(t, msg, `glyph " S"`)
}

func TestValidateRejectsMisplacedKinds(t *testing.T) {
	c := loadCatalog(t)
	c.Pool = append(c.Pool, c.House)

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRoom)
}

func TestUnknownKind(t *testing.T) {
	_, err := ParseCatalog([]byte("house:\n  kind: castle\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown room kind "castle"`)
}

func TestKindNames(t *testing.T) {
	for k, name := range kindNames {
		parsed, ok := ParseKind(name)
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
		assert.Equal(t, name, k.String())
	}
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.True(t, KindWillowTree.IsTree())
	assert.False(t, KindShed.IsTree())
}
