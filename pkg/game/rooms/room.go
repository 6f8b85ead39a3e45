// Package rooms defines the places the player can stand in and the
// narrative each of them shows.
package rooms

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"tenenbaum/pkg/engine/world"
)

// Item identifiers shared by rooms, the lexicon and the turn engine.
const (
	ItemAxe  = "axe"
	ItemMap  = "map"
	ItemTree = "tree"
)

// Room is a location on the map, or one of the two screens that frame the
// game. Rooms are created from catalog definitions and live for the whole
// session; only the visit counter and the item set ever change.
type Room struct {
	Kind     Kind
	Nickname string
	Fullname string
	Items    mapset.Set[string]

	glyph     string
	visits    int
	neighbors map[world.Direction]world.Position
	text      map[string][]string
}

func newRoom(def Definition) *Room {
	items := mapset.New[string]()
	for _, item := range def.Items {
		items.Put(item)
	}

	return &Room{
		Kind:      def.Kind,
		Nickname:  def.Nickname,
		Fullname:  def.Fullname,
		Items:     items,
		glyph:     def.Glyph,
		neighbors: make(map[world.Direction]world.Position),
		text:      def.Text,
	}
}

// Glyph returns the room's three-character map token.
func (r *Room) Glyph() string {
	return r.glyph
}

// Visits returns how many times the player has entered the room.
func (r *Room) Visits() int {
	return r.visits
}

// Enter records one entry into the room.
func (r *Room) Enter() {
	r.visits++
}

// Visited reports whether the player has been here at least once.
func (r *Room) Visited() bool {
	return r.visits > 0
}

// SetNeighbors stores a copy of the tile's neighbor mapping.
func (r *Room) SetNeighbors(links map[world.Direction]world.Position) {
	r.neighbors = make(map[world.Direction]world.Position, len(links))
	for dir, pos := range links {
		r.neighbors[dir] = pos
	}
}

// Neighbor returns the position reached by leaving in dir.
func (r *Room) Neighbor(dir world.Direction) (world.Position, bool) {
	pos, ok := r.neighbors[dir]
	return pos, ok
}

// HasItem reports whether item is lying in the room.
func (r *Room) HasItem(item string) bool {
	return r.Items.Has(item)
}

// RemoveItem takes item out of the room and reports whether it was there.
func (r *Room) RemoveItem(item string) bool {
	if !r.Items.Has(item) {
		return false
	}
	r.Items.Remove(item)
	return true
}

// ItemNames returns the room's items in sorted order.
func (r *Room) ItemNames() []string {
	names := make([]string, 0, r.Items.Size())
	r.Items.Each(func(item string) {
		names = append(names, item)
	})
	slices.Sort(names)
	return names
}

// Text returns the blocks of a single named branch.
func (r *Room) Text(branch string) ([]string, bool) {
	blocks, ok := r.text[branch]
	return blocks, ok
}

func (r *Room) String() string {
	return r.Fullname
}
