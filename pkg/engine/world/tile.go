// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Occupant is the content a tile holds. Games supply their own room types;
// the engine only needs enough of them to track visits and draw the map.
type Occupant interface {
	// Glyph returns the map symbol shown once the occupant is known.
	Glyph() string
	// Visits returns how many times the player has entered.
	Visits() int
	// Enter records one entry.
	Enter()
	// SetNeighbors receives a copy of the tile's direction links.
	SetNeighbors(links map[Direction]Position)
}

// Tile represents a single cell in the grid.
type Tile struct {
	Pos Position

	// Navigation - links to adjacent tiles
	North *Tile
	East  *Tile
	South *Tile
	West  *Tile

	// Occupant is set once when the world is populated
	Occupant Occupant
}

// NewTile creates a new empty tile at the given position
func NewTile(pos Position) *Tile {
	return &Tile{Pos: pos}
}

// GetNeighbor returns the neighboring tile in the given direction
func (t *Tile) GetNeighbor(dir Direction) *Tile {
	if t == nil {
		return nil
	}
	switch dir {
	case North:
		return t.North
	case East:
		return t.East
	case South:
		return t.South
	case West:
		return t.West
	default:
		return nil
	}
}

// SetNeighbor sets the neighboring tile in the given direction
func (t *Tile) SetNeighbor(dir Direction, neighbor *Tile) {
	if t == nil {
		return
	}
	switch dir {
	case North:
		t.North = neighbor
	case East:
		t.East = neighbor
	case South:
		t.South = neighbor
	case West:
		t.West = neighbor
	}
}

// GetNeighbors returns all non-nil adjacent tiles
func (t *Tile) GetNeighbors() []*Tile {
	var neighbors []*Tile
	for _, dir := range AllDirections() {
		if n := t.GetNeighbor(dir); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Links returns the positions of the adjacent tiles keyed by direction.
// Directions at the edge of the map are absent.
func (t *Tile) Links() map[Direction]Position {
	links := make(map[Direction]Position, 4)
	for _, dir := range AllDirections() {
		if n := t.GetNeighbor(dir); n != nil {
			links[dir] = n.Pos
		}
	}
	return links
}

// IsOccupied returns true once an occupant has been placed on the tile
func (t *Tile) IsOccupied() bool {
	return t.Occupant != nil
}
