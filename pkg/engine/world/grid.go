package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for positions outside the grid
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrOccupied is returned when placing onto a tile that already has an occupant
	ErrOccupied = errors.New("tile already occupied")
)

// Grid represents the game map with encapsulated tile storage
type Grid struct {
	tileMap map[int]map[int]*Tile
	rows    int
	cols    int

	startTile *Tile
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the number of tiles in the grid
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// StartTile returns the starting tile
func (g *Grid) StartTile() *Tile {
	return g.startTile
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains checks if a position is within grid bounds
func (g *Grid) Contains(pos Position) bool {
	return g.IsValidPosition(pos.Row, pos.Col)
}

// GetTile returns the tile at the given position, or nil if out of bounds
func (g *Grid) GetTile(row, col int) *Tile {
	if !g.IsValidPosition(row, col) {
		return nil
	}

	if g.tileMap == nil {
		return nil
	}

	rowMap, found := g.tileMap[row]
	if !found {
		return nil
	}

	return rowMap[col]
}

// TileAt returns the tile at pos, or nil if out of bounds
func (g *Grid) TileAt(pos Position) *Tile {
	return g.GetTile(pos.Row, pos.Col)
}

// GetTileRelative returns the tile adjacent to the given tile in the specified direction
func (g *Grid) GetTileRelative(t *Tile, dir Direction) *Tile {
	if t == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	return g.TileAt(t.Pos.Step(dir))
}

// CenterPosition returns the position of the grid center
func (g *Grid) CenterPosition() Position {
	return Position{Row: g.rows / 2, Col: g.cols / 2}
}

// GetCenterTile returns the tile at the center of the grid
func (g *Grid) GetCenterTile() *Tile {
	return g.TileAt(g.CenterPosition())
}

// SetStartTile sets the starting tile. Returns false if the tile is nil or not in this grid.
func (g *Grid) SetStartTile(t *Tile) bool {
	if t == nil {
		return false
	}
	if g.TileAt(t.Pos) != t {
		return false
	}
	g.startTile = t
	return true
}

// Place puts an occupant on the tile at pos and hands it the tile's links.
func (g *Grid) Place(pos Position, occ Occupant) error {
	t := g.TileAt(pos)
	if t == nil {
		return fmt.Errorf("place at %v: %w", pos, ErrOutOfBounds)
	}
	if t.IsOccupied() {
		return fmt.Errorf("place at %v: %w", pos, ErrOccupied)
	}
	t.Occupant = occ
	occ.SetNeighbors(t.Links())
	return nil
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols

	g.tileMap = make(map[int]map[int]*Tile, rows)

	for currentRow := 0; currentRow < rows; currentRow++ {
		g.tileMap[currentRow] = make(map[int]*Tile)

		for currentCol := 0; currentCol < cols; currentCol++ {
			g.tileMap[currentRow][currentCol] = NewTile(NewPosition(currentRow, currentCol))
		}
	}
}

// BuildAllTileConnections connects all tiles to their neighbors
func (g *Grid) BuildAllTileConnections() {
	g.ForEachTile(func(t *Tile) {
		g.buildTileConnections(t)
	})
}

func (g *Grid) buildTileConnections(current *Tile) {
	if current == nil {
		return
	}

	for _, dir := range AllDirections() {
		adj := g.GetTileRelative(current, dir)

		if adj == nil {
			continue
		}

		current.SetNeighbor(dir, adj)
		adj.SetNeighbor(dir.Opposite(), current)
	}
}

// ForEachTile iterates over all tiles in row-major order
func (g *Grid) ForEachTile(fn func(t *Tile)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if t := g.GetTile(row, col); t != nil {
				fn(t)
			}
		}
	}
}

// Positions returns every position in row-major order
func (g *Grid) Positions() []Position {
	positions := make([]Position, 0, g.Size())
	g.ForEachTile(func(t *Tile) {
		positions = append(positions, t.Pos)
	})
	return positions
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}

	if g.startTile == nil {
		return "Grid has no start tile"
	}

	problem := ""
	g.ForEachTile(func(t *Tile) {
		if problem != "" {
			return
		}
		if !t.IsOccupied() {
			problem = fmt.Sprintf("Tile %v has no occupant", t.Pos)
			return
		}
		for _, dir := range AllDirections() {
			n := t.GetNeighbor(dir)
			if n != nil && n.GetNeighbor(dir.Opposite()) != t {
				problem = fmt.Sprintf("Tile %v: %v link is not symmetric", t.Pos, dir)
				return
			}
		}
	})

	return problem
}
