package world

import (
	"errors"
	"testing"
)

// stubOccupant is a minimal Occupant for grid tests.
type stubOccupant struct {
	glyph  string
	visits int
	links  map[Direction]Position
}

func (s *stubOccupant) Glyph() string {
	return s.glyph
}

func (s *stubOccupant) Visits() int {
	return s.visits
}

func (s *stubOccupant) Enter() {
	s.visits++
}

func (s *stubOccupant) SetNeighbors(links map[Direction]Position) {
	s.links = links
}

func newConnectedGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g := NewGrid(rows, cols)
	g.BuildAllTileConnections()
	return g
}

func TestNeighborSymmetry(t *testing.T) {
	g := newConnectedGrid(t, 5, 5)
	g.ForEachTile(func(tile *Tile) {
		for _, dir := range AllDirections() {
			n := tile.GetNeighbor(dir)
			if n == nil {
				continue
			}
			if back := n.GetNeighbor(dir.Opposite()); back != tile {
				t.Errorf("%v.%v = %v, but %v.%v = %v", tile.Pos, dir, n.Pos, n.Pos, dir.Opposite(), back)
			}
		}
	})
}

func TestEdgesHaveNoWraparound(t *testing.T) {
	g := newConnectedGrid(t, 5, 5)

	tests := []struct {
		label string
		dir   Direction
	}{
		{"A1", North}, {"A1", West},
		{"A5", North}, {"A5", East},
		{"E1", South}, {"E1", West},
		{"E5", South}, {"E5", East},
		{"C1", West}, {"C5", East},
	}
	for _, tt := range tests {
		pos, err := ParsePosition(tt.label)
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", tt.label, err)
		}
		if n := g.TileAt(pos).GetNeighbor(tt.dir); n != nil {
			t.Errorf("%s %v neighbor = %v, want none", tt.label, tt.dir, n.Pos)
		}
	}
}

func TestCenterTileHasFourNeighbors(t *testing.T) {
	g := newConnectedGrid(t, 5, 5)
	center := g.GetCenterTile()
	if center.Pos.String() != "C3" {
		t.Fatalf("center = %v, want C3", center.Pos)
	}
	if got := len(center.GetNeighbors()); got != 4 {
		t.Errorf("center has %d neighbors, want 4", got)
	}
	if got := center.North.Pos.String(); got != "B3" {
		t.Errorf("C3 north = %s, want B3", got)
	}
	if got := center.East.Pos.String(); got != "C4" {
		t.Errorf("C3 east = %s, want C4", got)
	}
}

func TestPositionsAreRowMajor(t *testing.T) {
	g := NewGrid(5, 5)
	positions := g.Positions()
	if len(positions) != 25 {
		t.Fatalf("len(Positions()) = %d, want 25", len(positions))
	}
	if positions[0].String() != "A1" || positions[4].String() != "A5" || positions[24].String() != "E5" {
		t.Errorf("unexpected order: first=%v fifth=%v last=%v", positions[0], positions[4], positions[24])
	}
}

func TestPlace(t *testing.T) {
	g := newConnectedGrid(t, 5, 5)
	occ := &stubOccupant{glyph: " H "}

	if err := g.Place(g.CenterPosition(), occ); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if len(occ.links) != 4 {
		t.Errorf("occupant received %d links, want 4", len(occ.links))
	}
	if occ.links[South].String() != "D3" {
		t.Errorf("south link = %v, want D3", occ.links[South])
	}

	if err := g.Place(g.CenterPosition(), &stubOccupant{}); !errors.Is(err, ErrOccupied) {
		t.Errorf("second Place error = %v, want ErrOccupied", err)
	}
	if err := g.Place(NewPosition(9, 9), &stubOccupant{}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of bounds Place error = %v, want ErrOutOfBounds", err)
	}
}

func TestCornerLinks(t *testing.T) {
	g := newConnectedGrid(t, 5, 5)
	occ := &stubOccupant{}
	if err := g.Place(NewPosition(0, 0), occ); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if len(occ.links) != 2 {
		t.Fatalf("corner received %d links, want 2", len(occ.links))
	}
	if _, ok := occ.links[North]; ok {
		t.Error("corner A1 should have no north link")
	}
}

func TestValidate(t *testing.T) {
	g := newConnectedGrid(t, 2, 2)
	if msg := g.Validate(); msg == "" {
		t.Error("Validate() on grid without start tile = \"\", want a problem")
	}

	g.SetStartTile(g.GetTile(0, 0))
	if msg := g.Validate(); msg == "" {
		t.Error("Validate() on unoccupied grid = \"\", want a problem")
	}

	for _, pos := range g.Positions() {
		if err := g.Place(pos, &stubOccupant{}); err != nil {
			t.Fatalf("Place(%v): %v", pos, err)
		}
	}
	if msg := g.Validate(); msg != "" {
		t.Errorf("Validate() = %q, want valid", msg)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"A1", NewPosition(0, 0), false},
		{"c3", NewPosition(2, 2), false},
		{"E5", NewPosition(4, 4), false},
		{"", Position{}, true},
		{"A", Position{}, true},
		{"11", Position{}, true},
		{"A0", Position{}, true},
		{"Ax", Position{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePosition(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePosition(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePosition(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		parsed, ok := ParseDirection(d.Letter())
		if !ok || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", d.Letter(), parsed, ok, d)
		}
	}
	if _, ok := ParseDirection("map"); ok {
		t.Error("ParseDirection(\"map\") ok = true, want false")
	}
}
