package rooms

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"tenenbaum/pkg/engine/layout"
)

// GlyphWidth is the width of every map glyph.
const GlyphWidth = 3

var (
	// ErrMissingDescription is returned when a room has no text for a branch
	// that Describe can select.
	ErrMissingDescription = errors.New("missing room description")
	// ErrInvalidRoom is returned for malformed room definitions.
	ErrInvalidRoom = errors.New("invalid room definition")
)

//go:embed content/rooms.yaml
var defaultCatalog []byte

// Definition is one room as written in the catalog.
type Definition struct {
	Kind     Kind                `yaml:"kind"`
	Nickname string              `yaml:"nickname"`
	Fullname string              `yaml:"fullname"`
	Glyph    string              `yaml:"glyph"`
	Items    []string            `yaml:"items"`
	Text     map[string][]string `yaml:"text"`
}

// Catalog holds the roster of rooms and all of their narrative text.
type Catalog struct {
	Title    Definition   `yaml:"title"`
	Midnight Definition   `yaml:"midnight"`
	House    Definition   `yaml:"house"`
	Pool     []Definition `yaml:"pool"`
}

// LoadCatalog parses and validates the catalog built into the binary.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// ParseCatalog parses and validates a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse room catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every room can be described in every situation the
// game can reach. All problems are reported together.
func (c *Catalog) Validate() error {
	var errs []error

	check := func(where string, def Definition, want ...Kind) {
		if len(want) > 0 && !slices.Contains(want, def.Kind) {
			errs = append(errs, fmt.Errorf("%s: kind %s not allowed here: %w", where, def.Kind, ErrInvalidRoom))
			return
		}
		errs = append(errs, validateDefinition(where, def)...)
	}

	check("title", c.Title, KindTitleScreen)
	check("midnight", c.Midnight, KindMidnightScreen)
	check("house", c.House, KindHouse)

	if len(c.Pool) == 0 {
		errs = append(errs, fmt.Errorf("pool: no rooms: %w", ErrInvalidRoom))
	}
	for i, def := range c.Pool {
		where := fmt.Sprintf("pool[%d] %q", i, def.Fullname)
		check(where, def,
			KindShed, KindBarn, KindFrozenPond, KindSnowman,
			KindNeighborTree, KindChristmasTree, KindWillowTree, KindFiller)
	}

	return errors.Join(errs...)
}

func validateDefinition(where string, def Definition) []error {
	var errs []error

	if def.Kind != KindTitleScreen && def.Kind != KindMidnightScreen {
		if w := layout.Width(def.Glyph); w != GlyphWidth {
			errs = append(errs, fmt.Errorf("%s: glyph %q is %d wide, want %d: %w", where, def.Glyph, w, GlyphWidth, ErrInvalidRoom))
		}
		if def.Nickname == "" {
			errs = append(errs, fmt.Errorf("%s: empty nickname: %w", where, ErrInvalidRoom))
		}
	}
	if def.Fullname == "" {
		errs = append(errs, fmt.Errorf("%s: empty fullname: %w", where, ErrInvalidRoom))
	}

	for _, item := range def.Items {
		switch item {
		case ItemAxe, ItemMap, ItemTree:
		default:
			errs = append(errs, fmt.Errorf("%s: unknown item %q: %w", where, item, ErrInvalidRoom))
		}
	}
	if def.Kind.IsTree() && !slices.Contains(def.Items, ItemTree) {
		errs = append(errs, fmt.Errorf("%s: tree room without a tree: %w", where, ErrInvalidRoom))
	}

	for _, branch := range requiredBranches(def.Kind) {
		if !hasText(def.Text[branch]) {
			errs = append(errs, fmt.Errorf("%s: branch %q: %w", where, branch, ErrMissingDescription))
		}
	}

	return errs
}

func hasText(blocks []string) bool {
	if len(blocks) == 0 {
		return false
	}
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			return false
		}
	}
	return true
}

// NewTitleScreen builds the room shown before the story starts.
func (c *Catalog) NewTitleScreen() *Room {
	return newRoom(c.Title)
}

// NewMidnightScreen builds the room shown once time runs out.
func (c *Catalog) NewMidnightScreen() *Room {
	return newRoom(c.Midnight)
}

// NewHouse builds the player's house.
func (c *Catalog) NewHouse() *Room {
	return newRoom(c.House)
}

// NewPool builds a fresh set of the rooms that are shuffled around the house.
func (c *Catalog) NewPool() []*Room {
	pool := make([]*Room, 0, len(c.Pool))
	for _, def := range c.Pool {
		pool = append(pool, newRoom(def))
	}
	return pool
}
