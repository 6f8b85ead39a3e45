package rooms

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind tags what sort of place a room is. Description selection branches on it.
type Kind int

const (
	KindHouse Kind = iota
	KindShed
	KindBarn
	KindFrozenPond
	KindSnowman
	KindNeighborTree
	KindChristmasTree
	KindWillowTree
	KindFiller
	KindTitleScreen
	KindMidnightScreen
)

var kindNames = map[Kind]string{
	KindHouse:          "house",
	KindShed:           "shed",
	KindBarn:           "barn",
	KindFrozenPond:     "frozen_pond",
	KindSnowman:        "snowman",
	KindNeighborTree:   "neighbor_tree",
	KindChristmasTree:  "christmas_tree",
	KindWillowTree:     "willow_tree",
	KindFiller:         "filler",
	KindTitleScreen:    "title_screen",
	KindMidnightScreen: "midnight_screen",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind with the given catalog name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// IsTree reports whether rooms of this kind grow a tree that can be cut.
func (k Kind) IsTree() bool {
	return k == KindNeighborTree || k == KindChristmasTree || k == KindWillowTree
}

// UnmarshalYAML decodes a kind from its catalog name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, ok := ParseKind(name)
	if !ok {
		return fmt.Errorf("line %d: unknown room kind %q", value.Line, name)
	}
	*k = parsed
	return nil
}
