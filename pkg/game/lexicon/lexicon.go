// Package lexicon turns a line typed by the player into a verb and an object.
package lexicon

import (
	"sort"
	"strings"
	"unicode"

	"tenenbaum/pkg/engine/world"
)

// Verb is the canonical form of an action word.
type Verb string

const (
	VerbNone Verb = ""
	VerbMove Verb = "move"
	VerbTake Verb = "take"
	VerbCut  Verb = "cut"
	VerbHelp Verb = "help"
	VerbQuit Verb = "quit"
)

// Canonical objects.
const (
	ObjectNone  = ""
	ObjectNorth = "n"
	ObjectEast  = "e"
	ObjectSouth = "s"
	ObjectWest  = "w"
	ObjectMap   = "map"
	ObjectAxe   = "axe"
	ObjectTree  = "tree"
)

// Command is a parsed line. Either part may be empty.
type Command struct {
	Verb   Verb
	Object string
}

// Direction returns the direction named by the object, if any.
func (c Command) Direction() (world.Direction, bool) {
	return world.ParseDirection(c.Object)
}

// verbs maps every recognised word to its verb.
var verbs = map[string]Verb{
	"move": VerbMove,
	"go":   VerbMove,
	"walk": VerbMove,
	"run":  VerbMove,

	"take":    VerbTake,
	"grab":    VerbTake,
	"get":     VerbTake,
	"pick":    VerbTake,
	"lift":    VerbTake,
	"look":    VerbTake,
	"examine": VerbTake,

	"chop": VerbCut,
	"cut":  VerbCut,
	"fell": VerbCut,

	"help": VerbHelp,

	"quit": VerbQuit,
	"exit": VerbQuit,
}

// objects maps every recognised word to its canonical object.
var objects = map[string]string{
	"north": ObjectNorth,
	"up":    ObjectNorth,
	"east":  ObjectEast,
	"right": ObjectEast,
	"south": ObjectSouth,
	"down":  ObjectSouth,
	"west":  ObjectWest,
	"left":  ObjectWest,

	"map":  ObjectMap,
	"axe":  ObjectAxe,
	"tree": ObjectTree,
}

const separators = "!@#$%^&*()-_=+{}[]|\\:;\"',<>.?~`"

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
}

// Words splits a line into the words the lexicon looks at.
func Words(raw string) []string {
	return strings.FieldsFunc(raw, isSeparator)
}

// Parse scans every word of raw. When several words fill the same slot the
// last one wins, so "go north, no, south" moves south.
func Parse(raw string) Command {
	var cmd Command
	for _, word := range Words(raw) {
		word = strings.ToLower(word)
		if v, ok := verbs[word]; ok {
			cmd.Verb = v
		}
		if o, ok := objects[word]; ok {
			cmd.Object = o
		}
	}
	return cmd
}

// VerbSynonyms returns the words recognised for each verb, sorted.
func VerbSynonyms() map[Verb][]string {
	result := make(map[Verb][]string)
	for word, v := range verbs {
		result[v] = append(result[v], word)
	}
	for v, words := range result {
		sort.Strings(words)
		result[v] = words
	}
	return result
}
