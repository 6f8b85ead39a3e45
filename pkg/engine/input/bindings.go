package input

import "sort"

// bindings maps key codes to the command they stand for.
var bindings = map[string]string{
	"arrow_up":    "go north",
	"arrow_down":  "go south",
	"arrow_left":  "go west",
	"arrow_right": "go east",
}

// Translate returns the command bound to a key code.
func Translate(code string) (string, bool) {
	command, ok := bindings[code]
	return command, ok
}

// KeyName returns a human-friendly name for a key code.
func KeyName(code string) string {
	switch code {
	case "arrow_up":
		return "Up"
	case "arrow_down":
		return "Down"
	case "arrow_left":
		return "Left"
	case "arrow_right":
		return "Right"
	default:
		return code
	}
}

// Bindings returns the key codes that have a binding, sorted.
func Bindings() []string {
	codes := make([]string, 0, len(bindings))
	for code := range bindings {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
