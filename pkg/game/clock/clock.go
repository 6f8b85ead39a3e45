// Package clock converts the number of turns left into the time of day shown
// on screen.
package clock

import (
	"fmt"

	"github.com/zyedidia/generic"
)

const (
	// Steps is the number of labels, from 10:00 PM through midnight.
	Steps = 25
	// MinutesPerTurn is how much time one turn costs.
	MinutesPerTurn = 5
	// Midnight is the last label.
	Midnight = "MIDNIGHT"
)

var labels = buildLabels()

func buildLabels() []string {
	out := make([]string, 0, Steps)
	for i := 0; i < Steps-1; i++ {
		minutes := i * MinutesPerTurn
		out = append(out, fmt.Sprintf("%d:%02d PM", 10+minutes/60, minutes%60))
	}
	return append(out, Midnight)
}

// Labels returns all time-of-day labels in order.
func Labels() []string {
	return append([]string(nil), labels...)
}

// Index returns the label index for the given turn counts, clamped to the
// table so overshooting turns (a long tree cut) still shows a valid time.
func Index(startTurns, turnsLeft int) int {
	return generic.Clamp(startTurns-turnsLeft, 0, Steps-1)
}

// TimeOfDay returns the label for the given turn counts.
func TimeOfDay(startTurns, turnsLeft int) string {
	return labels[Index(startTurns, turnsLeft)]
}
