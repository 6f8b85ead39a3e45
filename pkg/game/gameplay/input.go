package gameplay

import (
	"go.uber.org/zap"

	"tenenbaum/pkg/game/lexicon"
	"tenenbaum/pkg/game/messages"
	"tenenbaum/pkg/game/state"
)

// Outcome tells the game loop what to do after a command.
type Outcome struct {
	// Result is the line shown at the top of the story panel.
	Result string
	// ShowHelp asks the loop to show the help screen and call ResumeFromHelp
	// once the player is done reading.
	ShowHelp bool
	// Quit asks the loop to stop.
	Quit bool
	// Ended is set on the command that ran the clock out.
	Ended bool
}

// ProcessCommand carries out one line of player input and refreshes the
// story panel. On the title screen any input starts the game.
func ProcessCommand(g *state.Game, raw string) Outcome {
	var out Outcome

	switch g.Phase {
	case state.PhaseTitle:
		out.Result = Start(g)
	case state.PhaseEnded:
		out.Quit = true
		return out
	default:
		out = runCommand(g, lexicon.Parse(raw))
		if out.Quit || out.ShowHelp {
			return out
		}
	}

	RebuildStory(g, out.Result, Describe(g))
	out.Ended = CheckEnding(g)

	return out
}

func runCommand(g *state.Game, cmd lexicon.Command) Outcome {
	turnsBefore := g.TurnsLeft
	var out Outcome

	switch cmd.Verb {
	case lexicon.VerbMove:
		if dir, ok := cmd.Direction(); ok {
			out.Result = Move(g, dir)
		} else {
			out.Result = invalid()
		}
	case lexicon.VerbTake:
		out.Result = Take(g, cmd.Object)
	case lexicon.VerbCut:
		out.Result = Cut(g, cmd.Object)
	case lexicon.VerbHelp:
		out.Result, out.ShowHelp = Help(cmd.Object)
	case lexicon.VerbQuit:
		out.Result = messages.Get(messages.Goodbye)
		out.Quit = true
	default:
		out.Result = invalid()
	}

	g.Log.Debug("command",
		zap.String("verb", string(cmd.Verb)),
		zap.String("object", cmd.Object),
		zap.String("result", out.Result),
		zap.Int("turns_spent", turnsBefore-g.TurnsLeft),
		zap.Int("turns_left", g.TurnsLeft))

	return out
}

// ResumeFromHelp returns to the game after the help screen.
func ResumeFromHelp(g *state.Game, result string) {
	RebuildStory(g, result, Describe(g))
}
