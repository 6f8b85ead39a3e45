package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"tenenbaum/pkg/config"
	"tenenbaum/pkg/engine/input"
	"tenenbaum/pkg/engine/terminal"
	"tenenbaum/pkg/game/devtools"
	"tenenbaum/pkg/game/gameplay"
	"tenenbaum/pkg/game/lexicon"
	"tenenbaum/pkg/game/messages"
	"tenenbaum/pkg/game/renderer"
	"tenenbaum/pkg/game/renderer/tui"
	"tenenbaum/pkg/game/rooms"
	"tenenbaum/pkg/game/state"
	"tenenbaum/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "map shuffle seed (0 uses the config, then the clock)")
	dumpMap := flag.Bool("dump-map", false, "write the generated map to map.txt before playing (for developer testing)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Encoding:   cfg.Log.Encoding,
		OutputPath: cfg.Log.OutputPath,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	g, err := buildGame(cfg, pickSeed(*seed, cfg.Game.Seed), log)
	if err != nil {
		log.Error("could not build the game", zap.Error(err))
		os.Exit(1)
	}

	if *dumpMap {
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			log.Error("map dump failed", zap.Error(err))
			os.Exit(1)
		}
		log.Info("map dumped", zap.String("path", path))
	}

	if width, height, ok := terminal.Fits(renderer.FrameWidth, renderer.FrameHeight); !ok {
		log.Warn("terminal too small", zap.Int("width", width), zap.Int("height", height))
		fmt.Println(messages.TerminalTooSmallMessage(width, height, renderer.FrameWidth, renderer.FrameHeight))
	}

	renderer.SetRenderer(tui.New(os.Stdout, cfg.Game.NoColor))
	renderer.Init()

	if err := play(g, input.NewReader(os.Stdin, os.Stdout)); err != nil {
		log.Error("game stopped", zap.Error(err))
		os.Exit(1)
	}
}

// pickSeed prefers the flag, then the config, then the clock.
func pickSeed(flagSeed, configSeed int64) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case configSeed != 0:
		return configSeed
	default:
		return time.Now().UnixNano()
	}
}

func buildGame(cfg *config.Config, seed int64, log *zap.Logger) (*state.Game, error) {
	catalog, err := rooms.LoadCatalog()
	if err != nil {
		return nil, err
	}

	settings := state.Settings{
		StartTurns:  cfg.Game.StartTurns,
		StoryWidth:  cfg.Game.StoryWidth,
		StoryHeight: cfg.Game.StoryHeight,
	}
	g, err := gameplay.BuildGame(catalog, settings, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	g.SetLogger(log)
	g.Log.Info("game built", zap.Int64("seed", seed), zap.Int("turns", g.StartTurns))
	return g, nil
}

// play runs the game until the player quits, the input ends, or the ending
// screen is dismissed.
func play(g *state.Game, in *input.Reader) error {
	for {
		renderer.Clear()
		frame := renderer.NewFrame(g)

		switch g.Phase {
		case state.PhaseTitle:
			renderer.RenderFrame(frame)
			line, err := in.ReadLine(messages.Get(messages.PressEnterToStart))
			if err != nil {
				return ignoreEOF(err)
			}
			gameplay.ProcessCommand(g, line)

		case state.PhaseEnded:
			renderer.RenderEnding(frame)
			_, err := in.ReadLine(messages.Get(messages.PressEnterToExit))
			return ignoreEOF(err)

		default:
			renderer.RenderFrame(frame)
			line, err := in.ReadCommand(messages.Get(messages.Prompt))
			eof := errors.Is(err, io.EOF)
			switch {
			case errors.Is(err, input.ErrInterrupted):
				renderer.ShowMessage("\n" + messages.Get(messages.Goodbye))
				return nil
			case err != nil && !eof:
				return err
			case eof && line == "":
				renderer.ShowMessage("\n" + messages.Get(messages.Goodbye))
				return nil
			}

			out := gameplay.ProcessCommand(g, line)
			if out.Quit {
				renderer.ShowMessage(out.Result)
				return nil
			}
			if out.ShowHelp {
				if err := showHelp(g, in, out.Result); err != nil {
					return ignoreEOF(err)
				}
			}
			if eof && !out.Ended {
				return nil
			}
		}
	}
}

// showHelp draws the help screen and waits for ENTER before going back to
// the room.
func showHelp(g *state.Game, in *input.Reader, resume string) error {
	renderer.Clear()
	frame := renderer.NewFrame(g).WithStory(gameplay.HelpStory(g))
	renderer.RenderHelp(frame, helpEntries(in.Arrows()))

	_, err := in.ReadLine(messages.Get(messages.PressEnterToReturn))
	gameplay.ResumeFromHelp(g, resume)
	return err
}

func helpEntries(arrows bool) []renderer.HelpEntry {
	synonyms := lexicon.VerbSynonyms()
	var entries []renderer.HelpEntry
	for _, verb := range []lexicon.Verb{lexicon.VerbMove, lexicon.VerbTake, lexicon.VerbCut, lexicon.VerbHelp, lexicon.VerbQuit} {
		entries = append(entries, renderer.HelpEntry{Command: string(verb), Words: synonyms[verb]})
	}

	if arrows {
		var keys []string
		for _, code := range input.Bindings() {
			keys = append(keys, input.KeyName(code))
		}
		entries = append(entries, renderer.HelpEntry{Command: "keys", Words: keys})
	}
	return entries
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
