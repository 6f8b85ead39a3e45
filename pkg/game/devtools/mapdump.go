// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tenenbaum/pkg/engine/world"
	"tenenbaum/pkg/game/clock"
	"tenenbaum/pkg/game/renderer"
	"tenenbaum/pkg/game/rooms"
	"tenenbaum/pkg/game/state"
	"tenenbaum/pkg/game/worldmap"
)

const mapDumpFilename = "map.txt"

// writeMapGrid writes one row of glyphs per grid row. Unless revealedOnly is
// false, rooms the player could not see yet are drawn as hidden.
func writeMapGrid(w io.Writer, g *state.Game, revealedOnly bool) {
	hasMap := g.HasMap() || !revealedOnly
	for row := 0; row < g.Grid.Rows(); row++ {
		cells := make([]string, 0, g.Grid.Cols())
		for col := 0; col < g.Grid.Cols(); col++ {
			pos := world.NewPosition(row, col)
			glyph := worldmap.VisibleGlyph(g.Grid, pos, hasMap)
			if pos == g.Position {
				glyph = renderer.Bracket(glyph)
			}
			cells = append(cells, glyph)
		}
		fmt.Fprintf(w, "%c |%s|\n", 'A'+rune(row), strings.Join(cells, "|"))
	}
}

// DumpMap writes a debug dump of the world: metadata, legend, the map as the
// player sees it, the full map, and one line per room.
func DumpMap(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	start := g.Grid.StartTile()
	startLabel := "none"
	if start != nil {
		startLabel = start.Pos.String()
	}

	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", g.SessionID)
	fmt.Fprintf(w, "phase: %s\n", g.Phase)
	fmt.Fprintf(w, "grid_rows: %d\n", g.Grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", g.Grid.Cols())
	fmt.Fprintf(w, "player: %s\n", g.Position)
	fmt.Fprintf(w, "start: %s\n", startLabel)
	fmt.Fprintf(w, "has_map: %v\n", g.HasMap())
	fmt.Fprintf(w, "turns_left: %d/%d\n", g.TurnsLeft, g.StartTurns)
	fmt.Fprintf(w, "time: %s\n", clock.TimeOfDay(g.StartTurns, g.TurnsLeft))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintf(w, "%s = unexplored  [x] = player  H = house  T = pine tree  W = willow  S = shed  B = barn\n", worldmap.HiddenGlyph)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (as the player sees it) ---")
	writeMapGrid(w, g, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (fully revealed) ---")
	writeMapGrid(w, g, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	for _, pos := range g.Grid.Positions() {
		room := worldmap.RoomAt(g.Grid, pos)
		if room == nil {
			fmt.Fprintf(w, "  %s: empty\n", pos)
			continue
		}
		fmt.Fprintf(w, "  %s: kind: %s nickname: %q visits: %d items: %s\n",
			pos, room.Kind, room.Nickname, room.Visits(), itemList(room))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Inventory ---")
	if len(g.Inventory) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, item := range g.Inventory {
		fmt.Fprintf(w, "  %s\n", item)
	}
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END MAP DUMP ===")
	return err
}

func itemList(room *rooms.Room) string {
	names := room.ItemNames()
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

// DumpMapToFile writes DumpMap's output to map.txt in the working directory
// and returns its absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, g); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
