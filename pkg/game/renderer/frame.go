// Package renderer defines what the game hands to a display backend and
// lays out the fixed text frame every backend draws.
package renderer

import (
	"slices"
	"strings"

	"tenenbaum/pkg/engine/layout"
	"tenenbaum/pkg/engine/world"
	"tenenbaum/pkg/game/clock"
	"tenenbaum/pkg/game/gameplay"
	"tenenbaum/pkg/game/messages"
	"tenenbaum/pkg/game/state"
	"tenenbaum/pkg/game/worldmap"
)

// Size of the terminal the frame is designed for.
const (
	FrameWidth  = 78
	FrameHeight = 23
)

const (
	nicknameWidth = 18
	timeWidth     = 8
	margin        = "  "
	gutter        = "   "
)

// Frame is a snapshot of everything on screen. It carries no behavior of
// the game and can be drawn any number of times.
type Frame struct {
	Phase  state.Phase
	Ending state.Ending

	Rows, Cols int
	// Glyphs holds the visible glyph of every tile, already masked.
	Glyphs map[world.Position]string
	// Current is the player's tile; it is bracketed only when ShowCurrent is set.
	Current     world.Position
	ShowCurrent bool

	Fullname string
	Nickname string
	Time     string

	Story      []string
	StoryWidth int

	Inventory []string
}

// NewFrame takes a snapshot of the game.
func NewFrame(g *state.Game) Frame {
	room := gameplay.CurrentRoom(g)

	f := Frame{
		Phase:       g.Phase,
		Ending:      g.Ending,
		Rows:        g.Grid.Rows(),
		Cols:        g.Grid.Cols(),
		Glyphs:      worldmap.Glyphs(g.Grid, g.HasMap()),
		Current:     g.Position,
		ShowCurrent: g.Phase == state.PhasePlaying,
		Time:        clock.TimeOfDay(g.StartTurns, g.TurnsLeft),
		Story:       slices.Clone(g.Story),
		StoryWidth:  g.StoryWidth,
		Inventory:   g.InventoryCopy(),
	}
	if room != nil {
		f.Fullname = room.Fullname
		f.Nickname = room.Nickname
	}
	if g.Phase == state.PhaseEnded {
		f.Time = clock.Midnight
	}
	return f
}

// WithStory returns a copy of the frame showing different story lines.
func (f Frame) WithStory(story []string) Frame {
	f.Story = story
	return f
}

// Bracket marks a glyph as the player's position: " H " becomes "[H]".
func Bracket(glyph string) string {
	r := []rune(glyph)
	if len(r) != 3 {
		return "[" + glyph + "]"
	}
	return "[" + string(r[1]) + "]"
}

// Glyph returns what is drawn for pos.
func (f Frame) Glyph(pos world.Position) string {
	glyph, ok := f.Glyphs[pos]
	if !ok {
		glyph = worldmap.HiddenGlyph
	}
	if f.ShowCurrent && pos == f.Current {
		return Bracket(glyph)
	}
	return glyph
}

// Painter styles one piece of the frame. Padding is computed before
// painting, so a Painter may add escape codes freely.
type Painter func(text string, style TextStyle) string

// Plain is a Painter that leaves text unchanged.
func Plain(text string, _ TextStyle) string {
	return text
}

func (f Frame) glyphStyle(pos world.Position) TextStyle {
	glyph := f.Glyphs[pos]
	switch {
	case f.ShowCurrent && pos == f.Current:
		return StylePlayer
	case glyph == "" || glyph == worldmap.HiddenGlyph:
		return StyleHidden
	case strings.Contains(glyph, "H"):
		return StyleHouse
	case strings.ContainsAny(glyph, "TW"):
		return StyleTree
	default:
		return StyleGlyph
	}
}

func firstLine(lines []string) string {
	if line, ok := layout.Single(lines); ok {
		return line
	}
	return lines[0]
}

// storyPanel is the boxed text panel on the left.
func (f Frame) storyPanel(paint Painter) []string {
	w := f.StoryWidth
	edge := strings.Repeat("-", w+2)
	bar := paint("|", StyleBorder)

	lines := []string{
		paint("."+edge+".", StyleBorder),
		bar + " " + paint(firstLine(layout.LeftAlign(f.Fullname, w)), StyleHeading) + " " + bar,
		bar + layout.Blank(w+2) + bar,
	}
	for i, line := range f.Story {
		style := StyleNormal
		if i == 0 {
			style = StyleResult
		}
		lines = append(lines, bar+" "+paint(line, style)+" "+bar)
	}
	return append(lines, paint("'"+edge+"'", StyleBorder))
}

// sidePanel is the map, location and time on the right.
func (f Frame) sidePanel(paint Painter) []string {
	inner := strings.Repeat("-", f.Cols*4-1)
	separator := "|" + strings.Repeat("---+", f.Cols-1) + "---|"
	bar := paint("|", StyleBorder)

	lines := []string{paint("."+inner+".", StyleBorder)}
	for row := 0; row < f.Rows; row++ {
		if row > 0 {
			lines = append(lines, paint(separator, StyleBorder))
		}
		var b strings.Builder
		b.WriteString(bar)
		for col := 0; col < f.Cols; col++ {
			pos := world.NewPosition(row, col)
			b.WriteString(paint(f.Glyph(pos), f.glyphStyle(pos)))
			b.WriteString(bar)
		}
		lines = append(lines, b.String())
	}

	return append(lines,
		paint("'"+inner+"'", StyleBorder),
		"",
		"   "+paint(messages.Get(messages.Location), StyleHeading),
		" "+paint(firstLine(layout.Center(f.Nickname, nicknameWidth)), StyleLocation),
		"",
		"     "+paint(messages.Get(messages.Time), StyleHeading),
		"      "+paint(firstLine(layout.Center(f.Time, timeWidth)), StyleTime),
	)
}

// Lines lays the frame out as text, one string per terminal row.
func (f Frame) Lines(paint Painter) []string {
	left := f.storyPanel(paint)
	right := f.sidePanel(paint)
	blankLeft := layout.Blank(f.StoryWidth + 4)

	n := max(len(left), len(right))
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		l := blankLeft
		if i < len(left) {
			l = left[i]
		}
		line := margin + l
		if i < len(right) && right[i] != "" {
			line += gutter + right[i]
		}
		lines = append(lines, line)
	}
	return lines
}

// String renders the frame without styling.
func (f Frame) String() string {
	return strings.Join(f.Lines(Plain), "\n")
}
