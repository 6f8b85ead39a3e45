// Package tui draws the game in an ANSI terminal.
package tui

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gookit/color"

	"tenenbaum/pkg/game/messages"
	"tenenbaum/pkg/game/renderer"
	"tenenbaum/pkg/game/state"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	noColor bool

	colorBorder   color.Style
	colorHidden   color.Style
	colorGlyph    color.Style
	colorHouse    color.Style
	colorTree     color.Style
	colorPlayer   color.Style
	colorHeading  color.Style
	colorLocation color.Style
	colorTime     color.Style
	colorResult   color.Style
	colorItem     color.Style
	colorDenied   color.Style

	panelStyle  lipgloss.Style
	titleStyle  lipgloss.Style
	subtleStyle lipgloss.Style
}

// New creates a new TUI renderer writing to out.
func New(out io.Writer, noColor bool) *TUIRenderer {
	return &TUIRenderer{out: out, noColor: noColor}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorBorder = color.Style{color.FgGray}
	t.colorHidden = color.Style{color.FgGray, color.OpBold}
	t.colorGlyph = color.Style{color.FgCyan}
	t.colorHouse = color.Style{color.FgYellow, color.OpBold}
	t.colorTree = color.Style{color.FgGreen}
	t.colorPlayer = color.Style{color.FgRed, color.OpBold}
	t.colorHeading = color.Style{color.FgWhite, color.OpBold}
	t.colorLocation = color.Style{color.FgBlue}
	t.colorTime = color.Style{color.FgMagenta, color.OpBold}
	t.colorResult = color.Style{color.FgYellow}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorDenied = color.Style{color.FgRed}

	t.panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#2E8B57")).
		Padding(0, 1)
	t.titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFA500")).
		Bold(true)
	t.subtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888"))

	if t.noColor {
		t.panelStyle = t.panelStyle.UnsetBorderForeground()
		t.titleStyle = lipgloss.NewStyle()
		t.subtleStyle = lipgloss.NewStyle()
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.noColor {
		return text
	}

	switch style {
	case renderer.StyleBorder:
		return t.colorBorder.Sprint(text)
	case renderer.StyleHidden:
		return t.colorHidden.Sprint(text)
	case renderer.StyleGlyph:
		return t.colorGlyph.Sprint(text)
	case renderer.StyleHouse:
		return t.colorHouse.Sprint(text)
	case renderer.StyleTree:
		return t.colorTree.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	case renderer.StyleLocation:
		return t.colorLocation.Sprint(text)
	case renderer.StyleTime:
		return t.colorTime.Sprint(text)
	case renderer.StyleResult:
		return t.colorResult.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(f renderer.Frame) {
	fmt.Fprintln(t.out)
	for _, line := range f.Lines(t.StyleText) {
		fmt.Fprintln(t.out, line)
	}
	t.printStatusBar(f)
}

// printStatusBar renders the inventory line under the frame
func (t *TUIRenderer) printStatusBar(f renderer.Frame) {
	if f.Phase != state.PhasePlaying {
		return
	}

	fmt.Fprint(t.out, "  "+t.StyleText(messages.Get(messages.Inventory)+": ", renderer.StyleBorder))
	if len(f.Inventory) == 0 {
		fmt.Fprintln(t.out, t.StyleText(messages.Get(messages.InventoryEmpty), renderer.StyleBorder))
		return
	}

	items := make([]string, 0, len(f.Inventory))
	for _, item := range f.Inventory {
		items = append(items, t.StyleText(item, renderer.StyleItem))
	}
	fmt.Fprintln(t.out, strings.Join(items, ", "))
}

// RenderHelp renders the frame with the help text and a command reference.
func (t *TUIRenderer) RenderHelp(f renderer.Frame, commands []renderer.HelpEntry) {
	t.RenderFrame(f)
	fmt.Fprintln(t.out, t.panel(helpPanelBody(t, commands)))
}

func helpPanelBody(t *TUIRenderer, commands []renderer.HelpEntry) string {
	rows := []string{t.titleStyle.Render("Commands")}
	for _, entry := range commands {
		rows = append(rows, fmt.Sprintf("%-6s %s", entry.Command, t.subtleStyle.Render(strings.Join(entry.Words, ", "))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderEnding renders the final frame with a closing banner.
func (t *TUIRenderer) RenderEnding(f renderer.Frame) {
	t.RenderFrame(f)

	title := "Merry Christmas!"
	if f.Ending == state.EndingNoTree {
		title = "Better luck next year."
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		t.titleStyle.Render("THE END"),
		title,
	)
	fmt.Fprintln(t.out, t.panel(body))
}

// panel boxes body and centers it under the frame.
func (t *TUIRenderer) panel(body string) string {
	return lipgloss.PlaceHorizontal(renderer.FrameWidth, lipgloss.Center, t.panelStyle.Render(body))
}
