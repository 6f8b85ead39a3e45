package renderer

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleBorder
	StyleHidden
	StyleGlyph
	StyleHouse
	StyleTree
	StylePlayer
	StyleHeading
	StyleLocation
	StyleTime
	StyleResult
	StyleItem
	StyleDenied
)

// Renderer defines the interface for game rendering backends.
// The game never draws directly; it hands a Frame to the current renderer.
type Renderer interface {
	// Init initializes the renderer (colors, output, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame
	RenderFrame(f Frame)

	// RenderHelp renders the help screen on top of a frame
	RenderHelp(f Frame, commands []HelpEntry)

	// RenderEnding renders the final screen
	RenderEnding(f Frame)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// HelpEntry is one line of the command reference on the help screen.
type HelpEntry struct {
	Command string
	Words   []string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(f Frame) {
	if Current != nil {
		Current.RenderFrame(f)
	}
}

// RenderHelp renders the help screen
func RenderHelp(f Frame, commands []HelpEntry) {
	if Current != nil {
		Current.RenderHelp(f, commands)
	}
}

// RenderEnding renders the final screen
func RenderEnding(f Frame) {
	if Current != nil {
		Current.RenderEnding(f)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
