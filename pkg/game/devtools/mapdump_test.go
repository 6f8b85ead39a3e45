package devtools

import (
	"bytes"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenenbaum/pkg/game/gameplay"
	"tenenbaum/pkg/game/rooms"
	"tenenbaum/pkg/game/state"
)

func newGame(t *testing.T) *state.Game {
	t.Helper()
	catalog, err := rooms.LoadCatalog()
	require.NoError(t, err)
	g, err := gameplay.BuildGame(catalog, state.Settings{}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	gameplay.ProcessCommand(g, "")
	return g
}

func section(t *testing.T, dump, header string) []string {
	t.Helper()
	_, rest, found := strings.Cut(dump, header+"\n")
	require.True(t, found, "missing section %q", header)
	body, _, _ := strings.Cut(rest, "\n\n")
	return strings.Split(body, "\n")
}

func TestDumpMap(t *testing.T) {
	g := newGame(t)

	var buf bytes.Buffer
	require.NoError(t, DumpMap(&buf, g))
	dump := buf.String()

	assert.Contains(t, dump, "player: C3")
	assert.Contains(t, dump, "start: C3")
	assert.Contains(t, dump, "turns_left: 20/20")
	assert.Contains(t, dump, "time: 10:00 PM")

	seen := section(t, dump, "--- Map (as the player sees it) ---")
	require.Len(t, seen, 5)
	assert.Equal(t, "C |###|###|[H]|###|###|", seen[2])
	assert.Equal(t, "A |###|###|###|###|###|", seen[0])

	full := section(t, dump, "--- Map (fully revealed) ---")
	require.Len(t, full, 5)
	assert.NotContains(t, strings.Join(full, "\n"), "###")

	roomLines := section(t, dump, "--- Rooms ---")
	assert.Len(t, roomLines, 25)
	assert.Contains(t, dump, `C3: kind: house nickname: "My House" visits: 1 items: -`)
	assert.Contains(t, dump, "(none)")
	assert.True(t, strings.HasSuffix(dump, "=== END MAP DUMP ===\n"))
}

func TestDumpMapShowsWholeMapWithMap(t *testing.T) {
	g := newGame(t)
	g.PickUpItem(rooms.ItemMap)

	var buf bytes.Buffer
	require.NoError(t, DumpMap(&buf, g))

	seen := section(t, buf.String(), "--- Map (as the player sees it) ---")
	assert.NotContains(t, strings.Join(seen, "\n"), "###")
	assert.Contains(t, buf.String(), "  map\n")
}

func TestDumpMapToFile(t *testing.T) {
	chdir(t, t.TempDir())
	g := newGame(t)

	path, err := DumpMapToFile(g)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== MAP DUMP ===")
}

func TestDumpMapWithoutGrid(t *testing.T) {
	g := state.NewGame(state.Settings{}, rand.New(rand.NewSource(1)))
	assert.Error(t, DumpMap(&bytes.Buffer{}, g))
}

// chdir changes the working directory for the duration of the test,
// matching testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
