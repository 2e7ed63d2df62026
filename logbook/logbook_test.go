package logbook

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skysail/event"
	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/vmath"
)

func openMemory(t *testing.T) *Logbook {
	t.Helper()
	book, err := Open(MemoryPath, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { book.Close() })
	return book
}

func TestRecorderJournalsMilestones(t *testing.T) {
	book := openMemory(t)
	rec := NewRecorder(book, "v1")

	q := event.NewEventQueue()
	r := event.NewRouter(q)
	r.Register(rec)

	pos := vmath.Vec3F{X: 12, Y: 1.5, Z: 340}
	fix := sky.GlobeFix{Lat: 8.1, Lon: -0.5}
	q.Push(event.GameEvent{Type: event.EventBoatMove, Tick: 1, Payload: &event.BoatMovePayload{}})
	q.Push(event.GameEvent{Type: event.EventIslandEnter, Tick: 2, SimTime: 0.2, Payload: &event.IslandEnterPayload{
		Island: sky.Home, Position: pos, Fix: fix, Landing: vmath.Vec3F{Z: 1000},
	}})
	q.Push(event.GameEvent{Type: event.EventModeChange, Tick: 2, Payload: &event.ModeChangePayload{
		From: "night", To: "day", Island: sky.Home, Position: pos, Fix: fix,
	}})
	q.Push(event.GameEvent{Type: event.EventIslandLeave, Tick: 90, Payload: &event.IslandLeavePayload{
		Island: sky.Home, Position: vmath.Vec3F{Z: 2000},
	}})
	r.DispatchAll()

	entries, err := book.Entries("v1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Zero(t, rec.Errors())

	assert.Equal(t, []string{"island_enter", "mode_change", "island_leave"},
		[]string{entries[0].Kind, entries[1].Kind, entries[2].Kind})

	enter := entries[0]
	assert.Equal(t, "home", enter.Island)
	assert.Equal(t, int64(2), enter.Tick)
	assert.Equal(t, 0.2, enter.SimTime)
	assert.Equal(t, 8.1, enter.Lat)

	coords, ok := enter.Position.Coordinates()
	require.True(t, ok)
	assert.Equal(t, 12.0, coords.XY.X)
	assert.Equal(t, 340.0, coords.XY.Y)

	var details map[string]any
	require.NoError(t, json.Unmarshal(enter.Details, &details))
	assert.Equal(t, "home", details["island"])

	var mode map[string]any
	require.NoError(t, json.Unmarshal(entries[1].Details, &mode))
	assert.Equal(t, "day", mode["to"])
}

func TestEntriesScopedToVoyage(t *testing.T) {
	book := openMemory(t)
	require.NoError(t, book.Write(&Entry{VoyageID: "a", Kind: "island_enter", Position: WorldPoint(vmath.Vec3F{})}))
	require.NoError(t, book.Write(&Entry{VoyageID: "b", Kind: "island_enter", Position: WorldPoint(vmath.Vec3F{})}))

	a, err := book.Entries("a")
	require.NoError(t, err)
	assert.Len(t, a, 1)

	none, err := book.Entries("c")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOpenFilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voyage.db")

	book, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, book.Write(&Entry{VoyageID: "v", Kind: "mode_change", Position: WorldPoint(vmath.Vec3F{X: 1})}))
	require.NoError(t, book.Close())

	book, err = Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer book.Close()
	entries, err := book.Entries("v")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
