package telemetry

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skysail/config"
	"github.com/lixenwraith/skysail/event"
	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/vmath"
)

type influxStub struct {
	mu     sync.Mutex
	writes []string
}

func (s *influxStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/ping":
		w.WriteHeader(http.StatusNoContent)
	case "/api/v2/write":
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.writes = append(s.writes, string(body))
		s.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *influxStub) lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.writes...)
}

func moveEvent(tick int64, x float64) event.GameEvent {
	return event.GameEvent{
		Type:    event.EventBoatMove,
		Tick:    tick,
		SimTime: float64(tick) / 30,
		Payload: &event.BoatMovePayload{
			Translation: vmath.Vec3F{X: x, Z: 2},
			Speed:       4.5,
			Fix:         sky.GlobeFix{Lat: 1, Lon: 2},
			Mode:        "night",
		},
	}
}

func TestHandlerWritesEveryNthMove(t *testing.T) {
	stub := &influxStub{}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	exp, err := NewExporter(context.Background(), config.TelemetryConfig{
		URL: srv.URL, Token: "t", Org: "skysail", Bucket: "voyage",
	}, zerolog.Nop())
	require.NoError(t, err)
	defer exp.Close()
	assert.False(t, exp.Backup())

	h := NewHandler(exp, "v1", 3, time.Unix(0, 0))
	for i := int64(1); i <= 7; i++ {
		h.HandleEvent(moveEvent(i, float64(i)))
	}

	assert.Equal(t, 3, h.Written())
	assert.Zero(t, h.Failed())

	lines := stub.lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "boat,mode=night,voyage=v1 "), lines[0])
	assert.Contains(t, lines[0], "speed=4.5")
	assert.Contains(t, lines[0], "x=1")
	assert.Contains(t, lines[1], "x=4")
	assert.Contains(t, lines[2], "x=7")
}

func TestHandlerIgnoresOtherPayloads(t *testing.T) {
	stub := &influxStub{}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	exp, err := NewExporter(context.Background(), config.TelemetryConfig{URL: srv.URL}, zerolog.Nop())
	require.NoError(t, err)
	defer exp.Close()

	h := NewHandler(exp, "v1", 1, time.Now())
	h.HandleEvent(event.GameEvent{Type: event.EventBoatMove, Payload: &event.IslandLeavePayload{}})
	assert.Zero(t, h.Written())
	assert.Empty(t, stub.lines())
}

func TestExporterFallsBackToBackup(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	path := filepath.Join(t.TempDir(), "telemetry.lp.gz")
	exp, err := NewExporter(context.Background(), config.TelemetryConfig{
		URL: url, Backup: path,
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, exp.Backup())

	h := NewHandler(exp, "v2", 1, time.Unix(100, 0))
	h.HandleEvent(moveEvent(30, 9))
	require.NoError(t, exp.Close())
	assert.Equal(t, 1, h.Written())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	assert.True(t, strings.HasPrefix(line, "boat,mode=night,voyage=v2 "), line)
	assert.True(t, strings.HasSuffix(line, " 101000000000"), line)
}

func TestExporterUnavailableWithoutBackup(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewExporter(context.Background(), config.TelemetryConfig{URL: url}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrUnavailable)
}
