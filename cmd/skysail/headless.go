package main

import (
	"context"
	"fmt"
	"io"

	"github.com/lixenwraith/skysail/chart"
	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/voyage"
)

// runHeadless sails straight ahead at full throttle for n fixed steps
func runHeadless(ctx context.Context, v *voyage.Voyage, n int, track *chart.Track, out io.Writer) error {
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		if err := v.Tick(ctx, voyage.Controls{Dt: parameter.HeadlessDt, Throttle: 1}); err != nil {
			return err
		}
	}

	b := v.Boat()
	fix := v.Fix()
	fmt.Fprintf(out, "ticks=%d time=%.2fs mode=%s\n", v.TickCount(), v.SimTime(), v.Mode())
	fmt.Fprintf(out, "position=(%.2f, %.2f, %.2f) speed=%.2f\n", b.Position.X, b.Position.Y, b.Position.Z, b.Speed)
	fmt.Fprintf(out, "fix=%.4f,%.4f locked=%t\n", fix.Lat, fix.Lon, v.Dome().Locked)
	fmt.Fprintf(out, "track=%d fixes %.0fm\n", track.Len(), track.Length())
	return nil
}
