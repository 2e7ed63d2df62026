package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skysail/boat"
	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/vmath"
	"github.com/lixenwraith/skysail/voyage"
)

// heldKeys remembers the last press of each helm key
// Terminals deliver key repeats, never releases
type heldKeys map[rune]time.Time

func (h heldKeys) press(r rune, now time.Time) {
	h[r] = now
}

func (h heldKeys) held(r rune, now time.Time) bool {
	t, ok := h[r]
	return ok && now.Sub(t) < parameter.KeyHoldWindow
}

// helm maps W/S/A/D to helm keys
func (h heldKeys) helm(now time.Time) boat.Keys {
	return boat.Keys{
		Ahead:  h.held('w', now),
		Astern: h.held('s', now),
		Left:   h.held('a', now),
		Right:  h.held('d', now),
	}
}

func runScreen(ctx context.Context, v *voyage.Voyage) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	defer crashGuard(screen.Fini)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	keys := heldKeys{}
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ev.Key() == tcell.KeyRune {
					r := ev.Rune() | 0x20 // fold ASCII case
					if r == 'q' {
						return nil
					}
					keys.press(r, time.Now())
				}
			}

		case now := <-ticker.C:
			dt := math.Min(now.Sub(last).Seconds(), parameter.TickMaxDt)
			last = now
			if err := v.TickKeys(ctx, keys.helm(now), dt); err != nil {
				return err
			}
			draw(screen, v)
		}
	}
}

var seaShades = []rune{' ', '.', '-', '~', '≈'}

// draw renders the sea around the boat, north up, then the HUD
func draw(screen tcell.Screen, v *voyage.Voyage) {
	w, h := screen.Size()
	b := v.Boat()
	cx, cy := w/2, h/2
	amp := maxAmplitude(v)

	for row := 1; row < h; row++ {
		for col := 0; col < w; col++ {
			p := vmath.Vec2F{
				X: b.Position.X + float64(col-cx)*parameter.ViewCellMeters,
				Y: b.Position.Z - float64(row-cy)*2*parameter.ViewCellMeters,
			}
			height := v.HeightAt(p)
			r, style := seaCell(height, amp)
			screen.SetContent(col, row, r, nil, style)
		}
	}

	if landing, ok := v.Navigator().Landing(); ok {
		col := cx + int(math.Round((landing.X-b.Position.X)/parameter.ViewCellMeters))
		row := cy - int(math.Round((landing.Z-b.Position.Z)/(2*parameter.ViewCellMeters)))
		if col >= 0 && col < w && row >= 1 && row < h {
			screen.SetContent(col, row, '▲', nil, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
		}
	}

	screen.SetContent(cx, cy, headingGlyph(b.Forward()), nil,
		tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true))

	drawText(screen, 0, 0, hud(v), tcell.StyleDefault.Reverse(true))
	screen.Show()
}

func maxAmplitude(v *voyage.Voyage) float64 {
	a := 0.0
	for _, d := range v.Waves() {
		a += d.Steepness * d.Wavelength / (2 * math.Pi)
	}
	return math.Max(a, vmath.Epsilon)
}

// seaCell shades a height in [0, 2*amp] from deep navy troughs to pale crests
func seaCell(height, amp float64) (rune, tcell.Style) {
	t := vmath.ClampF(height/(2*amp), 0, 1)
	idx := int(t * float64(len(seaShades)-1))
	bg := tcell.NewRGBColor(0, int32(30+60*t), int32(90+110*t))
	fg := tcell.NewRGBColor(int32(120+135*t), int32(160+95*t), 255)
	return seaShades[idx], tcell.StyleDefault.Background(bg).Foreground(fg)
}

var compass = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// headingGlyph picks the arrow nearest the forward vector, +Z north, +X east
func headingGlyph(fwd vmath.Vec3F) rune {
	a := math.Atan2(fwd.X, fwd.Z)
	i := int(math.Round(a/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return compass[i]
}

func hud(v *voyage.Voyage) string {
	b := v.Boat()
	fix := v.Fix()
	s := fmt.Sprintf(" %s  speed %5.1f  lat %7.3f  lon %8.3f", v.Mode(), b.Speed, fix.Lat, fix.Lon)
	if ev, ok := v.Approach(); ok {
		s += fmt.Sprintf("  %s %3.0f%%", ev.Island, ev.Fraction*100)
	}
	if v.Dome().Locked {
		s += "  LOCKED"
	}
	return s + "  [wasd helm, q quit] "
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
