package simulation

import (
	"math"
	"testing"
)

func TestPanAccumulation(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		n      int
	}{
		{"w prawo", 4, 0, 7},
		{"w dół", 0, 3, 5},
		{"ukośnie", -2, 6, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera()
			for i := 0; i < tt.n; i++ {
				c.HandleMotion(tt.dx, tt.dy, true, false)
			}

			wantX := float64(tt.n) * -tt.dx * Sensitivity
			wantY := float64(tt.n) * tt.dy * Sensitivity
			if c.X != wantX || c.Y != wantY {
				t.Errorf("offset = (%v, %v), oczekiwano (%v, %v)", c.X, c.Y, wantX, wantY)
			}
		})
	}
}

func TestPanRequiresHeldButton(t *testing.T) {
	c := NewCamera()

	// przycisk nie trzymany
	c.HandleMotion(10, 10, false, false)
	// zdarzenie, które dopiero rejestruje wciśnięcie, też nie przesuwa
	c.HandleMotion(10, 10, true, true)

	if c.X != 0 || c.Y != 0 {
		t.Errorf("kamera przesunięta bez trzymanego przycisku: (%v, %v)", c.X, c.Y)
	}
}

func TestZoomRoundTrip(t *testing.T) {
	for _, unit := range []ScrollUnit{ScrollLine, ScrollPixel} {
		c := NewCamera()
		start := c.Zoom

		c.HandleScroll(1, unit)  // przybliż
		c.HandleScroll(-1, unit) // oddal

		if math.Abs(c.Zoom-start) > 1e-12*start {
			t.Errorf("unit %v: zoom po rundzie = %v, start = %v", unit, c.Zoom, start)
		}
	}
}

func TestZoomDirections(t *testing.T) {
	c := NewCamera()
	start := c.Zoom

	c.HandleScroll(-1, ScrollLine)
	if c.Zoom != start*Sensitivity {
		t.Errorf("scroll w dół: zoom = %v, oczekiwano %v", c.Zoom, start*Sensitivity)
	}

	c = NewCamera()
	c.HandleScroll(1, ScrollLine)
	if c.Zoom != start/Sensitivity {
		t.Errorf("scroll w górę: zoom = %v, oczekiwano %v", c.Zoom, start/Sensitivity)
	}
}

func TestZoomPixelUnitFactor(t *testing.T) {
	c := NewCamera()
	start := c.Zoom

	c.HandleScroll(-1, ScrollPixel)

	if c.Zoom != start*PixelZoomFactor {
		t.Errorf("pixel scroll: zoom = %v, oczekiwano %v", c.Zoom, start*PixelZoomFactor)
	}
}

func TestZoomIgnoresNonUnitDeltas(t *testing.T) {
	// obsługiwane są wyłącznie skoki +-1; większe i ułamkowe delty
	// są ignorowane, nie akumulowane
	for _, dy := range []float64{0, 2, -3, 0.5, -0.25} {
		c := NewCamera()
		start := c.Zoom
		c.HandleScroll(dy, ScrollLine)
		if c.Zoom != start {
			t.Errorf("delta %v zmieniła zoom: %v -> %v", dy, start, c.Zoom)
		}
	}
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	c := NewCamera()
	c.X = -120
	c.Y = 45
	c.Zoom = 3.5
	const cx, cy = 960, 500

	wx, wy := 250.0, -80.0
	sx, sy := c.Project(wx, wy, cx, cy)
	gx, gy := c.Unproject(sx, sy, cx, cy)

	if math.Abs(gx-wx) > 1e-9 || math.Abs(gy-wy) > 1e-9 {
		t.Errorf("runda project/unproject: (%v, %v) -> (%v, %v)", wx, wy, gx, gy)
	}
}

func TestProjectAxes(t *testing.T) {
	c := NewCamera() // zoom 2, bez przesunięcia
	const cx, cy = 100, 100

	// punkt na +Y świata ląduje nad środkiem ekranu (oś Y odwrócona)
	sx, sy := c.Project(0, 50, cx, cy)
	if sx != cx || sy != cy-25 {
		t.Errorf("Project(0,50) = (%v, %v), oczekiwano (%v, %v)", sx, sy, cx, cy-25)
	}
}
