package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font/basicfont"

	"solar-sim/pkg/physics"
	"solar-sim/pkg/simulation"
)

const (
	screenWidth  = 1920
	screenHeight = 1000
)

// Game ---
// Warstwa prezentacji wokół symulatora: pętla ebiten, wejście myszy
// i klawiatury, rysowanie, licznik FPS. Update działa ze stałym TPS
// i jest tickiem fizyki; Draw chodzi z częstotliwością ekranu.
type Game struct {
	sim    *simulation.Simulator
	cam    *simulation.Camera
	stars  *ebiten.Image
	paused bool

	// poprzednia pozycja kursora do liczenia delty ruchu
	prevMX, prevMY int
}

// Update ---
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.paused {
		g.sim.Step()
	}

	// pan prawym przyciskiem: delta kursora względem poprzedniego ticka
	mx, my := ebiten.CursorPosition()
	dx := float64(mx - g.prevMX)
	dy := float64(my - g.prevMY)
	g.prevMX = mx
	g.prevMY = my
	g.cam.HandleMotion(dx, dy,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight))

	// zoom kółkiem; ebiten nie rozróżnia trybu pixel, więc zgłaszamy linię
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.HandleScroll(wy, simulation.ScrollLine)
	}

	if g.paused {
		return nil
	}

	g.sim.Step()
	return nil
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.stars, nil)
	cx, cy := float64(screenWidth)/2, float64(screenHeight)/2

	// ślady: łamana po zapamiętanych pozycjach ekranowych
	for i, t := range g.sim.Trails {
		clr := g.sim.Bodies[i].ColorC
		clr.A = 160
		pts := t.Points()
		for j := 1; j < len(pts); j++ {
			x0, y0 := g.cam.Project(float64(pts[j-1].X), float64(pts[j-1].Y), cx, cy)
			x1, y1 := g.cam.Project(float64(pts[j].X), float64(pts[j].Y), cx, cy)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
		}
	}

	// ciała
	for i := range g.sim.Bodies {
		b := &g.sim.Bodies[i]
		x, y := g.cam.Project(float64(b.Screen.X), float64(b.Screen.Y), cx, cy)
		r := b.Screen.Scale / 2 / float32(g.cam.Zoom)
		if r < 1 {
			r = 1
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, b.ColorC, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Env: %s\nPaused: %v", g.sim.Name, g.paused))
	drawFPS(screen)

	// tooltip podczas pauzy
	if g.paused {
		g.drawHoverTooltip(screen, cx, cy)
	}
}

// drawFPS rysuje wygładzony licznik klatek: zielony przy >=60,
// czerwony poniżej, "N/A" zanim pojawi się pierwsza próbka.
func drawFPS(screen *ebiten.Image) {
	fps := ebiten.ActualFPS()
	label := "FPS:  N/A"
	clr := color.RGBA{255, 255, 255, 255}
	if fps > 0 {
		label = fmt.Sprintf("FPS: %4.0f", fps)
		if fps >= 60 {
			clr = color.RGBA{0, 255, 0, 255}
		} else {
			clr = color.RGBA{255, 0, 0, 255}
		}
	}
	text.Draw(screen, label, basicfont.Face7x13, 12, 48, clr)
}

// drawHoverTooltip pokazuje dane ciała pod kursorem (tylko w pauzie).
func (g *Game) drawHoverTooltip(screen *ebiten.Image, cx, cy float64) {
	mx, my := ebiten.CursorPosition()
	var hovered *physics.Body
	minD := math.MaxFloat64
	for i := range g.sim.Bodies {
		b := &g.sim.Bodies[i]
		x, y := g.cam.Project(float64(b.Screen.X), float64(b.Screen.Y), cx, cy)
		d := math.Hypot(x-float64(mx), y-float64(my))
		r := math.Max(float64(b.Screen.Scale/2)/g.cam.Zoom, 4)
		if d <= r && d < minD {
			hovered = b
			minD = d
		}
	}
	if hovered == nil {
		return
	}

	lines := []string{
		hovered.Name,
		fmt.Sprintf("Mass: %.3e kg", hovered.Mass),
		fmt.Sprintf("Pos: (%.3f, %.3f) AU", hovered.Pos.X/simulation.AU, hovered.Pos.Y/simulation.AU),
		fmt.Sprintf("Vel: (%.1f, %.1f) m/s", hovered.Vel.X, hovered.Vel.Y),
		fmt.Sprintf("Speed: %.1f m/s", hovered.Vel.Len()),
	}
	pad := 6
	charW := 7
	lineH := 13
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	tw := maxLen*charW + pad*2
	th := len(lines)*lineH + pad*2
	tooltip := ebiten.NewImage(tw, th)
	tooltip.Fill(color.RGBA{10, 10, 10, 200})
	inner := ebiten.NewImage(tw-2, th-2)
	inner.Fill(color.RGBA{30, 30, 30, 120})
	opInner := &ebiten.DrawImageOptions{}
	opInner.GeoM.Translate(1, 1)
	tooltip.DrawImage(inner, opInner)
	for i, l := range lines {
		text.Draw(tooltip, l, basicfont.Face7x13, pad, pad+(i+1)*lineH-2, color.RGBA{230, 230, 230, 255})
	}
	drawX := mx + 12
	drawY := my + 12
	if drawX+tw > screenWidth {
		drawX = screenWidth - tw - 8
	}
	if drawY+th > screenHeight {
		drawY = screenHeight - th - 8
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(drawX), float64(drawY))
	screen.DrawImage(tooltip, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	envName := flag.String("env", "", "Środowisko z pkg/assets (np. binary, chaos); puste = wbudowany układ słoneczny")
	fullscreen := flag.Bool("fullscreen", true, "Tryb pełnoekranowy")
	flag.Parse()

	var sim *simulation.Simulator
	if *envName == "" {
		sim = simulation.NewSimulator(simulation.SolarSystem())
	} else {
		configPath := filepath.Join("pkg/assets", fmt.Sprintf("%s.json", *envName))
		var err error
		sim, err = simulation.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Błąd wczytywania środowiska: %v", err)
		}
	}

	game := &Game{
		sim:   sim,
		cam:   simulation.NewCamera(),
		stars: newStarfield(screenWidth, screenHeight, time.Now().UnixNano()),
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetWindowTitle("Solar Simulation - " + sim.Name)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
