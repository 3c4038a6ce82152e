package physics

import "image/color"

// --- Transformacja ekranowa ---
// Pochodna pozycji fizycznej, pojedyncza precyzja. Liczona na nowo
// w każdym ticku i nigdy nie wraca do integratora.
type ScreenTransform struct {
	X, Y  float32
	Scale float32
}

// --- Ciało niebieskie ---
// Mass, Pos i Vel to stan fizyczny (float64, autorytatywny).
// Size i ColorC są stałe od utworzenia, Screen jest przeliczane
// co tick ze skali symulacja->ekran.
type Body struct {
	Name   string
	Mass   float64 // kg
	Pos    Vec2    // m
	Vel    Vec2    // m/s
	Size   float32 // średnica na ekranie w pikselach
	ColorC color.RGBA
	Screen ScreenTransform
}

// UpdateScreen przelicza transformację ekranową z pozycji fizycznej.
func (b *Body) UpdateScreen(scale float64) {
	b.Screen = ScreenTransform{
		X:     float32(b.Pos.X * scale),
		Y:     float32(b.Pos.Y * scale),
		Scale: b.Size,
	}
}

func (b Body) Color() color.Color {
	return b.ColorC
}
