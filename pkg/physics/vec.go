package physics

import "math"

// --- Wektor 2D (podwójna precyzja) ---
// Odległości w układzie są rzędu 1e11 m a siły 1e22 N, więc cała
// fizyka musi zostać w float64. Konwersja do float32 następuje
// dopiero przy transformacji ekranowej.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}
