package main

import (
	"image/color"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
)

// newStarfield generuje raz, przy starcie, statyczne tło gwiazd.
// Szum Perlina moduluje gęstość, żeby gwiazdy zbijały się w pasma
// zamiast rozkładać idealnie równomiernie.
func newStarfield(w, h int, seed int64) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(color.Black)

	p := perlin.NewPerlin(2, 2, 3, seed)
	rng := rand.New(rand.NewSource(seed))
	const freq = 0.004
	const baseDensity = 0.0015

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := (p.Noise2D(float64(x)*freq, float64(y)*freq) + 1) / 2
			if rng.Float64() < baseDensity*(0.3+1.4*n) {
				v := uint8(100 + rng.Intn(156))
				img.Set(x, y, color.RGBA{v, v, v, 255})
			}
		}
	}
	return img
}
