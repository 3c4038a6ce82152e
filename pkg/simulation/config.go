package simulation

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"image/color"

	"solar-sim/pkg/physics"
)

// Stałe współdzielone przez symulację, kamerę i renderer.
const (
	// Jednostka astronomiczna w metrach.
	AU = 149.6e6 * 1000.

	// Skala symulacja -> ekran: 1 AU to 250 px.
	Scale = 250. / AU

	// Jeden tick = jedna doba. Tick fizyki jest stały i niezależny
	// od częstotliwości rysowania.
	Timestep = 3600. * 24.

	// Czułość myszy, wspólna dla pan i zoom.
	Sensitivity = 1.5

	// Mnożnik zoomu dla precyzyjnych kółek (scroll w trybie pixel).
	PixelZoomFactor = 1.25

	// Maksymalna długość śladu na ciało.
	MaxTrailPoints = 600
)

// --- Struktura konfiguracji środowiska ---
type EnvironmentConfig struct {
	Name      string       `json:"name"`
	Bodies    []BodyConfig `json:"bodies"`
	AutoOrbit bool         `json:"auto_orbit,omitempty"`
}

type BodyConfig struct {
	Name  string     `json:"name"`
	Mass  float64    `json:"mass"`
	Pos   [2]float64 `json:"pos"` // m
	Vel   [2]float64 `json:"vel"` // m/s
	Size  float64    `json:"size"`
	Color string     `json:"color"`
}

// Średnica Słońca na ekranie; planety są skalowane względem niej
// stosunkiem realnych promieni.
const sunDiameter = 75.

const sunRadiusKm = 69634.

// SolarSystem zwraca wkompilowaną tabelę: Słońce plus osiem planet.
// Masy, pozycje na osi X i prędkości styczne na osi Y to realne
// wartości astronomiczne.
func SolarSystem() EnvironmentConfig {
	return EnvironmentConfig{
		Name: "solar",
		Bodies: []BodyConfig{
			{Name: "Sun", Mass: 1.98892e30, Pos: [2]float64{0, 0}, Vel: [2]float64{0, 0}, Size: sunDiameter, Color: "#ffff00"},
			{Name: "Mercury", Mass: 3.3e23, Pos: [2]float64{0.387 * AU, 0}, Vel: [2]float64{0, 47.4 * 1000.}, Size: 2440. / sunRadiusKm * sunDiameter, Color: "#ff0000"},
			{Name: "Venus", Mass: 4.87e24, Pos: [2]float64{0.72 * AU, 0}, Vel: [2]float64{0, 35. * 1000.}, Size: 6052. / sunRadiusKm * sunDiameter, Color: "#f5f5dc"},
			{Name: "Earth", Mass: 5.9742e24, Pos: [2]float64{-1. * AU, 0}, Vel: [2]float64{0, 29.783 * 1000.}, Size: 6371. / sunRadiusKm * sunDiameter, Color: "#0000ff"},
			{Name: "Mars", Mass: 6.39e23, Pos: [2]float64{-1.524 * AU, 0}, Vel: [2]float64{0, 24.077 * 1000.}, Size: 3390. / sunRadiusKm * sunDiameter, Color: "#ff4500"},
			{Name: "Jupiter", Mass: 1898e24, Pos: [2]float64{5.2 * AU, 0}, Vel: [2]float64{0, 13.1 * 1000.}, Size: 69911. / sunRadiusKm * sunDiameter, Color: "#00ff00"},
			{Name: "Saturn", Mass: 568e24, Pos: [2]float64{9.54 * AU, 0}, Vel: [2]float64{0, 9.7 * 1000.}, Size: 58232. / sunRadiusKm * sunDiameter, Color: "#f5f5dc"},
			{Name: "Uranus", Mass: 86.8e24, Pos: [2]float64{19.2 * AU, 0}, Vel: [2]float64{0, 6.8 * 1000.}, Size: 25362. / sunRadiusKm * sunDiameter, Color: "#00ffff"},
			{Name: "Neptune", Mass: 102e24, Pos: [2]float64{30.06 * AU, 0}, Vel: [2]float64{0, 4.7 * 1000.}, Size: 24622. / sunRadiusKm * sunDiameter, Color: "#ffffff"},
		},
	}
}

// SetOrbitalVelocities nadaje ciałom o zerowej prędkości prędkość orbity
// kołowej wokół pierwszego (centralnego) ciała: v = sqrt(G*M/r),
// skierowaną prostopadle do wektora pozycji.
func SetOrbitalVelocities(bodies []BodyConfig) {
	if len(bodies) == 0 {
		return
	}
	central := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Vel[0] != 0 || bodies[i].Vel[1] != 0 {
			continue
		}

		dx := bodies[i].Pos[0] - central.Pos[0]
		dy := bodies[i].Pos[1] - central.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(physics.G * central.Mass / r)
		bodies[i].Vel[0] = -dy / r * v
		bodies[i].Vel[1] = dx / r * v
	}
}

// --- Wczytanie pliku konfiguracyjnego ---
func LoadConfig(path string) (*Simulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("błąd odczytu pliku: %v", err)
	}

	var env EnvironmentConfig
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("błąd parsowania JSON: %v", err)
	}

	if len(env.Bodies) == 0 {
		return nil, fmt.Errorf("środowisko %q nie zawiera żadnych ciał", env.Name)
	}
	for i, b := range env.Bodies {
		if b.Mass <= 0 {
			return nil, fmt.Errorf("ciało %d (%s): masa musi być dodatnia", i, b.Name)
		}
	}

	if env.AutoOrbit {
		SetOrbitalVelocities(env.Bodies)
	}

	return NewSimulator(env), nil
}

// --- Parser koloru HEX ---
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{200, 200, 255, 255}
}
