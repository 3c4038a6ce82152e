package simulation

import (
	"solar-sim/pkg/physics"
)

// --- Główna struktura symulatora ---
// Autorytatywny właściciel listy ciał i ich śladów. Kolejność ciał
// jest stała przez cały czas działania — po starcie nic nie jest
// dodawane ani usuwane, a Trails[i] należy do Bodies[i].
type Simulator struct {
	Name   string
	Dt     float64
	Bodies []physics.Body
	Trails []*Trail
}

// --- Tworzenie symulatora z konfiguracji ---
func NewSimulator(cfg EnvironmentConfig) *Simulator {
	bodies := make([]physics.Body, len(cfg.Bodies))
	trails := make([]*Trail, len(cfg.Bodies))

	for i, b := range cfg.Bodies {
		bodies[i] = physics.Body{
			Name:   b.Name,
			Mass:   b.Mass,
			Pos:    physics.Vec2{X: b.Pos[0], Y: b.Pos[1]},
			Vel:    physics.Vec2{X: b.Vel[0], Y: b.Vel[1]},
			Size:   float32(b.Size),
			ColorC: parseColor(b.Color),
		}
		bodies[i].UpdateScreen(Scale)
		trails[i] = NewTrail(MaxTrailPoints)
	}

	return &Simulator{
		Name:   cfg.Name,
		Dt:     Timestep,
		Bodies: bodies,
		Trails: trails,
	}
}

// Step wykonuje jeden tick: krok integratora, przeliczenie transformacji
// ekranowych i dopisanie nowych pozycji do śladów. Fazy są sekwencyjne —
// ślady czytają już zaktualizowane pozycje.
func (s *Simulator) Step() {
	physics.Step(s.Bodies, s.Dt)

	for i := range s.Bodies {
		b := &s.Bodies[i]
		b.UpdateScreen(Scale)
		s.Trails[i].Push(TrailPoint{X: b.Screen.X, Y: b.Screen.Y})
	}
}
