package physics

import "math"

// Stała grawitacji, jednostki SI.
const G = 6.67428e-11

// MinDistance to dolny limit odległości w liczeniu siły. Dwa pokrywające
// się ciała dałyby dzielenie przez zero i NaN propagujące się po całym
// układzie; przycinamy odległość do 1e4 m, czyli o wiele rzędów wielkości
// poniżej jakiejkolwiek realnej separacji planet, więc poprawne orbity
// nie czują limitu.
const MinDistance = 1e4

// ForceBetween liczy wektor siły grawitacji działającej na a od b:
// F = G*m1*m2/r^2, rozłożone na składowe przez atan2.
func ForceBetween(a, b Body) Vec2 {
	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y

	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < MinDistance {
		dist = MinDistance
	}

	force := G * a.Mass * b.Mass / (dist * dist)
	theta := math.Atan2(dy, dx)

	return Vec2{
		X: math.Cos(theta) * force,
		Y: math.Sin(theta) * force,
	}
}

// AccumulateForces sumuje siły parami dla każdego ciała. Przebieg jest
// czysto odczytowy: wszystkie siły liczone są ze stanu z początku kroku,
// zanim integrator cokolwiek zapisze. O(n^2) — przy kilku ciałach to
// bez znaczenia, przy dużym n potrzebna byłaby aproksymacja przestrzenna
// (poza zakresem).
func AccumulateForces(bodies []Body) []Vec2 {
	forces := make([]Vec2, len(bodies))
	for i := range bodies {
		var total Vec2
		for j := range bodies {
			if i == j {
				continue
			}
			total = total.Add(ForceBetween(bodies[i], bodies[j]))
		}
		forces[i] = total
	}
	return forces
}
