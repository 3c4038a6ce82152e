package physics

// Step wykonuje jeden krok jawnego Eulera o długości dt.
//
// Krok jest dwufazowy: najpierw akumulacja sił na zamrożonym stanie
// (AccumulateForces nic nie zapisuje), potem dopiero zapis prędkości
// i pozycji. Siła na ciało A zależy od pozycji B sprzed kroku, nie od
// B już przesuniętego w tym samym ticku — dlatego nie wolno tego
// zwinąć do aktualizacji w miejscu.
func Step(bodies []Body, dt float64) {
	forces := AccumulateForces(bodies)

	for i := range bodies {
		b := &bodies[i]
		// v += F/m * dt, potem x += v * dt; bez metod symplektycznych ani RK
		b.Vel = b.Vel.Add(forces[i].Mul(dt / b.Mass))
		b.Pos = b.Pos.Add(b.Vel.Mul(dt))
	}
}
