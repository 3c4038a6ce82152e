package simulation

// TrailPoint to jedna zapamiętana pozycja ekranowa (pojedyncza precyzja,
// po przeskalowaniu — ślad służy tylko renderowaniu).
type TrailPoint struct {
	X, Y float32
}

// --- Ślad ciała ---
// Bufor cykliczny o stałej pojemności. Push po zapełnieniu nadpisuje
// najstarszy wpis (ścisłe FIFO) w O(1) — bez przesuwania elementów,
// jak robiłoby obcinanie slice'a od przodu.
type Trail struct {
	buf  []TrailPoint
	head int // indeks najstarszego wpisu
	n    int
}

func NewTrail(capacity int) *Trail {
	if capacity <= 0 {
		capacity = 1
	}
	return &Trail{buf: make([]TrailPoint, capacity)}
}

func (t *Trail) Cap() int {
	return len(t.buf)
}

func (t *Trail) Len() int {
	return t.n
}

// Push dopisuje punkt na koniec śladu, w razie potrzeby wypychając
// najstarszy.
func (t *Trail) Push(p TrailPoint) {
	if t.n < len(t.buf) {
		t.buf[(t.head+t.n)%len(t.buf)] = p
		t.n++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
}

// At zwraca i-ty punkt licząc od najstarszego (At(0) == najstarszy).
func (t *Trail) At(i int) TrailPoint {
	return t.buf[(t.head+i)%len(t.buf)]
}

// Points kopiuje ślad w kolejności od najstarszego do najnowszego,
// do bezpośredniego rysowania łamanej.
func (t *Trail) Points() []TrailPoint {
	out := make([]TrailPoint, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.At(i)
	}
	return out
}
