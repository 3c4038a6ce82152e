package simulation

// ScrollUnit rozróżnia zwykłe kółko (skok o linię) od precyzyjnych
// kółek/touchpadów raportujących piksele.
type ScrollUnit int

const (
	ScrollLine ScrollUnit = iota
	ScrollPixel
)

// --- Kamera ---
// Przesunięcie widoku (X, Y) plus dodatnia skala zoomu. Stan mutowany
// wyłącznie przez zdarzenia wejściowe, czytany przez renderer. Żadnego
// wygładzania ani inercji.
type Camera struct {
	X, Y float64
	Zoom float64
}

func NewCamera() *Camera {
	// startowa skala 2: cały układ wewnętrzny mieści się na ekranie
	return &Camera{Zoom: 2}
}

// HandleMotion obsługuje jedno zdarzenie ruchu kursora. Przesuwa widok
// tylko gdy przycisk pan jest trzymany i nie jest to to samo zdarzenie,
// które dopiero zarejestrowało wciśnięcie.
func (c *Camera) HandleMotion(dx, dy float64, pressed, justPressed bool) {
	if !pressed || justPressed {
		return
	}
	c.X -= dx * Sensitivity
	c.Y += dy * Sensitivity
}

// HandleScroll obsługuje jedno zdarzenie scrolla: -1 oddala, +1 przybliża.
// Inne delty (ułamkowe, wielokrotne skoki w jednym zdarzeniu) są celowo
// ignorowane, nie akumulowane.
func (c *Camera) HandleScroll(dy float64, unit ScrollUnit) {
	factor := Sensitivity
	if unit == ScrollPixel {
		factor = PixelZoomFactor
	}
	switch dy {
	case -1:
		c.Zoom *= factor
	case 1:
		c.Zoom /= factor
	}
}

// Project mapuje punkt w przestrzeni ekranowej symulacji (po Scale,
// oś Y w górę) na piksele, względem środka ekranu (cx, cy).
func (c *Camera) Project(wx, wy, cx, cy float64) (float64, float64) {
	return cx + (wx-c.X)/c.Zoom, cy - (wy-c.Y)/c.Zoom
}

// Unproject to odwrotność Project, do trafiania kursorem w ciała.
func (c *Camera) Unproject(sx, sy, cx, cy float64) (float64, float64) {
	return (sx-cx)*c.Zoom + c.X, -(sy-cy)*c.Zoom + c.Y
}
