package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// MarchGenerator produces the four-note descending bass line that loops
// while a round is running.
type MarchGenerator struct {
	sr    beep.SampleRate
	pos   int
	note  int // samples per note
	notes []float64
}

// NewMarchGenerator creates a march generator.
func NewMarchGenerator(sr beep.SampleRate) *MarchGenerator {
	return &MarchGenerator{
		sr:    sr,
		note:  sr.N(time.Millisecond * 500),
		notes: []float64{98.0, 87.31, 77.78, 73.42},
	}
}

func (g *MarchGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (g.pos / g.note) % len(g.notes)
		inNote := g.pos % g.note
		t := float64(inNote) / float64(g.sr)

		// Short thump at the start of each note, silence for the rest.
		env := 0.0
		if inNote < g.note/3 {
			env = 1 - float64(inNote)/float64(g.note/3)
		}
		sample := 0.3 * env * square(g.notes[idx]*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos = (g.pos + 1) % (g.note * len(g.notes))
	}
	return len(samples), true
}

func (g *MarchGenerator) Err() error {
	return nil
}

// SweepGenerator produces a falling pitch sweep.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from one frequency to another over 100ms.
func NewSweepGenerator(sr beep.SampleRate, from, to float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	span := float64(g.sr.N(time.Millisecond * 100))
	for i := range samples {
		p := math.Min(float64(g.pos)/span, 1)
		freq := g.from + (g.to-g.from)*p
		g.phase += freq / float64(g.sr)

		sample := 0.25 * (1 - p*0.8) * square(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NoiseGenerator produces an exponentially decaying noise burst over a low
// rumble. A deterministic LCG keeps the output reproducible.
type NoiseGenerator struct {
	sr    beep.SampleRate
	pos   int
	seed  int64
	decay float64
}

// NewNoiseGenerator creates a noise burst. decay is the envelope rate per second.
func NewNoiseGenerator(sr beep.SampleRate, seed int64, decay float64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, seed: seed, decay: decay}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.3*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}

// ArpeggioGenerator plays its notes in sequence, each for an equal share of
// a 800ms phrase, holding the last one.
type ArpeggioGenerator struct {
	sr    beep.SampleRate
	pos   int
	notes []float64
}

// NewArpeggioGenerator creates an arpeggio over the given frequencies.
func NewArpeggioGenerator(sr beep.SampleRate, notes ...float64) *ArpeggioGenerator {
	return &ArpeggioGenerator{sr: sr, notes: notes}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if len(g.notes) == 0 {
		return 0, false
	}
	step := g.sr.N(time.Millisecond*800) / len(g.notes)
	for i := range samples {
		idx := min(g.pos/step, len(g.notes)-1)
		t := float64(g.pos) / float64(g.sr)
		inNote := float64(g.pos%step) / float64(step)

		sample := 0.2 * (1 - 0.5*inNote) * math.Sin(2*math.Pi*g.notes[idx]*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}

// square returns a unit square wave for the given phase in cycles.
func square(phase float64) float64 {
	if phase-math.Floor(phase) < 0.5 {
		return 1
	}
	return -1
}
