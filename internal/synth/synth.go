package synth

import (
	"math"
	"math/rand"
	"time"
)

const (
	seedBase  = 1000.0
	seedBand  = 500.0
	floor     = 1.0
	deltaFrac = 0.004
)

// Walk holds the synthetic prices for one stream connection. Each symbol
// follows an independent bounded random walk that stays finite and never
// drops below the floor. A Walk is owned by a single stream and is not safe
// for concurrent use.
type Walk struct {
	prices map[string]float64
	rng    *rand.Rand
}

// NewWalk seeds every requested symbol once with a random base price.
// A nil rng gets a time-seeded source; tests pass a fixed one.
func NewWalk(symbols []string, rng *rand.Rand) *Walk {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := &Walk{
		prices: make(map[string]float64, len(symbols)),
		rng:    rng,
	}
	for _, s := range symbols {
		w.prices[s] = w.seed()
	}
	return w
}

func (w *Walk) seed() float64 {
	return seedBase + w.rng.Float64()*seedBand
}

// Next advances the walk for symbol and returns the new price. Symbols not
// seeded at construction are seeded on first use.
func (w *Walk) Next(symbol string) float64 {
	last, ok := w.prices[symbol]
	if !ok {
		last = w.seed()
	}
	delta := (w.rng.Float64() - 0.5) * math.Max(1, last*deltaFrac)
	next := math.Max(floor, last+delta)
	w.prices[symbol] = next
	return next
}
