// Package agrodata generates the synthetic soil, weather, and market
// datasets backing the Agriscope API, standing in for external data
// providers. Generators draw from an injected random source and clock;
// the analysis functions on top of them are pure.
package agrodata

import (
	"math"
	"math/rand"
	"time"
)

// Provider generates soil samples, weather reports, and market boards.
type Provider struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a Provider with the given random source and clock.
func New(rng *rand.Rand, now func() time.Time) *Provider {
	return &Provider{rng: rng, now: now}
}

// NewProvider creates a Provider seeded from the current time.
func NewProvider() *Provider {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// Now reports the provider's current time. Callers use it so that
// generated data and response timestamps share one clock.
func (p *Provider) Now() time.Time {
	return p.now()
}

func (p *Provider) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}

func (p *Provider) pick(options []string) string {
	return options[p.rng.Intn(len(options))]
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
