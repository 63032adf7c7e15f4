package color

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/thenoetrevino/swatch/internal/models"
)

// Generator produces random color records. It is safe for concurrent use.
// The zero value is not usable; use NewGenerator.
type Generator struct {
	mu  sync.Mutex // guards rng, *rand.Rand is not goroutine safe
	rng *rand.Rand
	now func() time.Time
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator)

// WithRand pins the random source, mainly for tests
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator returns a generator backed by math/rand/v2 and the wall clock
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate samples each channel uniformly in [0,255] and stamps the record
// with the current time in milliseconds. The ID is left at zero.
func (g *Generator) Generate() *models.ColorRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	return &models.ColorRecord{
		Code: models.FormatCode(g.channel(), g.channel(), g.channel()),
		Time: g.now().UnixMilli(),
	}
}

func (g *Generator) channel() uint8 {
	if g.rng != nil {
		return uint8(g.rng.IntN(256))
	}
	return uint8(rand.IntN(256))
}
