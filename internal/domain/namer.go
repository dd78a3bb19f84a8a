package domain

import (
	"fmt"
	"math/rand"

	m "github.com/mouse-blink/rinse/internal/model"
)

// namer generates fresh replacement identifiers. The counter spans the
// whole pass, not a single name, so sequential and obfuscate names never
// collide within one invocation. Random names are not collision-checked.
type namer struct {
	strategy m.Strategy
	rng      *rand.Rand
	counter  int
}

func newNamer(strategy m.Strategy, rng *rand.Rand) *namer {
	return &namer{strategy: strategy, rng: rng}
}

func (nm *namer) fresh() string {
	nm.counter++

	switch nm.strategy {
	case m.StrategyRandom:
		return nm.letters(8)
	case m.StrategySequential:
		return fmt.Sprintf("var_%d", nm.counter)
	case m.StrategyObfuscate:
		return fmt.Sprintf("_%s_%d", nm.letters(6), nm.counter)
	default:
		return fmt.Sprintf("v%d", nm.counter)
	}
}

func (nm *namer) letters(k int) string {
	b := make([]byte, k)
	for i := range b {
		b[i] = byte('a' + nm.rng.Intn(26))
	}

	return string(b)
}
