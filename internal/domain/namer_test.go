package domain

import (
	"math/rand"
	"regexp"
	"testing"

	m "github.com/mouse-blink/rinse/internal/model"
)

func TestNamer_Sequential(t *testing.T) {
	nm := newNamer(m.StrategySequential, rand.New(rand.NewSource(42)))

	for i, want := range []string{"var_1", "var_2", "var_3"} {
		if got := nm.fresh(); got != want {
			t.Fatalf("fresh() #%d = %q, want %q", i+1, got, want)
		}
	}
}

func TestNamer_Random(t *testing.T) {
	nm := newNamer(m.StrategyRandom, rand.New(rand.NewSource(42)))
	pattern := regexp.MustCompile(`^[a-z]{8}$`)

	for i := 0; i < 10; i++ {
		if got := nm.fresh(); !pattern.MatchString(got) {
			t.Fatalf("fresh() = %q, want eight lowercase letters", got)
		}
	}
}

func TestNamer_Obfuscate(t *testing.T) {
	nm := newNamer(m.StrategyObfuscate, rand.New(rand.NewSource(42)))
	pattern := regexp.MustCompile(`^_[a-z]{6}_[0-9]+$`)

	seen := make(map[string]struct{})

	for i := 0; i < 10; i++ {
		got := nm.fresh()
		if !pattern.MatchString(got) {
			t.Fatalf("fresh() = %q, want _<letters>_<counter>", got)
		}

		if _, dup := seen[got]; dup {
			t.Fatalf("fresh() repeated %q within one pass", got)
		}

		seen[got] = struct{}{}
	}
}

func TestNamer_CounterSpansWholePass(t *testing.T) {
	nm := newNamer(m.StrategySequential, rand.New(rand.NewSource(42)))

	nm.fresh()
	nm.fresh()

	if got := nm.fresh(); got != "var_3" {
		t.Fatalf("counter must be shared across names, got %q", got)
	}
}

func TestNamer_DeterministicForEqualSeed(t *testing.T) {
	first := newNamer(m.StrategyRandom, rand.New(rand.NewSource(9)))
	second := newNamer(m.StrategyRandom, rand.New(rand.NewSource(9)))

	for i := 0; i < 5; i++ {
		a, b := first.fresh(), second.fresh()
		if a != b {
			t.Fatalf("draw #%d differs: %q vs %q", i+1, a, b)
		}
	}
}
