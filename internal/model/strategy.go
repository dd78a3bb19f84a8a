// Package model defines the data structures for the renaming attack.
package model

// Path represents a file system path.
type Path string

// Strategy selects how replacement identifiers are generated.
type Strategy string

const (
	// StrategySequential produces var_1, var_2, ... with one counter per pass.
	StrategySequential Strategy = "sequential"
	// StrategyRandom produces eight random lowercase letters per name.
	StrategyRandom Strategy = "random"
	// StrategyObfuscate produces _<six random letters>_<n> per name.
	StrategyObfuscate Strategy = "obfuscate"
)

// Known reports whether s is one of the supported strategies.
func (s Strategy) Known() bool {
	switch s {
	case StrategySequential, StrategyRandom, StrategyObfuscate:
		return true
	}

	return false
}

// Options configures a single rename invocation.
type Options struct {
	Strategy Strategy
	Seed     int64
	// Ratio is the proportion of eligible names to rename, clamped to [0, 1].
	Ratio float64
	// Protected is the prompt prefix whose identifiers must survive
	// unchanged and whose text must reappear verbatim in the output.
	Protected string
}
