package domain

import (
	"math/rand"

	m "github.com/mouse-blink/rinse/internal/model"
)

// Renamer applies the identifier renaming attack to one program at a time.
// Each invocation is self-contained: name mapping, eligible set and
// generator state are created fresh and discarded, and the generator is
// seeded from the options, so equal inputs produce equal outputs.
type Renamer struct {
	builtins Builtins
}

// NewRenamer creates a Renamer with the standard Python builtin set.
func NewRenamer() *Renamer {
	return &Renamer{builtins: DefaultBuiltins()}
}

// NewRenamerWithBuiltins creates a Renamer with an injected reserved set.
func NewRenamerWithBuiltins(builtins Builtins) *Renamer {
	return &Renamer{builtins: builtins}
}

// Rename rewrites code according to opts and returns the result. It never
// fails: unparsable input degrades to the lexical path, internal faults
// degrade to the identity transform.
func (r *Renamer) Rename(code string, opts m.Options) string {
	out, _ := r.RenameWithReport(code, opts)
	return out
}

// RenameWithReport is Rename plus a per-candidate report of which path ran.
func (r *Renamer) RenameWithReport(code string, opts m.Options) (string, m.Report) {
	var report m.Report

	if opts.Ratio <= 0 {
		// No-op by contract: the output must be byte-identical, so the
		// anchor step is skipped too.
		return code, report
	}

	protected := ProtectedNames(opts.Protected)

	var out string

	res := parsePython([]byte(code))
	if res.ok() {
		renamed, count, recovered := r.renameTree(res, opts, protected)
		res.tree.Close()

		if recovered {
			report.Recovered = true
			out = code
		} else {
			report.Renamed = count
			out = renamed
		}
	} else {
		report.Fallback = true
		out, report.Renamed = renameLexical(code, opts, r.builtins, protected)
	}

	anchored, ok := AnchorPrefix(out, opts.Protected)
	report.Anchored = ok

	return anchored, report
}

// renameTree runs the structural path. Any internal fault is contained
// here: the mutation is discarded and the caller falls back to the
// original text rather than emitting a partially rewritten program.
func (r *Renamer) renameTree(res parseResult, opts m.Options, protected map[string]struct{}) (out string, count int, recovered bool) {
	defer func() {
		if p := recover(); p != nil {
			out, count, recovered = "", 0, true
		}
	}()

	rng := rand.New(rand.NewSource(opts.Seed))

	info := collectScope(res.tree.RootNode(), res.source)
	eligible := info.eligible(r.builtins, protected)
	selected := sampleNames(eligible, opts.Ratio, rng, false)

	if len(selected) == 0 {
		return string(res.source), 0, false
	}

	nm := newNamer(opts.Strategy, rng)
	out, count = renameOccurrences(res.source, info.occurrences, selected, nm)

	return out, count, false
}

// EligibleNames reports the distinct renameable names of a program without
// renaming anything, using the same path selection as Rename. Used by the
// inspect command.
func (r *Renamer) EligibleNames(code string) ([]string, bool) {
	res := parsePython([]byte(code))
	if res.ok() {
		defer res.tree.Close()

		info := collectScope(res.tree.RootNode(), res.source)

		return info.eligible(r.builtins, nil), false
	}

	tokens := scanIdentifiers(code, scanSkipRegions(code))

	return lexicalEligible(tokens, r.builtins, nil), true
}
