package domain

import (
	"math"
	"math/rand"
)

// sampleNames picks the subset of eligible names to rename. Selection is
// over whole names, never occurrences: a selected name is renamed at every
// site, an unselected one at none, otherwise identifier binding would break.
//
// eligible must already be in a fixed order (eligible() sorts); count is
// floor(len * ratio) clamped to [0, len]. atLeastOne forces a minimum of one
// selected name when ratio > 0; the lexical fallback path uses that, the
// structural path permits a zero-size sample.
func sampleNames(eligible []string, ratio float64, rng *rand.Rand, atLeastOne bool) map[string]struct{} {
	if ratio < 0 {
		ratio = 0
	}

	if ratio > 1 {
		ratio = 1
	}

	n := len(eligible)
	selected := make(map[string]struct{}, n)

	if n == 0 || ratio == 0 {
		return selected
	}

	count := int(math.Floor(float64(n) * ratio))
	if atLeastOne && count < 1 {
		count = 1
	}

	if count >= n {
		for _, name := range eligible {
			selected[name] = struct{}{}
		}

		return selected
	}

	for _, idx := range rng.Perm(n)[:count] {
		selected[eligible[idx]] = struct{}{}
	}

	return selected
}
