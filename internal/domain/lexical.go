package domain

import (
	"math/rand"
	"sort"
	"strings"

	m "github.com/mouse-blink/rinse/internal/model"
)

// The lexical fallback renames identifiers with a token scan instead of a
// tree. It is used when structural parsing fails, preserves all original
// text outside the rewritten tokens, and never fails itself: with no
// eligible names the output equals the input.

// skipRegion is a span of source the lexical renamer must not rewrite:
// a string literal or a comment.
type skipRegion struct {
	start int
	end   int
}

// lexToken is an identifier-shaped token outside every skip region.
type lexToken struct {
	name     string
	start    int
	end      int
	excluded bool // attribute or call position
}

// renameLexical rewrites raw source text. Eligibility, region skipping and
// the call/attribute exclusion are re-derived lexically. When ratio > 0 at
// least one name is renamed, unlike the structural path where the sampled
// count may floor to zero.
func renameLexical(code string, opts m.Options, builtins Builtins, protected map[string]struct{}) (string, int) {
	regions := scanSkipRegions(code)
	tokens := scanIdentifiers(code, regions)

	eligible := lexicalEligible(tokens, builtins, protected)
	if len(eligible) == 0 {
		return code, 0
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	selected := sampleNames(eligible, opts.Ratio, rng, true)
	nm := newNamer(opts.Strategy, rng)

	mapping := make(map[string]string, len(selected))

	var out strings.Builder

	out.Grow(len(code))

	prev := 0

	for _, tok := range tokens {
		if tok.excluded {
			continue
		}

		if _, ok := selected[tok.name]; !ok {
			continue
		}

		replacement, ok := mapping[tok.name]
		if !ok {
			replacement = nm.fresh()
			mapping[tok.name] = replacement
		}

		out.WriteString(code[prev:tok.start])
		out.WriteString(replacement)
		prev = tok.end
	}

	out.WriteString(code[prev:])

	return out.String(), len(mapping)
}

// lexicalEligible collects the sorted distinct names of surviving tokens.
func lexicalEligible(tokens []lexToken, builtins Builtins, protected map[string]struct{}) []string {
	seen := make(map[string]struct{})

	var names []string

	for _, tok := range tokens {
		if tok.excluded {
			continue
		}

		if _, dup := seen[tok.name]; dup {
			continue
		}

		seen[tok.name] = struct{}{}

		if builtins.Has(tok.name) || isDunder(tok.name) {
			continue
		}

		if _, ok := protected[tok.name]; ok {
			continue
		}

		names = append(names, tok.name)
	}

	sort.Strings(names)

	return names
}

// scanSkipRegions locates string literals and comments in one left-to-right
// pass. Triple-quote delimiters take priority over single-character quotes
// so multi-line literals are not split at their first quote.
func scanSkipRegions(src string) []skipRegion {
	var regions []skipRegion

	i := 0
	for i < len(src) {
		switch {
		case src[i] == '#':
			end := i
			for end < len(src) && src[end] != '\n' {
				end++
			}

			regions = append(regions, skipRegion{start: i, end: end})
			i = end

		case hasTripleQuote(src, i):
			quote := src[i : i+3]

			end := strings.Index(src[i+3:], quote)
			if end < 0 {
				regions = append(regions, skipRegion{start: i, end: len(src)})
				return regions
			}

			regions = append(regions, skipRegion{start: i, end: i + 3 + end + 3})
			i += 3 + end + 3

		case src[i] == '\'' || src[i] == '"':
			regions = append(regions, scanSingleQuote(src, i))
			i = regions[len(regions)-1].end

		default:
			i++
		}
	}

	return regions
}

func hasTripleQuote(src string, i int) bool {
	if i+3 > len(src) {
		return false
	}

	return src[i:i+3] == `"""` || src[i:i+3] == "'''"
}

// scanSingleQuote consumes a single-line string literal, honoring backslash
// escapes. An unterminated literal ends at the line break.
func scanSingleQuote(src string, start int) skipRegion {
	quote := src[start]

	i := start + 1
	for i < len(src) && src[i] != '\n' {
		if src[i] == '\\' && i+1 < len(src) {
			i += 2
			continue
		}

		if src[i] == quote {
			return skipRegion{start: start, end: i + 1}
		}

		i++
	}

	return skipRegion{start: start, end: i}
}

// scanIdentifiers finds identifier-shaped tokens outside skip regions and
// tags attribute reads (preceded by a dot) and call targets (followed by
// optional spaces then an opening parenthesis) as excluded. Without a tree
// there is no way to tell a local callable from a library one, so call
// targets are never rewritten here.
func scanIdentifiers(src string, regions []skipRegion) []lexToken {
	var tokens []lexToken

	region := 0
	i := 0

	for i < len(src) {
		for region < len(regions) && i >= regions[region].end {
			region++
		}

		if region < len(regions) && i >= regions[region].start {
			i = regions[region].end
			continue
		}

		if !isIdentStart(src[i]) || (i > 0 && isIdentPart(src[i-1])) {
			i++
			continue
		}

		end := i + 1
		for end < len(src) && isIdentPart(src[end]) {
			end++
		}

		tokens = append(tokens, lexToken{
			name:     src[i:end],
			start:    i,
			end:      end,
			excluded: isAttributePosition(src, i) || isCallPosition(src, end),
		})
		i = end
	}

	return tokens
}

func isAttributePosition(src string, start int) bool {
	return start > 0 && src[start-1] == '.'
}

func isCallPosition(src string, end int) bool {
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}

	return end < len(src) && src[end] == '('
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
