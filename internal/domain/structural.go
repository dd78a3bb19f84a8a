package domain

// edit is a pending byte-range replacement in the original source.
type edit struct {
	start       uint32
	end         uint32
	replacement string
}

// renameOccurrences builds the name mapping in document order and rewrites
// every selected occurrence in place. Walking in document order registers a
// definition's replacement before its body is reached, so recursive
// self-references and later reads resolve to the same fresh name.
//
// Returns the rewritten source and the number of distinct names renamed.
func renameOccurrences(src []byte, occurrences []occurrence, selected map[string]struct{}, nm *namer) (string, int) {
	mapping := make(map[string]string, len(selected))

	var edits []edit

	for _, occ := range occurrences {
		if _, ok := selected[occ.name]; !ok {
			continue
		}

		replacement, ok := mapping[occ.name]
		if !ok {
			replacement = nm.fresh()
			mapping[occ.name] = replacement
		}

		edits = append(edits, edit{start: occ.start, end: occ.end, replacement: replacement})
	}

	return string(applyEdits(src, edits)), len(mapping)
}

// applyEdits rewrites the byte ranges back to front so earlier offsets stay
// valid. Edits must be non-overlapping and sorted ascending, which document
// order guarantees.
func applyEdits(content []byte, edits []edit) []byte {
	for i := len(edits) - 1; i >= 0; i-- {
		content = replaceRange(content, int(edits[i].start), int(edits[i].end), edits[i].replacement)
	}

	return content
}

func replaceRange(content []byte, start, end int, replacement string) []byte {
	if start < 0 || end < start || end > len(content) {
		return content
	}

	mutated := make([]byte, 0, len(content)-(end-start)+len(replacement))
	mutated = append(mutated, content[:start]...)
	mutated = append(mutated, []byte(replacement)...)
	mutated = append(mutated, content[end:]...)

	return mutated
}
