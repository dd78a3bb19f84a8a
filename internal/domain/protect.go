package domain

// ProtectedNames extracts the set of identifiers appearing in the protected
// prefix; none of them may ever be renamed, regardless of eligibility.
// The prefix is parsed structurally when possible (declared names, uses,
// parameters, handler bindings, import aliases); when it does not parse,
// every identifier-shaped token counts. An empty prefix yields an empty
// set: protection is opt-in. The input is never mutated.
func ProtectedNames(prefix string) map[string]struct{} {
	names := make(map[string]struct{})

	if prefix == "" {
		return names
	}

	res := parsePython([]byte(prefix))
	if res.ok() {
		defer res.tree.Close()

		info := collectScope(res.tree.RootNode(), res.source)

		for _, occ := range info.occurrences {
			names[occ.name] = struct{}{}
		}

		for name := range info.importNames {
			names[name] = struct{}{}
		}

		return names
	}

	for _, tok := range scanIdentifiers(prefix, nil) {
		names[tok.name] = struct{}{}
	}

	return names
}
