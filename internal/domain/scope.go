package domain

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// role classifies an identifier occurrence. Declarations and uses are both
// rename sites; the role decides nothing beyond reporting, because selection
// works on whole names.
type role int

const (
	roleUse role = iota
	roleFunction
	roleClass
	roleParameter
	roleHandler
)

// occurrence is a single identifier site in the parse tree, addressed by
// its byte range in the original source.
type occurrence struct {
	name  string
	start uint32
	end   uint32
	role  role
}

// scopeInfo is the result of one full traversal of a parsed program.
type scopeInfo struct {
	// occurrences holds every renameable identifier site in document order.
	occurrences []occurrence
	// importNames holds names bound by import statements: the alias, or the
	// first segment of a dotted module path.
	importNames map[string]struct{}
	functions   map[string]struct{}
	classes     map[string]struct{}
}

// eligible returns the sorted distinct names that pass every static
// exclusion rule. Sorting fixes the iteration order the sampler relies on.
func (s *scopeInfo) eligible(builtins Builtins, protected map[string]struct{}) []string {
	seen := make(map[string]struct{})

	var names []string

	for _, occ := range s.occurrences {
		if _, dup := seen[occ.name]; dup {
			continue
		}

		seen[occ.name] = struct{}{}

		if !s.baseEligible(occ.name, builtins, protected) {
			continue
		}

		names = append(names, occ.name)
	}

	sort.Strings(names)

	return names
}

func (s *scopeInfo) baseEligible(name string, builtins Builtins, protected map[string]struct{}) bool {
	if builtins.Has(name) || isDunder(name) {
		return false
	}

	if _, ok := s.importNames[name]; ok {
		return false
	}

	if _, ok := protected[name]; ok {
		return false
	}

	return true
}

// collectScope walks the tree once, registering every identifier occurrence
// and the import-bound, function, and class name sets.
func collectScope(root *sitter.Node, src []byte) *scopeInfo {
	c := &collector{
		src: src,
		info: &scopeInfo{
			importNames: make(map[string]struct{}),
			functions:   make(map[string]struct{}),
			classes:     make(map[string]struct{}),
		},
	}
	c.walk(root)

	return c.info
}

type collector struct {
	src  []byte
	info *scopeInfo
}

func (c *collector) text(n *sitter.Node) string {
	return string(c.src[n.StartByte():n.EndByte()])
}

func (c *collector) add(n *sitter.Node, r role) {
	c.info.occurrences = append(c.info.occurrences, occurrence{
		name:  c.text(n),
		start: n.StartByte(),
		end:   n.EndByte(),
		role:  r,
	})
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

func (c *collector) walk(n *sitter.Node) {
	switch n.Type() {
	case "import_statement", "future_import_statement":
		c.bindImports(n)
		return

	case "import_from_statement":
		c.bindFromImports(n)
		return

	case "attribute":
		// The attribute field is a member name, never a binding site.
		if obj := n.ChildByFieldName("object"); obj != nil {
			c.walk(obj)
		}
		return

	case "keyword_argument":
		// f(count=x): count is a parameter reference at the callee, x is a use.
		if value := n.ChildByFieldName("value"); value != nil {
			c.walk(value)
		}
		return

	case "function_definition":
		c.definition(n, roleFunction)
		return

	case "class_definition":
		c.definition(n, roleClass)
		return

	case "parameters", "lambda_parameters":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			c.parameter(n.NamedChild(i))
		}
		return

	case "except_clause":
		c.exceptClause(n)
		return

	case "identifier":
		c.add(n, roleUse)
		return

	case "string":
		// Descend only into interpolations; string content is a literal.
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == "interpolation" {
				c.walk(child)
			}
		}
		return
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c.walk(n.NamedChild(i))
	}
}

// definition registers a function or class name before walking the rest of
// the node, so the declared name precedes parameters and body occurrences.
func (c *collector) definition(n *sitter.Node, r role) {
	name := n.ChildByFieldName("name")
	if name != nil && name.Type() == "identifier" {
		c.add(name, r)

		if r == roleFunction {
			c.info.functions[c.text(name)] = struct{}{}
		} else {
			c.info.classes[c.text(name)] = struct{}{}
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if sameNode(child, name) {
			continue
		}

		c.walk(child)
	}
}

// parameter registers binding names in a parameter list. Annotations and
// default values contain ordinary uses and go back through walk.
func (c *collector) parameter(n *sitter.Node) {
	switch n.Type() {
	case "identifier":
		c.add(n, roleParameter)

	case "default_parameter", "typed_default_parameter":
		if name := n.ChildByFieldName("name"); name != nil {
			c.parameter(name)
		}

		if typ := n.ChildByFieldName("type"); typ != nil {
			c.walk(typ)
		}

		if value := n.ChildByFieldName("value"); value != nil {
			c.walk(value)
		}

	case "typed_parameter":
		typ := n.ChildByFieldName("type")

		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if sameNode(child, typ) {
				c.walk(child)
				continue
			}

			c.parameter(child)
		}

	case "list_splat_pattern", "dictionary_splat_pattern", "tuple_pattern":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			c.parameter(n.NamedChild(i))
		}
	}
}

// exceptClause registers the "as" alias as a handler binding; the exception
// expression itself is an ordinary use.
func (c *collector) exceptClause(n *sitter.Node) {
	count := int(n.NamedChildCount())

	for i := 0; i < count; i++ {
		child := n.NamedChild(i)

		// except Expr as alias: block  ->  [Expr, alias, block]
		if i == 1 && count >= 3 && child.Type() == "identifier" {
			c.add(child, roleHandler)
			continue
		}

		c.walk(child)
	}
}

// bindImports handles "import a.b, c as d": the bound name is the alias or
// the first segment of the dotted path. Nothing inside an import statement
// is a rename site, so the subtree is not walked further.
func (c *collector) bindImports(n *sitter.Node) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)

		switch child.Type() {
		case "dotted_name", "identifier":
			c.bindDottedHead(child)
		case "aliased_import":
			if alias := child.ChildByFieldName("alias"); alias != nil {
				c.info.importNames[c.text(alias)] = struct{}{}
			}
		}
	}
}

// bindFromImports handles "from m import x, y as z": bound names are the
// imported names or their aliases, never the module path.
func (c *collector) bindFromImports(n *sitter.Node) {
	module := n.ChildByFieldName("module_name")

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if sameNode(child, module) {
			continue
		}

		switch child.Type() {
		case "dotted_name", "identifier":
			c.bindFullName(child)
		case "aliased_import":
			if alias := child.ChildByFieldName("alias"); alias != nil {
				c.info.importNames[c.text(alias)] = struct{}{}
			}
		}
	}
}

// bindDottedHead binds the first identifier segment of a dotted module path.
func (c *collector) bindDottedHead(n *sitter.Node) {
	if n.Type() == "identifier" {
		c.info.importNames[c.text(n)] = struct{}{}
		return
	}

	if first := n.NamedChild(0); first != nil && first.Type() == "identifier" {
		c.info.importNames[c.text(first)] = struct{}{}
	}
}

// bindFullName binds the full imported name ("from a import b" binds b).
func (c *collector) bindFullName(n *sitter.Node) {
	c.info.importNames[c.text(n)] = struct{}{}
}
