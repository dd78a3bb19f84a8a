package domain

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// parseResult carries either a usable tree or a diagnostic. Callers branch
// on ok() instead of unwinding; a failed parse is a normal outcome here.
type parseResult struct {
	tree   *sitter.Tree
	source []byte
	diag   string
}

func (r parseResult) ok() bool {
	return r.tree != nil
}

// parsePython parses source with the Tree-sitter Python grammar. A tree
// containing ERROR or missing nodes counts as a failed parse.
func parsePython(src []byte) parseResult {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return parseResult{diag: err.Error()}
	}

	root := tree.RootNode()
	if root.HasError() {
		diag := describeFirstError(root)
		tree.Close()

		return parseResult{diag: diag}
	}

	return parseResult{tree: tree, source: src}
}

// CheckSyntax reports whether code parses as Python, with a diagnostic for
// the first offending position when it does not.
func CheckSyntax(code string) (bool, string) {
	res := parsePython([]byte(code))
	if !res.ok() {
		return false, res.diag
	}

	res.tree.Close()

	return true, ""
}

// describeFirstError locates the first ERROR or missing node in the tree.
func describeFirstError(root *sitter.Node) string {
	if bad := firstErrorNode(root); bad != nil {
		point := bad.StartPoint()
		if bad.IsMissing() {
			return fmt.Sprintf("missing %s at line %d, column %d", bad.Type(), point.Row+1, point.Column+1)
		}

		return fmt.Sprintf("syntax error at line %d, column %d", point.Row+1, point.Column+1)
	}

	return "syntax error"
}

func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	if !n.HasError() {
		return nil
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstErrorNode(n.Child(i)); bad != nil {
			return bad
		}
	}

	return n
}
