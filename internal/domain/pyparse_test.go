package domain

import (
	"strings"
	"testing"
)

func TestCheckSyntax_Valid(t *testing.T) {
	programs := []string{
		"x = 1\n",
		"def f(a, b=1, *args, **kwargs):\n    return a\n",
		"class C:\n    pass\n",
		"",
	}

	for _, code := range programs {
		if ok, diag := CheckSyntax(code); !ok {
			t.Errorf("CheckSyntax(%q) failed: %s", code, diag)
		}
	}
}

func TestCheckSyntax_Invalid(t *testing.T) {
	ok, diag := CheckSyntax("def broken(:\n    x = 1\n")
	if ok {
		t.Fatalf("expected a syntax failure")
	}

	if !strings.Contains(diag, "line") {
		t.Fatalf("diagnostic must locate the error, got %q", diag)
	}
}

func TestParsePython_ReleasesTreeOnError(t *testing.T) {
	res := parsePython([]byte("def broken(:"))
	if res.ok() {
		t.Fatalf("expected a parse failure")
	}

	if res.tree != nil {
		t.Fatalf("failed parses must not leak the tree")
	}
}
