package domain

import (
	"strings"
	"testing"
)

func TestAnchorPrefix_RestoresExactPrefix(t *testing.T) {
	// Renaming drifted the prefix whitespace; the anchor must restore it.
	protected := "import A\n"
	code := "import  A\nvar_1 = 123\n"

	out, ok := AnchorPrefix(code, protected)
	if !ok {
		t.Fatalf("expected a full prefix match")
	}

	// The match stops right after the prefix's last non-whitespace
	// character, so the code's own newline follows the restored prefix.
	want := "import A\n\nvar_1 = 123\n"
	if out != want {
		t.Fatalf("AnchorPrefix = %q, want %q", out, want)
	}

	if !strings.HasPrefix(out, protected) {
		t.Fatalf("output must start with the exact protected prefix")
	}
}

func TestAnchorPrefix_MultilinePrefix(t *testing.T) {
	protected := "def solve(items):\n    \"\"\"Solve it.\"\"\"\n"
	code := "def solve(items):\n    \"\"\"Solve it.\"\"\"\n    return items\n"

	out, ok := AnchorPrefix(code, protected)
	if !ok {
		t.Fatalf("expected a full prefix match")
	}

	if !strings.HasPrefix(out, protected) {
		t.Fatalf("output must start with the exact protected prefix, got %q", out)
	}

	if !strings.HasSuffix(out, "    return items\n") {
		t.Fatalf("remainder after the match must be kept, got %q", out)
	}
}

func TestAnchorPrefix_MismatchReturnsInputUnchanged(t *testing.T) {
	code := "import B\nx = 1\n"

	out, ok := AnchorPrefix(code, "import A\n")
	if ok {
		t.Fatalf("expected no match")
	}

	if out != code {
		t.Fatalf("mismatch must be non-destructive, got %q", out)
	}
}

func TestAnchorPrefix_PrefixNotFullyConsumed(t *testing.T) {
	code := "import A"

	out, ok := AnchorPrefix(code, "import A\nimport B\n")
	if ok {
		t.Fatalf("expected no match when the code ends early")
	}

	if out != code {
		t.Fatalf("partial consumption must be non-destructive, got %q", out)
	}
}

func TestAnchorPrefix_EmptyInputs(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		protected string
	}{
		{"empty protected", "x = 1\n", ""},
		{"empty code", "", "import A\n"},
		{"whitespace-only protected", "x = 1\n", " \n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := AnchorPrefix(tt.code, tt.protected)
			if ok {
				t.Fatalf("expected no anchoring")
			}

			if out != tt.code {
				t.Fatalf("expected input unchanged, got %q", out)
			}
		})
	}
}
