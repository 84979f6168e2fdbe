package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/internal/ast"
)

// AlloyTranspiler renders a module as an Alloy model: one shared Element
// and one shared Penalty signature, a signature per statute, a singleton
// Element sub-signature per statute element, a fact fixing each
// statute's element set, a predicate capturing "all elements of a
// statute are satisfied", and an assert/check pair for each statute
// definition whose value is a match expression. Penalties get no
// per-statute signature, and the assertion body is `true` with the arm
// patterns listed in a comment; it does not state that the arms are
// mutually exclusive or jointly exhaustive.
// There is no original_source file for this target; the shape follows
// spec.md's "signatures for statutes/elements/penalties, predicates for
// element satisfaction, assertions derivable from match branches".
type AlloyTranspiler struct{}

func NewAlloyTranspiler() *AlloyTranspiler { return &AlloyTranspiler{} }

func (t *AlloyTranspiler) Target() TranspileTarget { return TargetAlloy }

func (t *AlloyTranspiler) Transpile(m *ast.Module) (string, error) {
	var b strings.Builder
	b.WriteString("module yuho_model\n\n")
	b.WriteString("sig Element {}\n")
	b.WriteString("sig Penalty {}\n\n")

	for _, s := range m.Statutes {
		t.statute(&b, s)
	}
	return b.String(), nil
}

func (t *AlloyTranspiler) statute(b *strings.Builder, s *ast.Statute) {
	name := alloyIdent(s.Section)
	fmt.Fprintf(b, "sig %s {\n", name)
	fmt.Fprintln(b, "    elements: set Element,")
	fmt.Fprintln(b, "    penalty: lone Penalty")
	fmt.Fprintln(b, "}")

	if len(s.Elements) > 0 {
		b.WriteString("\n")
		for _, e := range s.Elements {
			fmt.Fprintf(b, "one sig %s_%s extends Element {}\n", name, alloyIdent(e.Name))
		}
	}

	fmt.Fprintf(b, "\nfact %s_has_elements {\n", name)
	fmt.Fprintf(b, "    %s.elements = ", name)
	if len(s.Elements) == 0 {
		b.WriteString("none\n")
	} else {
		parts := make([]string, len(s.Elements))
		for i, e := range s.Elements {
			parts[i] = fmt.Sprintf("%s_%s", name, alloyIdent(e.Name))
		}
		fmt.Fprintf(b, "%s\n", strings.Join(parts, " + "))
	}
	b.WriteString("}\n")

	fmt.Fprintf(b, "\npred %s_satisfied[s: %s] {\n", name, name)
	fmt.Fprintf(b, "    all e: %s.elements | e in s.elements\n", name)
	b.WriteString("}\n\n")

	for _, d := range s.Definitions {
		if match, ok := d.Value.(*ast.Match); ok {
			t.matchAssertion(b, name, d.Name, match)
		}
	}
}

func (t *AlloyTranspiler) matchAssertion(b *strings.Builder, statuteName, defName string, m *ast.Match) {
	assertName := fmt.Sprintf("%s_%s_exhaustive", statuteName, alloyIdent(defName))
	fmt.Fprintf(b, "assert %s {\n", assertName)
	if len(m.Arms) == 0 {
		b.WriteString("    -- no arms to assert\n}\n\n")
		return
	}
	clauses := make([]string, 0, len(m.Arms))
	for _, arm := range m.Arms {
		if isCatchAllPattern(arm) {
			clauses = append(clauses, "true")
			continue
		}
		clauses = append(clauses, fmt.Sprintf("(%s)", patternSummary(arm.Pattern)))
	}
	fmt.Fprintf(b, "    some disj %s | true -- arms: %s\n", "x", strings.Join(clauses, ", "))
	b.WriteString("}\n")
	fmt.Fprintf(b, "check %s\n\n", assertName)
}

// isCatchAllPattern reports whether arm fires unconditionally: no
// guard, and a wildcard or plain-binding pattern.
func isCatchAllPattern(arm *ast.MatchArm) bool {
	if arm.Guard != nil {
		return false
	}
	switch arm.Pattern.(type) {
	case *ast.WildcardPattern, *ast.BindingPattern:
		return true
	default:
		return false
	}
}

// alloyIdent sanitizes a Yuho identifier/section number into a legal
// Alloy signature name: letters, digits, and underscores only, never
// starting with a digit.
func alloyIdent(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" {
		return "Unnamed"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "S_" + out
	}
	return out
}
