package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/internal/ast"
)

// MermaidTranspiler renders a module as a `flowchart TD`, grounded on
// original_source/archive/yuho_v4/transpilers/mermaid_transpiler.py's
// MermaidTranspiler: each statute becomes a subgraph with its section
// node branching into definitions, elements-by-role, and a penalty
// node; each match expression in a statute's definitions becomes a
// decision diamond branching into one node per arm.
type MermaidTranspiler struct {
	counter int
}

func NewMermaidTranspiler() *MermaidTranspiler { return &MermaidTranspiler{} }

func (t *MermaidTranspiler) Target() TranspileTarget { return TargetMermaid }

func (t *MermaidTranspiler) nextID(prefix string) string {
	t.counter++
	return fmt.Sprintf("%s%d", prefix, t.counter)
}

func (t *MermaidTranspiler) Transpile(m *ast.Module) (string, error) {
	t.counter = 0
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	for i, s := range m.Statutes {
		t.statute(&b, s, i)
	}
	return b.String(), nil
}

func (t *MermaidTranspiler) statute(b *strings.Builder, s *ast.Statute, idx int) {
	secID := t.nextID("SEC")
	label := s.Section
	if s.Title != "" {
		label += ": " + s.Title
	}
	fmt.Fprintf(b, "    subgraph statute%d[%q]\n", idx, label)
	fmt.Fprintf(b, "    %s[%s]\n", secID, mermaidText(label))

	for _, d := range s.Definitions {
		defID := t.nextID("DEF")
		fmt.Fprintf(b, "    %s[%s]\n", defID, mermaidText(d.Name))
		fmt.Fprintf(b, "    %s --> %s\n", secID, defID)
		if match, ok := d.Value.(*ast.Match); ok {
			t.match(b, match, defID)
		}
	}

	for _, role := range []ast.ElementRole{ast.RoleActusReus, ast.RoleMensRea, ast.RoleCircumstance} {
		for _, e := range s.Elements {
			if e.Role != role {
				continue
			}
			elemID := t.nextID("EL")
			fmt.Fprintf(b, "    %s[%s: %s]\n", elemID, string(role), mermaidText(e.Name))
			fmt.Fprintf(b, "    %s --> %s\n", secID, elemID)
		}
	}

	if s.Penalty != nil {
		penID := t.nextID("PEN")
		fmt.Fprintf(b, "    %s{Penalty}\n", penID)
		fmt.Fprintf(b, "    %s --> %s\n", secID, penID)
	}

	b.WriteString("    end\n")
}

func (t *MermaidTranspiler) match(b *strings.Builder, m *ast.Match, parentID string) {
	matchID := t.nextID("MATCH")
	fmt.Fprintf(b, "    %s{Match}\n", matchID)
	fmt.Fprintf(b, "    %s --> %s\n", parentID, matchID)
	for i, arm := range m.Arms {
		armID := t.nextID("ARM")
		label := patternSummary(arm.Pattern)
		if i == len(m.Arms)-1 && isCatchAllPattern(arm) {
			label = "otherwise"
		}
		fmt.Fprintf(b, "    %s[%s]\n", armID, mermaidText(label))
		fmt.Fprintf(b, "    %s --> %s\n", matchID, armID)
	}
}

func patternSummary(p ast.Pattern) string {
	switch v := p.(type) {
	case *ast.WildcardPattern:
		return "otherwise"
	case *ast.LiteralPattern:
		return exprToEnglish(v.Value)
	case *ast.BindingPattern:
		return v.Name
	case *ast.StructPattern:
		return v.Constructor
	default:
		return "case"
	}
}

// mermaidText sanitizes a label for inclusion inside `[...]`/`{...}`
// node syntax.
func mermaidText(s string) string {
	s = strings.ReplaceAll(s, "[", "(")
	s = strings.ReplaceAll(s, "]", ")")
	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")
	s = strings.ReplaceAll(s, "\"", "'")
	return s
}
