package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/internal/ast"
)

// EnglishTranspiler renders a module as controlled natural language: one
// declarative paragraph per statute, elements listed by role, penalties
// itemized, illustrations quoted. No original_source file covers this
// target directly; the shape follows spec.md's description of a
// "plain-English summary suitable for a non-programmer reader".
type EnglishTranspiler struct{}

func NewEnglishTranspiler() *EnglishTranspiler { return &EnglishTranspiler{} }

func (t *EnglishTranspiler) Target() TranspileTarget { return TargetEnglish }

func (t *EnglishTranspiler) Transpile(m *ast.Module) (string, error) {
	var b strings.Builder
	if len(m.Statutes) == 0 {
		fmt.Fprintln(&b, "This module defines no statutes.")
	}
	for i, s := range m.Statutes {
		if i > 0 {
			b.WriteString("\n")
		}
		t.statute(&b, s)
	}
	return b.String(), nil
}

func (t *EnglishTranspiler) statute(b *strings.Builder, s *ast.Statute) {
	if s.Title != "" {
		fmt.Fprintf(b, "Section %s — %s\n", s.Section, s.Title)
	} else {
		fmt.Fprintf(b, "Section %s\n", s.Section)
	}

	if len(s.Definitions) > 0 {
		b.WriteString("\nDefinitions:\n")
		for _, d := range s.Definitions {
			fmt.Fprintf(b, "  %q means %s.\n", d.Name, exprToEnglish(d.Value))
		}
	}

	if len(s.Elements) > 0 {
		b.WriteString("\nTo be liable under this section, the following elements must be established:\n")
		for _, role := range []ast.ElementRole{ast.RoleActusReus, ast.RoleMensRea, ast.RoleCircumstance} {
			var inRole []*ast.Element
			for _, e := range s.Elements {
				if e.Role == role {
					inRole = append(inRole, e)
				}
			}
			if len(inRole) == 0 {
				continue
			}
			fmt.Fprintf(b, "  %s:\n", roleLabel(role))
			for _, e := range inRole {
				fmt.Fprintf(b, "    - %s: %s\n", e.Name, exprToEnglish(e.Description))
			}
		}
	}

	if s.Penalty != nil {
		b.WriteString("\nPenalty:\n")
		p := s.Penalty
		if p.ImprisonmentMin != nil || p.ImprisonmentMax != nil {
			fmt.Fprintf(b, "  Imprisonment: %s\n", rangeToEnglish(
				durationToEnglish(p.ImprisonmentMin), durationToEnglish(p.ImprisonmentMax)))
		}
		if p.FineMin != nil || p.FineMax != nil {
			fmt.Fprintf(b, "  Fine: %s\n", rangeToEnglish(
				moneyToEnglish(p.FineMin), moneyToEnglish(p.FineMax)))
		}
		if p.Text != "" {
			fmt.Fprintf(b, "  Additionally: %s\n", p.Text)
		}
	}

	if len(s.Illustrations) > 0 {
		b.WriteString("\nIllustrations:\n")
		for i, il := range s.Illustrations {
			fmt.Fprintf(b, "  (%d) %s\n", i+1, il.Text)
		}
	}
}

func roleLabel(r ast.ElementRole) string {
	switch r {
	case ast.RoleActusReus:
		return "Conduct (actus reus)"
	case ast.RoleMensRea:
		return "Mental state (mens rea)"
	case ast.RoleCircumstance:
		return "Circumstance"
	default:
		return string(r)
	}
}

func rangeToEnglish(min, max string) string {
	switch {
	case min != "" && max != "":
		if min == max {
			return min
		}
		return fmt.Sprintf("between %s and %s", min, max)
	case min != "":
		return "at least " + min
	case max != "":
		return "up to " + max
	default:
		return "unspecified"
	}
}

func durationToEnglish(d *ast.Duration) string {
	if d == nil {
		return ""
	}
	parts := []string{}
	add := func(n int64, unit string) {
		if n == 0 {
			return
		}
		if n == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", unit))
		} else {
			parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
		}
	}
	add(d.Years, "year")
	add(d.Months, "month")
	add(d.Days, "day")
	add(d.Hours, "hour")
	add(d.Minutes, "minute")
	add(d.Seconds, "second")
	if len(parts) == 0 {
		return "no time"
	}
	return strings.Join(parts, ", ")
}

func moneyToEnglish(m *ast.Money) string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s %.2f", string(m.Currency), float64(m.MinorUnits)/100.0)
}

// exprToEnglish renders a narrow set of expression shapes in prose;
// anything else (a Match, a Call, a struct literal, ...) renders as its
// Go type name, e.g. "*ast.Match".
func exprToEnglish(e ast.Expr) string {
	switch v := e.(type) {
	case nil:
		return "(unspecified)"
	case *ast.StringLit:
		return v.Value
	case *ast.IntLit:
		return fmt.Sprintf("%d", v.Value)
	case *ast.FloatLit:
		return fmt.Sprintf("%g", v.Value)
	case *ast.BoolLit:
		if v.Value {
			return "true"
		}
		return "false"
	case *ast.Identifier:
		return v.Name
	case *ast.Money:
		return moneyToEnglish(v)
	case *ast.Duration:
		return durationToEnglish(v)
	case *ast.Binary:
		return fmt.Sprintf("%s %s %s", exprToEnglish(v.Left), string(v.Op), exprToEnglish(v.Right))
	case *ast.Unary:
		return fmt.Sprintf("%s%s", string(v.Op), exprToEnglish(v.Operand))
	case *ast.FieldAccess:
		return fmt.Sprintf("%s's %s", exprToEnglish(v.Target), v.Field)
	case *ast.PassExpr:
		return "no value"
	default:
		return fmt.Sprintf("%T", v)
	}
}
