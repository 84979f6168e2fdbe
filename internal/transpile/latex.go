package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/internal/ast"
)

// LaTeXTranspiler renders a full standalone LaTeX document, grounded on
// original_source/src/yuho/transpile/latex_preamble.py (document class,
// packages, illustrationbox and legaldefs environments, \statute macro)
// and latex_utils.py (character escaping and the node-to-LaTeX helpers).
type LaTeXTranspiler struct {
	Title      string
	Author     string
	UseMargins bool
}

func NewLaTeXTranspiler(title, author string, useMargins bool) *LaTeXTranspiler {
	if title == "" {
		title = "Yuho Statute Compendium"
	}
	if author == "" {
		author = "Generated by yuhoc"
	}
	return &LaTeXTranspiler{Title: title, Author: author, UseMargins: useMargins}
}

func (t *LaTeXTranspiler) Target() TranspileTarget { return TargetLaTeX }

func (t *LaTeXTranspiler) Transpile(m *ast.Module) (string, error) {
	var b strings.Builder
	t.preamble(&b)
	b.WriteString("\n\\begin{document}\n\\maketitle\n\n")
	for _, s := range m.Statutes {
		t.statute(&b, s)
	}
	b.WriteString("\\end{document}\n")
	return b.String(), nil
}

func (t *LaTeXTranspiler) preamble(b *strings.Builder) {
	fmt.Fprintln(b, `\documentclass[11pt,a4paper]{article}`)
	fmt.Fprintln(b, `\usepackage[utf8]{inputenc}`)
	fmt.Fprintln(b, `\usepackage[T1]{fontenc}`)
	fmt.Fprintln(b, `\usepackage{lmodern}`)
	if t.UseMargins {
		fmt.Fprintln(b, `\usepackage[margin=1in,marginparwidth=1.5in]{geometry}`)
		fmt.Fprintln(b, `\usepackage{marginnote}`)
	} else {
		fmt.Fprintln(b, `\usepackage[margin=1in]{geometry}`)
	}
	fmt.Fprintln(b, `\usepackage{microtype}`)
	fmt.Fprintln(b, `\usepackage{parskip}`)
	fmt.Fprintln(b, `\usepackage{xcolor}`)
	fmt.Fprintln(b, `\usepackage{tcolorbox}`)
	fmt.Fprintln(b, `\newtcolorbox{illustrationbox}{colback=gray!10,colframe=gray!40,fontupper=\itshape}`)
	fmt.Fprintln(b, `\usepackage{booktabs}`)
	fmt.Fprintln(b, `\usepackage{array}`)
	fmt.Fprintln(b, `\usepackage{longtable}`)
	fmt.Fprintln(b, `\usepackage{enumitem}`)
	fmt.Fprintln(b, `\newlist{legaldefs}{description}{1}`)
	fmt.Fprintln(b, `\setlist[legaldefs]{font=\normalfont\itshape,leftmargin=1.5em}`)
	fmt.Fprintln(b, `\usepackage{titlesec}`)
	fmt.Fprintln(b, `\titleformat{\section}{\normalfont\Large\bfseries}{Section \thesection}{1em}{}`)
	fmt.Fprintln(b, `\usepackage{hyperref}`)
	fmt.Fprintf(b, "\\hypersetup{colorlinks=true,linkcolor=blue!60!black,urlcolor=blue!60!black,pdftitle={%s},pdfauthor={%s}}\n",
		escapeLatex(t.Title), escapeLatex(t.Author))
	fmt.Fprintln(b, `\newcommand{\statute}[2]{\subsection*{Section #1 --- #2}\label{sec:#1}}`)
	fmt.Fprintln(b, `\newcommand{\sectionref}[1]{\hyperref[sec:#1]{Section~#1}}`)
	fmt.Fprintln(b, `\newcommand{\element}[2]{\textbf{#1}: #2}`)
	fmt.Fprintf(b, "\\title{%s}\n\\author{%s}\n\\date{\\today}\n", escapeLatex(t.Title), escapeLatex(t.Author))
}

func (t *LaTeXTranspiler) statute(b *strings.Builder, s *ast.Statute) {
	title := s.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(b, "\\statute{%s}{%s}\n\n", escapeLatex(s.Section), escapeLatex(title))

	if len(s.Definitions) > 0 {
		b.WriteString("\\begin{legaldefs}\n")
		for _, d := range s.Definitions {
			fmt.Fprintf(b, "\\item[%s] %s\n", escapeLatex(d.Name), exprToLatex(d.Value))
		}
		b.WriteString("\\end{legaldefs}\n\n")
	}

	if len(s.Elements) > 0 {
		b.WriteString("\\begin{itemize}\n")
		for _, e := range s.Elements {
			fmt.Fprintf(b, "\\item \\element{%s (%s)}{%s}\n",
				escapeLatex(e.Name), elementRoleLatex(e.Role), exprToLatex(e.Description))
		}
		b.WriteString("\\end{itemize}\n\n")
	}

	if s.Penalty != nil {
		t.penalty(b, s.Penalty)
	}

	for i, il := range s.Illustrations {
		fmt.Fprintf(b, "\\begin{illustrationbox}\nIllustration %d. %s\n\\end{illustrationbox}\n\n", i+1, escapeLatex(il.Text))
	}
}

func (t *LaTeXTranspiler) penalty(b *strings.Builder, p *ast.Penalty) {
	b.WriteString("\\begin{longtable}{@{}ll@{}}\n\\toprule\nPenalty component & Value \\\\\n\\midrule\n")
	if p.ImprisonmentMin != nil || p.ImprisonmentMax != nil {
		fmt.Fprintf(b, "Imprisonment & %s \\\\\n", latexRange(durationToLatex(p.ImprisonmentMin), durationToLatex(p.ImprisonmentMax)))
	}
	if p.FineMin != nil || p.FineMax != nil {
		fmt.Fprintf(b, "Fine & %s \\\\\n", latexRange(moneyToLatex(p.FineMin), moneyToLatex(p.FineMax)))
	}
	b.WriteString("\\bottomrule\n\\end{longtable}\n\n")
	if p.Text != "" {
		fmt.Fprintf(b, "%s\n\n", escapeLatex(p.Text))
	}
}

func latexRange(min, max string) string {
	switch {
	case min != "" && max != "":
		if min == max {
			return min
		}
		return min + " -- " + max
	case min != "":
		return "at least " + min
	case max != "":
		return "up to " + max
	default:
		return "---"
	}
}

func elementRoleLatex(r ast.ElementRole) string {
	switch r {
	case ast.RoleActusReus:
		return "actus reus"
	case ast.RoleMensRea:
		return "mens rea"
	case ast.RoleCircumstance:
		return "circumstance"
	default:
		return string(r)
	}
}

// escapeLatex ports latex_utils.py's escape_latex character table.
func escapeLatex(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\textbackslash{}`,
		`{`, `\{`,
		`}`, `\}`,
		"$", `\$`,
		`%`, `\%`,
		`&`, `\&`,
		`#`, `\#`,
		`_`, `\_`,
		`^`, `\textasciicircum{}`,
		`~`, `\textasciitilde{}`,
	)
	return replacer.Replace(s)
}

func operatorToLatex(op string) string {
	switch op {
	case "+":
		return "+"
	case "-":
		return "-"
	case "*":
		return `\times`
	case "/":
		return `\div`
	case "%":
		return `\bmod`
	case "==":
		return "="
	case "!=":
		return `\neq`
	case "<":
		return "<"
	case ">":
		return ">"
	case "<=":
		return `\leq`
	case ">=":
		return `\geq`
	case "&&":
		return `\textbf{and}`
	case "||":
		return `\textbf{or}`
	default:
		return escapeLatex(op)
	}
}

func durationToLatex(d *ast.Duration) string {
	if d == nil {
		return ""
	}
	txt := durationToEnglish(d)
	if txt == "no time" {
		return "---"
	}
	return escapeLatex(txt)
}

var latexCurrencySymbol = map[ast.Currency]string{
	ast.CurrencyUSD: "\\$",
	ast.CurrencySGD: "S\\$",
	ast.CurrencyEUR: `\texteuro{}`,
	ast.CurrencyGBP: `\textsterling{}`,
}

func moneyToLatex(m *ast.Money) string {
	if m == nil {
		return ""
	}
	sym, ok := latexCurrencySymbol[m.Currency]
	if !ok {
		sym = string(m.Currency) + " "
	}
	return fmt.Sprintf("%s%s", sym, formatThousands(float64(m.MinorUnits)/100.0))
}

func formatThousands(v float64) string {
	whole := int64(v)
	frac := v - float64(whole)
	s := fmt.Sprintf("%d", whole)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	result := string(out)
	if neg {
		result = "-" + result
	}
	return fmt.Sprintf("%s.%02d", result, int64(frac*100+0.5))
}

func typeRefToLatex(tr ast.TypeRef) string {
	switch v := tr.(type) {
	case nil:
		return `\texttt{void}`
	case *ast.BuiltinType:
		return `\texttt{` + escapeLatex(string(v.Kind)) + `}`
	case *ast.NamedType:
		return `\texttt{` + escapeLatex(v.Name) + `}`
	case *ast.OptionalType:
		return typeRefToLatex(v.Inner) + "?"
	case *ast.ArrayType:
		return "[" + typeRefToLatex(v.Elem) + "]"
	case *ast.GenericType:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = typeRefToLatex(a)
		}
		return `\texttt{` + escapeLatex(v.BaseName) + `}<` + strings.Join(args, ", ") + ">"
	default:
		return `\texttt{?}`
	}
}

// exprToLatex ports expr_to_latex's literal/identifier/operator
// formatting.
func exprToLatex(e ast.Expr) string {
	switch v := e.(type) {
	case nil:
		return "(unspecified)"
	case *ast.IntLit:
		return fmt.Sprintf("%d", v.Value)
	case *ast.FloatLit:
		return fmt.Sprintf("%g", v.Value)
	case *ast.BoolLit:
		if v.Value {
			return `\texttt{TRUE}`
		}
		return `\texttt{FALSE}`
	case *ast.StringLit:
		return "``" + escapeLatex(v.Value) + "''"
	case *ast.Identifier:
		return `\textit{` + escapeLatex(v.Name) + `}`
	case *ast.Money:
		return moneyToLatex(v)
	case *ast.Duration:
		return durationToLatex(v)
	case *ast.FieldAccess:
		return exprToLatex(v.Target) + `.\textit{` + escapeLatex(v.Field) + `}`
	case *ast.Binary:
		return fmt.Sprintf("%s %s %s", exprToLatex(v.Left), operatorToLatex(string(v.Op)), exprToLatex(v.Right))
	case *ast.Unary:
		if v.Op == ast.OpNot {
			return `\textit{not} ` + exprToLatex(v.Operand)
		}
		return "-" + exprToLatex(v.Operand)
	case *ast.PassExpr:
		return `\textit{no value}`
	default:
		return escapeLatex(fmt.Sprintf("%v", v))
	}
}

// patternToLatex ports pattern_to_latex's prose rendering of a match arm
// pattern.
func patternToLatex(p ast.Pattern) string {
	switch v := p.(type) {
	case *ast.WildcardPattern:
		return `\textit{otherwise}`
	case *ast.LiteralPattern:
		return "the value is " + exprToLatex(v.Value)
	case *ast.BindingPattern:
		return `the value (call it \textit{` + escapeLatex(v.Name) + `})`
	case *ast.StructPattern:
		fields := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			if f.Pattern != nil {
				fields[i] = escapeLatex(f.Name) + ": " + patternToLatex(f.Pattern)
			} else {
				fields[i] = escapeLatex(f.Name)
			}
		}
		return `it matches \texttt{` + escapeLatex(v.Constructor) + `} with ` + strings.Join(fields, ", ")
	default:
		return `\textit{anything}`
	}
}

// statementToLatex ports statement_to_latex's declarative rendering of a
// statement.
func statementToLatex(s ast.Stmt) string {
	switch v := s.(type) {
	case *ast.VariableDecl:
		if v.Value != nil {
			return fmt.Sprintf("Let %s be %s = %s.", escapeLatex(v.Name), typeRefToLatex(v.Type), exprToLatex(v.Value))
		}
		return fmt.Sprintf("Let %s be %s.", escapeLatex(v.Name), typeRefToLatex(v.Type))
	case *ast.Return:
		if v.Value != nil {
			return "Return " + exprToLatex(v.Value) + "."
		}
		return "Return."
	case *ast.Assignment:
		return fmt.Sprintf(`Set %s $\leftarrow$ %s.`, exprToLatex(v.Target), exprToLatex(v.Value))
	default:
		return ""
	}
}
