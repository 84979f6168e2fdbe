// Package transpile renders an analyzed Yuho module into an external
// representation: JSON and JSON-LD for tooling interop, controlled
// English and a LaTeX document for human review, a Mermaid flowchart
// for visualization, and an Alloy model for formal exploration of a
// statute's element/penalty structure.
package transpile

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho/internal/ast"
)

// TranspileTarget is the closed set of output formats a Transpiler can
// produce, mirroring original_source/src/yuho/transpile/base.py's
// TranspileTarget enum. GraphQL and Blocks targets exist in that source
// but are out of scope here.
type TranspileTarget string

const (
	TargetJSON    TranspileTarget = "json"
	TargetJSONLD  TranspileTarget = "jsonld"
	TargetEnglish TranspileTarget = "english"
	TargetLaTeX   TranspileTarget = "latex"
	TargetMermaid TranspileTarget = "mermaid"
	TargetAlloy   TranspileTarget = "alloy"
)

// targetAliases mirrors TranspileTarget.from_string's case-insensitive
// alias table.
var targetAliases = map[string]TranspileTarget{
	"json":    TargetJSON,
	"jsonld":  TargetJSONLD,
	"json-ld": TargetJSONLD,
	"json_ld": TargetJSONLD,
	"english": TargetEnglish,
	"en":      TargetEnglish,
	"latex":   TargetLaTeX,
	"tex":     TargetLaTeX,
	"mermaid": TargetMermaid,
	"mmd":     TargetMermaid,
	"alloy":   TargetAlloy,
	"als":     TargetAlloy,
}

// ParseTarget resolves a user-supplied target name, accepting the
// aliases above, case-insensitively.
func ParseTarget(name string) (TranspileTarget, error) {
	t, ok := targetAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown transpile target %q", name)
	}
	return t, nil
}

// FileExtension returns the conventional file suffix for t, mirroring
// TranspileTarget.file_extension.
func (t TranspileTarget) FileExtension() string {
	switch t {
	case TargetJSON:
		return ".json"
	case TargetJSONLD:
		return ".jsonld"
	case TargetEnglish:
		return ".txt"
	case TargetLaTeX:
		return ".tex"
	case TargetMermaid:
		return ".mmd"
	case TargetAlloy:
		return ".als"
	default:
		return ""
	}
}

// Transpiler renders a Module to its target's textual representation.
type Transpiler interface {
	Target() TranspileTarget
	Transpile(m *ast.Module) (string, error)
}
