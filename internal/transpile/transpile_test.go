package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongahkia/yuho/internal/ast"
)

// fixtureModule builds one statute, s364 (voluntarily causing hurt),
// with a single actus reus element and a penalty, small enough for
// every transpiler target to exercise its per-node-kind code paths
// without needing a real parsed source file.
func fixtureModule() *ast.Module {
	statute := &ast.Statute{
		Section: "s364",
		Title:   "Voluntarily causing hurt",
		Elements: []*ast.Element{
			{
				Role:        ast.RoleActusReus,
				Name:        "causing_hurt",
				Description: &ast.StringLit{Value: "causes hurt to any person"},
			},
		},
		Penalty: &ast.Penalty{
			ImprisonmentMax: &ast.Duration{Years: 1},
			FineMax:         &ast.Money{Currency: ast.CurrencyUSD, MinorUnits: 100000},
			Text:            "imprisonment or fine or both",
		},
	}
	return &ast.Module{
		Statutes: []*ast.Statute{statute},
		TypeDefs: map[string]*ast.StructDef{},
	}
}

func TestJSONTranspiler_Transpile_EmitsTypeTaggedTree(t *testing.T) {
	tp := NewJSONTranspiler(false, 2)
	out, err := tp.Transpile(fixtureModule())
	require.NoError(t, err)
	assert.Contains(t, out, `"_type": "Module"`)
	assert.Contains(t, out, `"_type": "Statute"`)
	assert.Contains(t, out, `"section_number": "s364"`)
	assert.Contains(t, out, `"element_type": "actus_reus"`)
}

func TestJSONLDTranspiler_Transpile_EmitsContextAndGraph(t *testing.T) {
	tp := NewJSONLDTranspiler("https://yuho.dev/id/", false)
	out, err := tp.Transpile(fixtureModule())
	require.NoError(t, err)
	assert.Contains(t, out, `"@context"`)
	assert.Contains(t, out, `"@graph"`)
	assert.Contains(t, out, "https://yuho.dev/id/")
}

func TestEnglishTranspiler_Transpile_RendersStatuteProse(t *testing.T) {
	tp := NewEnglishTranspiler()
	out, err := tp.Transpile(fixtureModule())
	require.NoError(t, err)
	assert.Contains(t, out, "s364")
	assert.Contains(t, out, "Voluntarily causing hurt")
}

func TestLaTeXTranspiler_Transpile_EscapesAndEmitsStatuteMacro(t *testing.T) {
	tp := NewLaTeXTranspiler("Yuho Statutes", "", true)
	out, err := tp.Transpile(fixtureModule())
	require.NoError(t, err)
	assert.Contains(t, out, `\documentclass`)
	assert.Contains(t, out, `\statute{s364}`)
}

func TestEscapeLatex_EscapesSpecialCharacters(t *testing.T) {
	assert.Equal(t, `100\% \& rising`, escapeLatex(`100% & rising`))
}

func TestMermaidTranspiler_Transpile_EmitsFlowchartHeader(t *testing.T) {
	tp := NewMermaidTranspiler()
	out, err := tp.Transpile(fixtureModule())
	require.NoError(t, err)
	assert.Contains(t, out, "flowchart TD")
	assert.Contains(t, out, "s364")
}

func TestAlloyTranspiler_Transpile_EmitsSigPerStatute(t *testing.T) {
	tp := NewAlloyTranspiler()
	out, err := tp.Transpile(fixtureModule())
	require.NoError(t, err)
	assert.Contains(t, out, "sig")
	assert.Contains(t, out, "s364")
}
