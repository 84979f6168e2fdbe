package transpile

import (
	"encoding/json"
	"fmt"

	"github.com/gongahkia/yuho/internal/ast"
)

// JSONTranspiler serializes a Module as a `_type`-tagged tree, a direct
// port of json_transpiler.py's JSONTranspiler. Every node becomes an
// object carrying its Go type name under "_type" plus one entry per
// field; IncludeLocations additionally attaches a "_loc" span. Keys are
// snake_case names that often differ from the Go field names (Section
// becomes "section_number", Role "element_type", Penalty.Text
// "supplementary"). No JSON-to-AST builder exists in this package.
type JSONTranspiler struct {
	IncludeLocations bool
	Indent           int
}

func NewJSONTranspiler(includeLocations bool, indent int) *JSONTranspiler {
	return &JSONTranspiler{IncludeLocations: includeLocations, Indent: indent}
}

func (t *JSONTranspiler) Target() TranspileTarget { return TargetJSON }

func (t *JSONTranspiler) Transpile(m *ast.Module) (string, error) {
	doc := t.toMap(m)
	var (
		data []byte
		err  error
	)
	if t.Indent > 0 {
		data, err = json.MarshalIndent(doc, "", spaces(t.Indent))
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", fmt.Errorf("transpile: json: %w", err)
	}
	return string(data), nil
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func (t *JSONTranspiler) withLoc(m *OrderedMap, n ast.Node) *OrderedMap {
	if !t.IncludeLocations {
		return m
	}
	sp := n.NodeSpan()
	loc := NewOrderedMap().
		Set("line", sp.StartLine).
		Set("col", sp.StartCol).
		Set("end_line", sp.EndLine).
		Set("end_col", sp.EndCol)
	return m.Set("_loc", loc)
}

func (t *JSONTranspiler) node(typeName string, n ast.Node) *OrderedMap {
	m := NewOrderedMap().Set("_type", typeName)
	return t.withLoc(m, n)
}

// toMap dispatches over every node kind, mirroring _to_dict's isinstance
// chain. The argument is `any`; a value of a type with no case below
// renders as an "<unsupported node %T>" string.
func (t *JSONTranspiler) toMap(n any) any {
	switch v := n.(type) {
	case nil:
		return nil

	case *ast.IntLit:
		return t.node("IntLit", v).Set("value", v.Value)
	case *ast.FloatLit:
		return t.node("FloatLit", v).Set("value", v.Value)
	case *ast.BoolLit:
		return t.node("BoolLit", v).Set("value", v.Value)
	case *ast.StringLit:
		return t.node("StringLit", v).Set("value", v.Value)
	case *ast.Money:
		return t.node("Money", v).
			Set("currency", string(v.Currency)).
			Set("minor_units", v.MinorUnits)
	case *ast.Percent:
		return t.node("Percent", v).Set("scaled_value", v.ScaledValue)
	case *ast.Date:
		return t.node("Date", v).
			Set("year", v.Year).Set("month", v.Month).Set("day", v.Day)
	case *ast.Duration:
		return t.node("Duration", v).
			Set("years", v.Years).Set("months", v.Months).Set("days", v.Days).
			Set("hours", v.Hours).Set("minutes", v.Minutes).Set("seconds", v.Seconds)

	case *ast.Identifier:
		return t.node("Identifier", v).Set("name", v.Name)
	case *ast.FieldAccess:
		return t.node("FieldAccess", v).
			Set("target", t.toMap(v.Target)).Set("field", v.Field)
	case *ast.IndexAccess:
		return t.node("IndexAccess", v).
			Set("target", t.toMap(v.Target)).Set("index", t.toMap(v.Index))
	case *ast.Call:
		return t.node("Call", v).
			Set("callee", t.toMap(v.Callee)).Set("args", t.toMapSlice(v.Args))
	case *ast.Binary:
		return t.node("Binary", v).
			Set("left", t.toMap(v.Left)).Set("operator", string(v.Op)).Set("right", t.toMap(v.Right))
	case *ast.Unary:
		return t.node("Unary", v).
			Set("operator", string(v.Op)).Set("operand", t.toMap(v.Operand))
	case *ast.PassExpr:
		return t.node("PassExpr", v)
	case *ast.FieldAssignment:
		return NewOrderedMap().Set("_type", "FieldAssignment").
			Set("name", v.Name).Set("value", t.toMap(v.Value))
	case *ast.StructLiteral:
		fields := make([]any, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = t.toMap(f)
		}
		return t.node("StructLiteral", v).
			Set("type_name", v.TypeName).Set("fields", fields)

	case *ast.WildcardPattern:
		return t.node("WildcardPattern", v)
	case *ast.LiteralPattern:
		return t.node("LiteralPattern", v).Set("value", t.toMap(v.Value))
	case *ast.BindingPattern:
		return t.node("BindingPattern", v).Set("name", v.Name)
	case *ast.FieldPattern:
		m := NewOrderedMap().Set("_type", "FieldPattern").Set("name", v.Name)
		if v.Pattern != nil {
			m.Set("pattern", t.toMap(v.Pattern))
		}
		return m
	case *ast.StructPattern:
		fields := make([]any, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = t.toMap(f)
		}
		return t.node("StructPattern", v).
			Set("constructor", v.Constructor).Set("fields", fields)

	case *ast.MatchArm:
		m := NewOrderedMap().Set("_type", "MatchArm").Set("pattern", t.toMap(v.Pattern))
		if v.Guard != nil {
			m.Set("guard", t.toMap(v.Guard))
		}
		return m.Set("body", t.toMap(v.Body))
	case *ast.Match:
		m := t.node("Match", v)
		if v.Scrutinee != nil {
			m.Set("scrutinee", t.toMap(v.Scrutinee))
		}
		arms := make([]any, len(v.Arms))
		for i, a := range v.Arms {
			arms[i] = t.toMap(a)
		}
		return m.Set("arms", arms).Set("ensure_exhaustiveness", v.EnsureExhaustiveness)

	case *ast.BuiltinType:
		return t.node("BuiltinType", v).Set("name", string(v.Kind))
	case *ast.NamedType:
		return t.node("NamedType", v).Set("name", v.Name)
	case *ast.GenericType:
		args := make([]any, len(v.Args))
		for i, a := range v.Args {
			args[i] = t.toMap(a)
		}
		return t.node("GenericType", v).Set("base", v.BaseName).Set("type_args", args)
	case *ast.OptionalType:
		return t.node("OptionalType", v).Set("inner", t.toMap(v.Inner))
	case *ast.ArrayType:
		return t.node("ArrayType", v).Set("element_type", t.toMap(v.Elem))

	case *ast.FieldDef:
		return NewOrderedMap().Set("_type", "FieldDef").
			Set("type", t.toMap(v.Type)).Set("name", v.Name)
	case *ast.StructDef:
		fields := make([]any, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = t.toMap(f)
		}
		m := t.node("StructDef", v).Set("name", v.Name).Set("fields", fields)
		if len(v.TypeParams) > 0 {
			m.Set("type_params", v.TypeParams)
		}
		return m
	case *ast.ParamDef:
		return NewOrderedMap().Set("_type", "ParamDef").
			Set("type", t.toMap(v.Type)).Set("name", v.Name)
	case *ast.Block:
		return t.node("Block", v).Set("statements", t.toMapSliceStmt(v.Stmts))
	case *ast.FunctionDef:
		params := make([]any, len(v.Params))
		for i, p := range v.Params {
			params[i] = t.toMap(p)
		}
		m := t.node("FunctionDef", v).Set("name", v.Name).Set("params", params)
		if v.ReturnType != nil {
			m.Set("return_type", t.toMap(v.ReturnType))
		}
		return m.Set("body", t.toMap(v.Body))

	case *ast.VariableDecl:
		m := t.node("VariableDecl", v).Set("type", t.toMap(v.Type)).Set("name", v.Name)
		if v.Value != nil {
			m.Set("value", t.toMap(v.Value))
		}
		return m
	case *ast.Assignment:
		return t.node("Assignment", v).
			Set("target", t.toMap(v.Target)).Set("value", t.toMap(v.Value))
	case *ast.Return:
		m := t.node("Return", v)
		if v.Value != nil {
			m.Set("value", t.toMap(v.Value))
		}
		return m
	case *ast.PassStmt:
		return t.node("PassStmt", v)
	case *ast.ExpressionStmt:
		return t.node("ExpressionStmt", v).Set("expression", t.toMap(v.Value))

	case *ast.DefinitionEntry:
		return NewOrderedMap().Set("_type", "DefinitionEntry").
			Set("term", v.Name).Set("definition", t.toMap(v.Value))
	case *ast.Element:
		return t.node("Element", v).
			Set("element_type", string(v.Role)).Set("name", v.Name).
			Set("description", t.toMap(v.Description))
	case *ast.Penalty:
		m := t.node("Penalty", v)
		if v.ImprisonmentMin != nil {
			m.Set("imprisonment_min", t.toMap(v.ImprisonmentMin))
		}
		if v.ImprisonmentMax != nil {
			m.Set("imprisonment_max", t.toMap(v.ImprisonmentMax))
		}
		if v.FineMin != nil {
			m.Set("fine_min", t.toMap(v.FineMin))
		}
		if v.FineMax != nil {
			m.Set("fine_max", t.toMap(v.FineMax))
		}
		return m.Set("supplementary", v.Text)
	case *ast.Illustration:
		return t.node("Illustration", v).Set("description", v.Text)
	case *ast.Statute:
		defs := make([]any, len(v.Definitions))
		for i, d := range v.Definitions {
			defs[i] = t.toMap(d)
		}
		elems := make([]any, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = t.toMap(e)
		}
		illus := make([]any, len(v.Illustrations))
		for i, il := range v.Illustrations {
			illus[i] = t.toMap(il)
		}
		m := t.node("Statute", v).Set("section_number", v.Section)
		if v.Title != "" {
			m.Set("title", v.Title)
		}
		m.Set("definitions", defs).Set("elements", elems)
		if v.Penalty != nil {
			m.Set("penalty", t.toMap(v.Penalty))
		}
		return m.Set("illustrations", illus)

	case *ast.Import:
		return NewOrderedMap().Set("_type", "Import").
			Set("path", v.Path).Set("imported_names", v.Names).Set("wildcard", v.Wildcard)
	case *ast.Module:
		imports := make([]any, len(v.Imports))
		for i, imp := range v.Imports {
			imports[i] = t.toMap(imp)
		}
		typeDefs := make([]any, len(v.Structs))
		for i, s := range v.Structs {
			typeDefs[i] = t.toMap(s)
		}
		fnDefs := make([]any, len(v.Functions))
		for i, f := range v.Functions {
			fnDefs[i] = t.toMap(f)
		}
		statutes := make([]any, len(v.Statutes))
		for i, s := range v.Statutes {
			statutes[i] = t.toMap(s)
		}
		vars := make([]any, len(v.Variables))
		for i, vr := range v.Variables {
			vars[i] = t.toMap(vr)
		}
		return t.node("Module", v).
			Set("imports", imports).Set("type_defs", typeDefs).
			Set("function_defs", fnDefs).Set("statutes", statutes).Set("variables", vars)

	default:
		return fmt.Sprintf("<unsupported node %T>", v)
	}
}

func (t *JSONTranspiler) toMapSlice(exprs []ast.Expr) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = t.toMap(e)
	}
	return out
}

func (t *JSONTranspiler) toMapSliceStmt(stmts []ast.Stmt) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = t.toMap(s)
	}
	return out
}
