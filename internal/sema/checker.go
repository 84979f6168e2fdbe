package sema

import (
	"fmt"

	"github.com/gongahkia/yuho/internal/ast"
	"github.com/gongahkia/yuho/internal/span"
)

// Checker runs bottom-up type inference and checking over a Module,
// grounded on spec.md §4.4's rule set. It never mutates the AST; it only
// accumulates a TypeInferenceResult and a slice of Diagnostics, emitted
// in the traversal order declarations appear in the module (spec.md §5's
// "diagnostics ... in source order").
type Checker struct {
	module *ast.Module
	result *TypeInferenceResult
	diags  []Diagnostic
}

func NewChecker(m *ast.Module) *Checker {
	return &Checker{module: m, result: NewTypeInferenceResult()}
}

// Check runs the full pass and returns the type table together with
// every diagnostic raised.
func (c *Checker) Check() (*TypeInferenceResult, []Diagnostic) {
	global := NewEnvironment(nil)
	for _, v := range c.module.Variables {
		global.Define(v.Name, c.typeRefToType(v.Type))
	}
	for _, v := range c.module.Variables {
		c.checkVariableDecl(global, v)
	}
	for _, fn := range c.module.Functions {
		c.checkFunction(global, fn)
	}
	for _, st := range c.module.Statutes {
		c.checkStatute(global, st)
	}
	return c.result, c.diags
}

func (c *Checker) addError(sp span.Span, msg string) {
	c.diags = append(c.diags, errorAt(sp, msg))
}

func (c *Checker) addUnresolvedIdentifier(sp span.Span, name string, env *Environment) {
	candidates := append([]string{}, env.Names()...)
	for n := range c.module.TypeDefs {
		candidates = append(candidates, n)
	}
	for n := range c.module.FunctionDefs {
		candidates = append(candidates, n)
	}
	msg := fmt.Sprintf("unresolved identifier %q", name)
	if s := suggestIdentifier(name, candidates); s != "" {
		c.diags = append(c.diags, errorWithHint(sp, msg, fmt.Sprintf("did you mean %q?", s)))
		return
	}
	c.addError(sp, msg)
}

func (c *Checker) typeRefToType(tr ast.TypeRef) Type {
	switch t := tr.(type) {
	case nil:
		return TypeVoid
	case *ast.BuiltinType:
		return Type(t.Kind)
	case *ast.NamedType:
		return namedType(t.Name)
	case *ast.OptionalType:
		return c.typeRefToType(t.Inner)
	case *ast.ArrayType:
		return Type("[]" + string(c.typeRefToType(t.Elem)))
	case *ast.GenericType:
		return namedType(t.BaseName)
	default:
		return TypeUnknown
	}
}

func (c *Checker) checkVariableDecl(env *Environment, v *ast.VariableDecl) {
	declared := c.typeRefToType(v.Type)
	c.result.Types[v.NodeID()] = declared
	if v.Value != nil {
		valType := c.inferExpr(env, v.Value)
		if !AssignableTo(valType, declared) {
			c.addError(v.NodeSpan(), fmt.Sprintf("cannot assign %s to variable %q of type %s", valType, v.Name, declared))
		}
	}
}

func (c *Checker) checkFunction(parent *Environment, fn *ast.FunctionDef) {
	env := NewEnvironment(parent)
	for _, p := range fn.Params {
		env.Define(p.Name, c.typeRefToType(p.Type))
	}
	c.checkBlock(env, fn.Body)
}

func (c *Checker) checkBlock(env *Environment, b *ast.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		c.checkStmt(env, s)
	}
}

func (c *Checker) checkStmt(env *Environment, s ast.Stmt) {
	switch st := s.(type) {
	case *ast.VariableDecl:
		declared := c.typeRefToType(st.Type)
		c.result.Types[st.NodeID()] = declared
		if st.Value != nil {
			valType := c.inferExpr(env, st.Value)
			if !AssignableTo(valType, declared) {
				c.addError(st.NodeSpan(), fmt.Sprintf("cannot assign %s to variable %q of type %s", valType, st.Name, declared))
			}
		}
		env.Define(st.Name, declared)
	case *ast.Assignment:
		targetType := c.inferExpr(env, st.Target)
		valType := c.inferExpr(env, st.Value)
		if !AssignableTo(valType, targetType) {
			c.addError(st.NodeSpan(), fmt.Sprintf("cannot assign %s to %s", valType, targetType))
		}
	case *ast.Return:
		if st.Value != nil {
			c.inferExpr(env, st.Value)
		}
	case *ast.ExpressionStmt:
		c.inferExpr(env, st.Value)
	case *ast.Block:
		c.checkBlock(NewEnvironment(env), st)
	case *ast.PassStmt:
	}
}

func (c *Checker) checkStatute(env *Environment, st *ast.Statute) {
	defEnv := NewEnvironment(env)
	for _, d := range st.Definitions {
		t := c.inferExpr(defEnv, d.Value)
		defEnv.Define(d.Name, t)
	}
	for _, e := range st.Elements {
		c.inferExpr(defEnv, e.Description)
	}
	if st.Penalty != nil {
		c.checkPenalty(st.Penalty)
	}
}

func (c *Checker) checkPenalty(p *ast.Penalty) {
	if p.ImprisonmentMin != nil && p.ImprisonmentMax != nil {
		if durationSeconds(p.ImprisonmentMin) > durationSeconds(p.ImprisonmentMax) {
			c.addError(p.NodeSpan(), "penalty imprisonment range has min > max")
		}
	}
	if p.FineMin != nil && p.FineMax != nil {
		if p.FineMin.Currency == p.FineMax.Currency && p.FineMin.MinorUnits > p.FineMax.MinorUnits {
			c.addError(p.NodeSpan(), "penalty fine range has min > max")
		}
	}
}

func durationSeconds(d *ast.Duration) int64 {
	if d == nil {
		return 0
	}
	return d.Seconds + d.Minutes*60 + d.Hours*3600 + d.Days*86400 + d.Months*2592000 + d.Years*31536000
}

func (c *Checker) inferExpr(env *Environment, e ast.Expr) Type {
	if e == nil {
		return TypeUnknown
	}
	var t Type
	switch n := e.(type) {
	case *ast.IntLit:
		t = TypeInt
	case *ast.FloatLit:
		t = TypeFloat
	case *ast.BoolLit:
		t = TypeBool
	case *ast.StringLit:
		t = TypeString
	case *ast.Money:
		t = TypeMoney
	case *ast.Percent:
		t = TypePercent
	case *ast.Date:
		t = TypeDate
	case *ast.Duration:
		t = TypeDuration
	case *ast.Identifier:
		if vt, ok := env.Lookup(n.Name); ok {
			t = vt
		} else {
			t = TypeUnknown
			c.addUnresolvedIdentifier(n.NodeSpan(), n.Name, env)
		}
	case *ast.FieldAccess:
		base := c.inferExpr(env, n.Target)
		t = c.fieldType(base, n.Field, n.NodeSpan())
	case *ast.IndexAccess:
		c.inferExpr(env, n.Target)
		c.inferExpr(env, n.Index)
		t = TypeUnknown
	case *ast.Call:
		t = c.inferCall(env, n)
	case *ast.Binary:
		left := c.inferExpr(env, n.Left)
		right := c.inferExpr(env, n.Right)
		res := BinaryResultType(n.Op, left, right)
		if !res.Valid && left != TypeUnknown && right != TypeUnknown {
			c.addError(n.NodeSpan(), fmt.Sprintf("operator %s is not defined for %s and %s", n.Op, left, right))
		}
		t = res.Result
	case *ast.Unary:
		operand := c.inferExpr(env, n.Operand)
		res := UnaryResultType(n.Op, operand)
		if !res.Valid && operand != TypeUnknown {
			c.addError(n.NodeSpan(), fmt.Sprintf("operator %s is not defined for %s", n.Op, operand))
		}
		t = res.Result
	case *ast.PassExpr:
		t = TypeVoid
	case *ast.StructLiteral:
		t = c.inferStructLiteral(env, n)
	case *ast.Match:
		t = c.inferMatch(env, n)
	default:
		t = TypeUnknown
	}
	c.result.Types[e.NodeID()] = t
	return t
}

func (c *Checker) fieldType(baseType Type, field string, sp span.Span) Type {
	sd, ok := c.module.TypeDefs[string(baseType)]
	if !ok {
		return TypeUnknown
	}
	for _, f := range sd.Fields {
		if f.Name == field {
			return c.typeRefToType(f.Type)
		}
	}
	c.addError(sp, fmt.Sprintf("struct %s has no field %q", baseType, field))
	return TypeUnknown
}

func (c *Checker) inferCall(env *Environment, call *ast.Call) Type {
	argTypes := make([]Type, len(call.Args))
	for i, a := range call.Args {
		argTypes[i] = c.inferExpr(env, a)
	}
	ident, ok := call.Callee.(*ast.Identifier)
	if !ok {
		c.inferExpr(env, call.Callee)
		return TypeUnknown
	}
	fn, ok := c.module.FunctionDefs[ident.Name]
	if !ok {
		c.addUnresolvedIdentifier(call.NodeSpan(), ident.Name, env)
		return TypeUnknown
	}
	c.result.Types[ident.NodeID()] = TypeVoid
	if len(call.Args) != len(fn.Params) {
		c.addError(call.NodeSpan(), fmt.Sprintf("function %s expects %d argument(s), got %d", ident.Name, len(fn.Params), len(call.Args)))
	}
	for i := range call.Args {
		if i >= len(fn.Params) {
			break
		}
		paramType := c.typeRefToType(fn.Params[i].Type)
		if !AssignableTo(argTypes[i], paramType) {
			c.addError(call.Args[i].NodeSpan(), fmt.Sprintf("argument %d: cannot use %s as %s", i+1, argTypes[i], paramType))
		}
	}
	if fn.ReturnType == nil {
		return TypeVoid
	}
	return c.typeRefToType(fn.ReturnType)
}

func (c *Checker) inferStructLiteral(env *Environment, sl *ast.StructLiteral) Type {
	sd, ok := c.module.TypeDefs[sl.TypeName]
	if !ok {
		c.addUnresolvedIdentifier(sl.NodeSpan(), sl.TypeName, env)
		for _, f := range sl.Fields {
			c.inferExpr(env, f.Value)
		}
		return TypeUnknown
	}
	declared := map[string]ast.TypeRef{}
	for _, f := range sd.Fields {
		declared[f.Name] = f.Type
	}
	seen := map[string]bool{}
	for _, f := range sl.Fields {
		seen[f.Name] = true
		valType := c.inferExpr(env, f.Value)
		dt, ok := declared[f.Name]
		if !ok {
			c.addError(f.NodeSpan(), fmt.Sprintf("struct %s has no field %q", sl.TypeName, f.Name))
			continue
		}
		want := c.typeRefToType(dt)
		if !AssignableTo(valType, want) {
			c.addError(f.NodeSpan(), fmt.Sprintf("field %q: cannot assign %s to %s", f.Name, valType, want))
		}
	}
	for _, f := range sd.Fields {
		if !seen[f.Name] {
			c.addError(sl.NodeSpan(), fmt.Sprintf("struct literal for %s is missing field %q", sl.TypeName, f.Name))
		}
	}
	return namedType(sl.TypeName)
}

func (c *Checker) inferMatch(env *Environment, m *ast.Match) Type {
	scrutineeType := TypeUnknown
	if m.Scrutinee != nil {
		scrutineeType = c.inferExpr(env, m.Scrutinee)
	}
	var lub Type
	first := true
	for _, arm := range m.Arms {
		armEnv := NewEnvironment(env)
		c.bindPattern(armEnv, arm.Pattern, scrutineeType)
		if arm.Guard != nil {
			guardType := c.inferExpr(armEnv, arm.Guard)
			if guardType != TypeBool && guardType != TypeUnknown {
				c.addError(arm.Guard.NodeSpan(), "match guard must be a boolean expression")
			}
		}
		bodyType := c.inferExpr(armEnv, arm.Body)
		if first {
			lub = bodyType
			first = false
		} else if lub != bodyType && lub != TypeUnknown && bodyType != TypeUnknown {
			c.addError(arm.Body.NodeSpan(), fmt.Sprintf("match arm has type %s, expected %s", bodyType, lub))
		}
	}
	if first {
		return TypeVoid
	}
	return lub
}

func (c *Checker) bindPattern(env *Environment, p ast.Pattern, scrutineeType Type) {
	switch pat := p.(type) {
	case *ast.BindingPattern:
		env.Define(pat.Name, scrutineeType)
	case *ast.StructPattern:
		sd, ok := c.module.TypeDefs[pat.Constructor]
		for _, fp := range pat.Fields {
			fieldType := TypeUnknown
			if ok {
				for _, f := range sd.Fields {
					if f.Name == fp.Name {
						fieldType = c.typeRefToType(f.Type)
					}
				}
			}
			c.bindPattern(env, fp.Pattern, fieldType)
		}
	}
}
