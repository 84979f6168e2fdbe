// Package sema implements the semantic analysis stage: type inference and
// checking, exhaustiveness, reachability, and pattern overlap detection.
// It never mutates the AST it walks; internal/optimize owns rewriting.
package sema

import "github.com/gongahkia/yuho/internal/ast"

// Type is the inferred/checked type lattice. UNKNOWN stands for an
// unresolved identifier and never causes a hard error on its own — only
// on use in a position that demands a concrete type.
type Type string

const (
	TypeInt      Type = "int"
	TypeFloat    Type = "float"
	TypeBool     Type = "bool"
	TypeString   Type = "string"
	TypeMoney    Type = "money"
	TypePercent  Type = "percent"
	TypeDate     Type = "date"
	TypeDuration Type = "duration"
	TypeVoid     Type = "void"
	TypeUnknown  Type = "UNKNOWN"
)

// namedType is the inferred type of a reference to a user struct; kept
// distinct from the builtin Type so field lookups can find the StructDef.
func namedType(name string) Type { return Type(name) }

// OperatorResult is one entry of the shared operator table: the result
// type of applying Op to two operand types. Only internal/sema's checker
// consults this table; internal/optimize's constant folder does not read
// it and evaluates operators with its own per-type switches.
type OperatorResult struct {
	Result Type
	Valid  bool
}

// BinaryResultType returns the result type of applying op to operands of
// the given types, and whether the combination is legal at all. Mixed
// int/float promotes to float; string `+` is concatenation; comparisons
// always yield bool; logical operators require and return bool.
func BinaryResultType(op ast.BinaryOp, left, right Type) OperatorResult {
	switch op {
	case ast.OpAnd, ast.OpOr:
		if left == TypeBool && right == TypeBool {
			return OperatorResult{TypeBool, true}
		}
		return OperatorResult{TypeUnknown, false}
	case ast.OpEq, ast.OpNeq:
		if left == right || isNumeric(left) && isNumeric(right) {
			return OperatorResult{TypeBool, true}
		}
		return OperatorResult{TypeUnknown, false}
	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		if isNumeric(left) && isNumeric(right) {
			return OperatorResult{TypeBool, true}
		}
		if left == TypeDate && right == TypeDate {
			return OperatorResult{TypeBool, true}
		}
		return OperatorResult{TypeUnknown, false}
	case ast.OpAdd:
		if left == TypeString && right == TypeString {
			return OperatorResult{TypeString, true}
		}
		if left == TypeMoney && right == TypeMoney {
			return OperatorResult{TypeMoney, true}
		}
		return arithmeticResult(left, right)
	case ast.OpSub:
		if left == TypeMoney && right == TypeMoney {
			return OperatorResult{TypeMoney, true}
		}
		return arithmeticResult(left, right)
	case ast.OpMul, ast.OpDiv, ast.OpMod:
		return arithmeticResult(left, right)
	default:
		return OperatorResult{TypeUnknown, false}
	}
}

func arithmeticResult(left, right Type) OperatorResult {
	if !isNumeric(left) || !isNumeric(right) {
		return OperatorResult{TypeUnknown, false}
	}
	if left == TypeFloat || right == TypeFloat {
		return OperatorResult{TypeFloat, true}
	}
	return OperatorResult{TypeInt, true}
}

func isNumeric(t Type) bool { return t == TypeInt || t == TypeFloat }

// UnaryResultType mirrors BinaryResultType for the two unary operators.
func UnaryResultType(op ast.UnaryOp, operand Type) OperatorResult {
	switch op {
	case ast.OpNeg:
		if isNumeric(operand) {
			return OperatorResult{operand, true}
		}
		return OperatorResult{TypeUnknown, false}
	case ast.OpNot:
		if operand == TypeBool {
			return OperatorResult{TypeBool, true}
		}
		return OperatorResult{TypeUnknown, false}
	default:
		return OperatorResult{TypeUnknown, false}
	}
}

// AssignableTo reports whether a value of type from can be stored where
// a value of type to is expected. The only implicit coercion is
// int -> float when the target is explicitly floating, per spec.md §4.4.
func AssignableTo(from, to Type) bool {
	if from == to {
		return true
	}
	if from == TypeInt && to == TypeFloat {
		return true
	}
	return from == TypeUnknown || to == TypeUnknown
}
