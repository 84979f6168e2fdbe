package sema

import (
	"github.com/gongahkia/yuho/internal/ast"
)

// TypeInferenceResult is the shared node-id -> type table both the
// checker and (in principle) any later consumer read from, per spec.md
// §4.4's "two cooperating passes with a shared TypeInferenceResult table."
type TypeInferenceResult struct {
	Types map[ast.ID]Type
}

func NewTypeInferenceResult() *TypeInferenceResult {
	return &TypeInferenceResult{Types: map[ast.ID]Type{}}
}

// TypeOf returns the inferred type of n, or TypeUnknown if n was never
// visited (nil node, or a node kind this pass does not type).
func (r *TypeInferenceResult) TypeOf(n ast.Node) Type {
	if n == nil {
		return TypeUnknown
	}
	if t, ok := r.Types[n.NodeID()]; ok {
		return t
	}
	return TypeUnknown
}

// Environment is a chained symbol scope: function bodies and match arms
// each open a child scope over their enclosing one.
type Environment struct {
	vars   map[string]Type
	parent *Environment
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{vars: map[string]Type{}, parent: parent}
}

func (e *Environment) Define(name string, t Type) { e.vars[name] = t }

func (e *Environment) Lookup(name string) (Type, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if t, ok := cur.vars[name]; ok {
			return t, true
		}
	}
	return TypeUnknown, false
}

// Names returns every name visible from this scope, used to build
// Levenshtein-1 suggestions for an unresolved identifier.
func (e *Environment) Names() []string {
	seen := map[string]bool{}
	var out []string
	for cur := e; cur != nil; cur = cur.parent {
		for n := range cur.vars {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
