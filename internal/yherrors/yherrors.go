// Package yherrors is the uniform error carrier for every stage
// boundary in the compiler pipeline (parser, AST builder, semantic
// analyzer, transpiler), ported from termfx-morfx's
// internal/core/errorfmt.go CLIError and renamed/generalized for this
// domain's four-stage error taxonomy (spec.md §7).
package yherrors

import "encoding/json"

// Stable error codes, one per spec.md §7 taxonomy kind plus the
// boundary-recovery code used when a stage panics instead of returning
// an error.
const (
	CodeFileNotFound       = "file_not_found"
	CodeFileReadFailed     = "file_read_failed"
	CodeParseError         = "parse_error"
	CodeASTBuildFailed     = "ast_build_failed"
	CodeSemanticFailed     = "semantic_analysis_failed"
	CodeUnknownTarget      = "unknown_transpile_target"
	CodeTranspileFailed    = "transpile_failed"
	CodeInternalPanic      = "internal_panic"
)

// Coded is a uniform error payload for both human and JSON-facing
// output, ported field-for-field from CLIError.
type Coded struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e Coded) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e Coded) String() string {
	return e.Error()
}

// JSON renders e as a JSON object; errors marshaling a plain struct of
// string fields are not possible, so the error return of json.Marshal
// is discarded, mirroring CLIError.JSON.
func (e Coded) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap builds a Coded from a code, message, and an inner error whose
// text becomes Detail.
func Wrap(code, message string, inner error) Coded {
	return Coded{Code: code, Message: message, Detail: inner.Error()}
}

// boundary recovers a panic inside fn and converts it to a Coded error
// with CodeInternalPanic and the given message (the code argument is not
// used), so an internal failure in one pipeline stage
// never escapes as a raw crash to a caller driving several stages in
// sequence.
func boundary(code, message string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Coded{Code: CodeInternalPanic, Message: message, Detail: panicDetail(r)}
		}
	}()
	return fn()
}

func panicDetail(r any) string {
	if e, ok := r.(error); ok {
		return e.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "recovered non-error panic value"
}

// RunParserBoundary executes fn, a parser-stage operation, converting
// both returned errors and recovered panics into a Coded error tagged
// with CodeParseError / CodeInternalPanic as appropriate.
func RunParserBoundary(fn func() error) error {
	err := boundary(CodeParseError, "parser operation failed", fn)
	return normalize(err, CodeParseError, "parser operation failed")
}

// RunASTBoundary is RunParserBoundary's analogue for the AST-build
// stage.
func RunASTBoundary(fn func() error) error {
	err := boundary(CodeASTBuildFailed, "AST build failed", fn)
	return normalize(err, CodeASTBuildFailed, "AST build failed")
}

// RunTranspileBoundary is RunParserBoundary's analogue for a
// transpiler's Transpile call.
func RunTranspileBoundary(fn func() error) error {
	err := boundary(CodeTranspileFailed, "transpile operation failed", fn)
	return normalize(err, CodeTranspileFailed, "transpile operation failed")
}

// normalize wraps a plain (non-Coded) error returned by fn in a Coded
// value with the stage's default code, leaving an already-Coded error
// (including one produced by the panic recovery above) untouched.
func normalize(err error, code, message string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(Coded); ok {
		return err
	}
	return Wrap(code, message, err)
}
