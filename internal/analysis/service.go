// Package analysis is the Analysis Service façade: parse, build, and
// semantically check a Yuho source buffer in one call, returning a
// single structured result instead of a chain of errors a caller must
// thread through three different packages. Grounded on
// original_source/src/yuho/services/analysis.py's analyze_file/
// analyze_source functions and their AnalysisResult/ASTSummary/
// SemanticSummary/AnalysisError dataclasses.
package analysis

import (
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/gongahkia/yuho/internal/ast"
	"github.com/gongahkia/yuho/internal/optimize"
	"github.com/gongahkia/yuho/internal/parser"
	"github.com/gongahkia/yuho/internal/sema"
	"github.com/gongahkia/yuho/internal/span"
	"github.com/gongahkia/yuho/internal/yherrors"
)

// AnalysisError is a structured error attributable to a single pipeline
// stage, ported from analysis.py's AnalysisError dataclass.
type AnalysisError struct {
	Stage     string     `json:"stage"`
	Message   string     `json:"message"`
	ErrorCode string     `json:"error_code"`
	Location  *span.Span `json:"location,omitempty"`
	NodeType  string     `json:"node_type,omitempty"`
}

// SemanticIssue is a single diagnostic surfaced by the semantic stage.
type SemanticIssue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// SemanticSummary aggregates the semantic stage's diagnostics.
type SemanticSummary struct {
	Issues   []SemanticIssue `json:"issues"`
	Errors   int             `json:"errors"`
	Warnings int             `json:"warnings"`
}

// HasErrors reports whether semantic analysis produced any error-level
// diagnostic.
func (s SemanticSummary) HasErrors() bool { return s.Errors > 0 }

// AnalysisResult is the end-to-end parse/AST/semantic analysis output,
// one call to AnalyzeFile or AnalyzeSource producing exactly one.
type AnalysisResult struct {
	RunID              string              `json:"run_id"`
	File               string              `json:"file"`
	Source             string              `json:"-"`
	Tree               *ast.Module         `json:"-"`
	ParseDiagnostics   []parser.Diagnostic `json:"parse_diagnostics,omitempty"`
	Errors             []AnalysisError     `json:"errors,omitempty"`
	ASTSummary         *ASTSummary         `json:"ast_summary,omitempty"`
	SemanticSummary    *SemanticSummary    `json:"semantic_summary,omitempty"`
	ParseDurationMS    float64             `json:"parse_duration_ms"`
	ASTDurationMS      float64             `json:"ast_duration_ms"`
	SemanticDurationMS float64             `json:"semantic_duration_ms"`
	TotalDurationMS    float64             `json:"total_duration_ms"`
}

// IsValid reports whether every stage that ran succeeded: no parse
// errors, no AnalysisError entries, and (if semantic analysis ran) no
// semantic errors.
func (r *AnalysisResult) IsValid() bool {
	if len(r.ParseDiagnostics) > 0 || len(r.Errors) > 0 {
		return false
	}
	if r.SemanticSummary == nil {
		return r.Tree != nil
	}
	return !r.SemanticSummary.HasErrors()
}

// Options configures a single AnalyzeFile/AnalyzeSource call.
type Options struct {
	RunSemantic  bool
	RunOptimizer bool
	FoldFirst    bool
	Strict       bool
}

// DefaultOptions mirrors analyze_source's `run_semantic: bool = True`
// default, with the optimizer off by default since spec.md treats
// optimization as an opt-in pass.
func DefaultOptions() Options {
	return Options{RunSemantic: true, RunOptimizer: false, FoldFirst: true, Strict: false}
}

// AnalyzeFile reads path as UTF-8 and analyzes its contents, mirroring
// analyze_file's structured-result-instead-of-raising posture: a
// missing or unreadable file produces an AnalysisResult carrying an
// AnalysisError, not a returned Go error.
func AnalyzeFile(path string, opts Options) *AnalysisResult {
	data, err := os.ReadFile(path)
	if err != nil {
		code := yherrors.CodeFileReadFailed
		if os.IsNotExist(err) {
			code = yherrors.CodeFileNotFound
		}
		return &AnalysisResult{
			RunID: uuid.NewString(),
			File:  path,
			Errors: []AnalysisError{
				{Stage: "parse", Message: err.Error(), ErrorCode: code},
			},
		}
	}
	return AnalyzeSource(string(data), path, opts)
}

// AnalyzeSource analyzes in-memory source text through parse, AST
// build, optional semantic checks, and optional optimization, in that
// order. In strict mode a *optimize.ConstantFoldingError panic from the
// constant folder is not recovered here and reaches the caller.
func AnalyzeSource(source, file string, opts Options) *AnalysisResult {
	start := time.Now()
	result := &AnalysisResult{RunID: uuid.NewString(), File: file, Source: source}

	startParse := time.Now()
	parseResult := parser.Parse(source, file)
	result.ParseDurationMS = elapsedMS(startParse)
	recordStageDuration("parse", result.ParseDurationMS/1000.0)
	result.ParseDiagnostics = parseResult.Errors

	if len(result.ParseDiagnostics) > 0 {
		for _, d := range result.ParseDiagnostics {
			sp := d.Span
			result.Errors = append(result.Errors, AnalysisError{
				Stage:     "parse",
				Message:   d.Message,
				ErrorCode: yherrors.CodeParseError,
				Location:  &sp,
			})
		}
		recordOutcome("parse_error")
		result.TotalDurationMS = elapsedMS(start)
		return result
	}

	startAST := time.Now()
	module, buildErrs := buildAST(parseResult, file)
	result.ASTDurationMS = elapsedMS(startAST)
	recordStageDuration("ast", result.ASTDurationMS/1000.0)
	if len(buildErrs) > 0 {
		for _, e := range buildErrs {
			sp := e.Span
			result.Errors = append(result.Errors, AnalysisError{
				Stage:     "ast",
				Message:   e.Message,
				ErrorCode: yherrors.CodeASTBuildFailed,
				Location:  &sp,
			})
		}
		recordOutcome("ast_error")
		result.TotalDurationMS = elapsedMS(start)
		return result
	}
	result.Tree = module

	// Semantic checks and the AST summary run on the module exactly as
	// built, before any optimizer pass touches it: later stages depend
	// only on the frozen output of earlier ones, so running the
	// optimizer first would fold away the constants and eliminate the
	// dead arms semantic analysis is supposed to diagnose.
	summary := SummarizeModule(module)
	result.ASTSummary = &summary

	if opts.RunSemantic {
		startSemantic := time.Now()
		result.SemanticSummary = runSemanticChecks(module)
		result.SemanticDurationMS = elapsedMS(startSemantic)
		recordStageDuration("semantic", result.SemanticDurationMS/1000.0)
	}

	if opts.RunOptimizer {
		optimized := optimize.NewConstantFolder(opts.Strict).FoldModule(module)
		optimized = optimize.NewDeadCodeEliminator(opts.FoldFirst).Eliminate(optimized)
		result.Tree = optimized
	}

	if result.SemanticSummary != nil && result.SemanticSummary.HasErrors() {
		recordOutcome("semantic_error")
	} else {
		recordOutcome("ok")
	}
	result.TotalDurationMS = elapsedMS(start)
	recordStageDuration("total", result.TotalDurationMS/1000.0)
	return result
}

// elapsedMS reports the elapsed time in milliseconds, rounded to 3
// decimal places to match AnalysisResult's to_dict serialization
// contract.
func elapsedMS(since time.Time) float64 {
	ms := float64(time.Since(since)) / float64(time.Millisecond)
	return math.Round(ms*1000) / 1000
}

// buildAST recovers a panic from the builder the way
// yherrors.RunASTBoundary does, converting it to a synthetic BuildError
// rather than letting it escape AnalyzeSource.
func buildAST(pr parser.ParseResult, file string) (module *ast.Module, errs []ast.BuildError) {
	defer func() {
		if r := recover(); r != nil {
			errs = append(errs, ast.BuildError{Message: panicMessage(r)})
		}
	}()
	module, errs = ast.NewBuilder().Build(pr.Tree, file)
	return module, errs
}

func panicMessage(r any) string {
	if err, ok := r.(error); ok {
		return "AST builder panicked: " + err.Error()
	}
	return "AST builder panicked"
}

func runSemanticChecks(m *ast.Module) *SemanticSummary {
	_, diags := sema.Analyze(m)
	summary := &SemanticSummary{}
	for _, d := range diags {
		if d.Severity == sema.SeverityWarning {
			summary.Warnings++
		} else {
			summary.Errors++
		}
		summary.Issues = append(summary.Issues, SemanticIssue{
			Severity: string(d.Severity),
			Message:  d.Message,
			Line:     d.Span.StartLine,
			Column:   d.Span.StartCol,
		})
	}
	return summary
}
