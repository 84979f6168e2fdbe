// Command yuhoc is a thin smoke-test harness over the Analysis
// Service: it is not the "CLI argument parsing and command wiring"
// subsystem (that stays out of scope, same as the teacher's relation
// between cmd/morfx and internal/cli), just enough wiring to parse,
// analyze, and transpile a single file from a terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gongahkia/yuho/internal/analysis"
	"github.com/gongahkia/yuho/internal/transpile"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("yuhoc", pflag.ContinueOnError)
	file := fs.String("file", "", "Yuho source file to analyze.")
	targets := fs.StringArray("target", nil, "Transpile target (repeatable): json, jsonld, english, latex, mermaid, alloy.")
	noSemantic := fs.Bool("no-semantic", false, "Skip the semantic analysis stage.")
	optimizeFlag := fs.Bool("optimize", false, "Run constant folding and dead-code elimination before transpiling.")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "yuhoc: %v\n", err)
		return 2
	}
	if *file == "" {
		fmt.Fprintln(os.Stderr, "yuhoc: --file is required")
		return 2
	}

	opts := analysis.DefaultOptions()
	opts.RunSemantic = !*noSemantic
	opts.RunOptimizer = *optimizeFlag

	result := analysis.AnalyzeFile(*file, opts)
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "yuhoc: %s: %s\n", e.Stage, e.Message)
	}
	if result.Tree == nil {
		return 1
	}

	if result.SemanticSummary != nil {
		for _, issue := range result.SemanticSummary.Issues {
			fmt.Fprintf(os.Stderr, "yuhoc: %s:%d:%d: %s: %s\n",
				*file, issue.Line, issue.Column, issue.Severity, issue.Message)
		}
		if result.SemanticSummary.HasErrors() {
			return 1
		}
	}

	registry := transpile.Instance()
	for _, name := range *targets {
		target, err := transpile.ParseTarget(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "yuhoc: %v\n", err)
			return 2
		}
		tp, err := registry.Get(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "yuhoc: %v\n", err)
			return 2
		}
		out, err := tp.Transpile(result.Tree)
		if err != nil {
			fmt.Fprintf(os.Stderr, "yuhoc: transpile %s: %v\n", target, err)
			return 1
		}
		outPath := outputPath(*file, target)
		if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "yuhoc: write %s: %v\n", outPath, err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "yuhoc: wrote %s\n", outPath)
	}
	return 0
}

func outputPath(file string, target transpile.TranspileTarget) string {
	ext := filepath.Ext(file)
	base := strings.TrimSuffix(file, ext)
	return base + target.FileExtension()
}
