package parser

import "github.com/gongahkia/yuho/internal/span"

// Diagnostic is a single parse-time problem: either an unexpected token or
// a missing symbol the recovery path synthesized a placeholder for.
type Diagnostic struct {
	Kind    string // "unexpected" or "missing:<symbol>"
	Span    span.Span
	Hint    string
	Message string
}

// missingMessages maps canonical punctuation to a human-readable "Missing
// X" message. Symbols outside this table fall back to "Missing <kind>".
var missingMessages = map[string]string{
	";":  "Missing ';'",
	",":  "Missing ','",
	"{":  "Missing '{'",
	"}":  "Missing '}'",
	"(":  "Missing '('",
	")":  "Missing ')'",
	"[":  "Missing '['",
	"]":  "Missing ']'",
	":=": "Missing ':='",
	":":  "Missing ':'",
}

func missingMessageFor(symbol string) string {
	if msg, ok := missingMessages[symbol]; ok {
		return msg
	}
	return "Missing " + symbol
}
