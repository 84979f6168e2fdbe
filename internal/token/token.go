// Package token enumerates the lexical categories of Yuho source text.
package token

import "github.com/gongahkia/yuho/internal/span"

// Kind identifies the lexical category of a Token.
type Kind string

const (
	KindEOF     Kind = "eof"
	KindError   Kind = "error"
	KindComment Kind = "comment"

	KindIdent Kind = "ident"

	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindBool     Kind = "bool"
	KindString   Kind = "string"
	KindMoney    Kind = "money"
	KindPercent  Kind = "percent"
	KindDate     Kind = "date"
	KindDuration Kind = "duration"

	// Keywords
	KindImport   Kind = "import"
	KindFrom     Kind = "from"
	KindStruct   Kind = "struct"
	KindFunc     Kind = "func"
	KindStatute  Kind = "statute"
	KindMatch    Kind = "match"
	KindCase     Kind = "case"
	KindReturn   Kind = "return"
	KindPass     Kind = "pass"
	KindElement  Kind = "element"
	KindPenalty  Kind = "penalty"
	KindDefine   Kind = "define"
	KindIllustrate Kind = "illustrate"
	KindActusReus  Kind = "actus_reus"
	KindMensRea    Kind = "mens_rea"
	KindCircumstance Kind = "circumstance"

	// Builtin type names
	KindTypeInt      Kind = "type_int"
	KindTypeFloat    Kind = "type_float"
	KindTypeBool     Kind = "type_bool"
	KindTypeString   Kind = "type_string"
	KindTypeMoney    Kind = "type_money"
	KindTypePercent  Kind = "type_percent"
	KindTypeDate     Kind = "type_date"
	KindTypeDuration Kind = "type_duration"
	KindTypeVoid     Kind = "type_void"

	// Punctuation / operators
	KindLBrace    Kind = "{"
	KindRBrace    Kind = "}"
	KindLParen    Kind = "("
	KindRParen    Kind = ")"
	KindLBracket  Kind = "["
	KindRBracket  Kind = "]"
	KindComma     Kind = ","
	KindSemi      Kind = ";"
	KindColon     Kind = ":"
	KindDot       Kind = "."
	KindAssign    Kind = ":="
	KindArrow     Kind = "=>"
	KindQuestion  Kind = "?"
	KindWildcard  Kind = "_"
	KindStar      Kind = "*"

	KindPlus    Kind = "+"
	KindMinus   Kind = "-"
	KindSlash   Kind = "/"
	KindPercentOp Kind = "%"
	KindEq      Kind = "=="
	KindNeq     Kind = "!="
	KindLt      Kind = "<"
	KindGt      Kind = ">"
	KindLe      Kind = "<="
	KindGe      Kind = ">="
	KindAnd     Kind = "&&"
	KindOr      Kind = "||"
	KindNot     Kind = "!"
)

// Keywords maps reserved words to their token kind.
var Keywords = map[string]Kind{
	"import":       KindImport,
	"from":         KindFrom,
	"struct":       KindStruct,
	"func":         KindFunc,
	"statute":      KindStatute,
	"match":        KindMatch,
	"case":         KindCase,
	"return":       KindReturn,
	"pass":         KindPass,
	"element":      KindElement,
	"penalty":      KindPenalty,
	"define":       KindDefine,
	"illustrate":   KindIllustrate,
	"actus_reus":   KindActusReus,
	"mens_rea":     KindMensRea,
	"circumstance": KindCircumstance,
	"int":          KindTypeInt,
	"float":        KindTypeFloat,
	"bool":         KindTypeBool,
	"string":       KindTypeString,
	"money":        KindTypeMoney,
	"percent":      KindTypePercent,
	"date":         KindTypeDate,
	"duration":     KindTypeDuration,
	"void":         KindTypeVoid,
}

// Token is a single lexical unit with its source span.
type Token struct {
	Kind Kind
	Text string
	Span span.Span
}
