package yherrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoded_Error_AppendsDetailWhenPresent(t *testing.T) {
	e := Coded{Code: CodeParseError, Message: "parse failed", Detail: "unexpected token"}
	assert.Equal(t, "parse failed: unexpected token", e.Error())
}

func TestCoded_Error_OmitsDetailWhenAbsent(t *testing.T) {
	e := Coded{Code: CodeParseError, Message: "parse failed"}
	assert.Equal(t, "parse failed", e.Error())
}

func TestCoded_JSON_EncodesAllFields(t *testing.T) {
	e := Coded{Code: CodeFileNotFound, Message: "no such file", Detail: "statute.yh"}
	js := e.JSON()
	assert.Contains(t, js, `"code":"file_not_found"`)
	assert.Contains(t, js, `"message":"no such file"`)
	assert.Contains(t, js, `"detail":"statute.yh"`)
}

func TestWrap_CopiesInnerErrorTextIntoDetail(t *testing.T) {
	inner := errors.New("disk full")
	wrapped := Wrap(CodeFileReadFailed, "read failed", inner)
	assert.Equal(t, CodeFileReadFailed, wrapped.Code)
	assert.Equal(t, "disk full", wrapped.Detail)
}

func TestRunParserBoundary_PassesThroughNilOnSuccess(t *testing.T) {
	err := RunParserBoundary(func() error { return nil })
	assert.NoError(t, err)
}

func TestRunParserBoundary_WrapsPlainError(t *testing.T) {
	err := RunParserBoundary(func() error { return errors.New("bad token") })
	require := assert.New(t)
	coded, ok := err.(Coded)
	require.True(ok, "expected a Coded error, got %T", err)
	require.Equal(CodeParseError, coded.Code)
	require.Equal("bad token", coded.Detail)
}

func TestRunParserBoundary_RecoversPanicAsInternalPanicCode(t *testing.T) {
	err := RunParserBoundary(func() error {
		panic("lexer exploded")
	})
	coded, ok := err.(Coded)
	assert.True(t, ok, "expected a Coded error, got %T", err)
	assert.Equal(t, CodeInternalPanic, coded.Code)
	assert.Equal(t, "lexer exploded", coded.Detail)
}

func TestRunASTBoundary_RecoversPanicFromErrorValue(t *testing.T) {
	err := RunASTBoundary(func() error {
		panic(errors.New("nil node dereferenced"))
	})
	coded, ok := err.(Coded)
	assert.True(t, ok)
	assert.Equal(t, CodeInternalPanic, coded.Code)
	assert.Equal(t, "nil node dereferenced", coded.Detail)
}

func TestRunTranspileBoundary_AlreadyCodedError_PassesThroughUnwrapped(t *testing.T) {
	original := Coded{Code: CodeUnknownTarget, Message: "no such target", Detail: "docx"}
	err := RunTranspileBoundary(func() error { return original })
	coded, ok := err.(Coded)
	assert.True(t, ok)
	assert.Equal(t, CodeUnknownTarget, coded.Code)
	assert.Equal(t, "docx", coded.Detail)
}
