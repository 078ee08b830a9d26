package errors

import (
	"fmt"
	"io"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(TypeNotFound, "no unit found for furlong")
	if got := err.Error(); got != "[NOT_FOUND] no unit found for furlong" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(TypeStorage, io.EOF, "failed to read history")
	if got := wrapped.Error(); got != "[STORAGE_ERROR] failed to read history: EOF" {
		t.Errorf("Error() = %q", got)
	}
	if wrapped.Unwrap() != io.EOF {
		t.Errorf("Unwrap() = %v, want EOF", wrapped.Unwrap())
	}
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("convert: %w", Newf(TypeNotFound, "no unit found for %s", "x").WithContext("unit", "x"))

	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false", err)
	}
	if IsType(err, TypeParsing) {
		t.Errorf("IsType(%v, PARSING_ERROR) = true", err)
	}
	if IsNotFound(io.EOF) {
		t.Errorf("IsNotFound(EOF) = true")
	}
}
