package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("file not found"),
			},
			expected: "input: failed to read input: file not found",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeParsing,
				Message: "invalid document",
				Err:     nil,
			},
			expected: "parsing: invalid document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := NewInputError("test message", wrappedErr)

	assert.Equal(t, wrappedErr, appErr.Unwrap())
	assert.ErrorIs(t, appErr, wrappedErr)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name:     "same type",
			appError: NewInputError("test message", nil),
			target:   NewInputError("different message", errors.New("some error")),
			expected: true,
		},
		{
			name:     "different type",
			appError: NewInputError("test message", nil),
			target:   NewParsingError("test message", nil),
			expected: false,
		},
		{
			name:     "not an AppError",
			appError: NewInputError("test message", nil),
			target:   errors.New("standard error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Is(tt.target))
		})
	}
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "input error",
			err:      NewInputError("failed to read file", nil),
			expected: "Input error: failed to read file",
		},
		{
			name:     "parsing error",
			err:      NewParsingError("invalid document", nil),
			expected: "Parse error: invalid document",
		},
		{
			name:     "parsing error wrapping a parse error",
			err:      NewParsingError("failed to parse document", NewParseError(KindEmptyDocument, 0, "document is empty")),
			expected: "Parse error: failed to parse document: EmptyDocument: document is empty (position 0)",
		},
		{
			name:     "bare parse error",
			err:      NewParseErrorAt(KindUnexpectedToken, 3, 'x', "unexpected token"),
			expected: "Parse error: UnexpectedToken: unexpected token (found 'x' at position 3)",
		},
		{
			name:     "analysis error",
			err:      NewAnalysisError("failed to analyze tree", nil),
			expected: "Analysis error: failed to analyze tree",
		},
		{
			name:     "generate error",
			err:      NewGenerateError("failed to generate code", nil),
			expected: "Code generation error: failed to generate code",
		},
		{
			name:     "format error",
			err:      NewFormatError("failed to format code", nil),
			expected: "Code formatting error: failed to format code",
		},
		{
			name:     "output error",
			err:      NewOutputError("failed to write output", nil),
			expected: "Output error: failed to write output",
		},
		{
			name:     "config error",
			err:      NewConfigError("failed to load config", nil),
			expected: "Configuration error: failed to load config",
		},
		{
			name:     "standard error - empty input",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide a document.",
		},
		{
			name:     "standard error - no input",
			err:      fmt.Errorf("reading: %w", ErrNoInput),
			expected: "Error: No input provided. Please specify a file with -i or pipe a document to stdin.",
		},
		{
			name:     "unknown error",
			err:      errors.New("some unknown error"),
			expected: "Error: some unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
		})
	}
}
