package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe a document to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrUnknownMode     = errors.New("unknown output mode")
)

// ErrorType categorizes errors by the pipeline stage that produced them
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeParsing  ErrorType = "parsing"
	ErrorTypeAnalysis ErrorType = "analysis"
	ErrorTypeGenerate ErrorType = "generate"
	ErrorTypeFormat   ErrorType = "format"
	ErrorTypeOutput   ErrorType = "output"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *AppError of the same Type
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

func newAppError(errType ErrorType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return newAppError(ErrorTypeInput, message, err)
}

// NewParsingError creates a new error related to document parsing
func NewParsingError(message string, err error) *AppError {
	return newAppError(ErrorTypeParsing, message, err)
}

// NewAnalysisError creates a new error related to tree analysis
func NewAnalysisError(message string, err error) *AppError {
	return newAppError(ErrorTypeAnalysis, message, err)
}

// NewGenerateError creates a new error related to code generation
func NewGenerateError(message string, err error) *AppError {
	return newAppError(ErrorTypeGenerate, message, err)
}

// NewFormatError creates a new error related to code formatting
func NewFormatError(message string, err error) *AppError {
	return newAppError(ErrorTypeFormat, message, err)
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return newAppError(ErrorTypeOutput, message, err)
}

// NewConfigError creates a new error related to loading configuration
func NewConfigError(message string, err error) *AppError {
	return newAppError(ErrorTypeConfig, message, err)
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			var parseErr *ParseError
			if errors.As(appErr.Err, &parseErr) {
				return fmt.Sprintf("Parse error: %s: %s", appErr.Message, parseErr.Error())
			}
			return fmt.Sprintf("Parse error: %s", appErr.Message)
		case ErrorTypeAnalysis:
			return fmt.Sprintf("Analysis error: %s", appErr.Message)
		case ErrorTypeGenerate:
			return fmt.Sprintf("Code generation error: %s", appErr.Message)
		case ErrorTypeFormat:
			return fmt.Sprintf("Code formatting error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("Parse error: %s", parseErr.Error())
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide a document."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with a document."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe a document to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
