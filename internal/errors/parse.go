package errors

import (
	"errors"
	"fmt"
)

// ParseErrorKind identifies what went wrong while parsing a document
type ParseErrorKind string

// Structural kinds
const (
	KindEmptyDocument        ParseErrorKind = "EmptyDocument"
	KindExpectedObjectStart  ParseErrorKind = "ExpectedObjectStart"
	KindExpectedArrayStart   ParseErrorKind = "ExpectedArrayStart"
	KindExpectedStringStart  ParseErrorKind = "ExpectedStringStart"
	KindUnterminatedString   ParseErrorKind = "UnterminatedString"
	KindUnexpectedToken      ParseErrorKind = "UnexpectedToken"
	KindUnexpectedWordToken  ParseErrorKind = "UnexpectedWordToken"
	KindMissingTerminator    ParseErrorKind = "MissingTerminator"
	KindUnexpectedEndOfInput ParseErrorKind = "UnexpectedEndOfInput"
	KindTrailingContent      ParseErrorKind = "TrailingContent"
)

// Sequencing kinds
const (
	KindDuplicateKeyBeforeColon         ParseErrorKind = "DuplicateKeyBeforeColon"
	KindTrailingCommaExpectedPair       ParseErrorKind = "TrailingCommaExpectedPair"
	KindTrailingCommaNoFollowingPair    ParseErrorKind = "TrailingCommaNoFollowingPair"
	KindCommaBeforeElement              ParseErrorKind = "CommaBeforeElement"
	KindMissingCommaBetweenElements     ParseErrorKind = "MissingCommaBetweenElements"
	KindTrailingCommaNoFollowingElement ParseErrorKind = "TrailingCommaNoFollowingElement"
	KindColonWithoutKey                 ParseErrorKind = "ColonWithoutKey"
	KindMissingKey                      ParseErrorKind = "MissingKey"
	KindMissingValue                    ParseErrorKind = "MissingValue"
)

// Lexical and limit kinds
const (
	KindInvalidNumber      ParseErrorKind = "InvalidNumber"
	KindDepthLimitExceeded ParseErrorKind = "DepthLimitExceeded"
)

// Category groups parse error kinds
type Category string

const (
	CategoryStructural Category = "structural"
	CategorySequencing Category = "sequencing"
	CategoryLexical    Category = "lexical"
	CategoryLimit      Category = "limit"
)

// Category returns the group k belongs to
func (k ParseErrorKind) Category() Category {
	switch k {
	case KindDuplicateKeyBeforeColon, KindTrailingCommaExpectedPair, KindTrailingCommaNoFollowingPair,
		KindCommaBeforeElement, KindMissingCommaBetweenElements, KindTrailingCommaNoFollowingElement,
		KindColonWithoutKey, KindMissingKey, KindMissingValue:
		return CategorySequencing
	case KindInvalidNumber:
		return CategoryLexical
	case KindDepthLimitExceeded:
		return CategoryLimit
	default:
		return CategoryStructural
	}
}

// ParseError is returned by every parser operation. Pos is the cursor
// position (in code points) at which the failure was detected.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
	Pos     int
	Char    rune
	HasChar bool
}

// NewParseError creates a ParseError without an offending character
func NewParseError(kind ParseErrorKind, pos int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

// NewParseErrorAt creates a ParseError naming the offending character
func NewParseErrorAt(kind ParseErrorKind, pos int, char rune, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Char:    char,
		HasChar: true,
	}
}

// Error implements error interface
func (e *ParseError) Error() string {
	if e.HasChar {
		return fmt.Sprintf("%s: %s (found %q at position %d)", e.Kind, e.Message, e.Char, e.Pos)
	}
	return fmt.Sprintf("%s: %s (position %d)", e.Kind, e.Message, e.Pos)
}

// Is reports whether target is a *ParseError of the same Kind
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the kind of the first ParseError in err's chain, or ""
func KindOf(err error) ParseErrorKind {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind
	}
	return ""
}

// IsKind reports whether err's chain holds a ParseError of the given kind
func IsKind(err error, kind ParseErrorKind) bool {
	return errors.Is(err, &ParseError{Kind: kind})
}
