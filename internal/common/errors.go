package common

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of extraction failure.
type ErrorCode string

// Stable codes (these exact strings appear in logs and persisted reports).
const (
	CodeDocumentEmpty       ErrorCode = "DOCUMENT_EMPTY"
	CodeUnreadableDocument  ErrorCode = "UNREADABLE_DOCUMENT"
	CodeUnsupportedDocument ErrorCode = "UNSUPPORTED_DOCUMENT_TYPE"
	CodeMissingField        ErrorCode = "MISSING_REQUIRED_FIELD"
	CodeInvalidFieldFormat  ErrorCode = "INVALID_FIELD_FORMAT"
	CodeProcessingError     ErrorCode = "PROCESSING_ERROR"
)

// ParsingError represents extraction-specific failures. Structural codes
// (empty/unreadable/unsupported) mean the document cannot be processed at
// all; field codes mean a hard-required field could not be assembled.
type ParsingError struct {
	Code    ErrorCode
	Field   string
	Message string
	Cause   error
}

func (e *ParsingError) Error() string {
	switch {
	case e.Field != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Code, e.Field, e.Message, e.Cause)
	case e.Field != "":
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

func (e *ParsingError) Unwrap() error {
	return e.Cause
}

// Error constructors
func NewDocumentEmpty() *ParsingError {
	return &ParsingError{Code: CodeDocumentEmpty, Message: "document has no pages"}
}

func NewUnreadableDocument() *ParsingError {
	return &ParsingError{Code: CodeUnreadableDocument, Message: "no extractable text after normalization"}
}

func NewUnsupportedDocumentType(detail string) *ParsingError {
	return &ParsingError{Code: CodeUnsupportedDocument, Message: detail}
}

func NewMissingRequiredField(field string) *ParsingError {
	return &ParsingError{Code: CodeMissingField, Field: field, Message: "field could not be extracted"}
}

func NewInvalidFieldFormat(field string) *ParsingError {
	return &ParsingError{Code: CodeInvalidFieldFormat, Field: field, Message: "field value failed validation"}
}

func NewProcessingError(message string, cause error) *ParsingError {
	return &ParsingError{Code: CodeProcessingError, Message: message, Cause: cause}
}

// HasCode reports whether err is (or wraps) a ParsingError with the given
// code.
func HasCode(err error, code ErrorCode) bool {
	var pe *ParsingError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
