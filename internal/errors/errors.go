package errors

import (
	"fmt"
)

// AppError is a structured application error with a stable code.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code when the
// underlying error already carries one.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN".
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Error codes used across the console.
const (
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeBackendError   = "BACKEND_ERROR"
	CodeImportHeader   = "IMPORT_HEADER_INVALID"
	CodeImportRow      = "IMPORT_ROW_INVALID"
	CodeImportDispatch = "IMPORT_DISPATCH_FAILED"
	CodeExportFailed   = "EXPORT_FAILED"
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidInput   = "INVALID_INPUT"
	CodeInternalError  = "INTERNAL_ERROR"
)

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func BackendError(resource string, cause error) *AppError {
	return &AppError{
		Code:    CodeBackendError,
		Message: fmt.Sprintf("backend request for %s failed", resource),
		Cause:   cause,
	}
}

func ImportHeader(message string) *AppError {
	return New(CodeImportHeader, message)
}

func ImportRow(line int, message string) *AppError {
	return New(CodeImportRow, fmt.Sprintf("line %d: %s", line, message))
}

func ExportFailed(message string, cause error) *AppError {
	return &AppError{Code: CodeExportFailed, Message: message, Cause: cause}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
