// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is reported for a nil error.
	CategoryNoError Category = iota
	// CategoryConfiguration A required setting or credential is missing or invalid.
	// Raised before any client is constructed.
	CategoryConfiguration
	// CategoryClientInit The exchange or chain client could not be constructed,
	// for example a malformed key or an unusable endpoint.
	CategoryClientInit
	// CategoryRemote The exchange API failed or returned an error payload.
	CategoryRemote
	// CategoryChainTimeout Waiting for a transaction receipt exceeded its timeout.
	// The transaction may still be mined; callers treat it as pending.
	CategoryChainTimeout
	// CategoryChainSubmission The chain rejected or reverted a transaction.
	CategoryChainSubmission
	// CategoryGeneralError The tool failed in an unexpected way
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryConfiguration:
		return "CategoryConfiguration"
	case CategoryClientInit:
		return "CategoryClientInit"
	case CategoryRemote:
		return "CategoryRemote"
	case CategoryChainTimeout:
		return "CategoryChainTimeout"
	case CategoryChainSubmission:
		return "CategoryChainSubmission"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents the error type shared by every package of the tool.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		if err.Message == "" {
			return err.Err.Error()
		}
		return err.Message + ": " + err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	return CategoryOf(err) == cat
}

// CategoryOf returns the category of the first ServiceError in err's chain.
// Errors that carry no category are general errors.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNoError
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category
	}
	return CategoryGeneralError
}

// IsFatal reports whether err must abort the run.
// A chain timeout only means the outcome is not known yet.
func IsFatal(err error) bool {
	switch CategoryOf(err) {
	case CategoryNoError, CategoryChainTimeout:
		return false
	default:
		return true
	}
}

func newError(cat Category, err error, message string) error {
	if err == nil {
		err = errors.New(message)
		message = ""
	}
	return &ServiceError{
		Category: cat,
		Message:  message,
		Err:      err,
	}
}

// ConfigurationError returns an error with category CategoryConfiguration
func ConfigurationError(err error, message string) error {
	return newError(CategoryConfiguration, err, message)
}

// ClientInitError returns an error with category CategoryClientInit
func ClientInitError(err error, message string) error {
	return newError(CategoryClientInit, err, message)
}

// RemoteError returns an error with category CategoryRemote
func RemoteError(err error, message string) error {
	return newError(CategoryRemote, err, message)
}

// ChainTimeoutError returns an error with category CategoryChainTimeout
func ChainTimeoutError(err error, message string) error {
	return newError(CategoryChainTimeout, err, message)
}

// ChainSubmissionError returns an error with category CategoryChainSubmission
func ChainSubmissionError(err error, message string) error {
	return newError(CategoryChainSubmission, err, message)
}

// GeneralError returns a general error
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Err:      err,
	}
}

// ExitCode returns the process exit status for the error category.
// A nil error and a chain timeout both exit cleanly.
func ExitCode(err error) int {
	switch CategoryOf(err) {
	case CategoryNoError, CategoryChainTimeout:
		return 0
	case CategoryConfiguration:
		return 2
	case CategoryClientInit:
		return 3
	case CategoryRemote:
		return 4
	case CategoryChainSubmission:
		return 5
	default:
		return 1
	}
}
