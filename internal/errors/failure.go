package errors

import (
	"errors"
)

// Failure classifies where in the fetch pipeline an error happened
type Failure string

// Failure kinds
const (
	FailureNone   Failure = ""
	FailureLookup Failure = "lookup"
	FailureBatch  Failure = "batch"
	FailureChain  Failure = "chain"
	FailureConfig Failure = "config"
)

const metaFailure = "failure"

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return codeForCause(err)
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// GetFailure returns the outermost failure kind attached to err
func GetFailure(err error) Failure {
	kind, _ := GetMeta(err)[metaFailure].(string)
	return Failure(kind)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsAborted checks if an error is a lost concurrent update
func IsAborted(err error) bool {
	return GetCode(err) == CodeAborted
}

// IsCanceled checks if an error is a canceled error
func IsCanceled(err error) bool {
	return GetCode(err) == CodeCanceled
}

// IsLookupFailure reports whether err is tagged as a single lookup failure
func IsLookupFailure(err error) bool {
	return GetFailure(err) == FailureLookup
}

// IsBatchFailure reports whether err is tagged as a failed region batch
func IsBatchFailure(err error) bool {
	return GetFailure(err) == FailureBatch
}

// IsChainFailure reports whether err is tagged as a failed chain resolution
func IsChainFailure(err error) bool {
	return GetFailure(err) == FailureChain
}

// IsConfigFailure reports whether err is an unknown region or invalid range
func IsConfigFailure(err error) bool {
	return GetFailure(err) == FailureConfig
}
