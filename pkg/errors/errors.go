// Package errors provides typed errors for the application
package errors

// baseError is the base implementation for all error types
type baseError struct {
	msg string
}

func (e *baseError) Error() string {
	return e.msg
}

// SourceUnavailableError means the link could not be resolved by the provider
type SourceUnavailableError struct {
	baseError
}

// NewSourceUnavailableError creates a new SourceUnavailableError
func NewSourceUnavailableError(msg string) *SourceUnavailableError {
	return &SourceUnavailableError{baseError{msg: msg}}
}

// NoStreamFoundError means no stream matched the requested mode
type NoStreamFoundError struct {
	baseError
}

// NewNoStreamFoundError creates a new NoStreamFoundError
func NewNoStreamFoundError(msg string) *NoStreamFoundError {
	return &NoStreamFoundError{baseError{msg: msg}}
}

// DownloadFailedError means the transfer or a local write failed
type DownloadFailedError struct {
	baseError
}

// NewDownloadFailedError creates a new DownloadFailedError
func NewDownloadFailedError(msg string) *DownloadFailedError {
	return &DownloadFailedError{baseError{msg: msg}}
}

// FileTooLargeError means the downloaded file exceeds the size ceiling
type FileTooLargeError struct {
	baseError
}

// NewFileTooLargeError creates a new FileTooLargeError
func NewFileTooLargeError(msg string) *FileTooLargeError {
	return &FileTooLargeError{baseError{msg: msg}}
}

// DeliveryFailedError means the upload to Telegram was rejected
type DeliveryFailedError struct {
	baseError
}

// NewDeliveryFailedError creates a new DeliveryFailedError
func NewDeliveryFailedError(msg string) *DeliveryFailedError {
	return &DeliveryFailedError{baseError{msg: msg}}
}

// LookupFailedError means the original message or URL could not be recovered
type LookupFailedError struct {
	baseError
}

// NewLookupFailedError creates a new LookupFailedError
func NewLookupFailedError(msg string) *LookupFailedError {
	return &LookupFailedError{baseError{msg: msg}}
}
