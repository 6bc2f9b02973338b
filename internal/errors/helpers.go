package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is. Two *Error values match when their codes do.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func asError(err error) *Error {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr
	}
	return nil
}

// GetCode returns the code of err. Nil is OK and foreign errors are internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e := asError(err); e != nil {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata carried by err, if any
func GetMeta(err error) map[string]any {
	if e := asError(err); e != nil {
		return e.Meta
	}
	return nil
}

// GetMessage returns the caller-facing message of err
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := asError(err); e != nil {
		return e.Message
	}
	return err.Error()
}

// HasCode reports whether err is non-nil and carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// IsNotFound reports a missing record
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsInvalidArgument reports a rejected request
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }

// IsFailedPrecondition reports a request the state could not serve
func IsFailedPrecondition(err error) bool { return HasCode(err, CodeFailedPrecondition) }

// IsDataLoss reports a stored record that no longer decodes or validates
func IsDataLoss(err error) bool { return HasCode(err, CodeDataLoss) }
