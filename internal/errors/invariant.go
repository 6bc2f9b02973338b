package errors

import "fmt"

const metaInvariant = "invariant"

// Invariant builds the error value used when a favor invariant is broken.
// These are caller bugs, never game outcomes.
func Invariant(format string, args ...any) *Error {
	return Internalf("invariant violated: "+format, args...).WithMeta(metaInvariant, true)
}

// Assert panics with an Invariant error when cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(Invariant(format, args...))
	}
}

// IsInvariant reports whether err (or a recovered panic value) is an Invariant error
func IsInvariant(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var customErr *Error
	if !As(err, &customErr) {
		return false
	}
	flagged, _ := customErr.Meta[metaInvariant].(bool)
	return flagged
}

// Recovered converts a recovered panic value into an error. Non-error values
// are wrapped as internal errors so gRPC recovery can report them.
func Recovered(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return Internalf("panic: %s", fmt.Sprint(v))
}
