// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import "errors"

// ErrNotBound marks an invocation of a handle with no stored callable.
// Invoke treats this state as a silent no-op; only the Either world
// (Try, Lift) surfaces it as a Left value.
var ErrNotBound = errors.New("deleg: not bound")

// ErrExpired marks an invocation of a handle whose sentinel reports the
// owner gone. Invoke treats this state as a silent no-op; only the
// Either world (Try, Lift) surfaces it as a Left value.
var ErrExpired = errors.New("deleg: sentinel expired")

// AbortError is the soft-failure signal a bound callable returns to
// abort its own invocation. Without Passthrough the handle absorbs it
// and Invoke yields no result and a nil error. With Passthrough the
// error escapes Invoke for the caller to handle.
//
// Any other error a callable returns is an unmodeled defect and always
// escapes Invoke unmodified.
type AbortError struct {
	Reason      string
	Passthrough bool
}

// abortReasonDefault is used when no reason is given.
const abortReasonDefault = "unspecified error"

// Error implements error.
func (e *AbortError) Error() string {
	return "deleg: aborted: " + e.Reason
}

// Abort creates a soft-failure signal that the handle absorbs.
// An empty reason defaults to "unspecified error".
func Abort(reason string) error {
	if reason == "" {
		reason = abortReasonDefault
	}
	return &AbortError{Reason: reason}
}

// AbortPassthrough creates a soft-failure signal that escapes the
// handle for the caller of Invoke to observe.
// An empty reason defaults to "unspecified error".
func AbortPassthrough(reason string) error {
	if reason == "" {
		reason = abortReasonDefault
	}
	return &AbortError{Reason: reason, Passthrough: true}
}

// IsAbort reports whether err is a soft-failure signal, passthrough
// or not.
func IsAbort(err error) bool {
	var ab *AbortError
	return errors.As(err, &ab)
}

// absorb classifies a callable error: non-passthrough aborts are
// swallowed (nil), passthrough aborts and unmodeled defects escape.
func absorb(err error) error {
	var ab *AbortError
	if errors.As(err, &ab) && !ab.Passthrough {
		return nil
	}
	return err
}
