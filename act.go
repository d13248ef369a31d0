// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

// Void handles. Invoke on an unbound or expired handle, or an absorbed
// abort, is a plain return with a nil error.

// Act is a lifetime-safe handle for callables of shape func(A).
// The zero value is an unbound handle whose Invoke is a no-op.
type Act[A any] struct {
	slot[func(A) error]
}

// Bind stores a plain callable with no sentinel.
func (f *Act[A]) Bind(fn func(A)) {
	f.bind(voidTotal1(fn), None[Sentinel]())
}

// BindErr stores a fallible callable with no sentinel. The callable may
// return an AbortError to soft-fail the invocation.
func (f *Act[A]) BindErr(fn func(A) error) {
	f.bind(fn, None[Sentinel]())
}

// BindWith stores a plain callable guarded by a sentinel.
func (f *Act[A]) BindWith(s Sentinel, fn func(A)) {
	f.bind(voidTotal1(fn), Some(s))
}

// BindErrWith stores a fallible callable guarded by a sentinel.
func (f *Act[A]) BindErrWith(s Sentinel, fn func(A) error) {
	f.bind(fn, Some(s))
}

// Set replaces the callable but keeps the previously attached sentinel,
// if any. Use Bind/BindWith to also replace the liveness association.
func (f *Act[A]) Set(fn func(A)) {
	f.rebind(voidTotal1(fn))
}

// SetErr replaces the fallible callable, keeping the previous sentinel.
func (f *Act[A]) SetErr(fn func(A) error) {
	f.rebind(fn)
}

// Invoke calls the stored callable with a.
// Returns nil when the handle is unbound or expired, or when the
// callable soft-fails without passthrough. A passthrough abort or any
// other callable error is returned.
func (f *Act[A]) Invoke(a A) error {
	if !f.Valid() {
		return nil
	}
	return absorb(f.fn(a))
}

// Act0 is a lifetime-safe handle for callables of shape func().
type Act0 struct {
	slot[func() error]
}

// Bind stores a plain callable with no sentinel.
func (f *Act0) Bind(fn func()) {
	f.bind(voidTotal0(fn), None[Sentinel]())
}

// BindErr stores a fallible callable with no sentinel.
func (f *Act0) BindErr(fn func() error) {
	f.bind(fn, None[Sentinel]())
}

// BindWith stores a plain callable guarded by a sentinel.
func (f *Act0) BindWith(s Sentinel, fn func()) {
	f.bind(voidTotal0(fn), Some(s))
}

// BindErrWith stores a fallible callable guarded by a sentinel.
func (f *Act0) BindErrWith(s Sentinel, fn func() error) {
	f.bind(fn, Some(s))
}

// Set replaces the callable, keeping the previous sentinel.
func (f *Act0) Set(fn func()) {
	f.rebind(voidTotal0(fn))
}

// SetErr replaces the fallible callable, keeping the previous sentinel.
func (f *Act0) SetErr(fn func() error) {
	f.rebind(fn)
}

// Invoke calls the stored callable. Same contract as Act.Invoke.
func (f *Act0) Invoke() error {
	if !f.Valid() {
		return nil
	}
	return absorb(f.fn())
}

// Act2 is a lifetime-safe handle for callables of shape func(A, B).
type Act2[A, B any] struct {
	slot[func(A, B) error]
}

// Bind stores a plain callable with no sentinel.
func (f *Act2[A, B]) Bind(fn func(A, B)) {
	f.bind(voidTotal2(fn), None[Sentinel]())
}

// BindErr stores a fallible callable with no sentinel.
func (f *Act2[A, B]) BindErr(fn func(A, B) error) {
	f.bind(fn, None[Sentinel]())
}

// BindWith stores a plain callable guarded by a sentinel.
func (f *Act2[A, B]) BindWith(s Sentinel, fn func(A, B)) {
	f.bind(voidTotal2(fn), Some(s))
}

// BindErrWith stores a fallible callable guarded by a sentinel.
func (f *Act2[A, B]) BindErrWith(s Sentinel, fn func(A, B) error) {
	f.bind(fn, Some(s))
}

// Set replaces the callable, keeping the previous sentinel.
func (f *Act2[A, B]) Set(fn func(A, B)) {
	f.rebind(voidTotal2(fn))
}

// SetErr replaces the fallible callable, keeping the previous sentinel.
func (f *Act2[A, B]) SetErr(fn func(A, B) error) {
	f.rebind(fn)
}

// Invoke calls the stored callable with (a, b). Same contract as
// Act.Invoke.
func (f *Act2[A, B]) Invoke(a A, b B) error {
	if !f.Valid() {
		return nil
	}
	return absorb(f.fn(a, b))
}

func voidTotal0(fn func()) func() error {
	return func() error { fn(); return nil }
}

func voidTotal1[A any](fn func(A)) func(A) error {
	return func(a A) error { fn(a); return nil }
}

func voidTotal2[A, B any](fn func(A, B)) func(A, B) error {
	return func(a A, b B) error { fn(a, b); return nil }
}
