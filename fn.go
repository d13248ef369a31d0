// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

// Value-returning handles. Each shape stores one canonical fallible
// callable; plain forms adapt into it at bind time, so there is a single
// erasure point per signature.

// Fn is a lifetime-safe handle for callables of shape func(A) R.
// The zero value is an unbound handle whose Invoke yields None.
type Fn[A, R any] struct {
	slot[func(A) (R, error)]
}

// Bind stores a plain callable with no sentinel; the binding is
// considered always valid.
func (f *Fn[A, R]) Bind(fn func(A) R) {
	f.bind(total1(fn), None[Sentinel]())
}

// BindErr stores a fallible callable with no sentinel. The callable may
// return an AbortError to soft-fail the invocation.
func (f *Fn[A, R]) BindErr(fn func(A) (R, error)) {
	f.bind(fn, None[Sentinel]())
}

// BindWith stores a plain callable guarded by a sentinel; once the
// sentinel expires, Invoke becomes a silent no-op.
func (f *Fn[A, R]) BindWith(s Sentinel, fn func(A) R) {
	f.bind(total1(fn), Some(s))
}

// BindErrWith stores a fallible callable guarded by a sentinel.
func (f *Fn[A, R]) BindErrWith(s Sentinel, fn func(A) (R, error)) {
	f.bind(fn, Some(s))
}

// Set replaces the callable but keeps the previously attached sentinel,
// if any. Use Bind/BindWith to also replace the liveness association.
func (f *Fn[A, R]) Set(fn func(A) R) {
	f.rebind(total1(fn))
}

// SetErr replaces the fallible callable, keeping the previous sentinel.
func (f *Fn[A, R]) SetErr(fn func(A) (R, error)) {
	f.rebind(fn)
}

// Invoke calls the stored callable with a.
// Yields (None, nil) when the handle is unbound or expired, or when the
// callable soft-fails without passthrough. A passthrough abort or any
// other callable error is returned as err with a None result.
func (f *Fn[A, R]) Invoke(a A) (Option[R], error) {
	if !f.Valid() {
		return None[R](), nil
	}
	r, err := f.fn(a)
	if err != nil {
		return None[R](), absorb(err)
	}
	return Some(r), nil
}

// Fn0 is a lifetime-safe handle for callables of shape func() R.
type Fn0[R any] struct {
	slot[func() (R, error)]
}

// Bind stores a plain callable with no sentinel.
func (f *Fn0[R]) Bind(fn func() R) {
	f.bind(total0(fn), None[Sentinel]())
}

// BindErr stores a fallible callable with no sentinel.
func (f *Fn0[R]) BindErr(fn func() (R, error)) {
	f.bind(fn, None[Sentinel]())
}

// BindWith stores a plain callable guarded by a sentinel.
func (f *Fn0[R]) BindWith(s Sentinel, fn func() R) {
	f.bind(total0(fn), Some(s))
}

// BindErrWith stores a fallible callable guarded by a sentinel.
func (f *Fn0[R]) BindErrWith(s Sentinel, fn func() (R, error)) {
	f.bind(fn, Some(s))
}

// Set replaces the callable, keeping the previous sentinel.
func (f *Fn0[R]) Set(fn func() R) {
	f.rebind(total0(fn))
}

// SetErr replaces the fallible callable, keeping the previous sentinel.
func (f *Fn0[R]) SetErr(fn func() (R, error)) {
	f.rebind(fn)
}

// Invoke calls the stored callable. Same contract as Fn.Invoke.
func (f *Fn0[R]) Invoke() (Option[R], error) {
	if !f.Valid() {
		return None[R](), nil
	}
	r, err := f.fn()
	if err != nil {
		return None[R](), absorb(err)
	}
	return Some(r), nil
}

// Fn2 is a lifetime-safe handle for callables of shape func(A, B) R.
type Fn2[A, B, R any] struct {
	slot[func(A, B) (R, error)]
}

// Bind stores a plain callable with no sentinel.
func (f *Fn2[A, B, R]) Bind(fn func(A, B) R) {
	f.bind(total2(fn), None[Sentinel]())
}

// BindErr stores a fallible callable with no sentinel.
func (f *Fn2[A, B, R]) BindErr(fn func(A, B) (R, error)) {
	f.bind(fn, None[Sentinel]())
}

// BindWith stores a plain callable guarded by a sentinel.
func (f *Fn2[A, B, R]) BindWith(s Sentinel, fn func(A, B) R) {
	f.bind(total2(fn), Some(s))
}

// BindErrWith stores a fallible callable guarded by a sentinel.
func (f *Fn2[A, B, R]) BindErrWith(s Sentinel, fn func(A, B) (R, error)) {
	f.bind(fn, Some(s))
}

// Set replaces the callable, keeping the previous sentinel.
func (f *Fn2[A, B, R]) Set(fn func(A, B) R) {
	f.rebind(total2(fn))
}

// SetErr replaces the fallible callable, keeping the previous sentinel.
func (f *Fn2[A, B, R]) SetErr(fn func(A, B) (R, error)) {
	f.rebind(fn)
}

// Invoke calls the stored callable with (a, b). Same contract as
// Fn.Invoke.
func (f *Fn2[A, B, R]) Invoke(a A, b B) (Option[R], error) {
	if !f.Valid() {
		return None[R](), nil
	}
	r, err := f.fn(a, b)
	if err != nil {
		return None[R](), absorb(err)
	}
	return Some(r), nil
}

// total0/total1/total2 adapt plain callables into the canonical
// fallible shape.

func total0[R any](fn func() R) func() (R, error) {
	return func() (R, error) { return fn(), nil }
}

func total1[A, R any](fn func(A) R) func(A) (R, error) {
	return func(a A) (R, error) { return fn(a), nil }
}

func total2[A, B, R any](fn func(A, B) R) func(A, B) (R, error) {
	return func(a A, b B) (R, error) { return fn(a, b), nil }
}
