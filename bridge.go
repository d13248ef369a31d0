// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import (
	"code.hybscloud.com/kont"
)

// Bridge to the kont sum-type world. Invoke folds every silent state
// into "no result"; Try keeps the causes apart instead: Left carries
// ErrNotBound, ErrExpired, the abort (passthrough or not), or the
// defect, and Right carries the value. Nothing is absorbed here — the
// Either is the whole outcome.

// Try invokes f with a and returns the outcome as kont.Either.
func Try[A, R any](f *Fn[A, R], a A) kont.Either[error, R] {
	if err := f.state(); err != nil {
		return kont.Left[error, R](err)
	}
	r, err := f.fn(a)
	if err != nil {
		return kont.Left[error, R](err)
	}
	return kont.Right[error](r)
}

// Try0 invokes f and returns the outcome as kont.Either.
func Try0[R any](f *Fn0[R]) kont.Either[error, R] {
	if err := f.state(); err != nil {
		return kont.Left[error, R](err)
	}
	r, err := f.fn()
	if err != nil {
		return kont.Left[error, R](err)
	}
	return kont.Right[error](r)
}

// Try2 invokes f with (a, b) and returns the outcome as kont.Either.
func Try2[A, B, R any](f *Fn2[A, B, R], a A, b B) kont.Either[error, R] {
	if err := f.state(); err != nil {
		return kont.Left[error, R](err)
	}
	r, err := f.fn(a, b)
	if err != nil {
		return kont.Left[error, R](err)
	}
	return kont.Right[error](r)
}

// Lift defers an invocation of f with a into an effectful computation.
// Evaluation is lazy: validity and the callable both run when the
// computation does, so a handle rebound or expired in between is
// observed at run time.
func Lift[A, R any](f *Fn[A, R], a A) kont.Eff[kont.Either[error, R]] {
	return kont.Suspend[kont.Resumed](func(k func(kont.Either[error, R]) kont.Resumed) kont.Resumed {
		return k(Try(f, a))
	})
}

// Lift0 defers an invocation of f into an effectful computation.
func Lift0[R any](f *Fn0[R]) kont.Eff[kont.Either[error, R]] {
	return kont.Suspend[kont.Resumed](func(k func(kont.Either[error, R]) kont.Resumed) kont.Resumed {
		return k(Try0(f))
	})
}

// Lift2 defers an invocation of f with (a, b) into an effectful
// computation.
func Lift2[A, B, R any](f *Fn2[A, B, R], a A, b B) kont.Eff[kont.Either[error, R]] {
	return kont.Suspend[kont.Resumed](func(k func(kont.Either[error, R]) kont.Resumed) kont.Resumed {
		return k(Try2(f, a, b))
	})
}
