// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

// Method binding. Each form takes an owner and a method expression,
// closes the method over the owner, and binds the closure. When the
// owner implements Sentineled (for example by embedding Lifetime), its
// sentinel is attached automatically, so the binding expires together
// with the owner.
//
// T may be a pointer type for pointer-receiver methods:
//
//	deleg.BindMethod(&onTick, w, (*Worker).Tick)

// BindMethod binds owner's value-returning method to f.
func BindMethod[T, A, R any](f *Fn[A, R], owner T, method func(T, A) R) {
	fn := func(a A) R { return method(owner, a) }
	if s, ok := any(owner).(Sentineled); ok {
		f.BindWith(s.Sentinel(), fn)
		return
	}
	f.Bind(fn)
}

// BindMethodErr binds owner's fallible value-returning method to f.
func BindMethodErr[T, A, R any](f *Fn[A, R], owner T, method func(T, A) (R, error)) {
	fn := func(a A) (R, error) { return method(owner, a) }
	if s, ok := any(owner).(Sentineled); ok {
		f.BindErrWith(s.Sentinel(), fn)
		return
	}
	f.BindErr(fn)
}

// BindActMethod binds owner's void method to f.
func BindActMethod[T, A any](f *Act[A], owner T, method func(T, A)) {
	fn := func(a A) { method(owner, a) }
	if s, ok := any(owner).(Sentineled); ok {
		f.BindWith(s.Sentinel(), fn)
		return
	}
	f.Bind(fn)
}

// BindActMethodErr binds owner's fallible void method to f.
func BindActMethodErr[T, A any](f *Act[A], owner T, method func(T, A) error) {
	fn := func(a A) error { return method(owner, a) }
	if s, ok := any(owner).(Sentineled); ok {
		f.BindErrWith(s.Sentinel(), fn)
		return
	}
	f.BindErr(fn)
}

// BindOwned binds a plain callable guarded by owner's sentinel.
// Useful with method values: deleg.BindOwned(&onTick, w, w.Tick).
func BindOwned[A, R any](f *Fn[A, R], owner Sentineled, fn func(A) R) {
	f.BindWith(owner.Sentinel(), fn)
}

// BindOwnedAct binds a plain void callable guarded by owner's sentinel.
func BindOwnedAct[A any](f *Act[A], owner Sentineled, fn func(A)) {
	f.BindWith(owner.Sentinel(), fn)
}
