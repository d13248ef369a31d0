// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import "reflect"

// Overload groups handles of distinct signatures under one name and
// routes binds and calls by exact signature match.
//
// Members are registered up front with AddFn/AddAct and friends;
// registering the same signature twice panics, as does requesting a
// signature that was never registered — ambiguity and absence are
// programming errors, not runtime states. There is no signature
// coercion: func(int32) int32 never stands in for func(int) int.
//
// Signature identity is the reflect.Type of the plain callable shape
// (func(A) R for Fn members, func(A) for Act members), so value and
// void members of the same argument list never collide.
type Overload struct {
	members map[reflect.Type]*member
}

// member pairs a registered handle with its bind adapter.
// tryBind type-asserts a candidate against the member's accepted
// shapes (plain and fallible) and binds on match.
type member struct {
	handle  any
	tryBind func(v any, s Option[Sentinel]) bool
}

// NewOverload creates an empty overload set.
func NewOverload() *Overload {
	return &Overload{members: make(map[reflect.Type]*member)}
}

// Len returns the number of registered signatures.
func (o *Overload) Len() int {
	return len(o.members)
}

// BindAll binds v into every member it satisfies, each independently;
// members v cannot satisfy are left untouched.
//
// A func value is matched by its own type. Any other value is matched
// through its method set: every method whose shape a member accepts is
// bound to that member (the Go analog of an overloaded call operator).
// When v implements Sentineled, its sentinel guards every binding made
// by this call.
func (o *Overload) BindAll(v any) {
	if s, ok := v.(Sentineled); ok {
		o.bindAll(v, Some(s.Sentinel()))
		return
	}
	o.bindAll(v, None[Sentinel]())
}

// BindAllWith is BindAll with an explicit sentinel guarding every
// binding made by this call.
func (o *Overload) BindAllWith(s Sentinel, v any) {
	o.bindAll(v, Some(s))
}

func (o *Overload) bindAll(v any, s Option[Sentinel]) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return
	case reflect.Func:
		for _, m := range o.members {
			m.tryBind(v, s)
		}
	default:
		for i := 0; i < rv.NumMethod(); i++ {
			mv := rv.Method(i).Interface()
			for _, m := range o.members {
				m.tryBind(mv, s)
			}
		}
	}
}

// add registers a member, rejecting duplicate signatures.
func (o *Overload) add(key reflect.Type, m *member) {
	if _, ok := o.members[key]; ok {
		panic("deleg: duplicate signature in overload set: " + key.String())
	}
	o.members[key] = m
}

// get resolves a member, rejecting absent signatures.
func (o *Overload) get(key reflect.Type) *member {
	m, ok := o.members[key]
	if !ok {
		panic("deleg: signature not in overload set: " + key.String())
	}
	return m
}

// keyOf returns the signature identity for callable shape F.
func keyOf[F any]() reflect.Type {
	return reflect.TypeOf((*F)(nil)).Elem()
}

// AddFn registers an empty Fn[A, R] member and returns it.
// Panics if func(A) R is already registered.
func AddFn[A, R any](o *Overload) *Fn[A, R] {
	h := &Fn[A, R]{}
	o.add(keyOf[func(A) R](), &member{
		handle: h,
		tryBind: func(v any, s Option[Sentinel]) bool {
			if fn, ok := v.(func(A) R); ok {
				h.bind(total1(fn), s)
				return true
			}
			if fn, ok := v.(func(A) (R, error)); ok {
				h.bind(fn, s)
				return true
			}
			return false
		},
	})
	return h
}

// AddFn0 registers an empty Fn0[R] member and returns it.
func AddFn0[R any](o *Overload) *Fn0[R] {
	h := &Fn0[R]{}
	o.add(keyOf[func() R](), &member{
		handle: h,
		tryBind: func(v any, s Option[Sentinel]) bool {
			if fn, ok := v.(func() R); ok {
				h.bind(total0(fn), s)
				return true
			}
			if fn, ok := v.(func() (R, error)); ok {
				h.bind(fn, s)
				return true
			}
			return false
		},
	})
	return h
}

// AddFn2 registers an empty Fn2[A, B, R] member and returns it.
func AddFn2[A, B, R any](o *Overload) *Fn2[A, B, R] {
	h := &Fn2[A, B, R]{}
	o.add(keyOf[func(A, B) R](), &member{
		handle: h,
		tryBind: func(v any, s Option[Sentinel]) bool {
			if fn, ok := v.(func(A, B) R); ok {
				h.bind(total2(fn), s)
				return true
			}
			if fn, ok := v.(func(A, B) (R, error)); ok {
				h.bind(fn, s)
				return true
			}
			return false
		},
	})
	return h
}

// AddAct registers an empty Act[A] member and returns it.
// Panics if func(A) is already registered.
func AddAct[A any](o *Overload) *Act[A] {
	h := &Act[A]{}
	o.add(keyOf[func(A)](), &member{
		handle: h,
		tryBind: func(v any, s Option[Sentinel]) bool {
			if fn, ok := v.(func(A)); ok {
				h.bind(voidTotal1(fn), s)
				return true
			}
			if fn, ok := v.(func(A) error); ok {
				h.bind(fn, s)
				return true
			}
			return false
		},
	})
	return h
}

// AddAct0 registers an empty Act0 member and returns it.
func AddAct0(o *Overload) *Act0 {
	h := &Act0{}
	o.add(keyOf[func()](), &member{
		handle: h,
		tryBind: func(v any, s Option[Sentinel]) bool {
			if fn, ok := v.(func()); ok {
				h.bind(voidTotal0(fn), s)
				return true
			}
			if fn, ok := v.(func() error); ok {
				h.bind(fn, s)
				return true
			}
			return false
		},
	})
	return h
}

// AddAct2 registers an empty Act2[A, B] member and returns it.
func AddAct2[A, B any](o *Overload) *Act2[A, B] {
	h := &Act2[A, B]{}
	o.add(keyOf[func(A, B)](), &member{
		handle: h,
		tryBind: func(v any, s Option[Sentinel]) bool {
			if fn, ok := v.(func(A, B)); ok {
				h.bind(voidTotal2(fn), s)
				return true
			}
			if fn, ok := v.(func(A, B) error); ok {
				h.bind(fn, s)
				return true
			}
			return false
		},
	})
	return h
}

// GetFn resolves the Fn[A, R] member. Panics if func(A) R was never
// registered.
func GetFn[A, R any](o *Overload) *Fn[A, R] {
	return o.get(keyOf[func(A) R]()).handle.(*Fn[A, R])
}

// GetFn0 resolves the Fn0[R] member.
func GetFn0[R any](o *Overload) *Fn0[R] {
	return o.get(keyOf[func() R]()).handle.(*Fn0[R])
}

// GetFn2 resolves the Fn2[A, B, R] member.
func GetFn2[A, B, R any](o *Overload) *Fn2[A, B, R] {
	return o.get(keyOf[func(A, B) R]()).handle.(*Fn2[A, B, R])
}

// GetAct resolves the Act[A] member. Panics if func(A) was never
// registered.
func GetAct[A any](o *Overload) *Act[A] {
	return o.get(keyOf[func(A)]()).handle.(*Act[A])
}

// GetAct0 resolves the Act0 member.
func GetAct0(o *Overload) *Act0 {
	return o.get(keyOf[func()]()).handle.(*Act0)
}

// GetAct2 resolves the Act2[A, B] member.
func GetAct2[A, B any](o *Overload) *Act2[A, B] {
	return o.get(keyOf[func(A, B)]()).handle.(*Act2[A, B])
}

// CallFn resolves the Fn[A, R] member and invokes it.
func CallFn[A, R any](o *Overload, a A) (Option[R], error) {
	return GetFn[A, R](o).Invoke(a)
}

// CallFn0 resolves the Fn0[R] member and invokes it.
func CallFn0[R any](o *Overload) (Option[R], error) {
	return GetFn0[R](o).Invoke()
}

// CallFn2 resolves the Fn2[A, B, R] member and invokes it.
func CallFn2[A, B, R any](o *Overload, a A, b B) (Option[R], error) {
	return GetFn2[A, B, R](o).Invoke(a, b)
}

// CallAct resolves the Act[A] member and invokes it.
func CallAct[A any](o *Overload, a A) error {
	return GetAct[A](o).Invoke(a)
}

// CallAct0 resolves the Act0 member and invokes it.
func CallAct0(o *Overload) error {
	return GetAct0(o).Invoke()
}

// CallAct2 resolves the Act2[A, B] member and invokes it.
func CallAct2[A, B any](o *Overload, a A, b B) error {
	return GetAct2[A, B](o).Invoke(a, b)
}
