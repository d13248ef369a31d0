// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

// slot is the storage core shared by all handle shapes: one erased
// callable of canonical shape F paired with an optional Sentinel.
// The pair is always replaced or cleared as a unit, never half-cleared.
//
// A slot is not synchronized against concurrent rebind/invoke on the
// same handle; the caller serializes. Distinct handles are independent.
type slot[F any] struct {
	fn       F
	bound    bool
	sentinel Option[Sentinel]
	serial   Serial
}

// bind stores the callable and sentinel as an atomic replacement of the
// slot's prior contents and assigns a fresh serial.
func (s *slot[F]) bind(fn F, sentinel Option[Sentinel]) {
	s.fn = fn
	s.bound = true
	s.sentinel = sentinel
	s.serial = nextSerial()
}

// rebind replaces the callable but carries the previous sentinel over.
// This is the assignment form: the liveness association survives plain
// rebinding until a full bind supplies a fresh sentinel.
func (s *slot[F]) rebind(fn F) {
	s.fn = fn
	s.bound = true
	s.serial = nextSerial()
}

// Unbind clears both callable and sentinel as a unit. The handle
// reports unbound until rebound.
func (s *slot[F]) Unbind() {
	var zero F
	s.fn = zero
	s.bound = false
	s.sentinel = None[Sentinel]()
}

// Bound reports whether a callable is currently stored, independent of
// sentinel liveness.
func (s *slot[F]) Bound() bool {
	return s.bound
}

// Expired reports whether a sentinel is attached and its owner is gone.
// A handle without a sentinel never expires.
func (s *slot[F]) Expired() bool {
	sen, ok := s.sentinel.Get()
	if !ok {
		return false
	}
	return sen.Expired()
}

// Valid reports whether an invocation would reach the callable:
// bound and not expired.
func (s *slot[F]) Valid() bool {
	return s.bound && !s.Expired()
}

// Serial returns the serial assigned to the current binding,
// or zero if the handle was never bound.
func (s *slot[F]) Serial() Serial {
	return s.serial
}

// Guarded reports whether a sentinel is attached.
func (s *slot[F]) Guarded() bool {
	return s.sentinel.IsSome()
}

// state classifies an invalid slot for the Either world.
// Returns nil when the slot is valid.
func (s *slot[F]) state() error {
	if !s.bound {
		return ErrNotBound
	}
	if s.Expired() {
		return ErrExpired
	}
	return nil
}
