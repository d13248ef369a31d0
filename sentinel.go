// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import "code.hybscloud.com/atomix"

// lifeState is the shared marker between a Lifetime and its Sentinels.
// strong counts the live owner-side references; zero means expired.
// The transition to zero is one-way: Retain refuses once expired, so
// the count can never resurrect.
type lifeState struct {
	strong atomix.Uint32
}

// Sentinel is a non-owning observer of an owner's existence.
// Copying a Sentinel is cheap and never extends the owner's lifetime;
// the garbage collector keeps the shared marker reachable while any
// sentinel copy exists (the weak half of the pair), while liveness
// itself is carried by the strong count alone.
//
// The zero Sentinel is well-formed and reports expired.
type Sentinel struct {
	state *lifeState
}

// Expired reports whether the owner is gone.
// Safe to call any number of times from any goroutine; once it returns
// true it returns true on every subsequent call.
func (s Sentinel) Expired() bool {
	if s.state == nil {
		return true
	}
	return s.state.strong.Load() == 0
}

// Alive reports whether the owner still exists.
func (s Sentinel) Alive() bool {
	return !s.Expired()
}

// Sentineled is implemented by owners that publish a Sentinel bound to
// their own lifetime. Embedding a Lifetime satisfies it.
type Sentineled interface {
	Sentinel() Sentinel
}

// Lifetime publishes the liveness of its owner. Construct with
// NewLifetime, typically as an embedded field, and call Release when the
// owner is torn down; every Sentinel issued before or after then reports
// expired, permanently.
//
//	type Worker struct {
//		deleg.Lifetime
//	}
//	w := &Worker{Lifetime: deleg.NewLifetime()}
//	...
//	w.Release()
type Lifetime struct {
	state *lifeState
}

// NewLifetime creates a live Lifetime holding one strong reference.
func NewLifetime() Lifetime {
	s := &lifeState{}
	s.strong.Add(1)
	return Lifetime{state: s}
}

// Sentinel returns a non-owning observer of this lifetime.
// Implements Sentineled.
func (l Lifetime) Sentinel() Sentinel {
	return Sentinel{state: l.state}
}

// Retain adds a strong reference, for owners that share teardown
// responsibility. Returns false if the lifetime has already expired;
// a successful Retain must be paired with a Release.
func (l Lifetime) Retain() bool {
	if l.state == nil {
		return false
	}
	for {
		cur := l.state.strong.Load()
		if cur == 0 {
			return false
		}
		if l.state.strong.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// Release drops one strong reference. When the count reaches zero the
// lifetime expires and every issued Sentinel reports expired from then
// on. Releasing an already expired lifetime is a no-op, so plain
// single-owner usage may call Release more than once.
func (l Lifetime) Release() {
	if l.state == nil {
		return
	}
	for {
		cur := l.state.strong.Load()
		if cur == 0 {
			return
		}
		if l.state.strong.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// Alive reports whether the lifetime has not yet expired.
func (l Lifetime) Alive() bool {
	return l.state != nil && l.state.strong.Load() != 0
}
