// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package deleg provides lifetime-safe callable handles: store a
// reference to a callable now, invoke it later, and have the invocation
// degrade to a silent no-op once the callable's owner is gone.
//
// A conventional callback handle dangles the moment its target dies.
// Here every stored callable is paired with an optional [Sentinel], a
// non-owning liveness observer backed by an atomic strong count
// ([code.hybscloud.com/atomix]); expiry is monotonic — once an owner is
// gone, no invocation ever reaches the callable again.
//
// # Handles
//
//   - Value-returning: [Fn0], [Fn], [Fn2] — Invoke yields [Option]
//     results; unbound, expired, and softly aborted invocations yield None.
//   - Void: [Act0], [Act], [Act2] — Invoke is a plain call; the same
//     silent states are plain returns.
//   - Binding: Bind/BindErr store a callable; BindWith/BindErrWith
//     additionally attach a [Sentinel]; Set/SetErr replace the callable
//     while carrying the previous sentinel over; Unbind clears both as
//     a unit.
//   - Method forms: [BindMethod], [BindActMethod] (and Err variants)
//     close a method expression over its owner and attach the owner's
//     sentinel automatically when the owner implements [Sentineled].
//
// # Liveness
//
//   - [Lifetime]: embeddable owner-side publisher; [NewLifetime] starts
//     the strong count at one, Release expires it, Retain/Release share
//     teardown between co-owners. Expiry never resurrects.
//   - [Sentinel]: the observer side; cheap to copy, never extends the
//     owner's lifetime, safe to race against the owner's teardown.
//
// # Failure tiers
//
//   - Unbound or expired: silent, by design not an error.
//   - [AbortError] without passthrough ([Abort]): the callable cancels
//     its own invocation; absorbed to "no result".
//   - [AbortError] with passthrough ([AbortPassthrough]): escapes
//     Invoke for the caller to handle.
//   - Any other error: unmodeled defect, escapes Invoke unmodified.
//
// # Overload sets
//
// [Overload] groups one handle per distinct signature under one name.
// [AddFn]/[AddAct] (and arity variants) register members, rejecting
// duplicates; [GetFn]/[CallFn] route by exact signature, rejecting
// absent signatures before any call; [Overload.BindAll] binds a func
// value, or every matching method of a non-func value, into every
// member it satisfies.
//
// # Integration
//
//   - Deferred delivery: [Mailbox] queues arguments for an [Act] on a
//     bounded lock-free SPSC queue ([code.hybscloud.com/lfq]); Post is
//     non-blocking and returns [code.hybscloud.com/iox.ErrWouldBlock]
//     on backpressure, PostWait/FlushWait wait with adaptive backoff.
//   - Sum-type world: [Try] and [Lift] expose one invocation as
//     [code.hybscloud.com/kont.Either], keeping the silent states apart
//     as Left causes.
//
// # Concurrency
//
// Handles are single-threaded by design: rebinding while invoking the
// same handle is a caller-side serialization requirement, and distinct
// handles are fully independent. The sentinel check is the one
// concurrency-sensitive primitive and is an atomic counter read.
//
// # Example
//
//	w := &Worker{Lifetime: deleg.NewLifetime()}
//	var onTick deleg.Act[int]
//	deleg.BindActMethod(&onTick, w, (*Worker).Tick)
//
//	_ = onTick.Invoke(1) // calls w.Tick(1)
//	w.Release()
//	_ = onTick.Invoke(2) // no-op: owner gone
package deleg
