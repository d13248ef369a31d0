// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// defaultCapacity is the bounded capacity for mailbox queues when the
// caller passes none. Sized for small bursts of deferred calls between
// flushes.
const defaultCapacity = 16

// Mailbox defers invocations of an Act to a later Flush on the
// consumer side, decoupling the producer of an event from the moment
// the bound callable runs. Transport is a bounded lock-free SPSC queue
// from lfq: exactly one posting goroutine and one flushing goroutine.
//
// Validity is checked at delivery time, not post time: arguments posted
// toward a handle whose sentinel has expired are dequeued and dropped
// silently on the next Flush.
type Mailbox[A any] struct {
	act  *Act[A]
	q    lfq.SPSC[A]
	slot A
}

// NewMailbox creates a mailbox delivering to act, with a bounded queue
// of the given capacity (defaultCapacity when capacity is not
// positive). The handle may be bound, rebound, or unbound at any point
// between flushes.
func NewMailbox[A any](act *Act[A], capacity int) *Mailbox[A] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	m := &Mailbox[A]{act: act}
	m.q.Init(capacity)
	return m
}

// Post enqueues one argument for later delivery.
// Non-blocking: returns iox.ErrWouldBlock when the queue is full.
// Single producer: Post and PostWait must come from one goroutine.
func (m *Mailbox[A]) Post(a A) error {
	m.slot = a
	return m.q.Enqueue(&m.slot)
}

// PostWait enqueues one argument, waiting past the backpressure
// boundary with adaptive backoff until the consumer makes room.
func (m *Mailbox[A]) PostWait(a A) {
	var bo iox.Backoff
	for m.Post(a) != nil {
		bo.Wait()
	}
}

// Flush dequeues every pending argument and dispatches each through
// the handle's Invoke. Returns the number of entries dispatched
// (including those the handle dropped as unbound or expired) and the
// first passthrough abort or defect the callable raised; the entry
// that raised it is consumed, later entries stay queued.
// Single consumer: Flush and FlushWait must come from one goroutine.
func (m *Mailbox[A]) Flush() (dispatched int, err error) {
	for {
		v, derr := m.q.Dequeue()
		if derr != nil {
			return dispatched, nil
		}
		dispatched++
		if err = m.act.Invoke(v); err != nil {
			return dispatched, err
		}
	}
}

// FlushWait dispatches exactly n entries, waiting past the empty-queue
// boundary with adaptive backoff. Returns early with the number
// dispatched so far when the callable raises a passthrough abort or a
// defect.
func (m *Mailbox[A]) FlushWait(n int) (dispatched int, err error) {
	var bo iox.Backoff
	for dispatched < n {
		v, derr := m.q.Dequeue()
		if derr != nil {
			bo.Wait()
			continue
		}
		bo.Reset()
		dispatched++
		if err = m.act.Invoke(v); err != nil {
			return dispatched, err
		}
	}
	return dispatched, nil
}
