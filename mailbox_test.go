// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/deleg"
	"code.hybscloud.com/iox"
)

func TestMailboxPostFlushOrder(t *testing.T) {
	var got []int
	var act deleg.Act[int]
	act.Bind(func(n int) { got = append(got, n) })

	m := deleg.NewMailbox(&act, 8)
	for i := 1; i <= 5; i++ {
		if err := m.Post(i); err != nil {
			t.Fatalf("Post(%d): err = %v", i, err)
		}
	}

	n, err := m.Flush()
	if err != nil {
		t.Fatalf("Flush: err = %v", err)
	}
	if n != 5 {
		t.Fatalf("Flush dispatched %d, want 5", n)
	}
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("got[%d] = %d, want %d: delivery out of order", i, v, i+1)
		}
	}
}

func TestMailboxBackpressure(t *testing.T) {
	var act deleg.Act[int]
	act.Bind(func(int) {})
	m := deleg.NewMailbox(&act, 2)

	if err := m.Post(1); err != nil {
		t.Fatalf("Post: err = %v", err)
	}
	if err := m.Post(2); err != nil {
		t.Fatalf("Post: err = %v", err)
	}
	if err := m.Post(3); !errors.Is(err, iox.ErrWouldBlock) {
		t.Fatalf("Post on full queue: err = %v, want ErrWouldBlock", err)
	}

	if _, err := m.Flush(); err != nil {
		t.Fatalf("Flush: err = %v", err)
	}
	if err := m.Post(3); err != nil {
		t.Fatalf("Post after Flush: err = %v", err)
	}
}

func TestMailboxDropsExpired(t *testing.T) {
	l := deleg.NewLifetime()
	calls := 0
	var act deleg.Act[int]
	act.BindWith(l.Sentinel(), func(int) { calls++ })

	m := deleg.NewMailbox(&act, 4)
	for i := 0; i < 3; i++ {
		if err := m.Post(i); err != nil {
			t.Fatalf("Post: err = %v", err)
		}
	}
	l.Release()

	n, err := m.Flush()
	if err != nil {
		t.Fatalf("Flush: err = %v", err)
	}
	if n != 3 {
		t.Fatalf("Flush dispatched %d, want 3", n)
	}
	if calls != 0 {
		t.Fatalf("expired handle ran %d times", calls)
	}
}

func TestMailboxFlushStopsOnPassthrough(t *testing.T) {
	var got []int
	var act deleg.Act[int]
	act.BindErr(func(n int) error {
		if n == 2 {
			return deleg.AbortPassthrough("poison")
		}
		got = append(got, n)
		return nil
	})

	m := deleg.NewMailbox(&act, 8)
	for i := 1; i <= 4; i++ {
		if err := m.Post(i); err != nil {
			t.Fatalf("Post: err = %v", err)
		}
	}

	n, err := m.Flush()
	if err == nil || !deleg.IsAbort(err) {
		t.Fatalf("Flush: err = %v, want passthrough abort", err)
	}
	if n != 2 {
		t.Fatalf("Flush dispatched %d before stopping, want 2", n)
	}

	// the poisoned entry is consumed; the rest stays queued
	n, err = m.Flush()
	if err != nil {
		t.Fatalf("second Flush: err = %v", err)
	}
	if n != 2 {
		t.Fatalf("second Flush dispatched %d, want 2", n)
	}
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("delivered %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("delivered %v, want %v", got, want)
		}
	}
}

func TestMailboxPostWaitFlushWait(t *testing.T) {
	skipRace(t)
	const total = 100

	sum := 0
	var act deleg.Act[int]
	act.Bind(func(n int) { sum += n })
	m := deleg.NewMailbox(&act, 4)

	go func() {
		for i := 1; i <= total; i++ {
			m.PostWait(i)
		}
	}()

	n, err := m.FlushWait(total)
	if err != nil {
		t.Fatalf("FlushWait: err = %v", err)
	}
	if n != total {
		t.Fatalf("FlushWait dispatched %d, want %d", n, total)
	}
	if sum != total*(total+1)/2 {
		t.Fatalf("sum = %d, want %d", sum, total*(total+1)/2)
	}
}
