// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/deleg"
)

func TestSentinelZeroValueExpired(t *testing.T) {
	var s deleg.Sentinel
	if !s.Expired() {
		t.Fatal("zero Sentinel should be expired")
	}
	if s.Alive() {
		t.Fatal("zero Sentinel should not be alive")
	}
}

func TestLifetimeSentinel(t *testing.T) {
	l := deleg.NewLifetime()
	s := l.Sentinel()
	if s.Expired() {
		t.Fatal("sentinel of live lifetime should not be expired")
	}
	l.Release()
	if !s.Expired() {
		t.Fatal("sentinel should expire on Release")
	}
	if l.Alive() {
		t.Fatal("lifetime should not be alive after Release")
	}
}

func TestSentinelMonotonicExpiry(t *testing.T) {
	l := deleg.NewLifetime()
	s := l.Sentinel()
	l.Release()
	for i := 0; i < 3; i++ {
		if !s.Expired() {
			t.Fatalf("call %d: expired sentinel flipped back to alive", i)
		}
	}
	// a second Release must not disturb the expired state
	l.Release()
	if !s.Expired() {
		t.Fatal("sentinel resurrected after redundant Release")
	}
}

func TestLifetimeRetainRelease(t *testing.T) {
	l := deleg.NewLifetime()
	if !l.Retain() {
		t.Fatal("Retain on live lifetime should succeed")
	}
	s := l.Sentinel()
	l.Release()
	if s.Expired() {
		t.Fatal("sentinel expired while a strong reference remains")
	}
	l.Release()
	if !s.Expired() {
		t.Fatal("sentinel should expire when the last strong reference drops")
	}
	if l.Retain() {
		t.Fatal("Retain after expiry should fail")
	}
	if s.Alive() {
		t.Fatal("Retain after expiry must not resurrect")
	}
}

func TestLifetimeZeroValue(t *testing.T) {
	var l deleg.Lifetime
	if l.Alive() {
		t.Fatal("zero Lifetime should not be alive")
	}
	if l.Retain() {
		t.Fatal("Retain on zero Lifetime should fail")
	}
	l.Release() // must not panic
	if !l.Sentinel().Expired() {
		t.Fatal("sentinel of zero Lifetime should be expired")
	}
}

func TestSentinelConcurrentRelease(t *testing.T) {
	l := deleg.NewLifetime()
	s := l.Sentinel()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Release()
		}()
	}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// must never observe a resurrection, whatever the interleaving
			if s.Expired() && s.Alive() {
				t.Error("sentinel reported expired then alive")
			}
		}()
	}
	wg.Wait()

	if !s.Expired() {
		t.Fatal("sentinel should be expired after concurrent Release")
	}
}
