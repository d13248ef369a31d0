// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg_test

import (
	"testing"

	"code.hybscloud.com/deleg"
)

func TestOptionSomeNone(t *testing.T) {
	some := deleg.Some(42)
	if !some.IsSome() || some.IsNone() {
		t.Fatal("Some should be present")
	}
	if v, ok := some.Get(); !ok || v != 42 {
		t.Fatalf("Get = (%d, %v), want (42, true)", v, ok)
	}

	none := deleg.None[int]()
	if none.IsSome() || !none.IsNone() {
		t.Fatal("None should be absent")
	}
	if v, ok := none.Get(); ok || v != 0 {
		t.Fatalf("Get = (%d, %v), want (0, false)", v, ok)
	}
	if got := none.GetOrElse(7); got != 7 {
		t.Fatalf("GetOrElse = %d, want 7", got)
	}
	if got := some.GetOrElse(7); got != 42 {
		t.Fatalf("GetOrElse = %d, want 42", got)
	}
}

func TestOptionMatchMap(t *testing.T) {
	got := deleg.MatchOption(deleg.Some(21),
		func() string { return "none" },
		func(n int) string {
			if n == 21 {
				return "some"
			}
			return "other"
		},
	)
	if got != "some" {
		t.Fatalf("MatchOption = %q, want %q", got, "some")
	}

	doubled := deleg.MapOption(deleg.Some(21), func(n int) int { return n * 2 })
	if v, _ := doubled.Get(); v != 42 {
		t.Fatalf("MapOption = %d, want 42", v)
	}
	if deleg.MapOption(deleg.None[int](), func(n int) int { return n * 2 }).IsSome() {
		t.Fatal("MapOption over None should stay None")
	}

	chained := deleg.FlatMapOption(deleg.Some(2), func(n int) deleg.Option[int] {
		if n%2 == 0 {
			return deleg.Some(n / 2)
		}
		return deleg.None[int]()
	})
	if v, _ := chained.Get(); v != 1 {
		t.Fatalf("FlatMapOption = %d, want 1", v)
	}
}
