// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg_test

import (
	"code.hybscloud.com/deleg"
)

// worker is the shared test owner. It embeds Lifetime, so bindings made
// through the method forms expire when Release is called.
type worker struct {
	deleg.Lifetime
	calls int
	last  int
}

func newWorker() *worker {
	return &worker{Lifetime: deleg.NewLifetime()}
}

func (w *worker) Tick(n int) {
	w.calls++
	w.last = n
}

func (w *worker) Double(n int) int {
	w.calls++
	return n * 2
}

func (w *worker) Checked(n int) (int, error) {
	if n < 0 {
		return 0, deleg.Abort("negative")
	}
	w.calls++
	return n * 2, nil
}
