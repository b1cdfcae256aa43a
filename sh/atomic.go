// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package sh

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// AtomicAdd adds delta to *addr as a single indivisible update.
//
// Go has no native floating-point atomic add, so the update is a
// compare-and-swap loop on the IEEE-754 bit pattern. Concurrent AtomicAdds
// to the same address never lose an update, but their order (and so the
// rounding of the final sum) is unspecified.
//
// addr must be naturally aligned, which Go guarantees for slice elements and
// struct fields of type float32/float64.
func AtomicAdd[T Floats](addr *T, delta T) {
	if unsafe.Sizeof(delta) == 4 {
		p := (*uint32)(unsafe.Pointer(addr))
		for {
			old := atomic.LoadUint32(p)
			next := math.Float32bits(math.Float32frombits(old) + float32(delta))
			if atomic.CompareAndSwapUint32(p, old, next) {
				return
			}
		}
	}

	p := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(p)
		next := math.Float64bits(math.Float64frombits(old) + float64(delta))
		if atomic.CompareAndSwapUint64(p, old, next) {
			return
		}
	}
}
