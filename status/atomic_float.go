package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 metric stored as its IEEE bits
// Zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Store sets the value
func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Load reads the value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// StoreMax keeps the larger of the current value and val, reporting whether val won
func (f *AtomicFloat) StoreMax(val float64) bool {
	for {
		old := f.bits.Load()
		if math.Float64frombits(old) >= val {
			return false
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return true
		}
	}
}
