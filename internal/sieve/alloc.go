package sieve

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/pbnjay/memory"
)

// ErrAllocation is matched by every *AllocationError via errors.Is.
var ErrAllocation = errors.New("sieve allocation failed")

// ErrInvalidLimit is returned for limits below 2. Callers are expected to
// validate before allocating; this only keeps the engine from misbehaving.
var ErrInvalidLimit = errors.New("limit must be at least 2")

// AllocationError reports that the flag buffer for Limit could not be created.
type AllocationError struct {
	Limit uint
	Bytes uint64 // requested size; 0 when the size itself overflowed
	Err   error
}

func (e *AllocationError) Error() string {
	if e.Bytes == 0 {
		return fmt.Sprintf("cannot allocate sieve for limit %d: %v", e.Limit, e.Err)
	}
	return fmt.Sprintf("cannot allocate %d bytes for sieve of limit %d: %v", e.Bytes, e.Limit, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }

func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

var (
	errSizeOverflow = errors.New("size overflows the address space")
	errOverBudget   = errors.New("exceeds memory budget")
	errOverHost     = errors.New("exceeds physical memory")
)

// hostMemory reports physical memory in bytes, 0 when unknown.
var hostMemory = memory.TotalMemory

// checkBudget rejects size above maxBytes, or above physical memory when
// maxBytes is 0. It must run before make: a real out-of-memory is fatal.
func checkBudget(size, maxBytes uint64) error {
	if maxBytes > 0 {
		if size > maxBytes {
			return errOverBudget
		}
		return nil
	}
	if host := hostMemory(); host > 0 && size > host {
		return errOverHost
	}
	return nil
}

// wordsFor returns how many 64-bit words hold the flags 0..limit.
func wordsFor(limit uint) uint64 { return uint64(limit)/64 + 1 }

// makeWords allocates n words, turning a runtime refusal into an error.
func makeWords(n uint64) (w []uint64, err error) {
	if n > math.MaxInt/8 {
		return nil, errSizeOverflow
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			w, err = nil, re
		}
	}()
	return make([]uint64, int(n)), nil
}
