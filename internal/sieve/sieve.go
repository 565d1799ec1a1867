package sieve

import (
	"errors"
	"iter"
	"math/bits"
)

// State is the lifecycle position of a Sieve.
type State int

const (
	Allocated State = iota
	Sieved
	Released
)

func (s State) String() string {
	switch s {
	case Allocated:
		return "allocated"
	case Sieved:
		return "sieved"
	case Released:
		return "released"
	}
	return "unknown"
}

var (
	ErrNotSieved = errors.New("sieve has not been marked yet")
	ErrReleased  = errors.New("sieve has been released")
)

// Sieve holds one primality flag per integer in [0, limit], packed 64 per word.
// A set bit means "prime as far as currently known".
type Sieve struct {
	limit uint
	words []uint64
	state State
	marks uint64
}

// Allocate builds a sieve for limit with every flag from 2 upward set. It
// fails with *AllocationError when the flags would not fit in physical memory.
func Allocate(limit uint) (*Sieve, error) { return AllocateWithin(limit, 0) }

// AllocateWithin is Allocate with a memory budget in bytes. A budget of 0
// means the host's physical memory.
func AllocateWithin(limit uint, maxBytes uint64) (*Sieve, error) {
	if limit < 2 {
		return nil, ErrInvalidLimit
	}
	n := wordsFor(limit)
	size := n * 8
	if err := checkBudget(size, maxBytes); err != nil {
		return nil, &AllocationError{Limit: limit, Bytes: size, Err: err}
	}
	words, err := makeWords(n)
	if err != nil {
		if errors.Is(err, errSizeOverflow) {
			size = 0
		}
		return nil, &AllocationError{Limit: limit, Bytes: size, Err: err}
	}
	for i := range words {
		words[i] = ^uint64(0)
	}
	// bits past limit in the last word are never prime candidates
	if tail := (uint64(limit) + 1) % 64; tail != 0 {
		words[len(words)-1] = 1<<tail - 1
	}
	words[0] &^= 0b11
	return &Sieve{limit: limit, words: words, state: Allocated}, nil
}

func (s *Sieve) Limit() uint { return s.limit }
func (s *Sieve) State() State { return s.state }
func (s *Sieve) Marks() uint64 { return s.marks }

func (s *Sieve) test(i uint) bool { return s.words[i/64]&(1<<(i%64)) != 0 }

func (s *Sieve) clear(i uint) {
	s.words[i/64] &^= 1 << (i % 64)
	s.marks++
}

// MarkComposites clears every multiple of each surviving candidate i in
// [2, isqrt(limit)], starting at i*i. Running it again changes no flag.
func (s *Sieve) MarkComposites() {
	if s.state == Released {
		return
	}
	root := isqrt(s.limit)
	for i := uint(2); i <= root; i++ {
		if !s.test(i) {
			continue
		}
		// i*i <= limit because i <= root
		for j, ok := i*i, true; ok; j, ok = nextMultiple(j, i, s.limit) {
			s.clear(j)
		}
	}
	s.state = Sieved
}

// nextMultiple returns j+step and whether it is still within limit. It never
// computes a sum past limit, so it cannot wrap near math.MaxUint.
func nextMultiple(j, step, limit uint) (uint, bool) {
	if j > limit-step {
		return 0, false
	}
	return j + step, true
}

// IsPrime reports whether n is prime. It reports false for values above the
// limit and whenever the sieve is not in the Sieved state.
func (s *Sieve) IsPrime(n uint) bool {
	if s.state != Sieved || n > s.limit {
		return false
	}
	return s.test(n)
}

// Each calls fn for every prime in ascending order and stops at the first
// error fn returns.
func (s *Sieve) Each(fn func(uint) error) error {
	switch s.state {
	case Allocated:
		return ErrNotSieved
	case Released:
		return ErrReleased
	}
	for wi, w := range s.words {
		base := uint(wi) * 64
		for w != 0 {
			if err := fn(base + uint(bits.TrailingZeros64(w))); err != nil {
				return err
			}
			w &= w - 1
		}
	}
	return nil
}

// Primes returns a restartable sequence over the primes. It yields nothing
// unless the sieve is in the Sieved state.
func (s *Sieve) Primes() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		_ = s.Each(func(p uint) error {
			if !yield(p) {
				return errStop
			}
			return nil
		})
	}
}

var errStop = errors.New("stop")

// Count returns the number of primes, or 0 when not sieved.
func (s *Sieve) Count() int {
	if s.state != Sieved {
		return 0
	}
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Release drops the flag buffer. Later calls are no-ops.
func (s *Sieve) Release() {
	s.words = nil
	s.state = Released
}
