package sieve

// Run allocates and marks a sieve for limit, hands it to fn and releases it on
// every return path. maxBytes bounds the allocation (0 = physical memory).
func Run(limit uint, maxBytes uint64, fn func(*Sieve) error) error {
	s, err := AllocateWithin(limit, maxBytes)
	if err != nil {
		return err
	}
	defer s.Release()
	s.MarkComposites()
	return fn(s)
}
