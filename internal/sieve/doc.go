// Package sieve contains the Sieve of Eratosthenes core. It never imports app,
// writers, output, or cli; keep it domain-only.
//
// A Sieve moves strictly forward through Allocated, Sieved and Released.
// Consumers read primes only in the Sieved state.
package sieve
