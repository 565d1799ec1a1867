// Package writers turns a prime sequence into serialized outputs.
//
// Design:
//   - Writers own presentation: separators, compression, destination.
//   - The sieve stays domain-only and never sees an io.Writer.
package writers
