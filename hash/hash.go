// Package hash mints identity hashes for fragments constructed at runtime.
//
// Fragments built outside the static compilation step still need an identity
// token. Generators in this package produce tokens starting with '_', a
// character the compiler's base-64 hash alphabet excludes, so client-minted
// and compiled identities can be told apart by their first byte.
package hash

// Generator mints fragment identity hashes. Implementations must be safe for
// concurrent use and must never return the same hash twice within their
// uniqueness scope.
type Generator interface {
	Next() string
}
