package types

import (
	"math/big"
)

// Element is a residue in a prime field. Implementations are immutable: every
// operation returns a new Element and accessors return copies.
//
// Binary operations fail with ErrMismatch when the operands live in different
// fields or use different backing representations.
type Element interface {
	// Value returns the residue n, 0 <= n < p.
	Value() *big.Int
	// Modulus returns the prime p.
	Modulus() *big.Int
	// New returns the element of the same field with the given residue.
	New(*big.Int) (Element, error)

	Add(Element) (Element, error)
	Sub(Element) (Element, error)
	Mul(Element) (Element, error)
	Div(Element) (Element, error)
	Neg() Element
	Square() Element
	Inverse() (Element, error)

	IsZero() bool
	Equals(Element) bool
}
