// Package field implements arithmetic in the prime field Z/pZ for an
// arbitrary-precision modulus p.
//
// Arithmetic is not constant-time.
package field

import (
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-weierstrass/types"
)

type Element = types.Element

var _ Element = &FieldElement{}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// FieldElement is a residue n modulo p with 0 <= n < p.
type FieldElement struct {
	n *big.Int
	p *big.Int
}

// New returns n as an element of Z/pZ. It fails with types.ErrInvalidParams
// if n is negative or not less than p; the value is never reduced silently.
func New(n, p *big.Int) (*FieldElement, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil residue", types.ErrInvalidParams)
	}

	if err := checkModulus(p); err != nil {
		return nil, err
	}

	if n.Sign() < 0 || n.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%w: %s is not in [0, %s)", types.ErrInvalidParams, n, p)
	}

	return &FieldElement{
		n: new(big.Int).Set(n),
		p: new(big.Int).Set(p),
	}, nil
}

// NewFromInt64 is New for small residues.
func NewFromInt64(n int64, p *big.Int) (*FieldElement, error) {
	return New(big.NewInt(n), p)
}

func checkModulus(p *big.Int) error {
	if p == nil || p.Cmp(two) < 0 {
		return fmt.Errorf("%w: modulus %v is less than 2", types.ErrInvalidParams, p)
	}
	return nil
}

// Zero returns the additive identity of Z/pZ.
func Zero(p *big.Int) (*FieldElement, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}

	return &FieldElement{
		n: new(big.Int),
		p: new(big.Int).Set(p),
	}, nil
}

// One returns the multiplicative identity of Z/pZ.
func One(p *big.Int) (*FieldElement, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}

	return &FieldElement{
		n: big.NewInt(1),
		p: new(big.Int).Set(p),
	}, nil
}

func (e *FieldElement) Value() *big.Int {
	return new(big.Int).Set(e.n)
}

func (e *FieldElement) Modulus() *big.Int {
	return new(big.Int).Set(e.p)
}

func (e *FieldElement) New(n *big.Int) (Element, error) {
	out, err := New(n, e.p)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// compatible returns other as a *FieldElement over the same prime.
func (e *FieldElement) compatible(other Element) (*FieldElement, error) {
	o, ok := other.(*FieldElement)
	if !ok {
		return nil, fmt.Errorf("%w: cannot combine *field.FieldElement with %T", types.ErrMismatch, other)
	}

	if e.p.Cmp(o.p) != 0 {
		return nil, fmt.Errorf("%w: modulus %s != %s", types.ErrMismatch, e.p, o.p)
	}

	return o, nil
}

// reduce maps an arbitrary integer into [0, p). big.Int.Rem truncates toward
// zero, so negative remainders are lifted by p.
func (e *FieldElement) reduce(n *big.Int) *FieldElement {
	n.Rem(n, e.p)
	if n.Sign() < 0 {
		n.Add(n, e.p)
	}

	return &FieldElement{
		n: n,
		p: e.p,
	}
}

func (e *FieldElement) Add(other Element) (Element, error) {
	o, err := e.compatible(other)
	if err != nil {
		return nil, err
	}

	return e.reduce(new(big.Int).Add(e.n, o.n)), nil
}

func (e *FieldElement) Sub(other Element) (Element, error) {
	o, err := e.compatible(other)
	if err != nil {
		return nil, err
	}

	return e.reduce(new(big.Int).Sub(e.n, o.n)), nil
}

func (e *FieldElement) Mul(other Element) (Element, error) {
	o, err := e.compatible(other)
	if err != nil {
		return nil, err
	}

	return e.reduce(new(big.Int).Mul(e.n, o.n)), nil
}

// Div returns e * other^-1.
func (e *FieldElement) Div(other Element) (Element, error) {
	o, err := e.compatible(other)
	if err != nil {
		return nil, err
	}

	inv, err := o.invert()
	if err != nil {
		return nil, err
	}

	return e.reduce(new(big.Int).Mul(e.n, inv.n)), nil
}

func (e *FieldElement) Neg() Element {
	return e.reduce(new(big.Int).Neg(e.n))
}

func (e *FieldElement) Square() Element {
	return e.reduce(new(big.Int).Mul(e.n, e.n))
}

// Exp returns e^k. Negative exponents invert first.
func (e *FieldElement) Exp(k *big.Int) (*FieldElement, error) {
	if k == nil {
		return nil, fmt.Errorf("%w: nil exponent", types.ErrInvalidParams)
	}

	base := e
	if k.Sign() < 0 {
		inv, err := e.invert()
		if err != nil {
			return nil, err
		}
		base = inv
		k = new(big.Int).Neg(k)
	}

	return e.reduce(new(big.Int).Exp(base.n, k, e.p)), nil
}

// Sqrt returns a square root of e. It fails with types.ErrInvalidParams if e
// is not a quadratic residue.
func (e *FieldElement) Sqrt() (*FieldElement, error) {
	if e.p.Bit(0) == 0 {
		if e.p.Cmp(two) == 0 {
			return e, nil
		}
		return nil, fmt.Errorf("%w: square root needs an odd prime modulus", types.ErrInvalidParams)
	}

	r := new(big.Int).ModSqrt(e.n, e.p)
	if r == nil {
		return nil, fmt.Errorf("%w: %s has no square root mod %s", types.ErrInvalidParams, e.n, e.p)
	}

	return e.reduce(r), nil
}

// Inverse returns the multiplicative inverse of e. The modulus is assumed to
// be prime; zero and non-invertible residues fail with
// types.ErrInvalidParams.
func (e *FieldElement) Inverse() (Element, error) {
	return e.invert()
}

func (e *FieldElement) invert() (*FieldElement, error) {
	if e.n.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero has no inverse", types.ErrInvalidParams)
	}

	inv, err := modInverse(e.n, e.p)
	if err != nil {
		return nil, err
	}

	return e.reduce(inv), nil
}

// modInverse computes n^-1 mod p with the iterative extended Euclidean
// algorithm, tracking only the Bezout coefficient of n.
func modInverse(n, p *big.Int) (*big.Int, error) {
	if p.Cmp(one) == 0 {
		return big.NewInt(1), nil
	}

	a := new(big.Int).Set(n)
	m := new(big.Int).Set(p)
	x0 := new(big.Int)
	inv := big.NewInt(1)
	q := new(big.Int)

	for a.Cmp(one) > 0 {
		if m.Sign() == 0 {
			return nil, fmt.Errorf("%w: %s is not invertible mod %s", types.ErrInvalidParams, n, p)
		}

		q.Quo(a, m)
		inv.Sub(inv, q.Mul(q, x0))
		a.Rem(a, m)
		a, m = m, a
		x0, inv = inv, x0
	}

	if a.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s is not invertible mod %s", types.ErrInvalidParams, n, p)
	}

	if inv.Sign() < 0 {
		inv.Add(inv, p)
	}

	return inv, nil
}

func (e *FieldElement) IsZero() bool {
	return e.n.Sign() == 0
}

// Equals reports whether both the residue and the modulus match.
func (e *FieldElement) Equals(other Element) bool {
	o, ok := other.(*FieldElement)
	if !ok {
		return false
	}

	return e.n.Cmp(o.n) == 0 && e.p.Cmp(o.p) == 0
}

// Bytes returns the big-endian residue left-padded to the byte length of p.
func (e *FieldElement) Bytes() []byte {
	return e.n.FillBytes(make([]byte, (e.p.BitLen()+7)/8))
}

func (e *FieldElement) String() string {
	return fmt.Sprintf("%s (mod %s)", e.n, e.p)
}
