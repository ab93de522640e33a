// Package secp256k1 provides a fixed-width Element for the secp256k1 base
// field, p = 2^256 - 2^32 - 977, backed by the decred FieldVal type.
package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/athanorlabs/go-weierstrass/types"
)

type Element = types.Element

var _ Element = &ElementImpl{}

var modulus = secp256k1.S256().Params().P

// Modulus returns the secp256k1 field prime.
func Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// ElementImpl wraps a normalized FieldVal.
type ElementImpl struct {
	inner *secp256k1.FieldVal
}

// NewElement returns n as a field element. n must be in [0, p).
func NewElement(n *big.Int) (*ElementImpl, error) {
	if n == nil || n.Sign() < 0 || n.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: residue not in [0, p)", types.ErrInvalidParams)
	}

	var b [32]byte
	n.FillBytes(b[:])

	fv := new(secp256k1.FieldVal)
	if overflow := fv.SetBytes(&b); overflow != 0 {
		return nil, fmt.Errorf("%w: residue overflows field", types.ErrInvalidParams)
	}

	return &ElementImpl{
		inner: fv.Normalize(),
	}, nil
}

func wrap(fv *secp256k1.FieldVal) *ElementImpl {
	return &ElementImpl{
		inner: fv.Normalize(),
	}
}

func cast(other Element) (*ElementImpl, error) {
	o, ok := other.(*ElementImpl)
	if !ok {
		return nil, fmt.Errorf("%w: cannot combine *secp256k1.ElementImpl with %T", types.ErrMismatch, other)
	}
	return o, nil
}

func (e *ElementImpl) Value() *big.Int {
	return new(big.Int).SetBytes(e.inner.Bytes()[:])
}

func (e *ElementImpl) Modulus() *big.Int {
	return Modulus()
}

func (e *ElementImpl) New(n *big.Int) (Element, error) {
	out, err := NewElement(n)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *ElementImpl) Add(other Element) (Element, error) {
	o, err := cast(other)
	if err != nil {
		return nil, err
	}

	return wrap(new(secp256k1.FieldVal).Add2(e.inner, o.inner)), nil
}

func (e *ElementImpl) Sub(other Element) (Element, error) {
	o, err := cast(other)
	if err != nil {
		return nil, err
	}

	neg := new(secp256k1.FieldVal).NegateVal(o.inner, 1)
	return wrap(neg.Add(e.inner)), nil
}

func (e *ElementImpl) Mul(other Element) (Element, error) {
	o, err := cast(other)
	if err != nil {
		return nil, err
	}

	return wrap(new(secp256k1.FieldVal).Mul2(e.inner, o.inner)), nil
}

func (e *ElementImpl) Div(other Element) (Element, error) {
	o, err := cast(other)
	if err != nil {
		return nil, err
	}

	if o.inner.IsZero() {
		return nil, fmt.Errorf("%w: division by zero", types.ErrInvalidParams)
	}

	inv := new(secp256k1.FieldVal).Set(o.inner).Inverse()
	return wrap(inv.Mul(e.inner)), nil
}

func (e *ElementImpl) Neg() Element {
	return wrap(new(secp256k1.FieldVal).NegateVal(e.inner, 1))
}

func (e *ElementImpl) Square() Element {
	return wrap(new(secp256k1.FieldVal).SquareVal(e.inner))
}

func (e *ElementImpl) Inverse() (Element, error) {
	if e.inner.IsZero() {
		return nil, fmt.Errorf("%w: zero has no inverse", types.ErrInvalidParams)
	}

	return wrap(new(secp256k1.FieldVal).Set(e.inner).Inverse()), nil
}

func (e *ElementImpl) IsZero() bool {
	return e.inner.IsZero()
}

func (e *ElementImpl) Equals(other Element) bool {
	o, ok := other.(*ElementImpl)
	if !ok {
		return false
	}
	return e.inner.Equals(o.inner)
}

func (e *ElementImpl) String() string {
	return e.Value().Text(16)
}
