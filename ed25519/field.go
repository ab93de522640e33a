// Package ed25519 provides a fixed-width Element for GF(2^255 - 19), the
// base field of Curve25519, backed by filippo.io/edwards25519/field.
package ed25519

import (
	"fmt"
	"math/big"

	"filippo.io/edwards25519/field"

	"github.com/athanorlabs/go-weierstrass/types"
)

type Element = types.Element

var _ Element = &ElementImpl{}

var modulus = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

// Modulus returns 2^255 - 19.
func Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

type ElementImpl struct {
	inner *field.Element
}

// NewElement returns n as a field element. n must be in [0, p).
func NewElement(n *big.Int) (*ElementImpl, error) {
	if n == nil || n.Sign() < 0 || n.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: residue not in [0, p)", types.ErrInvalidParams)
	}

	fe, err := new(field.Element).SetBytes(toLittleEndian(n))
	if err != nil {
		return nil, fmt.Errorf("failed to set bytes: %w", err)
	}

	return &ElementImpl{
		inner: fe,
	}, nil
}

// toLittleEndian encodes n as 32 little-endian bytes.
func toLittleEndian(n *big.Int) []byte {
	b := n.FillBytes(make([]byte, 32))
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func cast(other Element) (*ElementImpl, error) {
	o, ok := other.(*ElementImpl)
	if !ok {
		return nil, fmt.Errorf("%w: cannot combine *ed25519.ElementImpl with %T", types.ErrMismatch, other)
	}
	return o, nil
}

func (e *ElementImpl) Value() *big.Int {
	b := e.inner.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return new(big.Int).SetBytes(b)
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

	return &ElementImpl{
		inner: new(field.Element).Add(e.inner, o.inner),
	}, nil
}

func (e *ElementImpl) Sub(other Element) (Element, error) {
	o, err := cast(other)
	if err != nil {
		return nil, err
	}

	return &ElementImpl{
		inner: new(field.Element).Subtract(e.inner, o.inner),
	}, nil
}

func (e *ElementImpl) Mul(other Element) (Element, error) {
	o, err := cast(other)
	if err != nil {
		return nil, err
	}

	return &ElementImpl{
		inner: new(field.Element).Multiply(e.inner, o.inner),
	}, nil
}

func (e *ElementImpl) Div(other Element) (Element, error) {
	o, err := cast(other)
	if err != nil {
		return nil, err
	}

	if o.IsZero() {
		return nil, fmt.Errorf("%w: division by zero", types.ErrInvalidParams)
	}

	inv := new(field.Element).Invert(o.inner)
	return &ElementImpl{
		inner: inv.Multiply(e.inner, inv),
	}, nil
}

func (e *ElementImpl) Neg() Element {
	return &ElementImpl{
		inner: new(field.Element).Negate(e.inner),
	}
}

func (e *ElementImpl) Square() Element {
	return &ElementImpl{
		inner: new(field.Element).Square(e.inner),
	}
}

func (e *ElementImpl) Inverse() (Element, error) {
	if e.IsZero() {
		return nil, fmt.Errorf("%w: zero has no inverse", types.ErrInvalidParams)
	}

	return &ElementImpl{
		inner: new(field.Element).Invert(e.inner),
	}, nil
}

func (e *ElementImpl) IsZero() bool {
	return e.inner.Equal(new(field.Element)) == 1
}

func (e *ElementImpl) Equals(other Element) bool {
	o, ok := other.(*ElementImpl)
	if !ok {
		return false
	}
	return e.inner.Equal(o.inner) == 1
}

func (e *ElementImpl) String() string {
	return e.Value().Text(16)
}
