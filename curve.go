// Package weierstrass implements point arithmetic on short Weierstrass curves
// y^2 = x^3 + ax + b over a prime field, in affine and homogeneous projective
// coordinates.
//
// Points are generic over types.Element, so any field backend (the
// arbitrary-precision field package, or a fixed-width one such as secp256k1)
// can be used without changing the point logic. All values are immutable and
// safe for concurrent use. Scalar multiplication is not constant-time.
package weierstrass

import (
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-weierstrass/types"
)

type Element = types.Element

// Curve is the curve y^2 = x^3 + ax + b.
type Curve struct {
	a, b Element
}

// NewCurve returns the curve with coefficients a and b, which must belong to
// the same field.
func NewCurve(a, b Element) (*Curve, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil curve coefficient", types.ErrInvalidParams)
	}

	if err := compatible(a, b); err != nil {
		return nil, fmt.Errorf("curve coefficients: %w", err)
	}

	return &Curve{
		a: a,
		b: b,
	}, nil
}

func (c *Curve) A() Element {
	return c.a
}

func (c *Curve) B() Element {
	return c.b
}

// Modulus returns the prime of the underlying field.
func (c *Curve) Modulus() *big.Int {
	return c.a.Modulus()
}

// Equals reports whether both curves have the same coefficients over the
// same field.
func (c *Curve) Equals(other *Curve) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.a.Equals(other.a) && c.b.Equals(other.b)
}

// rhs returns x^3 + ax + b.
func (c *Curve) rhs(k *calc, x Element) Element {
	x3 := k.mul(k.square(x), x)
	ax := k.mul(c.a, x)
	return k.add(k.add(x3, ax), c.b)
}

// IsOnCurve reports whether (x, y) satisfies the curve equation. Coordinates
// from a different field are never on the curve.
func (c *Curve) IsOnCurve(x, y Element) bool {
	if x == nil || y == nil {
		return false
	}

	if err := compatible(c.a, x, y); err != nil {
		return false
	}

	var k calc
	rhs := c.rhs(&k, x)
	lhs := k.square(y)
	if k.err != nil {
		return false
	}

	return lhs.Equals(rhs)
}

// Identity returns the point at infinity of c.
func (c *Curve) Identity() *PointAffine {
	return &PointAffine{
		curve:    c,
		infinity: true,
	}
}

// Point returns the affine point (x, y) after checking that it lies on c.
// Use it wherever coordinates come from an untrusted source.
func (c *Curve) Point(x, y Element) (*PointAffine, error) {
	p, err := c.newPoint(x, y)
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (c *Curve) newPoint(x, y Element) (*PointAffine, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("%w: nil coordinate", types.ErrInvalidParams)
	}

	if err := compatible(c.a, x, y); err != nil {
		return nil, fmt.Errorf("point coordinates: %w", err)
	}

	return &PointAffine{
		x:     x,
		y:     y,
		curve: c,
	}, nil
}

func (c *Curve) element(n int64) (Element, error) {
	return c.a.New(big.NewInt(n))
}

func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %v*x + %v", c.a.Value(), c.b.Value())
}
