package weierstrass

import (
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-weierstrass/types"
)

// PointAffine is either the point at infinity of its curve or a finite point
// (x, y). The identity is a distinct state, so (0, 0) is an ordinary point
// on curves where it satisfies the equation.
type PointAffine struct {
	x, y     Element
	curve    *Curve
	infinity bool
}

// NewPoint returns the finite point (x, y) on y^2 = x^3 + ax + b. All four
// elements must share a field. Curve membership is not checked; see
// Curve.Point and PointAffine.Validate.
func NewPoint(x, y, a, b Element) (*PointAffine, error) {
	c, err := NewCurve(a, b)
	if err != nil {
		return nil, err
	}

	return c.newPoint(x, y)
}

// X returns the x coordinate, or nil for the identity.
func (p *PointAffine) X() Element {
	return p.x
}

// Y returns the y coordinate, or nil for the identity.
func (p *PointAffine) Y() Element {
	return p.y
}

func (p *PointAffine) Curve() *Curve {
	return p.curve
}

func (p *PointAffine) IsIdentity() bool {
	return p.infinity
}

// Validate returns types.ErrPointNotOnCurve if p is a finite point that does
// not satisfy its curve equation.
func (p *PointAffine) Validate() error {
	if p.infinity || p.curve.IsOnCurve(p.x, p.y) {
		return nil
	}

	return fmt.Errorf("%w: (%v, %v) on %s", types.ErrPointNotOnCurve, p.x.Value(), p.y.Value(), p.curve)
}

// Equals reports whether p and other are the same point on the same curve.
func (p *PointAffine) Equals(other *PointAffine) bool {
	if other == nil || !p.curve.Equals(other.curve) {
		return false
	}

	if p.infinity || other.infinity {
		return p.infinity == other.infinity
	}

	return p.x.Equals(other.x) && p.y.Equals(other.y)
}

func (p *PointAffine) sameCurve(other *PointAffine) error {
	if other == nil {
		return fmt.Errorf("%w: nil point", types.ErrInvalidParams)
	}

	if !p.curve.Equals(other.curve) {
		return fmt.Errorf("%w: points on %s and %s", types.ErrMismatch, p.curve, other.curve)
	}

	return nil
}

func (p *PointAffine) finite(x, y Element) *PointAffine {
	return &PointAffine{
		x:     x,
		y:     y,
		curve: p.curve,
	}
}

// Neg returns -p.
func (p *PointAffine) Neg() *PointAffine {
	if p.infinity {
		return p
	}

	return p.finite(p.x, p.y.Neg())
}

// Add returns p + other using the chord rule. Adding a point to its inverse
// yields the identity.
func (p *PointAffine) Add(other *PointAffine) (*PointAffine, error) {
	if err := p.sameCurve(other); err != nil {
		return nil, err
	}

	if p.infinity {
		return other, nil
	}

	if other.infinity {
		return p, nil
	}

	if p.x.Equals(other.x) {
		if p.y.Equals(other.y) {
			return p.Double()
		}

		// vertical chord
		return p.curve.Identity(), nil
	}

	// lambda = (y1 - y2) / (x1 - x2)
	// x3 = lambda^2 - x1 - x2
	// y3 = lambda * (x1 - x3) - y1
	var k calc
	lambda := k.div(k.sub(p.y, other.y), k.sub(p.x, other.x))
	x3 := k.sub(k.sub(k.square(lambda), p.x), other.x)
	y3 := k.sub(k.mul(lambda, k.sub(p.x, x3)), p.y)
	if k.err != nil {
		return nil, fmt.Errorf("failed to add points: %w", k.err)
	}

	return p.finite(x3, y3), nil
}

// Sub returns p - other.
func (p *PointAffine) Sub(other *PointAffine) (*PointAffine, error) {
	if err := p.sameCurve(other); err != nil {
		return nil, err
	}

	return p.Add(other.Neg())
}

// Double returns 2p using the tangent rule. Points with y = 0 have order two
// and double to the identity.
func (p *PointAffine) Double() (*PointAffine, error) {
	if p.infinity || p.y.IsZero() {
		return p.curve.Identity(), nil
	}

	// lambda = (3x^2 + a) / 2y
	// x3 = lambda^2 - 2x
	// y3 = lambda * (x - x3) - y
	var k calc
	lambda := k.div(k.add(k.triple(k.square(p.x)), p.curve.a), k.dbl(p.y))
	x3 := k.sub(k.square(lambda), k.dbl(p.x))
	y3 := k.sub(k.mul(lambda, k.sub(p.x, x3)), p.y)
	if k.err != nil {
		return nil, fmt.Errorf("failed to double point: %w", k.err)
	}

	return p.finite(x3, y3), nil
}

// Multiply returns n*p by double-and-add over the bits of n, least
// significant first. A negative n multiplies -p by |n|. The running time
// depends on n.
func (p *PointAffine) Multiply(n *big.Int) (*PointAffine, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil scalar", types.ErrInvalidParams)
	}

	if n.Sign() < 0 {
		return p.Neg().Multiply(new(big.Int).Neg(n))
	}

	k := new(big.Int).Set(n)
	r := p.curve.Identity()
	q := p

	var err error
	for k.Sign() > 0 {
		if k.Bit(0) == 1 {
			r, err = r.Add(q)
			if err != nil {
				return nil, err
			}
		}

		q, err = q.Double()
		if err != nil {
			return nil, err
		}

		k.Rsh(k, 1)
	}

	return r, nil
}

// ToProjective returns (x*z : y*z : z), which normalizes back to p. z must
// be nonzero. The identity maps to (0 : 1 : 0).
func (p *PointAffine) ToProjective(z Element) (*PointProjective, error) {
	if z == nil || z.IsZero() {
		return nil, fmt.Errorf("%w: projective z must be nonzero", types.ErrInvalidParams)
	}

	if err := compatible(p.curve.a, z); err != nil {
		return nil, fmt.Errorf("projective z: %w", err)
	}

	if p.infinity {
		return p.curve.projectiveIdentity()
	}

	var k calc
	x := k.mul(p.x, z)
	y := k.mul(p.y, z)
	if k.err != nil {
		return nil, k.err
	}

	return &PointProjective{
		x:     x,
		y:     y,
		z:     z,
		curve: p.curve,
	}, nil
}

func (p *PointAffine) String() string {
	if p.infinity {
		return "infinity"
	}
	return fmt.Sprintf("(%v, %v)", p.x.Value(), p.y.Value())
}
