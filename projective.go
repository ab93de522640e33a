package weierstrass

import (
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-weierstrass/types"
)

// PointProjective is the homogeneous point (X : Y : Z) standing for the
// affine point (X/Z, Y/Z). Z = 0 is the point at infinity and Z = 1 marks a
// normalized point.
type PointProjective struct {
	x, y, z Element
	curve   *Curve
}

// NewProjective returns (x : y : z) on y^2 = x^3 + ax + b. Like NewPoint it
// only checks that all elements share a field.
func NewProjective(x, y, z, a, b Element) (*PointProjective, error) {
	c, err := NewCurve(a, b)
	if err != nil {
		return nil, err
	}

	if x == nil || y == nil || z == nil {
		return nil, fmt.Errorf("%w: nil coordinate", types.ErrInvalidParams)
	}

	if err := compatible(a, x, y, z); err != nil {
		return nil, fmt.Errorf("projective coordinates: %w", err)
	}

	return &PointProjective{
		x:     x,
		y:     y,
		z:     z,
		curve: c,
	}, nil
}

func (c *Curve) projectiveIdentity() (*PointProjective, error) {
	zero, err := c.element(0)
	if err != nil {
		return nil, err
	}

	one, err := c.element(1)
	if err != nil {
		return nil, err
	}

	return &PointProjective{
		x:     zero,
		y:     one,
		z:     zero,
		curve: c,
	}, nil
}

func (p *PointProjective) X() Element {
	return p.x
}

func (p *PointProjective) Y() Element {
	return p.y
}

func (p *PointProjective) Z() Element {
	return p.z
}

func (p *PointProjective) Curve() *Curve {
	return p.curve
}

func (p *PointProjective) IsIdentity() bool {
	return p.z.IsZero()
}

// Normalize rescales p to Z = 1. The point at infinity normalizes to the
// canonical (0 : 1 : 0).
func (p *PointProjective) Normalize() (*PointProjective, error) {
	if p.z.IsZero() {
		return p.curve.projectiveIdentity()
	}

	zInv, err := p.z.Inverse()
	if err != nil {
		return nil, err
	}

	one, err := p.curve.element(1)
	if err != nil {
		return nil, err
	}

	var k calc
	x := k.mul(p.x, zInv)
	y := k.mul(p.y, zInv)
	if k.err != nil {
		return nil, k.err
	}

	return &PointProjective{
		x:     x,
		y:     y,
		z:     one,
		curve: p.curve,
	}, nil
}

// ToAffine returns the affine form of p.
func (p *PointProjective) ToAffine() (*PointAffine, error) {
	if p.z.IsZero() {
		return p.curve.Identity(), nil
	}

	n, err := p.Normalize()
	if err != nil {
		return nil, err
	}

	return p.curve.newPoint(n.x, n.y)
}

// Equals reports whether p and other represent the same point.
func (p *PointProjective) Equals(other *PointProjective) bool {
	if other == nil || !p.curve.Equals(other.curve) {
		return false
	}

	if p.IsIdentity() || other.IsIdentity() {
		return p.IsIdentity() == other.IsIdentity()
	}

	// X1*Z2 == X2*Z1 and Y1*Z2 == Y2*Z1
	var k calc
	x1, x2 := k.mul(p.x, other.z), k.mul(other.x, p.z)
	y1, y2 := k.mul(p.y, other.z), k.mul(other.y, p.z)
	if k.err != nil {
		return false
	}

	return x1.Equals(x2) && y1.Equals(y2)
}

func (p *PointProjective) sameCurve(other *PointProjective) error {
	if other == nil {
		return fmt.Errorf("%w: nil point", types.ErrInvalidParams)
	}

	if !p.curve.Equals(other.curve) {
		return fmt.Errorf("%w: points on %s and %s", types.ErrMismatch, p.curve, other.curve)
	}

	return nil
}

// Neg returns -p.
func (p *PointProjective) Neg() *PointProjective {
	return &PointProjective{
		x:     p.x,
		y:     p.y.Neg(),
		z:     p.z,
		curve: p.curve,
	}
}

// Add returns p + other without any field inversion.
// See https://hyperelliptic.org/EFD/g1p/auto-shortw-projective.html#addition-add-1998-cmo-2
func (p *PointProjective) Add(other *PointProjective) (*PointProjective, error) {
	if err := p.sameCurve(other); err != nil {
		return nil, err
	}

	if p.IsIdentity() {
		return other, nil
	}

	if other.IsIdentity() {
		return p, nil
	}

	var k calc
	y1z2 := k.mul(p.y, other.z)
	x1z2 := k.mul(p.x, other.z)
	z1z2 := k.mul(p.z, other.z)
	u := k.sub(k.mul(other.y, p.z), y1z2)
	v := k.sub(k.mul(other.x, p.z), x1z2)
	if k.err != nil {
		return nil, fmt.Errorf("failed to add points: %w", k.err)
	}

	if v.IsZero() {
		if u.IsZero() {
			return p.Double()
		}
		return p.curve.projectiveIdentity()
	}

	uu := k.square(u)
	vv := k.square(v)
	vvv := k.mul(v, vv)
	r := k.mul(vv, x1z2)
	a := k.sub(k.sub(k.mul(uu, z1z2), vvv), k.dbl(r))
	x3 := k.mul(v, a)
	y3 := k.sub(k.mul(u, k.sub(r, a)), k.mul(vvv, y1z2))
	z3 := k.mul(vvv, z1z2)
	if k.err != nil {
		return nil, fmt.Errorf("failed to add points: %w", k.err)
	}

	return &PointProjective{
		x:     x3,
		y:     y3,
		z:     z3,
		curve: p.curve,
	}, nil
}

// Double returns 2p without any field inversion.
// See https://hyperelliptic.org/EFD/g1p/auto-shortw-projective.html#doubling-dbl-2007-bl
func (p *PointProjective) Double() (*PointProjective, error) {
	if p.IsIdentity() || p.y.IsZero() {
		return p.curve.projectiveIdentity()
	}

	var k calc
	xx := k.square(p.x)
	zz := k.square(p.z)
	w := k.add(k.mul(p.curve.a, zz), k.triple(xx))
	s := k.dbl(k.mul(p.y, p.z))
	ss := k.square(s)
	sss := k.mul(s, ss)
	r := k.mul(p.y, s)
	rr := k.square(r)
	b := k.sub(k.sub(k.square(k.add(p.x, r)), xx), rr)
	h := k.sub(k.square(w), k.dbl(b))
	x3 := k.mul(h, s)
	y3 := k.sub(k.mul(w, k.sub(b, h)), k.dbl(rr))
	if k.err != nil {
		return nil, fmt.Errorf("failed to double point: %w", k.err)
	}

	return &PointProjective{
		x:     x3,
		y:     y3,
		z:     sss,
		curve: p.curve,
	}, nil
}

// Multiply returns n*p with the same double-and-add walk as
// PointAffine.Multiply, deferring all inversions to a final Normalize.
func (p *PointProjective) Multiply(n *big.Int) (*PointProjective, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil scalar", types.ErrInvalidParams)
	}

	if n.Sign() < 0 {
		return p.Neg().Multiply(new(big.Int).Neg(n))
	}

	r, err := p.curve.projectiveIdentity()
	if err != nil {
		return nil, err
	}

	k := new(big.Int).Set(n)
	q := p
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

func (p *PointProjective) String() string {
	return fmt.Sprintf("(%v : %v : %v)", p.x.Value(), p.y.Value(), p.z.Value())
}
