package weierstrass

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-weierstrass/ed25519"
	"github.com/athanorlabs/go-weierstrass/field"
	secpfield "github.com/athanorlabs/go-weierstrass/secp256k1"
	"github.com/athanorlabs/go-weierstrass/types"
)

var seven = big.NewInt(7)

// y^2 = x^3 + 3 over F_7 has 13 points, so every finite point generates the
// whole group.
func curve7(t *testing.T) *Curve {
	return newCurve(t, 0, 3, seven)
}

func TestDouble_Example(t *testing.T) {
	c := curve7(t)
	p := point(t, c, 3, 3)

	d, err := p.Double()
	require.NoError(t, err)
	requireSamePoint(t, point(t, c, 2, 5), d)

	sum, err := p.Add(p)
	require.NoError(t, err)
	requireSamePoint(t, d, sum)
}

func TestNewPoint(t *testing.T) {
	p, err := NewPoint(fe(t, 3, seven), fe(t, 3, seven), fe(t, 0, seven), fe(t, 3, seven))
	require.NoError(t, err)
	require.False(t, p.IsIdentity())
	require.NoError(t, p.Validate())
	require.True(t, p.Curve().Equals(curve7(t)))

	// membership is not checked by NewPoint
	off, err := NewPoint(fe(t, 1, seven), fe(t, 1, seven), fe(t, 0, seven), fe(t, 3, seven))
	require.NoError(t, err)
	require.ErrorIs(t, off.Validate(), types.ErrPointNotOnCurve)

	_, err = curve7(t).Point(fe(t, 1, seven), fe(t, 1, seven))
	require.ErrorIs(t, err, types.ErrPointNotOnCurve)

	eleven := big.NewInt(11)
	_, err = NewPoint(fe(t, 3, eleven), fe(t, 3, seven), fe(t, 0, seven), fe(t, 3, seven))
	require.ErrorIs(t, err, types.ErrMismatch)

	_, err = NewCurve(fe(t, 0, seven), fe(t, 3, eleven))
	require.ErrorIs(t, err, types.ErrMismatch)

	_, err = NewPoint(nil, fe(t, 3, seven), fe(t, 0, seven), fe(t, 3, seven))
	require.ErrorIs(t, err, types.ErrInvalidParams)
}

func TestAdd_IdentityAbsorption(t *testing.T) {
	c := curve7(t)
	id := c.Identity()
	require.True(t, id.IsIdentity())
	require.Nil(t, id.X())

	points := allPoints(t, c)
	require.Len(t, points, 12)

	for _, p := range points {
		r, err := p.Add(id)
		require.NoError(t, err)
		requireSamePoint(t, p, r)

		r, err = id.Add(p)
		require.NoError(t, err)
		requireSamePoint(t, p, r)
	}

	r, err := id.Add(id)
	require.NoError(t, err)
	require.True(t, r.IsIdentity())

	r, err = id.Double()
	require.NoError(t, err)
	require.True(t, r.IsIdentity())
}

func TestAdd_InversePoints(t *testing.T) {
	c := curve7(t)
	for _, p := range allPoints(t, c) {
		r, err := p.Add(p.Neg())
		require.NoError(t, err)
		require.True(t, r.IsIdentity(), "%s + -%s", p, p)

		r, err = p.Sub(p)
		require.NoError(t, err)
		require.True(t, r.IsIdentity())
	}
}

func TestDouble_PointOfOrderTwo(t *testing.T) {
	// y^2 = x^3 + x over F_7: (0, 0) is a genuine point of order two and is
	// distinct from the identity.
	c := newCurve(t, 1, 0, seven)
	p := point(t, c, 0, 0)
	require.False(t, p.IsIdentity())
	require.False(t, p.Equals(c.Identity()))

	d, err := p.Double()
	require.NoError(t, err)
	require.True(t, d.IsIdentity())

	r, err := p.Add(c.Identity())
	require.NoError(t, err)
	requireSamePoint(t, p, r)

	r, err = p.Multiply(big.NewInt(3))
	require.NoError(t, err)
	requireSamePoint(t, p, r)
}

func TestGroupLaws(t *testing.T) {
	c := curve7(t)
	points := allPoints(t, c)

	for _, p := range points {
		for _, q := range points {
			pq, err := p.Add(q)
			require.NoError(t, err)
			qp, err := q.Add(p)
			require.NoError(t, err)
			requireSamePoint(t, pq, qp)
			require.NoError(t, pq.Validate())
		}
	}

	for i := 0; i+2 < len(points); i++ {
		p, q, r := points[i], points[i+1], points[i+2]
		pq, err := p.Add(q)
		require.NoError(t, err)
		left, err := pq.Add(r)
		require.NoError(t, err)
		qr, err := q.Add(r)
		require.NoError(t, err)
		right, err := p.Add(qr)
		require.NoError(t, err)
		requireSamePoint(t, left, right)
	}
}

func TestMultiply_MatchesRepeatedAdd(t *testing.T) {
	c := curve7(t)
	for _, p := range allPoints(t, c) {
		acc := c.Identity()
		for k := int64(0); k <= 30; k++ {
			r, err := p.Multiply(big.NewInt(k))
			require.NoError(t, err)
			requireSamePoint(t, acc, r)

			acc, err = acc.Add(p)
			require.NoError(t, err)
		}

		// the group has prime order 13
		r, err := p.Multiply(big.NewInt(13))
		require.NoError(t, err)
		require.True(t, r.IsIdentity())
	}
}

func TestMultiply_Negative(t *testing.T) {
	c := curve7(t)
	p := point(t, c, 3, 3)

	for k := int64(1); k < 15; k++ {
		neg, err := p.Multiply(big.NewInt(-k))
		require.NoError(t, err)
		pos, err := p.Multiply(big.NewInt(k))
		require.NoError(t, err)
		requireSamePoint(t, pos.Neg(), neg)
	}

	r, err := c.Identity().Multiply(big.NewInt(5))
	require.NoError(t, err)
	require.True(t, r.IsIdentity())

	_, err = p.Multiply(nil)
	require.ErrorIs(t, err, types.ErrInvalidParams)
}

func TestAdd_CurveMismatch(t *testing.T) {
	p := point(t, curve7(t), 3, 3)

	other := newCurve(t, 1, 0, seven)
	q := point(t, other, 0, 0)

	_, err := p.Add(q)
	require.ErrorIs(t, err, types.ErrMismatch)
	_, err = p.Sub(q)
	require.ErrorIs(t, err, types.ErrMismatch)
	require.False(t, p.Equals(q))

	_, err = p.Add(nil)
	require.ErrorIs(t, err, types.ErrInvalidParams)
}

func secp256k1Curve(t *testing.T, newElement func(*big.Int) (Element, error)) (*Curve, *PointAffine) {
	params := secp256k1.S256().Params()

	a, err := newElement(big.NewInt(0))
	require.NoError(t, err)
	b, err := newElement(big.NewInt(7))
	require.NoError(t, err)
	c, err := NewCurve(a, b)
	require.NoError(t, err)

	gx, err := newElement(params.Gx)
	require.NoError(t, err)
	gy, err := newElement(params.Gy)
	require.NoError(t, err)
	g, err := c.Point(gx, gy)
	require.NoError(t, err)
	return c, g
}

func TestMultiply_Secp256k1(t *testing.T) {
	p := secpfield.Modulus()
	backends := map[string]func(*big.Int) (Element, error){
		"big.Int": func(n *big.Int) (Element, error) {
			return field.New(n, p)
		},
		"FieldVal": func(n *big.Int) (Element, error) {
			return secpfield.NewElement(n)
		},
	}

	for name, newElement := range backends {
		t.Run(name, func(t *testing.T) {
			_, g := secp256k1Curve(t, newElement)

			for i := 0; i < 4; i++ {
				k, err := field.Random(secp256k1.S256().Params().N)
				require.NoError(t, err)

				r, err := g.Multiply(k.Value())
				require.NoError(t, err)
				require.NoError(t, r.Validate())

				ex, ey := secp256k1.S256().ScalarBaseMult(k.Value().Bytes())
				require.Equal(t, 0, ex.Cmp(r.X().Value()))
				require.Equal(t, 0, ey.Cmp(r.Y().Value()))
			}

			r, err := g.Multiply(secp256k1.S256().Params().N)
			require.NoError(t, err)
			require.True(t, r.IsIdentity())
		})
	}
}

func TestMultiply_BackendsAgree(t *testing.T) {
	p := ed25519.Modulus()

	ref := func(n int64) *field.FieldElement {
		e, err := field.HashToElement(p, []byte{byte(n)})
		require.NoError(t, err)
		return e
	}
	fast := func(e *field.FieldElement) Element {
		out, err := ed25519.NewElement(e.Value())
		require.NoError(t, err)
		return out
	}

	x, y, a := ref(1), ref(2), ref(3)
	refCurve := curveThrough(t, x, y, a)
	fastCurve := curveThrough(t, fast(x), fast(y), fast(a))
	require.Equal(t, 0, refCurve.B().Value().Cmp(fastCurve.B().Value()))

	refP, err := refCurve.Point(x, y)
	require.NoError(t, err)
	fastP, err := fastCurve.Point(fast(x), fast(y))
	require.NoError(t, err)

	k, err := field.Random(p)
	require.NoError(t, err)

	r1, err := refP.Multiply(k.Value())
	require.NoError(t, err)
	r2, err := fastP.Multiply(k.Value())
	require.NoError(t, err)

	require.Equal(t, 0, r1.X().Value().Cmp(r2.X().Value()))
	require.Equal(t, 0, r1.Y().Value().Cmp(r2.Y().Value()))

	// points over different backends never mix
	_, err = refP.Add(fastP)
	require.ErrorIs(t, err, types.ErrMismatch)
}
