package weierstrass

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-weierstrass/field"
)

func fe(t *testing.T, n int64, p *big.Int) Element {
	e, err := field.NewFromInt64(n, p)
	require.NoError(t, err)
	return e
}

func newCurve(t *testing.T, a, b int64, p *big.Int) *Curve {
	c, err := NewCurve(fe(t, a, p), fe(t, b, p))
	require.NoError(t, err)
	return c
}

func point(t *testing.T, c *Curve, x, y int64) *PointAffine {
	p, err := c.Point(fe(t, x, c.Modulus()), fe(t, y, c.Modulus()))
	require.NoError(t, err)
	return p
}

// allPoints enumerates every finite point of a curve over a small field.
func allPoints(t *testing.T, c *Curve) []*PointAffine {
	p := c.Modulus().Int64()
	var points []*PointAffine
	for x := int64(0); x < p; x++ {
		for y := int64(0); y < p; y++ {
			if c.IsOnCurve(fe(t, x, c.Modulus()), fe(t, y, c.Modulus())) {
				points = append(points, point(t, c, x, y))
			}
		}
	}
	return points
}

// curveThrough returns a curve with coefficient a that passes through (x, y),
// solving for b.
func curveThrough(t *testing.T, x, y, a Element) *Curve {
	var k calc
	x3 := k.mul(k.square(x), x)
	b := k.sub(k.sub(k.square(y), x3), k.mul(a, x))
	require.NoError(t, k.err)

	c, err := NewCurve(a, b)
	require.NoError(t, err)
	return c
}

func requireSamePoint(t *testing.T, expected, actual *PointAffine) {
	t.Helper()
	require.True(t, expected.Equals(actual), "expected %s, got %s", expected, actual)
}
