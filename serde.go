package weierstrass

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-weierstrass/field"
	"github.com/athanorlabs/go-weierstrass/types"
)

const (
	tagIdentity     = 0x00
	tagCompressed   = 0x02
	tagUncompressed = 0x04
)

var (
	errInputBytesTooShort    = fmt.Errorf("%w: input bytes too short", types.ErrInvalidEncoding)
	errInputBytesWrongLength = fmt.Errorf("%w: input bytes wrong length", types.ErrInvalidEncoding)
)

// checkBodyLen returns the error for a point body that is not n bytes long.
func checkBodyLen(body []byte, n int) error {
	switch {
	case len(body) < n:
		return errInputBytesTooShort
	case len(body) > n:
		return errInputBytesWrongLength
	}
	return nil
}

// ElementSize returns the number of bytes of an encoded coordinate.
func (c *Curve) ElementSize() int {
	return (c.Modulus().BitLen() + 7) / 8
}

// Encode serializes p. The identity is the single byte 0x00; finite points
// are 0x04 || X || Y, or 0x02|parity(Y) || X when compressed, with big-endian
// coordinates of Curve.ElementSize bytes.
func (p *PointAffine) Encode(compressed bool) []byte {
	if p.infinity {
		return []byte{tagIdentity}
	}

	size := p.curve.ElementSize()
	x := p.x.Value().FillBytes(make([]byte, size))
	y := p.y.Value()

	if compressed {
		b := []byte{tagCompressed | byte(y.Bit(0))}
		return append(b, x...)
	}

	b := append([]byte{tagUncompressed}, x...)
	return append(b, y.FillBytes(make([]byte, size))...)
}

// DecodePoint parses an encoding produced by PointAffine.Encode. The result
// is always checked to lie on c.
func (c *Curve) DecodePoint(in []byte) (*PointAffine, error) {
	if len(in) < 1 {
		return nil, errInputBytesTooShort
	}

	size := c.ElementSize()
	tag, body := in[0], in[1:]

	switch tag {
	case tagIdentity:
		if len(body) != 0 {
			return nil, fmt.Errorf("%w: trailing bytes after identity", types.ErrInvalidEncoding)
		}
		return c.Identity(), nil
	case tagUncompressed:
		if err := checkBodyLen(body, 2*size); err != nil {
			return nil, err
		}

		x, err := c.decodeElement(body[:size])
		if err != nil {
			return nil, err
		}

		y, err := c.decodeElement(body[size:])
		if err != nil {
			return nil, err
		}

		return c.Point(x, y)
	case tagCompressed, tagCompressed | 1:
		if err := checkBodyLen(body, size); err != nil {
			return nil, err
		}

		x, err := c.decodeElement(body)
		if err != nil {
			return nil, err
		}

		y, err := c.recoverY(x, uint(tag&1))
		if err != nil {
			return nil, err
		}

		return c.Point(x, y)
	default:
		return nil, fmt.Errorf("%w: unknown tag 0x%02x", types.ErrInvalidEncoding, tag)
	}
}

func (c *Curve) decodeElement(b []byte) (Element, error) {
	e, err := c.a.New(new(big.Int).SetBytes(b))
	if errors.Is(err, types.ErrInvalidParams) {
		return nil, fmt.Errorf("%w: coordinate not in field", types.ErrInvalidEncoding)
	}
	return e, err
}

// recoverY returns the square root of x^3 + ax + b whose low bit is parity.
func (c *Curve) recoverY(x Element, parity uint) (Element, error) {
	p := c.Modulus()
	if p.Bit(0) == 0 {
		return nil, fmt.Errorf("%w: compressed points need an odd prime field", types.ErrInvalidEncoding)
	}

	var k calc
	rhs := c.rhs(&k, x)
	if k.err != nil {
		return nil, k.err
	}

	sq, err := field.New(rhs.Value(), p)
	if err != nil {
		return nil, err
	}

	root, err := sq.Sqrt()
	if err != nil {
		return nil, fmt.Errorf("%w: x has no matching y", types.ErrPointNotOnCurve)
	}

	y := root.Value()
	if y.Bit(0) != parity {
		y.Sub(p, y)
	}

	// y = 0 has only one root; its parity bit must be 0
	if y.Cmp(p) == 0 {
		return nil, fmt.Errorf("%w: invalid parity for y = 0", types.ErrInvalidEncoding)
	}

	return c.a.New(y)
}
