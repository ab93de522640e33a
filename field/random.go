package field

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Random returns a uniformly random element of Z/pZ.
func Random(p *big.Int) (*FieldElement, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}

	n, err := rand.Int(rand.Reader, p)
	if err != nil {
		return nil, err
	}

	return &FieldElement{
		n: n,
		p: new(big.Int).Set(p),
	}, nil
}

// HashToElement maps data to an element of Z/pZ. The input is expanded with
// SHAKE256 to 128 bits more than the size of p before reduction, so the bias
// of the result is negligible.
func HashToElement(p *big.Int, data []byte) (*FieldElement, error) {
	if err := checkModulus(p); err != nil {
		return nil, err
	}

	out := make([]byte, (p.BitLen()+128+7)/8)
	sha3.ShakeSum256(out, data)

	n := new(big.Int).SetBytes(out)
	return &FieldElement{
		n: n.Mod(n, p),
		p: new(big.Int).Set(p),
	}, nil
}
