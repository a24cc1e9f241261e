package ecc

import "math/big"

// ScalarMult returns k*p using binary double-and-add.
//
// The bits of k are consumed from least to most significant.  For every bit
// the running power of two multiple of p is added to the result when the bit
// is set and then doubled, so the cost is O(log k) group operations.  The
// loop ends as soon as no set bits remain.
//
// A negative k multiplies the inverse of p by |k|.  k itself is not modified.
func ScalarMult[E Element[E]](k *big.Int, p *Point[E]) *Point[E] {
	coef := new(big.Int).Set(k)
	current := p
	if coef.Sign() < 0 {
		coef.Neg(coef)
		current = p.Neg()
	}

	result := Infinity[E]()
	for coef.Sign() > 0 {
		if coef.Bit(0) == 1 {
			result = result.Add(current)
		}
		current = current.Add(current)
		coef.Rsh(coef, 1)
	}
	return result
}

// ScalarMult returns k*p.  See the package level ScalarMult.
func (p *Point[E]) ScalarMult(k *big.Int) *Point[E] {
	return ScalarMult(k, p)
}
