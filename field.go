package ecc

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Element is the set of operations a curve needs from the type used for its
// coordinates.  Every method returns a new value and leaves the receiver
// untouched.
type Element[E any] interface {
	Add(E) E          // Add x+y
	Sub(E) E          // Sub x-y
	Mul(E) E          // Mul x*y
	Div(E) E          // Div x/y
	MulInt(int64) E   // MulInt k*x for a small integer k
	Neg() E           // Neg -x
	Pow(*big.Int) E   // Pow x^e
	Equal(E) bool     // Equal reports whether x == y, including the field
	IsZero() bool     // IsZero reports whether x == 0
	fmt.Stringer
}

// FieldElement is an element of the prime field F_p.  The value is always kept
// in the range [0, p).
//
// FieldElement values are immutable.  All arithmetic returns a freshly
// allocated element, so elements can be shared freely between goroutines.
type FieldElement struct {
	num   *big.Int
	prime *big.Int
}

// Ensure FieldElement satisfies the coordinate contract used by Point.
var _ Element[*FieldElement] = (*FieldElement)(nil)

// NewFieldElement returns the element num of the field with the given prime
// modulus.  It returns ErrOutOfRange when num is negative or not less than the
// prime.
//
// The prime is not tested for primality.  Division and negative exponents rely
// on Fermat's little theorem and are only meaningful for a prime modulus.
func NewFieldElement(num, prime *big.Int) (*FieldElement, error) {
	if prime == nil || prime.Cmp(two) < 0 {
		str := fmt.Sprintf("field prime %v is smaller than 2", prime)
		return nil, makeError(ErrOutOfRange, str)
	}
	if num == nil || num.Sign() < 0 || num.Cmp(prime) >= 0 {
		str := fmt.Sprintf("num %v not in field range 0 to %v", num, prime)
		return nil, makeError(ErrOutOfRange, str)
	}
	return &FieldElement{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}, nil
}

// NewFieldElementInt64 is a convenience wrapper around NewFieldElement for
// small fields.
func NewFieldElementInt64(num, prime int64) (*FieldElement, error) {
	return NewFieldElement(big.NewInt(num), big.NewInt(prime))
}

// newReduced builds an element from a value that still needs reducing.  The
// value is consumed.
func (f *FieldElement) newReduced(v *big.Int) *FieldElement {
	return &FieldElement{num: v.Mod(v, f.prime), prime: f.prime}
}

// mustMatch panics when the two elements do not share a field.
func (f *FieldElement) mustMatch(op string, other *FieldElement) {
	if f.prime.Cmp(other.prime) != 0 {
		str := fmt.Sprintf("cannot %s elements of F_%v and F_%v", op,
			f.prime, other.prime)
		panic(makeError(ErrFieldMismatch, str))
	}
}

// Num returns a copy of the element's value.
func (f *FieldElement) Num() *big.Int {
	return new(big.Int).Set(f.num)
}

// Prime returns a copy of the element's field modulus.
func (f *FieldElement) Prime() *big.Int {
	return new(big.Int).Set(f.prime)
}

// Add returns f + other.  It panics with ErrFieldMismatch when the operands
// belong to different fields.
func (f *FieldElement) Add(other *FieldElement) *FieldElement {
	f.mustMatch("add", other)
	return f.newReduced(new(big.Int).Add(f.num, other.num))
}

// Sub returns f - other.  It panics with ErrFieldMismatch when the operands
// belong to different fields.
func (f *FieldElement) Sub(other *FieldElement) *FieldElement {
	f.mustMatch("subtract", other)
	return f.newReduced(new(big.Int).Sub(f.num, other.num))
}

// Mul returns f * other.  It panics with ErrFieldMismatch when the operands
// belong to different fields.
func (f *FieldElement) Mul(other *FieldElement) *FieldElement {
	f.mustMatch("multiply", other)
	return f.newReduced(new(big.Int).Mul(f.num, other.num))
}

// MulInt returns k * f where k is an ordinary integer.  Negative k is allowed.
func (f *FieldElement) MulInt(k int64) *FieldElement {
	return f.newReduced(new(big.Int).Mul(f.num, big.NewInt(k)))
}

// Neg returns the additive inverse of f.
func (f *FieldElement) Neg() *FieldElement {
	return f.newReduced(new(big.Int).Neg(f.num))
}

// Pow returns f raised to exp.
//
// The exponent is first reduced into [0, p-1).  By Fermat's little theorem
// a^(p-1) = 1 for every non-zero a, so this also gives negative exponents
// their inverse meaning.  Raising zero to a negative power panics with
// ErrDivisionByZero.
func (f *FieldElement) Pow(exp *big.Int) *FieldElement {
	if f.num.Sign() == 0 {
		switch exp.Sign() {
		case -1:
			str := fmt.Sprintf("zero of F_%v raised to negative power %v",
				f.prime, exp)
			panic(makeError(ErrDivisionByZero, str))
		case 0:
			return &FieldElement{num: big.NewInt(1), prime: f.prime}
		default:
			return &FieldElement{num: big.NewInt(0), prime: f.prime}
		}
	}

	order := new(big.Int).Sub(f.prime, one)
	e := new(big.Int).Mod(exp, order)
	return &FieldElement{num: new(big.Int).Exp(f.num, e, f.prime), prime: f.prime}
}

// PowInt is shorthand for Pow with a small exponent.
func (f *FieldElement) PowInt(exp int64) *FieldElement {
	return f.Pow(big.NewInt(exp))
}

// Div returns f / other computed as f * other^(p-2).  It panics with
// ErrDivisionByZero when other is zero and with ErrFieldMismatch when the
// operands belong to different fields.
func (f *FieldElement) Div(other *FieldElement) *FieldElement {
	f.mustMatch("divide", other)
	if other.num.Sign() == 0 {
		str := fmt.Sprintf("division by the zero element of F_%v", f.prime)
		panic(makeError(ErrDivisionByZero, str))
	}
	exp := new(big.Int).Sub(f.prime, two)
	inv := new(big.Int).Exp(other.num, exp, f.prime)
	return f.newReduced(inv.Mul(inv, f.num))
}

// Equal reports whether both elements have the same value in the same field.
func (f *FieldElement) Equal(other *FieldElement) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.num.Cmp(other.num) == 0 && f.prime.Cmp(other.prime) == 0
}

// IsZero reports whether f is the additive identity.
func (f *FieldElement) IsZero() bool {
	return f.num.Sign() == 0
}

// IsOdd reports whether the canonical value of f is odd.
func (f *FieldElement) IsOdd() bool {
	return f.num.Bit(0) == 1
}

// Bytes32 returns the value as a 32-byte big-endian array.  It panics if the
// value needs more than 256 bits.
func (f *FieldElement) Bytes32() [32]byte {
	var b [32]byte
	f.num.FillBytes(b[:])
	return b
}

// FillBytes writes the value as a big-endian number into buf and returns buf,
// padding with leading zeros.  It panics if the value does not fit.
func (f *FieldElement) FillBytes(buf []byte) []byte {
	return f.num.FillBytes(buf)
}

// Hex returns the value as 64 zero-padded lowercase hex digits.
func (f *FieldElement) Hex() string {
	return fmt.Sprintf("%064x", f.num)
}

// String returns the element in the form FieldElement_p(num).
func (f *FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%v(%v)", f.prime, f.num)
}
