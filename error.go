// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrOutOfRange is returned when a field element is constructed with a
	// value that is negative or not less than the field prime.  It is also
	// returned when the prime itself is smaller than two.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrFieldMismatch is the panic value used when an arithmetic operation
	// combines two field elements that belong to different prime fields.
	ErrFieldMismatch = ErrorKind("ErrFieldMismatch")

	// ErrDivisionByZero is the panic value used when dividing by the zero
	// element or raising the zero element to a negative power.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrPointNotOnCurve is returned when constructing an affine point whose
	// coordinates do not satisfy y^2 = x^3 + ax + b.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrDifferentCurve is the panic value used when adding two points whose
	// curve coefficients differ.
	ErrDifferentCurve = ErrorKind("ErrDifferentCurve")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error raised by the finite field and curve arithmetic.
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
