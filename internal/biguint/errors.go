package biguint

import "errors"

// Error kinds returned by the wide integer kernel. All of them are
// deterministic: retrying the same operation gives the same error.
var (
	ErrLengthMismatch     = errors.New("biguint: byte length does not match width")
	ErrZeroValue          = errors.New("biguint: bit length of zero value")
	ErrZeroDivisor        = errors.New("biguint: division by zero")
	ErrOverflow           = errors.New("biguint: result does not fit width")
	ErrShiftAmountInvalid = errors.New("biguint: sub-limb shift amount out of range")
)
