package decimal

import "errors"

var (
	ErrOverflow         = errors.New("decimal: result does not fit 128 bits")
	ErrZeroDenominator  = errors.New("decimal: zero denominator")
	ErrInvalidString    = errors.New("decimal: invalid decimal string")
	ErrNegative         = errors.New("decimal: negative value")
	ErrInvalidBaseRange = errors.New("decimal: argument outside (0, 2)")
	ErrNotConverged     = errors.New("decimal: series did not converge within term limit")
)
