package happy

import "errors"

// ErrNotPositive is returned for numbers that are zero or negative.
var ErrNotPositive = errors.New("number must be a positive integer")

// Validate checks that n is in the predicate's domain
func Validate(n int64) error {
	if n <= 0 {
		return ErrNotPositive
	}
	return nil
}
