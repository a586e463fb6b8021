// Package happy implements the happy number predicate and the checker that
// guards it.
//
// A happy number is a positive integer that eventually reaches 1 under
// repeated replacement by the sum of the squares of its decimal digits.
// Numbers that never reach 1 fall into the cycle
// 4 → 16 → 37 → 58 → 89 → 145 → 42 → 20 → 4.
//
// The checker:
//   - Rejects non-positive input with ErrNotPositive
//   - Runs the predicate
//   - Records the outcome through a Metrics recorder
package happy
