package happy

// IsHappy reports whether n is a happy number.
// n must be positive; the result for n <= 0 is false.
func IsHappy(n int64) bool {
	return reachesOne(Trace(n))
}

// reachesOne reports whether a path produced by Trace ended at 1
func reachesOne(path []int64) bool {
	return path[len(path)-1] == 1
}

// DigitSquareSum returns the sum of the squares of the base-10 digits of n.
// The sign of n is ignored.
func DigitSquareSum(n int64) int64 {
	var sum int64
	for n != 0 {
		d := n % 10
		sum += d * d
		n /= 10
	}
	return sum
}

// Trace returns the values visited while deciding whether n is happy,
// starting with n and ending with 1 or with the first repeated value.
func Trace(n int64) []int64 {
	seen := make(map[int64]struct{})
	path := []int64{n}
	for n != 1 {
		if _, ok := seen[n]; ok {
			break
		}
		seen[n] = struct{}{}
		n = DigitSquareSum(n)
		path = append(path, n)
	}
	return path
}
