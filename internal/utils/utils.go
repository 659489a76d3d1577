package utils

// RoundUp2 - Returns the nearest bigger (or equal) exponent of 2 of n, with 1 as the smallest value
func RoundUp2(n int64) (r int64) {
	r = 1
	for r < n {
		r <<= 1
	}

	return
}

// NextPrime - Returns the nearest bigger (or equal) prime number of n.
// A prime table size allows a double hashing probe sequence to visit every slot once and only once.
func NextPrime(n int64) int64 {
OUTER:
	for {
		if n == 2 || n == 3 {
			return n
		}

		if n <= 1 || n%2 == 0 || n%3 == 0 {
			n++
			continue
		}

		for i := int64(5); i*i <= n; i += 6 {
			if n%i == 0 || n%(i+2) == 0 {
				n++
				continue OUTER
			}
		}

		return n
	}
}
