package weft

// broadcastLength determines the output row count for a set of expression
// result lengths. Scalars (length 1) broadcast to any length; the row
// count is the least common multiple of the non-unit lengths. A length of
// zero short-circuits to zero rows.
//
// mismatch reports whether any pair of sequence lengths was not a multiple
// of the other (the LCM exceeds the longest input); rendering proceeds by
// recycling, but callers should emit a diagnostic.
func broadcastLength(lengths []int) (rows int, mismatch bool) {
	rows = 1
	longest := 1

	for _, n := range lengths {
		switch {
		case n == 0:
			return 0, false
		case n == 1:
			continue
		}

		if n > longest {
			longest = n
		}

		rows = lcm(rows, n)
	}

	return rows, rows != longest
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
