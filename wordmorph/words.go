package wordmorph

// Diff returns the number of positions at which words a and b hold different
// characters. Counting stops as soon as the number of differences exceeds
// max, in which case max+1 is returned. Words of different lengths cannot be
// morphed into each other and always return max+1.
func Diff(a string, b string, max int) int {
	if len(a) != len(b) {
		return max + 1
	}
	diff := 0
	for i := 0; i < len(a) && diff <= max; i++ {
		if a[i] != b[i] {
			diff++
		}
	}
	return diff
}

// Equal compares two words for equality.
func Equal(a string, b string) bool {
	return a == b
}
