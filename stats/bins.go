// SPDX-License-Identifier: MIT

package stats

// FindBin returns the index of the bucket x falls into. With k ascending
// breaks b0 < b1 < ... < b(k-1) there are k+1 buckets:
//
//	0: (-inf, b0)   1: [b0, b1)   ...   k: [b(k-1), +inf)
//
// Every bucket is closed on its lower bound. Breaks are assumed sorted.
//
// Complexity: O(k).
func FindBin(x float64, breaks []float64) int {
	i := len(breaks)
	for i > 0 && x < breaks[i-1] {
		i--
	}

	return i
}

// Bin maps every x to its bucket index (see FindBin).
func Bin(xs, breaks []float64) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = FindBin(x, breaks)
	}

	return out
}

// Hist counts how many xs land in each bucket. Empty buckets are absent from
// the map.
func Hist(xs, breaks []float64) map[int]int {
	counts := make(map[int]int)
	for _, b := range Bin(xs, breaks) {
		counts[b]++
	}

	return counts
}
