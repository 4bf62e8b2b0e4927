// Package window implements single-pass sliding window scans over
// strings.
package window

// LongestDistinct returns the length of the longest substring of s
// that contains no repeated byte
func LongestDistinct(s string) int {
	last := make(map[byte]int, len(s))
	start, best := 0, 0
	for i := 0; i < len(s); i++ {
		if j, seen := last[s[i]]; seen && j >= start {
			start = j + 1
		}
		last[s[i]] = i
		best = max(best, i-start+1)
	}
	return best
}

// LongestReplaced returns the length of the longest substring of s
// that can be made uniform by replacing at most k bytes
func LongestReplaced(s string, k int) int {
	var counts [256]int
	start, most, best := 0, 0, 0
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
		most = max(most, counts[s[i]])
		// shrink once when even the most frequent byte
		// cannot fill the window with k replacements
		if i-start+1-most > k {
			counts[s[start]]--
			start++
		}
		best = max(best, i-start+1)
	}
	return best
}
