// Package seq implements single-pass and two-pointer scans over
// integer sequences.
package seq

import "slices"

// TwoSum returns the indices of two distinct elements of nums that
// add up to target, in order of appearance. ok is false when no such
// pair exists
func TwoSum(nums []int, target int) (i, j int, ok bool) {
	seen := make(map[int]int, len(nums))
	for idx, n := range nums {
		if prev, found := seen[target-n]; found {
			return prev, idx, true
		}
		seen[n] = idx
	}
	return 0, 0, false
}

// ThreeSum returns every distinct sorted triple of elements of nums
// that sums to zero
func ThreeSum(nums []int) [][3]int {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	var triples [][3]int
	for i := 0; i < len(sorted)-2; i++ {
		if sorted[i] > 0 {
			break
		}
		if i > 0 && sorted[i] == sorted[i-1] {
			continue
		}

		lo, hi := i+1, len(sorted)-1
		for lo < hi {
			switch sum := sorted[i] + sorted[lo] + sorted[hi]; {
			case sum < 0:
				lo++
			case sum > 0:
				hi--
			default:
				triples = append(triples, [3]int{sorted[i], sorted[lo], sorted[hi]})
				for lo < hi && sorted[lo] == sorted[lo+1] {
					lo++
				}
				for lo < hi && sorted[hi] == sorted[hi-1] {
					hi--
				}
				lo++
				hi--
			}
		}
	}
	return triples
}

// Duplicate returns the repeated value of nums, which must hold n+1
// integers in range [1, n]. Values are followed as indices, so the
// repeated value is the entrance of the cycle they form
func Duplicate(nums []int) int {
	slow, fast := 0, 0
	for {
		slow = nums[slow]
		fast = nums[nums[fast]]
		if slow == fast {
			break
		}
	}

	slow = 0
	for slow != fast {
		slow = nums[slow]
		fast = nums[fast]
	}
	return slow
}

// HasLoop reports whether the circular array nums contains a cycle of
// length > 1 whose jumps all move in the same direction. Elements
// must be non-zero; visited dead paths are marked with 0 in a local
// copy, the input is not modified
func HasLoop(nums []int) bool {
	if len(nums) < 2 {
		return false
	}
	nums = slices.Clone(nums)

	for i := range nums {
		if nums[i] == 0 {
			continue
		}

		slow, fast := i, i
		for {
			slow = step(nums, slow)
			fast = step(nums, fast)
			if fast != -1 {
				fast = step(nums, fast)
			}
			if slow == -1 || fast == -1 {
				break
			}
			if slow == fast {
				if slow == step(nums, slow) { // self loop
					break
				}
				return true
			}
		}

		markDead(nums, i)
	}
	return false
}

// step returns the next index from cur, or -1 when the jump changes
// direction
func step(nums []int, cur int) int {
	n := len(nums)
	next := ((cur+nums[cur])%n + n) % n
	if (nums[cur] > 0) != (nums[next] > 0) {
		return -1
	}
	return next
}

func markDead(nums []int, start int) {
	n := len(nums)
	for cur := start; nums[cur] != 0; {
		next := ((cur+nums[cur])%n + n) % n
		nums[cur] = 0
		cur = next
	}
}
