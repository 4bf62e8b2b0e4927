// Package textutil implements string and scalar checks built on two
// pointer and stack scans.
package textutil

import (
	"errors"
	"fmt"
	"unicode"
)

// IsPalindrome reports whether s reads the same forwards and
// backwards, comparing only letters and digits, case-insensitively
func IsPalindrome(s string) bool {
	var runes []rune
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			runes = append(runes, unicode.ToLower(r))
		}
	}

	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// PalindromeNumber reports whether n reads the same forwards and
// backwards in decimal. Negative numbers never qualify
func PalindromeNumber(n int) bool {
	if n < 0 || (n != 0 && n%10 == 0) {
		return false
	}

	// reverse only the lower half and compare with the rest
	rev := 0
	for n > rev {
		rev = rev*10 + n%10
		n /= 10
	}
	return n == rev || n == rev/10
}

var ErrBadNumeral = errors.New("bad roman numeral")

var romanValues = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50,
	'C': 100, 'D': 500, 'M': 1000,
}

// RomanToInt converts a roman numeral with subtractive notation
// ("IX" is 9) to an integer, failing with [ErrBadNumeral] on any
// unknown symbol
func RomanToInt(s string) (int, error) {
	total, prev := 0, 0
	for i := len(s) - 1; i >= 0; i-- {
		v, ok := romanValues[s[i]]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrBadNumeral, s[i])
		}

		if v < prev {
			total -= v
		} else {
			total += v
			prev = v
		}
	}
	return total, nil
}

// CommonPrefix returns the longest prefix shared by every string in
// strs, scanning all of them position by position
func CommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	for i := 0; i < len(strs[0]); i++ {
		for _, s := range strs[1:] {
			if i == len(s) || s[i] != strs[0][i] {
				return strs[0][:i]
			}
		}
	}
	return strs[0]
}

var closers = map[byte]byte{')': '(', ']': '[', '}': '{'}

// Balanced reports whether every bracket in s is closed by the
// matching bracket in the right order; non-bracket bytes are ignored
func Balanced(s string) bool {
	var stack []byte
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != closers[c] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}
