package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongestDistinct(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, LongestDistinct(""))
	assert.Equal(1, LongestDistinct("bbbbb"))
	assert.Equal(3, LongestDistinct("abcabcbb"))
	assert.Equal(3, LongestDistinct("pwwkew"))
	assert.Equal(5, LongestDistinct("allsort"))
	assert.Equal(5, LongestDistinct("tmmzuxt"))
}

func TestLongestReplaced(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, LongestReplaced("", 2))
	assert.Equal(4, LongestReplaced("ABAB", 2))
	assert.Equal(4, LongestReplaced("AABABBA", 1))
	assert.Equal(4, LongestReplaced("AAAA", 0))
	assert.Equal(1, LongestReplaced("ABCD", 0))
	assert.Equal(4, LongestReplaced("ABCD", 3))
}
