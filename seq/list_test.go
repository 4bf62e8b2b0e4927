package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeList(vals ...int) *List {
	l := &List{}
	for _, v := range vals {
		l.Push(v)
	}
	return l
}

func TestListPush(t *testing.T) {
	assert := assert.New(t)

	l := &List{}
	assert.Equal(0, l.Len())
	assert.Empty(l.Values())

	l.Push(1)
	l.Push(2)
	l.Push(3)
	assert.Equal(3, l.Len())
	assert.Equal([]int{1, 2, 3}, l.Values())
}

func TestListRemoveFromEnd(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		l := makeList(1, 2, 3, 4, 5)
		assert.True(t, l.RemoveFromEnd(2))
		assert.Equal(t, []int{1, 2, 3, 5}, l.Values())
		assert.Equal(t, 4, l.Len())
	})

	t.Run("last", func(t *testing.T) {
		l := makeList(1, 2, 3)
		assert.True(t, l.RemoveFromEnd(1))
		assert.Equal(t, []int{1, 2}, l.Values())

		// tail must still accept pushes
		l.Push(9)
		assert.Equal(t, []int{1, 2, 9}, l.Values())
	})

	t.Run("head", func(t *testing.T) {
		l := makeList(1, 2, 3)
		assert.True(t, l.RemoveFromEnd(3))
		assert.Equal(t, []int{2, 3}, l.Values())
	})

	t.Run("single element", func(t *testing.T) {
		l := makeList(42)
		assert.True(t, l.RemoveFromEnd(1))
		assert.Empty(t, l.Values())
		assert.Equal(t, 0, l.Len())

		l.Push(7)
		assert.Equal(t, []int{7}, l.Values())
	})

	t.Run("out of range", func(t *testing.T) {
		l := makeList(1, 2)
		assert.False(t, l.RemoveFromEnd(0))
		assert.False(t, l.RemoveFromEnd(3))
		assert.Equal(t, []int{1, 2}, l.Values())
	})
}
