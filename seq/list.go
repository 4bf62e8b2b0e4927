package seq

// List is a singly linked list of ints
type List struct {
	head *node
	tail *node
	size int
}

type node struct {
	val  int
	next *node
}

// Push appends v to the end of l
func (l *List) Push(v int) {
	n := &node{val: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

func (l *List) Len() int {
	return l.size
}

// Values returns the list contents in order
func (l *List) Values() []int {
	out := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// RemoveFromEnd deletes the nth node counting from the end (n == 1 is
// the last one) in a single pass with two pointers n nodes apart.
// Reports whether a node was removed; n < 1 or n > Len removes
// nothing
func (l *List) RemoveFromEnd(n int) bool {
	if n < 1 || n > l.size {
		return false
	}

	lead := l.head
	for i := 0; i < n; i++ {
		lead = lead.next
	}

	if lead == nil { // head is the nth from the end
		l.head = l.head.next
		if l.head == nil {
			l.tail = nil
		}
		l.size--
		return true
	}

	trail := l.head
	for lead.next != nil {
		lead = lead.next
		trail = trail.next
	}

	if trail.next == l.tail {
		l.tail = trail
	}
	trail.next = trail.next.next
	l.size--
	return true
}
