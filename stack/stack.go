// Package stack provides a non-thread-safe singly-linked stack with
// node-level transfer primitives.
package stack

// Stack is a non-thread-safe stack.
//
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	head *Node[T]
	size int
}

// Node is one cell of a stack chain: one element plus the link to the next
// cell. A node is reachable from at most one chain at any time; it enters a
// chain through Push or PushNode and leaves only through Pop, PopNode or
// Reset.
type Node[T any] struct {
	elem T
	next *Node[T]
}

// New creates a stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Size returns the stack size.
func (s *Stack[T]) Size() int {
	return s.size
}

// Push pushes an element onto the stack.
func (s *Stack[T]) Push(elem T) {
	s.PushNode(&Node[T]{elem: elem})
}

// Pop pops the top element from the stack.
// It returns the zero value and false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	n, ok := s.PopNode()
	if !ok {
		var zero T
		return zero, false
	}
	return n.elem, true
}

// Peek returns a copy of the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.elem, true
}

// Top returns a pointer to the top element, or nil if the stack is empty.
// The pointer stays valid until the top is removed; writes through it are
// seen by later Peek and Pop calls.
func (s *Stack[T]) Top() *T {
	if s.head == nil {
		return nil
	}
	return &s.head.elem
}

// PushNode links n in as the new head. n must have been obtained from a
// PopNode call, so its next link is nil and no other chain references it.
func (s *Stack[T]) PushNode(n *Node[T]) {
	n.next = s.head
	s.head = n
	s.size++
}

// PopNode detaches the head node and returns it. The detached node keeps no
// link back into the chain, and the chain keeps none to it.
func (s *Stack[T]) PopNode() (*Node[T], bool) {
	if s.head == nil {
		return nil, false
	}
	n := s.head
	s.head = n.next
	n.next = nil
	s.size--
	return n, true
}

// Do calls f on each element from the top of the stack down. f must not
// mutate the stack.
func (s *Stack[T]) Do(f func(elem T)) {
	for n := s.head; n != nil; n = n.next {
		f(n.elem)
	}
}

// Reset empties the stack. It severs the chain one link at a time, so
// releasing a node never cascades into the rest of the chain regardless of
// the chain length.
func (s *Stack[T]) Reset() {
	n := s.head
	s.head = nil
	s.size = 0
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
}
