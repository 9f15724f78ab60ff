//
//
// Tencent is pleased to support the open source community by making tRPC available.
//
// Copyright (C) 2023 Tencent.
// All rights reserved.
//
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the  Apache 2.0 License,
// A copy of the Apache 2.0 License is included in this file.
//
//

// Package zipper implements a sequence with a movable cursor, built from two
// stacks that meet at the cursor. Moving the cursor one step transfers a
// whole storage node from one stack to the other, so no element is copied
// and no memory is allocated.
package zipper

import "trpc.group/trpc-go/zipperlist/stack"

// List is a two-stack zipper. The logical sequence is the left stack
// reversed followed by the right stack; the cursor sits between their tops,
// so the tops are the elements adjacent to the cursor.
//
// The zero value is an empty list with the cursor at its only position.
// List is not safe for concurrent use.
type List[T any] struct {
	left  stack.Stack[T]
	right stack.Stack[T]
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// PushLeft inserts an element immediately left of the cursor.
func (l *List[T]) PushLeft(elem T) {
	l.left.Push(elem)
}

// PushRight inserts an element immediately right of the cursor.
func (l *List[T]) PushRight(elem T) {
	l.right.Push(elem)
}

// PopLeft removes the element immediately left of the cursor and returns it.
// It returns the zero value and false if the cursor is at the leftmost
// position.
func (l *List[T]) PopLeft() (T, bool) {
	return l.left.Pop()
}

// PopRight removes the element immediately right of the cursor and returns
// it. It returns the zero value and false if the cursor is at the rightmost
// position.
func (l *List[T]) PopRight() (T, bool) {
	return l.right.Pop()
}

// PeekLeft returns a copy of the element immediately left of the cursor.
func (l *List[T]) PeekLeft() (T, bool) {
	return l.left.Peek()
}

// PeekRight returns a copy of the element immediately right of the cursor.
func (l *List[T]) PeekRight() (T, bool) {
	return l.right.Peek()
}

// Left returns a pointer to the element immediately left of the cursor for
// in-place mutation, or nil if the cursor is at the leftmost position.
func (l *List[T]) Left() *T {
	return l.left.Top()
}

// Right returns a pointer to the element immediately right of the cursor for
// in-place mutation, or nil if the cursor is at the rightmost position.
func (l *List[T]) Right() *T {
	return l.right.Top()
}

// GoLeft moves the cursor one position toward the left end: the node holding
// the element left of the cursor is transferred to the right stack, where its
// element becomes the new PeekRight. It reports whether the cursor moved; at
// the leftmost position nothing changes.
func (l *List[T]) GoLeft() bool {
	n, ok := l.left.PopNode()
	if !ok {
		return false
	}
	l.right.PushNode(n)
	return true
}

// GoRight moves the cursor one position toward the right end, transferring a
// node from the right stack to the left one. It reports whether the cursor
// moved; at the rightmost position nothing changes.
func (l *List[T]) GoRight() bool {
	n, ok := l.right.PopNode()
	if !ok {
		return false
	}
	l.left.PushNode(n)
	return true
}

// Len returns the number of elements in the sequence.
func (l *List[T]) Len() int {
	return l.left.Size() + l.right.Size()
}

// Cursor returns the number of elements left of the cursor, in [0, Len()].
// A sequence of n elements has n+1 cursor positions.
func (l *List[T]) Cursor() int {
	return l.left.Size()
}

// Do calls f on each element in sequence order, left end to right end,
// without moving the cursor. f must not mutate the list.
func (l *List[T]) Do(f func(elem T)) {
	elems := make([]T, 0, l.left.Size())
	l.left.Do(func(elem T) {
		elems = append(elems, elem)
	})
	for i := len(elems) - 1; i >= 0; i-- {
		f(elems[i])
	}
	l.right.Do(f)
}

// Reset empties the list, tearing down both stacks.
func (l *List[T]) Reset() {
	l.left.Reset()
	l.right.Reset()
}
