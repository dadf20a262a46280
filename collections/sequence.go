package collections

// Queue is a FIFO view over a Deque.
type Queue[T any] struct {
	d Deque[T]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Enqueue(v T) {
	q.d.PushBack(v)
}

// Dequeue returns the oldest item, or false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.d.PopFront()
}

func (q *Queue[T]) Peek() (T, bool) {
	return q.d.Front()
}

func (q *Queue[T]) Len() int {
	return q.d.Len()
}

func (q *Queue[T]) IsEmpty() bool {
	return q.d.Len() == 0
}

// Items returns pending items oldest first. The queue is not modified.
func (q *Queue[T]) Items() []T {
	return q.d.Items()
}

// Stack is a LIFO view over a Deque.
type Stack[T any] struct {
	d Deque[T]
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(v T) {
	s.d.PushBack(v)
}

// Pop returns the most recently pushed item, or false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	return s.d.PopBack()
}

func (s *Stack[T]) Peek() (T, bool) {
	return s.d.Back()
}

func (s *Stack[T]) Len() int {
	return s.d.Len()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.d.Len() == 0
}

// Log is an append-only sequence traversed in insertion order.
type Log[T any] struct {
	items []T
}

func NewLog[T any]() *Log[T] {
	return &Log[T]{}
}

func (l *Log[T]) Append(v T) {
	l.items = append(l.items, v)
}

func (l *Log[T]) Len() int {
	return len(l.items)
}

// All returns a copy of every entry, oldest first.
func (l *Log[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
