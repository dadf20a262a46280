package collections

const minCapacity = 8

// Deque is a growable ring buffer with O(1) push and pop at both ends.
// The zero value is ready to use.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

func (d *Deque[T]) Len() int {
	return d.count
}

func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[(d.head+d.count)%len(d.buf)] = v
	d.count++
}

func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.count++
}

// PopFront removes and returns the oldest element. ok is false when empty.
func (d *Deque[T]) PopFront() (v T, ok bool) {
	if d.count == 0 {
		return v, false
	}
	var zero T
	v = d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.count--
	return v, true
}

// PopBack removes and returns the newest element. ok is false when empty.
func (d *Deque[T]) PopBack() (v T, ok bool) {
	if d.count == 0 {
		return v, false
	}
	var zero T
	idx := (d.head + d.count - 1) % len(d.buf)
	v = d.buf[idx]
	d.buf[idx] = zero
	d.count--
	return v, true
}

func (d *Deque[T]) Front() (v T, ok bool) {
	if d.count == 0 {
		return v, false
	}
	return d.buf[d.head], true
}

func (d *Deque[T]) Back() (v T, ok bool) {
	if d.count == 0 {
		return v, false
	}
	return d.buf[(d.head+d.count-1)%len(d.buf)], true
}

// Items returns a front-to-back copy of the contents.
func (d *Deque[T]) Items() []T {
	out := make([]T, 0, d.count)
	for i := 0; i < d.count; i++ {
		out = append(out, d.buf[(d.head+i)%len(d.buf)])
	}
	return out
}

func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	size := len(d.buf) * 2
	if size < minCapacity {
		size = minCapacity
	}
	next := make([]T, size)
	for i := 0; i < d.count; i++ {
		next[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = next
	d.head = 0
}
