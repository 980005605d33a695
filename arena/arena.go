// Package arena provides a growable, index-stable backing store.
//
// An Arena holds a fixed number of elements until it is explicitly grown.
// Growing appends zero-valued elements at the end; elements already stored
// keep their indices, so integer offsets handed out earlier remain valid.
package arena

// Arena is a resizable sequence of fixed-width elements.
type Arena[T any] struct {
	data []T
}

// New allocates an arena holding initial zero-valued elements.
func New[T any](initial int) *Arena[T] {
	if initial < 0 {
		panic("arena: negative capacity")
	}
	return &Arena[T]{data: make([]T, initial)}
}

// Grow extends the arena by increment elements.
func (a *Arena[T]) Grow(increment int) {
	if increment <= 0 {
		return
	}
	grown := make([]T, len(a.data)+increment)
	copy(grown, a.data)
	a.data = grown
}

// Len returns the current capacity in elements.
func (a *Arena[T]) Len() int { return len(a.data) }

// At returns the element at index i. Out-of-range access panics.
func (a *Arena[T]) At(i int) T { return a.data[i] }

// Set stores v at index i. Out-of-range access panics.
func (a *Arena[T]) Set(i int, v T) { a.data[i] = v }

// Slice returns a view of [lo, hi). The view aliases arena storage until
// the next Grow.
func (a *Arena[T]) Slice(lo, hi int) []T { return a.data[lo:hi:hi] }

// Copy writes src starting at off. The destination range must fit.
func (a *Arena[T]) Copy(off int, src []T) {
	if off+len(src) > len(a.data) {
		panic("arena: copy past end")
	}
	copy(a.data[off:], src)
}

// Fill sets every element to v.
func (a *Arena[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}
