package listbind

// Display is the surface that renders a bound list.
//
// ApplyList receives the full new item list and the edits that produced it
// from the previously applied list. items is authoritative; a display that
// cannot replay edits may always rebuild from items. Implementations must
// not mutate the slice.
type Display[T any] interface {
	ApplyList(items []T, edits []Edit)
}

// DisplayFunc adapts a function into a [Display].
type DisplayFunc[T any] func(items []T, edits []Edit)

func (f DisplayFunc[T]) ApplyList(items []T, edits []Edit) {
	if f != nil {
		f(items, edits)
	}
}
