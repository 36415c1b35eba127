// Package listbind binds item lists to a display surface and derives an
// observable "submitted" state from the submissions it accepts.
package listbind

// Differ reports identity and content equality between two list items.
//
// ItemsSame decides whether two values represent the same entity (for
// example, equal ids); ContentsSame decides whether their displayed
// content matches. Diff strategies consult both.
type Differ[T any] interface {
	ItemsSame(a, b T) bool
	ContentsSame(a, b T) bool
}

// DifferFuncs adapts plain functions into a [Differ].
// A nil Contents falls back to Items.
type DifferFuncs[T any] struct {
	Items    func(a, b T) bool
	Contents func(a, b T) bool
}

func (d DifferFuncs[T]) ItemsSame(a, b T) bool {
	if d.Items == nil {
		return false
	}
	return d.Items(a, b)
}

func (d DifferFuncs[T]) ContentsSame(a, b T) bool {
	if d.Contents == nil {
		return d.ItemsSame(a, b)
	}
	return d.Contents(a, b)
}

// equalDiffer compares items with ==.
type equalDiffer[T comparable] struct{}

func (equalDiffer[T]) ItemsSame(a, b T) bool    { return a == b }
func (equalDiffer[T]) ContentsSame(a, b T) bool { return a == b }

// EqualDiffer returns a Differ that compares items with ==.
func EqualDiffer[T comparable]() Differ[T] {
	return equalDiffer[T]{}
}
