package listbind

import "fmt"

// EditOp identifies the kind of a list edit.
type EditOp int

const (
	// OpInsert inserts Count items starting at Pos.
	OpInsert EditOp = iota
	// OpRemove removes Count items starting at Pos.
	OpRemove
	// OpChange rebinds Count items in place starting at Pos.
	OpChange
)

// String returns a human-readable representation of the edit kind.
func (op EditOp) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpChange:
		return "change"
	default:
		return fmt.Sprintf("EditOp(%d)", int(op))
	}
}

// Edit is one display update operation produced by a diff strategy.
type Edit struct {
	Op    EditOp
	Pos   int
	Count int
}

// Strategy computes the edits that transform old into new.
// Diff algorithms proper belong to the display platform; this package
// ships only trivial strategies and leaves real diffing pluggable.
type Strategy[T any] func(old, new []T, d Differ[T]) []Edit

// ReplaceAll returns the default strategy: drop the old list entirely and
// insert the new one. It never consults the differ.
func ReplaceAll[T any]() Strategy[T] {
	return func(old, new []T, _ Differ[T]) []Edit {
		var edits []Edit
		if len(old) > 0 {
			edits = append(edits, Edit{Op: OpRemove, Pos: 0, Count: len(old)})
		}
		if len(new) > 0 {
			edits = append(edits, Edit{Op: OpInsert, Pos: 0, Count: len(new)})
		}
		return edits
	}
}

// InPlace returns a strategy for equal-length updates: positions whose
// item or content differs become change runs. Length mismatches fall back
// to [ReplaceAll]. A nil differ treats every position as changed.
func InPlace[T any]() Strategy[T] {
	return func(old, new []T, d Differ[T]) []Edit {
		if len(old) != len(new) {
			return ReplaceAll[T]()(old, new, d)
		}
		var edits []Edit
		run := -1
		flush := func(end int) {
			if run >= 0 {
				edits = append(edits, Edit{Op: OpChange, Pos: run, Count: end - run})
				run = -1
			}
		}
		for i := range new {
			changed := true
			if d != nil {
				changed = !d.ItemsSame(old[i], new[i]) || !d.ContentsSame(old[i], new[i])
			}
			if changed {
				if run < 0 {
					run = i
				}
			} else {
				flush(i)
			}
		}
		flush(len(new))
		return edits
	}
}
