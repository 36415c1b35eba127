package listbind

import "testing"

func TestEditOpString(t *testing.T) {
	tests := []struct {
		op   EditOp
		want string
	}{
		{OpInsert, "insert"},
		{OpRemove, "remove"},
		{OpChange, "change"},
		{EditOp(99), "EditOp(99)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("EditOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestReplaceAll(t *testing.T) {
	s := ReplaceAll[string]()

	edits := s([]string{"a", "b"}, []string{"c"}, nil)
	want := []Edit{
		{Op: OpRemove, Pos: 0, Count: 2},
		{Op: OpInsert, Pos: 0, Count: 1},
	}
	if len(edits) != len(want) {
		t.Fatalf("edits = %v, want %v", edits, want)
	}
	for i := range want {
		if edits[i] != want[i] {
			t.Errorf("edit %d = %v, want %v", i, edits[i], want[i])
		}
	}
}

func TestReplaceAllFromEmpty(t *testing.T) {
	s := ReplaceAll[int]()

	edits := s(nil, []int{1, 2, 3}, nil)
	if len(edits) != 1 || edits[0] != (Edit{Op: OpInsert, Pos: 0, Count: 3}) {
		t.Errorf("edits = %v, want [insert 3 at 0]", edits)
	}
}

func TestReplaceAllToEmpty(t *testing.T) {
	s := ReplaceAll[int]()

	edits := s([]int{1, 2}, nil, nil)
	if len(edits) != 1 || edits[0] != (Edit{Op: OpRemove, Pos: 0, Count: 2}) {
		t.Errorf("edits = %v, want [remove 2 at 0]", edits)
	}
}

func TestReplaceAllBothEmpty(t *testing.T) {
	s := ReplaceAll[int]()

	if edits := s(nil, nil, nil); len(edits) != 0 {
		t.Errorf("edits = %v, want none", edits)
	}
}

func TestInPlaceEqualListsProduceNoEdits(t *testing.T) {
	s := InPlace[string]()

	edits := s([]string{"a", "b"}, []string{"a", "b"}, EqualDiffer[string]())
	if len(edits) != 0 {
		t.Errorf("edits = %v, want none", edits)
	}
}

func TestInPlaceCoalescesRuns(t *testing.T) {
	s := InPlace[string]()

	old := []string{"a", "b", "c", "d", "e"}
	new := []string{"a", "x", "y", "d", "z"}
	edits := s(old, new, EqualDiffer[string]())

	want := []Edit{
		{Op: OpChange, Pos: 1, Count: 2},
		{Op: OpChange, Pos: 4, Count: 1},
	}
	if len(edits) != len(want) {
		t.Fatalf("edits = %v, want %v", edits, want)
	}
	for i := range want {
		if edits[i] != want[i] {
			t.Errorf("edit %d = %v, want %v", i, edits[i], want[i])
		}
	}
}

func TestInPlaceLengthMismatchFallsBack(t *testing.T) {
	s := InPlace[string]()

	edits := s([]string{"a"}, []string{"a", "b"}, EqualDiffer[string]())
	want := []Edit{
		{Op: OpRemove, Pos: 0, Count: 1},
		{Op: OpInsert, Pos: 0, Count: 2},
	}
	if len(edits) != len(want) {
		t.Fatalf("edits = %v, want %v", edits, want)
	}
	for i := range want {
		if edits[i] != want[i] {
			t.Errorf("edit %d = %v, want %v", i, edits[i], want[i])
		}
	}
}

func TestInPlaceNilDifferMarksAllChanged(t *testing.T) {
	s := InPlace[string]()

	edits := s([]string{"a", "b"}, []string{"a", "b"}, nil)
	if len(edits) != 1 || edits[0] != (Edit{Op: OpChange, Pos: 0, Count: 2}) {
		t.Errorf("edits = %v, want [change 2 at 0]", edits)
	}
}

func TestInPlaceUsesContentComparison(t *testing.T) {
	type row struct {
		id      int
		content string
	}
	d := DifferFuncs[row]{
		Items:    func(a, b row) bool { return a.id == b.id },
		Contents: func(a, b row) bool { return a.content == b.content },
	}
	s := InPlace[row]()

	old := []row{{1, "x"}, {2, "y"}}
	new := []row{{1, "x"}, {2, "changed"}}
	edits := s(old, new, d)

	if len(edits) != 1 || edits[0] != (Edit{Op: OpChange, Pos: 1, Count: 1}) {
		t.Errorf("edits = %v, want [change 1 at 1]", edits)
	}
}

func TestDifferFuncsContentsFallsBackToItems(t *testing.T) {
	d := DifferFuncs[int]{
		Items: func(a, b int) bool { return a == b },
	}

	if !d.ContentsSame(3, 3) {
		t.Error("ContentsSame should fall back to Items")
	}
	if d.ContentsSame(3, 4) {
		t.Error("ContentsSame(3, 4) = true")
	}
}

func TestDifferFuncsNilItems(t *testing.T) {
	var d DifferFuncs[int]

	if d.ItemsSame(1, 1) {
		t.Error("nil Items func should report not-same")
	}
}

func TestEqualDiffer(t *testing.T) {
	d := EqualDiffer[string]()

	if !d.ItemsSame("a", "a") || !d.ContentsSame("a", "a") {
		t.Error("equal values reported different")
	}
	if d.ItemsSame("a", "b") || d.ContentsSame("a", "b") {
		t.Error("different values reported equal")
	}
}
