package bindtest_test

import (
	"errors"
	"testing"

	"github.com/chinese-developer/Hodgepodge/pkg/bindtest"
	"github.com/chinese-developer/Hodgepodge/pkg/listbind"
	"github.com/chinese-developer/Hodgepodge/pkg/observe"
)

func TestRecordingCallbackCountOf(t *testing.T) {
	title := observe.RegisterProperty("bindtest.test.title")
	artist := observe.RegisterProperty("bindtest.test.artist")

	n := observe.NewPropertyNotifier(nil)
	rec := bindtest.NewRecordingCallback()
	n.AddCallback(rec.Callback())

	n.NotifyChanged(title)
	n.NotifyChanged(artist)
	n.NotifyAll()

	if got := rec.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	// PropertyAll deliveries count toward every key.
	if got := rec.CountOf(title); got != 2 {
		t.Errorf("CountOf(title) = %d, want 2", got)
	}

	rec.Reset()
	if rec.Count() != 0 {
		t.Error("Reset() left events behind")
	}
}

func TestRecordingDisplayCopiesItems(t *testing.T) {
	d := bindtest.NewRecordingDisplay[string]()

	items := []string{"a", "b"}
	d.ApplyList(items, []listbind.Edit{{Op: listbind.OpInsert, Count: 2}})
	items[0] = "mutated"

	if got := d.LastItems()[0]; got != "a" {
		t.Errorf("recorded items aliased the caller slice: %q", got)
	}
	if d.Count() != 1 {
		t.Errorf("Count() = %d, want 1", d.Count())
	}
}

func TestBindingFactoryModes(t *testing.T) {
	f := bindtest.NewBindingFactory()
	inflate := f.Func()

	b, err := inflate("dialog_settings")
	if err != nil || b == nil {
		t.Fatalf("inflate failed: %v", err)
	}
	if b.Content() != "dialog_settings" {
		t.Errorf("Content() = %q, want %q", b.Content(), "dialog_settings")
	}

	f.FailWith(errors.New("boom"))
	if _, err := inflate("dialog_settings"); err == nil {
		t.Error("FailWith mode should make inflation fail")
	}

	f.FailWith(nil)
	if _, err := inflate("dialog_settings"); err != nil {
		t.Errorf("FailWith(nil) should restore success, got %v", err)
	}

	if got := len(f.Created()); got != 2 {
		t.Errorf("Created() = %d bindings, want 2", got)
	}
	if got := len(f.Contents()); got != 3 {
		t.Errorf("Contents() = %d requests, want 3 (failures included)", got)
	}
}

func TestFakeBindingUnbindCount(t *testing.T) {
	b := &bindtest.FakeBinding{}
	b.Unbind()
	b.Unbind()
	if got := b.UnbindCount(); got != 2 {
		t.Errorf("UnbindCount() = %d, want 2", got)
	}
}
