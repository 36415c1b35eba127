// Package bindtest provides fakes and recorders for testing code built
// on the observe, listbind, and viewbind packages.
//
// # Quick Start
//
// Record property notifications:
//
//	func TestMyScreen(t *testing.T) {
//	    rec := bindtest.NewRecordingCallback()
//	    screen.Notifier().AddCallback(rec.Callback())
//
//	    screen.Refresh()
//
//	    if rec.Count() != 1 {
//	        t.Errorf("notifications = %d, want 1", rec.Count())
//	    }
//	}
//
// Drive a binder against a recording display:
//
//	display := bindtest.NewRecordingDisplay[Row]()
//	binder := listbind.NewBinder[Row](display)
//	binder.Submit(rows)
//	// display.Applications() holds every ApplyList call.
//
// Inflate fake bindings:
//
//	factory := bindtest.NewBindingFactory()
//	holder.Attach(factory.Func(), "dialog_settings")
//	// factory.Created()[0].UnbindCount() tracks releases.
//
// # Capturing Error Reports
//
// CaptureErrors swaps the global error handler for a recording one and
// restores it via t.Cleanup:
//
//	capture := bindtest.CaptureErrors(t)
//	holder.Attach(failingFactory, "dialog_settings")
//	if len(capture.InflateErrors()) != 1 {
//	    t.Error("expected the failure to be reported")
//	}
package bindtest
