// Package testing provides helpers for testing views and render trees.
//
// # Quick Start
//
// Create a tester for a small character display, pump frames and compare
// what was drawn:
//
//	func TestBadge(t *testing.T) {
//	    tester := rippletest.NewViewTester(t, 8, 1, Badge{Count: 3})
//	    if got := tester.Pump(); got != "  (3)" {
//	        t.Errorf("badge = %q", got)
//	    }
//	}
//
// # Animation Testing
//
// The tester installs a FakeClock, so animations only advance when told to:
//
//	tester.Set(Badge{Count: 4})
//	tester.Advance(150 * time.Millisecond)
//	tester.Pump()
//
// # Snapshot Testing
//
// Capture the drawn characters and the drawing operations and compare them
// against a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/badge.snapshot.json")
//
// Update snapshots with:
//
//	RIPPLE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import rippletest "github.com/go-drift/ripple/pkg/testing"
package testing
