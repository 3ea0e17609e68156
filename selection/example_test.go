package selection_test

import (
	"fmt"
	"strings"

	"github.com/netknit/netknit/core"
	"github.com/netknit/netknit/lexicon"
	"github.com/netknit/netknit/selection"
)

// ExampleExhaustive_Select walks the canonical two-entry dictionary: both A
// and B expose a bare c1 connector; starting from A with nothing open, A is
// skipped as a self-connection, B is consumed, and the third call reports
// exhaustion.
func ExampleExhaustive_Select() {
	c1 := core.NewConnector("c1", core.PolarityNone)
	a := core.NewSection("A", c1)
	b := core.NewSection("B", c1)

	lx := lexicon.New()
	lx.Add(a, b)

	pol, err := selection.NewExhaustive(core.NewSpace(), lx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	frame := core.NewFrame()
	for {
		s, ok := pol.Select(frame, a, 0, c1)
		if !ok {
			fmt.Println("no more candidates")
			return
		}
		// Instances are named "<entry>@<uuid>"; report the entry.
		fmt.Println("picked", s.Point[:strings.IndexByte(s.Point, '@')])
	}
	// Output:
	// picked B
	// no more candidates
}

// ExampleExhaustive_PushOdometer shows branch-scoped lexicon cursors: a
// nested odometer level enumerates the dictionary from the top, and popping
// it resumes the outer enumeration exactly where it stopped.
func ExampleExhaustive_PushOdometer() {
	lx := lexicon.New()
	lx.Add(
		core.NewSection("A", core.Minus("c1")),
		core.NewSection("B", core.Minus("c1")),
	)
	pol, err := selection.NewExhaustive(core.NewSpace(), lx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	from := core.NewSection("X", core.Plus("c1"))
	frame := core.NewFrame()
	pick := func(label string) {
		if s, ok := pol.Select(frame, from, 0, core.Minus("c1")); ok {
			fmt.Println(label, s.Point[:strings.IndexByte(s.Point, '@')])
		} else {
			fmt.Println(label, "none")
		}
	}

	pick("outer:") // A

	pol.PushOdometer(core.NewOdometer())
	pick("inner:") // fresh scope restarts at A
	pol.PopOdometer(core.NewOdometer())

	pick("outer:") // resumes at B
	pick("outer:") // exhausted
	// Output:
	// outer: A
	// inner: A
	// outer: B
	// outer: none
}
