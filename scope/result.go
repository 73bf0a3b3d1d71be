package scope

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// TestID identifies a test set or case by its path of nested scope names.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Executed returns the number of test cases that actually ran.
func (r Results) Executed() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Skipped {
			n++
		}
	}
	return n
}

// SkippedCount returns the number of test cases excluded by the filter or
// skipped from within their bodies.
func (r Results) SkippedCount() int {
	return len(r.Tests) - r.Executed()
}

// PrintResults writes a human-readable summary of a test run to dest.
func PrintResults(dest io.Writer, results Results) {
	executed, skipped := results.Executed(), results.SkippedCount()
	if results.OK() {
		fmt.Fprintln(dest, color.GreenString("All tests passed (%d executed, %d skipped)", executed, skipped))
		return
	}
	fmt.Fprintln(dest, color.RedString("%d of %d tests failed:", len(results.Failures), executed))
	for _, f := range results.Failures {
		fmt.Fprintf(dest, "  %s\n", color.RedString("%s", f.TestID))
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(dest, "    %s\n", line)
			}
		}
	}
}
