package scope

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ConsoleTestLogger is a TestLogger that prints progress to Output (standard
// output by default), colorizing failures and skips.
type ConsoleTestLogger struct {
	Output               io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) dest() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Fprintf(c.dest(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.dest(), "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, failed bool, debugOutput DebugLog) {
	if failed {
		fmt.Fprintf(c.dest(), "  %s\n", color.RedString("FAILED: %s", id))
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.dest(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.dest(), "  %s\n", color.YellowString("SKIPPED: %s", id))
	} else {
		fmt.Fprintf(c.dest(), "  %s\n", color.YellowString("SKIPPED: %s (%s)", id, reason))
	}
}
