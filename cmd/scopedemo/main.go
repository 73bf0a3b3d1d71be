// Command scopedemo runs the sampletests suite, with regex filtering and
// colorized console output.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/veralab/testscope/sampletests"
	"github.com/veralab/testscope/scope"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	if params.filters.IsDefined() {
		fmt.Printf("Running only tests matching %s\n\n", params.filters.String())
	}

	engineLogger := zap.NewNop()
	if params.debugAll {
		var err error
		engineLogger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create logger: %s\n", err)
			os.Exit(1)
		}
	}

	testLogger := &scope.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	fmt.Println("Running test suite")

	results := sampletests.RunTestSuite(&params.filters, testLogger, scope.WithLogger(engineLogger))

	fmt.Println()
	scope.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Printf("\nTo re-run just the failed tests:\n  %s\n", rerunCommand(os.Args[0], results.Failures))
		os.Exit(1)
	}
}
