// Package sampletests is a small runnable suite demonstrating the scope
// engine against a real subject (a mock HTTP service). It is what the
// scopedemo command executes.
package sampletests

import (
	"github.com/stretchr/testify/require"

	"github.com/veralab/testscope/scope"
)

// RunTestSuite executes the demonstration suite with the given filter and
// test logger and returns the accumulated results.
func RunTestSuite(filter *scope.RegexList, testLogger scope.TestLogger, opts ...scope.Option) scope.Results {
	allOpts := append([]scope.Option{
		scope.WithFilter(filter),
		scope.WithTestLogger(testLogger),
	}, opts...)

	return scope.Run(func(c *scope.Context) {
		runSet(c, "properties", nil, DoPropertyTests)
		runSet(c, "http service", nil, DoHTTPServiceTests)
	}, allOpts...)
}

// runSet and runCase fail the enclosing test on scope usage errors, so suite
// code doesn't have to thread them around.
func runSet(c *scope.Context, name string, props []scope.Property, action func(*scope.Context)) {
	require.NoError(c, c.RunSet(name, props, action))
}

func runCase(c *scope.Context, name string, props []scope.Property, action func(*scope.Context)) {
	require.NoError(c, c.RunCase(name, props, action))
}
