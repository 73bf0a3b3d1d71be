package scope

import "go.uber.org/zap"

// Option is a functional option for configuring a run.
type Option func(*runConfig)

type runConfig struct {
	filter     *RegexList
	testLogger TestLogger
	logger     *zap.Logger
}

func defaultRunConfig() *runConfig {
	return &runConfig{
		filter:     &RegexList{},
		testLogger: nullTestLogger{},
		logger:     zap.NewNop(),
	}
}

// WithFilter sets the pattern list deciding which test cases execute. The
// list may be reconfigured during the run via ConfigurePatterns; it is shared
// with the caller, not copied.
func WithFilter(filter *RegexList) Option {
	return func(c *runConfig) {
		if filter != nil {
			c.filter = filter
		}
	}
}

// WithTestLogger sets the sink for test progress events.
func WithTestLogger(testLogger TestLogger) Option {
	return func(c *runConfig) {
		if testLogger != nil {
			c.testLogger = testLogger
		}
	}
}

// WithLogger sets a zap logger for engine diagnostics (scope transitions,
// property resolution, finalization). Default: zap.NewNop()
func WithLogger(logger *zap.Logger) Option {
	return func(c *runConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
