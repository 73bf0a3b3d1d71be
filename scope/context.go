package scope

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"
)

// environment is the state shared by every Context in one run: the filter,
// the sinks, the accumulated results, and the scope engine itself (naming
// stack, property store, and the value cache of the currently executing test
// case).
type environment struct {
	filter     *RegexList
	testLogger TestLogger
	logger     *zap.Logger
	results    Results

	names []string
	data  map[string]PropertyValue

	// values is non-nil if and only if a test case body is executing. This
	// distinguishes "no test case active" from "test case active with no
	// resolved values yet."
	values map[string]interface{}
}

// Context represents one test set or test case within a run. Bodies receive
// a fresh Context for their own scope; all Contexts of a run share the same
// underlying property and filter state.
//
// Context implements the TestingT interface expected by the assert and
// require packages, so standard testify assertions can be used inside test
// bodies.
type Context struct {
	env        *environment
	id         TestID
	isCase     bool
	debugLog   debugRecorder
	failed     bool
	skipped    bool
	skipReason string
	errors     []error
}

// Run creates the context for a test run, executes the root action, and
// returns the accumulated results. All nesting happens inside action via
// RunSet and RunCase.
func Run(action func(*Context), opts ...Option) Results {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	env := &environment{
		filter:     cfg.filter,
		testLogger: cfg.testLogger,
		logger:     cfg.logger,
		data:       make(map[string]PropertyValue),
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil && !c.skipped {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		// Groups only show up in the results when they failed directly;
		// every executed case is recorded.
		if !c.isCase && !c.failed {
			return
		}
		result := TestResult{TestID: c.id, Errors: c.errors, Skipped: c.skipped}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// ID returns the identifier of this test's own scope.
func (c *Context) ID() TestID {
	return c.id
}

// FullName returns the '/'-joined path of currently entered scope names. It
// reflects live nesting depth, including zero, and can be called at any time.
func (c *Context) FullName() string {
	return c.env.fullName()
}

// ConfigurePatterns replaces the active filter pattern list. The replacement
// is all-or-nothing: if any pattern fails to compile, an error wrapping
// ErrBadPattern is returned and the previous list stays in effect. The filter
// is deliberately not scoped to the nesting stack; a replacement applies to
// every subsequent test case in the run.
func (c *Context) ConfigurePatterns(patterns ...string) error {
	return c.env.filter.Configure(patterns)
}

// RunSet enters a named test set: the name is pushed onto the naming stack
// and the given properties become visible to everything nested inside the
// body. Declarations are removed and the name popped when the body exits,
// however it exits.
//
// RunSet returns an error wrapping ErrUsage if a test case is currently
// executing, or if any declared property name is already visible; the body
// does not run in either case. Failures inside the body are recorded in the
// run's Results, not returned.
func (c *Context) RunSet(name string, props []Property, action func(*Context)) error {
	if c.env.values != nil {
		return newSetInsideCaseError(name, c.env.fullName())
	}
	return c.runScope(name, props, action, false)
}

// RunCase enters a named test case. It behaves like RunSet, and additionally:
// the filter decides on the full name whether the case runs at all; an
// included case gets a fresh value cache, a TestStarted event, and, after the
// body completes, finalization of every private value the body actually read.
//
// A skipped case still enters and exits its scope cleanly, so its property
// declarations never leak.
func (c *Context) RunCase(name string, props []Property, action func(*Context)) error {
	if c.env.values != nil {
		return newCaseInsideCaseError(name, c.env.fullName())
	}
	return c.runScope(name, props, action, true)
}

func (c *Context) runScope(name string, props []Property, action func(*Context), isCase bool) error {
	env := c.env

	env.names = append(env.names, name)
	defer func() {
		env.names = env.names[:len(env.names)-1]
	}()

	added, err := env.declare(props)
	if err != nil {
		return err
	}
	defer env.undeclare(added)

	fullName := env.fullName()
	id := TestID{Path: append([]string(nil), env.names...)}
	env.logger.Debug("entering scope",
		zap.String("name", fullName),
		zap.Bool("testCase", isCase))
	defer env.logger.Debug("leaving scope", zap.String("name", fullName))

	if isCase {
		if !env.filter.decide(fullName) {
			env.logger.Debug("test case excluded by filter", zap.String("name", fullName))
			env.testLogger.TestSkipped(id, "excluded by filter patterns")
			env.results.Tests = append(env.results.Tests, TestResult{TestID: id, Skipped: true})
			return nil
		}
		env.values = make(map[string]interface{})
		defer func() {
			defer func() { env.values = nil }()
			env.finalizeValues()
		}()
		env.testLogger.TestStarted(id)
	}

	c1 := &Context{env: env, id: id, isCase: isCase}
	c1.run(action)
	if isCase {
		if c1.skipped {
			env.testLogger.TestSkipped(id, c1.skipReason)
		} else {
			env.testLogger.TestFinished(id, c1.failed, c1.debugLog.Log())
		}
	}
	return nil
}

// Get resolves the named property in the currently executing test case.
// The first read materializes the value (a SharedValue's wrapped value, or
// the result of a PrivateValue's factory); subsequent reads within the same
// case return the cached value without re-invoking anything.
//
// Get fails with an error wrapping ErrOutOfContext when no test case is
// executing, and with one wrapping ErrPropertyNotFound when the name is not
// declared anywhere in the active nesting stack.
func (c *Context) Get(name string) (interface{}, error) {
	env := c.env
	if env.values == nil {
		return nil, newOutOfContextError(name)
	}
	if v, ok := env.values[name]; ok {
		return v, nil
	}
	decl, ok := env.data[name]
	if !ok {
		return nil, newPropertyNotFoundError(name, env.fullName())
	}
	var v interface{}
	switch d := decl.(type) {
	case SharedValue:
		v = d.Value
	case PrivateValue:
		env.logger.Debug("materializing private value", zap.String("property", name))
		v = d.Make()
	}
	env.values[name] = v
	return v, nil
}

// MustGet is like Get but fails the current test on a resolution error.
func (c *Context) MustGet(name string) interface{} {
	v, err := c.Get(name)
	if err != nil {
		c.Errorf("%s", err)
		c.FailNow()
	}
	return v
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (c *Context) FailNow() {
	panic(c)
}

// Skip marks the test as skipped and exits it immediately.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug logs debug output for the test. The output is handed to the test
// logger when the test finishes.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLog.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLog
}

func (env *environment) fullName() string {
	return strings.Join(env.names, "/")
}

func (env *environment) declare(props []Property) ([]string, error) {
	added := make([]string, 0, len(props))
	for _, p := range props {
		if _, exists := env.data[p.Name]; exists {
			env.undeclare(added)
			return nil, newDuplicatePropertyError(p.Name, env.fullName())
		}
		env.data[p.Name] = p.Value
		added = append(added, p.Name)
	}
	return added, nil
}

func (env *environment) undeclare(added []string) {
	for _, name := range added {
		delete(env.data, name)
	}
}

// finalizeValues runs the finalizer of every private value that was
// materialized during the ending test case. Each finalizer runs exactly once;
// order across properties is unspecified. If a finalizer panics, the
// remaining finalizers still run and the first panic is then re-raised.
func (env *environment) finalizeValues() {
	var firstPanic interface{}
	sawPanic := false
	for name, value := range env.values {
		decl, ok := env.data[name].(PrivateValue)
		if !ok || decl.Finalize == nil {
			continue
		}
		env.logger.Debug("finalizing private value", zap.String("property", name))
		func() {
			defer func() {
				if r := recover(); r != nil && !sawPanic {
					sawPanic = true
					firstPanic = r
				}
			}()
			decl.Finalize(value)
		}()
	}
	if sawPanic {
		panic(firstPanic)
	}
}
