package scope

// TestLogger receives progress events during a run. TestStarted is emitted
// with the full test name immediately before a test case body executes;
// excluded cases get TestSkipped instead and never TestStarted.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput DebugLog)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                  {}
func (n nullTestLogger) TestError(TestID, error)             {}
func (n nullTestLogger) TestFinished(TestID, bool, DebugLog) {}
func (n nullTestLogger) TestSkipped(TestID, string)          {}

func NullTestLogger() TestLogger { return nullTestLogger{} }
