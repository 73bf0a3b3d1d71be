package scope

import "fmt"

// eventRecorder is a TestLogger that remembers every event it receives, in
// order, for assertions on logging behavior.
type eventRecorder struct {
	started  []string
	finished []string
	failed   []string
	skipped  []string
	errors   []error
	debugLen map[string]int
}

func newEventRecorder() *eventRecorder {
	return &eventRecorder{debugLen: make(map[string]int)}
}

func (r *eventRecorder) TestStarted(id TestID) {
	r.started = append(r.started, id.String())
}

func (r *eventRecorder) TestError(id TestID, err error) {
	r.errors = append(r.errors, err)
}

func (r *eventRecorder) TestFinished(id TestID, failed bool, debugOutput DebugLog) {
	r.finished = append(r.finished, id.String())
	if failed {
		r.failed = append(r.failed, id.String())
	}
	r.debugLen[id.String()] = len(debugOutput)
}

func (r *eventRecorder) TestSkipped(id TestID, reason string) {
	r.skipped = append(r.skipped, fmt.Sprintf("%s (%s)", id, reason))
}
