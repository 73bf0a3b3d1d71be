package scope

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the interface for the per-test debug output sink.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

// DebugMessage is one timestamped line of captured debug output.
type DebugMessage struct {
	Time time.Time
	Text string
}

// DebugLog is the debug output captured during one test, in order of writing.
type DebugLog []DebugMessage

// Dump writes each captured message to dest, prefixing every line.
func (l DebugLog) Dump(dest io.Writer, prefix string) {
	for _, m := range l {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Text,
		)
	}
}

// debugRecorder accumulates debug output for one test. The lock makes writes
// safe if a test body hands the logger to a goroutine of its own.
type debugRecorder struct {
	messages []DebugMessage
	lock     sync.Mutex
}

func (r *debugRecorder) Printf(message string, args ...interface{}) {
	r.lock.Lock()
	r.messages = append(r.messages, DebugMessage{Time: time.Now(), Text: fmt.Sprintf(message, args...)})
	r.lock.Unlock()
}

func (r *debugRecorder) Log() DebugLog {
	r.lock.Lock()
	ret := append(DebugLog(nil), r.messages...)
	r.lock.Unlock()
	return ret
}
