package testutil

import (
	"fmt"
	"sync"
)

// CallLog records named calls in the order they happen.
type CallLog struct {
	mu    sync.Mutex
	calls []string
}

// Add appends a formatted entry.
func (l *CallLog) Add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

// Calls returns a copy of the recorded entries.
func (l *CallLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// Count returns how many entries equal call.
func (l *CallLog) Count(call string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.calls {
		if c == call {
			n++
		}
	}
	return n
}
