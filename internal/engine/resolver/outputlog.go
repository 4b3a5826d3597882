package resolver

import "sync"

// OutputLog is an ordered, race-free record of evaluator output lines.
// Producer goroutines append concurrently with the control flow awaiting the
// process, so every access goes through the mutex.
type OutputLog struct {
	mu    sync.Mutex
	lines []string
}

// Append adds one line to the end of the log.
func (l *OutputLog) Append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

// Lines returns a copy of the captured lines in arrival order.
func (l *OutputLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of captured lines.
func (l *OutputLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}
