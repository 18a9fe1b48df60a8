// Package progress folds the bridge event stream into an ordered log of
// human readable messages and a current step pointer.  The log is purely
// observational and never drives control flow.
package progress

import (
	"fmt"
	"sync"
	"time"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/normalize"
	"github.com/sirupsen/logrus"
)

// Entry is one timestamped log line.
type Entry struct {
	At      time.Time
	Message string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.At.Format(time.RFC3339), e.Message)
}

// Tracker owns the display state of one transfer attempt.  It is safe for
// concurrent use: bridge events arrive on the protocol's own callbacks while
// the orchestrating task awaits the same call's resolution.
type Tracker struct {
	mu      sync.Mutex
	current bridgekit.Step
	// last recorded state per step, for duplicate suppression
	seen    map[bridgekit.Step]bridgekit.StepState
	entries []Entry
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		seen: map[bridgekit.Step]bridgekit.StepState{},
		now:  time.Now,
	}
}

// Reset clears the log and step pointer.  Called exactly once per new
// attempt, before any event is processed.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = bridgekit.StepNone
	t.seen = map[bridgekit.Step]bridgekit.StepState{}
	t.entries = nil
}

// AddLog appends a literal milestone message not tied to a protocol event.
func (t *Tracker) AddLog(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.append(message)
}

// HandleEvent records a normalized event.  Repeated identical events are
// idempotent and produce no duplicate log line.  Returns whether the event
// changed the tracked state.
func (t *Tracker) HandleEvent(evt normalize.Event) bool {
	update, ok := normalize.Normalize(evt)
	if !ok {
		logrus.WithField("method", evt.Method).Debug("ignoring unrecognized bridge event")
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if last, ok := t.seen[update.Step]; ok && last == update.State && t.current == update.Step {
		return false
	}
	t.seen[update.Step] = update.State
	t.current = update.Step
	t.append(fmt.Sprintf("%s: %s", update.Step.DisplayName(), update.State))
	return true
}

// SetCurrent moves the step pointer without a protocol event, e.g. to mark
// the attempt failed after the bridging call resolves.
func (t *Tracker) SetCurrent(step bridgekit.Step) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = step
}

// Current returns the step pointer, StepNone before the first event.
func (t *Tracker) Current() bridgekit.Step {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Entries returns a copy of the ordered log.
func (t *Tracker) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Messages returns the log lines without timestamps.
func (t *Tracker) Messages() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	messages := make([]string, 0, len(t.entries))
	for _, entry := range t.entries {
		messages = append(messages, entry.Message)
	}
	return messages
}

// caller must hold t.mu
func (t *Tracker) append(message string) {
	t.entries = append(t.entries, Entry{At: t.now(), Message: message})
}
