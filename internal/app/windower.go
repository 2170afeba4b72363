package app

import "github.com/okorch/notetaker/internal/core"

// WindowSize bounds how many transcript lines are batched per classification
// call into the completion service.
const WindowSize = 5

// Windower batches transcript lines into fixed-size analysis windows.
// Trailing lines that never fill a window reach the document only through
// the end-of-meeting summary, never through a short classification call.
type Windower struct {
	size int
}

func NewWindower() *Windower { return &Windower{size: WindowSize} }

// Offer appends one line to the session's current window. When the window
// fills, Offer returns the snapshot and true; the session's window restarts
// empty.
func (w *Windower) Offer(s *core.Session, line string) ([]string, bool) {
	return s.PushWindow(line, w.size)
}
