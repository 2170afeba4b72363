package core

// Event is the closed set of workflow events. The dispatcher consumes a
// meeting's events in FIFO order.
type Event interface{ isEvent() }

// DocumentNeeded asks for a meeting document. It always precedes any append
// event for the same meeting.
type DocumentNeeded struct{ Title string }

// WindowReady carries a full transcript window for classification.
type WindowReady struct{ Lines []string }

// ActionItemsFound carries checklist items to append to the document.
type ActionItemsFound struct{ Items []string }

// MeetingEnded is the terminal event; it carries the accumulated transcript
// for summarization.
type MeetingEnded struct{ Transcript string }

func (DocumentNeeded) isEvent()   {}
func (WindowReady) isEvent()      {}
func (ActionItemsFound) isEvent() {}
func (MeetingEnded) isEvent()     {}
