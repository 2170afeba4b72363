package app

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/okorch/notetaker/internal/core"
	"github.com/okorch/notetaker/internal/domain"
)

const queueDepth = 64

// Workflow sequences downstream effects for each meeting. One goroutine
// drains each meeting's queue in FIFO order, so the meeting document exists
// (or its creation has already failed) before any append for that meeting
// runs. Distinct meetings proceed in parallel.
//
// Collaborator failures are logged and the event is dropped; nothing here
// retries or escalates to the channel drivers.
type Workflow struct {
	Registry  *Registry
	Completer core.Completer
	Docs      core.DocumentStore

	mu     sync.Mutex
	queues map[string]*meetingQueue
}

// meetingQueue carries the per-meeting event channel plus a flag marking
// that the terminal event has been accepted. At most one MeetingEnded ever
// enters the channel, so the blocking terminal send always has a live
// consumer on the other side.
type meetingQueue struct {
	ch    chan core.Event
	ended bool
}

func NewWorkflow(reg *Registry, c core.Completer, d core.DocumentStore) *Workflow {
	return &Workflow{
		Registry:  reg,
		Completer: c,
		Docs:      d,
		queues:    make(map[string]*meetingQueue),
	}
}

// Dispatch enqueues ev for the meeting. A full queue drops the event rather
// than block the channel drivers behind a slow collaborator call; the
// terminal MeetingEnded event is the one event that may block, so a stopped
// meeting always gets its summary attempt. A duplicate terminal event is
// dropped, never queued.
func (w *Workflow) Dispatch(meetingUUID string, ev core.Event) {
	_, terminal := ev.(core.MeetingEnded)

	w.mu.Lock()
	q, ok := w.queues[meetingUUID]
	if !ok {
		q = &meetingQueue{ch: make(chan core.Event, queueDepth)}
		w.queues[meetingUUID] = q
		go w.run(meetingUUID, q)
	}
	if terminal {
		if q.ended {
			w.mu.Unlock()
			log.Warn().Str("module", "app.workflow").Str("meeting", meetingUUID).
				Msg("meeting already ending, dropping duplicate stop")
			return
		}
		q.ended = true
	}
	w.mu.Unlock()

	if terminal {
		q.ch <- ev
		return
	}
	select {
	case q.ch <- ev:
	default:
		log.Warn().Str("module", "app.workflow").Str("meeting", meetingUUID).
			Msg("event queue full, dropping event")
	}
}

// StopMeeting closes the meeting's channel handles and enqueues the terminal
// summary event. The session itself is removed from the registry once
// MeetingEnded has been processed, so the summarizer can still read the
// document id.
func (w *Workflow) StopMeeting(meetingUUID string) {
	s, ok := w.Registry.Get(meetingUUID)
	if !ok {
		log.Warn().Str("module", "app.workflow").Str("meeting", meetingUUID).
			Msg("stop for unknown meeting")
		return
	}
	s.CloseHandles()
	w.Dispatch(meetingUUID, core.MeetingEnded{Transcript: s.Transcript()})
}

func (w *Workflow) run(meetingUUID string, q *meetingQueue) {
	for {
		ev := <-q.ch
		w.handle(meetingUUID, ev)

		_, ended := ev.(core.MeetingEnded)
		if _, live := w.Registry.Get(meetingUUID); ended || !live {
			w.mu.Lock()
			if w.queues[meetingUUID] == q {
				delete(w.queues, meetingUUID)
			}
			w.mu.Unlock()
			return
		}
	}
}

func (w *Workflow) handle(meetingUUID string, ev core.Event) {
	ctx := context.Background()
	logger := log.With().Str("module", "app.workflow").Str("meeting", meetingUUID).Logger()

	switch e := ev.(type) {
	case core.DocumentNeeded:
		w.createDocument(ctx, meetingUUID, e.Title, logger)
	case core.WindowReady:
		w.classifyWindow(ctx, meetingUUID, e.Lines, logger)
	case core.ActionItemsFound:
		w.appendActionItems(ctx, meetingUUID, e.Items, logger)
	case core.MeetingEnded:
		w.summarize(ctx, meetingUUID, e.Transcript, logger)
	}
}

func (w *Workflow) createDocument(ctx context.Context, meetingUUID, title string, logger zerolog.Logger) {
	s, ok := w.Registry.Get(meetingUUID)
	if !ok {
		logger.Warn().Msg("document requested for unknown meeting")
		return
	}
	id, err := w.Docs.CreatePage(ctx, title)
	if err != nil {
		logger.Error().Err(err).Msg("page creation failed")
		return
	}
	s.SetPageID(id)
	logger.Info().Str("page", id).Msg("created meeting document")
}

func (w *Workflow) classifyWindow(ctx context.Context, meetingUUID string, lines []string, logger zerolog.Logger) {
	act, err := w.Completer.Classify(ctx, lines)
	if err != nil {
		logger.Error().Err(err).Msg("window classification failed")
		return
	}
	if act.Action != domain.ActionCreateItems || len(act.Items) == 0 {
		return
	}
	w.handle(meetingUUID, core.ActionItemsFound{Items: act.Items})
}

func (w *Workflow) appendActionItems(ctx context.Context, meetingUUID string, items []string, logger zerolog.Logger) {
	s, ok := w.Registry.Get(meetingUUID)
	if !ok {
		logger.Warn().Msg("action items for unknown meeting")
		return
	}
	pageID := s.PageID()
	if pageID == "" {
		logger.Warn().Msg("no document for meeting, dropping action items")
		return
	}
	blocks := make([]domain.Block, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, domain.Block{Type: domain.BlockToDo, Text: item})
	}
	if err := w.Docs.AppendBlocks(ctx, pageID, blocks); err != nil {
		logger.Error().Err(err).Msg("action item append failed")
		return
	}
	logger.Info().Int("items", len(items)).Msg("appended action items")
}

// summarize is the terminal step: after it, the session leaves the registry
// whatever the collaborator outcome was.
func (w *Workflow) summarize(ctx context.Context, meetingUUID, transcript string, logger zerolog.Logger) {
	defer w.Registry.Remove(meetingUUID)

	if strings.TrimSpace(transcript) == "" {
		logger.Info().Msg("no transcript captured, skipping summary")
		return
	}
	s, ok := w.Registry.Get(meetingUUID)
	if !ok {
		logger.Warn().Msg("summary for unknown meeting")
		return
	}
	pageID := s.PageID()
	if pageID == "" {
		logger.Warn().Msg("no document for meeting, dropping summary")
		return
	}

	sum, err := w.Completer.Summarize(ctx, transcript)
	if err != nil {
		logger.Error().Err(err).Msg("summarization failed")
		return
	}

	blocks := []domain.Block{
		{Type: domain.BlockHeading, Text: "Meeting Summary"},
		{Type: domain.BlockParagraph, Text: sum.Summary},
	}
	if len(sum.Attendees) > 0 {
		blocks = append(blocks, domain.Block{
			Type: domain.BlockParagraph,
			Text: "Attendees: " + strings.Join(sum.Attendees, ", "),
		})
	}
	if err := w.Docs.AppendBlocks(ctx, pageID, blocks); err != nil {
		logger.Error().Err(err).Msg("summary append failed")
		return
	}
	logger.Info().Msg("meeting summary written")
}
