package core

import (
	"context"

	"github.com/okorch/notetaker/internal/domain"
)

// Conn abstracts one live WebSocket handle. Owned by the driver that dialed
// it; SendJSON must be safe for concurrent use and Close must be idempotent.
type Conn interface {
	SendJSON(v any) error
	Close()
}

// Completer classifies transcript windows and summarizes meetings.
type Completer interface {
	Classify(ctx context.Context, lines []string) (domain.Action, error)
	Summarize(ctx context.Context, transcript string) (domain.MeetingSummary, error)
}

// DocumentStore creates meeting documents and appends content blocks.
type DocumentStore interface {
	CreatePage(ctx context.Context, title string) (string, error)
	AppendBlocks(ctx context.Context, pageID string, blocks []domain.Block) error
}
