// Package domain contains entity without logic, just meta-data
package domain

// Classification outcomes returned by the completion backend.
const (
	ActionNothing     = "do_nothing"
	ActionCreateItems = "create_action_items"
)

// Action is the classification of a transcript window.
type Action struct {
	Action string   `json:"action"`
	Items  []string `json:"action_items"`
}

// MeetingSummary is the end-of-meeting digest.
type MeetingSummary struct {
	Summary   string   `json:"summary"`
	Attendees []string `json:"attendees"`
}

// BlockType names a document block kind. Values match the Notion block
// type keys verbatim.
type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockHeading   BlockType = "heading_2"
	BlockToDo      BlockType = "to_do"
)

// Block is one content block destined for the meeting document.
type Block struct {
	Type BlockType
	Text string
}

// FormatLine renders a transcript line with its speaker label.
func FormatLine(speaker, text string) string {
	return speaker + ": " + text
}
