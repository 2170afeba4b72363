package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "Alice: hello there", FormatLine("Alice", "hello there"))
	assert.Equal(t, "Unknown User: ", FormatLine("Unknown User", ""))
}

func TestActionDecode(t *testing.T) {
	var act Action
	require.NoError(t, json.Unmarshal(
		[]byte(`{"action":"create_action_items","action_items":["ship it"]}`), &act))
	assert.Equal(t, ActionCreateItems, act.Action)
	assert.Equal(t, []string{"ship it"}, act.Items)

	require.NoError(t, json.Unmarshal([]byte(`{"action":"do_nothing","action_items":[]}`), &act))
	assert.Equal(t, ActionNothing, act.Action)
	assert.Empty(t, act.Items)
}

func TestMeetingSummaryDecode(t *testing.T) {
	var sum MeetingSummary
	require.NoError(t, json.Unmarshal(
		[]byte(`{"summary":"We agreed to ship.","attendees":["Alice","Bob"]}`), &sum))
	assert.Equal(t, "We agreed to ship.", sum.Summary)
	assert.Equal(t, []string{"Alice", "Bob"}, sum.Attendees)
}
