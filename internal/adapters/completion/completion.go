// Package completion implements the classification and summarization
// collaborator on top of the OpenAI chat completions API.
package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/okorch/notetaker/internal/domain"
)

const classifyPrompt = `You evaluate whether there are any reasonable action items that can be noted from a short transcript chunk from a meeting. For example, if it's just a chat, select "do_nothing", but if there are clear discussions on what to do, select "create_action_items". Respond with a JSON object: {"action": "do_nothing" | "create_action_items", "action_items": [list of precise action items, empty if there are none]}.`

const summarizePrompt = `You're a meeting summarizer. Based on the full transcript provided by the user, summarize the meeting, mentioning opinions highlighted by the participants, and compile the full list of attendees. Respond with a JSON object: {"summary": string, "attendees": [list of attendee names]}.`

type Client struct {
	api   *openai.Client
	model string
}

// New builds the client. baseURL overrides the API endpoint; leave it empty
// for the real service.
func New(apiKey, model, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

// Classify decides whether a transcript window contains action items.
func (c *Client) Classify(ctx context.Context, lines []string) (domain.Action, error) {
	var out domain.Action
	if err := c.chatJSON(ctx, classifyPrompt, strings.Join(lines, "\n"), &out); err != nil {
		return domain.Action{}, err
	}
	return out, nil
}

// Summarize produces the end-of-meeting summary and attendee list.
func (c *Client) Summarize(ctx context.Context, transcript string) (domain.MeetingSummary, error) {
	var out domain.MeetingSummary
	if err := c.chatJSON(ctx, summarizePrompt, transcript, &out); err != nil {
		return domain.MeetingSummary{}, err
	}
	return out, nil
}

func (c *Client) chatJSON(ctx context.Context, system, user string, out any) error {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return fmt.Errorf("completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("completion returned no choices")
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("completion returned malformed JSON: %w", err)
	}
	return nil
}
