// Package notion is a minimal client for the two Notion endpoints the note
// taker uses: page creation and block append.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okorch/notetaker/internal/domain"
)

const notionVersion = "2022-06-28"

type Client struct {
	http       *http.Client
	baseURL    string
	token      string
	databaseID string
}

func New(baseURL, token, databaseID string) *Client {
	return &Client{
		http:       &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		databaseID: databaseID,
	}
}

func richText(content string) []map[string]any {
	return []map[string]any{
		{"type": "text", "text": map[string]any{"content": content}},
	}
}

// CreatePage creates a titled page under the configured database and returns
// its id.
func (c *Client) CreatePage(ctx context.Context, title string) (string, error) {
	payload := map[string]any{
		"parent": map[string]any{"database_id": c.databaseID},
		"properties": map[string]any{
			"Name": map[string]any{
				"id":    "title",
				"type":  "title",
				"title": richText(title),
			},
		},
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/pages", payload, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// AppendBlocks appends content blocks to a page, in order.
func (c *Client) AppendBlocks(ctx context.Context, pageID string, blocks []domain.Block) error {
	children := make([]map[string]any, 0, len(blocks))
	for _, b := range blocks {
		children = append(children, map[string]any{
			"object":       "block",
			"type":         string(b.Type),
			string(b.Type): map[string]any{"rich_text": richText(b.Text)},
		})
	}
	payload := map[string]any{"children": children}
	return c.do(ctx, http.MethodPatch, "/v1/blocks/"+pageID+"/children", payload, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notion: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notion: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", notionVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("notion: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("notion: %s %s: status %d: %s", method, path, resp.StatusCode, raw)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("notion: decode response: %w", err)
		}
	}
	return nil
}
