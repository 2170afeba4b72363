package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okorch/notetaker/internal/domain"
)

func TestCreatePage(t *testing.T) {
	var gotPath, gotAuth, gotVersion string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "page-123"})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", "db-1")
	id, err := c.CreatePage(context.Background(), "Meeting Notes 2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, "page-123", id)

	assert.Equal(t, "POST /v1/pages", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "2022-06-28", gotVersion)

	parent := gotBody["parent"].(map[string]any)
	assert.Equal(t, "db-1", parent["database_id"])
	title := gotBody["properties"].(map[string]any)["Name"].(map[string]any)["title"].([]any)
	text := title[0].(map[string]any)["text"].(map[string]any)
	assert.Equal(t, "Meeting Notes 2026-08-29", text["content"])
}

func TestAppendBlocks(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", "db-1")
	err := c.AppendBlocks(context.Background(), "page-123", []domain.Block{
		{Type: domain.BlockHeading, Text: "Meeting Summary"},
		{Type: domain.BlockParagraph, Text: "We shipped."},
		{Type: domain.BlockToDo, Text: "Write release notes"},
	})
	require.NoError(t, err)

	assert.Equal(t, "PATCH /v1/blocks/page-123/children", gotPath)
	children := gotBody["children"].([]any)
	require.Len(t, children, 3)

	first := children[0].(map[string]any)
	assert.Equal(t, "block", first["object"])
	assert.Equal(t, "heading_2", first["type"])
	rich := first["heading_2"].(map[string]any)["rich_text"].([]any)
	content := rich[0].(map[string]any)["text"].(map[string]any)["content"]
	assert.Equal(t, "Meeting Summary", content)

	third := children[2].(map[string]any)
	assert.Equal(t, "to_do", third["type"])
}

func TestNonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"validation_error"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", "db-1")
	_, err := c.CreatePage(context.Background(), "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
