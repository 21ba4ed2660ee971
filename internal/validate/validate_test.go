package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Decode(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{
			name: "Valid request",
			body: `{"title":"Google","url":"https://www.google.com","description":"search","rating":4}`,
		},
		{
			name: "Rating zero accepted",
			body: `{"title":"t","url":"https://example.com","rating":0}`,
		},
		{
			name: "Rating five accepted",
			body: `{"title":"t","url":"https://example.com","rating":5}`,
		},
		{
			name:      "Missing title",
			body:      `{"url":"https://example.com","rating":3}`,
			wantField: "title",
			wantMsg:   "'title' is required",
		},
		{
			name:      "Empty title",
			body:      `{"title":"","url":"https://example.com","rating":3}`,
			wantField: "title",
			wantMsg:   "'title' is required",
		},
		{
			name:      "Missing url",
			body:      `{"title":"t","rating":3}`,
			wantField: "url",
			wantMsg:   "'url' is required",
		},
		{
			name:      "Missing rating",
			body:      `{"title":"t","url":"https://example.com"}`,
			wantField: "rating",
			wantMsg:   "'rating' is required",
		},
		{
			name:      "Null rating",
			body:      `{"title":"t","url":"https://example.com","rating":null}`,
			wantField: "rating",
			wantMsg:   "'rating' is required",
		},
		{
			name:      "Rating too high",
			body:      `{"title":"t","url":"https://example.com","rating":6}`,
			wantField: "rating",
			wantMsg:   "rating must be a number between 0 and 5",
		},
		{
			name:      "Negative rating",
			body:      `{"title":"t","url":"https://example.com","rating":-1}`,
			wantField: "rating",
			wantMsg:   "rating must be a number between 0 and 5",
		},
		{
			name:      "Rating not a number",
			body:      `{"title":"t","url":"https://example.com","rating":"abc"}`,
			wantField: "rating",
			wantMsg:   "rating must be a number between 0 and 5",
		},
		{
			name:      "Rating numeric string",
			body:      `{"title":"t","url":"https://example.com","rating":"3"}`,
			wantField: "rating",
			wantMsg:   "rating must be a number between 0 and 5",
		},
		{
			name:      "Fractional rating",
			body:      `{"title":"t","url":"https://example.com","rating":3.5}`,
			wantField: "rating",
			wantMsg:   "rating must be a number between 0 and 5",
		},
		{
			name:      "Invalid url",
			body:      `{"title":"t","url":"not-a-url","rating":3}`,
			wantField: "url",
			wantMsg:   "url must be a valid URL",
		},
		{
			name:      "Title checked before url",
			body:      `{"url":"not-a-url"}`,
			wantField: "title",
			wantMsg:   "'title' is required",
		},
		{
			name:      "Url checked before rating",
			body:      `{"title":"t","url":"not-a-url","rating":9}`,
			wantField: "url",
			wantMsg:   "url must be a valid URL",
		},
		{
			name:    "Malformed JSON",
			body:    `{"title":`,
			wantMsg: "invalid request body",
		},
		{
			name:    "Title of wrong type",
			body:    `{"title":42,"url":"https://example.com","rating":3}`,
			wantMsg: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := v.Decode(strings.NewReader(tt.body))
			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.NotEmpty(t, req.Title)
				return
			}

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, tt.wantMsg, vErr.Error())
		})
	}
}

func TestCreateBookmarkRequest_Bookmark(t *testing.T) {
	req, err := New().Decode(strings.NewReader(`{"title":"t","url":"https://example.com","rating":5}`))
	require.NoError(t, err)

	b := req.Bookmark()
	assert.Empty(t, b.ID)
	assert.Equal(t, "t", b.Title)
	assert.Equal(t, "https://example.com", b.URL)
	assert.Equal(t, "", b.Description)
	assert.Equal(t, 5, b.Rating)
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, IsAbsoluteURL("https://example.com"))
	assert.True(t, IsAbsoluteURL("http://localhost:8000/bookmarks?x=1"))
	assert.True(t, IsAbsoluteURL("ftp://files.example.com/a.txt"))
	assert.False(t, IsAbsoluteURL("not-a-url"))
	assert.False(t, IsAbsoluteURL("/relative/path"))
	assert.False(t, IsAbsoluteURL("javascript:alert(1)"))
	assert.False(t, IsAbsoluteURL("https://"))
	assert.False(t, IsAbsoluteURL("http://exa mple.com"))
}
