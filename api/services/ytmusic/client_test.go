package ytmusic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(req *http.Request) *http.Response

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(fn roundTripFunc) *Client {
	c := NewClient(DefaultConfig())
	c.http = &http.Client{Transport: fn}
	return c
}

func TestSearchRequest(t *testing.T) {
	var captured *http.Request
	var capturedBody map[string]any

	client := newTestClient(func(req *http.Request) *http.Response {
		captured = req
		payload, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(payload, &capturedBody)
		return jsonResponse(200, `{}`)
	})

	_, err := client.Search(context.Background(), "espresso", TypeSongs)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "https://music.youtube.com/youtubei/v1/search", captured.URL.String())
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Contains(t, captured.Header.Get("User-Agent"), "Mozilla/5.0")

	assert.Equal(t, "espresso", capturedBody["query"])
	assert.Equal(t, searchParams[TypeSongs], capturedBody["params"])

	clientCtx := capturedBody["context"].(map[string]any)["client"].(map[string]any)
	assert.Equal(t, "WEB_REMIX", clientCtx["clientName"])
	// search sends the minimal context, no browser identity
	assert.NotContains(t, clientCtx, "browserName")
}

func TestSearchAllSendsNoParams(t *testing.T) {
	var capturedBody map[string]any

	client := newTestClient(func(req *http.Request) *http.Response {
		payload, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(payload, &capturedBody)
		return jsonResponse(200, `{}`)
	})

	_, err := client.Search(context.Background(), "espresso", TypeAll)
	require.NoError(t, err)
	assert.NotContains(t, capturedBody, "params")
}

func TestSearchUpstreamError(t *testing.T) {
	client := newTestClient(func(req *http.Request) *http.Response {
		return jsonResponse(403, `{"error": "blocked"}`)
	})

	_, err := client.Search(context.Background(), "espresso", TypeAll)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

const nextWithLyricsTab = `{"contents": {"singleColumnMusicWatchNextResultsRenderer": {"tabbedRenderer": {"watchNextTabbedResultsRenderer": {"tabs": [
	{"tabRenderer": {}},
	{"tabRenderer": {"endpoint": {"browseEndpoint": {"browseId": "MPLYt_abc"}}}}
]}}}}}`

const browseWithLyrics = `{"contents": {"sectionListRenderer": {"contents": [
	{"musicDescriptionShelfRenderer": {"description": {"runs": [{"text": "I been tryna call..."}]}}}
]}}}`

func TestGetLyrics(t *testing.T) {
	var calls []string

	client := newTestClient(func(req *http.Request) *http.Response {
		calls = append(calls, req.URL.Path)
		switch {
		case strings.HasSuffix(req.URL.Path, "/next"):
			return jsonResponse(200, nextWithLyricsTab)
		case strings.HasSuffix(req.URL.Path, "/browse"):
			return jsonResponse(200, browseWithLyrics)
		}
		return jsonResponse(404, `{}`)
	})

	got, err := client.GetLyrics(context.Background(), "kIft-LUHHVA")

	require.NoError(t, err)
	assert.Equal(t, LyricsResult{Lyrics: "I been tryna call...", BrowseID: "MPLYt_abc"}, got)
	assert.Len(t, calls, 2)
}

func TestGetLyricsShortCircuitsWithoutBrowseID(t *testing.T) {
	tests := map[string]string{
		"empty response": `{}`,
		"single tab":     `{"contents": {"singleColumnMusicWatchNextResultsRenderer": {"tabbedRenderer": {"watchNextTabbedResultsRenderer": {"tabs": [{"tabRenderer": {}}]}}}}}`,
		"tab without endpoint": `{"contents": {"singleColumnMusicWatchNextResultsRenderer": {"tabbedRenderer": {"watchNextTabbedResultsRenderer": {"tabs": [
			{"tabRenderer": {}}, {"tabRenderer": {}}
		]}}}}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var calls int

			client := newTestClient(func(req *http.Request) *http.Response {
				calls++
				return jsonResponse(200, body)
			})

			got, err := client.GetLyrics(context.Background(), "kIft-LUHHVA")

			require.NoError(t, err)
			assert.Equal(t, LyricsResult{}, got)
			// the browse step is never attempted
			assert.Equal(t, 1, calls)
		})
	}
}

func TestGetLyricsEmptyDescriptionKeepsBrowseID(t *testing.T) {
	client := newTestClient(func(req *http.Request) *http.Response {
		if strings.HasSuffix(req.URL.Path, "/next") {
			return jsonResponse(200, nextWithLyricsTab)
		}
		return jsonResponse(200, `{}`)
	})

	got, err := client.GetLyrics(context.Background(), "kIft-LUHHVA")

	require.NoError(t, err)
	assert.Equal(t, "MPLYt_abc", got.BrowseID)
	assert.Equal(t, "", got.Lyrics)
}

func TestLyricsContextIncludesBrowserIdentity(t *testing.T) {
	var capturedBody map[string]any

	client := newTestClient(func(req *http.Request) *http.Response {
		payload, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(payload, &capturedBody)
		return jsonResponse(200, `{}`)
	})

	_, err := client.LyricsBrowseID(context.Background(), "kIft-LUHHVA")
	require.NoError(t, err)

	assert.Equal(t, "kIft-LUHHVA", capturedBody["videoId"])
	clientCtx := capturedBody["context"].(map[string]any)["client"].(map[string]any)
	assert.Equal(t, "Chrome", clientCtx["browserName"])
	assert.Equal(t, "144.0.0.0", clientCtx["browserVersion"])
}
