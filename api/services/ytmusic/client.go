package ytmusic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Config is the fixed client identity sent with every InnerTube call. Built
// once at startup and handed to NewClient; the zero value is not usable.
type Config struct {
	BaseURL        string
	ClientName     string
	ClientVersion  string
	BrowserName    string
	BrowserVersion string
	UserAgent      string
}

// DefaultConfig mirrors the identity of the YouTube Music web client.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "https://music.youtube.com/youtubei/v1",
		ClientName:     "WEB_REMIX",
		ClientVersion:  "1.20260209.03.00",
		BrowserName:    "Chrome",
		BrowserVersion: "144.0.0.0",
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/144.0.0.0 Safari/537.36",
	}
}

type clientIdentity struct {
	ClientName     string `json:"clientName"`
	ClientVersion  string `json:"clientVersion"`
	BrowserName    string `json:"browserName,omitempty"`
	BrowserVersion string `json:"browserVersion,omitempty"`
}

type clientContext struct {
	Client clientIdentity `json:"client"`
}

// Client talks to the InnerTube API. All methods are safe for concurrent
// use; the client holds no per-request state.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
	}
}

// searchParams holds the opaque filter blob the web client sends for each
// search type. "all" sends none.
var searchParams = map[SearchType]string{
	TypeSongs:              "EgWKAQIIAWoSEAMQBRAEEBAQCRAVEAoQDhAR",
	TypeArtists:            "EgWKAQIgAWoSEAMQBRAEEBAQCRAVEAoQDhAR",
	TypeVideos:             "EgWKAQIQAWoSEAMQBRAEEBAQCRAVEAoQDhAR",
	TypePodcastEpisodes:    "EgWKAQJIAWoSEAMQBRAEEBAQCRAVEAoQDhAR",
	TypeAlbums:             "EgWKAQIYAWoSEAMQBRAEEBAQCRAVEAoQDhAR",
	TypeProfiles:           "EgWKAQJYAWoSEAMQBRAEEBAQCRAVEAoQDhAR",
	TypeCommunityPlaylists: "EgeKAQQoAEABahIQAxAFEAQQEBAJEBUQChAOEBE%3D",
	TypePodcasts:           "EgWKAQJQAWoSEAMQBRAEEBAQCRAVEAoQDhAR",
}

// context builds the request context payload. Search uses the minimal
// variant; next/browse also send the browser identity.
func (c *Client) context(full bool) clientContext {
	ctx := clientContext{Client: clientIdentity{
		ClientName:    c.cfg.ClientName,
		ClientVersion: c.cfg.ClientVersion,
	}}
	if full {
		ctx.Client.BrowserName = c.cfg.BrowserName
		ctx.Client.BrowserVersion = c.cfg.BrowserVersion
	}
	return ctx
}

func (c *Client) post(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/"+endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("YouTube Music API error: %d %s", res.StatusCode, http.StatusText(res.StatusCode))
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// Search runs a catalog search and returns the raw response tree.
func (c *Client) Search(ctx context.Context, query string, searchType SearchType) (*SearchResponse, error) {
	body := map[string]any{
		"context": c.context(false),
		"query":   query,
	}
	if params := searchParams[searchType]; params != "" {
		body["params"] = params
	}

	var out SearchResponse
	if err := c.post(ctx, "search", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LyricsBrowseID resolves a video id to the browse id of its lyrics page by
// reading the watch-next response's lyrics tab. Returns "" when the video
// has no lyrics tab.
func (c *Client) LyricsBrowseID(ctx context.Context, videoID string) (string, error) {
	body := map[string]any{
		"videoId": videoID,
		"context": c.context(true),
	}

	var out NextResponse
	if err := c.post(ctx, "next?prettyPrint=false", body, &out); err != nil {
		return "", err
	}

	// The lyrics tab sits at index 1 of the watch-next tab strip.
	tabs := out.Contents.SingleColumnMusicWatchNextResultsRenderer.TabbedRenderer.WatchNextTabbedResultsRenderer.Tabs
	if len(tabs) < 2 {
		return "", nil
	}
	ep := tabs[1].TabRenderer.Endpoint
	if ep == nil || ep.BrowseEndpoint == nil {
		return "", nil
	}
	return ep.BrowseEndpoint.BrowseID, nil
}

// LyricsContent fetches the lyrics page and returns its text, "" when the
// page carries no description shelf.
func (c *Client) LyricsContent(ctx context.Context, browseID string) (string, error) {
	body := map[string]any{
		"context":  c.context(true),
		"browseId": browseID,
	}

	var out BrowseResponse
	if err := c.post(ctx, "browse", body, &out); err != nil {
		return "", err
	}

	sections := out.Contents.SectionListRenderer.Contents
	if len(sections) == 0 {
		return "", nil
	}
	runs := sections[0].MusicDescriptionShelfRenderer.Description.Runs
	if len(runs) == 0 {
		return "", nil
	}
	return runs[0].Text, nil
}

// GetLyrics combines both lyrics steps. When no browse id resolves, the
// content fetch is skipped entirely. Empty results are not errors.
func (c *Client) GetLyrics(ctx context.Context, videoID string) (LyricsResult, error) {
	browseID, err := c.LyricsBrowseID(ctx, videoID)
	if err != nil {
		return LyricsResult{}, err
	}
	if browseID == "" {
		return LyricsResult{}, nil
	}

	lyrics, err := c.LyricsContent(ctx, browseID)
	if err != nil {
		return LyricsResult{}, err
	}
	return LyricsResult{Lyrics: lyrics, BrowseID: browseID}, nil
}
