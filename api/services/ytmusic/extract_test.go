package ytmusic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, raw string) *ListItem {
	t.Helper()

	var item ListItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	return &item
}

func TestColumnRunsAbsent(t *testing.T) {
	assert.Nil(t, columnRuns(nil, 0))
	assert.Nil(t, columnRuns(&ListItem{}, 0))
	assert.Nil(t, columnRuns(mustItem(t, `{"flexColumns":[]}`), 1))
	assert.Equal(t, "", columnText(&ListItem{}, 2))
}

func TestColumnText(t *testing.T) {
	item := mustItem(t, `{
		"flexColumns": [
			{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
				{"text": "The"}, {"text": " "}, {"text": "Weeknd"}
			]}}}
		]
	}`)

	assert.Equal(t, "The Weeknd", columnText(item, 0))
	assert.Equal(t, "", columnText(item, 1))
}

func TestPlainTextRunsFiltersSeparatorsAndNavigation(t *testing.T) {
	runs := []Run{
		{Text: "Artist", NavigationEndpoint: &NavigationEndpoint{BrowseEndpoint: &BrowseEndpoint{BrowseID: "UC1"}}},
		{Text: " • "},
		{Text: "   "},
		{Text: "3:20"},
		{Text: "2020"},
	}

	plain := plainTextRuns(runs)

	require.Len(t, plain, 2)
	assert.Equal(t, "3:20", plain[0].Text)
	assert.Equal(t, "2020", plain[1].Text)
}

func TestFindRunByPageType(t *testing.T) {
	raw := `{
		"flexColumns": [
			{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
				{"text": "Some Album", "navigationEndpoint": {"browseEndpoint": {
					"browseId": "MPREb_1",
					"browseEndpointContextSupportedConfigs": {"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_ALBUM"}}
				}}},
				{"text": "The Weeknd", "navigationEndpoint": {"browseEndpoint": {
					"browseId": "UC123",
					"browseEndpointContextSupportedConfigs": {"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_ARTIST"}}
				}}}
			]}}}
		]
	}`
	runs := columnRuns(mustItem(t, raw), 0)

	artist := findRunByPageType(runs, pageTypeArtist)
	require.NotNil(t, artist)
	assert.Equal(t, "The Weeknd", artist.Text)
	assert.Equal(t, "UC123", runBrowseID(artist))

	assert.Nil(t, findRunByPageType(runs, pageTypePodcastShow))

	// first run with any browse target wins regardless of page type
	browse := findRunWithBrowse(runs)
	require.NotNil(t, browse)
	assert.Equal(t, "Some Album", browse.Text)
}

func TestVideoIDPrecedence(t *testing.T) {
	all := mustItem(t, `{
		"playlistItemData": {"videoId": "direct"},
		"overlay": {"musicItemThumbnailOverlayRenderer": {"content": {"musicPlayButtonRenderer": {
			"playNavigationEndpoint": {"watchEndpoint": {"videoId": "overlay"}}
		}}}},
		"flexColumns": [
			{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
				{"text": "Title", "navigationEndpoint": {"watchEndpoint": {"videoId": "run"}}}
			]}}}
		]
	}`)
	assert.Equal(t, "direct", videoIDOf(all))

	all.PlaylistItemData.VideoID = ""
	assert.Equal(t, "overlay", videoIDOf(all))

	all.Overlay.MusicItemThumbnailOverlayRenderer.Content.MusicPlayButtonRenderer.PlayNavigationEndpoint = nil
	assert.Equal(t, "run", videoIDOf(all))

	assert.Equal(t, "", videoIDOf(&ListItem{}))
	assert.Equal(t, "", videoIDOf(nil))
}

func TestPlaylistIDPrecedence(t *testing.T) {
	item := mustItem(t, `{
		"overlay": {"musicItemThumbnailOverlayRenderer": {"content": {"musicPlayButtonRenderer": {
			"playNavigationEndpoint": {
				"watchPlaylistEndpoint": {"playlistId": "VLPL1"},
				"watchEndpoint": {"videoId": "v", "playlistId": "PL2"}
			}
		}}}}
	}`)
	assert.Equal(t, "VLPL1", playlistIDOf(item))

	item.Overlay.MusicItemThumbnailOverlayRenderer.Content.MusicPlayButtonRenderer.PlayNavigationEndpoint.WatchPlaylistEndpoint = nil
	assert.Equal(t, "PL2", playlistIDOf(item))

	assert.Equal(t, "", playlistIDOf(&ListItem{}))
}

func TestBrowseIDOf(t *testing.T) {
	item := mustItem(t, `{"navigationEndpoint": {"browseEndpoint": {"browseId": "UCabc"}}}`)
	assert.Equal(t, "UCabc", browseIDOf(item))
	assert.Equal(t, "", browseIDOf(&ListItem{}))
	assert.Equal(t, "", browseIDOf(nil))
}

func TestThumbnailsRoundTrip(t *testing.T) {
	item := mustItem(t, `{
		"thumbnail": {"musicThumbnailRenderer": {"thumbnail": {"thumbnails": [
			{"url": "https://img/60", "width": 60, "height": 60},
			{"url": "https://img/120", "width": 120, "height": 120},
			{"url": "https://img/226", "width": 226, "height": 226}
		]}}}
	}`)

	thumbs := thumbnailsOf(item)

	require.Len(t, thumbs, 3)
	assert.Equal(t, Thumbnail{URL: "https://img/60", Width: 60, Height: 60}, thumbs[0])
	assert.Equal(t, Thumbnail{URL: "https://img/120", Width: 120, Height: 120}, thumbs[1])
	assert.Equal(t, Thumbnail{URL: "https://img/226", Width: 226, Height: 226}, thumbs[2])

	// absent thumbnails still give a non-nil, empty list
	empty := thumbnailsOf(&ListItem{})
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}
