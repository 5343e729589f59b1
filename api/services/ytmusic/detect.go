package ytmusic

import "strings"

// SearchType is a search filter / result category.
type SearchType string

const (
	TypeAll                SearchType = "all"
	TypeSongs              SearchType = "songs"
	TypeVideos             SearchType = "videos"
	TypeArtists            SearchType = "artists"
	TypeAlbums             SearchType = "albums"
	TypePodcasts           SearchType = "podcasts"
	TypePodcastEpisodes    SearchType = "podcast_episodes"
	TypeProfiles           SearchType = "profiles"
	TypeCommunityPlaylists SearchType = "community_playlists"
)

// SearchTypes lists every value accepted by the type query parameter.
var SearchTypes = []string{
	string(TypeAll),
	string(TypeSongs),
	string(TypeArtists),
	string(TypeVideos),
	string(TypePodcastEpisodes),
	string(TypeAlbums),
	string(TypeProfiles),
	string(TypeCommunityPlaylists),
	string(TypePodcasts),
}

// Page-type classifiers attached to browse endpoints.
const (
	pageTypeArtist      = "MUSIC_PAGE_TYPE_ARTIST"
	pageTypeAlbum       = "MUSIC_PAGE_TYPE_ALBUM"
	pageTypeUserChannel = "MUSIC_PAGE_TYPE_USER_CHANNEL"
	pageTypePlaylist    = "MUSIC_PAGE_TYPE_PLAYLIST"
	pageTypePodcastShow = "MUSIC_PAGE_TYPE_PODCAST_SHOW_DETAIL_PAGE"
)

var shelfTitleTypes = map[string]SearchType{
	"Songs":               TypeSongs,
	"Videos":              TypeVideos,
	"Artists":             TypeArtists,
	"Albums":              TypeAlbums,
	"Podcasts":            TypePodcasts,
	"Episodes":            TypePodcastEpisodes,
	"Profiles":            TypeProfiles,
	"Community playlists": TypeCommunityPlaylists,
}

// detectTypeFromShelfTitle maps a shelf title to its category. Returns ""
// for unrecognized titles; shelves name their contents explicitly, so this
// takes precedence over any per-item heuristic.
func detectTypeFromShelfTitle(title string) SearchType {
	return shelfTitleTypes[title]
}

// detectTypeFromItem classifies an item by its rendered shape. Mixed ("all")
// result shelves carry no machine-readable type, so this reconstructs it
// from the hints the web client renders: the first run of column 1 usually
// spells the category, the item's own browse target may carry a telling
// page type, and as a last resort songs render three flex columns where
// videos render two. Order matters; first match wins. Returns "" when
// nothing matches.
func detectTypeFromItem(item *ListItem) SearchType {
	var first string
	if col1 := columnRuns(item, 1); len(col1) > 0 {
		first = strings.ToLower(col1[0].Text)
	}

	switch {
	case strings.Contains(first, "song"):
		return TypeSongs
	case strings.Contains(first, "video"):
		return TypeVideos
	case first == "artist":
		return TypeArtists
	case first == "album" || first == "ep" || first == "single":
		return TypeAlbums
	case first == "podcast":
		return TypePodcasts
	case first == "profile":
		return TypeProfiles
	}

	if item != nil && item.NavigationEndpoint != nil {
		switch item.NavigationEndpoint.BrowseEndpoint.pageType() {
		case pageTypePlaylist:
			return TypeCommunityPlaylists
		case pageTypePodcastShow:
			return TypePodcasts
		}
	}

	// Column-count fallback. Known to be ambiguous for odd layouts, but it
	// matches what the web client actually renders for songs vs. videos.
	if videoIDOf(item) != "" {
		switch len(item.FlexColumns) {
		case 3:
			return TypeSongs
		case 2:
			return TypeVideos
		}
	}

	return ""
}
