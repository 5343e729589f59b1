package ytmusic

// Typed views over the InnerTube response trees. Only the fields the parsers
// actually read are declared; everything else in the upstream payload is
// ignored during decoding, and absent fields come back as zero values so the
// extractors never have to guard against malformed shapes.
//
// Pointer fields mark the places where presence itself is a signal: a run
// with no navigationEndpoint is plain text, a section with no
// musicShelfRenderer is some other renderer we don't handle.

type Run struct {
	Text               string              `json:"text"`
	NavigationEndpoint *NavigationEndpoint `json:"navigationEndpoint,omitempty"`
}

type NavigationEndpoint struct {
	WatchEndpoint         *WatchEndpoint         `json:"watchEndpoint,omitempty"`
	WatchPlaylistEndpoint *WatchPlaylistEndpoint `json:"watchPlaylistEndpoint,omitempty"`
	BrowseEndpoint        *BrowseEndpoint        `json:"browseEndpoint,omitempty"`
}

type WatchEndpoint struct {
	VideoID    string `json:"videoId"`
	PlaylistID string `json:"playlistId"`
}

type WatchPlaylistEndpoint struct {
	PlaylistID string `json:"playlistId"`
}

type BrowseEndpoint struct {
	BrowseID                              string `json:"browseId"`
	BrowseEndpointContextSupportedConfigs struct {
		BrowseEndpointContextMusicConfig struct {
			PageType string `json:"pageType"`
		} `json:"browseEndpointContextMusicConfig"`
	} `json:"browseEndpointContextSupportedConfigs"`
}

// pageType returns the page-type classifier on a browse endpoint, "" if the
// endpoint is nil.
func (b *BrowseEndpoint) pageType() string {
	if b == nil {
		return ""
	}
	return b.BrowseEndpointContextSupportedConfigs.BrowseEndpointContextMusicConfig.PageType
}

type runsText struct {
	Runs []Run `json:"runs"`
}

type thumbnailRenderer struct {
	MusicThumbnailRenderer struct {
		Thumbnail struct {
			Thumbnails []Thumbnail `json:"thumbnails"`
		} `json:"thumbnail"`
	} `json:"musicThumbnailRenderer"`
}

// ListItem is a musicResponsiveListItemRenderer, the renderer used for every
// row of a search shelf regardless of what kind of item it shows.
type ListItem struct {
	FlexColumns []struct {
		MusicResponsiveListItemFlexColumnRenderer struct {
			Text runsText `json:"text"`
		} `json:"musicResponsiveListItemFlexColumnRenderer"`
	} `json:"flexColumns"`

	PlaylistItemData struct {
		VideoID string `json:"videoId"`
	} `json:"playlistItemData"`

	Overlay struct {
		MusicItemThumbnailOverlayRenderer struct {
			Content struct {
				MusicPlayButtonRenderer struct {
					PlayNavigationEndpoint *NavigationEndpoint `json:"playNavigationEndpoint,omitempty"`
				} `json:"musicPlayButtonRenderer"`
			} `json:"content"`
		} `json:"musicItemThumbnailOverlayRenderer"`
	} `json:"overlay"`

	Thumbnail          thumbnailRenderer   `json:"thumbnail"`
	NavigationEndpoint *NavigationEndpoint `json:"navigationEndpoint,omitempty"`
}

type listItemContent struct {
	MusicResponsiveListItemRenderer *ListItem `json:"musicResponsiveListItemRenderer,omitempty"`
}

// CardShelf is a musicCardShelfRenderer, the highlighted "top result" card.
type CardShelf struct {
	Title     runsText          `json:"title"`
	Subtitle  runsText          `json:"subtitle"`
	Thumbnail thumbnailRenderer `json:"thumbnail"`
	OnTap     struct {
		WatchEndpoint  *WatchEndpoint  `json:"watchEndpoint,omitempty"`
		BrowseEndpoint *BrowseEndpoint `json:"browseEndpoint,omitempty"`
	} `json:"onTap"`
	Contents []listItemContent `json:"contents"`
}

// MusicShelf is a musicShelfRenderer, a titled list of result items.
type MusicShelf struct {
	Title    runsText          `json:"title"`
	Contents []listItemContent `json:"contents"`
}

type searchSection struct {
	MusicCardShelfRenderer *CardShelf  `json:"musicCardShelfRenderer,omitempty"`
	MusicShelfRenderer     *MusicShelf `json:"musicShelfRenderer,omitempty"`
}

// SearchResponse is the raw /search payload:
// contents.tabbedSearchResultsRenderer.tabs[0].tabRenderer.content.sectionListRenderer.contents
type SearchResponse struct {
	Contents struct {
		TabbedSearchResultsRenderer struct {
			Tabs []struct {
				TabRenderer struct {
					Content struct {
						SectionListRenderer struct {
							Contents []searchSection `json:"contents"`
						} `json:"sectionListRenderer"`
					} `json:"content"`
				} `json:"tabRenderer"`
			} `json:"tabs"`
		} `json:"tabbedSearchResultsRenderer"`
	} `json:"contents"`
}

// NextResponse is the raw /next (watch next) payload. The lyrics tab sits at
// a fixed index and carries the browse id for the lyrics page.
type NextResponse struct {
	Contents struct {
		SingleColumnMusicWatchNextResultsRenderer struct {
			TabbedRenderer struct {
				WatchNextTabbedResultsRenderer struct {
					Tabs []struct {
						TabRenderer struct {
							Endpoint *NavigationEndpoint `json:"endpoint,omitempty"`
						} `json:"tabRenderer"`
					} `json:"tabs"`
				} `json:"watchNextTabbedResultsRenderer"`
			} `json:"tabbedRenderer"`
		} `json:"singleColumnMusicWatchNextResultsRenderer"`
	} `json:"contents"`
}

// BrowseResponse is the raw /browse payload for a lyrics page.
type BrowseResponse struct {
	Contents struct {
		SectionListRenderer struct {
			Contents []struct {
				MusicDescriptionShelfRenderer struct {
					Description runsText `json:"description"`
				} `json:"musicDescriptionShelfRenderer"`
			} `json:"contents"`
		} `json:"sectionListRenderer"`
	} `json:"contents"`
}
