package ytmusic

import "strings"

// Low-level accessors over a ListItem. Each one degrades to "" / nil / empty
// when the structure it reads is absent, so the normalizers can compose them
// without presence checks.

// columnRuns returns the text runs of the flex column at the given index,
// nil when the column is absent.
func columnRuns(item *ListItem, col int) []Run {
	if item == nil || col < 0 || col >= len(item.FlexColumns) {
		return nil
	}
	return item.FlexColumns[col].MusicResponsiveListItemFlexColumnRenderer.Text.Runs
}

// columnText joins every run text of a column in order.
func columnText(item *ListItem, col int) string {
	return joinRuns(columnRuns(item, col))
}

func joinRuns(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// findRunByPageType returns the first run whose browse target carries the
// given page-type classifier.
func findRunByPageType(runs []Run, pageType string) *Run {
	for i := range runs {
		if runBrowseEndpoint(&runs[i]).pageType() == pageType {
			return &runs[i]
		}
	}
	return nil
}

// findRunWithBrowse returns the first run with any browse target.
func findRunWithBrowse(runs []Run) *Run {
	for i := range runs {
		if runBrowseEndpoint(&runs[i]) != nil {
			return &runs[i]
		}
	}
	return nil
}

// plainTextRuns filters out runs that navigate somewhere and pure separator
// glyphs (bullets, whitespace).
func plainTextRuns(runs []Run) []Run {
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		if r.NavigationEndpoint != nil {
			continue
		}
		t := strings.TrimSpace(r.Text)
		if t == "" || t == "•" {
			continue
		}
		out = append(out, r)
	}
	return out
}

func runBrowseEndpoint(r *Run) *BrowseEndpoint {
	if r == nil || r.NavigationEndpoint == nil {
		return nil
	}
	return r.NavigationEndpoint.BrowseEndpoint
}

func runText(r *Run) string {
	if r == nil {
		return ""
	}
	return r.Text
}

func runBrowseID(r *Run) string {
	if be := runBrowseEndpoint(r); be != nil {
		return be.BrowseID
	}
	return ""
}

func firstRunText(runs []Run) string {
	if len(runs) == 0 {
		return ""
	}
	return runs[0].Text
}

// thumbnailsOf copies the item's thumbnail list, preserving order. Always
// returns a non-nil slice so the output serializes as [].
func thumbnailsOf(item *ListItem) []Thumbnail {
	if item == nil {
		return []Thumbnail{}
	}
	return copyThumbnails(item.Thumbnail.MusicThumbnailRenderer.Thumbnail.Thumbnails)
}

func copyThumbnails(src []Thumbnail) []Thumbnail {
	out := make([]Thumbnail, len(src))
	copy(out, src)
	return out
}

func playNavigationEndpoint(item *ListItem) *NavigationEndpoint {
	if item == nil {
		return nil
	}
	return item.Overlay.MusicItemThumbnailOverlayRenderer.Content.MusicPlayButtonRenderer.PlayNavigationEndpoint
}

// videoIDOf looks for a video id in the three places the upstream response
// may put it, in fixed precedence: the playlist item data, the play-button
// overlay's watch target, then the first run of column 0.
func videoIDOf(item *ListItem) string {
	if item == nil {
		return ""
	}
	if item.PlaylistItemData.VideoID != "" {
		return item.PlaylistItemData.VideoID
	}
	if pe := playNavigationEndpoint(item); pe != nil && pe.WatchEndpoint != nil && pe.WatchEndpoint.VideoID != "" {
		return pe.WatchEndpoint.VideoID
	}
	if runs := columnRuns(item, 0); len(runs) > 0 && runs[0].NavigationEndpoint != nil && runs[0].NavigationEndpoint.WatchEndpoint != nil {
		return runs[0].NavigationEndpoint.WatchEndpoint.VideoID
	}
	return ""
}

// playlistIDOf reads the play-button overlay: a dedicated watch-playlist
// target first, else the playlist id on its generic watch target.
func playlistIDOf(item *ListItem) string {
	pe := playNavigationEndpoint(item)
	if pe == nil {
		return ""
	}
	if pe.WatchPlaylistEndpoint != nil && pe.WatchPlaylistEndpoint.PlaylistID != "" {
		return pe.WatchPlaylistEndpoint.PlaylistID
	}
	if pe.WatchEndpoint != nil {
		return pe.WatchEndpoint.PlaylistID
	}
	return ""
}

// browseIDOf returns the item's own browse target id.
func browseIDOf(item *ListItem) string {
	if item == nil || item.NavigationEndpoint == nil || item.NavigationEndpoint.BrowseEndpoint == nil {
		return ""
	}
	return item.NavigationEndpoint.BrowseEndpoint.BrowseID
}
