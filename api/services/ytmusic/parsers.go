package ytmusic

import "strings"

// Category normalizers. Each one is a pure function from a raw list item to
// a flat record with every field populated, "" where the upstream response
// had nothing. Secondary attributes live in column 1 as an undifferentiated
// run list, so they are picked out by page type where the upstream tags
// them and by content heuristics where it doesn't.

func parseSong(item *ListItem) Song {
	col1 := columnRuns(item, 1)
	artistRun := findRunByPageType(col1, pageTypeArtist)
	albumRun := findRunByPageType(col1, pageTypeAlbum)

	return Song{
		Type:       "song",
		Title:      firstRunText(columnRuns(item, 0)),
		VideoID:    videoIDOf(item),
		Artist:     runText(artistRun),
		ArtistID:   runBrowseID(artistRun),
		Album:      runText(albumRun),
		AlbumID:    runBrowseID(albumRun),
		Duration:   lastDurationText(plainTextRuns(col1)),
		Plays:      columnText(item, 2),
		Thumbnails: thumbnailsOf(item),
	}
}

func parseVideo(item *ListItem) Video {
	col1 := columnRuns(item, 1)
	channelRun := findRunByPageType(col1, pageTypeUserChannel)
	if channelRun == nil {
		channelRun = findRunByPageType(col1, pageTypeArtist)
	}
	plain := plainTextRuns(col1)

	var views string
	for _, r := range plain {
		t := strings.ToLower(r.Text)
		if strings.Contains(t, "view") || strings.Contains(t, "play") {
			views = r.Text
			break
		}
	}

	return Video{
		Type:       "video",
		Title:      firstRunText(columnRuns(item, 0)),
		VideoID:    videoIDOf(item),
		Channel:    runText(channelRun),
		ChannelID:  runBrowseID(channelRun),
		Views:      views,
		Duration:   lastDurationText(plain),
		Thumbnails: thumbnailsOf(item),
	}
}

func parseArtist(item *ListItem) Artist {
	// Column 1 reads "Artist • 1.2M subscribers"; the audience figure is the
	// first plain run that isn't the literal category label.
	var subscribers string
	for _, r := range plainTextRuns(columnRuns(item, 1)) {
		if r.Text != "Artist" {
			subscribers = r.Text
			break
		}
	}

	return Artist{
		Type:        "artist",
		Name:        firstRunText(columnRuns(item, 0)),
		BrowseID:    browseIDOf(item),
		Subscribers: subscribers,
		Thumbnails:  thumbnailsOf(item),
	}
}

func parseAlbum(item *ListItem) Album {
	col1 := columnRuns(item, 1)
	artistRun := findRunByPageType(col1, pageTypeArtist)
	plain := plainTextRuns(col1)

	// Column 1 reads "Album • Artist • 2020": kind first, year last.
	var albumType, year string
	if len(plain) > 0 {
		albumType = plain[0].Text
		year = plain[len(plain)-1].Text
	}

	return Album{
		Type:       "album",
		Title:      firstRunText(columnRuns(item, 0)),
		BrowseID:   browseIDOf(item),
		AlbumType:  albumType,
		Artist:     runText(artistRun),
		ArtistID:   runBrowseID(artistRun),
		Year:       year,
		PlaylistID: playlistIDOf(item),
		Thumbnails: thumbnailsOf(item),
	}
}

func parsePodcast(item *ListItem) Podcast {
	publisherRun := findRunWithBrowse(columnRuns(item, 1))

	return Podcast{
		Type:        "podcast",
		Title:       firstRunText(columnRuns(item, 0)),
		BrowseID:    browseIDOf(item),
		Publisher:   runText(publisherRun),
		PublisherID: runBrowseID(publisherRun),
		PlaylistID:  playlistIDOf(item),
		Thumbnails:  thumbnailsOf(item),
	}
}

func parsePodcastEpisode(item *ListItem) PodcastEpisode {
	col0 := columnRuns(item, 0)
	col1 := columnRuns(item, 1)
	showRun := findRunByPageType(col1, pageTypePodcastShow)

	// Episodes link their own browse page from the title run, not from the
	// item renderer.
	var browseID string
	if len(col0) > 0 {
		browseID = runBrowseID(&col0[0])
	}

	var date string
	if plain := plainTextRuns(col1); len(plain) > 0 {
		date = plain[0].Text
	}

	return PodcastEpisode{
		Type:       "podcast_episode",
		Title:      firstRunText(col0),
		BrowseID:   browseID,
		VideoID:    videoIDOf(item),
		Date:       date,
		Show:       runText(showRun),
		ShowID:     runBrowseID(showRun),
		Thumbnails: thumbnailsOf(item),
	}
}

func parseProfile(item *ListItem) Profile {
	var handle string
	for _, r := range plainTextRuns(columnRuns(item, 1)) {
		if strings.HasPrefix(r.Text, "@") {
			handle = r.Text
			break
		}
	}

	return Profile{
		Type:       "profile",
		Name:       firstRunText(columnRuns(item, 0)),
		BrowseID:   browseIDOf(item),
		Handle:     handle,
		Thumbnails: thumbnailsOf(item),
	}
}

func parseCommunityPlaylist(item *ListItem) CommunityPlaylist {
	col1 := columnRuns(item, 1)
	creatorRun := findRunWithBrowse(col1)

	var views string
	for _, r := range plainTextRuns(col1) {
		if strings.Contains(strings.ToLower(r.Text), "view") {
			views = r.Text
			break
		}
	}

	return CommunityPlaylist{
		Type:       "community_playlist",
		Title:      firstRunText(columnRuns(item, 0)),
		BrowseID:   browseIDOf(item),
		Creator:    runText(creatorRun),
		CreatorID:  runBrowseID(creatorRun),
		Views:      views,
		PlaylistID: playlistIDOf(item),
		Thumbnails: thumbnailsOf(item),
	}
}

// lastDurationText returns the last plain run that looks like a time.
func lastDurationText(plain []Run) string {
	for i := len(plain) - 1; i >= 0; i-- {
		if strings.Contains(plain[i].Text, ":") {
			return plain[i].Text
		}
	}
	return ""
}

// parsersByType dispatches a detected category to its normalizer. Every
// SearchType except TypeAll must have an entry here; detection results and
// filtered searches both index into it.
var parsersByType = map[SearchType]func(*ListItem) any{
	TypeSongs:              func(i *ListItem) any { return parseSong(i) },
	TypeVideos:             func(i *ListItem) any { return parseVideo(i) },
	TypeArtists:            func(i *ListItem) any { return parseArtist(i) },
	TypeAlbums:             func(i *ListItem) any { return parseAlbum(i) },
	TypePodcasts:           func(i *ListItem) any { return parsePodcast(i) },
	TypePodcastEpisodes:    func(i *ListItem) any { return parsePodcastEpisode(i) },
	TypeProfiles:           func(i *ListItem) any { return parseProfile(i) },
	TypeCommunityPlaylists: func(i *ListItem) any { return parseCommunityPlaylist(i) },
}

// parseTopResult normalizes the best-match card. The card states its own
// kind only in prose, so the coarse type comes from the subtitle's first
// word. Nested secondary matches go through shape detection and the regular
// normalizers.
func parseTopResult(card *CardShelf) *TopResult {
	subtitleRuns := card.Subtitle.Runs

	var firstWord string
	if len(subtitleRuns) > 0 {
		firstWord = strings.ToLower(subtitleRuns[0].Text)
	}

	resultType := "unknown"
	switch {
	case strings.Contains(firstWord, "song"):
		resultType = "song"
	case strings.Contains(firstWord, "video"):
		resultType = "video"
	case strings.Contains(firstWord, "artist"):
		resultType = "artist"
	case strings.Contains(firstWord, "album"):
		resultType = "album"
	case strings.Contains(firstWord, "playlist"):
		resultType = "community_playlist"
	}

	top := &TopResult{
		Type:       resultType,
		Title:      joinRuns(card.Title.Runs),
		Subtitle:   joinRuns(subtitleRuns),
		Thumbnails: copyThumbnails(card.Thumbnail.MusicThumbnailRenderer.Thumbnail.Thumbnails),
	}
	if card.OnTap.WatchEndpoint != nil {
		top.VideoID = card.OnTap.WatchEndpoint.VideoID
	}
	if card.OnTap.BrowseEndpoint != nil {
		top.BrowseID = card.OnTap.BrowseEndpoint.BrowseID
	}

	for _, content := range card.Contents {
		item := content.MusicResponsiveListItemRenderer
		if item == nil {
			continue
		}
		if parse, ok := parsersByType[detectTypeFromItem(item)]; ok {
			top.More = append(top.More, parse(item))
		}
	}

	return top
}

// ParseSearchResponse walks the raw search response's section list once and
// assembles the normalized result set. Absent or empty paths yield
// {results: []}; items whose category cannot be resolved are dropped.
func ParseSearchResponse(res *SearchResponse, searchType SearchType) SearchResult {
	out := SearchResult{Results: []any{}}
	if res == nil {
		return out
	}

	tabs := res.Contents.TabbedSearchResultsRenderer.Tabs
	if len(tabs) == 0 {
		return out
	}

	for _, section := range tabs[0].TabRenderer.Content.SectionListRenderer.Contents {
		if section.MusicCardShelfRenderer != nil {
			out.TopResult = parseTopResult(section.MusicCardShelfRenderer)
			continue
		}

		shelf := section.MusicShelfRenderer
		if shelf == nil {
			continue
		}
		shelfTitle := joinRuns(shelf.Title.Runs)

		for _, content := range shelf.Contents {
			item := content.MusicResponsiveListItemRenderer
			if item == nil {
				continue
			}

			// Filtered searches already fix the category; mixed results are
			// classified by shelf title first, item shape second.
			itemType := searchType
			if searchType == TypeAll {
				itemType = detectTypeFromShelfTitle(shelfTitle)
				if itemType == "" {
					itemType = detectTypeFromItem(item)
				}
			}

			if parse, ok := parsersByType[itemType]; ok {
				out.Results = append(out.Results, parse(item))
			}
		}
	}

	return out
}
