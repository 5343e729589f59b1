package ytmusic

// Normalized output records. Every field carries a JSON tag without
// omitempty: the output schema is total, so consumers always see the same
// keys no matter which fields the upstream response happened to include.

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Song struct {
	Type       string      `json:"type"`
	Title      string      `json:"title"`
	VideoID    string      `json:"videoId"`
	Artist     string      `json:"artist"`
	ArtistID   string      `json:"artistId"`
	Album      string      `json:"album"`
	AlbumID    string      `json:"albumId"`
	Duration   string      `json:"duration"`
	Plays      string      `json:"plays"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

type Video struct {
	Type       string      `json:"type"`
	Title      string      `json:"title"`
	VideoID    string      `json:"videoId"`
	Channel    string      `json:"channel"`
	ChannelID  string      `json:"channelId"`
	Views      string      `json:"views"`
	Duration   string      `json:"duration"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

type Artist struct {
	Type        string      `json:"type"`
	Name        string      `json:"name"`
	BrowseID    string      `json:"browseId"`
	Subscribers string      `json:"subscribers"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
}

type Album struct {
	Type       string      `json:"type"`
	Title      string      `json:"title"`
	BrowseID   string      `json:"browseId"`
	AlbumType  string      `json:"albumType"`
	Artist     string      `json:"artist"`
	ArtistID   string      `json:"artistId"`
	Year       string      `json:"year"`
	PlaylistID string      `json:"playlistId"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

type Podcast struct {
	Type        string      `json:"type"`
	Title       string      `json:"title"`
	BrowseID    string      `json:"browseId"`
	Publisher   string      `json:"publisher"`
	PublisherID string      `json:"publisherId"`
	PlaylistID  string      `json:"playlistId"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
}

type PodcastEpisode struct {
	Type       string      `json:"type"`
	Title      string      `json:"title"`
	BrowseID   string      `json:"browseId"`
	VideoID    string      `json:"videoId"`
	Date       string      `json:"date"`
	Show       string      `json:"show"`
	ShowID     string      `json:"showId"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

type Profile struct {
	Type       string      `json:"type"`
	Name       string      `json:"name"`
	BrowseID   string      `json:"browseId"`
	Handle     string      `json:"handle"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

type CommunityPlaylist struct {
	Type       string      `json:"type"`
	Title      string      `json:"title"`
	BrowseID   string      `json:"browseId"`
	Creator    string      `json:"creator"`
	CreatorID  string      `json:"creatorId"`
	Views      string      `json:"views"`
	PlaylistID string      `json:"playlistId"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

// TopResult is the normalized best-match card. More holds the card's nested
// secondary matches and is omitted when empty.
type TopResult struct {
	Type       string      `json:"type"`
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle"`
	VideoID    string      `json:"videoId"`
	BrowseID   string      `json:"browseId"`
	Thumbnails []Thumbnail `json:"thumbnails"`
	More       []any       `json:"more,omitempty"`
}

// SearchResult is the normalized search response. Results is always present,
// possibly empty; TopResult only when the upstream response carried a card.
type SearchResult struct {
	TopResult *TopResult `json:"topResult,omitempty"`
	Results   []any      `json:"results"`
}

// LyricsResult reports both lyrics steps; either value can be empty without
// the lookup having failed.
type LyricsResult struct {
	Lyrics   string `json:"lyrics"`
	BrowseID string `json:"browseId"`
}
