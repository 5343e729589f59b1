package handlers

import "github.com/w3Abhishek/ytm-api/api/services/ytmusic"

type SearchResponse struct {
	Success   bool               `json:"success"`
	Query     string             `json:"query"`
	Type      string             `json:"type"`
	TopResult *ytmusic.TopResult `json:"topResult,omitempty"`
	Results   []any              `json:"results"`
}

type LyricsResponse struct {
	Success  bool   `json:"success"`
	VideoID  string `json:"videoId"`
	BrowseID string `json:"browseId"`
	Lyrics   string `json:"lyrics"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	VideoID string `json:"videoId,omitempty"`
}
