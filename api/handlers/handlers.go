package handlers

import (
	"context"

	"github.com/w3Abhishek/ytm-api/api/services/ytmusic"
)

// MusicService is the slice of the YouTube Music client the handlers need.
type MusicService interface {
	Search(ctx context.Context, query string, searchType ytmusic.SearchType) (*ytmusic.SearchResponse, error)
	GetLyrics(ctx context.Context, videoID string) (ytmusic.LyricsResult, error)
}

type Handler struct {
	music MusicService
}

func New(music MusicService) *Handler {
	return &Handler{music: music}
}
