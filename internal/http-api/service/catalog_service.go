package service

import (
	"context"

	"albumrater/internal/cache"
	"albumrater/internal/spotify"
)

// AlbumFetcher is the narrow catalog dependency the rating service needs.
type AlbumFetcher interface {
	GetAlbum(ctx context.Context, albumID string) (*spotify.Album, error)
}

// CatalogService fronts the Spotify client with a Redis cache. Cache misses
// fall through to the client; cache failures never fail a request.
type CatalogService interface {
	AlbumFetcher
	GetArtist(ctx context.Context, artistID string) (*spotify.Artist, error)
	GetArtistAlbums(ctx context.Context, artistID string, offset int) ([]spotify.AlbumSummary, error)
	SearchAlbums(ctx context.Context, query string, offset int) ([]spotify.AlbumSummary, error)
	SearchArtists(ctx context.Context, query string, offset int) ([]spotify.ArtistSummary, error)
}

type catalogService struct {
	client *spotify.Client
	cache  *cache.CatalogCache
}

// NewCatalogService wraps the Spotify client. catalogCache may be nil, which
// disables caching entirely.
func NewCatalogService(client *spotify.Client, catalogCache *cache.CatalogCache) CatalogService {
	return &catalogService{
		client: client,
		cache:  catalogCache,
	}
}

func (s *catalogService) GetAlbum(ctx context.Context, albumID string) (*spotify.Album, error) {
	key := cache.AlbumKey(albumID)
	var cached spotify.Album
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	album, err := s.client.GetAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, album)
	return album, nil
}

func (s *catalogService) GetArtist(ctx context.Context, artistID string) (*spotify.Artist, error) {
	key := cache.ArtistKey(artistID)
	var cached spotify.Artist
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	artist, err := s.client.GetArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, artist)
	return artist, nil
}

func (s *catalogService) GetArtistAlbums(ctx context.Context, artistID string, offset int) ([]spotify.AlbumSummary, error) {
	key := cache.ArtistAlbumsKey(artistID, offset)
	var cached []spotify.AlbumSummary
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	albums, err := s.client.GetArtistAlbums(ctx, artistID, offset)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, albums)
	return albums, nil
}

func (s *catalogService) SearchAlbums(ctx context.Context, query string, offset int) ([]spotify.AlbumSummary, error) {
	key := cache.SearchKey("album", query, offset)
	var cached []spotify.AlbumSummary
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	albums, err := s.client.SearchAlbums(ctx, query, offset)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, albums)
	return albums, nil
}

func (s *catalogService) SearchArtists(ctx context.Context, query string, offset int) ([]spotify.ArtistSummary, error) {
	key := cache.SearchKey("artist", query, offset)
	var cached []spotify.ArtistSummary
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	artists, err := s.client.SearchArtists(ctx, query, offset)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, artists)
	return artists, nil
}
