package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrCatalogUnavailable wraps every upstream failure: non-2xx responses,
// transport errors and malformed JSON alike.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

const (
	// Spotify's public rate limit is a rolling window; a small steady
	// budget keeps us well under it.
	rateLimit = 10
	rateBurst = 20

	searchPageSize       = 20
	artistAlbumsPageSize = 10

	// Albums with fewer tracks are singles/EPs and are filtered out.
	minAlbumTracks = 4
)

// Client wraps the Spotify Web API behind the handful of lookups the
// application needs, shaping every response into the normalized types.
type Client struct {
	baseURL     string
	tokens      *TokenProvider
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a Spotify API client. The token provider is injected so
// tests can seed it and so the token cache outlives individual requests.
func NewClient(baseURL string, tokens *TokenProvider) *Client {
	return &Client{
		baseURL:     baseURL,
		tokens:      tokens,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// GetAlbum fetches a single album with its tracklist.
func (c *Client) GetAlbum(ctx context.Context, albumID string) (*Album, error) {
	var raw apiAlbum
	if err := c.doRequest(ctx, "/albums/"+albumID, nil, &raw); err != nil {
		return nil, err
	}

	album := &Album{
		ID:          raw.ID,
		Name:        raw.Name,
		ImageURL:    firstImage(raw.Images),
		ReleaseYear: releaseYear(raw.ReleaseDate),
		Tracks:      make([]Track, 0, len(raw.Tracks.Items)),
		Artists:     make([]ArtistRef, 0, len(raw.Artists)),
	}
	for _, t := range raw.Tracks.Items {
		album.Tracks = append(album.Tracks, Track{Name: t.Name, DurationMS: t.DurationMS})
	}
	for _, a := range raw.Artists {
		album.Artists = append(album.Artists, ArtistRef{ID: a.ID, Name: a.Name})
	}
	return album, nil
}

// GetArtist fetches a single artist.
func (c *Client) GetArtist(ctx context.Context, artistID string) (*Artist, error) {
	var raw apiArtist
	if err := c.doRequest(ctx, "/artists/"+artistID, nil, &raw); err != nil {
		return nil, err
	}

	return &Artist{
		ID:          raw.ID,
		Name:        raw.Name,
		ImageURL:    firstImage(raw.Images),
		SpotifyLink: raw.ExternalURLs["spotify"],
		Genres:      raw.Genres,
	}, nil
}

// GetArtistAlbums fetches a page of the artist's own releases, dropping
// anything with fewer than four tracks and releases the artist only
// appears on.
func (c *Client) GetArtistAlbums(ctx context.Context, artistID string, offset int) ([]AlbumSummary, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", artistAlbumsPageSize))
	params.Set("offset", fmt.Sprintf("%d", offset))

	var raw apiAlbumPage
	if err := c.doRequest(ctx, "/artists/"+artistID+"/albums", params, &raw); err != nil {
		return nil, err
	}

	albums := make([]AlbumSummary, 0, len(raw.Items))
	for _, item := range raw.Items {
		if item.TotalTracks < minAlbumTracks || !hasArtist(item.Artists, artistID) {
			continue
		}
		albums = append(albums, summarize(item))
	}
	return albums, nil
}

// SearchAlbums runs a free-text album search, dropping albums with fewer
// than four tracks.
func (c *Client) SearchAlbums(ctx context.Context, query string, offset int) ([]AlbumSummary, error) {
	raw, err := c.search(ctx, query, "album", offset)
	if err != nil {
		return nil, err
	}
	if raw.Albums == nil {
		return nil, fmt.Errorf("%w: search response missing albums", ErrCatalogUnavailable)
	}

	albums := make([]AlbumSummary, 0, len(raw.Albums.Items))
	for _, item := range raw.Albums.Items {
		if item.TotalTracks < minAlbumTracks {
			continue
		}
		summary := summarize(item)
		// Search cards prefer the medium-size cover when one exists
		summary.ImageURL = mediumImage(item.Images)
		albums = append(albums, summary)
	}
	return albums, nil
}

// SearchArtists runs a free-text artist search, dropping artists without
// artwork.
func (c *Client) SearchArtists(ctx context.Context, query string, offset int) ([]ArtistSummary, error) {
	raw, err := c.search(ctx, query, "artist", offset)
	if err != nil {
		return nil, err
	}
	if raw.Artists == nil {
		return nil, fmt.Errorf("%w: search response missing artists", ErrCatalogUnavailable)
	}

	artists := make([]ArtistSummary, 0, len(raw.Artists.Items))
	for _, item := range raw.Artists.Items {
		if len(item.Images) == 0 {
			continue
		}
		artists = append(artists, ArtistSummary{
			ID:       item.ID,
			Name:     item.Name,
			ImageURL: item.Images[0].URL,
		})
	}
	return artists, nil
}

func (c *Client) search(ctx context.Context, query, searchType string, offset int) (*apiSearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", searchType)
	params.Set("limit", fmt.Sprintf("%d", searchPageSize))
	params.Set("offset", fmt.Sprintf("%d", offset))

	var raw apiSearchResponse
	if err := c.doRequest(ctx, "/search", params, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// doRequest performs a bearer-authenticated GET against the catalog,
// refreshing the token first when needed. No retries: an expired-mid-flight
// token surfaces as an upstream error.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	token, err := c.tokens.EnsureValid(ctx)
	if err != nil {
		return err
	}

	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: catalog returned HTTP %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to parse response: %v", ErrCatalogUnavailable, err)
	}
	return nil
}

func summarize(item apiAlbum) AlbumSummary {
	summary := AlbumSummary{
		ID:          item.ID,
		Name:        item.Name,
		ImageURL:    firstImage(item.Images),
		ReleaseYear: releaseYear(item.ReleaseDate),
	}
	if len(item.Artists) > 0 {
		summary.ArtistName = item.Artists[0].Name
		summary.ArtistID = item.Artists[0].ID
	}
	return summary
}

func firstImage(images []apiImage) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

// mediumImage returns the second image (Spotify orders covers large to
// small), falling back to whatever is available.
func mediumImage(images []apiImage) string {
	if len(images) > 1 {
		return images[1].URL
	}
	return firstImage(images)
}

func hasArtist(artists []apiArtistRef, artistID string) bool {
	for _, a := range artists {
		if a.ID == artistID {
			return true
		}
	}
	return false
}

// releaseYear keeps only the year from Spotify's release_date, which can be
// "2006", "2006-05" or "2006-05-12".
func releaseYear(releaseDate string) string {
	if len(releaseDate) >= 4 {
		return releaseDate[:4]
	}
	return releaseDate
}
