package spotify

// Normalized shapes returned by the client. These are the only album/artist
// schemas used anywhere in the application.

type Album struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ImageURL    string      `json:"image_url"`
	ReleaseYear string      `json:"release_year"`
	Tracks      []Track     `json:"tracks"`
	Artists     []ArtistRef `json:"artists"`
}

type Track struct {
	Name       string `json:"name"`
	DurationMS int    `json:"duration_ms"`
}

type ArtistRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Artist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ImageURL    string   `json:"image_url"`
	SpotifyLink string   `json:"spotify_link"`
	Genres      []string `json:"genres"`
}

// AlbumSummary is the shape used by search results and artist discographies.
type AlbumSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	ReleaseYear string `json:"release_year"`
	ArtistName  string `json:"artist_name"`
	ArtistID    string `json:"artist_id"`
}

type ArtistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Raw upstream payloads, decoded then shaped into the types above.

type apiImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type apiArtistRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type apiTrack struct {
	Name       string `json:"name"`
	DurationMS int    `json:"duration_ms"`
}

type apiAlbum struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Images      []apiImage     `json:"images"`
	Artists     []apiArtistRef `json:"artists"`
	ReleaseDate string         `json:"release_date"`
	TotalTracks int            `json:"total_tracks"`
	Tracks      struct {
		Items []apiTrack `json:"items"`
	} `json:"tracks"`
}

type apiArtist struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Images       []apiImage        `json:"images"`
	Genres       []string          `json:"genres"`
	ExternalURLs map[string]string `json:"external_urls"`
}

type apiAlbumPage struct {
	Items []apiAlbum `json:"items"`
}

type apiArtistPage struct {
	Items []apiArtist `json:"items"`
}

type apiSearchResponse struct {
	Albums  *apiAlbumPage  `json:"albums"`
	Artists *apiArtistPage `json:"artists"`
}
