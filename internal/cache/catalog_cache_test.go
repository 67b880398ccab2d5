package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A nil cache is the disabled state; every method must be safe on it.
func TestNilCacheIsDisabled(t *testing.T) {
	var c *CatalogCache

	var dest map[string]string
	assert.False(t, c.Get(context.Background(), "catalog:album:abc123", &dest))

	c.Set(context.Background(), "catalog:album:abc123", map[string]string{"name": "Abbey Road"})

	assert.NoError(t, c.Close())
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("not-a-redis-url", 0)
	assert.Error(t, err)
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "catalog:album:abc123", AlbumKey("abc123"))
	assert.Equal(t, "catalog:artist:artist1", ArtistKey("artist1"))
	assert.Equal(t, "catalog:artist:artist1:albums:20", ArtistAlbumsKey("artist1", 20))
	assert.Equal(t, "catalog:search:album:abbey road:0", SearchKey("album", "abbey road", 0))
}
