package etag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type version string

func (v version) V() string { return string(v) }

func TestHeaderRoundTrip(t *testing.T) {
	h := Header(version("abc"))
	assert.Equal(t, `"v:abc"`, h)

	v, err := ParseETag(h)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestParseETagRejectsForeignTags(t *testing.T) {
	_, err := ParseETag(`"xyz"`)
	assert.Error(t, err)
}

func TestMatches(t *testing.T) {
	obj := version("abc")

	assert.True(t, Matches(`"v:abc"`, obj))
	assert.True(t, Matches(`W/"v:abc"`, obj))
	assert.True(t, Matches(`"v:old", "v:abc"`, obj))
	assert.True(t, Matches(`*`, obj))
	assert.False(t, Matches(`"v:old"`, obj))
	assert.False(t, Matches(``, obj))
}
