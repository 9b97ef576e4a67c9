package contentsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveYouTubeID(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"share link", "https://youtu.be/dQw4w9WgXcQ"},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"shorts URL", "https://www.youtube.com/shorts/dQw4w9WgXcQ"},
		{"watch URL with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s"},
		{"share link with query", "https://youtu.be/dQw4w9WgXcQ?si=abc123"},
		{"raw id", "dQw4w9WgXcQ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ResolveYouTubeID(tc.url)
			require.NoError(t, err)
			assert.Equal(t, "dQw4w9WgXcQ", id)
		})
	}
}

func TestResolveYouTubeIDRejects(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"unrelated URL", "https://example.com/watch?v=dQw4w9WgXcQQQQ"},
		{"too short id", "https://youtu.be/abc"},
		{"empty", ""},
		{"plain text", "not a url at all"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveYouTubeID(tc.url)
			assert.Error(t, err)
		})
	}
}
