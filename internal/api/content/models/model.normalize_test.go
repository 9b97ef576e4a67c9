package contentmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestReelNormalizeLegacySingleVideo(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"key":     KeyReel,
		"videoId": "dQw4w9WgXcQ",
		"titulo":  "Mi reel",
	})
	require.NoError(t, err)

	var reel Reel
	require.NoError(t, bson.Unmarshal(raw, &reel))

	normalized := reel.Normalize()
	require.Len(t, normalized.Playlist, 1)
	assert.Equal(t, "dQw4w9WgXcQ", normalized.Playlist[0].VideoID)
	assert.Equal(t, "Mi reel", normalized.Playlist[0].Title)
	assert.Empty(t, normalized.Playlist[0].ID)
	assert.Empty(t, normalized.LegacyVideoID)
}

func TestReelNormalizePlaylistWinsOverLegacy(t *testing.T) {
	reel := Reel{
		Playlist:      []ReelVideo{{ID: "a", VideoID: "AAAAAAAAAAA"}},
		LegacyVideoID: "BBBBBBBBBBB",
	}
	normalized := reel.Normalize()
	require.Len(t, normalized.Playlist, 1)
	assert.Equal(t, "AAAAAAAAAAA", normalized.Playlist[0].VideoID)
}

func TestReelNormalizeEmpty(t *testing.T) {
	normalized := (&Reel{Key: KeyReel}).Normalize()
	assert.NotNil(t, normalized.Playlist)
	assert.Empty(t, normalized.Playlist)
}

func TestMusicNormalizeLegacyItemsField(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"key": KeyMusica,
		"items": []bson.M{
			{"titulo": "Canción", "url_audio": "https://cdn/x.mp3"},
		},
	})
	require.NoError(t, err)

	var music Music
	require.NoError(t, bson.Unmarshal(raw, &music))

	normalized := music.Normalize()
	require.Len(t, normalized.ListaCanciones, 1)
	assert.Equal(t, "Canción", normalized.ListaCanciones[0].Titulo)
	assert.Nil(t, normalized.LegacyItems)
}

func TestMusicNormalizeCanonicalWinsOverLegacy(t *testing.T) {
	music := Music{
		ListaCanciones: []Song{{ID: "1", Titulo: "nueva"}},
		LegacyItems:    []Song{{Titulo: "vieja"}},
	}
	normalized := music.Normalize()
	require.Len(t, normalized.ListaCanciones, 1)
	assert.Equal(t, "nueva", normalized.ListaCanciones[0].Titulo)
}

func TestCoverURLDecodesString(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"titulo":      "t",
		"url_audio":   "u",
		"url_portada": "https://cdn/cover.png",
	})
	require.NoError(t, err)

	var song Song
	require.NoError(t, bson.Unmarshal(raw, &song))
	assert.Equal(t, "https://cdn/cover.png", song.URLPortada.String())
}

func TestCoverURLDecodesUploadObject(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"titulo":    "t",
		"url_audio": "u",
		"url_portada": bson.M{
			"secure_url": "https://cdn/secure.png",
			"url":        "http://cdn/plain.png",
			"public_id":  "abc",
		},
	})
	require.NoError(t, err)

	var song Song
	require.NoError(t, bson.Unmarshal(raw, &song))
	assert.Equal(t, "https://cdn/secure.png", song.URLPortada.String())
}

func TestCoverURLEncodesAsString(t *testing.T) {
	song := Song{Titulo: "t", URLAudio: "u", URLPortada: "https://cdn/c.png"}
	raw, err := bson.Marshal(song)
	require.NoError(t, err)

	var decoded bson.M
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, "https://cdn/c.png", decoded["url_portada"])
}
