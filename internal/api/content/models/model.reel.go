package contentmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// ReelVideo is one entry of the reel playlist.
type ReelVideo struct {
	ID      string `json:"id" bson:"id,omitempty"`
	Title   string `json:"title" bson:"title,omitempty"`
	VideoID string `json:"videoId" bson:"videoId"`
	AddedAt int64  `json:"addedAt" bson:"addedAt,omitempty"`
}

// Reel is the contenido/reel document. The first generation of the site
// stored a single video as top-level videoId/titulo; Normalize folds that
// shape into the playlist so nothing downstream branches on it.
type Reel struct {
	ID  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Key string             `json:"-" bson:"key"`

	Playlist []ReelVideo `json:"playlist" bson:"playlist,omitempty"`

	// Legacy single-video shape, read-only.
	LegacyVideoID string `json:"-" bson:"videoId,omitempty"`
	LegacyTitle   string `json:"-" bson:"titulo,omitempty"`

	CreatedAt int64 `json:"-" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Normalize returns the canonical playlist view. The legacy single video
// only counts when the playlist itself is empty; its element id stays
// empty, which routes removals through the legacy path.
func (r *Reel) Normalize() *Reel {
	out := *r
	if len(out.Playlist) == 0 && out.LegacyVideoID != "" {
		out.Playlist = []ReelVideo{{
			Title:   out.LegacyTitle,
			VideoID: out.LegacyVideoID,
		}}
	}
	if out.Playlist == nil {
		out.Playlist = []ReelVideo{}
	}
	out.LegacyVideoID = ""
	out.LegacyTitle = ""
	return &out
}
