package contentmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Clip is one entry of the video-clips section.
type Clip struct {
	ID        string   `json:"id" bson:"id,omitempty"`
	Titulo    string   `json:"titulo" bson:"titulo"`
	URL       string   `json:"url" bson:"url"`
	Thumbnail CoverURL `json:"thumbnail" bson:"thumbnail,omitempty"`
	Fecha     int64    `json:"fecha" bson:"fecha,omitempty"`
}

// Videos is the contenido/videos document. The clip list is unordered.
type Videos struct {
	ID  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Key string             `json:"-" bson:"key"`

	Items []Clip `json:"items" bson:"items,omitempty"`

	CreatedAt int64 `json:"-" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Normalize guarantees a non-nil clip slice.
func (v *Videos) Normalize() *Videos {
	out := *v
	if out.Items == nil {
		out.Items = []Clip{}
	}
	return &out
}
