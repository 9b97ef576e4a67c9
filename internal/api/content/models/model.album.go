package contentmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Album is one photo album document. Photos are plain URLs, so the array
// mutations use whole-value equality.
type Album struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	Titulo  string   `json:"titulo" bson:"titulo"`
	Portada CoverURL `json:"portada" bson:"portada,omitempty"`
	Fotos   []string `json:"fotos" bson:"fotos,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Short is one short-film document.
type Short struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	Titulo  string `json:"titulo" bson:"titulo"`
	VideoID string `json:"videoId" bson:"videoId"`
	Fecha   int64  `json:"fecha" bson:"fecha,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt,omitempty"`
}
