package contentmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Song is one track of the music section.
type Song struct {
	ID         string   `json:"id" bson:"id,omitempty"`
	Titulo     string   `json:"titulo" bson:"titulo"`
	Artista    string   `json:"artista" bson:"artista,omitempty"`
	URLAudio   string   `json:"url_audio" bson:"url_audio"`
	URLPortada CoverURL `json:"url_portada" bson:"url_portada,omitempty"`
}

// Music is the contenido/musica document. Early documents stored the
// track list under items; Normalize folds both field names into
// ListaCanciones.
type Music struct {
	ID  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Key string             `json:"-" bson:"key"`

	ListaCanciones []Song `json:"listaCanciones" bson:"listaCanciones,omitempty"`

	// Legacy field name, read-only.
	LegacyItems []Song `json:"-" bson:"items,omitempty"`

	CreatedAt int64 `json:"-" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Normalize returns the canonical track-list view. Legacy items only
// count when the canonical field is empty.
func (m *Music) Normalize() *Music {
	out := *m
	if len(out.ListaCanciones) == 0 && len(out.LegacyItems) > 0 {
		out.ListaCanciones = out.LegacyItems
	}
	if out.ListaCanciones == nil {
		out.ListaCanciones = []Song{}
	}
	out.LegacyItems = nil
	return &out
}
