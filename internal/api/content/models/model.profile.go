package contentmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Singleton document keys. Each singleton lives in its collection under a
// fixed key; there is at most one document per key.
const (
	KeyInicio = "inicio"
	KeyTheme  = "theme"
	KeyReel   = "reel"
	KeyMusica = "musica"
	KeyVideos = "videos"
)

// SiteProfile is the landing-page identity block (web/inicio). Updates
// are merge-upserts: the panel saves only the fields its form owns.
type SiteProfile struct {
	ID  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Key string             `json:"-" bson:"key"`

	Titulo            string   `json:"titulo" bson:"titulo,omitempty"`
	Subtitulo         string   `json:"subtitulo" bson:"subtitulo,omitempty"`
	TituloPerfil      string   `json:"tituloPerfil" bson:"tituloPerfil,omitempty"`
	DescripcionPerfil string   `json:"descripcionPerfil" bson:"descripcionPerfil,omitempty"`
	FotoPerfil        CoverURL `json:"fotoPerfil" bson:"fotoPerfil,omitempty"`

	CreatedAt int64 `json:"-" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Theme holds the site-wide appearance settings (settings/theme).
type Theme struct {
	ID  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Key string             `json:"-" bson:"key"`

	BackgroundImage CoverURL `json:"backgroundImage" bson:"backgroundImage,omitempty"`

	CreatedAt int64 `json:"-" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt,omitempty"`
}
