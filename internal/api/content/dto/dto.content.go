// Package contentdto holds the request bodies of the content endpoints.
// Validation runs before any store call; a rejected body never reaches
// the database.
package contentdto

// UpdateProfileInput carries the profile fields to merge. Zero-valued
// fields are omitted from the write so other sections' data survives.
type UpdateProfileInput struct {
	Titulo            string `json:"titulo" validate:"omitempty,max=200"`
	Subtitulo         string `json:"subtitulo" validate:"omitempty,max=300"`
	TituloPerfil      string `json:"tituloPerfil" validate:"omitempty,max=200"`
	DescripcionPerfil string `json:"descripcionPerfil" validate:"omitempty,max=2000"`
	FotoPerfil        string `json:"fotoPerfil" validate:"omitempty,url"`
}

// SetBackgroundInput sets the site background image.
type SetBackgroundInput struct {
	BackgroundImage string `json:"backgroundImage" validate:"required,url"`
}

// AddReelVideoInput adds one video to the reel playlist. URL accepts any
// YouTube reference form; resolution to the 11-character id happens in
// the service and rejects unresolvable input before writing.
type AddReelVideoInput struct {
	Title string `json:"title" validate:"omitempty,max=200"`
	URL   string `json:"url" validate:"required,max=500"`
}

// AddSongInput adds one track to the music list.
type AddSongInput struct {
	Titulo     string `json:"titulo" validate:"required,max=200"`
	Artista    string `json:"artista" validate:"omitempty,max=200"`
	URLAudio   string `json:"url_audio" validate:"required,url"`
	URLPortada string `json:"url_portada" validate:"omitempty,url"`
}

// AddClipInput adds one video clip.
type AddClipInput struct {
	Titulo    string `json:"titulo" validate:"required,max=200"`
	URL       string `json:"url" validate:"required,url"`
	Thumbnail string `json:"thumbnail" validate:"omitempty,url"`
}

// CreateAlbumInput creates an empty album.
type CreateAlbumInput struct {
	Titulo  string `json:"titulo" validate:"required,max=200"`
	Portada string `json:"portada" validate:"omitempty,url"`
}

// AlbumPhotoInput adds or removes one photo URL.
type AlbumPhotoInput struct {
	URL string `json:"url" validate:"required,url"`
}

// CreateShortInput creates one short film. URL accepts any YouTube
// reference form.
type CreateShortInput struct {
	Titulo string `json:"titulo" validate:"required,max=200"`
	URL    string `json:"url" validate:"required,max=500"`
	Fecha  int64  `json:"fecha" validate:"omitempty,min=0"`
}

// SubmitReviewInput is the public review form. Date, approval and
// verification are server-assigned.
type SubmitReviewInput struct {
	Nombre     string `json:"nombre" validate:"required,max=100"`
	Mensaje    string `json:"mensaje" validate:"required,max=1000"`
	Puntuacion int    `json:"puntuacion" validate:"required,min=1,max=5"`
}
