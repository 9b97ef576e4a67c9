// Package contenthdl exposes the content endpoints. Reads are public;
// mutations sit behind the auth middleware (wired in the router).
package contenthdl

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cobreklo/portafolio-api/internal/api/base/handler"
	contentdto "github.com/cobreklo/portafolio-api/internal/api/content/dto"
	contentmodels "github.com/cobreklo/portafolio-api/internal/api/content/models"
	contentsvc "github.com/cobreklo/portafolio-api/internal/api/content/service"
)

// ContentHandler bundles the per-section services behind the HTTP layer.
type ContentHandler struct {
	Profile *contentsvc.ProfileService
	Theme   *contentsvc.ThemeService
	Reel    *contentsvc.ReelService
	Music   *contentsvc.MusicService
	Videos  *contentsvc.VideoService
	Albums  *contentsvc.AlbumService
	Shorts  *contentsvc.ShortService
	Reviews *contentsvc.ReviewService

	validate *validator.Validate
}

// NewContentHandler wires the handler.
func NewContentHandler(
	profile *contentsvc.ProfileService,
	theme *contentsvc.ThemeService,
	reel *contentsvc.ReelService,
	music *contentsvc.MusicService,
	videos *contentsvc.VideoService,
	albums *contentsvc.AlbumService,
	shorts *contentsvc.ShortService,
	reviews *contentsvc.ReviewService,
	validate *validator.Validate,
) *ContentHandler {
	return &ContentHandler{
		Profile:  profile,
		Theme:    theme,
		Reel:     reel,
		Music:    music,
		Videos:   videos,
		Albums:   albums,
		Shorts:   shorts,
		Reviews:  reviews,
		validate: validate,
	}
}

// GetProfile handles GET /perfil.
func (h *ContentHandler) GetProfile(c fiber.Ctx) error {
	profile, err := h.Profile.Get(c.Context())
	return basehdl.HandleResponse(c, profile, err)
}

// UpdateProfile handles PUT /admin/perfil.
func (h *ContentHandler) UpdateProfile(c fiber.Ctx) error {
	var input contentdto.UpdateProfileInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}
	profile, err := h.Profile.Update(c.Context(), &input)
	return basehdl.HandleResponse(c, profile, err)
}

// GetTheme handles GET /tema.
func (h *ContentHandler) GetTheme(c fiber.Ctx) error {
	theme, err := h.Theme.Get(c.Context())
	return basehdl.HandleResponse(c, theme, err)
}

// SetBackground handles PUT /admin/tema/fondo.
func (h *ContentHandler) SetBackground(c fiber.Ctx) error {
	var input contentdto.SetBackgroundInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}
	theme, err := h.Theme.SetBackground(c.Context(), input.BackgroundImage)
	return basehdl.HandleResponse(c, theme, err)
}

// ResetBackground handles DELETE /admin/tema/fondo.
func (h *ContentHandler) ResetBackground(c fiber.Ctx) error {
	theme, err := h.Theme.ResetBackground(c.Context())
	return basehdl.HandleResponse(c, theme, err)
}

// GetReel handles GET /reel.
func (h *ContentHandler) GetReel(c fiber.Ctx) error {
	reel, err := h.Reel.Get(c.Context())
	return basehdl.HandleResponse(c, reel, err)
}

// AddReelVideo handles POST /admin/reel/videos.
func (h *ContentHandler) AddReelVideo(c fiber.Ctx) error {
	var input contentdto.AddReelVideoInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}
	reel, err := h.Reel.AddVideo(c.Context(), &input)
	return basehdl.HandleResponse(c, reel, err)
}

// RemoveReelVideo handles DELETE /admin/reel/videos/:id.
func (h *ContentHandler) RemoveReelVideo(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	reel, err := h.Reel.RemoveVideo(c.Context(), id)
	return basehdl.HandleResponse(c, reel, err)
}

// GetMusic handles GET /musica.
func (h *ContentHandler) GetMusic(c fiber.Ctx) error {
	music, err := h.Music.Get(c.Context())
	return basehdl.HandleResponse(c, music, err)
}

// AddSong handles POST /admin/musica/canciones.
func (h *ContentHandler) AddSong(c fiber.Ctx) error {
	var input contentdto.AddSongInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}
	music, err := h.Music.AddSong(c.Context(), &input)
	return basehdl.HandleResponse(c, music, err)
}

// RemoveSong handles DELETE /admin/musica/canciones/:id.
func (h *ContentHandler) RemoveSong(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	music, err := h.Music.RemoveSong(c.Context(), id)
	return basehdl.HandleResponse(c, music, err)
}

// RemoveSongByValue handles POST /admin/musica/canciones/eliminar, the
// removal path for tracks that predate element ids.
func (h *ContentHandler) RemoveSongByValue(c fiber.Ctx) error {
	var song contentmodels.Song
	if err := c.Bind().Body(&song); err != nil {
		return basehdl.Failure(c, err)
	}
	music, err := h.Music.RemoveSongByValue(c.Context(), song)
	return basehdl.HandleResponse(c, music, err)
}

// GetVideos handles GET /videos.
func (h *ContentHandler) GetVideos(c fiber.Ctx) error {
	videos, err := h.Videos.Get(c.Context())
	return basehdl.HandleResponse(c, videos, err)
}

// AddClip handles POST /admin/videos/clips.
func (h *ContentHandler) AddClip(c fiber.Ctx) error {
	var input contentdto.AddClipInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}
	videos, err := h.Videos.AddClip(c.Context(), &input)
	return basehdl.HandleResponse(c, videos, err)
}

// RemoveClip handles DELETE /admin/videos/clips/:id.
func (h *ContentHandler) RemoveClip(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	videos, err := h.Videos.RemoveClip(c.Context(), id)
	return basehdl.HandleResponse(c, videos, err)
}
