// Package router registers every route of the service under /api/v1.
// Reads are public; everything under /admin plus logout requires a valid
// bearer token.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/cobreklo/portafolio-api/internal/api/auth/handler"
	authsvc "github.com/cobreklo/portafolio-api/internal/api/auth/service"
	contenthdl "github.com/cobreklo/portafolio-api/internal/api/content/handler"
	"github.com/cobreklo/portafolio-api/internal/api/middleware"
	"github.com/cobreklo/portafolio-api/internal/api/realtime"
	"github.com/cobreklo/portafolio-api/internal/api/upload"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *authhdl.AuthHandler
	AuthService *authsvc.AuthService
	Content     *contenthdl.ContentHandler
	Player      *contenthdl.PlayerHandler
	Upload      *upload.Handler
	Realtime    *realtime.Hub
}

// SetupRoutes mounts all routes on app.
func SetupRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api/v1")
	requireAuth := middleware.RequireAuth(h.AuthService)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout, requireAuth)
	auth.Get("/profile", h.Auth.Profile, requireAuth)

	// Public reads
	api.Get("/perfil", h.Content.GetProfile)
	api.Get("/tema", h.Content.GetTheme)
	api.Get("/reel", h.Content.GetReel)
	api.Get("/musica", h.Content.GetMusic)
	api.Get("/videos", h.Content.GetVideos)
	api.Get("/albumes", h.Content.ListAlbums)
	api.Get("/albumes/:id", h.Content.GetAlbum)
	api.Get("/cortometrajes", h.Content.ListShorts)
	api.Get("/resenas", h.Content.ListPublicReviews)
	api.Post("/resenas", h.Content.SubmitReview)

	// Realtime subscriptions
	api.Get("/subscribe/doc/:collection/:key", h.Realtime.SubscribeDoc)
	api.Get("/subscribe/collection/:collection", h.Realtime.SubscribeList)

	// Player sessions
	musicPlayer := api.Group("/musica/player")
	musicPlayer.Post("/", h.Player.Create)
	musicPlayer.Get("/:id", h.Player.Get)
	musicPlayer.Post("/:id/toggle", h.Player.Toggle)
	musicPlayer.Post("/:id/select", h.Player.Select)
	musicPlayer.Post("/:id/track-end", h.Player.TrackEnd)
	musicPlayer.Post("/:id/next", h.Player.Next)
	musicPlayer.Post("/:id/prev", h.Player.Prev)
	musicPlayer.Post("/:id/shuffle", h.Player.Shuffle)
	musicPlayer.Post("/:id/repeat", h.Player.Repeat)

	// Admin
	admin := api.Group("/admin", requireAuth)
	admin.Put("/perfil", h.Content.UpdateProfile)
	admin.Put("/tema/fondo", h.Content.SetBackground)
	admin.Delete("/tema/fondo", h.Content.ResetBackground)

	admin.Post("/reel/videos", h.Content.AddReelVideo)
	admin.Delete("/reel/videos/:id", h.Content.RemoveReelVideo)

	admin.Post("/musica/canciones", h.Content.AddSong)
	admin.Delete("/musica/canciones/:id", h.Content.RemoveSong)
	admin.Post("/musica/canciones/eliminar", h.Content.RemoveSongByValue)

	admin.Post("/videos/clips", h.Content.AddClip)
	admin.Delete("/videos/clips/:id", h.Content.RemoveClip)

	admin.Post("/albumes", h.Content.CreateAlbum)
	admin.Delete("/albumes/:id", h.Content.DeleteAlbum)
	admin.Post("/albumes/:id/fotos", h.Content.AddAlbumPhoto)
	admin.Delete("/albumes/:id/fotos", h.Content.RemoveAlbumPhoto)

	admin.Post("/cortometrajes", h.Content.CreateShort)
	admin.Delete("/cortometrajes/:id", h.Content.DeleteShort)

	admin.Get("/resenas", h.Content.ListAllReviews)
	admin.Post("/resenas/:id/aprobar", h.Content.ToggleReviewApproved)
	admin.Post("/resenas/:id/verificar", h.Content.ToggleReviewVerified)
	admin.Delete("/resenas/:id", h.Content.DeleteReview)

	admin.Post("/upload/signature", h.Upload.Sign)
}
