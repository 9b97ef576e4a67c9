package main

import (
	"context"

	authhdl "github.com/cobreklo/portafolio-api/internal/api/auth/handler"
	authsvc "github.com/cobreklo/portafolio-api/internal/api/auth/service"
	contenthdl "github.com/cobreklo/portafolio-api/internal/api/content/handler"
	contentsvc "github.com/cobreklo/portafolio-api/internal/api/content/service"
	"github.com/cobreklo/portafolio-api/internal/api/realtime"
	"github.com/cobreklo/portafolio-api/internal/api/router"
	"github.com/cobreklo/portafolio-api/internal/api/upload"
	"github.com/cobreklo/portafolio-api/internal/database"
	"github.com/cobreklo/portafolio-api/internal/logger"
	"github.com/cobreklo/portafolio-api/internal/player"
	"github.com/cobreklo/portafolio-api/internal/store"
)

// buildHandlers constructs every service and handler over the store and
// wires the realtime hub's subscribable targets.
func buildHandlers(ctx context.Context, s *store.Store) (*router.Handlers, error) {
	authService := authsvc.NewAuthService(s)
	if err := authService.EnsureAdminUser(ctx, s.Config.AdminEmail, s.Config.AdminPassword); err != nil {
		return nil, err
	}

	profileService := contentsvc.NewProfileService(s)
	themeService := contentsvc.NewThemeService(s)
	reelService := contentsvc.NewReelService(s)
	musicService := contentsvc.NewMusicService(s)
	videoService := contentsvc.NewVideoService(s)
	albumService := contentsvc.NewAlbumService(s)
	shortService := contentsvc.NewShortService(s)
	reviewService := contentsvc.NewReviewService(s)

	hub := realtime.NewHub(s.Bus)
	hub.RegisterDoc(database.CollectionWeb, "inicio", func(ctx context.Context) (interface{}, error) {
		return profileService.Get(ctx)
	})
	hub.RegisterDoc(database.CollectionSettings, "theme", func(ctx context.Context) (interface{}, error) {
		return themeService.Get(ctx)
	})
	hub.RegisterDoc(database.CollectionContenido, "reel", func(ctx context.Context) (interface{}, error) {
		return reelService.Get(ctx)
	})
	hub.RegisterDoc(database.CollectionContenido, "musica", func(ctx context.Context) (interface{}, error) {
		return musicService.Get(ctx)
	})
	hub.RegisterDoc(database.CollectionContenido, "videos", func(ctx context.Context) (interface{}, error) {
		return videoService.Get(ctx)
	})
	hub.RegisterList(database.CollectionAlbumes, func(ctx context.Context) (interface{}, error) {
		return albumService.List(ctx)
	})
	hub.RegisterList(database.CollectionShorts, func(ctx context.Context) (interface{}, error) {
		return shortService.List(ctx)
	})
	hub.RegisterList(database.CollectionResenas, func(ctx context.Context) (interface{}, error) {
		return reviewService.ListPublic(ctx)
	})

	// Terminated realtime subscriptions report their error here, once.
	go func() {
		for subErr := range s.Bus.Errors() {
			logger.GetAppLogger().WithError(subErr.Err).
				Warnf("Subscription on %s terminated", subErr.Collection)
		}
	}()

	contentHandler := contenthdl.NewContentHandler(
		profileService, themeService, reelService, musicService,
		videoService, albumService, shortService, reviewService,
		s.Validate,
	)

	return &router.Handlers{
		Auth:        authhdl.NewAuthHandler(authService, s.Validate),
		AuthService: authService,
		Content:     contentHandler,
		Player:      contenthdl.NewPlayerHandler(musicService, player.NewSessions()),
		Upload:      upload.NewHandler(s.Config, s.Validate),
		Realtime:    hub,
	}, nil
}
