package contentsvc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/cobreklo/portafolio-api/internal/api/base/service"
	contentdto "github.com/cobreklo/portafolio-api/internal/api/content/dto"
	contentmodels "github.com/cobreklo/portafolio-api/internal/api/content/models"
	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/database"
	"github.com/cobreklo/portafolio-api/internal/store"
)

// MusicService manages the contenido/musica track list.
type MusicService struct {
	*basesvc.BaseServiceMongo[contentmodels.Music]
}

// NewMusicService binds the service to the contenido collection.
func NewMusicService(s *store.Store) *MusicService {
	return &MusicService{
		BaseServiceMongo: basesvc.NewBaseService[contentmodels.Music](s, database.CollectionContenido),
	}
}

func musicFilter() bson.M {
	return bson.M{"key": contentmodels.KeyMusica}
}

// Get returns the normalized track list.
func (s *MusicService) Get(ctx context.Context) (*contentmodels.Music, error) {
	music, err := s.FindOneByKey(ctx, contentmodels.KeyMusica)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return (&contentmodels.Music{Key: contentmodels.KeyMusica}).Normalize(), nil
		}
		return nil, err
	}
	return music.Normalize(), nil
}

// migrateLegacy renames the items field to listaCanciones once. Migrated
// tracks keep their empty element ids; removal of those goes through the
// whole-value path.
func (s *MusicService) migrateLegacy(ctx context.Context) error {
	music, err := s.FindOneByKey(ctx, contentmodels.KeyMusica)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}
	if len(music.LegacyItems) == 0 {
		return nil
	}

	tracks := music.ListaCanciones
	if len(tracks) == 0 {
		tracks = music.LegacyItems
	}
	_, err = s.UpdateOne(ctx, musicFilter(), &basesvc.UpdateData{
		Set:   bson.M{"listaCanciones": tracks},
		Unset: bson.M{"items": ""},
	})
	return err
}

// AddSong appends one track with a generated element id.
func (s *MusicService) AddSong(ctx context.Context, input *contentdto.AddSongInput) (*contentmodels.Music, error) {
	if err := s.migrateLegacy(ctx); err != nil {
		return nil, err
	}

	song := contentmodels.Song{
		ID:         uuid.NewString(),
		Titulo:     input.Titulo,
		Artista:    input.Artista,
		URLAudio:   input.URLAudio,
		URLPortada: contentmodels.CoverURL(input.URLPortada),
	}
	music, err := s.AppendToArrayFieldUpsert(ctx, musicFilter(), "listaCanciones", song)
	if err != nil {
		return nil, err
	}
	return music.Normalize(), nil
}

// RemoveSong removes the track with the given element id. A non-matching
// id leaves the list unchanged.
func (s *MusicService) RemoveSong(ctx context.Context, id string) (*contentmodels.Music, error) {
	if err := s.migrateLegacy(ctx); err != nil {
		return nil, err
	}
	music, err := s.RemoveFromArrayByPredicate(ctx, musicFilter(), "listaCanciones", bson.M{"id": id})
	if err != nil {
		return nil, err
	}
	return music.Normalize(), nil
}

// RemoveSongByValue removes a track by whole-value equality. Tracks
// migrated from the legacy shape have no element id, so the panel sends
// the full track instead. A mismatch on any field is a silent no-op.
func (s *MusicService) RemoveSongByValue(ctx context.Context, song contentmodels.Song) (*contentmodels.Music, error) {
	if err := s.migrateLegacy(ctx); err != nil {
		return nil, err
	}
	music, err := s.RemoveFromArrayField(ctx, musicFilter(), "listaCanciones", song)
	if err != nil {
		return nil, err
	}
	return music.Normalize(), nil
}
