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
	"github.com/cobreklo/portafolio-api/internal/utility"
)

// ReelService manages the contenido/reel playlist.
type ReelService struct {
	*basesvc.BaseServiceMongo[contentmodels.Reel]
}

// NewReelService binds the service to the contenido collection.
func NewReelService(s *store.Store) *ReelService {
	return &ReelService{
		BaseServiceMongo: basesvc.NewBaseService[contentmodels.Reel](s, database.CollectionContenido),
	}
}

func reelFilter() bson.M {
	return bson.M{"key": contentmodels.KeyReel}
}

// Get returns the normalized playlist view.
func (s *ReelService) Get(ctx context.Context) (*contentmodels.Reel, error) {
	reel, err := s.FindOneByKey(ctx, contentmodels.KeyReel)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return (&contentmodels.Reel{Key: contentmodels.KeyReel}).Normalize(), nil
		}
		return nil, err
	}
	return reel.Normalize(), nil
}

// migrateLegacy folds the single-video shape into the playlist once, so
// every later mutation works on the canonical field. The migrated element
// gets a generated id like any new one.
func (s *ReelService) migrateLegacy(ctx context.Context) error {
	reel, err := s.FindOneByKey(ctx, contentmodels.KeyReel)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}
	if reel.LegacyVideoID == "" {
		return nil
	}

	playlist := reel.Playlist
	if len(playlist) == 0 {
		playlist = []contentmodels.ReelVideo{{
			ID:      uuid.NewString(),
			Title:   reel.LegacyTitle,
			VideoID: reel.LegacyVideoID,
			AddedAt: utility.CurrentTimeInMilli(),
		}}
	}

	_, err = s.UpdateOne(ctx, reelFilter(), &basesvc.UpdateData{
		Set:   bson.M{"playlist": playlist},
		Unset: bson.M{"videoId": "", "titulo": ""},
	})
	return err
}

// AddVideo resolves the raw URL to a video id and appends it to the
// playlist. Unresolvable input fails before anything is written.
func (s *ReelService) AddVideo(ctx context.Context, input *contentdto.AddReelVideoInput) (*contentmodels.Reel, error) {
	videoID, err := ResolveYouTubeID(input.URL)
	if err != nil {
		return nil, err
	}

	if err := s.migrateLegacy(ctx); err != nil {
		return nil, err
	}

	video := contentmodels.ReelVideo{
		ID:      uuid.NewString(),
		Title:   input.Title,
		VideoID: videoID,
		AddedAt: utility.CurrentTimeInMilli(),
	}
	reel, err := s.AppendToArrayFieldUpsert(ctx, reelFilter(), "playlist", video)
	if err != nil {
		return nil, err
	}
	return reel.Normalize(), nil
}

// RemoveVideo removes the playlist element with the given id. When id is
// the legacy top-level video id the legacy fields are cleared instead. A
// non-matching id leaves the playlist unchanged.
func (s *ReelService) RemoveVideo(ctx context.Context, id string) (*contentmodels.Reel, error) {
	current, err := s.FindOneByKey(ctx, contentmodels.KeyReel)
	if err != nil {
		return nil, err
	}
	if current.LegacyVideoID != "" && current.LegacyVideoID == id {
		reel, err := s.UpdateOne(ctx, reelFilter(), &basesvc.UpdateData{
			Unset: bson.M{"videoId": "", "titulo": ""},
		})
		if err != nil {
			return nil, err
		}
		return reel.Normalize(), nil
	}

	reel, err := s.RemoveFromArrayByPredicate(ctx, reelFilter(), "playlist", bson.M{"id": id})
	if err != nil {
		return nil, err
	}
	return reel.Normalize(), nil
}
