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

// VideoService manages the contenido/videos clip list.
type VideoService struct {
	*basesvc.BaseServiceMongo[contentmodels.Videos]
}

// NewVideoService binds the service to the contenido collection.
func NewVideoService(s *store.Store) *VideoService {
	return &VideoService{
		BaseServiceMongo: basesvc.NewBaseService[contentmodels.Videos](s, database.CollectionContenido),
	}
}

func videosFilter() bson.M {
	return bson.M{"key": contentmodels.KeyVideos}
}

// Get returns the clip list.
func (s *VideoService) Get(ctx context.Context) (*contentmodels.Videos, error) {
	videos, err := s.FindOneByKey(ctx, contentmodels.KeyVideos)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return (&contentmodels.Videos{Key: contentmodels.KeyVideos}).Normalize(), nil
		}
		return nil, err
	}
	return videos.Normalize(), nil
}

// AddClip appends one clip with a generated id and a server-set date.
func (s *VideoService) AddClip(ctx context.Context, input *contentdto.AddClipInput) (*contentmodels.Videos, error) {
	clip := contentmodels.Clip{
		ID:        uuid.NewString(),
		Titulo:    input.Titulo,
		URL:       input.URL,
		Thumbnail: contentmodels.CoverURL(input.Thumbnail),
		Fecha:     utility.CurrentTimeInMilli(),
	}
	videos, err := s.AppendToArrayFieldUpsert(ctx, videosFilter(), "items", clip)
	if err != nil {
		return nil, err
	}
	return videos.Normalize(), nil
}

// RemoveClip removes the clip with the given element id.
func (s *VideoService) RemoveClip(ctx context.Context, id string) (*contentmodels.Videos, error) {
	videos, err := s.RemoveFromArrayByPredicate(ctx, videosFilter(), "items", bson.M{"id": id})
	if err != nil {
		return nil, err
	}
	return videos.Normalize(), nil
}
