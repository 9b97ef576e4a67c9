package contentsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/cobreklo/portafolio-api/internal/api/base/service"
	contentdto "github.com/cobreklo/portafolio-api/internal/api/content/dto"
	contentmodels "github.com/cobreklo/portafolio-api/internal/api/content/models"
	"github.com/cobreklo/portafolio-api/internal/database"
	"github.com/cobreklo/portafolio-api/internal/store"
	"github.com/cobreklo/portafolio-api/internal/utility"
)

// ShortService manages the short films, one document per short.
type ShortService struct {
	*basesvc.BaseServiceMongo[contentmodels.Short]
}

// NewShortService binds the service to the cortometrajes collection.
func NewShortService(s *store.Store) *ShortService {
	return &ShortService{
		BaseServiceMongo: basesvc.NewBaseService[contentmodels.Short](s, database.CollectionShorts),
	}
}

// List returns all shorts, newest first by their film date.
func (s *ShortService) List(ctx context.Context) ([]contentmodels.Short, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}}))
}

// Create resolves the raw URL to a video id and inserts the short. An
// unset date defaults to now.
func (s *ShortService) Create(ctx context.Context, input *contentdto.CreateShortInput) (*contentmodels.Short, error) {
	videoID, err := ResolveYouTubeID(input.URL)
	if err != nil {
		return nil, err
	}

	fecha := input.Fecha
	if fecha == 0 {
		fecha = utility.CurrentTimeInMilli()
	}

	short, err := s.InsertOne(ctx, contentmodels.Short{
		Titulo:  input.Titulo,
		VideoID: videoID,
		Fecha:   fecha,
	})
	if err != nil {
		return nil, err
	}
	return &short, nil
}
