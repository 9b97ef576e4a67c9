package contentsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/cobreklo/portafolio-api/internal/api/base/service"
	contentdto "github.com/cobreklo/portafolio-api/internal/api/content/dto"
	contentmodels "github.com/cobreklo/portafolio-api/internal/api/content/models"
	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/database"
	"github.com/cobreklo/portafolio-api/internal/store"
)

// AlbumService manages the photo albums, one document per album. Photo
// lists are returned whole; the gallery paginates client-side.
type AlbumService struct {
	*basesvc.BaseServiceMongo[contentmodels.Album]
}

// NewAlbumService binds the service to the albumes collection.
func NewAlbumService(s *store.Store) *AlbumService {
	return &AlbumService{
		BaseServiceMongo: basesvc.NewBaseService[contentmodels.Album](s, database.CollectionAlbumes),
	}
}

// List returns all albums, newest first.
func (s *AlbumService) List(ctx context.Context) ([]contentmodels.Album, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// Create inserts an empty album.
func (s *AlbumService) Create(ctx context.Context, input *contentdto.CreateAlbumInput) (*contentmodels.Album, error) {
	album, err := s.InsertOne(ctx, contentmodels.Album{
		Titulo:  input.Titulo,
		Portada: contentmodels.CoverURL(input.Portada),
		Fotos:   []string{},
	})
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// AddPhoto appends a photo URL to the album. Photos are plain strings, so
// $addToSet makes re-adding the same URL a no-op.
func (s *AlbumService) AddPhoto(ctx context.Context, albumID string, url string) (*contentmodels.Album, error) {
	filter, err := albumByID(albumID)
	if err != nil {
		return nil, err
	}
	album, err := s.AppendToArrayField(ctx, filter, "fotos", url)
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// RemovePhoto removes a photo URL by value. A URL not in the album is a
// silent no-op.
func (s *AlbumService) RemovePhoto(ctx context.Context, albumID string, url string) (*contentmodels.Album, error) {
	filter, err := albumByID(albumID)
	if err != nil {
		return nil, err
	}
	album, err := s.RemoveFromArrayField(ctx, filter, "fotos", url)
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func albumByID(id string) (bson.M, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	return bson.M{"_id": objectID}, nil
}
