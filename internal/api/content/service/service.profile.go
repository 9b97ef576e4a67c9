// Package contentsvc implements the content sections over the generic
// Mongo base service. Singletons are addressed by their key; mutations on
// array fields always go through $addToSet / $pull.
package contentsvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/cobreklo/portafolio-api/internal/api/base/service"
	contentdto "github.com/cobreklo/portafolio-api/internal/api/content/dto"
	contentmodels "github.com/cobreklo/portafolio-api/internal/api/content/models"
	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/database"
	"github.com/cobreklo/portafolio-api/internal/store"
)

// ProfileService manages the web/inicio singleton.
type ProfileService struct {
	*basesvc.BaseServiceMongo[contentmodels.SiteProfile]
}

// NewProfileService binds the service to the web collection.
func NewProfileService(s *store.Store) *ProfileService {
	return &ProfileService{
		BaseServiceMongo: basesvc.NewBaseService[contentmodels.SiteProfile](s, database.CollectionWeb),
	}
}

// Get returns the profile, or an empty one when nothing has been saved
// yet. The public site renders an absent profile as blank fields.
func (s *ProfileService) Get(ctx context.Context) (*contentmodels.SiteProfile, error) {
	profile, err := s.FindOneByKey(ctx, contentmodels.KeyInicio)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &contentmodels.SiteProfile{Key: contentmodels.KeyInicio}, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Update merge-writes the provided fields. Only non-empty input fields
// travel in the $set, so a form that owns two fields cannot clobber the
// rest of the document. The key equality filter seeds the key on insert.
func (s *ProfileService) Update(ctx context.Context, input *contentdto.UpdateProfileInput) (*contentmodels.SiteProfile, error) {
	set := bson.M{}
	if input.Titulo != "" {
		set["titulo"] = input.Titulo
	}
	if input.Subtitulo != "" {
		set["subtitulo"] = input.Subtitulo
	}
	if input.TituloPerfil != "" {
		set["tituloPerfil"] = input.TituloPerfil
	}
	if input.DescripcionPerfil != "" {
		set["descripcionPerfil"] = input.DescripcionPerfil
	}
	if input.FotoPerfil != "" {
		set["fotoPerfil"] = input.FotoPerfil
	}

	profile, err := s.Upsert(ctx, bson.M{"key": contentmodels.KeyInicio}, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
