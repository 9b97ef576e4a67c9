package contentsvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/cobreklo/portafolio-api/internal/api/base/service"
	contentmodels "github.com/cobreklo/portafolio-api/internal/api/content/models"
	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/database"
	"github.com/cobreklo/portafolio-api/internal/store"
)

// ThemeService manages the settings/theme singleton.
type ThemeService struct {
	*basesvc.BaseServiceMongo[contentmodels.Theme]
}

// NewThemeService binds the service to the settings collection.
func NewThemeService(s *store.Store) *ThemeService {
	return &ThemeService{
		BaseServiceMongo: basesvc.NewBaseService[contentmodels.Theme](s, database.CollectionSettings),
	}
}

// Get returns the theme, empty when never saved.
func (s *ThemeService) Get(ctx context.Context) (*contentmodels.Theme, error) {
	theme, err := s.FindOneByKey(ctx, contentmodels.KeyTheme)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &contentmodels.Theme{Key: contentmodels.KeyTheme}, nil
		}
		return nil, err
	}
	return &theme, nil
}

// SetBackground upserts the background image URL.
func (s *ThemeService) SetBackground(ctx context.Context, url string) (*contentmodels.Theme, error) {
	theme, err := s.Upsert(ctx, bson.M{"key": contentmodels.KeyTheme},
		&basesvc.UpdateData{Set: bson.M{"backgroundImage": url}})
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// ResetBackground removes the background image field. Resetting a theme
// that was never saved is already the desired state.
func (s *ThemeService) ResetBackground(ctx context.Context) (*contentmodels.Theme, error) {
	theme, err := s.ClearField(ctx, bson.M{"key": contentmodels.KeyTheme}, "backgroundImage")
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &contentmodels.Theme{Key: contentmodels.KeyTheme}, nil
		}
		return nil, err
	}
	return &theme, nil
}
