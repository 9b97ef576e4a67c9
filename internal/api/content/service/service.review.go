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

// ReviewService manages visitor reviews and their moderation.
type ReviewService struct {
	*basesvc.BaseServiceMongo[contentmodels.Review]
}

// NewReviewService binds the service to the resenas collection.
func NewReviewService(s *store.Store) *ReviewService {
	return &ReviewService{
		BaseServiceMongo: basesvc.NewBaseService[contentmodels.Review](s, database.CollectionResenas),
	}
}

// SubmitPublic stores a visitor review. Reviews always start unapproved
// and unverified; the date is server time, not client input.
func (s *ReviewService) SubmitPublic(ctx context.Context, input *contentdto.SubmitReviewInput) (*contentmodels.Review, error) {
	review, err := s.InsertOne(ctx, contentmodels.Review{
		Nombre:     input.Nombre,
		Mensaje:    input.Mensaje,
		Puntuacion: input.Puntuacion,
		Fecha:      utility.CurrentTimeInMilli(),
		Aprobado:   false,
		Verificado: false,
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// publicReviewFilter selects the publicly visible reviews: aprobado and
// nothing else decides visibility.
func publicReviewFilter() bson.M {
	return bson.M{"aprobado": true}
}

// reviewSort orders reviews newest first by their submission date.
func reviewSort() bson.D {
	return bson.D{{Key: "fecha", Value: -1}}
}

// toggleFieldUpdate flips a boolean field from its current value.
func toggleFieldUpdate(field string, current bool) *basesvc.UpdateData {
	return &basesvc.UpdateData{Set: bson.M{field: !current}}
}

// ListPublic returns only approved reviews, newest first. Unapproved
// reviews never appear here regardless of any other field.
func (s *ReviewService) ListPublic(ctx context.Context) ([]contentmodels.Review, error) {
	return s.Find(ctx, publicReviewFilter(), options.Find().SetSort(reviewSort()))
}

// ListAll returns every review for the moderation panel, paginated,
// newest first.
func (s *ReviewService) ListAll(ctx context.Context, page, limit int64) (*basesvc.Paginate[contentmodels.Review], error) {
	return s.FindWithPagination(ctx, bson.M{}, page, limit, reviewSort())
}

// ToggleApproved flips the public visibility of one review. The update
// emits a change event, so open subscriptions see the new visibility on
// their next snapshot.
func (s *ReviewService) ToggleApproved(ctx context.Context, id string) (*contentmodels.Review, error) {
	review, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.UpdateById(ctx, id, toggleFieldUpdate("aprobado", review.Aprobado))
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ToggleVerified flips the verified badge of one review.
func (s *ReviewService) ToggleVerified(ctx context.Context, id string) (*contentmodels.Review, error) {
	review, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.UpdateById(ctx, id, toggleFieldUpdate("verificado", review.Verificado))
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
