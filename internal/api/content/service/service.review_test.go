package contentsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	contentmodels "github.com/cobreklo/portafolio-api/internal/api/content/models"
)

func matchesPublicFilter(r contentmodels.Review) bool {
	return r.Aprobado == publicReviewFilter()["aprobado"]
}

func TestPublicReviewFilterSelectsApprovedOnly(t *testing.T) {
	filter := publicReviewFilter()
	require.Len(t, filter, 1)
	assert.Equal(t, true, filter["aprobado"])

	// An unapproved review never passes, no matter what else is set.
	hidden := contentmodels.Review{Nombre: "a", Aprobado: false, Verificado: true, Puntuacion: 5}
	visible := contentmodels.Review{Nombre: "b", Aprobado: true}
	assert.False(t, matchesPublicFilter(hidden))
	assert.True(t, matchesPublicFilter(visible))
}

func TestReviewSortNewestFirst(t *testing.T) {
	sort := reviewSort()
	require.Len(t, sort, 1)
	assert.Equal(t, "fecha", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestToggleFieldUpdateFlipsApproval(t *testing.T) {
	update := toggleFieldUpdate("aprobado", false).Build()
	set := update["$set"].(bson.M)
	assert.Equal(t, true, set["aprobado"])

	update = toggleFieldUpdate("aprobado", true).Build()
	set = update["$set"].(bson.M)
	assert.Equal(t, false, set["aprobado"])
}

func TestToggleFieldUpdateTouchesOnlyItsField(t *testing.T) {
	update := toggleFieldUpdate("verificado", false).Build()

	set := update["$set"].(bson.M)
	assert.Equal(t, true, set["verificado"])
	assert.NotContains(t, set, "aprobado")
	assert.NotContains(t, update, "$unset")
	assert.NotContains(t, update, "$pull")
}

func TestToggledReviewCrossesVisibilityBoundary(t *testing.T) {
	review := contentmodels.Review{Nombre: "c", Aprobado: false}
	assert.False(t, matchesPublicFilter(review))

	update := toggleFieldUpdate("aprobado", review.Aprobado).Build()
	review.Aprobado = update["$set"].(bson.M)["aprobado"].(bool)
	assert.True(t, matchesPublicFilter(review))
}
