package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpdateDataBuildComposesOperators(t *testing.T) {
	data := &UpdateData{
		Set:      bson.M{"titulo": "nuevo"},
		Unset:    bson.M{"videoId": ""},
		AddToSet: bson.M{"playlist": bson.M{"id": "a"}},
		Pull:     bson.M{"fotos": "https://cdn/x.png"},
	}

	update := data.Build()

	set := update["$set"].(bson.M)
	assert.Equal(t, "nuevo", set["titulo"])
	assert.Contains(t, set, "updatedAt")

	assert.Equal(t, bson.M{"videoId": ""}, update["$unset"])
	assert.Equal(t, bson.M{"playlist": bson.M{"id": "a"}}, update["$addToSet"])
	assert.Equal(t, bson.M{"fotos": "https://cdn/x.png"}, update["$pull"])
}

func TestUpdateDataBuildOmitsEmptyOperators(t *testing.T) {
	update := (&UpdateData{Set: bson.M{"a": 1}}).Build()

	assert.Contains(t, update, "$set")
	assert.NotContains(t, update, "$unset")
	assert.NotContains(t, update, "$addToSet")
	assert.NotContains(t, update, "$pull")
	assert.NotContains(t, update, "$setOnInsert")
}

func TestUpdateDataBuildAlwaysStampsUpdatedAt(t *testing.T) {
	update := (&UpdateData{Pull: bson.M{"items": bson.M{"id": "x"}}}).Build()
	set := update["$set"].(bson.M)
	assert.Contains(t, set, "updatedAt")
}

func TestToUpdateDataDropsID(t *testing.T) {
	type doc struct {
		ID     string `bson:"_id,omitempty"`
		Titulo string `bson:"titulo"`
	}
	data, err := ToUpdateData(doc{ID: "abc", Titulo: "hola"})
	require.NoError(t, err)

	assert.Equal(t, "hola", data.Set["titulo"])
	assert.NotContains(t, data.Set, "_id")
}
