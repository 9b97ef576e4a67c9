// Package basesvc implements the generic MongoDB persistence layer shared
// by every domain service. All writes go through here so that timestamps,
// error mapping and data-change events stay uniform, and so array fields
// are only ever mutated server-side with $addToSet / $pull.
package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cobreklo/portafolio-api/internal/api/events"
	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/store"
	"github.com/cobreklo/portafolio-api/internal/utility"
)

// UpdateData describes one update document. Only non-empty parts are
// included, so callers compose exactly the operators they need.
type UpdateData struct {
	Set         bson.M
	SetOnInsert bson.M
	Unset       bson.M
	AddToSet    bson.M
	Pull        bson.M
}

// Build assembles the MongoDB update document. updatedAt is always set on
// the $set branch so every write refreshes it.
func (u *UpdateData) Build() bson.M {
	update := bson.M{}

	set := bson.M{}
	for k, v := range u.Set {
		set[k] = v
	}
	set["updatedAt"] = utility.CurrentTimeInMilli()
	update["$set"] = set

	if len(u.SetOnInsert) > 0 {
		update["$setOnInsert"] = u.SetOnInsert
	}
	if len(u.Unset) > 0 {
		update["$unset"] = u.Unset
	}
	if len(u.AddToSet) > 0 {
		update["$addToSet"] = u.AddToSet
	}
	if len(u.Pull) > 0 {
		update["$pull"] = u.Pull
	}

	return update
}

// ToUpdateData converts a struct or map into an UpdateData whose Set part
// carries the struct's bson fields. The _id field never travels in a $set.
func ToUpdateData(data interface{}) (*UpdateData, error) {
	m, err := utility.ToMap(data)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	delete(m, "_id")
	return &UpdateData{Set: m}, nil
}

// Paginate is one page of a collection listing.
type Paginate[T any] struct {
	Page      int64 `json:"page"`
	Limit     int64 `json:"limit"`
	ItemCount int64 `json:"itemCount"`
	Items     []T   `json:"items"`
}

// BaseServiceMongo provides typed CRUD over one collection.
type BaseServiceMongo[T any] struct {
	collectionName string
	collection     *mongo.Collection
	bus            *events.Bus
}

// NewBaseService binds the service to the named collection of s.
func NewBaseService[T any](s *store.Store, collectionName string) *BaseServiceMongo[T] {
	return &BaseServiceMongo[T]{
		collectionName: collectionName,
		collection:     s.Collection(collectionName),
		bus:            s.Bus,
	}
}

// CollectionName returns the bound collection's name.
func (s *BaseServiceMongo[T]) CollectionName() string {
	return s.collectionName
}

func (s *BaseServiceMongo[T]) emit(op events.Operation, doc interface{}) {
	if s.bus == nil {
		return
	}
	s.bus.Emit(events.DataChangeEvent{
		Collection: s.collectionName,
		Operation:  op,
		Document:   doc,
	})
}

// InsertOne inserts data with createdAt/updatedAt stamped, returning the
// stored document.
func (s *BaseServiceMongo[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := utility.ToMap(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	now := utility.CurrentTimeInMilli()
	doc["createdAt"] = now
	doc["updatedAt"] = now
	if id, ok := doc["_id"]; !ok || id == primitive.NilObjectID {
		doc["_id"] = primitive.NewObjectID()
	}

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	inserted, err := s.FindOne(ctx, bson.M{"_id": result.InsertedID})
	if err != nil {
		return zero, err
	}

	s.emit(events.OpInsert, inserted)
	return inserted, nil
}

// FindOne returns the first document matching filter.
func (s *BaseServiceMongo[T]) FindOne(ctx context.Context, filter bson.M) (T, error) {
	var result T
	if err := s.collection.FindOne(ctx, filter).Decode(&result); err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOneByKey returns the singleton document addressed by its key field.
func (s *BaseServiceMongo[T]) FindOneByKey(ctx context.Context, key string) (T, error) {
	return s.FindOne(ctx, bson.M{"key": key})
}

// FindOneById returns the document with the given hex object id.
func (s *BaseServiceMongo[T]) FindOneById(ctx context.Context, id string) (T, error) {
	var zero T
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	return s.FindOne(ctx, bson.M{"_id": objectID})
}

// Find returns every document matching filter, in opts order.
func (s *BaseServiceMongo[T]) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindWithPagination returns one page of matching documents plus the total
// match count. page is 1-based.
func (s *BaseServiceMongo[T]) FindWithPagination(ctx context.Context, filter bson.M, page, limit int64, sort bson.D) (*Paginate[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSkip((page - 1) * limit).SetLimit(limit)
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return &Paginate[T]{Page: page, Limit: limit, ItemCount: total, Items: items}, nil
}

// CountDocuments counts documents matching filter.
func (s *BaseServiceMongo[T]) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// updateOne applies update to the first match of filter and returns the
// resulting document. ErrNotFound when nothing matches.
func (s *BaseServiceMongo[T]) updateOne(ctx context.Context, filter bson.M, update bson.M, op events.Operation) (T, error) {
	var result T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return result, common.ConvertMongoError(err)
	}
	s.emit(op, result)
	return result, nil
}

// UpdateOne applies data to the first match of filter.
func (s *BaseServiceMongo[T]) UpdateOne(ctx context.Context, filter bson.M, data *UpdateData) (T, error) {
	return s.updateOne(ctx, filter, data.Build(), events.OpUpdate)
}

// UpdateById applies data to the document with the given hex object id.
func (s *BaseServiceMongo[T]) UpdateById(ctx context.Context, id string, data *UpdateData) (T, error) {
	var zero T
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	return s.UpdateOne(ctx, bson.M{"_id": objectID}, data)
}

// Upsert merge-writes data into the document matching filter, creating it
// when absent. Fields not present in data survive untouched, which is what
// lets per-section editors save without clobbering each other's fields.
func (s *BaseServiceMongo[T]) Upsert(ctx context.Context, filter bson.M, data *UpdateData) (T, error) {
	var result T

	if data.SetOnInsert == nil {
		data.SetOnInsert = bson.M{}
	}
	data.SetOnInsert["createdAt"] = utility.CurrentTimeInMilli()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := s.collection.FindOneAndUpdate(ctx, filter, data.Build(), opts).Decode(&result); err != nil {
		return result, common.ConvertMongoError(err)
	}

	s.emit(events.OpUpsert, result)
	return result, nil
}

// DeleteOne removes the first match of filter. ErrNotFound when nothing
// matches.
func (s *BaseServiceMongo[T]) DeleteOne(ctx context.Context, filter bson.M) error {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	s.emit(events.OpDelete, nil)
	return nil
}

// DeleteById removes the document with the given hex object id.
func (s *BaseServiceMongo[T]) DeleteById(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrInvalidFormat
	}
	return s.DeleteOne(ctx, bson.M{"_id": objectID})
}

// AppendToArrayField adds item to the named array field with $addToSet.
// The union happens server-side: concurrent appends interleave without
// lost updates, and appending a structurally equal duplicate leaves the
// array unchanged. ErrNotFound when no document matches filter.
func (s *BaseServiceMongo[T]) AppendToArrayField(ctx context.Context, filter bson.M, field string, item interface{}) (T, error) {
	data := &UpdateData{AddToSet: bson.M{field: item}}
	return s.updateOne(ctx, filter, data.Build(), events.OpUpdate)
}

// AppendToArrayFieldUpsert is AppendToArrayField for singleton documents:
// the document is created when absent so first-ever appends work on a
// collection that has never been written.
func (s *BaseServiceMongo[T]) AppendToArrayFieldUpsert(ctx context.Context, filter bson.M, field string, item interface{}) (T, error) {
	data := &UpdateData{
		AddToSet:    bson.M{field: item},
		SetOnInsert: bson.M{"createdAt": utility.CurrentTimeInMilli()},
	}
	var result T
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := s.collection.FindOneAndUpdate(ctx, filter, data.Build(), opts).Decode(&result); err != nil {
		return result, common.ConvertMongoError(err)
	}
	s.emit(events.OpUpdate, result)
	return result, nil
}

// RemoveFromArrayField removes item from the named array field with $pull
// by whole-value equality. A non-matching item is a silent no-op, matching
// set-difference semantics.
func (s *BaseServiceMongo[T]) RemoveFromArrayField(ctx context.Context, filter bson.M, field string, item interface{}) (T, error) {
	data := &UpdateData{Pull: bson.M{field: item}}
	return s.updateOne(ctx, filter, data.Build(), events.OpUpdate)
}

// RemoveFromArrayByPredicate removes every element of the named array
// field matching predicate, e.g. bson.M{"id": elementID}. Removal by a
// stored element id survives any drift in the other element fields.
func (s *BaseServiceMongo[T]) RemoveFromArrayByPredicate(ctx context.Context, filter bson.M, field string, predicate bson.M) (T, error) {
	data := &UpdateData{Pull: bson.M{field: predicate}}
	return s.updateOne(ctx, filter, data.Build(), events.OpUpdate)
}

// ClearField unsets the named field on the first match of filter.
func (s *BaseServiceMongo[T]) ClearField(ctx context.Context, filter bson.M, field string) (T, error) {
	data := &UpdateData{Unset: bson.M{field: ""}}
	return s.updateOne(ctx, filter, data.Build(), events.OpUpdate)
}
