package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cobreklo/portafolio-api/internal/logger"
)

// Collection names.
const (
	CollectionWeb       = "web"
	CollectionSettings  = "settings"
	CollectionContenido = "contenido"
	CollectionAlbumes   = "albumes"
	CollectionShorts    = "cortometrajes"
	CollectionResenas   = "resenas"
	CollectionAuthUsers = "auth_users"
)

// AllCollections lists every collection the service owns.
func AllCollections() []string {
	return []string{
		CollectionWeb,
		CollectionSettings,
		CollectionContenido,
		CollectionAlbumes,
		CollectionShorts,
		CollectionResenas,
		CollectionAuthUsers,
	}
}

type indexSpec struct {
	keys    bson.D
	options *options.IndexOptions
}

// Singleton collections address documents by a well-known key field, so
// the key must be unique. Reviews are listed by date and filtered by
// approval, and users log in by email.
var collectionIndexes = map[string][]indexSpec{
	CollectionWeb: {
		{keys: bson.D{{Key: "key", Value: 1}}, options: options.Index().SetUnique(true)},
	},
	CollectionSettings: {
		{keys: bson.D{{Key: "key", Value: 1}}, options: options.Index().SetUnique(true)},
	},
	CollectionContenido: {
		{keys: bson.D{{Key: "key", Value: 1}}, options: options.Index().SetUnique(true)},
	},
	CollectionResenas: {
		{keys: bson.D{{Key: "fecha", Value: -1}}},
		{keys: bson.D{{Key: "aprobado", Value: 1}, {Key: "fecha", Value: -1}}},
	},
	CollectionAuthUsers: {
		{keys: bson.D{{Key: "email", Value: 1}}, options: options.Index().SetUnique(true)},
	},
}

// EnsureCollections creates missing collections and their indexes.
// Creating an index that already exists is a no-op for the server.
func EnsureCollections(client *mongo.Client, dbName string) error {
	log := logger.GetLogger("database")
	db := client.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return err
	}
	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	for _, name := range AllCollections() {
		if !existingSet[name] {
			if err := db.CreateCollection(ctx, name); err != nil {
				return err
			}
			log.Infof("Created collection %s", name)
		}

		specs := collectionIndexes[name]
		if len(specs) == 0 {
			continue
		}
		models := make([]mongo.IndexModel, 0, len(specs))
		for _, spec := range specs {
			models = append(models, mongo.IndexModel{Keys: spec.keys, Options: spec.options})
		}
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	return nil
}
