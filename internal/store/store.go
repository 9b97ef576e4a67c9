// Package store holds the shared infrastructure handles. A single Store
// is constructed in main and passed explicitly to every service; nothing
// in the codebase reaches for package-level state.
package store

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cobreklo/portafolio-api/config"
	"github.com/cobreklo/portafolio-api/internal/api/events"
	"github.com/cobreklo/portafolio-api/internal/database"
	"github.com/cobreklo/portafolio-api/internal/registry"
)

// Store bundles the MongoDB client, collection handles, DTO validator and
// the data-change bus behind one injectable value.
type Store struct {
	Config      *config.Configuration
	Client      *mongo.Client
	DB          *mongo.Database
	Collections *registry.Registry[*mongo.Collection]
	Validate    *validator.Validate
	Bus         *events.Bus
}

// New wires a Store from an already connected client. Collection handles
// for every owned collection are registered up front so services fail
// loudly at construction rather than at first use.
func New(cfg *config.Configuration, client *mongo.Client) *Store {
	db := client.Database(cfg.MongoDB_DBName)

	collections := registry.NewRegistry[*mongo.Collection]()
	for _, name := range database.AllCollections() {
		collections.Register(name, db.Collection(name))
	}

	return &Store{
		Config:      cfg,
		Client:      client,
		DB:          db,
		Collections: collections,
		Validate:    validator.New(),
		Bus:         events.NewBus(),
	}
}

// Collection returns the registered handle for name, creating one on the
// fly for names outside the owned set.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.Collections.GetOrCreate(name, func() *mongo.Collection {
		return s.DB.Collection(name)
	})
}

// Close releases the underlying client.
func (s *Store) Close() {
	database.Disconnect(s.Client)
}
