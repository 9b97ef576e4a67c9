package contentmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is one visitor review. A review is publicly visible if and only
// if Aprobado is true; Verificado is an extra badge with no visibility
// effect. Fecha is assigned by the server at submission.
type Review struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	Nombre     string `json:"nombre" bson:"nombre"`
	Mensaje    string `json:"mensaje" bson:"mensaje"`
	Puntuacion int    `json:"puntuacion" bson:"puntuacion"`
	Fecha      int64  `json:"fecha" bson:"fecha"`

	Aprobado   bool `json:"aprobado" bson:"aprobado"`
	Verificado bool `json:"verificado" bson:"verificado"`

	CreatedAt int64 `json:"-" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"-" bson:"updatedAt,omitempty"`
}
