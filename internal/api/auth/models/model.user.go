// Package authmodels defines the admin user and its per-device tokens.
package authmodels

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an admin account. The public site never sees users; only the
// CMS panel authenticates.
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Name     string             `json:"name" bson:"name,omitempty"`
	// One token per device, keyed by hwid. Logging in on a device
	// replaces that device's token and leaves the others valid.
	Tokens  []Token `json:"-" bson:"tokens,omitempty"`
	IsBlock bool    `json:"isBlock" bson:"isBlock"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Token is one device's session token.
type Token struct {
	Hwid     string `json:"hwid" bson:"hwid"`
	JwtToken string `json:"jwtToken" bson:"jwtToken"`
}

// JwtClaims is the JWT payload. UserID and Hwid locate the exact token
// entry on the user document, so revocation works per device.
type JwtClaims struct {
	UserID string `json:"userId"`
	Hwid   string `json:"hwid"`
	jwt.RegisteredClaims
}
