// Package authsvc implements login, logout and token validation for the
// CMS panel.
package authsvc

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/cobreklo/portafolio-api/internal/api/auth/dto"
	authmodels "github.com/cobreklo/portafolio-api/internal/api/auth/models"
	basesvc "github.com/cobreklo/portafolio-api/internal/api/base/service"
	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/database"
	"github.com/cobreklo/portafolio-api/internal/logger"
	"github.com/cobreklo/portafolio-api/internal/store"
	"github.com/cobreklo/portafolio-api/internal/utility"
)

const (
	tokenLifetime = 7 * 24 * time.Hour
	defaultHwid   = "web"

	// Validated tokens are cached briefly so a burst of panel requests
	// costs one user lookup. Logout removes the entry immediately, so a
	// signed-out token never rides out the TTL.
	tokenCacheTTL = 30 * time.Second
)

// cachedSession is one validated token held in the cache.
type cachedSession struct {
	user *authmodels.User
	hwid string
}

// AuthService manages admin accounts and their sessions.
type AuthService struct {
	*basesvc.BaseServiceMongo[authmodels.User]
	jwtSecret  []byte
	tokenCache *utility.Cache
}

// NewAuthService binds the service to the auth_users collection.
func NewAuthService(s *store.Store) *AuthService {
	return &AuthService{
		BaseServiceMongo: basesvc.NewBaseService[authmodels.User](s, database.CollectionAuthUsers),
		jwtSecret:        []byte(s.Config.JwtSecret),
		tokenCache:       utility.NewCache(tokenCacheTTL),
	}
}

// Login checks credentials and issues a JWT stored on the user document
// under the device's hwid. Wrong email and wrong password return the same
// error so the response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginOutput, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if user.IsBlock {
		return nil, common.ErrUserBlocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	hwid := input.Hwid
	if hwid == "" {
		hwid = defaultHwid
	}

	now := time.Now()
	claims := authmodels.JwtClaims{
		UserID: user.ID.Hex(),
		Hwid:   hwid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Error interno del servidor", common.StatusInternalServerError, err)
	}

	// Replace this device's token, keep other devices signed in. The
	// replaced token also leaves the validation cache.
	s.invalidateCachedToken(&user, hwid)
	if _, err := s.UpdateOne(ctx, bson.M{"_id": user.ID},
		&basesvc.UpdateData{Pull: bson.M{"tokens": bson.M{"hwid": hwid}}}); err != nil {
		return nil, err
	}
	if _, err := s.AppendToArrayField(ctx, bson.M{"_id": user.ID}, "tokens",
		authmodels.Token{Hwid: hwid, JwtToken: tokenString}); err != nil {
		return nil, err
	}

	return &authdto.LoginOutput{Token: tokenString, Email: user.Email, Name: user.Name}, nil
}

// Logout removes the device's token from the user document and drops it
// from the validation cache, so the token stops working right away.
func (s *AuthService) Logout(ctx context.Context, userID string, hwid string) error {
	if hwid == "" {
		hwid = defaultHwid
	}
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return common.ErrInvalidFormat
	}

	user, err := s.FindOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	s.invalidateCachedToken(&user, hwid)

	_, err = s.RemoveFromArrayByPredicate(ctx, bson.M{"_id": objectID}, "tokens", bson.M{"hwid": hwid})
	return err
}

// invalidateCachedToken evicts the cached validation of the device's
// stored token. Other devices' entries stay cached.
func (s *AuthService) invalidateCachedToken(user *authmodels.User, hwid string) {
	for _, t := range user.Tokens {
		if t.Hwid == hwid {
			s.tokenCache.Delete(t.JwtToken)
		}
	}
}

// ValidateToken parses and verifies a bearer token, then checks that the
// token is still stored on the user's document for its device. A token
// removed by logout fails here even though its signature is valid. It
// returns the user plus the token's device hwid, which callers use as
// the default logout target.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*authmodels.User, string, error) {
	if cached, ok := s.tokenCache.Get(tokenString); ok {
		session := cached.(cachedSession)
		return session.user, session.hwid, nil
	}

	claims := &authmodels.JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, "", common.ErrTokenExpired
		}
		return nil, "", common.ErrTokenInvalid
	}

	user, err := s.FindOneById(ctx, claims.UserID)
	if err != nil {
		return nil, "", common.ErrTokenInvalid
	}
	if user.IsBlock {
		return nil, "", common.ErrUserBlocked
	}
	for _, t := range user.Tokens {
		if t.Hwid == claims.Hwid && t.JwtToken == tokenString {
			s.tokenCache.Set(tokenString, cachedSession{user: &user, hwid: claims.Hwid})
			return &user, claims.Hwid, nil
		}
	}
	return nil, "", common.ErrTokenInvalid
}

// EnsureAdminUser creates the bootstrap owner account from ADMIN_EMAIL /
// ADMIN_PASSWORD when no account with that email exists yet.
func (s *AuthService) EnsureAdminUser(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.FindOne(ctx, bson.M{"email": email}); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.InsertOne(ctx, authmodels.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
	})
	if err != nil {
		return err
	}

	logger.GetAppLogger().Infof("Created bootstrap admin account %s", email)
	return nil
}
