// Package authhdl exposes the auth endpoints.
package authhdl

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	authdto "github.com/cobreklo/portafolio-api/internal/api/auth/dto"
	authmodels "github.com/cobreklo/portafolio-api/internal/api/auth/models"
	authsvc "github.com/cobreklo/portafolio-api/internal/api/auth/service"
	basehdl "github.com/cobreklo/portafolio-api/internal/api/base/handler"
	"github.com/cobreklo/portafolio-api/internal/api/middleware"
	"github.com/cobreklo/portafolio-api/internal/logger"
)

// AuthHandler handles login, logout and the current-user probe.
type AuthHandler struct {
	service  *authsvc.AuthService
	validate *validator.Validate
}

// NewAuthHandler wires the handler.
func NewAuthHandler(service *authsvc.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validate: validate}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var input authdto.LoginInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}

	output, err := h.service.Login(c.Context(), &input)
	if err != nil {
		logger.WithRequest(c).WithField("email", input.Email).Info("Login rejected")
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, output)
}

// Logout handles POST /auth/logout. Requires a valid token.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return basehdl.Failure(c, err)
	}

	// Body is optional; without one the device of the presented token
	// is signed out.
	var input authdto.LogoutInput
	if len(c.Body()) > 0 {
		if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
			return basehdl.Failure(c, err)
		}
	}
	hwid := input.Hwid
	if hwid == "" {
		hwid = middleware.CurrentHwid(c)
	}

	if err := h.service.Logout(c.Context(), user.ID.Hex(), hwid); err != nil {
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, nil)
}

// Profile handles GET /auth/profile. The panel uses it as the signed-in
// gate: 200 with the user means authenticated, 401 means show the login
// screen.
func (h *AuthHandler) Profile(c fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, sanitize(user))
}

func sanitize(user *authmodels.User) map[string]interface{} {
	if user == nil {
		return nil
	}
	return map[string]interface{}{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"name":  user.Name,
	}
}
