// Package basehdl holds the shared HTTP handler plumbing: the unified
// response envelope and request body parsing with validation.
package basehdl

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/logger"
)

// JSONResponse is the envelope every endpoint returns.
type JSONResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Success writes a 200 envelope with data.
func Success(c fiber.Ctx, data interface{}) error {
	return SuccessWithStatus(c, common.StatusOK, data)
}

// SuccessWithStatus writes a success envelope with the given status.
func SuccessWithStatus(c fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(JSONResponse{
		Code:    "SUCCESS",
		Message: common.MsgSuccess,
		Status:  status,
		Data:    data,
	})
}

// Failure writes an error envelope. *common.Error values keep their code,
// message and status; anything else becomes an internal server error with
// the original error logged but not exposed.
func Failure(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		if appErr.StatusCode >= common.StatusInternalServerError {
			logger.WithRequest(c).WithError(err).Error("Request failed")
		}
		return c.Status(appErr.StatusCode).JSON(JSONResponse{
			Code:    appErr.Code.Code,
			Message: appErr.Message,
			Status:  appErr.StatusCode,
			Details: appErr.Details,
		})
	}

	logger.WithRequest(c).WithError(err).Error("Unhandled error")
	return c.Status(common.StatusInternalServerError).JSON(JSONResponse{
		Code:    common.ErrCodeInternalServer.Code,
		Message: "Error interno del servidor",
		Status:  common.StatusInternalServerError,
	})
}

// HandleResponse collapses the usual (data, err) service result into the
// right envelope.
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return Failure(c, err)
	}
	return Success(c, data)
}
