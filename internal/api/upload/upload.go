// Package upload issues signed-upload parameters for the Cloudinary
// browser widget. The API secret never leaves the server; the widget gets
// a one-shot SHA-1 signature over its upload parameters.
package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/cobreklo/portafolio-api/config"
	basehdl "github.com/cobreklo/portafolio-api/internal/api/base/handler"
	"github.com/cobreklo/portafolio-api/internal/common"
)

// SignatureInput selects what the widget is about to upload.
type SignatureInput struct {
	ResourceType string `json:"resourceType" validate:"required,oneof=image audio video"`
	Multiple     bool   `json:"multiple"`
}

// SignatureOutput is everything the widget needs for a signed upload.
type SignatureOutput struct {
	CloudName      string   `json:"cloudName"`
	APIKey         string   `json:"apiKey"`
	UploadPreset   string   `json:"uploadPreset"`
	Folder         string   `json:"folder"`
	Timestamp      int64    `json:"timestamp"`
	Signature      string   `json:"signature"`
	Multiple       bool     `json:"multiple"`
	AllowedFormats []string `json:"allowedFormats"`
}

var allowedFormats = map[string][]string{
	"image": {"jpg", "jpeg", "png", "webp", "gif"},
	"audio": {"mp3", "wav", "ogg", "m4a"},
	"video": {"mp4", "webm", "mov"},
}

// Handler signs upload requests from the panel.
type Handler struct {
	cfg      *config.Configuration
	validate *validator.Validate
	now      func() time.Time
}

// NewHandler wires the handler.
func NewHandler(cfg *config.Configuration, validate *validator.Validate) *Handler {
	return &Handler{cfg: cfg, validate: validate, now: time.Now}
}

// Sign handles POST /admin/upload/signature. Missing Cloudinary settings
// are a configuration error, reported as service-unavailable rather than
// a broken signature.
func (h *Handler) Sign(c fiber.Ctx) error {
	if !h.cfg.CloudinaryConfigured() {
		return basehdl.Failure(c, common.NewError(common.ErrCodeConfig,
			"La subida de archivos no está configurada", common.StatusServiceUnavailable, nil))
	}

	var input SignatureInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}

	timestamp := h.now().Unix()
	params := map[string]string{
		"timestamp":     fmt.Sprintf("%d", timestamp),
		"upload_preset": h.cfg.CloudinaryUploadPreset,
		"folder":        h.cfg.CloudinaryFolder,
	}

	return basehdl.Success(c, SignatureOutput{
		CloudName:      h.cfg.CloudinaryCloudName,
		APIKey:         h.cfg.CloudinaryAPIKey,
		UploadPreset:   h.cfg.CloudinaryUploadPreset,
		Folder:         h.cfg.CloudinaryFolder,
		Timestamp:      timestamp,
		Signature:      SignParams(params, h.cfg.CloudinaryAPISecret),
		Multiple:       input.Multiple,
		AllowedFormats: allowedFormats[input.ResourceType],
	})
}

// SignParams computes the Cloudinary signature: parameters sorted by key,
// joined as key=value with &, then SHA-1 over the string plus the secret.
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
