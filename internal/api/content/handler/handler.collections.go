package contenthdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cobreklo/portafolio-api/internal/api/base/handler"
	contentdto "github.com/cobreklo/portafolio-api/internal/api/content/dto"
)

// ListAlbums handles GET /albumes.
func (h *ContentHandler) ListAlbums(c fiber.Ctx) error {
	albums, err := h.Albums.List(c.Context())
	return basehdl.HandleResponse(c, albums, err)
}

// GetAlbum handles GET /albumes/:id.
func (h *ContentHandler) GetAlbum(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	album, err := h.Albums.FindOneById(c.Context(), id)
	return basehdl.HandleResponse(c, album, err)
}

// CreateAlbum handles POST /admin/albumes.
func (h *ContentHandler) CreateAlbum(c fiber.Ctx) error {
	var input contentdto.CreateAlbumInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}
	album, err := h.Albums.Create(c.Context(), &input)
	return basehdl.HandleResponse(c, album, err)
}

// DeleteAlbum handles DELETE /admin/albumes/:id.
func (h *ContentHandler) DeleteAlbum(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	if err := h.Albums.DeleteById(c.Context(), id); err != nil {
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, nil)
}

// AddAlbumPhoto handles POST /admin/albumes/:id/fotos.
func (h *ContentHandler) AddAlbumPhoto(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	var input contentdto.AlbumPhotoInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}
	album, err := h.Albums.AddPhoto(c.Context(), id, input.URL)
	return basehdl.HandleResponse(c, album, err)
}

// RemoveAlbumPhoto handles DELETE /admin/albumes/:id/fotos. The photo URL
// travels in the body because URLs do not survive as path segments.
func (h *ContentHandler) RemoveAlbumPhoto(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	var input contentdto.AlbumPhotoInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}
	album, err := h.Albums.RemovePhoto(c.Context(), id, input.URL)
	return basehdl.HandleResponse(c, album, err)
}

// ListShorts handles GET /cortometrajes.
func (h *ContentHandler) ListShorts(c fiber.Ctx) error {
	shorts, err := h.Shorts.List(c.Context())
	return basehdl.HandleResponse(c, shorts, err)
}

// CreateShort handles POST /admin/cortometrajes.
func (h *ContentHandler) CreateShort(c fiber.Ctx) error {
	var input contentdto.CreateShortInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}
	short, err := h.Shorts.Create(c.Context(), &input)
	return basehdl.HandleResponse(c, short, err)
}

// DeleteShort handles DELETE /admin/cortometrajes/:id.
func (h *ContentHandler) DeleteShort(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	if err := h.Shorts.DeleteById(c.Context(), id); err != nil {
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, nil)
}

// SubmitReview handles POST /resenas, the public review form.
func (h *ContentHandler) SubmitReview(c fiber.Ctx) error {
	var input contentdto.SubmitReviewInput
	if err := basehdl.ParseAndValidate(c, h.validate, &input); err != nil {
		return basehdl.Failure(c, err)
	}
	review, err := h.Reviews.SubmitPublic(c.Context(), &input)
	return basehdl.HandleResponse(c, review, err)
}

// ListPublicReviews handles GET /resenas.
func (h *ContentHandler) ListPublicReviews(c fiber.Ctx) error {
	reviews, err := h.Reviews.ListPublic(c.Context())
	return basehdl.HandleResponse(c, reviews, err)
}

// ListAllReviews handles GET /admin/resenas with page/limit query params.
func (h *ContentHandler) ListAllReviews(c fiber.Ctx) error {
	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	result, err := h.Reviews.ListAll(c.Context(), page, limit)
	return basehdl.HandleResponse(c, result, err)
}

// ToggleReviewApproved handles POST /admin/resenas/:id/aprobar.
func (h *ContentHandler) ToggleReviewApproved(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	review, err := h.Reviews.ToggleApproved(c.Context(), id)
	return basehdl.HandleResponse(c, review, err)
}

// ToggleReviewVerified handles POST /admin/resenas/:id/verificar.
func (h *ContentHandler) ToggleReviewVerified(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	review, err := h.Reviews.ToggleVerified(c.Context(), id)
	return basehdl.HandleResponse(c, review, err)
}

// DeleteReview handles DELETE /admin/resenas/:id.
func (h *ContentHandler) DeleteReview(c fiber.Ctx) error {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return basehdl.Failure(c, err)
	}
	if err := h.Reviews.DeleteById(c.Context(), id); err != nil {
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, nil)
}
