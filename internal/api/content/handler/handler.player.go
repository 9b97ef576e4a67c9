package contenthdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cobreklo/portafolio-api/internal/api/base/handler"
	contentsvc "github.com/cobreklo/portafolio-api/internal/api/content/service"
	"github.com/cobreklo/portafolio-api/internal/common"
	"github.com/cobreklo/portafolio-api/internal/player"
)

// PlayerHandler exposes the server-held player sessions under the music
// section. A session is created from the current track list and then
// driven by discrete transitions.
type PlayerHandler struct {
	music    *contentsvc.MusicService
	sessions *player.Sessions
}

// NewPlayerHandler wires the handler.
func NewPlayerHandler(music *contentsvc.MusicService, sessions *player.Sessions) *PlayerHandler {
	return &PlayerHandler{music: music, sessions: sessions}
}

type playerSessionOutput struct {
	SessionID string          `json:"sessionId"`
	State     player.Snapshot `json:"state"`
}

// Create handles POST /musica/player.
func (h *PlayerHandler) Create(c fiber.Ctx) error {
	music, err := h.music.Get(c.Context())
	if err != nil {
		return basehdl.Failure(c, err)
	}
	id, snapshot := h.sessions.Create(len(music.ListaCanciones))
	return basehdl.Success(c, playerSessionOutput{SessionID: id, State: snapshot})
}

// Get handles GET /musica/player/:id.
func (h *PlayerHandler) Get(c fiber.Ctx) error {
	p, err := h.session(c)
	if err != nil {
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, p.Snapshot())
}

// Toggle handles POST /musica/player/:id/toggle.
func (h *PlayerHandler) Toggle(c fiber.Ctx) error {
	p, err := h.session(c)
	if err != nil {
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, p.Toggle())
}

// Select handles POST /musica/player/:id/select?index=N.
func (h *PlayerHandler) Select(c fiber.Ctx) error {
	p, err := h.session(c)
	if err != nil {
		return basehdl.Failure(c, err)
	}
	index, err := strconv.Atoi(c.Query("index", "-1"))
	if err != nil || index < 0 {
		return basehdl.Failure(c, common.ErrInvalidInput)
	}
	return basehdl.Success(c, p.Select(index))
}

// TrackEnd handles POST /musica/player/:id/track-end.
func (h *PlayerHandler) TrackEnd(c fiber.Ctx) error {
	p, err := h.session(c)
	if err != nil {
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, p.TrackEnd())
}

// Next handles POST /musica/player/:id/next.
func (h *PlayerHandler) Next(c fiber.Ctx) error {
	p, err := h.session(c)
	if err != nil {
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, p.Next())
}

// Prev handles POST /musica/player/:id/prev.
func (h *PlayerHandler) Prev(c fiber.Ctx) error {
	p, err := h.session(c)
	if err != nil {
		return basehdl.Failure(c, err)
	}
	return basehdl.Success(c, p.Prev())
}

// Shuffle handles POST /musica/player/:id/shuffle?on=true.
func (h *PlayerHandler) Shuffle(c fiber.Ctx) error {
	p, err := h.session(c)
	if err != nil {
		return basehdl.Failure(c, err)
	}
	on, err := strconv.ParseBool(c.Query("on", "true"))
	if err != nil {
		return basehdl.Failure(c, common.ErrInvalidInput)
	}
	return basehdl.Success(c, p.SetShuffle(on))
}

// Repeat handles POST /musica/player/:id/repeat?on=true.
func (h *PlayerHandler) Repeat(c fiber.Ctx) error {
	p, err := h.session(c)
	if err != nil {
		return basehdl.Failure(c, err)
	}
	on, err := strconv.ParseBool(c.Query("on", "true"))
	if err != nil {
		return basehdl.Failure(c, common.ErrInvalidInput)
	}
	return basehdl.Success(c, p.SetRepeat(on))
}

func (h *PlayerHandler) session(c fiber.Ctx) (*player.Player, error) {
	id, err := basehdl.RequireParam(c, "id")
	if err != nil {
		return nil, err
	}
	return h.sessions.Get(id)
}
