package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/starboard/internal/core"
	"github.com/vovakirdan/starboard/internal/proto"
)

// UserHandlers provides HTTP handlers for profile operations.
type UserHandlers struct {
	board *core.Board
	log   *zerolog.Logger
}

// NewUserHandlers creates a new user handlers instance.
func NewUserHandlers(board *core.Board, logger *zerolog.Logger) *UserHandlers {
	return &UserHandlers{
		board: board,
		log:   logger,
	}
}

// UpdateUser creates or updates a display profile.
// POST /user
func (h *UserHandlers) UpdateUser(c *gin.Context) {
	var req proto.UserRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	profile, err := h.board.UpdateProfile(c.Request.Context(), req.UserID, core.ProfileUpdate{
		Name:  req.Name,
		Color: req.Color,
		Shape: req.Shape,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.log.Info().
		Str("user_id", req.UserID).
		Str("name", profile.Name).
		Str("color", profile.Color.String()).
		Str("shape", profile.Shape.String()).
		Msg("profile updated")
	c.JSON(http.StatusOK, proto.UserResponse{
		Success:  true,
		UserInfo: profileToProto(profile),
	})
}
