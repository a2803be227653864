package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/starboard/internal/core"
	"github.com/vovakirdan/starboard/internal/proto"
)

// BoardHandlers provides HTTP handlers for posting and polling messages.
type BoardHandlers struct {
	board *core.Board
	log   *zerolog.Logger
}

// NewBoardHandlers creates a new board handlers instance.
func NewBoardHandlers(board *core.Board, logger *zerolog.Logger) *BoardHandlers {
	return &BoardHandlers{
		board: board,
		log:   logger,
	}
}

// Send handles posting a message.
// POST /send
func (h *BoardHandlers) Send(c *gin.Context) {
	var req proto.SendRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	msg, err := h.board.Post(c.Request.Context(), req.Room, req.Text, req.SenderID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.log.Debug().
		Str("room", msg.Room).
		Str("message_id", msg.ID).
		Str("sender_id", msg.SenderID).
		Msg("message posted")
	c.JSON(http.StatusOK, proto.SendResponse{Success: true})
}

// Messages handles polling a room, optionally after a cursor.
// GET /messages?room=<name>&since=<message id>
func (h *BoardHandlers) Messages(c *gin.Context) {
	msgs, err := h.board.List(c.Request.Context(), c.Query("room"), c.Query("since"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, messagesToProto(msgs))
}

// Palette lists accepted colors and shapes.
// GET /palette
func (h *BoardHandlers) Palette(c *gin.Context) {
	c.JSON(http.StatusOK, paletteToProto())
}

// bindJSON decodes the request body into dst, answering 400 or 413 on failure.
func bindJSON(c *gin.Context, logger *zerolog.Logger, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, proto.ErrorResponse{Error: "request body too large"})
			return false
		}
		logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("invalid request body")
		c.JSON(http.StatusBadRequest, proto.ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// writeError maps domain errors to 400 and everything else to 500.
func writeError(c *gin.Context, logger *zerolog.Logger, err error) {
	var coreErr *core.CoreError
	if errors.As(err, &coreErr) {
		c.JSON(http.StatusBadRequest, proto.ErrorResponse{Error: coreErr.Message})
		return
	}
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, proto.ErrorResponse{Error: err.Error()})
}
