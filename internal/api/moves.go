package api

import (
	"net/http"

	"github.com/halewood/trial-by-combat/internal/constants"
	"github.com/halewood/trial-by-combat/internal/game"
	"github.com/halewood/trial-by-combat/internal/network"
	"github.com/halewood/trial-by-combat/internal/service"

	"github.com/gin-gonic/gin"
)

type MoveRequest struct {
	PlayerUUID string `json:"player_uuid"`
	Move       string `json:"move"`
	// Target selects the gauntlet enemy (0..2); ignored in duels.
	Target int `json:"target"`
}

// SubmitMove stores a player's chosen move for the current turn and
// reports whether the turn resolved.
func (h *MatchHandler) SubmitMove(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	move, ok := game.ParseMoveType(req.Move)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMove})
		return
	}

	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}

	m, resolved, err := service.SubmitMove(h.repo, m.ID, req.PlayerUUID, move, req.Target, h.actionTimeout, h.rng)
	if err != nil {
		switch err {
		case service.ErrMatchNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		case service.ErrMatchNotInProgress:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchNotInProgress})
		case service.ErrMovesLocked:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMovesLockedResolving})
		case service.ErrMoveAlreadyChosen:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMoveAlreadyChosen})
		case service.ErrFighterNotInMatch:
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrPlayerNotInMatch})
		case service.ErrInvalidMove:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMove})
		case service.ErrNotEnoughCharge:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNotEnoughCharge})
		case service.ErrInvalidTarget:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidTarget})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreMove})
		}
		return
	}

	if resolved {
		h.publish(m)
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Turn resolved", "turn": m.Turn, constants.JSONKeyStatus: m.Status})
	} else {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Move stored. Waiting for opponent."})
	}
}

// publish streams the latest match state to spectators.
func (h *MatchHandler) publish(m *game.Match) {
	if h.hub == nil {
		return
	}
	h.hub.Publish(network.MatchEvent{
		JoinCode: m.JoinCode,
		Turn:     m.Turn,
		Status:   m.Status,
		Message:  m.Message,
		Summary:  m.LastTurnSummary,
	})
}
