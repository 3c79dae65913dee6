package api

import (
	"net/http"

	"github.com/halewood/trial-by-combat/internal/constants"
	"github.com/halewood/trial-by-combat/internal/game"
	"github.com/halewood/trial-by-combat/internal/logging"
	"github.com/halewood/trial-by-combat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateMatchPayload struct {
	Mode       string `json:"mode"`
	PlayerName string `json:"player_name"`
	Class      string `json:"class"`
}

// CreateMatch creates a new match and returns the join code plus the
// caller's identity token. vs_computer and gauntlet matches start
// immediately; vs_player matches wait for an opponent to join.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.PlayerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNameRequired})
		return
	}
	mode := game.Mode(req.Mode)
	if mode != game.ModeVsComputer && mode != game.ModeVsPlayer && mode != game.ModeGauntlet {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownMode})
		return
	}

	playerUUID := uuid.NewString()
	m, err := service.NewMatch(mode, generateJoinCode(), playerUUID, req.PlayerName, game.Class(req.Class))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownClass})
		return
	}

	_ = h.repo.UpsertProfile(playerUUID, m.Fighters[0].Name)

	if err := h.repo.CreateMatch(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateMatch})
		return
	}

	if mode != game.ModeVsPlayer {
		if err := service.StartMatch(h.repo, m, h.actionTimeout, h.rng); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
			return
		}
	}

	logging.Info("match created", logging.Fields{
		constants.LogFieldMatchID:  m.ID,
		constants.LogFieldJoinCode: m.JoinCode,
		constants.LogFieldMode:     string(mode),
	})

	c.JSON(http.StatusCreated, gin.H{
		"match_id":    m.ID,
		"join_code":   m.JoinCode,
		"player_uuid": playerUUID,
	})
}

type JoinMatchPayload struct {
	JoinCode   string `json:"join_code"`
	PlayerName string `json:"player_name"`
	Class      string `json:"class"`
}

// JoinMatch seats a second player in a waiting vs_player match and
// starts the trial.
func (h *MatchHandler) JoinMatch(c *gin.Context) {
	var req JoinMatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.PlayerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNameRequired})
		return
	}
	code := normalizeJoinCode(req.JoinCode)
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}
	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}

	playerUUID := uuid.NewString()
	if err := service.JoinMatch(m, playerUUID, req.PlayerName, game.Class(req.Class)); err != nil {
		switch err {
		case service.ErrInvalidClass:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownClass})
		default:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchFull})
		}
		return
	}

	_ = h.repo.UpsertProfile(playerUUID, req.PlayerName)

	if err := service.StartMatch(h.repo, m, h.actionTimeout, h.rng); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
		return
	}

	h.publish(m)

	c.JSON(http.StatusOK, gin.H{
		"match_id":    m.ID,
		"join_code":   m.JoinCode,
		"player_uuid": playerUUID,
		"message":     "Successfully joined match",
	})
}

type ForfeitPayload struct {
	PlayerUUID string `json:"player_uuid"`
}

// Forfeit concedes an in-progress match.
func (h *MatchHandler) Forfeit(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}
	var req ForfeitPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}

	m, err = service.Forfeit(h.repo, m.ID, req.PlayerUUID)
	if err != nil {
		switch err {
		case service.ErrMatchNotInProgress:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchNotInProgress})
		case service.ErrFighterNotInMatch:
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrPlayerNotInMatch})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
		}
		return
	}

	h.publish(m)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: m.Message})
}
