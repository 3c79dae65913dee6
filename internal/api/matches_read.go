package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/halewood/trial-by-combat/internal/constants"
	"github.com/halewood/trial-by-combat/internal/dedupe"
	"github.com/halewood/trial-by-combat/internal/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListClasses returns the static class catalog: stats, buff, damage
// constants and the five moves of each class.
func (h *MatchHandler) ListClasses(c *gin.Context) {
	classes := game.Classes()
	out := make([]game.ClassSpec, 0, len(classes))
	for _, cl := range classes {
		spec, _ := game.SpecFor(cl)
		out = append(out, spec)
	}
	c.JSON(http.StatusOK, out)
}

// ListOpenMatches returns recent vs_player matches still waiting for an
// opponent.
func (h *MatchHandler) ListOpenMatches(c *gin.Context) {
	matches, err := h.repo.GetOpenMatches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(matches)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListLeaderboard returns the top players by wins. Concurrent requests
// for the same limit collapse into one database query.
func (h *MatchHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	key := fmt.Sprintf("top:%d", limit)
	v, err, _ := dedupe.LeaderboardGroup.Do(key, func() (interface{}, error) {
		return h.repo.GetTopPlayers(limit)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetProfile returns a player's aggregate results by identity token.
// Unknown players get a zeroed profile rather than an error.
func (h *MatchHandler) GetProfile(c *gin.Context) {
	playerUUID := c.Param("playerUUID")
	if _, err := uuid.Parse(playerUUID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p, err := h.repo.GetProfileByUUID(playerUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProfile})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProfile})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetMatch returns a match by join code, fighters included.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}
	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, out)
}
