package storage

import (
	"time"

	"github.com/halewood/trial-by-combat/internal/game"
)

type Repository interface {
	CreateMatch(m *game.Match) error
	GetMatchByID(id uint) (*game.Match, error)
	FindMatchByJoinCode(code string) (*game.Match, error)
	// GetOpenMatches returns recent player-vs-player matches that are
	// still waiting for an opponent.
	GetOpenMatches() ([]game.Match, error)
	UpdateMatch(m *game.Match) error

	UpsertProfile(playerUUID, name string) error
	GetProfileByUUID(playerUUID string) (*game.Profile, error)
	UpdateStatsOnMatchEnd(m *game.Match) error
	// Leaderboard
	GetTopPlayers(limit int) ([]game.Profile, error)

	// FindTimedOutMatches returns matches that are in progress, still
	// waiting on a move and whose action deadline is at or before the
	// provided time. The caller decides how to resolve them (for
	// example, forcing a basic attack for the idle side).
	FindTimedOutMatches(now time.Time) ([]game.Match, error)
}
