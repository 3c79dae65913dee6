package api

import (
	"time"

	"github.com/halewood/trial-by-combat/internal/engine"
	"github.com/halewood/trial-by-combat/internal/network"
	"github.com/halewood/trial-by-combat/internal/storage"
)

// MatchHandler groups all match-related HTTP handlers.
type MatchHandler struct {
	repo          storage.Repository
	hub           *network.Broadcaster
	rng           engine.Roller
	actionTimeout time.Duration
}

// NewMatchHandler creates a MatchHandler with the given repository,
// spectator hub and configured per-turn action timeout.
func NewMatchHandler(repo storage.Repository, hub *network.Broadcaster, rng engine.Roller, actionTimeout time.Duration) *MatchHandler {
	return &MatchHandler{repo: repo, hub: hub, rng: rng, actionTimeout: actionTimeout}
}
