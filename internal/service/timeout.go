package service

import (
	"time"

	"github.com/halewood/trial-by-combat/internal/constants"
	"github.com/halewood/trial-by-combat/internal/engine"
	"github.com/halewood/trial-by-combat/internal/game"
	"github.com/halewood/trial-by-combat/internal/logging"
)

// HandleTimedOutMatch applies timeout resolution for a single match
// whose action deadline has passed.
// - no human moved at all -> finish the match as abandoned
// - exactly one duel player is missing -> auto-submit a basic attack
//   (always legal at cost 0) for the idle side
func HandleTimedOutMatch(repo MatchRepo, m *game.Match, actionTimeout time.Duration, rng engine.Roller) error {
	if m.Status != game.StatusInProgress || m.Phase != game.PhaseSelecting {
		return nil
	}

	var idle []*game.Fighter
	anyChose := false
	for i := range m.Fighters {
		f := &m.Fighters[i]
		if f.IsComputer {
			continue
		}
		if f.HasChosen {
			anyChose = true
		} else {
			idle = append(idle, f)
		}
	}

	if !anyChose {
		endMatch(m, "", "Match ended due to inactivity.")
		m.LastTurnSummary = "The turn timed out with no moves chosen."
		m.StatsCounted = true
		logging.Info("match abandoned on timeout", logging.Fields{constants.LogFieldMatchID: m.ID})
		return repo.UpdateMatch(m)
	}

	for _, f := range idle {
		logging.Info("auto-submitting attack for idle player", logging.Fields{constants.LogFieldMatchID: m.ID, constants.LogFieldSlot: f.Slot})
		if _, _, err := SubmitMove(repo, m.ID, f.PlayerUUID, game.MoveAttack, 0, actionTimeout, rng); err != nil {
			logging.Error("auto-submit attack failed", err, logging.Fields{constants.LogFieldMatchID: m.ID, constants.LogFieldSlot: f.Slot})
			return err
		}
	}
	return nil
}
