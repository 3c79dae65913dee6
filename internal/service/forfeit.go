package service

import (
	"fmt"

	"github.com/halewood/trial-by-combat/internal/game"
)

// Forfeit concedes an in-progress match on behalf of the given player.
// In a duel the opponent takes the win; in the gauntlet the run simply
// ends. Stats are recorded once, the same as a normal finish.
func Forfeit(repo MatchRepo, matchID uint, playerUUID string) (*game.Match, error) {
	m, err := repo.GetMatchByID(matchID)
	if err != nil || m == nil {
		return nil, ErrMatchNotFound
	}
	if m.Status != game.StatusInProgress {
		return nil, ErrMatchNotInProgress
	}
	f := m.FighterByUUID(playerUUID)
	if f == nil || f.IsComputer {
		return nil, ErrFighterNotInMatch
	}

	if m.Mode == game.ModeGauntlet {
		endMatch(m, "", "You yield. The Gauntlet stands.")
	} else {
		var opp *game.Fighter
		for i := range m.Fighters {
			if m.Fighters[i].Slot != f.Slot {
				opp = &m.Fighters[i]
				break
			}
		}
		winner := ""
		if opp != nil {
			winner = opp.Name
		}
		endMatch(m, winner, fmt.Sprintf("%s forfeited.", f.Name))
	}
	if !m.StatsCounted {
		_ = repo.UpdateStatsOnMatchEnd(m)
		m.StatsCounted = true
	}
	if err := repo.UpdateMatch(m); err != nil {
		return nil, err
	}
	return m, nil
}
