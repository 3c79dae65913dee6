package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/halewood/trial-by-combat/internal/engine"
	"github.com/halewood/trial-by-combat/internal/game"
)

// SubmitMove records a player's chosen move and resolves the turn once
// every selection is in. In vs_computer matches the server rolls the
// opponent's move immediately, so a single submission resolves the turn.
// Returns the updated match and whether the turn was resolved.
func SubmitMove(repo MatchRepo, matchID uint, playerUUID string, move game.MoveType, target int, actionTimeout time.Duration, rng engine.Roller) (*game.Match, bool, error) {
	m, err := repo.GetMatchByID(matchID)
	if err != nil || m == nil {
		return nil, false, ErrMatchNotFound
	}
	if m.Status != game.StatusInProgress {
		return nil, false, ErrMatchNotInProgress
	}
	if m.Phase != game.PhaseSelecting {
		return nil, false, ErrMovesLocked
	}

	f := m.FighterByUUID(playerUUID)
	if f == nil || f.IsComputer {
		return nil, false, ErrFighterNotInMatch
	}
	if f.HasChosen {
		return nil, false, ErrMoveAlreadyChosen
	}
	if !move.Valid() {
		return nil, false, ErrInvalidMove
	}
	moves := game.MovesFor(f.Class)
	if f.Charge < moves[move].Cost {
		return nil, false, ErrNotEnoughCharge
	}
	if m.Mode == game.ModeGauntlet {
		enemies := m.GauntletEnemies()
		if target < 0 || target >= len(enemies) || !enemies[target].Alive() {
			return nil, false, ErrInvalidTarget
		}
	}

	f.HasChosen = true
	f.PendingMove = move
	f.PendingTarget = target

	if m.Mode == game.ModeVsComputer {
		bot := m.FighterBySlot(1)
		bot.PendingMove = engine.ChooseMove(bot, f, rng)
		bot.HasChosen = true
	}

	resolved := false
	if allChosen(m) {
		resolveMatchTurn(m, rng)
		if m.Status == game.StatusFinished {
			if !m.StatsCounted {
				_ = repo.UpdateStatsOnMatchEnd(m)
				m.StatsCounted = true
			}
		} else {
			m.ActionDeadline = time.Now().Add(actionTimeout)
		}
		resolved = true
	}

	if err := repo.UpdateMatch(m); err != nil {
		return nil, resolved, err
	}
	return m, resolved, nil
}

func allChosen(m *game.Match) bool {
	if m.Mode == game.ModeGauntlet {
		return m.FighterBySlot(0).HasChosen
	}
	for i := range m.Fighters {
		if !m.Fighters[i].HasChosen {
			return false
		}
	}
	return true
}

// resolveMatchTurn runs the engine for the pending selections and then
// applies the terminal checks in a fixed order: knockouts first, the
// turn cap second, otherwise a fresh selection phase.
func resolveMatchTurn(m *game.Match, rng engine.Roller) {
	log := &game.BattleLog{}

	if m.Mode == game.ModeGauntlet {
		player := m.FighterBySlot(0)
		engine.ResolveGauntletTurn(player, m.GauntletEnemies(), player.PendingMove, player.PendingTarget, log, rng)
		m.LastTurnSummary = strings.Join(log.Lines(), "\n")
		finishGauntlet(m)
		return
	}

	a := m.FighterBySlot(0)
	b := m.FighterBySlot(1)
	engine.ResolveTurn(a, b, a.PendingMove, b.PendingMove, log, rng)
	m.LastTurnSummary = strings.Join(log.Lines(), "\n")
	finishDuel(m, a, b)
}

func finishDuel(m *game.Match, a, b *game.Fighter) {
	downA, downB := !a.Alive(), !b.Alive()
	switch {
	case downA && downB:
		endMatch(m, "", "DRAW! Both fell!")
	case downA:
		endMatch(m, b.Name, fmt.Sprintf("%s WINS!", b.Name))
	case downB:
		endMatch(m, a.Name, fmt.Sprintf("%s WINS!", a.Name))
	case m.Turn >= game.MaxTurns:
		switch {
		case a.HitPoints > b.HitPoints:
			endMatch(m, a.Name, fmt.Sprintf("%s WINS by HP!", a.Name))
		case b.HitPoints > a.HitPoints:
			endMatch(m, b.Name, fmt.Sprintf("%s WINS by HP!", b.Name))
		default:
			endMatch(m, "", "DRAW! Equal HP!")
		}
	default:
		nextTurn(m)
	}
}

func finishGauntlet(m *game.Match) {
	player := m.FighterBySlot(0)
	allDown := true
	for _, e := range m.GauntletEnemies() {
		if e.Alive() {
			allDown = false
			break
		}
	}
	switch {
	case !player.Alive():
		endMatch(m, "", "You fell... the Gauntlet wins.")
	case allDown:
		endMatch(m, player.Name, "GAUNTLET CLEARED! Champion stands alone!")
	case m.Turn >= game.MaxTurns:
		endMatch(m, "", "Time expired. The Gauntlet is unfinished.")
	default:
		nextTurn(m)
	}
}

func endMatch(m *game.Match, winner, message string) {
	m.Status = game.StatusFinished
	m.Phase = game.PhaseResolved
	m.Winner = winner
	m.Message = message
	m.ActionDeadline = time.Time{}
}

func nextTurn(m *game.Match) {
	m.Turn++
	m.Phase = game.PhaseSelecting
	m.Message = "Choose your move."
	for i := range m.Fighters {
		m.Fighters[i].HasChosen = false
		m.Fighters[i].PendingMove = game.MoveAttack
		m.Fighters[i].PendingTarget = 0
	}
}
