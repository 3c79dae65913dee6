package service

import (
	"errors"
	"time"

	"github.com/halewood/trial-by-combat/internal/engine"
	"github.com/halewood/trial-by-combat/internal/game"
)

// MatchRepo is the minimal repository interface the match controller
// needs. Using a small interface simplifies testing.
type MatchRepo interface {
	GetMatchByID(id uint) (*game.Match, error)
	UpdateMatch(m *game.Match) error
	UpdateStatsOnMatchEnd(m *game.Match) error
}

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchNotJoinable   = errors.New("match is not waiting for players")
	ErrMatchNotInProgress = errors.New("match is not in progress")
	ErrMovesLocked        = errors.New("moves are locked; resolving current turn")
	ErrFighterNotInMatch  = errors.New("fighter not in match")
	ErrMoveAlreadyChosen  = errors.New("move already chosen this turn")
	ErrInvalidClass       = errors.New("unknown class")
	ErrInvalidMove        = errors.New("invalid move")
	ErrNotEnoughCharge    = errors.New("not enough charge for that move")
	ErrInvalidTarget      = errors.New("target is not a living enemy")
)

// NewMatch builds an unstarted match with the creating player in slot 0.
// The caller persists it and, for modes that need no second player,
// follows up with StartMatch.
func NewMatch(mode game.Mode, joinCode, playerUUID, playerName string, class game.Class) (*game.Match, error) {
	if !game.ValidClass(class) {
		return nil, ErrInvalidClass
	}
	f := game.NewFighter(playerName, class)
	f.Slot = 0
	f.PlayerUUID = playerUUID
	return &game.Match{
		JoinCode: joinCode,
		Mode:     mode,
		Status:   game.StatusWaitingForPlayers,
		Message:  "Waiting for the trial to begin.",
		Fighters: []game.Fighter{f},
	}, nil
}

// JoinMatch seats a second player in slot 1 of a waiting vs_player match.
func JoinMatch(m *game.Match, playerUUID, playerName string, class game.Class) error {
	if !game.ValidClass(class) {
		return ErrInvalidClass
	}
	if m.Mode != game.ModeVsPlayer || m.Status != game.StatusWaitingForPlayers || len(m.Fighters) != 1 {
		return ErrMatchNotJoinable
	}
	f := game.NewFighter(playerName, class)
	f.Slot = 1
	f.PlayerUUID = playerUUID
	m.Fighters = append(m.Fighters, f)
	return nil
}

// StartMatch fills in the computer-controlled side of the match, moves it
// to the first turn and persists it. vs_computer gets one opponent of a
// random class; gauntlet gets the full enemy lineup and scales the
// challenger's HP pool to one and a half times the enemies' total.
func StartMatch(repo MatchRepo, m *game.Match, actionTimeout time.Duration, rng engine.Roller) error {
	switch m.Mode {
	case game.ModeVsComputer:
		classes := game.Classes()
		class := classes[rng.Percent()%len(classes)]
		spec, _ := game.SpecFor(class)
		bot := game.NewFighter(spec.Name, class)
		bot.Slot = 1
		bot.IsComputer = true
		m.Fighters = append(m.Fighters, bot)

	case game.ModeVsPlayer:
		if len(m.Fighters) != 2 {
			return ErrMatchNotJoinable
		}

	case game.ModeGauntlet:
		for i, class := range game.Classes() {
			spec, _ := game.SpecFor(class)
			e := game.NewFighter(spec.Name, class)
			e.Slot = i + 1
			e.IsComputer = true
			m.Fighters = append(m.Fighters, e)
		}
		player := m.FighterBySlot(0)
		pool := engine.GauntletPlayerHitPoints(m.GauntletEnemies())
		player.HitPoints = pool
		player.MaxHitPoints = pool
	}

	m.Status = game.StatusInProgress
	m.Phase = game.PhaseSelecting
	m.Turn = 1
	m.Winner = ""
	m.Message = "The trial has begun. Choose your move."
	m.LastTurnSummary = ""
	m.ActionDeadline = time.Now().Add(actionTimeout)
	for i := range m.Fighters {
		m.Fighters[i].HasChosen = false
	}
	return repo.UpdateMatch(m)
}
