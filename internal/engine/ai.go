package engine

import "github.com/halewood/trial-by-combat/internal/game"

// ChooseMove picks a move for a computer-controlled fighter. The policy
// is a priority cascade: each rule makes its own random draw, so earlier
// rules failing never changes the odds of later ones. The returned move
// is always affordable at the fighter's current charge.
func ChooseMove(self, opp *game.Fighter, rng Roller) game.MoveType {
	hpPct := self.HitPoints * 100 / self.MaxHitPoints

	if self.Charge == game.MaxCharge && rng.Percent() < 65 {
		return game.MoveUltimate
	}
	if hpPct < 25 && rng.Percent() < 60 {
		return game.MoveDefend
	}
	if opp.BuffActive {
		// One draw covers both branches so punishing a buff with an
		// attack stays more likely than answering with a DoT.
		r := rng.Percent()
		if r < 45 {
			return game.MoveAttack
		}
		if r < 70 && self.Charge >= 3 {
			return game.MoveDot
		}
	}
	if opp.DotStacks < game.MaxDotStacks && self.Charge >= 3 && rng.Percent() < 35 {
		return game.MoveDot
	}
	if !self.BuffActive && self.Charge >= 2 && hpPct > 40 && rng.Percent() < 40 {
		return game.MoveBuff
	}
	if self.Charge >= 7 && self.Charge < game.MaxCharge && rng.Percent() < 25 {
		return game.MoveDefend
	}
	return game.MoveAttack
}
