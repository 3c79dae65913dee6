package engine

import "github.com/halewood/trial-by-combat/internal/game"

// calcDamage is the direct-hit formula shared by attacks and ultimates.
// Integer division keeps the arithmetic deterministic across platforms.
func calcDamage(base, atk, def int) int {
	d := base + atk/2 - def/3
	if d < 1 {
		return 1
	}
	return d
}

// calcDotTick is the per-turn damage of an active damage-over-time stack.
func calcDotTick(base, atk, def int) int {
	d := base + atk/4 - def/4
	if d < 1 {
		return 1
	}
	return d
}

// dodgeChance is the percent chance a defender avoids an attack or a
// fresh DoT application. Ultimates are never dodged.
func dodgeChance(def *game.Fighter) int {
	return 5 + def.EffectiveSpeed()
}

func applyCharge(f *game.Fighter, mv game.Move) {
	f.Charge += game.ChargeGain[mv.Type] - mv.Cost
	if f.Charge > game.MaxCharge {
		f.Charge = game.MaxCharge
	}
	if f.Charge < 0 {
		f.Charge = 0
	}
}
