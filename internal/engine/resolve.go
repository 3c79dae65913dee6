package engine

import "github.com/halewood/trial-by-combat/internal/game"

// ResolveTurn applies one simultaneous duel turn. Both fighters have
// already locked a move; the caller is responsible for having rejected
// moves the fighter cannot afford. Effects run in a fixed order: A's
// action against B, B's action against A (both reading the stats frozen
// at the start of their pass), then DoT ticks, charge updates and buff
// countdowns for both sides.
func ResolveTurn(a, b *game.Fighter, moveA, moveB game.MoveType, log *game.BattleLog, rng Roller) {
	movesA := game.MovesFor(a.Class)
	movesB := game.MovesFor(b.Class)
	tc := newTurnContext(log, rng)

	tc.addf("%s used %s", a.Name, movesA[moveA].Name)
	tc.addf("%s used %s", b.Name, movesB[moveB].Name)

	tc.applyAction(a, b, moveA, moveB)
	tc.applyAction(b, a, moveB, moveA)

	tc.tickDot(a, b)
	tc.tickDot(b, a)

	applyCharge(a, movesA[moveA])
	applyCharge(b, movesB[moveB])

	tc.tickBuff(a)
	tc.tickBuff(b)
}

// applyAction resolves one fighter's chosen move against the other,
// including the cross-move reactions (block, off-guard, interrupt,
// suppression) that depend on what the opponent picked this turn.
func (tc *turnContext) applyAction(att, def *game.Fighter, myType, oppType game.MoveType) {
	spec, _ := game.SpecFor(att.Class)
	atk := att.EffectiveAttack()
	defStat := def.EffectiveDefense()
	dodge := dodgeChance(def)

	switch myType {
	case game.MoveAttack:
		if tc.rng.Percent() < dodge {
			tc.addf("%s dodged!", def.Name)
			return
		}
		mult, suffix := 1.0, ""
		switch oppType {
		case game.MoveDefend:
			mult, suffix = 0.5, " (blocked)"
		case game.MoveBuff:
			mult, suffix = 1.3, " (off-guard)"
		}
		crit := tc.rng.Percent() < att.CritChance
		dmg := calcDamage(spec.AttackDamage, atk, defStat)
		if crit {
			dmg = dmg * 3 / 2
		}
		dmg = int(float64(dmg) * mult)
		if dmg < 1 {
			dmg = 1
		}
		def.HitPoints -= dmg
		tc.addf("%s%s -> %s: %d dmg%s", critPrefix(crit), att.Name, def.Name, dmg, suffix)

	case game.MoveDot:
		if oppType == game.MoveAttack {
			// An attack breaks the caster's concentration before
			// the dodge check ever happens.
			tc.addf("%s's DoT interrupted!", att.Name)
			return
		}
		if tc.rng.Percent() < dodge {
			tc.addf("%s evaded DoT!", def.Name)
			return
		}
		if def.DotStacks < game.MaxDotStacks {
			def.DotStacks++
		}
		def.DotTurns = game.DotDuration
		empowered := ""
		if oppType == game.MoveBuff {
			empowered = " EMPOWERED!"
		}
		tc.addf("%s: DoT stack %d/%d%s", def.Name, def.DotStacks, game.MaxDotStacks, empowered)

	case game.MoveBuff:
		if oppType == game.MoveDefend {
			tc.addf("%s's buff suppressed!", att.Name)
			return
		}
		att.BuffActive = true
		att.BuffTurns = game.BuffDuration
		tc.addf("%s buffed! +%d %s (%dT)", att.Name, att.BuffAmount, att.BuffStat, game.BuffDuration)

	case game.MoveUltimate:
		mult, suffix := 1.0, ""
		switch oppType {
		case game.MoveDefend:
			mult, suffix = 0.25, " (deflected)"
		case game.MoveBuff:
			mult = 1.25
		}
		effDef := defStat
		if att.Class == game.ClassMagician {
			effDef = defStat / 2
		}
		crit := tc.rng.Percent() < att.CritChance
		dmg := calcDamage(spec.UltimateDamage, atk, effDef)
		if crit {
			dmg = dmg * 7 / 5
		}
		dmg = int(float64(dmg) * mult)
		if dmg < 1 {
			dmg = 1
		}
		def.HitPoints -= dmg
		tc.addf("%sULTIMATE! %s -> %s: %d dmg%s", critPrefix(crit), att.Name, def.Name, dmg, suffix)
		tc.ultimateAftermath(att, def)
	}
}

// ultimateAftermath applies the class rider that follows an ultimate
// hit. The knight's armor sunder lands even on a kill; the alchemist's
// transmutation only fires while the defender still stands.
func (tc *turnContext) ultimateAftermath(att, def *game.Fighter) {
	switch att.Class {
	case game.ClassKnight:
		def.DefensePenalty += 2
		tc.addf("Armor sundered! %s -2 DEF permanently", def.Name)
	case game.ClassAlchemist:
		if def.HitPoints > 0 {
			total := att.HitPoints + def.HitPoints
			if total < 0 {
				total = 0
			}
			na, nd := total*6/10, total-total*6/10
			if na > att.MaxHitPoints {
				na = att.MaxHitPoints
			}
			att.HitPoints, def.HitPoints = na, nd
			tc.addf("Transmutation! HP split: %s=%d, %s=%d", att.Name, att.HitPoints, def.Name, def.HitPoints)
		}
	}
}

// tickDot burns one DoT turn on f. The tick scales with the opposing
// fighter's current attack, so a buffed source burns harder.
func (tc *turnContext) tickDot(f, src *game.Fighter) {
	if f.DotStacks <= 0 || f.DotTurns <= 0 {
		return
	}
	tick := calcDotTick(game.DotBase[f.DotStacks-1], src.EffectiveAttack(), f.EffectiveDefense())
	f.HitPoints -= tick
	f.DotTurns--
	tc.addf("DoT: %s burned %d (%dT left)", f.Name, tick, f.DotTurns)
	if f.DotTurns == 0 {
		f.DotStacks = 0
		tc.addf("%s's DoT faded", f.Name)
	}
}

func (tc *turnContext) tickBuff(f *game.Fighter) {
	if !f.BuffActive {
		return
	}
	f.BuffTurns--
	if f.BuffTurns <= 0 {
		f.BuffActive = false
		f.BuffTurns = 0
		tc.addf("%s's buff expired", f.Name)
	}
}
