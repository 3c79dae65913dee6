package engine

import "github.com/halewood/trial-by-combat/internal/game"

// GauntletPlayerHitPoints is the starting HP pool for a lone challenger
// facing the given enemies: one and a half times their combined maximum.
func GauntletPlayerHitPoints(enemies []*game.Fighter) int {
	total := 0
	for _, e := range enemies {
		total += e.MaxHitPoints
	}
	return total * 3 / 2
}

// ResolveGauntletTurn applies one turn of a gauntlet match: the player
// acts on the selected enemy, then every living enemy acts back, then
// DoT effects the player has planted tick on the enemies. Enemies never
// apply DoT to the player; their AI only ever lands attacks, defends,
// buffs and ultimates. A player's Defend halves everything that comes
// in this turn, from every enemy alike.
func ResolveGauntletTurn(player *game.Fighter, enemies []*game.Fighter, move game.MoveType, target int, log *game.BattleLog, rng Roller) {
	tc := newTurnContext(log, rng)
	pmoves := game.MovesFor(player.Class)

	tc.add("--- YOUR TURN ---")
	tc.addf("You used %s", pmoves[move].Name)

	if target >= 0 && target < len(enemies) && enemies[target].Alive() {
		tc.playerAct(player, enemies[target], move)
	}

	applyCharge(player, pmoves[move])
	if player.BuffActive {
		player.BuffTurns--
		if player.BuffTurns <= 0 {
			player.BuffActive = false
			player.BuffTurns = 0
			tc.add("Your buff expired.")
		}
	}

	tc.add("--- ENEMIES TURN ---")
	defending := move == game.MoveDefend
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		tc.enemyAct(e, player, defending)
	}

	for _, e := range enemies {
		tc.tickEnemyDot(player, e)
	}
}

func (tc *turnContext) playerAct(player, target *game.Fighter, move game.MoveType) {
	spec, _ := game.SpecFor(player.Class)
	atk := player.EffectiveAttack()
	defStat := target.EffectiveDefense()
	dodge := dodgeChance(target)

	switch move {
	case game.MoveAttack:
		if tc.rng.Percent() < dodge {
			tc.addf("%s dodged!", target.Name)
			return
		}
		crit := tc.rng.Percent() < player.CritChance
		dmg := calcDamage(spec.AttackDamage, atk, defStat)
		if crit {
			dmg = dmg * 3 / 2
		}
		if dmg < 1 {
			dmg = 1
		}
		target.HitPoints -= dmg
		tc.addf("%s%s -> %s: %d dmg", critPrefix(crit), player.Name, target.Name, dmg)
		tc.checkKill(player, target)

	case game.MoveDot:
		if tc.rng.Percent() < dodge {
			tc.addf("%s evaded DoT!", target.Name)
			return
		}
		if target.DotStacks < game.MaxDotStacks {
			target.DotStacks++
		}
		target.DotTurns = game.DotDuration
		tc.addf("DoT on %s (stack %d/%d)", target.Name, target.DotStacks, game.MaxDotStacks)

	case game.MoveBuff:
		player.BuffActive = true
		player.BuffTurns = game.BuffDuration
		tc.addf("You buffed! +%d %s", player.BuffAmount, player.BuffStat)

	case game.MoveDefend:
		tc.add("You brace for impact!")

	case game.MoveUltimate:
		effDef := defStat
		if player.Class == game.ClassMagician {
			effDef = defStat / 2
		}
		crit := tc.rng.Percent() < player.CritChance
		dmg := calcDamage(spec.UltimateDamage, atk, effDef)
		if crit {
			dmg = dmg * 7 / 5
		}
		if dmg < 1 {
			dmg = 1
		}
		target.HitPoints -= dmg
		tc.addf("%sULTIMATE -> %s: %d dmg!", critPrefix(crit), target.Name, dmg)
		if player.Class == game.ClassKnight {
			target.DefensePenalty += 2
			tc.addf("%s armor sundered! -2 DEF", target.Name)
		}
		if player.Class == game.ClassAlchemist && target.HitPoints > 0 {
			total := player.HitPoints + target.HitPoints
			if total < 0 {
				total = 0
			}
			np, nt := total*6/10, total-total*6/10
			if np > player.MaxHitPoints {
				np = player.MaxHitPoints
			}
			player.HitPoints, target.HitPoints = np, nt
			tc.addf("Transmutation: you=%d, %s=%d", player.HitPoints, target.Name, target.HitPoints)
		}
		tc.checkKill(player, target)
	}
}

func (tc *turnContext) enemyAct(e, player *game.Fighter, defending bool) {
	emove := ChooseMove(e, player, tc.rng)
	moves := game.MovesFor(e.Class)
	tc.addf("%s: %s", e.Name, moves[emove].Name)

	spec, _ := game.SpecFor(e.Class)
	atk := e.EffectiveAttack()
	defStat := player.EffectiveDefense()
	dodge := dodgeChance(player)

	defMult := 1.0
	if defending {
		defMult = 0.5
	}

	switch emove {
	case game.MoveAttack:
		if tc.rng.Percent() < dodge {
			tc.add("You dodged!")
		} else {
			crit := tc.rng.Percent() < e.CritChance
			dmg := calcDamage(spec.AttackDamage, atk, defStat)
			if crit {
				dmg = dmg * 3 / 2
			}
			dmg = int(float64(dmg) * defMult)
			if dmg < 1 {
				dmg = 1
			}
			player.HitPoints -= dmg
			suffix := ""
			if defending {
				suffix = " (blocked)"
			}
			tc.addf("%s%s deals %d to you%s", critPrefix(crit), e.Name, dmg, suffix)
		}
	case game.MoveUltimate:
		effDef := defStat
		if e.Class == game.ClassMagician {
			effDef = defStat / 2
		}
		crit := tc.rng.Percent() < e.CritChance
		dmg := calcDamage(spec.UltimateDamage, atk, effDef)
		if crit {
			dmg = dmg * 7 / 5
		}
		dmg = int(float64(dmg) * defMult)
		if dmg < 1 {
			dmg = 1
		}
		player.HitPoints -= dmg
		tc.addf("%s%s ULTIMATE: %d dmg!", critPrefix(crit), e.Name, dmg)
		if e.Class == game.ClassKnight {
			player.DefensePenalty += 2
			tc.add("Your armor sundered! -2 DEF")
		}
	case game.MoveBuff:
		e.BuffActive = true
		e.BuffTurns = game.BuffDuration
	case game.MoveDefend:
		// just gains charge
	}

	applyCharge(e, moves[emove])
	if e.BuffActive {
		e.BuffTurns--
		if e.BuffTurns <= 0 {
			e.BuffActive = false
			e.BuffTurns = 0
		}
	}
}

// tickEnemyDot burns one DoT turn on an enemy. The player is always
// the source, so the tick scales with the player's current attack.
func (tc *turnContext) tickEnemyDot(player, e *game.Fighter) {
	if !e.Alive() || e.DotStacks <= 0 || e.DotTurns <= 0 {
		return
	}
	tick := calcDotTick(game.DotBase[e.DotStacks-1], player.EffectiveAttack(), e.EffectiveDefense())
	e.HitPoints -= tick
	e.DotTurns--
	tc.addf("DoT: %s takes %d", e.Name, tick)
	if e.DotTurns == 0 {
		e.DotStacks = 0
		tc.addf("%s DoT faded", e.Name)
	}
	if !e.Alive() {
		tc.addf("%s defeated by DoT! +%d HP", e.Name, game.GauntletHealReward)
		healPlayer(player)
		e.DotStacks = 0
	}
}

func (tc *turnContext) checkKill(player, target *game.Fighter) {
	if target.HitPoints > 0 {
		return
	}
	tc.addf("%s defeated! +%d HP", target.Name, game.GauntletHealReward)
	healPlayer(player)
}

func healPlayer(p *game.Fighter) {
	p.HitPoints += game.GauntletHealReward
	if p.HitPoints > p.MaxHitPoints {
		p.HitPoints = p.MaxHitPoints
	}
}
