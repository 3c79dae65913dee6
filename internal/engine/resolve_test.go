package engine

import (
	"strings"
	"testing"

	"github.com/halewood/trial-by-combat/internal/game"
)

// scriptRoller returns a fixed sequence of draws and a harmless 99
// (no dodge, no crit, no AI impulse) once the script runs out.
type scriptRoller struct {
	rolls []int
	next  int
}

func (s *scriptRoller) Percent() int {
	if s.next >= len(s.rolls) {
		return 99
	}
	v := s.rolls[s.next]
	s.next++
	return v
}

func newDuel(classA, classB game.Class) (*game.Fighter, *game.Fighter) {
	a := game.NewFighter("Aldric", classA)
	b := game.NewFighter("Morwen", classB)
	return &a, &b
}

func logText(l *game.BattleLog) string {
	return strings.Join(l.Lines(), "\n")
}

func TestResolveTurnAttackBlockedByDefend(t *testing.T) {
	a, b := newDuel(game.ClassKnight, game.ClassMagician)
	log := &game.BattleLog{}
	// dodge roll misses (50 >= 5+12), crit roll misses (50 >= 12)
	rng := &scriptRoller{rolls: []int{50, 50}}

	ResolveTurn(a, b, game.MoveAttack, game.MoveDefend, log, rng)

	// 15 + 10/2 - 10/3 = 17, halved by the block -> 8
	if got := b.MaxHitPoints - b.HitPoints; got != 8 {
		t.Fatalf("expected 8 damage, got %d", got)
	}
	if !strings.Contains(logText(log), "Aldric -> Morwen: 8 dmg (blocked)") {
		t.Fatalf("missing blocked line, log:\n%s", logText(log))
	}
	if a.Charge != 3 || b.Charge != 2 {
		t.Fatalf("expected charges 3/2, got %d/%d", a.Charge, b.Charge)
	}
}

func TestResolveTurnAttackOffGuard(t *testing.T) {
	a, b := newDuel(game.ClassKnight, game.ClassMagician)
	log := &game.BattleLog{}
	rng := &scriptRoller{rolls: []int{50, 50}}

	ResolveTurn(a, b, game.MoveAttack, game.MoveBuff, log, rng)

	// 17 * 1.3 truncates to 22
	if got := b.MaxHitPoints - b.HitPoints; got != 22 {
		t.Fatalf("expected 22 damage, got %d", got)
	}
	if !strings.Contains(logText(log), "(off-guard)") {
		t.Fatalf("missing off-guard tag, log:\n%s", logText(log))
	}
	// the buff still lands and has ticked once by end of turn
	if !b.BuffActive || b.BuffTurns != 2 {
		t.Fatalf("expected active buff with 2 turns, got active=%v turns=%d", b.BuffActive, b.BuffTurns)
	}
}

func TestResolveTurnCriticalAttack(t *testing.T) {
	a, b := newDuel(game.ClassKnight, game.ClassMagician)
	log := &game.BattleLog{}
	// dodge misses, crit lands (0 < 12)
	rng := &scriptRoller{rolls: []int{50, 0}}

	ResolveTurn(a, b, game.MoveAttack, game.MoveAttack, log, rng)

	// 17 * 3 / 2 = 25
	if got := b.MaxHitPoints - b.HitPoints; got != 25 {
		t.Fatalf("expected 25 damage, got %d", got)
	}
	if !strings.Contains(logText(log), "CRIT! Aldric -> Morwen: 25 dmg") {
		t.Fatalf("missing crit line, log:\n%s", logText(log))
	}
}

func TestResolveTurnAttackDodged(t *testing.T) {
	a, b := newDuel(game.ClassKnight, game.ClassMagician)
	log := &game.BattleLog{}
	// Morwen's dodge chance is 5+12=17; roll 0 succeeds.
	// Morwen defends, so no further draws this turn.
	rng := &scriptRoller{rolls: []int{0}}

	ResolveTurn(a, b, game.MoveAttack, game.MoveDefend, log, rng)

	if b.HitPoints != b.MaxHitPoints {
		t.Fatalf("expected no damage after dodge, got %d/%d", b.HitPoints, b.MaxHitPoints)
	}
	if !strings.Contains(logText(log), "Morwen dodged!") {
		t.Fatalf("missing dodge line, log:\n%s", logText(log))
	}
}

func TestResolveTurnDotInterruptedBeforeDodge(t *testing.T) {
	a, b := newDuel(game.ClassMagician, game.ClassKnight)
	a.Charge = 3
	log := &game.BattleLog{}
	// Only Morwen's attack draws: dodge miss, crit miss. If the
	// interrupted DoT consumed a dodge roll the script would shift
	// and the attack below would crit.
	rng := &scriptRoller{rolls: []int{50, 50}}

	ResolveTurn(a, b, game.MoveDot, game.MoveAttack, log, rng)

	if b.DotStacks != 0 {
		t.Fatalf("interrupted DoT must not stack, got %d", b.DotStacks)
	}
	if !strings.Contains(logText(log), "Aldric's DoT interrupted!") {
		t.Fatalf("missing interrupt line, log:\n%s", logText(log))
	}
	if strings.Contains(logText(log), "CRIT!") {
		t.Fatalf("interrupt consumed a random draw, log:\n%s", logText(log))
	}
}

func TestResolveTurnDotStacksAndEmpowers(t *testing.T) {
	a, b := newDuel(game.ClassMagician, game.ClassKnight)
	a.Charge = 3
	b.DotStacks = 1
	b.DotTurns = 2
	log := &game.BattleLog{}
	// DoT application: dodge roll misses.
	rng := &scriptRoller{rolls: []int{50}}

	ResolveTurn(a, b, game.MoveDot, game.MoveBuff, log, rng)

	if b.DotStacks != 2 {
		t.Fatalf("expected 2 stacks, got %d", b.DotStacks)
	}
	if b.DotTurns != 2 {
		// reset to 3 on application, one tick already burned
		t.Fatalf("expected 2 turns left after tick, got %d", b.DotTurns)
	}
	if !strings.Contains(logText(log), "Morwen: DoT stack 2/3 EMPOWERED!") {
		t.Fatalf("missing empowered line, log:\n%s", logText(log))
	}
}

func TestResolveTurnDotStackCap(t *testing.T) {
	a, b := newDuel(game.ClassMagician, game.ClassKnight)
	a.Charge = 3
	b.DotStacks = game.MaxDotStacks
	b.DotTurns = 1
	log := &game.BattleLog{}
	rng := &scriptRoller{rolls: []int{50}}

	ResolveTurn(a, b, game.MoveDot, game.MoveDefend, log, rng)

	if b.DotStacks > game.MaxDotStacks {
		t.Fatalf("stacks exceeded cap: %d", b.DotStacks)
	}
	// countdown was refreshed by the reapplication
	if b.DotTurns != 2 {
		t.Fatalf("expected countdown refreshed to 3 then ticked to 2, got %d", b.DotTurns)
	}
}

func TestResolveTurnBuffSuppressedByDefend(t *testing.T) {
	a, b := newDuel(game.ClassAlchemist, game.ClassKnight)
	a.Charge = 2
	log := &game.BattleLog{}
	rng := &scriptRoller{}

	ResolveTurn(a, b, game.MoveBuff, game.MoveDefend, log, rng)

	if a.BuffActive {
		t.Fatal("suppressed buff must not activate")
	}
	if !strings.Contains(logText(log), "Aldric's buff suppressed!") {
		t.Fatalf("missing suppression line, log:\n%s", logText(log))
	}
}

func TestResolveTurnUltimateDeflected(t *testing.T) {
	a, b := newDuel(game.ClassMagician, game.ClassKnight)
	a.Charge = game.MaxCharge
	log := &game.BattleLog{}
	// Ultimates skip the dodge check entirely; only the crit draws.
	rng := &scriptRoller{rolls: []int{50}}

	ResolveTurn(a, b, game.MoveUltimate, game.MoveDefend, log, rng)

	// magician halves defense: 26 + 10/2 - 6/2... def 12 -> 6, 6/3=2
	// 26 + 5 - 2 = 29, deflected to a quarter -> 7
	if got := b.MaxHitPoints - b.HitPoints; got != 7 {
		t.Fatalf("expected 7 damage, got %d", got)
	}
	if !strings.Contains(logText(log), "ULTIMATE! Aldric -> Morwen: 7 dmg (deflected)") {
		t.Fatalf("missing deflected line, log:\n%s", logText(log))
	}
	if a.Charge != 0 {
		t.Fatalf("ultimate should drain charge to 0, got %d", a.Charge)
	}
}

func TestResolveTurnKnightSunderIsPermanentAndMonotonic(t *testing.T) {
	a, b := newDuel(game.ClassKnight, game.ClassMagician)
	log := &game.BattleLog{}

	for i := 0; i < 3; i++ {
		a.Charge = game.MaxCharge
		before := b.DefensePenalty
		ResolveTurn(a, b, game.MoveUltimate, game.MoveDefend, log, &scriptRoller{rolls: []int{50}})
		if b.DefensePenalty != before+2 {
			t.Fatalf("round %d: expected penalty %d, got %d", i, before+2, b.DefensePenalty)
		}
	}
	// penalty 6 exceeds nothing yet, but the floor holds at zero
	b.DefensePenalty = 100
	if b.EffectiveDefense() != 0 {
		t.Fatalf("effective defense must floor at 0, got %d", b.EffectiveDefense())
	}
}

func TestResolveTurnAlchemistTransmutationConservesTotal(t *testing.T) {
	a, b := newDuel(game.ClassAlchemist, game.ClassKnight)
	a.Charge = game.MaxCharge
	a.HitPoints = 40
	log := &game.BattleLog{}
	rng := &scriptRoller{rolls: []int{50}}

	ResolveTurn(a, b, game.MoveUltimate, game.MoveDefend, log, rng)

	// 22 + 12/2 - 12/3 = 24, deflected -> 6; knight at 109 before split
	total := 40 + 115 - 6
	wantA := total * 6 / 10
	wantB := total - wantA
	if a.HitPoints != wantA || b.HitPoints != wantB {
		t.Fatalf("expected split %d/%d, got %d/%d", wantA, wantB, a.HitPoints, b.HitPoints)
	}
	if a.HitPoints+b.HitPoints != total {
		t.Fatalf("transmutation lost HP: %d != %d", a.HitPoints+b.HitPoints, total)
	}
}

func TestResolveTurnAlchemistTransmutationClampsToMax(t *testing.T) {
	a, b := newDuel(game.ClassAlchemist, game.ClassKnight)
	a.Charge = game.MaxCharge
	a.HitPoints = a.MaxHitPoints
	b.HitPoints = 300
	b.MaxHitPoints = 300
	log := &game.BattleLog{}
	rng := &scriptRoller{rolls: []int{50}}

	ResolveTurn(a, b, game.MoveUltimate, game.MoveDefend, log, rng)

	if a.HitPoints > a.MaxHitPoints {
		t.Fatalf("attacker exceeded max HP: %d/%d", a.HitPoints, a.MaxHitPoints)
	}
}

func TestResolveTurnSkipsTransmutationOnKill(t *testing.T) {
	a, b := newDuel(game.ClassAlchemist, game.ClassKnight)
	a.Charge = game.MaxCharge
	a.HitPoints = 10
	b.HitPoints = 5
	log := &game.BattleLog{}
	rng := &scriptRoller{rolls: []int{50}}

	ResolveTurn(a, b, game.MoveUltimate, game.MoveDefend, log, rng)

	if b.Alive() {
		t.Fatal("defender should be down")
	}
	if strings.Contains(logText(log), "Transmutation!") {
		t.Fatalf("transmutation must not fire on a kill, log:\n%s", logText(log))
	}
	if a.HitPoints != 10 {
		t.Fatalf("attacker HP should be untouched, got %d", a.HitPoints)
	}
}

func TestResolveTurnDotTickAndFade(t *testing.T) {
	a, b := newDuel(game.ClassKnight, game.ClassMagician)
	a.DotStacks = 2
	a.DotTurns = 1
	log := &game.BattleLog{}
	rng := &scriptRoller{}

	ResolveTurn(a, b, game.MoveDefend, game.MoveDefend, log, rng)

	// stack 2 base 8: 8 + 10/4 - 12/4 = 7
	if got := a.MaxHitPoints - a.HitPoints; got != 7 {
		t.Fatalf("expected 7 tick damage, got %d", got)
	}
	if a.DotStacks != 0 || a.DotTurns != 0 {
		t.Fatalf("DoT should have faded, got stacks=%d turns=%d", a.DotStacks, a.DotTurns)
	}
	if !strings.Contains(logText(log), "Aldric's DoT faded") {
		t.Fatalf("missing fade line, log:\n%s", logText(log))
	}
}

func TestResolveTurnChargeClamps(t *testing.T) {
	a, b := newDuel(game.ClassKnight, game.ClassMagician)
	a.Charge = 9
	b.Charge = game.MaxCharge
	log := &game.BattleLog{}
	// a attacks: dodge miss, crit miss; b defends: no draws
	rng := &scriptRoller{rolls: []int{50, 50}}

	ResolveTurn(a, b, game.MoveAttack, game.MoveDefend, log, rng)

	if a.Charge != game.MaxCharge {
		t.Fatalf("charge must cap at %d, got %d", game.MaxCharge, a.Charge)
	}
	if b.Charge != game.MaxCharge {
		t.Fatalf("defend at full charge stays capped, got %d", b.Charge)
	}
}

func TestResolveTurnMinimumOneDamage(t *testing.T) {
	a, b := newDuel(game.ClassMagician, game.ClassKnight)
	b.BuffActive = true
	b.BuffTurns = 3
	b.BaseDefense = 90
	log := &game.BattleLog{}
	rng := &scriptRoller{rolls: []int{50, 50}}

	ResolveTurn(a, b, game.MoveAttack, game.MoveDefend, log, rng)

	if got := b.MaxHitPoints - b.HitPoints; got != 1 {
		t.Fatalf("expected damage floor of 1, got %d", got)
	}
}

func TestResolveTurnBuffExpires(t *testing.T) {
	a, b := newDuel(game.ClassKnight, game.ClassMagician)
	a.BuffActive = true
	a.BuffTurns = 1
	log := &game.BattleLog{}
	rng := &scriptRoller{}

	ResolveTurn(a, b, game.MoveDefend, game.MoveDefend, log, rng)

	if a.BuffActive || a.BuffTurns != 0 {
		t.Fatalf("buff should have expired, active=%v turns=%d", a.BuffActive, a.BuffTurns)
	}
	if !strings.Contains(logText(log), "Aldric's buff expired") {
		t.Fatalf("missing expiry line, log:\n%s", logText(log))
	}
}
