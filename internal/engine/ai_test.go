package engine

import (
	"testing"

	"github.com/halewood/trial-by-combat/internal/game"
)

func TestChooseMoveUltimateAtFullCharge(t *testing.T) {
	self := game.NewFighter("bot", game.ClassKnight)
	opp := game.NewFighter("foe", game.ClassMagician)
	self.Charge = game.MaxCharge

	if got := ChooseMove(&self, &opp, &scriptRoller{rolls: []int{0}}); got != game.MoveUltimate {
		t.Fatalf("expected ultimate, got %v", got)
	}
}

func TestChooseMoveDefendWhenHurt(t *testing.T) {
	self := game.NewFighter("bot", game.ClassKnight)
	opp := game.NewFighter("foe", game.ClassMagician)
	self.HitPoints = self.MaxHitPoints / 5 // 23%

	// charge < 10 so the ultimate rule draws nothing
	if got := ChooseMove(&self, &opp, &scriptRoller{rolls: []int{0}}); got != game.MoveDefend {
		t.Fatalf("expected defend, got %v", got)
	}
}

func TestChooseMovePunishesBuffWithSharedDraw(t *testing.T) {
	self := game.NewFighter("bot", game.ClassKnight)
	opp := game.NewFighter("foe", game.ClassMagician)
	opp.BuffActive = true
	self.Charge = 3

	// a single draw decides both branches of the buff response
	if got := ChooseMove(&self, &opp, &scriptRoller{rolls: []int{10}}); got != game.MoveAttack {
		t.Fatalf("expected attack on low draw, got %v", got)
	}
	if got := ChooseMove(&self, &opp, &scriptRoller{rolls: []int{60}}); got != game.MoveDot {
		t.Fatalf("expected dot on mid draw, got %v", got)
	}
	// mid draw without the charge falls through to the later rules
	self.Charge = 0
	if got := ChooseMove(&self, &opp, &scriptRoller{rolls: []int{60, 99, 99, 99}}); got != game.MoveAttack {
		t.Fatalf("expected fallback attack, got %v", got)
	}
}

func TestChooseMoveSpendChargeRules(t *testing.T) {
	self := game.NewFighter("bot", game.ClassKnight)
	opp := game.NewFighter("foe", game.ClassMagician)

	self.Charge = 3
	if got := ChooseMove(&self, &opp, &scriptRoller{rolls: []int{10}}); got != game.MoveDot {
		t.Fatalf("expected dot, got %v", got)
	}

	// opponent already at the stack cap: the dot rule never draws
	opp.DotStacks = game.MaxDotStacks
	self.Charge = 2
	if got := ChooseMove(&self, &opp, &scriptRoller{rolls: []int{10}}); got != game.MoveBuff {
		t.Fatalf("expected buff, got %v", got)
	}

	// already buffed, high charge but not full: save for the ultimate
	self.BuffActive = true
	self.Charge = 8
	if got := ChooseMove(&self, &opp, &scriptRoller{rolls: []int{10}}); got != game.MoveDefend {
		t.Fatalf("expected defend to bank charge, got %v", got)
	}
}

func TestChooseMoveFallbackAttack(t *testing.T) {
	self := game.NewFighter("bot", game.ClassKnight)
	opp := game.NewFighter("foe", game.ClassMagician)

	// every rule's draw fails
	if got := ChooseMove(&self, &opp, &scriptRoller{}); got != game.MoveAttack {
		t.Fatalf("expected attack, got %v", got)
	}
}

func TestChooseMoveAlwaysAffordable(t *testing.T) {
	rng := NewRoller(7)
	moves := game.MovesFor(game.ClassKnight)
	for charge := 0; charge <= game.MaxCharge; charge++ {
		for i := 0; i < 200; i++ {
			self := game.NewFighter("bot", game.ClassKnight)
			opp := game.NewFighter("foe", game.ClassMagician)
			self.Charge = charge
			mv := ChooseMove(&self, &opp, rng)
			if moves[mv].Cost > charge {
				t.Fatalf("chose %v costing %d with charge %d", mv, moves[mv].Cost, charge)
			}
		}
	}
}
