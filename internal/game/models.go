package game

import (
	"time"

	"gorm.io/gorm"
)

// Class identifies one of the three playable fighter classes. The set is
// closed: every fighter is created with one of these and keeps it for life.
type Class string

const (
	ClassKnight    Class = "knight"
	ClassMagician  Class = "magician"
	ClassAlchemist Class = "alchemist"
)

// MoveType is the ordinal slot of a move inside a class move set. Every
// class carries exactly one move of each type, so the type doubles as the
// move index.
type MoveType int

const (
	MoveAttack MoveType = iota
	MoveDefend
	MoveDot
	MoveBuff
	MoveUltimate
)

var moveTypeNames = [5]string{"attack", "defend", "dot", "buff", "ultimate"}

func (t MoveType) String() string {
	if t < MoveAttack || t > MoveUltimate {
		return "unknown"
	}
	return moveTypeNames[t]
}

// Valid reports whether t is one of the five known move types.
func (t MoveType) Valid() bool { return t >= MoveAttack && t <= MoveUltimate }

// ParseMoveType maps the wire representation of a move back to its type.
func ParseMoveType(s string) (MoveType, bool) {
	for i, n := range moveTypeNames {
		if n == s {
			return MoveType(i), true
		}
	}
	return MoveAttack, false
}

// Stat names a boostable fighter statistic. Buffs target exactly one of
// these depending on the caster's class.
type Stat int

const (
	StatDefense Stat = iota
	StatSpeed
	StatAttack
)

var statNames = [3]string{"DEF", "SPD", "ATK"}

func (s Stat) String() string {
	if s < StatDefense || s > StatAttack {
		return "?"
	}
	return statNames[s]
}

// Fighter is the mutable combat entity. It is owned by exactly one match
// and mutated only by fighter initialization and the turn resolution
// engine; the service layer touches the pending-selection fields only.
type Fighter struct {
	gorm.Model
	MatchID uint `json:"-"`
	// Slot is the fighter's position inside its match: 0/1 in a duel,
	// 0 for the champion and 1..3 for gauntlet enemies.
	Slot int `json:"slot"`
	// PlayerUUID identifies the controlling player. Empty for
	// computer-controlled fighters. Never exposed in responses.
	PlayerUUID string `json:"-"`
	IsComputer bool   `json:"is_computer"`

	Name  string `json:"name" gorm:"size:32"`
	Class Class  `json:"class"`

	HitPoints    int `json:"hp"`
	MaxHitPoints int `json:"max_hp"`
	BaseAttack   int `json:"base_atk"`
	BaseDefense  int `json:"base_def"`
	BaseSpeed    int `json:"base_spd"`
	CritChance   int `json:"crit_chance"`
	Charge       int `json:"charge"`

	BuffActive bool `json:"buff_active"`
	BuffTurns  int  `json:"buff_turns"`
	BuffStat   Stat `json:"buff_stat"`
	BuffAmount int  `json:"buff_amount"`

	DotStacks int `json:"dot_stacks"`
	DotTurns  int `json:"dot_turns"`

	// DefensePenalty is the permanent reduction inflicted by the Knight
	// ultimate. Monotonically non-decreasing for the life of the match.
	DefensePenalty int `json:"defense_penalty"`

	HasChosen     bool     `json:"has_chosen"`
	PendingMove   MoveType `json:"-"`
	PendingTarget int      `json:"-"`
}

// Alive reports whether the fighter still stands. HitPoints may go
// negative internally; only strictly positive counts as alive.
func (f *Fighter) Alive() bool { return f.HitPoints > 0 }

// DisplayHitPoints clamps negative HP to zero for presentation.
func (f *Fighter) DisplayHitPoints() int {
	if f.HitPoints < 0 {
		return 0
	}
	return f.HitPoints
}

// EffectiveAttack is the base attack plus the buff bonus when the active
// buff targets attack. Recomputed on every read, never cached.
func (f *Fighter) EffectiveAttack() int {
	a := f.BaseAttack
	if f.BuffActive && f.BuffStat == StatAttack {
		a += f.BuffAmount
	}
	return a
}

// EffectiveDefense subtracts the permanent penalty after applying any
// defense buff, floored at zero.
func (f *Fighter) EffectiveDefense() int {
	d := f.BaseDefense
	if f.BuffActive && f.BuffStat == StatDefense {
		d += f.BuffAmount
	}
	d -= f.DefensePenalty
	if d < 0 {
		d = 0
	}
	return d
}

// EffectiveSpeed is the base speed plus the buff bonus when the active
// buff targets speed.
func (f *Fighter) EffectiveSpeed() int {
	s := f.BaseSpeed
	if f.BuffActive && f.BuffStat == StatSpeed {
		s += f.BuffAmount
	}
	return s
}

// Mode distinguishes the three ways a match can be played. An explicit
// enumeration, not a numeric flag.
type Mode string

const (
	ModeVsComputer Mode = "vs_computer"
	ModeVsPlayer   Mode = "vs_player"
	ModeGauntlet   Mode = "gauntlet"
)

// Match lifecycle states.
const (
	StatusWaitingForPlayers = "waiting_for_players"
	StatusInProgress        = "in_progress"
	StatusFinished          = "finished"
)

// Round phases inside an in-progress match.
const (
	PhaseSelecting = "selecting_moves"
	PhaseResolving = "resolving"
	PhaseResolved  = "resolved"
)

// Match is one combat encounter: two fighters in a duel, or one champion
// against three enemies in gauntlet mode.
type Match struct {
	gorm.Model
	JoinCode string `json:"join_code" gorm:"unique"`
	Mode     Mode   `json:"mode"`
	Status   string `json:"status"`
	Phase    string `json:"phase"`
	// Turn is 1-based and capped at MaxTurns.
	Turn            int       `json:"turn"`
	Winner          string    `json:"winner"`
	Message         string    `json:"message"`
	LastTurnSummary string    `json:"last_turn_summary"`
	ActionDeadline  time.Time `json:"action_deadline"`
	StatsCounted    bool      `json:"-"`

	Fighters []Fighter `json:"fighters"`
}

// FighterBySlot returns the fighter occupying the given slot, nil when absent.
func (m *Match) FighterBySlot(slot int) *Fighter {
	for i := range m.Fighters {
		if m.Fighters[i].Slot == slot {
			return &m.Fighters[i]
		}
	}
	return nil
}

// FighterByUUID returns the fighter controlled by the given player.
func (m *Match) FighterByUUID(uuid string) *Fighter {
	if uuid == "" {
		return nil
	}
	for i := range m.Fighters {
		if m.Fighters[i].PlayerUUID == uuid {
			return &m.Fighters[i]
		}
	}
	return nil
}

// GauntletEnemies returns the three enemy fighters (slots 1..3) in slot order.
func (m *Match) GauntletEnemies() []*Fighter {
	out := make([]*Fighter, 0, 3)
	for slot := 1; slot <= 3; slot++ {
		if f := m.FighterBySlot(slot); f != nil {
			out = append(out, f)
		}
	}
	return out
}

// Profile stores per-player aggregate results for the leaderboard.
type Profile struct {
	gorm.Model
	PlayerUUID     string `json:"player_uuid" gorm:"uniqueIndex"`
	PlayerName     string `json:"player_name"`
	GamesPlayed    int    `json:"games_played"`
	Wins           int    `json:"wins"`
	GauntletClears int    `json:"gauntlet_clears"`
}

// TableName keeps the global stats table distinct from per-match fighters.
func (Profile) TableName() string { return "player_profiles" }
