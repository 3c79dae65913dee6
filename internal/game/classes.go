package game

// Shared combat tuning. These values are game balance and deliberately not
// configurable at runtime.
const (
	MaxCharge    = 10
	MaxTurns     = 25
	MaxDotStacks = 3
	MaxNameLen   = 31

	CritChance   = 12
	BuffDuration = 3
	DotDuration  = 3

	GauntletHealReward = 20
)

// ChargeGain is the charge earned by using a move of each type, before the
// move's own cost is subtracted.
var ChargeGain = [5]int{3, 2, 1, 1, 0}

// DotBase is tick damage by stack level (index = stacks-1). The table is
// shared by all classes.
var DotBase = [MaxDotStacks]int{5, 8, 12}

// Move is an immutable static move definition.
type Move struct {
	Name string   `json:"name"`
	Type MoveType `json:"type"`
	Cost int      `json:"cost"`
}

// ClassSpec is the full static definition of a class: base stats, the stat
// its buff boosts, per-class damage constants and its five moves.
type ClassSpec struct {
	Name           string  `json:"name"`
	HitPoints      int     `json:"hit_points"`
	Attack         int     `json:"attack"`
	Defense        int     `json:"defense"`
	Speed          int     `json:"speed"`
	BuffStat       Stat    `json:"buff_stat"`
	BuffAmount     int     `json:"buff_amount"`
	AttackDamage   int     `json:"attack_damage"`
	UltimateDamage int     `json:"ultimate_damage"`
	Moves          [5]Move `json:"moves"`
}

var classTable = map[Class]ClassSpec{
	ClassKnight: {
		Name:           "Knight",
		HitPoints:      115,
		Attack:         10,
		Defense:        12,
		Speed:          9,
		BuffStat:       StatDefense,
		BuffAmount:     4,
		AttackDamage:   15,
		UltimateDamage: 28,
		Moves: [5]Move{
			{Name: "Steady Blade", Type: MoveAttack, Cost: 0},
			{Name: "Aegis Wall", Type: MoveDefend, Cost: 0},
			{Name: "Mortal Wounds", Type: MoveDot, Cost: 3},
			{Name: "Indomitable Spirit", Type: MoveBuff, Cost: 2},
			{Name: "Executioner's Verdict", Type: MoveUltimate, Cost: 10},
		},
	},
	ClassMagician: {
		Name:           "Magician",
		HitPoints:      105,
		Attack:         10,
		Defense:        10,
		Speed:          12,
		BuffStat:       StatSpeed,
		BuffAmount:     4,
		AttackDamage:   13,
		UltimateDamage: 26,
		Moves: [5]Move{
			{Name: "Elemental Spark", Type: MoveAttack, Cost: 0},
			{Name: "Mana Barrier", Type: MoveDefend, Cost: 0},
			{Name: "Flesh Embers", Type: MoveDot, Cost: 3},
			{Name: "Runic Overclock", Type: MoveBuff, Cost: 2},
			{Name: "Arcane Overload", Type: MoveUltimate, Cost: 10},
		},
	},
	ClassAlchemist: {
		Name:           "Alchemist",
		HitPoints:      110,
		Attack:         12,
		Defense:        10,
		Speed:          10,
		BuffStat:       StatAttack,
		BuffAmount:     4,
		AttackDamage:   14,
		UltimateDamage: 22,
		Moves: [5]Move{
			{Name: "Primed Flask", Type: MoveAttack, Cost: 0},
			{Name: "Pact of Attrition", Type: MoveDefend, Cost: 0},
			{Name: "Vial of Corrosion", Type: MoveDot, Cost: 3},
			{Name: "Adrenal Mixture", Type: MoveBuff, Cost: 2},
			{Name: "Grand Transmutation", Type: MoveUltimate, Cost: 10},
		},
	},
}

// classOrder fixes a stable listing order for API responses and gauntlet
// enemy lineups.
var classOrder = []Class{ClassKnight, ClassMagician, ClassAlchemist}

// Classes returns all playable classes in stable order.
func Classes() []Class {
	out := make([]Class, len(classOrder))
	copy(out, classOrder)
	return out
}

// ValidClass reports whether c names a playable class.
func ValidClass(c Class) bool {
	_, ok := classTable[c]
	return ok
}

// SpecFor returns the static definition of a class.
func SpecFor(c Class) (ClassSpec, bool) {
	spec, ok := classTable[c]
	return spec, ok
}

// MovesFor returns the ordered five-move set of a class. Unknown classes
// fall back to the Knight set, mirroring fighter initialization.
func MovesFor(c Class) [5]Move {
	spec, ok := classTable[c]
	if !ok {
		spec = classTable[ClassKnight]
	}
	return spec.Moves
}

// NewFighter creates a fresh fighter at the class baseline. Names longer
// than MaxNameLen runes are silently truncated.
func NewFighter(name string, class Class) Fighter {
	spec, ok := classTable[class]
	if !ok {
		class = ClassKnight
		spec = classTable[class]
	}
	if r := []rune(name); len(r) > MaxNameLen {
		name = string(r[:MaxNameLen])
	}
	return Fighter{
		Name:         name,
		Class:        class,
		HitPoints:    spec.HitPoints,
		MaxHitPoints: spec.HitPoints,
		BaseAttack:   spec.Attack,
		BaseDefense:  spec.Defense,
		BaseSpeed:    spec.Speed,
		CritChance:   CritChance,
		BuffStat:     spec.BuffStat,
		BuffAmount:   spec.BuffAmount,
	}
}
