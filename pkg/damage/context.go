package damage

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/repository"
	"goldbox-rpg/pkg/typechart"
)

// Context is the input to Calculate: everything the formula needs, gathered
// up front so the function itself stays pure (spec.md §4.2, §5 — no hidden
// global lookups inside the hot path).
type Context struct {
	State *battle.State
	Chart *typechart.Chart

	Attacker     *battle.Pokemon
	Defender     *battle.Pokemon
	AttackerPos  format.BattlePosition
	DefenderPos  format.BattlePosition

	Move ident.MoveID
	// MoveData is the resolved catalogue record for Move at the battle's
	// generation; callers resolve it once via pkg/repository before
	// building Context rather than having Calculate do its own lookup.
	MoveData repository.MoveRecord

	IsCritical bool
	// DamageRoll is the 0.85-1.00 random multiplier (spec.md §4.2 step 4);
	// the engine supplies it so Calculate stays deterministic and testable.
	DamageRoll float64

	// TargetCount is how many Pokémon this use of the move is hitting this
	// turn, used for the spread-damage reduction.
	TargetCount int
}

// Result is Calculate's output.
type Result struct {
	Damage            int
	Blocked           bool // type or ability immunity
	WasCritical       bool
	TypeEffectiveness float64
	// UserRecoilFraction carries a Life-Orb-style self-damage fraction the
	// caller applies as a separate Heal(negative)/Damage instruction after
	// the hit lands.
	UserRecoilFraction float64
}
