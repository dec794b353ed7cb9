package moves

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/repository"
	"goldbox-rpg/pkg/typechart"
)

// Context carries everything an effect function needs to build its
// instruction branches, gathered up front the same way pkg/damage.Context
// keeps Calculate pure (spec.md §4.2, §5): no hidden lookups inside an
// effect function.
type Context struct {
	State *battle.State
	Chart *typechart.Chart

	Move     ident.MoveID
	MoveData repository.MoveRecord

	UserPos   format.BattlePosition
	TargetPos format.BattlePosition

	// DamageDealt is the amount pkg/damage.Calculate already computed for
	// this hit against TargetPos, 0 for status moves. Drain/recoil
	// fractions and GenericDamagingEffect's own Damage instruction read
	// this rather than recomputing it.
	DamageDealt int
}

// User returns the acting Pokémon, resolved fresh from State each call so
// effect functions never hold a stale pointer across an Apply/Revert.
func (c Context) User() *battle.Pokemon { return c.State.PokemonAt(c.UserPos) }

// Target returns the Pokémon at TargetPos.
func (c Context) Target() *battle.Pokemon { return c.State.PokemonAt(c.TargetPos) }

// TargetSide returns the BattleSide c.TargetPos belongs to, used by field/hazard/
// screen-setting moves that act on a whole side rather than one Pokémon.
func (c Context) TargetSide() *battle.Side { return c.State.Sides[c.TargetPos.Side] }

// UserSide returns the BattleSide c.UserPos belongs to.
func (c Context) UserSide() *battle.Side { return c.State.Sides[c.UserPos.Side] }
