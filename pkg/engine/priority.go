package engine

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
)

func hasAbility(p *battle.Pokemon, name string) bool { return p.Ability == ident.NewAbility(name) }

// movePriority resolves a move's effective priority bracket, applying the
// ability modifiers spec.md §4.3 step 2 names: Prankster (+1 to status
// moves), Gale Wings (+1 to Flying-type moves at full HP), Triage (+3 to
// draining moves), Stall (always moves last, modeled as -7 so it loses any
// tie it could otherwise win).
func movePriority(p *battle.Pokemon, mv battle.MoveSlot) int {
	priority := mv.Priority
	switch {
	case mv.Category == ident.CategoryStatus && hasAbility(p, "prankster"):
		priority++
	case mv.Type == ident.TypeFlying && hasAbility(p, "galewings") && p.HP == p.MaxHP:
		priority++
	case isDrainingMove(mv) && hasAbility(p, "triage"):
		priority += 3
	}
	if hasAbility(p, "stall") {
		priority -= 7
	}
	return priority
}

// isDrainingMove approximates Triage's trigger condition (a move whose
// catalogue record carries a positive Drain fraction); the move slot itself
// doesn't carry that data, so callers needing the real Drain check go
// through pkg/repository — this local stand-in covers the well-known
// draining moves by name until the engine threads MoveRecord through here.
func isDrainingMove(mv battle.MoveSlot) bool {
	switch mv.ID {
	case ident.NewMoveID("absorb"), ident.NewMoveID("megadrain"), ident.NewMoveID("gigadrain"),
		ident.NewMoveID("drainpunch"), ident.NewMoveID("drainingkiss"), ident.NewMoveID("oblivionwing"),
		ident.NewMoveID("hornleech"), ident.NewMoveID("leechlife"), ident.NewMoveID("paraboliccharge"):
		return true
	}
	return false
}

func isPursuit(mv battle.MoveSlot) bool { return mv.ID == ident.NewMoveID("pursuit") }

// effectiveSpeed computes the Speed comparison value for order determination:
// EffectiveStat already halves for paralysis; here layer on Tailwind's
// doubling, Trick Room's inversion, and Choice Scarf's 1.5x.
func effectiveSpeed(s *battle.State, pos format.BattlePosition) float64 {
	p := s.PokemonAt(pos)
	if p == nil {
		return 0
	}
	speed := p.EffectiveStat(ident.StatSpe)
	if p.Item == ident.NewItem("choicescarf") {
		speed *= 1.5
	}
	if s.Sides[pos.Side].HasCondition(ident.SideTailwind) {
		speed *= 2
	}
	if s.Field.TrickRoom {
		speed = -speed
	}
	return speed
}
