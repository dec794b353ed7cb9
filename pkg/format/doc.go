// Package format defines battle formats: active-slot count, spread-reduction
// factor, target auto-resolution, and clause enforcement (spec.md §2 "Format
// Rules", §3 "Positions"). It also defines BattlePosition, the (side, slot)
// coordinate every other package uses to address a Pokémon on the field.
package format
