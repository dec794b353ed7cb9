// Package damage implements the generation-aware damage formula (spec.md
// §4.2): base damage from level/power/attack/defense, then the fixed
// ordered chain of multipliers (critical hit, random roll, type
// effectiveness, STAB, weather, screens, terrain, ability and item
// modifiers, status, spread reduction), floored to a minimum of 1 for any move that
// deals damage at all.
package damage
