// Package hooks computes the ability- and item-driven modifiers that feed
// into damage calculation and other combat math (spec.md §4.2 step 14,
// §4.4 steps 7-8): type immunities, damage multipliers, stat multipliers
// and the handful of boolean flags (weather negation, screen bypass) that
// change how later steps behave. It has no dependency on pkg/damage,
// pkg/moves or pkg/instructions so that pkg/damage can depend on it without
// creating a cycle; it only ever computes a modifier value; applying that
// modifier to state is always the caller's job.
package hooks
