package instructions

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
)

// Kind discriminates instruction variants for logging/debug output; it is
// not used for dispatch (that happens via the Instruction interface's
// methods), only for the String() form golden tests compare against.
type Kind uint8

const (
	KindDamage Kind = iota
	KindMultiTargetDamage
	KindHeal
	KindApplyStatus
	KindRemoveStatus
	KindChangeStatusDuration
	KindApplyVolatile
	KindRemoveVolatile
	KindChangeVolatileDuration
	KindBoostStats
	KindChangeAbility
	KindChangeItem
	KindChangeType
	KindFormeChange
	KindToggleTerastallised
	KindDecrementPP
	KindDisableMove
	KindChangeSubstituteHealth
	KindSetWish
	KindSetFutureSight
	KindFaint
	KindSwitch
	KindWeather
	KindTerrain
	KindTrickRoom
	KindGravity
	KindApplySideCondition
	KindRemoveSideCondition
	KindDecrementSideConditionDuration
	KindRemoveWish
	KindRemoveFutureSight
	KindAdvanceTurn
	KindRecordHit
	KindSwapSideCondition
)

var kindNames = [...]string{
	"Damage", "MultiTargetDamage", "Heal", "ApplyStatus", "RemoveStatus",
	"ChangeStatusDuration", "ApplyVolatile", "RemoveVolatile",
	"ChangeVolatileDuration", "BoostStats", "ChangeAbility", "ChangeItem",
	"ChangeType", "FormeChange", "ToggleTerastallised", "DecrementPP",
	"DisableMove", "ChangeSubstituteHealth", "SetWish", "SetFutureSight",
	"Faint", "Switch", "Weather", "Terrain", "TrickRoom", "Gravity",
	"ApplySideCondition", "RemoveSideCondition", "DecrementSideConditionDuration",
	"RemoveWish", "RemoveFutureSight", "AdvanceTurn", "RecordHit",
	"SwapSideCondition",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Instruction is one atomic, reversible state delta.
type Instruction interface {
	// Apply mutates state forward, recording whatever pre-image data it
	// needs into itself so Revert can undo exactly this application. Most
	// variants already carry their pre-image when constructed (the
	// previous HP, status, etc.); for the ones whose effect is clamped or
	// otherwise data-dependent (BoostStats, PP decrement) Apply fills in
	// the applied amount.
	Apply(s *battle.State)
	Revert(s *battle.State)
	Kind() Kind
	// Positions returns every BattlePosition this instruction touches, used
	// to derive a BattleInstructions' affected-positions set.
	Positions() []format.BattlePosition
}
