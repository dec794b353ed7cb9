package instructions

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
)

// Damage deals flat damage to a single position, clamped to [0, MaxHP].
// PreviousHP is filled in by Apply and used by Revert.
type Damage struct {
	Target     format.BattlePosition
	Amount     int
	PreviousHP int
}

func (d *Damage) Kind() Kind                             { return KindDamage }
func (d *Damage) Positions() []format.BattlePosition      { return []format.BattlePosition{d.Target} }
func (d *Damage) Apply(s *battle.State) {
	p := s.PokemonAt(d.Target)
	if p == nil {
		return
	}
	d.PreviousHP = p.HP
	p.HP -= d.Amount
	if p.HP < 0 {
		p.HP = 0
	}
}
func (d *Damage) Revert(s *battle.State) {
	p := s.PokemonAt(d.Target)
	if p == nil {
		return
	}
	p.HP = d.PreviousHP
}

// MultiTargetDamage deals independently-rolled damage to several positions
// in one instruction, used for spread moves (spec.md §3).
type MultiTargetDamage struct {
	Hits []MultiHit
}

// MultiHit is one target's damage amount within a MultiTargetDamage.
type MultiHit struct {
	Target     format.BattlePosition
	Amount     int
	PreviousHP int
}

func (m *MultiTargetDamage) Kind() Kind { return KindMultiTargetDamage }
func (m *MultiTargetDamage) Positions() []format.BattlePosition {
	out := make([]format.BattlePosition, len(m.Hits))
	for i, h := range m.Hits {
		out[i] = h.Target
	}
	return out
}
func (m *MultiTargetDamage) Apply(s *battle.State) {
	for i := range m.Hits {
		p := s.PokemonAt(m.Hits[i].Target)
		if p == nil {
			continue
		}
		m.Hits[i].PreviousHP = p.HP
		p.HP -= m.Hits[i].Amount
		if p.HP < 0 {
			p.HP = 0
		}
	}
}
func (m *MultiTargetDamage) Revert(s *battle.State) {
	for _, h := range m.Hits {
		p := s.PokemonAt(h.Target)
		if p == nil {
			continue
		}
		p.HP = h.PreviousHP
	}
}

// RecordHit stamps the damage and category a Pokémon just took, along with
// the turn it happened on, so the Counter family can read it back later the
// same turn (spec.md §4.1 "Counter/Mirror Coat/Metal Burst/Comeuppance").
type RecordHit struct {
	Target   format.BattlePosition
	Damage   int
	Category ident.MoveCategory
	Turn     int

	PreviousDamage   int
	PreviousCategory ident.MoveCategory
	PreviousTurn     int
}

func (r *RecordHit) Kind() Kind                        { return KindRecordHit }
func (r *RecordHit) Positions() []format.BattlePosition { return []format.BattlePosition{r.Target} }
func (r *RecordHit) Apply(s *battle.State) {
	p := s.PokemonAt(r.Target)
	if p == nil {
		return
	}
	r.PreviousDamage, r.PreviousCategory, r.PreviousTurn = p.LastHitDamage, p.LastHitCategory, p.LastHitTurn
	p.LastHitDamage, p.LastHitCategory, p.LastHitTurn = r.Damage, r.Category, r.Turn
}
func (r *RecordHit) Revert(s *battle.State) {
	p := s.PokemonAt(r.Target)
	if p == nil {
		return
	}
	p.LastHitDamage, p.LastHitCategory, p.LastHitTurn = r.PreviousDamage, r.PreviousCategory, r.PreviousTurn
}

// Heal restores HP to a position, clamped to MaxHP.
type Heal struct {
	Target     format.BattlePosition
	Amount     int
	PreviousHP int
}

func (h *Heal) Kind() Kind                        { return KindHeal }
func (h *Heal) Positions() []format.BattlePosition { return []format.BattlePosition{h.Target} }
func (h *Heal) Apply(s *battle.State) {
	p := s.PokemonAt(h.Target)
	if p == nil {
		return
	}
	h.PreviousHP = p.HP
	p.HP += h.Amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}
func (h *Heal) Revert(s *battle.State) {
	p := s.PokemonAt(h.Target)
	if p == nil {
		return
	}
	p.HP = h.PreviousHP
}

// ApplyStatus sets a Pokémon's major status, replacing any prior one.
type ApplyStatus struct {
	Target           format.BattlePosition
	Status           ident.MajorStatus
	Duration         int
	PreviousStatus   ident.MajorStatus
	PreviousDuration int
}

func (a *ApplyStatus) Kind() Kind                        { return KindApplyStatus }
func (a *ApplyStatus) Positions() []format.BattlePosition { return []format.BattlePosition{a.Target} }
func (a *ApplyStatus) Apply(s *battle.State) {
	p := s.PokemonAt(a.Target)
	if p == nil {
		return
	}
	a.PreviousStatus = p.Status
	a.PreviousDuration = p.StatusDuration
	p.Status = a.Status
	p.StatusDuration = a.Duration
}
func (a *ApplyStatus) Revert(s *battle.State) {
	p := s.PokemonAt(a.Target)
	if p == nil {
		return
	}
	p.Status = a.PreviousStatus
	p.StatusDuration = a.PreviousDuration
}

// RemoveStatus clears a Pokémon's major status back to None.
type RemoveStatus struct {
	Target           format.BattlePosition
	PreviousStatus   ident.MajorStatus
	PreviousDuration int
}

func (r *RemoveStatus) Kind() Kind                        { return KindRemoveStatus }
func (r *RemoveStatus) Positions() []format.BattlePosition { return []format.BattlePosition{r.Target} }
func (r *RemoveStatus) Apply(s *battle.State) {
	p := s.PokemonAt(r.Target)
	if p == nil {
		return
	}
	r.PreviousStatus = p.Status
	r.PreviousDuration = p.StatusDuration
	p.Status = ident.StatusNone
	p.StatusDuration = 0
}
func (r *RemoveStatus) Revert(s *battle.State) {
	p := s.PokemonAt(r.Target)
	if p == nil {
		return
	}
	p.Status = r.PreviousStatus
	p.StatusDuration = r.PreviousDuration
}

// ChangeStatusDuration adjusts the counter on the current major status
// (used by the BadlyPoisoned toxic counter and Sleep turns remaining).
type ChangeStatusDuration struct {
	Target   format.BattlePosition
	Delta    int
	Previous int
}

func (c *ChangeStatusDuration) Kind() Kind                        { return KindChangeStatusDuration }
func (c *ChangeStatusDuration) Positions() []format.BattlePosition { return []format.BattlePosition{c.Target} }
func (c *ChangeStatusDuration) Apply(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	c.Previous = p.StatusDuration
	p.StatusDuration += c.Delta
}
func (c *ChangeStatusDuration) Revert(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	p.StatusDuration = c.Previous
}

// ApplyVolatile adds (or refreshes) a volatile status on a Pokémon.
type ApplyVolatile struct {
	Target   format.BattlePosition
	Volatile ident.Volatile
	Duration int
	Data     int

	hadPrevious bool
	previous    battle.VolatileInstance
}

func (a *ApplyVolatile) Kind() Kind                        { return KindApplyVolatile }
func (a *ApplyVolatile) Positions() []format.BattlePosition { return []format.BattlePosition{a.Target} }
func (a *ApplyVolatile) Apply(s *battle.State) {
	p := s.PokemonAt(a.Target)
	if p == nil {
		return
	}
	if p.Volatiles == nil {
		p.Volatiles = make(map[ident.Volatile]*battle.VolatileInstance)
	}
	if prev, ok := p.Volatiles[a.Volatile]; ok {
		a.hadPrevious = true
		a.previous = *prev
	}
	p.Volatiles[a.Volatile] = &battle.VolatileInstance{Duration: a.Duration, Data: a.Data}
}
func (a *ApplyVolatile) Revert(s *battle.State) {
	p := s.PokemonAt(a.Target)
	if p == nil || p.Volatiles == nil {
		return
	}
	if a.hadPrevious {
		prev := a.previous
		p.Volatiles[a.Volatile] = &prev
	} else {
		delete(p.Volatiles, a.Volatile)
	}
}

// RemoveVolatile clears a volatile status from a Pokémon.
type RemoveVolatile struct {
	Target   format.BattlePosition
	Volatile ident.Volatile

	hadPrevious bool
	previous    battle.VolatileInstance
}

func (r *RemoveVolatile) Kind() Kind                        { return KindRemoveVolatile }
func (r *RemoveVolatile) Positions() []format.BattlePosition { return []format.BattlePosition{r.Target} }
func (r *RemoveVolatile) Apply(s *battle.State) {
	p := s.PokemonAt(r.Target)
	if p == nil || p.Volatiles == nil {
		return
	}
	if prev, ok := p.Volatiles[r.Volatile]; ok {
		r.hadPrevious = true
		r.previous = *prev
	}
	delete(p.Volatiles, r.Volatile)
}
func (r *RemoveVolatile) Revert(s *battle.State) {
	p := s.PokemonAt(r.Target)
	if p == nil {
		return
	}
	if r.hadPrevious {
		if p.Volatiles == nil {
			p.Volatiles = make(map[ident.Volatile]*battle.VolatileInstance)
		}
		prev := r.previous
		p.Volatiles[r.Volatile] = &prev
	}
}

// ChangeVolatileDuration adjusts the remaining duration on an active
// volatile; the volatile is removed in the same step when it reaches 0
// (spec.md §3 invariant).
type ChangeVolatileDuration struct {
	Target   format.BattlePosition
	Volatile ident.Volatile
	Delta    int

	previous     int
	wasRemoved   bool
	removedData  int
}

func (c *ChangeVolatileDuration) Kind() Kind                        { return KindChangeVolatileDuration }
func (c *ChangeVolatileDuration) Positions() []format.BattlePosition { return []format.BattlePosition{c.Target} }
func (c *ChangeVolatileDuration) Apply(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil || p.Volatiles == nil {
		return
	}
	v, ok := p.Volatiles[c.Volatile]
	if !ok {
		return
	}
	c.previous = v.Duration
	v.Duration += c.Delta
	if v.Duration <= 0 {
		c.wasRemoved = true
		c.removedData = v.Data
		delete(p.Volatiles, c.Volatile)
	}
}
func (c *ChangeVolatileDuration) Revert(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	if p.Volatiles == nil {
		p.Volatiles = make(map[ident.Volatile]*battle.VolatileInstance)
	}
	if c.wasRemoved {
		p.Volatiles[c.Volatile] = &battle.VolatileInstance{Duration: c.previous, Data: c.removedData}
		return
	}
	if v, ok := p.Volatiles[c.Volatile]; ok {
		v.Duration = c.previous
	}
}

// BoostStats applies stat-stage deltas, clamping each to -6..+6. Applied
// records the delta actually used (post-clamp) per stat so Revert is exact
// even when a requested boost was partially or fully capped (spec.md §8
// "Boundary behaviors": a +6 boost produces no further change).
type BoostStats struct {
	Target  format.BattlePosition
	Deltas  map[ident.Stat]int
	Applied map[ident.Stat]int
}

func (b *BoostStats) Kind() Kind                        { return KindBoostStats }
func (b *BoostStats) Positions() []format.BattlePosition { return []format.BattlePosition{b.Target} }
func (b *BoostStats) Apply(s *battle.State) {
	p := s.PokemonAt(b.Target)
	if p == nil {
		return
	}
	b.Applied = make(map[ident.Stat]int, len(b.Deltas))
	for stat, delta := range b.Deltas {
		before := p.Boosts[stat]
		after := battle.ClampBoost(before + delta)
		b.Applied[stat] = after - before
		p.Boosts[stat] = after
	}
}
func (b *BoostStats) Revert(s *battle.State) {
	p := s.PokemonAt(b.Target)
	if p == nil {
		return
	}
	for stat, applied := range b.Applied {
		p.Boosts[stat] -= applied
	}
}

// ChangeAbility swaps a Pokémon's ability (Trace, Skill Swap, Worry Seed).
type ChangeAbility struct {
	Target   format.BattlePosition
	Ability  ident.Ability
	Previous ident.Ability
}

func (c *ChangeAbility) Kind() Kind                        { return KindChangeAbility }
func (c *ChangeAbility) Positions() []format.BattlePosition { return []format.BattlePosition{c.Target} }
func (c *ChangeAbility) Apply(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	c.Previous = p.Ability
	p.Ability = c.Ability
}
func (c *ChangeAbility) Revert(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	p.Ability = c.Previous
}

// ChangeItem swaps or removes a Pokémon's held item (Knock Off, Trick,
// Thief, Fling's consumption).
type ChangeItem struct {
	Target   format.BattlePosition
	Item     ident.Item
	Previous ident.Item
}

func (c *ChangeItem) Kind() Kind                        { return KindChangeItem }
func (c *ChangeItem) Positions() []format.BattlePosition { return []format.BattlePosition{c.Target} }
func (c *ChangeItem) Apply(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	c.Previous = p.Item
	p.Item = c.Item
}
func (c *ChangeItem) Revert(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	p.Item = c.Previous
}

// ChangeType overrides a Pokémon's type list (Soak, Forest's Curse, Trick-
// or-Treat, Color Change).
type ChangeType struct {
	Target   format.BattlePosition
	Types    []ident.Type
	Previous []ident.Type
}

func (c *ChangeType) Kind() Kind                        { return KindChangeType }
func (c *ChangeType) Positions() []format.BattlePosition { return []format.BattlePosition{c.Target} }
func (c *ChangeType) Apply(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	c.Previous = append([]ident.Type(nil), p.Types...)
	p.Types = append([]ident.Type(nil), c.Types...)
}
func (c *ChangeType) Revert(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	p.Types = c.Previous
}

// FormeChange swaps a Pokémon's species tag in place (Mega Evolution,
// Zen Mode, Shields Down) without touching its roster slot.
type FormeChange struct {
	Target   format.BattlePosition
	Species  ident.Species
	Previous ident.Species
}

func (f *FormeChange) Kind() Kind                        { return KindFormeChange }
func (f *FormeChange) Positions() []format.BattlePosition { return []format.BattlePosition{f.Target} }
func (f *FormeChange) Apply(s *battle.State) {
	p := s.PokemonAt(f.Target)
	if p == nil {
		return
	}
	f.Previous = p.Species
	p.Species = f.Species
}
func (f *FormeChange) Revert(s *battle.State) {
	p := s.PokemonAt(f.Target)
	if p == nil {
		return
	}
	p.Species = f.Previous
}

// ToggleTerastallised flips the Gen 9 Terastallize flag and sets/clears the
// effective type override.
type ToggleTerastallised struct {
	Target   format.BattlePosition
	Value    bool
	Previous bool
}

func (t *ToggleTerastallised) Kind() Kind                        { return KindToggleTerastallised }
func (t *ToggleTerastallised) Positions() []format.BattlePosition { return []format.BattlePosition{t.Target} }
func (t *ToggleTerastallised) Apply(s *battle.State) {
	p := s.PokemonAt(t.Target)
	if p == nil {
		return
	}
	t.Previous = p.Terastallized
	p.Terastallized = t.Value
}
func (t *ToggleTerastallised) Revert(s *battle.State) {
	p := s.PokemonAt(t.Target)
	if p == nil {
		return
	}
	p.Terastallized = t.Previous
}

// DecrementPP lowers a move slot's PP by Amount, floored at 0; a negative
// Amount restores PP.
type DecrementPP struct {
	Target    format.BattlePosition
	MoveIndex int
	Amount    int
	Previous  int
}

func (d *DecrementPP) Kind() Kind                        { return KindDecrementPP }
func (d *DecrementPP) Positions() []format.BattlePosition { return []format.BattlePosition{d.Target} }
func (d *DecrementPP) Apply(s *battle.State) {
	p := s.PokemonAt(d.Target)
	if p == nil || d.MoveIndex < 0 || d.MoveIndex >= len(p.Moves) {
		return
	}
	d.Previous = p.Moves[d.MoveIndex].PP
	p.Moves[d.MoveIndex].PP -= d.Amount
	if p.Moves[d.MoveIndex].PP < 0 {
		p.Moves[d.MoveIndex].PP = 0
	}
}
func (d *DecrementPP) Revert(s *battle.State) {
	p := s.PokemonAt(d.Target)
	if p == nil || d.MoveIndex < 0 || d.MoveIndex >= len(p.Moves) {
		return
	}
	p.Moves[d.MoveIndex].PP = d.Previous
}

// DisableMove toggles the Disable lockout on one move slot (Disable move,
// Cursed Body, Choice-item lock is tracked by the caller reading PP/usage
// rather than this flag).
type DisableMove struct {
	Target    format.BattlePosition
	MoveIndex int
	Value     bool
	Previous  bool
}

func (d *DisableMove) Kind() Kind                        { return KindDisableMove }
func (d *DisableMove) Positions() []format.BattlePosition { return []format.BattlePosition{d.Target} }
func (d *DisableMove) Apply(s *battle.State) {
	p := s.PokemonAt(d.Target)
	if p == nil || d.MoveIndex < 0 || d.MoveIndex >= len(p.Moves) {
		return
	}
	d.Previous = p.Moves[d.MoveIndex].Disabled
	p.Moves[d.MoveIndex].Disabled = d.Value
}
func (d *DisableMove) Revert(s *battle.State) {
	p := s.PokemonAt(d.Target)
	if p == nil || d.MoveIndex < 0 || d.MoveIndex >= len(p.Moves) {
		return
	}
	p.Moves[d.MoveIndex].Disabled = d.Previous
}

// ChangeSubstituteHealth adjusts a Pokémon's Substitute HP counter.
type ChangeSubstituteHealth struct {
	Target   format.BattlePosition
	Delta    int
	Previous int
}

func (c *ChangeSubstituteHealth) Kind() Kind                        { return KindChangeSubstituteHealth }
func (c *ChangeSubstituteHealth) Positions() []format.BattlePosition { return []format.BattlePosition{c.Target} }
func (c *ChangeSubstituteHealth) Apply(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	c.Previous = p.SubstituteHP
	p.SubstituteHP += c.Delta
	if p.SubstituteHP < 0 {
		p.SubstituteHP = 0
	}
}
func (c *ChangeSubstituteHealth) Revert(s *battle.State) {
	p := s.PokemonAt(c.Target)
	if p == nil {
		return
	}
	p.SubstituteHP = c.Previous
}

// SetWish stores a pending Wish on the user's side-slot.
type SetWish struct {
	Side     int
	Slot     int
	Heal     int
	Turns    int
	Previous *battle.WishState
}

func (s *SetWish) Kind() Kind { return KindSetWish }
func (s *SetWish) Positions() []format.BattlePosition {
	return []format.BattlePosition{{Side: s.Side, Slot: s.Slot}}
}
func (s *SetWish) Apply(st *battle.State) {
	side := st.Sides[s.Side]
	if prev, ok := side.Wishes[s.Slot]; ok {
		cp := *prev
		s.Previous = &cp
	}
	side.Wishes[s.Slot] = &battle.WishState{HealAmount: s.Heal, Turns: s.Turns}
}
func (s *SetWish) Revert(st *battle.State) {
	side := st.Sides[s.Side]
	if s.Previous != nil {
		cp := *s.Previous
		side.Wishes[s.Slot] = &cp
	} else {
		delete(side.Wishes, s.Slot)
	}
}

// SetFutureSight stores a pending delayed-damage hit on the target's side-
// slot (spec.md §3, §4.4 step 10). The attacker position is stored by value
// so a subsequent switch does not invalidate it (spec.md §9 "No cyclic
// ownership").
type SetFutureSight struct {
	TargetSide   int
	TargetSlot   int
	AttackerSide int
	AttackerSlot int
	Damage       int
	Turns        int
	MoveName     string
	Previous     *battle.FutureSightState
}

func (s *SetFutureSight) Kind() Kind { return KindSetFutureSight }
func (s *SetFutureSight) Positions() []format.BattlePosition {
	return []format.BattlePosition{{Side: s.TargetSide, Slot: s.TargetSlot}}
}
func (s *SetFutureSight) Apply(st *battle.State) {
	side := st.Sides[s.TargetSide]
	if prev, ok := side.FutureSights[s.TargetSlot]; ok {
		cp := *prev
		s.Previous = &cp
	}
	side.FutureSights[s.TargetSlot] = &battle.FutureSightState{
		AttackerSide: s.AttackerSide, AttackerSlot: s.AttackerSlot,
		Damage: s.Damage, Turns: s.Turns, MoveName: s.MoveName,
	}
}
func (s *SetFutureSight) Revert(st *battle.State) {
	side := st.Sides[s.TargetSide]
	if s.Previous != nil {
		cp := *s.Previous
		side.FutureSights[s.TargetSlot] = &cp
	} else {
		delete(side.FutureSights, s.TargetSlot)
	}
}

// RemoveWish clears a pending Wish from a side-slot once it has fired
// (spec.md §4.4 step 5).
type RemoveWish struct {
	Side     int
	Slot     int
	previous *battle.WishState
}

func (r *RemoveWish) Kind() Kind { return KindRemoveWish }
func (r *RemoveWish) Positions() []format.BattlePosition {
	return []format.BattlePosition{{Side: r.Side, Slot: r.Slot}}
}
func (r *RemoveWish) Apply(st *battle.State) {
	side := st.Sides[r.Side]
	if prev, ok := side.Wishes[r.Slot]; ok {
		cp := *prev
		r.previous = &cp
	}
	delete(side.Wishes, r.Slot)
}
func (r *RemoveWish) Revert(st *battle.State) {
	if r.previous == nil {
		return
	}
	side := st.Sides[r.Side]
	cp := *r.previous
	side.Wishes[r.Slot] = &cp
}

// RemoveFutureSight clears a pending Future Sight/Doom Desire hit from a
// side-slot once it has fired (spec.md §4.4 step 4).
type RemoveFutureSight struct {
	Side     int
	Slot     int
	previous *battle.FutureSightState
}

func (r *RemoveFutureSight) Kind() Kind { return KindRemoveFutureSight }
func (r *RemoveFutureSight) Positions() []format.BattlePosition {
	return []format.BattlePosition{{Side: r.Side, Slot: r.Slot}}
}
func (r *RemoveFutureSight) Apply(st *battle.State) {
	side := st.Sides[r.Side]
	if prev, ok := side.FutureSights[r.Slot]; ok {
		cp := *prev
		r.previous = &cp
	}
	delete(side.FutureSights, r.Slot)
}
func (r *RemoveFutureSight) Revert(st *battle.State) {
	if r.previous == nil {
		return
	}
	side := st.Sides[r.Side]
	cp := *r.previous
	side.FutureSights[r.Slot] = &cp
}

// Faint marks a Pokémon as fainted by zeroing its HP (the Fainted() check is
// derived from HP==0, per spec.md §3 invariant).
type Faint struct {
	Target     format.BattlePosition
	PreviousHP int
}

func (f *Faint) Kind() Kind                        { return KindFaint }
func (f *Faint) Positions() []format.BattlePosition { return []format.BattlePosition{f.Target} }
func (f *Faint) Apply(s *battle.State) {
	p := s.PokemonAt(f.Target)
	if p == nil {
		return
	}
	f.PreviousHP = p.HP
	p.HP = 0
}
func (f *Faint) Revert(s *battle.State) {
	p := s.PokemonAt(f.Target)
	if p == nil {
		return
	}
	p.HP = f.PreviousHP
}

// Switch replaces the roster index occupying a slot.
type Switch struct {
	Target         format.BattlePosition
	NewRosterIndex int
	PreviousIndex  int
}

func (sw *Switch) Kind() Kind                        { return KindSwitch }
func (sw *Switch) Positions() []format.BattlePosition { return []format.BattlePosition{sw.Target} }
func (sw *Switch) Apply(s *battle.State) {
	side := s.Sides[sw.Target.Side]
	sw.PreviousIndex = side.ActiveRosterIndex(sw.Target.Slot)
	side.SetActive(sw.Target.Slot, sw.NewRosterIndex)
}
func (sw *Switch) Revert(s *battle.State) {
	side := s.Sides[sw.Target.Side]
	side.SetActive(sw.Target.Slot, sw.PreviousIndex)
}
