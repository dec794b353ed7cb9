package battle

import "goldbox-rpg/pkg/ident"

// WishState is a pending Wish heal stored on a side-slot: it fires when
// Turns decrements to 0, healing whoever currently occupies that slot.
type WishState struct {
	HealAmount int
	Turns      int
}

// FutureSightState is a pending delayed-damage hit. The damage was computed
// at set time against the setter's stats and is applied verbatim to
// whichever Pokémon occupies the slot when Turns reaches 0 (spec.md §3
// "Side entity", §4.4 step 10).
type FutureSightState struct {
	AttackerSide int
	AttackerSlot int
	Damage       int
	Turns        int
	MoveName     string
}

// Side is one team: its six-Pokémon roster, which roster indices are
// currently active, and the side-scoped conditions (hazards, screens,
// Tailwind) in effect.
type Side struct {
	Roster []*Pokemon      // up to 6
	Active []int           // len == format active-per-side; -1 means empty slot

	Conditions map[ident.SideCondition]int // remaining duration, or layer count for Spikes/Toxic Spikes

	Wishes       map[int]*WishState
	FutureSights map[int]*FutureSightState
}

// NewSide builds an empty side with activePerSide slots, all unfilled.
func NewSide(activePerSide int) *Side {
	active := make([]int, activePerSide)
	for i := range active {
		active[i] = -1
	}
	return &Side{
		Active:       active,
		Conditions:   make(map[ident.SideCondition]int),
		Wishes:       make(map[int]*WishState),
		FutureSights: make(map[int]*FutureSightState),
	}
}

// ActiveAt returns the Pokémon at a slot, or nil if the slot is empty or out
// of range.
func (s *Side) ActiveAt(slot int) *Pokemon {
	if slot < 0 || slot >= len(s.Active) {
		return nil
	}
	idx := s.Active[slot]
	if idx < 0 || idx >= len(s.Roster) {
		return nil
	}
	return s.Roster[idx]
}

// ActiveRosterIndex returns the roster index occupying a slot, or -1.
func (s *Side) ActiveRosterIndex(slot int) int {
	if slot < 0 || slot >= len(s.Active) {
		return -1
	}
	return s.Active[slot]
}

// SetActive assigns a roster index to a slot (used by Switch application).
func (s *Side) SetActive(slot, rosterIndex int) {
	if slot < 0 || slot >= len(s.Active) {
		return
	}
	s.Active[slot] = rosterIndex
}

// SpikesLayers returns the current Spikes stack (0-3).
func (s *Side) SpikesLayers() int { return s.Conditions[ident.SideSpikes] }

// ToxicSpikesLayers returns the current Toxic Spikes stack (0-2).
func (s *Side) ToxicSpikesLayers() int { return s.Conditions[ident.SideToxicSpikes] }

// HasCondition reports whether a side condition (with nonzero duration or
// layer count) is in effect.
func (s *Side) HasCondition(c ident.SideCondition) bool { return s.Conditions[c] > 0 }

// Clone deep-copies the side, including every roster Pokémon.
func (s *Side) Clone() *Side {
	cp := &Side{
		Active:       append([]int(nil), s.Active...),
		Conditions:   make(map[ident.SideCondition]int, len(s.Conditions)),
		Wishes:       make(map[int]*WishState, len(s.Wishes)),
		FutureSights: make(map[int]*FutureSightState, len(s.FutureSights)),
	}
	cp.Roster = make([]*Pokemon, len(s.Roster))
	for i, p := range s.Roster {
		if p != nil {
			cp.Roster[i] = p.Clone()
		}
	}
	for k, v := range s.Conditions {
		cp.Conditions[k] = v
	}
	for k, v := range s.Wishes {
		copied := *v
		cp.Wishes[k] = &copied
	}
	for k, v := range s.FutureSights {
		copied := *v
		cp.FutureSights[k] = &copied
	}
	return cp
}
