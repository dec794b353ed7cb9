package instructions

import (
	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
)

// SetWeather changes the field weather.
type SetWeather struct {
	Weather      ident.Weather
	Turns        int
	SourceSide   int
	SourceSlot   int
	HasSource    bool
	previous     ident.Weather
	previousTurn int
	previousSrcSide, previousSrcSlot int
	previousHasSrc bool
}

func (s *SetWeather) Kind() Kind                        { return KindWeather }
func (s *SetWeather) Positions() []format.BattlePosition { return nil }
func (s *SetWeather) Apply(st *battle.State) {
	s.previous = st.Field.Weather
	s.previousTurn = st.Field.WeatherTurns
	s.previousSrcSide = st.Field.WeatherSourceSide
	s.previousSrcSlot = st.Field.WeatherSourceSlot
	s.previousHasSrc = st.Field.HasWeatherSource
	st.Field.Weather = s.Weather
	st.Field.WeatherTurns = s.Turns
	st.Field.WeatherSourceSide = s.SourceSide
	st.Field.WeatherSourceSlot = s.SourceSlot
	st.Field.HasWeatherSource = s.HasSource
}
func (s *SetWeather) Revert(st *battle.State) {
	st.Field.Weather = s.previous
	st.Field.WeatherTurns = s.previousTurn
	st.Field.WeatherSourceSide = s.previousSrcSide
	st.Field.WeatherSourceSlot = s.previousSrcSlot
	st.Field.HasWeatherSource = s.previousHasSrc
}

// DecrementWeatherTurns ticks the weather counter down, clearing the
// weather entirely when it reaches 0 (spec.md §4.4 step 5).
type DecrementWeatherTurns struct {
	Delta          int
	previousTurns  int
	cleared        bool
	previousWeather ident.Weather
}

func (d *DecrementWeatherTurns) Kind() Kind                        { return KindWeather }
func (d *DecrementWeatherTurns) Positions() []format.BattlePosition { return nil }
func (d *DecrementWeatherTurns) Apply(st *battle.State) {
	d.previousTurns = st.Field.WeatherTurns
	d.previousWeather = st.Field.Weather
	st.Field.WeatherTurns += d.Delta
	if st.Field.WeatherTurns <= 0 && st.Field.Weather != ident.WeatherNone {
		d.cleared = true
		st.Field.Weather = ident.WeatherNone
		st.Field.WeatherTurns = 0
	}
}
func (d *DecrementWeatherTurns) Revert(st *battle.State) {
	st.Field.WeatherTurns = d.previousTurns
	if d.cleared {
		st.Field.Weather = d.previousWeather
	}
}

// SetTerrain changes the field terrain.
type SetTerrain struct {
	Terrain       ident.Terrain
	Turns         int
	previous      ident.Terrain
	previousTurns int
}

func (s *SetTerrain) Kind() Kind                        { return KindTerrain }
func (s *SetTerrain) Positions() []format.BattlePosition { return nil }
func (s *SetTerrain) Apply(st *battle.State) {
	s.previous = st.Field.Terrain
	s.previousTurns = st.Field.TerrainTurns
	st.Field.Terrain = s.Terrain
	st.Field.TerrainTurns = s.Turns
}
func (s *SetTerrain) Revert(st *battle.State) {
	st.Field.Terrain = s.previous
	st.Field.TerrainTurns = s.previousTurns
}

// DecrementTerrainTurns ticks the terrain counter down, clearing at 0.
type DecrementTerrainTurns struct {
	Delta           int
	previousTurns   int
	cleared         bool
	previousTerrain ident.Terrain
}

func (d *DecrementTerrainTurns) Kind() Kind                        { return KindTerrain }
func (d *DecrementTerrainTurns) Positions() []format.BattlePosition { return nil }
func (d *DecrementTerrainTurns) Apply(st *battle.State) {
	d.previousTurns = st.Field.TerrainTurns
	d.previousTerrain = st.Field.Terrain
	st.Field.TerrainTurns += d.Delta
	if st.Field.TerrainTurns <= 0 && st.Field.Terrain != ident.TerrainNone {
		d.cleared = true
		st.Field.Terrain = ident.TerrainNone
		st.Field.TerrainTurns = 0
	}
}
func (d *DecrementTerrainTurns) Revert(st *battle.State) {
	st.Field.TerrainTurns = d.previousTurns
	if d.cleared {
		st.Field.Terrain = d.previousTerrain
	}
}

// ToggleTrickRoom flips Trick Room and (re)sets its duration.
type ToggleTrickRoom struct {
	Value            bool
	Turns            int
	previousValue    bool
	previousTurns    int
}

func (t *ToggleTrickRoom) Kind() Kind                        { return KindTrickRoom }
func (t *ToggleTrickRoom) Positions() []format.BattlePosition { return nil }
func (t *ToggleTrickRoom) Apply(st *battle.State) {
	t.previousValue = st.Field.TrickRoom
	t.previousTurns = st.Field.TrickRoomTurns
	st.Field.TrickRoom = t.Value
	st.Field.TrickRoomTurns = t.Turns
}
func (t *ToggleTrickRoom) Revert(st *battle.State) {
	st.Field.TrickRoom = t.previousValue
	st.Field.TrickRoomTurns = t.previousTurns
}

// DecrementGlobalDuration decrements Trick Room or Gravity's turn counter,
// clearing the flag at 0. Which global it targets is chosen by Field.
type DecrementGlobalDuration struct {
	Field GlobalField
	Delta int

	previousTurns int
	previousValue bool
	cleared       bool
}

// GlobalField selects which whole-field toggle a DecrementGlobalDuration
// acts on.
type GlobalField uint8

const (
	GlobalTrickRoom GlobalField = iota
	GlobalGravity
)

func (d *DecrementGlobalDuration) Kind() Kind {
	if d.Field == GlobalTrickRoom {
		return KindTrickRoom
	}
	return KindGravity
}
func (d *DecrementGlobalDuration) Positions() []format.BattlePosition { return nil }
func (d *DecrementGlobalDuration) Apply(st *battle.State) {
	switch d.Field {
	case GlobalTrickRoom:
		d.previousTurns = st.Field.TrickRoomTurns
		d.previousValue = st.Field.TrickRoom
		st.Field.TrickRoomTurns += d.Delta
		if st.Field.TrickRoomTurns <= 0 {
			d.cleared = true
			st.Field.TrickRoom = false
			st.Field.TrickRoomTurns = 0
		}
	case GlobalGravity:
		d.previousTurns = st.Field.GravityTurns
		d.previousValue = st.Field.Gravity
		st.Field.GravityTurns += d.Delta
		if st.Field.GravityTurns <= 0 {
			d.cleared = true
			st.Field.Gravity = false
			st.Field.GravityTurns = 0
		}
	}
}
func (d *DecrementGlobalDuration) Revert(st *battle.State) {
	switch d.Field {
	case GlobalTrickRoom:
		st.Field.TrickRoomTurns = d.previousTurns
		if d.cleared {
			st.Field.TrickRoom = d.previousValue
		}
	case GlobalGravity:
		st.Field.GravityTurns = d.previousTurns
		if d.cleared {
			st.Field.Gravity = d.previousValue
		}
	}
}

// ToggleGravity flips Gravity and sets its duration.
type ToggleGravity struct {
	Value         bool
	Turns         int
	previousValue bool
	previousTurns int
}

func (t *ToggleGravity) Kind() Kind                        { return KindGravity }
func (t *ToggleGravity) Positions() []format.BattlePosition { return nil }
func (t *ToggleGravity) Apply(st *battle.State) {
	t.previousValue = st.Field.Gravity
	t.previousTurns = st.Field.GravityTurns
	st.Field.Gravity = t.Value
	st.Field.GravityTurns = t.Turns
}
func (t *ToggleGravity) Revert(st *battle.State) {
	st.Field.Gravity = t.previousValue
	st.Field.GravityTurns = t.previousTurns
}

// ApplySideCondition sets or increments a side condition (Reflect, Spikes
// layering, etc.).
type ApplySideCondition struct {
	Side      int
	Condition ident.SideCondition
	Value     int // duration for timed conditions, new layer count for stacking ones
	previous  int
}

func (a *ApplySideCondition) Kind() Kind                        { return KindApplySideCondition }
func (a *ApplySideCondition) Positions() []format.BattlePosition { return nil }
func (a *ApplySideCondition) Apply(st *battle.State) {
	side := st.Sides[a.Side]
	a.previous = side.Conditions[a.Condition]
	side.Conditions[a.Condition] = a.Value
}
func (a *ApplySideCondition) Revert(st *battle.State) {
	side := st.Sides[a.Side]
	side.Conditions[a.Condition] = a.previous
}

// RemoveSideCondition clears a side condition entirely (Rapid Spin, Defog,
// Court Change's removal half).
type RemoveSideCondition struct {
	Side      int
	Condition ident.SideCondition
	previous  int
}

func (r *RemoveSideCondition) Kind() Kind                        { return KindRemoveSideCondition }
func (r *RemoveSideCondition) Positions() []format.BattlePosition { return nil }
func (r *RemoveSideCondition) Apply(st *battle.State) {
	side := st.Sides[r.Side]
	r.previous = side.Conditions[r.Condition]
	delete(side.Conditions, r.Condition)
}
func (r *RemoveSideCondition) Revert(st *battle.State) {
	side := st.Sides[r.Side]
	side.Conditions[r.Condition] = r.previous
}

// SwapSideCondition exchanges one condition's value between the two sides
// (Court Change): whatever side 0 had, side 1 now has, and vice versa.
type SwapSideCondition struct {
	Condition ident.SideCondition
	previous0 int
	previous1 int
}

func (s *SwapSideCondition) Kind() Kind                        { return KindSwapSideCondition }
func (s *SwapSideCondition) Positions() []format.BattlePosition { return nil }
func (s *SwapSideCondition) Apply(st *battle.State) {
	side0, side1 := st.Sides[0], st.Sides[1]
	s.previous0, s.previous1 = side0.Conditions[s.Condition], side1.Conditions[s.Condition]
	side0.Conditions[s.Condition], side1.Conditions[s.Condition] = s.previous1, s.previous0
}
func (s *SwapSideCondition) Revert(st *battle.State) {
	side0, side1 := st.Sides[0], st.Sides[1]
	side0.Conditions[s.Condition], side1.Conditions[s.Condition] = s.previous0, s.previous1
}

// DecrementSideConditionDuration ticks a timed side condition's remaining
// duration down, clearing it at 0.
type DecrementSideConditionDuration struct {
	Side      int
	Condition ident.SideCondition
	Delta     int
	previous  int
	cleared   bool
}

func (d *DecrementSideConditionDuration) Kind() Kind { return KindDecrementSideConditionDuration }
func (d *DecrementSideConditionDuration) Positions() []format.BattlePosition { return nil }
func (d *DecrementSideConditionDuration) Apply(st *battle.State) {
	side := st.Sides[d.Side]
	d.previous = side.Conditions[d.Condition]
	next := d.previous + d.Delta
	if next <= 0 {
		d.cleared = true
		delete(side.Conditions, d.Condition)
		return
	}
	side.Conditions[d.Condition] = next
}
func (d *DecrementSideConditionDuration) Revert(st *battle.State) {
	side := st.Sides[d.Side]
	side.Conditions[d.Condition] = d.previous
}

// AdvanceTurn increments the battle's turn counter (spec.md §4.3 step 7).
type AdvanceTurn struct {
	previous int
}

func (a *AdvanceTurn) Kind() Kind                        { return KindAdvanceTurn }
func (a *AdvanceTurn) Positions() []format.BattlePosition { return nil }
func (a *AdvanceTurn) Apply(st *battle.State) {
	a.previous = st.Turn
	st.Turn++
}
func (a *AdvanceTurn) Revert(st *battle.State) { st.Turn = a.previous }
