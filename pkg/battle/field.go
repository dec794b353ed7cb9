package battle

import "goldbox-rpg/pkg/ident"

// Field holds the battle-wide conditions shared by both sides: weather,
// terrain, Trick Room and Gravity (spec.md §3 "Field entity").
type Field struct {
	Weather      ident.Weather
	WeatherTurns int
	// WeatherSourceSide/Slot identify which Pokémon set the current
	// weather, used by duration-extending items/abilities (e.g. the
	// setter's Heat Rock) and by end-of-turn ability triggers that key off
	// "weather I set is still active."
	WeatherSourceSide int
	WeatherSourceSlot int
	HasWeatherSource  bool

	Terrain      ident.Terrain
	TerrainTurns int

	TrickRoom      bool
	TrickRoomTurns int

	Gravity      bool
	GravityTurns int
}

// Clone copies the field (it has no reference types, so this is a plain
// value copy, but it is a named method for symmetry with Side/Pokemon).
func (f Field) Clone() Field { return f }
