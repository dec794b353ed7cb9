// Package endofturn implements the fixed-order end-of-turn pipeline
// (spec.md §4.4): field and side-condition duration ticks, weather and
// terrain damage/healing, Future Sight and Wish resolution, major-status
// damage, Leech Seed, volatile duration ticks, and Perish Song, applied in
// the same order every turn regardless of which Pokémon or format is in
// play.
package endofturn
