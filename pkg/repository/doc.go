// Package repository is the read-only catalogue of generation-indexed
// move/pokémon/item/ability records (spec.md §2 "Data Repository", §6 "Data
// files"). It loads Showdown-convention JSON catalogues plus per-generation
// change overlays, normalizes every base-catalogue identifier through
// pkg/ident at load time (overlay files are keyed by the normalized
// identifier), and is read-only once constructed: LoadSingleton shares one
// instance through sync.Once, and resolved per-generation records are
// memoized in a mutex-guarded cache (spec.md §5).
package repository
