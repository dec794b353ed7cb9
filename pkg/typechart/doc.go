// Package typechart implements the generation-parameterised type
// effectiveness matrix and STAB (same-type attack bonus) multiplier. The
// chart is immutable after construction and safe for concurrent read access
// from multiple battle workers (spec.md §5).
package typechart
