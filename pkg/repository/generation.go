package repository

import "encoding/json"

// MinGeneration and MaxGeneration bound the supported generation range
// (spec.md §2: generations 1-9).
const (
	MinGeneration = 1
	MaxGeneration = 9
)

// ValidGeneration reports whether gen falls within the supported range.
func ValidGeneration(gen int) bool { return gen >= MinGeneration && gen <= MaxGeneration }

// generationOverlay is one generation's delta file: for each catalogue,
// a map from normalized identifier to a JSON merge-patch object (RFC 7396
// semantics: present keys overwrite, absent keys are left alone) describing
// how that record differed in this generation relative to the generation
// above it. This mirrors the cascading per-generation delta approach
// pkg/typechart uses for the type chart, applied here to move/species data
// instead of type effectiveness.
type generationOverlay struct {
	Moves     map[string]json.RawMessage `json:"moves"`
	Pokemon   map[string]json.RawMessage `json:"pokemon"`
	Items     map[string]json.RawMessage `json:"items"`
	Abilities map[string]json.RawMessage `json:"abilities"`
}

// mergePatch applies a JSON merge-patch object onto base, producing a new
// value of the same shape. It round-trips through map[string]interface{}
// rather than a field-by-field switch because catalogue records have many
// fields and new ones are added over time; this keeps overlay application
// generic across MoveRecord/PokemonRecord/ItemRecord/AbilityRecord.
func mergePatch[T any](base T, patch json.RawMessage) (T, error) {
	var zero T
	if len(patch) == 0 {
		return base, nil
	}

	baseBytes, err := json.Marshal(base)
	if err != nil {
		return zero, err
	}

	var baseMap map[string]interface{}
	if err := json.Unmarshal(baseBytes, &baseMap); err != nil {
		return zero, err
	}

	var patchMap map[string]interface{}
	if err := json.Unmarshal(patch, &patchMap); err != nil {
		return zero, err
	}
	for k, v := range patchMap {
		baseMap[k] = v
	}

	mergedBytes, err := json.Marshal(baseMap)
	if err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(mergedBytes, &out); err != nil {
		return zero, err
	}
	return out, nil
}
