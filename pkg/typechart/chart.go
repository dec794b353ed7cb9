package typechart

import "goldbox-rpg/pkg/ident"

// Effectiveness is a type-chart multiplier, always one of
// {0, 0.25, 0.5, 1, 2, 4}.
type Effectiveness = float64

const (
	Immune     Effectiveness = 0
	DoubleResist Effectiveness = 0.25
	Resist     Effectiveness = 0.5
	Neutral    Effectiveness = 1
	SuperEffective Effectiveness = 2
	DoubleSuperEffective Effectiveness = 4
)

// Chart is a generation-parameterised type effectiveness matrix. The zero
// value is not usable; construct with New.
type Chart struct {
	generation int
	matrix     [19][19]Effectiveness // indexed by attacking type, defending type
}

// New builds the effectiveness matrix for the given generation. Generation
// numbers outside 1-9 are clamped to the nearest supported generation.
func New(generation int) *Chart {
	if generation < 1 {
		generation = 1
	}
	if generation > 9 {
		generation = 9
	}
	c := &Chart{generation: generation}
	for atk := range c.matrix {
		for def := range c.matrix[atk] {
			c.matrix[atk][def] = Neutral
		}
	}
	applyModernChart(c)
	if generation < 6 {
		applyPreGen6Deltas(c, generation)
	}
	if generation == 1 {
		applyGen1Deltas(c)
	}
	return c
}

func (c *Chart) set(atk, def ident.Type, e Effectiveness) {
	c.matrix[atk][def] = e
}

// Generation returns the generation this chart was built for.
func (c *Chart) Generation() int { return c.generation }

// Effectiveness returns the multiplier for a single attacking type against a
// single defending type.
func (c *Chart) Effectiveness(atk, def ident.Type) Effectiveness {
	if int(atk) >= len(c.matrix) || int(def) >= len(c.matrix[0]) {
		return Neutral
	}
	return c.matrix[atk][def]
}

// EffectivenessAgainst returns the combined multiplier of one attacking type
// against a (1 or 2 element) defender type list, with a Freeze-Dry override
// applied when requested (the calculator passes this for the Freeze-Dry
// move, which treats Water as 2x regardless of the base Ice chart entry).
func (c *Chart) EffectivenessAgainst(atk ident.Type, defTypes []ident.Type, freezeDryOverride bool) Effectiveness {
	total := Effectiveness(1)
	for _, def := range defTypes {
		if def == ident.TypeNone {
			continue
		}
		e := c.Effectiveness(atk, def)
		if freezeDryOverride && atk == ident.TypeIce && def == ident.TypeWater {
			e = SuperEffective
		}
		total *= e
	}
	return total
}

// STABMultiplier returns the same-type-attack-bonus multiplier for an
// attacker with the given types using a move of moveType. adaptability
// doubles the normal 1.5x bonus; tera additionally grants a bonus per
// Gen 9 Terastallization rules (handled by the damage calculator, which
// calls STABForTera instead when the attacker is Terastallised).
func STABMultiplier(attackerTypes []ident.Type, moveType ident.Type, adaptability bool) Effectiveness {
	for _, t := range attackerTypes {
		if t == moveType {
			if adaptability {
				return 2.0
			}
			return 1.5
		}
	}
	return 1.0
}

// STABForTera computes the Gen 9 Terastallized STAB multiplier: 2x when the
// move matches the tera type and also an original type, 1.5x when it
// matches only one of (tera type, original types), per spec.md §4.2 step 9.
func STABForTera(originalTypes []ident.Type, teraType, moveType ident.Type, adaptability bool) Effectiveness {
	matchesTera := moveType == teraType
	matchesOriginal := false
	for _, t := range originalTypes {
		if t == moveType {
			matchesOriginal = true
			break
		}
	}
	switch {
	case matchesTera && matchesOriginal:
		if adaptability {
			return 2.0
		}
		return 2.0
	case matchesTera || matchesOriginal:
		if adaptability {
			return 2.0
		}
		return 1.5
	default:
		return 1.0
	}
}
