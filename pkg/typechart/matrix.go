package typechart

import . "goldbox-rpg/pkg/ident"

// applyModernChart populates the Gen 6-9 type effectiveness matrix. Only
// non-neutral entries are listed; everything else defaults to Neutral.
func applyModernChart(c *Chart) {
	type entry struct {
		atk, def Type
		e        Effectiveness
	}
	entries := []entry{
		// Normal
		{TypeNormal, TypeRock, Resist}, {TypeNormal, TypeGhost, Immune}, {TypeNormal, TypeSteel, Resist},
		// Fire
		{TypeFire, TypeFire, Resist}, {TypeFire, TypeWater, Resist}, {TypeFire, TypeGrass, SuperEffective},
		{TypeFire, TypeIce, SuperEffective}, {TypeFire, TypeBug, SuperEffective}, {TypeFire, TypeRock, Resist},
		{TypeFire, TypeDragon, Resist}, {TypeFire, TypeSteel, SuperEffective},
		// Water
		{TypeWater, TypeFire, SuperEffective}, {TypeWater, TypeWater, Resist}, {TypeWater, TypeGrass, Resist},
		{TypeWater, TypeGround, SuperEffective}, {TypeWater, TypeRock, SuperEffective}, {TypeWater, TypeDragon, Resist},
		// Electric
		{TypeElectric, TypeWater, SuperEffective}, {TypeElectric, TypeElectric, Resist}, {TypeElectric, TypeGrass, Resist},
		{TypeElectric, TypeGround, Immune}, {TypeElectric, TypeFlying, SuperEffective}, {TypeElectric, TypeDragon, Resist},
		// Grass
		{TypeGrass, TypeFire, Resist}, {TypeGrass, TypeWater, SuperEffective}, {TypeGrass, TypeGrass, Resist},
		{TypeGrass, TypePoison, Resist}, {TypeGrass, TypeGround, SuperEffective}, {TypeGrass, TypeFlying, Resist},
		{TypeGrass, TypeBug, Resist}, {TypeGrass, TypeRock, SuperEffective}, {TypeGrass, TypeDragon, Resist},
		{TypeGrass, TypeSteel, Resist},
		// Ice
		{TypeIce, TypeFire, Resist}, {TypeIce, TypeWater, Resist}, {TypeIce, TypeGrass, SuperEffective},
		{TypeIce, TypeIce, Resist}, {TypeIce, TypeGround, SuperEffective}, {TypeIce, TypeFlying, SuperEffective},
		{TypeIce, TypeDragon, SuperEffective}, {TypeIce, TypeSteel, Resist},
		// Fighting
		{TypeFighting, TypeNormal, SuperEffective}, {TypeFighting, TypeIce, SuperEffective}, {TypeFighting, TypePoison, Resist},
		{TypeFighting, TypeFlying, Resist}, {TypeFighting, TypePsychic, Resist}, {TypeFighting, TypeBug, Resist},
		{TypeFighting, TypeRock, SuperEffective}, {TypeFighting, TypeGhost, Immune}, {TypeFighting, TypeDark, SuperEffective},
		{TypeFighting, TypeSteel, SuperEffective}, {TypeFighting, TypeFairy, Resist},
		// Poison
		{TypePoison, TypeGrass, SuperEffective}, {TypePoison, TypePoison, Resist}, {TypePoison, TypeGround, Resist},
		{TypePoison, TypeRock, Resist}, {TypePoison, TypeGhost, Resist}, {TypePoison, TypeSteel, Immune},
		{TypePoison, TypeFairy, SuperEffective},
		// Ground
		{TypeGround, TypeFire, SuperEffective}, {TypeGround, TypeElectric, SuperEffective}, {TypeGround, TypeGrass, Resist},
		{TypeGround, TypePoison, SuperEffective}, {TypeGround, TypeFlying, Immune}, {TypeGround, TypeBug, Resist},
		{TypeGround, TypeRock, SuperEffective}, {TypeGround, TypeSteel, SuperEffective},
		// Flying
		{TypeFlying, TypeElectric, Resist}, {TypeFlying, TypeGrass, SuperEffective}, {TypeFlying, TypeFighting, SuperEffective},
		{TypeFlying, TypeBug, SuperEffective}, {TypeFlying, TypeRock, Resist}, {TypeFlying, TypeSteel, Resist},
		// Psychic
		{TypePsychic, TypeFighting, SuperEffective}, {TypePsychic, TypePoison, SuperEffective}, {TypePsychic, TypePsychic, Resist},
		{TypePsychic, TypeDark, Immune}, {TypePsychic, TypeSteel, Resist},
		// Bug
		{TypeBug, TypeFire, Resist}, {TypeBug, TypeGrass, SuperEffective}, {TypeBug, TypeFighting, Resist},
		{TypeBug, TypePoison, Resist}, {TypeBug, TypeFlying, Resist}, {TypeBug, TypePsychic, SuperEffective},
		{TypeBug, TypeGhost, Resist}, {TypeBug, TypeDark, SuperEffective}, {TypeBug, TypeSteel, Resist}, {TypeBug, TypeFairy, Resist},
		// Rock
		{TypeRock, TypeFire, SuperEffective}, {TypeRock, TypeIce, SuperEffective}, {TypeRock, TypeFighting, Resist},
		{TypeRock, TypeGround, Resist}, {TypeRock, TypeFlying, SuperEffective}, {TypeRock, TypeBug, SuperEffective},
		{TypeRock, TypeSteel, Resist},
		// Ghost
		{TypeGhost, TypeNormal, Immune}, {TypeGhost, TypePsychic, SuperEffective}, {TypeGhost, TypeGhost, SuperEffective},
		{TypeGhost, TypeDark, Resist},
		// Dragon
		{TypeDragon, TypeDragon, SuperEffective}, {TypeDragon, TypeSteel, Resist}, {TypeDragon, TypeFairy, Immune},
		// Dark
		{TypeDark, TypeFighting, Resist}, {TypeDark, TypePsychic, SuperEffective}, {TypeDark, TypeGhost, SuperEffective},
		{TypeDark, TypeDark, Resist}, {TypeDark, TypeFairy, Resist},
		// Steel
		{TypeSteel, TypeFire, Resist}, {TypeSteel, TypeWater, Resist}, {TypeSteel, TypeElectric, Resist},
		{TypeSteel, TypeIce, SuperEffective}, {TypeSteel, TypeRock, SuperEffective}, {TypeSteel, TypeSteel, Resist},
		{TypeSteel, TypeFairy, SuperEffective},
		// Fairy
		{TypeFairy, TypeFire, Resist}, {TypeFairy, TypeFighting, SuperEffective}, {TypeFairy, TypePoison, Resist},
		{TypeFairy, TypeDragon, SuperEffective}, {TypeFairy, TypeDark, SuperEffective}, {TypeFairy, TypeSteel, Resist},
	}
	for _, e := range entries {
		c.set(e.atk, e.def, e.e)
	}
}

// applyPreGen6Deltas reverts the Gen 6 Fairy-type introduction and the Gen 6
// Steel-vs-Ghost/Dark resistance removal, the two documented deltas that
// matter for the generations this engine targets (spec.md notes earlier
// deltas like Gen1's Ice/Poison quirks are handled separately).
func applyPreGen6Deltas(c *Chart, generation int) {
	// Fairy did not exist before Gen 6; treat all Fairy interactions as
	// neutral and remove the Dragon-vs-Fairy immunity.
	for _, t := range AllTypes() {
		c.set(TypeFairy, t, Neutral)
		c.set(t, TypeFairy, Neutral)
	}
	c.set(TypeDragon, TypeFairy, Neutral)
	// Pre-Gen 6, Steel resisted Ghost and Dark.
	c.set(TypeGhost, TypeSteel, Resist)
	c.set(TypeDark, TypeSteel, Resist)
}

// applyGen1Deltas encodes the handful of Gen 1 type-chart quirks that differ
// from the modern chart and are commonly exercised in legacy-format tests:
// Poison and Bug are super effective against each other, Ice is neutral
// against Fire, and Ghost has no effect on Psychic.
func applyGen1Deltas(c *Chart) {
	c.set(TypePoison, TypeBug, SuperEffective)
	c.set(TypeBug, TypePoison, SuperEffective)
	c.set(TypeIce, TypeFire, Neutral)
	c.set(TypeGhost, TypePsychic, Immune)
}
