package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/endofturn"
	"goldbox-rpg/pkg/instructions"
)

// GenerateInstructions runs one full turn (spec.md §4.3, the Turn Engine's
// public operation): resolve order, execute each side's action against the
// state the other side's action left behind, combine the two into a
// weighted outcome tree, append the end-of-turn pipeline to every branch,
// and advance the turn counter. s is read-only; the returned branches are
// applied by the caller via instructions.Apply/ApplyBattleInstructions.
func GenerateInstructions(s *battle.State, choiceA, choiceB Choice, env Env) ([]instructions.BattleInstructions, error) {
	start := time.Now()
	logrus.WithFields(logrus.Fields{
		"function": "GenerateInstructions",
		"package":  "engine",
		"turn":     s.Turn,
	}).Debug("entering GenerateInstructions")

	first, second := determineOrder(s, choiceA, choiceB)

	firstBranches, err := resolveAction(s, first, second.Choice.isSwitch(), env)
	if err != nil {
		return nil, err
	}
	firstBranches = instructions.NormalizeWeights(firstBranches)
	if len(firstBranches) == 0 {
		firstBranches = []instructions.BattleInstructions{{Percentage: 100}}
	}

	var combined []instructions.BattleInstructions
	for _, fb := range firstBranches {
		scratch := s.Clone()
		instructions.Apply(scratch, fb.Instructions)

		// A fainted actor's pending action is cancelled in this branch
		// (spec.md §4.3 step 4 cancellation rule); re-resolving the second
		// actor's move targets against scratch (rather than s) satisfies
		// step 4's requirement to retarget onto a fresh switch-in when the
		// first action was a switch, since resolveMove re-derives targets
		// from the position whenever Choice.Targets is nil.
		var secondBranches []instructions.BattleInstructions
		if p := scratch.PokemonAt(second.Pos); p != nil && !p.Fainted() {
			secondBranches, err = resolveAction(scratch, second, false, env)
			if err != nil {
				return nil, err
			}
		}

		combined = append(combined, instructions.Combine([]instructions.BattleInstructions{fb}, secondBranches)...)
	}
	combined = instructions.NormalizeWeights(combined)

	final := make([]instructions.BattleInstructions, 0, len(combined))
	for _, b := range combined {
		scratch := s.Clone()
		instructions.Apply(scratch, b.Instructions)
		eot := endofturn.Process(scratch)

		merged := make([]instructions.Instruction, 0, len(b.Instructions)+len(eot)+1)
		merged = append(merged, b.Instructions...)
		merged = append(merged, eot...)
		merged = append(merged, &instructions.AdvanceTurn{})

		final = append(final, instructions.BattleInstructions{Percentage: b.Percentage, Instructions: merged})
	}
	final = instructions.NormalizeWeights(final)

	instructionCount := 0
	for _, b := range final {
		instructionCount += len(b.Instructions)
	}
	env.Metrics.RecordTurn(len(final), instructionCount, time.Since(start))

	logrus.WithFields(logrus.Fields{
		"function": "GenerateInstructions",
		"package":  "engine",
		"turn":     s.Turn,
		"branches": len(final),
		"elapsed":  time.Since(start),
	}).Debug("exiting GenerateInstructions")

	return final, nil
}
