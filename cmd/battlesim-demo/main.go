package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"goldbox-rpg/pkg/battle"
	"goldbox-rpg/pkg/config"
	"goldbox-rpg/pkg/engine"
	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/instructions"
	"goldbox-rpg/pkg/metrics"
	"goldbox-rpg/pkg/repository"
	"goldbox-rpg/pkg/typechart"
)

// Config holds the command-line configuration for the demo.
type Config struct {
	DataDir     string
	MaxTurns    int
	MetricsPort int
}

// parseFlags parses command-line flags and returns the configuration.
// It is kept separate from run so tests can call it directly.
func parseFlags() *Config {
	dataDir := flag.String("data-dir", "", "directory containing catalogue.json (default: a generated temp fixture)")
	maxTurns := flag.Int("max-turns", 10, "maximum number of turns to simulate")
	metricsPort := flag.Int("metrics-port", 0, "if nonzero, serve /metrics on this port")
	flag.Parse()
	return &Config{DataDir: *dataDir, MaxTurns: *maxTurns, MetricsPort: *metricsPort}
}

// bootstrapCatalogue writes a minimal move catalogue to a temp directory and
// returns its path, mirroring the server's zero-configuration bootstrap path
// for callers who haven't pointed --data-dir at a real data set.
func bootstrapCatalogue() (string, error) {
	dir, err := os.MkdirTemp("", "battlesim-demo-*")
	if err != nil {
		return "", fmt.Errorf("creating temp data dir: %w", err)
	}

	catalogue := struct {
		Moves []repository.MoveRecord `json:"moves"`
	}{
		Moves: []repository.MoveRecord{
			{
				ID: ident.NewMoveID("thunderbolt"), Name: "Thunderbolt", Num: 85,
				Type: ident.TypeElectric, Category: ident.CategorySpecial,
				BasePower: 90, Accuracy: 100, PP: 15, Target: ident.TargetNormal,
			},
			{
				ID: ident.NewMoveID("flamethrower"), Name: "Flamethrower", Num: 53,
				Type: ident.TypeFire, Category: ident.CategorySpecial,
				BasePower: 90, Accuracy: 100, PP: 15, Target: ident.TargetNormal,
			},
		},
	}
	b, err := json.Marshal(catalogue)
	if err != nil {
		return "", fmt.Errorf("marshalling bootstrap catalogue: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "catalogue.json"), b, 0o644); err != nil {
		return "", fmt.Errorf("writing bootstrap catalogue: %w", err)
	}
	return dir, nil
}

// buildDemoState constructs a two-Pokémon singles battle: a Pikachu facing a
// Charizard, each knowing the one move bootstrapCatalogue (or the caller's
// own data dir) provides for it.
func buildDemoState() (*battle.State, error) {
	f, err := format.New("gen9customgame", 9, format.Singles, 6, 1, nil, format.BanList{})
	if err != nil {
		return nil, fmt.Errorf("constructing battle format: %w", err)
	}

	pikachu := &battle.Pokemon{
		Species: ident.NewSpecies("pikachu"), Level: 100, HP: 120, MaxHP: 120,
		Base:  battle.BaseStats{HP: 120, Atk: 55, Def: 40, SpA: 50, SpD: 50, Spe: 90},
		Stats: battle.BaseStats{HP: 120, Atk: 55, Def: 40, SpA: 50, SpD: 50, Spe: 90},
		Types: []ident.Type{ident.TypeElectric},
		Moves: []battle.MoveSlot{{ID: ident.NewMoveID("thunderbolt"), PP: 15, MaxPP: 15}},
	}
	charizard := &battle.Pokemon{
		Species: ident.NewSpecies("charizard"), Level: 100, HP: 156, MaxHP: 156,
		Base:  battle.BaseStats{HP: 156, Atk: 84, Def: 78, SpA: 109, SpD: 85, Spe: 100},
		Stats: battle.BaseStats{HP: 156, Atk: 84, Def: 78, SpA: 109, SpD: 85, Spe: 100},
		Types: []ident.Type{ident.TypeFire, ident.TypeFlying},
		Moves: []battle.MoveSlot{{ID: ident.NewMoveID("flamethrower"), PP: 15, MaxPP: 15}},
	}

	s := battle.New(f)
	s.Sides[0].Roster = []*battle.Pokemon{pikachu}
	s.Sides[0].Active[0] = 0
	s.Sides[1].Roster = []*battle.Pokemon{charizard}
	s.Sides[1].Active[0] = 0
	return s, nil
}

// likeliestBranch picks the branch with the highest weight, breaking ties by
// encounter order. The demo applies only this one branch per turn so a
// single deterministic battle line prints; real callers would explore every
// branch the engine returns.
func likeliestBranch(branches []instructions.BattleInstructions) instructions.BattleInstructions {
	best := branches[0]
	for _, b := range branches[1:] {
		if b.Percentage > best.Percentage {
			best = b
		}
	}
	return best
}

// run executes the demo battle with the provided configuration and returns
// any error. If cfg is nil, it parses command-line flags to get the
// configuration.
func run(cfg *Config) error {
	if cfg == nil {
		cfg = parseFlags()
	}

	ctx := context.Background()
	collector := metrics.New()

	appCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appCfg.ApplyRepositoryRateLimit()

	metricsPort := cfg.MetricsPort
	if metricsPort == 0 && appCfg.MetricsEnabled {
		metricsPort = appCfg.MetricsPort
	}
	if metricsPort != 0 {
		go func() {
			addr := fmt.Sprintf(":%d", metricsPort)
			logrus.WithField("addr", addr).Info("serving /metrics")
			if err := http.ListenAndServe(addr, collector.Handler()); err != nil {
				logrus.WithError(err).Warn("metrics server stopped")
			}
		}()
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = appCfg.DataDir
	}
	if _, statErr := os.Stat(filepath.Join(dataDir, "catalogue.json")); statErr != nil {
		logrus.WithField("dataDir", dataDir).Info("no catalogue found, bootstrapping a minimal demo catalogue")
		d, err := bootstrapCatalogue()
		if err != nil {
			return err
		}
		defer os.RemoveAll(d)
		dataDir = d
	}

	repo, err := repository.Load(ctx, dataDir, 9)
	if err != nil {
		collector.RecordRepositoryLoad("failure")
		return fmt.Errorf("loading repository: %w", err)
	}
	collector.RecordRepositoryLoad("success")

	s, err := buildDemoState()
	if err != nil {
		return err
	}

	env := engine.Env{Repo: repo, Chart: typechart.New(9), Generation: 9, Metrics: collector}
	choiceA := engine.Choice{Kind: engine.ChoiceMove, MoveIndex: 0}
	choiceB := engine.Choice{Kind: engine.ChoiceMove, MoveIndex: 0}

	fmt.Println("=== Battle Simulator Demo: Pikachu vs Charizard ===")
	for turn := 1; turn <= cfg.MaxTurns; turn++ {
		attacker := s.PokemonAt(format.BattlePosition{Side: 0, Slot: 0})
		defender := s.PokemonAt(format.BattlePosition{Side: 1, Slot: 0})
		if attacker == nil || defender == nil || attacker.Fainted() || defender.Fainted() {
			break
		}

		branches, err := engine.GenerateInstructions(s, choiceA, choiceB, env)
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		chosen := likeliestBranch(branches)
		instructions.ApplyBattleInstructions(s, chosen)

		fmt.Printf("Turn %d (%.1f%% branch): %s\n", turn, chosen.Percentage, chosen.Debug())
		fmt.Printf("  Pikachu HP:   %d/%d\n", attacker.HP, attacker.MaxHP)
		fmt.Printf("  Charizard HP: %d/%d\n", defender.HP, defender.MaxHP)

		if attacker.Fainted() || defender.Fainted() {
			break
		}
	}

	fmt.Println("\n=== Demo complete ===")
	return nil
}

// main is the entry point for the battle simulator demo.
func main() {
	if err := run(nil); err != nil {
		logrus.WithError(err).Fatal("battlesim-demo failed")
	}
}
