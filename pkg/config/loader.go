package config

import (
	"context"
	"fmt"
	"os"

	"goldbox-rpg/pkg/format"
	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/retry"

	"gopkg.in/yaml.v3"
)

// formatDescriptor is the on-disk YAML shape for a BattleFormat ruleset,
// decoded and handed to format.New for validation.
type formatDescriptor struct {
	Name          string   `yaml:"name"`
	Generation    int      `yaml:"generation"`
	FormatType    string   `yaml:"format_type"`
	TeamSize      int      `yaml:"team_size"`
	ActivePerSide int      `yaml:"active_per_side"`
	Clauses       []string `yaml:"clauses"`
	Bans          struct {
		Species   []string `yaml:"species"`
		Moves     []string `yaml:"moves"`
		Items     []string `yaml:"items"`
		Abilities []string `yaml:"abilities"`
	} `yaml:"bans"`
}

// LoadBattleFormat reads a ruleset descriptor from a YAML file and returns
// the validated format.BattleFormat it describes. Transient read failures
// (the file briefly unavailable during a concurrent deploy, an NFS hiccup)
// are retried with the package's file-system retry policy before giving up.
func LoadBattleFormat(filename string) (*format.BattleFormat, error) {
	var data []byte
	err := retry.ExecuteFileSystem(context.Background(), func(ctx context.Context) error {
		d, err := os.ReadFile(filename)
		if err != nil {
			return err
		}
		data = d
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("config: reading format descriptor %s: %w", filename, err)
	}

	var desc formatDescriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("config: parsing format descriptor %s: %w", filename, err)
	}

	ft, ok := parseFormatType(desc.FormatType)
	if !ok {
		return nil, fmt.Errorf("config: unknown format_type %q in %s", desc.FormatType, filename)
	}

	clauses := make([]format.Clause, 0, len(desc.Clauses))
	for _, name := range desc.Clauses {
		c, ok := format.ParseClause(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown clause %q in %s", name, filename)
		}
		clauses = append(clauses, c)
	}

	bans := format.BanList{
		Species:   make([]ident.Species, len(desc.Bans.Species)),
		Moves:     make([]ident.MoveID, len(desc.Bans.Moves)),
		Items:     make([]ident.Item, len(desc.Bans.Items)),
		Abilities: make([]ident.Ability, len(desc.Bans.Abilities)),
	}
	for i, s := range desc.Bans.Species {
		bans.Species[i] = ident.NewSpecies(s)
	}
	for i, m := range desc.Bans.Moves {
		bans.Moves[i] = ident.NewMoveID(m)
	}
	for i, it := range desc.Bans.Items {
		bans.Items[i] = ident.NewItem(it)
	}
	for i, a := range desc.Bans.Abilities {
		bans.Abilities[i] = ident.NewAbility(a)
	}

	return format.New(desc.Name, desc.Generation, ft, desc.TeamSize, desc.ActivePerSide, clauses, bans)
}

func parseFormatType(raw string) (format.Type, bool) {
	switch raw {
	case "singles":
		return format.Singles, true
	case "doubles":
		return format.Doubles, true
	case "vgc":
		return format.VGC, true
	case "triples":
		return format.Triples, true
	default:
		return 0, false
	}
}
