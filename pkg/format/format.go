package format

import (
	"fmt"
	"strconv"
	"strings"

	"goldbox-rpg/pkg/ident"
)

// Type is the battle format kind, which determines active-Pokémon count.
type Type uint8

const (
	Singles Type = iota
	Doubles
	VGC
	Triples
)

func (t Type) String() string {
	switch t {
	case Singles:
		return "singles"
	case Doubles:
		return "doubles"
	case VGC:
		return "vgc"
	case Triples:
		return "triples"
	default:
		return "unknown"
	}
}

// ActivePerSide returns how many Pokémon are simultaneously active per side
// under this format type.
func (t Type) ActivePerSide() int {
	switch t {
	case Singles:
		return 1
	case Doubles, VGC:
		return 2
	case Triples:
		return 3
	default:
		return 1
	}
}

// SupportsSpreadMoves reports whether multi-target moves take reduced
// damage in this format (spec.md §4.2 step 5).
func (t Type) SupportsSpreadMoves() bool { return t.ActivePerSide() > 1 }

// AllowsAllyDamage reports whether a spread move can strike the user's own
// ally.
func (t Type) AllowsAllyDamage() bool { return t.ActivePerSide() > 1 }

// Clause is a rule restricting legal teams or in-battle strategies.
type Clause uint8

const (
	SleepClause Clause = iota
	FreezeClause
	SpeciesClause
	ItemClause
	EvasionClause
	OHKOClause
	MoodyClause
	SwaggerClause
	BatonPassClause
	EndlessBattleClause
)

func (c Clause) String() string {
	names := [...]string{
		"sleep", "freeze", "species", "item", "evasion", "ohko", "moody",
		"swagger", "batonpass", "endlessbattle",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// ParseClause interns a clause name, returning false if unrecognized.
func ParseClause(raw string) (Clause, bool) {
	for c := SleepClause; c <= EndlessBattleClause; c++ {
		if c.String() == ident.Normalize(raw) {
			return c, true
		}
	}
	return 0, false
}

// BanList names species, moves, items and abilities forbidden under a
// format's ruleset.
type BanList struct {
	Species   []ident.Species
	Moves     []ident.MoveID
	Items     []ident.Item
	Abilities []ident.Ability
}

func (b BanList) hasSpecies(s ident.Species) bool {
	for _, x := range b.Species {
		if x == s {
			return true
		}
	}
	return false
}

// BattleFormat is the immutable descriptor of a ruleset: generation, active
// slot count, team size, clauses and bans.
type BattleFormat struct {
	Name           string
	Generation     int
	FormatType     Type
	TeamSize       int
	ActivePerSide  int
	Clauses        []Clause
	Bans           BanList
}

// New constructs a BattleFormat, defaulting ActivePerSide from FormatType
// when not explicitly overridden (0 means "use the type's default").
func New(name string, generation int, ft Type, teamSize int, activePerSide int, clauses []Clause, bans BanList) (*BattleFormat, error) {
	if activePerSide == 0 {
		activePerSide = ft.ActivePerSide()
	}
	f := &BattleFormat{
		Name: name, Generation: generation, FormatType: ft,
		TeamSize: teamSize, ActivePerSide: activePerSide,
		Clauses: clauses, Bans: bans,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate enforces spec.md §7.2's format errors: team_size < active slots,
// active_per_side outside 1-3, or a generation outside 1-9.
func (f *BattleFormat) Validate() error {
	if f.TeamSize < f.ActivePerSide {
		return fmt.Errorf("%w: team size %d is smaller than active-per-side %d", ErrInvalidFormat, f.TeamSize, f.ActivePerSide)
	}
	if f.ActivePerSide > 3 || f.ActivePerSide < 1 {
		return fmt.Errorf("%w: active-per-side %d out of range 1-3", ErrInvalidFormat, f.ActivePerSide)
	}
	if f.Generation < 1 || f.Generation > 9 {
		return fmt.Errorf("%w: generation %d out of range 1-9", ErrInvalidFormat, f.Generation)
	}
	return nil
}

// HasClause reports whether a clause is active for this format.
func (f *BattleFormat) HasClause(c Clause) bool {
	for _, x := range f.Clauses {
		if x == c {
			return true
		}
	}
	return false
}

// ValidateTeam checks a roster of species against SpeciesClause and the
// format's species banlist, returning the first violation found.
func (f *BattleFormat) ValidateTeam(roster []ident.Species) error {
	if len(roster) > f.TeamSize {
		return fmt.Errorf("%w: roster of %d exceeds team size %d", ErrInvalidFormat, len(roster), f.TeamSize)
	}
	seen := make(map[ident.Species]bool, len(roster))
	for _, s := range roster {
		if f.Bans.hasSpecies(s) {
			return fmt.Errorf("%w: species %q is banned", ErrInvalidFormat, s)
		}
		if f.HasClause(SpeciesClause) {
			if seen[s] {
				return fmt.Errorf("%w: species clause violated by duplicate %q", ErrInvalidFormat, s)
			}
			seen[s] = true
		}
	}
	return nil
}

// Serialize renders the format in the compact pipe-and-tilde delimited text
// form required by spec.md §6: "name | generation | type | team_size |
// active_per_side | clauses | banlist", clauses and banlist entries
// tilde-separated within their field.
func (f *BattleFormat) Serialize() string {
	clauseParts := make([]string, len(f.Clauses))
	for i, c := range f.Clauses {
		clauseParts[i] = c.String()
	}
	banParts := []string{
		joinTag(f.Bans.Species),
		joinTag(f.Bans.Moves),
		joinTag(f.Bans.Items),
		joinTag(f.Bans.Abilities),
	}
	fields := []string{
		f.Name,
		strconv.Itoa(f.Generation),
		f.FormatType.String(),
		strconv.Itoa(f.TeamSize),
		strconv.Itoa(f.ActivePerSide),
		strings.Join(clauseParts, "~"),
		strings.Join(banParts, "~"),
	}
	return strings.Join(fields, "|")
}

func joinTag[T ~string](tags []T) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// Deserialize parses the compact form produced by Serialize. It is the
// inverse required by spec.md §8's round-trip law:
// BattleFormat::deserialize(fmt.serialize()) == fmt.
func Deserialize(s string) (*BattleFormat, error) {
	fields := strings.Split(s, "|")
	if len(fields) != 7 {
		return nil, fmt.Errorf("%w: expected 7 fields, got %d", ErrInvalidFormat, len(fields))
	}
	generation, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad generation %q: %v", ErrInvalidFormat, fields[1], err)
	}
	var ft Type
	switch fields[2] {
	case "singles":
		ft = Singles
	case "doubles":
		ft = Doubles
	case "vgc":
		ft = VGC
	case "triples":
		ft = Triples
	default:
		return nil, fmt.Errorf("%w: unknown format type %q", ErrInvalidFormat, fields[2])
	}
	teamSize, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: bad team size %q: %v", ErrInvalidFormat, fields[3], err)
	}
	activePerSide, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: bad active-per-side %q: %v", ErrInvalidFormat, fields[4], err)
	}
	var clauses []Clause
	if fields[5] != "" {
		for _, c := range strings.Split(fields[5], "~") {
			clause, ok := ParseClause(c)
			if !ok {
				return nil, fmt.Errorf("%w: unknown clause %q", ErrInvalidFormat, c)
			}
			clauses = append(clauses, clause)
		}
	}
	banFields := strings.Split(fields[6], "~")
	if len(banFields) != 4 {
		return nil, fmt.Errorf("%w: malformed banlist %q", ErrInvalidFormat, fields[6])
	}
	bans := BanList{
		Species:   splitTag[ident.Species](banFields[0]),
		Moves:     splitTag[ident.MoveID](banFields[1]),
		Items:     splitTag[ident.Item](banFields[2]),
		Abilities: splitTag[ident.Ability](banFields[3]),
	}
	return New(fields[0], generation, ft, teamSize, activePerSide, clauses, bans)
}

func splitTag[T ~string](s string) []T {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]T, len(parts))
	for i, p := range parts {
		out[i] = T(p)
	}
	return out
}
