package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldbox-rpg/pkg/ident"
)

func writeCatalogue(t *testing.T, dir string) {
	t.Helper()

	cf := catalogueFile{
		Moves: []MoveRecord{
			{
				ID: ident.NewMoveID("tackle"), Name: "Tackle", Num: 33,
				Type: ident.TypeNormal, Category: ident.CategoryPhysical,
				BasePower: 40, Accuracy: 100, PP: 35, Target: ident.TargetNormal,
			},
			{
				ID: ident.NewMoveID("swift"), Name: "Swift", Num: 129,
				Type: ident.TypeNormal, Category: ident.CategorySpecial,
				BasePower: 60, Accuracy: 0, PP: 20, Target: ident.TargetAllAdjacentFoes,
			},
		},
		Pokemon: []PokemonRecord{
			{
				Species: ident.NewSpecies("pikachu"), Name: "Pikachu", Num: 25,
				Types:     []ident.Type{ident.TypeElectric},
				BaseStats: battleStats{HP: 35, Atk: 55, Def: 40, SpA: 50, SpD: 50, Spe: 90},
				Abilities: []ident.Ability{ident.NewAbility("Static")},
			},
		},
		Items: []ItemRecord{
			{Item: ident.NewItem("leftovers"), Name: "Leftovers", Num: 234},
		},
		Abilities: []AbilityRecord{
			{Ability: ident.NewAbility("static"), Name: "Static", Num: 9},
		},
	}

	b, err := json.Marshal(cf)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalogue.json"), b, 0o644))
}

func TestLoad_BaseCatalogueOnly(t *testing.T) {
	dir := t.TempDir()
	writeCatalogue(t, dir)

	repo, err := Load(context.Background(), dir, 9)
	require.NoError(t, err)
	require.NotNil(t, repo)

	rec, err := repo.Move(9, ident.NewMoveID("tackle"))
	require.NoError(t, err)
	assert.Equal(t, 40, rec.BasePower)
	assert.Equal(t, ident.CategoryPhysical, rec.Category)
}

func TestLoad_RejectsDuplicateEntries(t *testing.T) {
	dir := t.TempDir()
	cf := catalogueFile{
		Moves: []MoveRecord{
			{ID: ident.NewMoveID("tackle"), Name: "Tackle"},
			{ID: ident.NewMoveID("tackle"), Name: "Tackle Again"},
		},
	}
	b, err := json.Marshal(cf)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalogue.json"), b, 0o644))

	_, err = Load(context.Background(), dir, 9)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestMove_UnknownIDReturnsDataNotFound(t *testing.T) {
	dir := t.TempDir()
	writeCatalogue(t, dir)
	repo, err := Load(context.Background(), dir, 9)
	require.NoError(t, err)

	_, err = repo.Move(9, ident.NewMoveID("nonexistentmove"))
	assert.ErrorIs(t, err, ErrDataNotFound)
}

func TestMove_UnsupportedGeneration(t *testing.T) {
	dir := t.TempDir()
	writeCatalogue(t, dir)
	repo, err := Load(context.Background(), dir, 9)
	require.NoError(t, err)

	_, err = repo.Move(0, ident.NewMoveID("tackle"))
	assert.ErrorIs(t, err, ErrUnsupportedGeneration)

	_, err = repo.Move(10, ident.NewMoveID("tackle"))
	assert.ErrorIs(t, err, ErrUnsupportedGeneration)
}

func TestMove_OverlayAppliesGenerationDelta(t *testing.T) {
	dir := t.TempDir()
	writeCatalogue(t, dir)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "changes"), 0o755))
	overlay := generationOverlay{
		Moves: map[string]json.RawMessage{
			// Swift was 100% accurate (never-miss, encoded as 0) across all
			// generations historically; this overlay instead exercises the
			// merge path by lowering its base power in an earlier generation.
			"swift": json.RawMessage(`{"basePower":50}`),
		},
	}
	b, err := json.Marshal(overlay)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "changes", "gen1.json"), b, 0o644))

	repo, err := Load(context.Background(), dir, 9)
	require.NoError(t, err)

	gen9, err := repo.Move(9, ident.NewMoveID("swift"))
	require.NoError(t, err)
	assert.Equal(t, 60, gen9.BasePower)

	gen1, err := repo.Move(1, ident.NewMoveID("swift"))
	require.NoError(t, err)
	assert.Equal(t, 50, gen1.BasePower)
	assert.Equal(t, "Swift", gen1.Name, "unpatched fields survive the merge")
}

func TestMove_CachesResolvedRecord(t *testing.T) {
	dir := t.TempDir()
	writeCatalogue(t, dir)
	repo, err := Load(context.Background(), dir, 9)
	require.NoError(t, err)

	first, err := repo.Move(9, ident.NewMoveID("tackle"))
	require.NoError(t, err)
	second, err := repo.Move(9, ident.NewMoveID("tackle"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPokemon_ToBaseStats(t *testing.T) {
	dir := t.TempDir()
	writeCatalogue(t, dir)
	repo, err := Load(context.Background(), dir, 9)
	require.NoError(t, err)

	rec, err := repo.Pokemon(9, ident.NewSpecies("pikachu"))
	require.NoError(t, err)
	stats := rec.ToBaseStats()
	assert.Equal(t, 35, stats.HP)
	assert.Equal(t, 90, stats.Spe)
}

func TestLoad_UnsupportedBaseGeneration(t *testing.T) {
	dir := t.TempDir()
	writeCatalogue(t, dir)

	_, err := Load(context.Background(), dir, 12)
	assert.ErrorIs(t, err, ErrUnsupportedGeneration)
}

func TestSetLoadRateLimit_ThrottlesLoad(t *testing.T) {
	t.Cleanup(func() { SetLoadRateLimit(0, 0) })

	dir := t.TempDir()
	writeCatalogue(t, dir)

	SetLoadRateLimit(1, 1)
	_, err := Load(context.Background(), dir, 9)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	_, err = Load(ctx, dir, 9)
	assert.Error(t, err, "second load within the same burst window should block until the context deadline")
}

func TestSetLoadRateLimit_DisabledIsNoOp(t *testing.T) {
	t.Cleanup(func() { SetLoadRateLimit(0, 0) })

	dir := t.TempDir()
	writeCatalogue(t, dir)

	SetLoadRateLimit(1, 1)
	SetLoadRateLimit(0, 0)

	for i := 0; i < 3; i++ {
		_, err := Load(context.Background(), dir, 9)
		require.NoError(t, err)
	}
}
