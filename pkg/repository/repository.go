package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"goldbox-rpg/pkg/ident"
	"goldbox-rpg/pkg/retry"
)

// loadLimiter throttles concurrent cold-start Load calls when a worker pool
// spins up many Repositories at once (spec.md §5 concurrency model); nil
// (the default) means unthrottled. SetLoadRateLimit installs one.
var loadLimiter *rate.Limiter

// SetLoadRateLimit installs a process-wide rate limit on Load's filesystem
// reads, matching pkg/config's RateLimit* settings. Passing requestsPerSecond
// <= 0 disables throttling again.
func SetLoadRateLimit(requestsPerSecond float64, burst int) {
	if requestsPerSecond <= 0 {
		loadLimiter = nil
		return
	}
	loadLimiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

// Repository is the loaded, generation-indexed data catalogue. It is built
// once at startup and is safe for concurrent read access from many battle
// goroutines afterward (spec.md §5): every exported method only reads the
// base catalogues and overlays, plus a mutex-guarded memoization cache for
// resolved per-generation records.
type Repository struct {
	baseGeneration int

	baseMoves     map[ident.MoveID]MoveRecord
	basePokemon   map[ident.Species]PokemonRecord
	baseItems     map[ident.Item]ItemRecord
	baseAbilities map[ident.Ability]AbilityRecord

	// overlays[g] is the delta that distinguishes generation g from g+1;
	// resolving a record for generation gen < baseGeneration folds overlays
	// from baseGeneration-1 down to gen, in order.
	overlays map[int]generationOverlay

	cacheMu       sync.RWMutex
	moveCache     map[genIDKey[ident.MoveID]]MoveRecord
	pokemonCache  map[genIDKey[ident.Species]]PokemonRecord
	itemCache     map[genIDKey[ident.Item]]ItemRecord
	abilityCache  map[genIDKey[ident.Ability]]AbilityRecord
}

type genIDKey[T comparable] struct {
	Gen int
	ID  T
}

// catalogueFile is the on-disk shape of the base catalogue (gen9.json):
// one JSON object with the four record collections.
type catalogueFile struct {
	Moves     []MoveRecord     `json:"moves"`
	Pokemon   []PokemonRecord  `json:"pokemon"`
	Items     []ItemRecord     `json:"items"`
	Abilities []AbilityRecord  `json:"abilities"`
}

// Load reads the base catalogue and every available per-generation overlay
// from dataDir (expected layout: dataDir/catalogue.json plus
// dataDir/changes/gen{N}.json for N in MinGeneration..baseGeneration-1) and
// returns a ready-to-use Repository. File reads go through
// retry.ExecuteFileSystem so a transient read failure during startup (NFS
// hiccup, container volume not yet mounted) doesn't hard-fail initialization
// outright, matching the teacher's use of pkg/retry for other I/O paths.
func Load(ctx context.Context, dataDir string, baseGeneration int) (*Repository, error) {
	if !ValidGeneration(baseGeneration) {
		return nil, fmt.Errorf("%w: base generation %d", ErrUnsupportedGeneration, baseGeneration)
	}

	log := logrus.WithFields(logrus.Fields{"component": "repository", "dataDir": dataDir})

	if loadLimiter != nil {
		if err := loadLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("repository: rate limit wait: %w", err)
		}
	}

	var raw []byte
	err := retry.ExecuteFileSystem(ctx, func(context.Context) error {
		b, readErr := os.ReadFile(filepath.Join(dataDir, "catalogue.json"))
		if readErr != nil {
			return readErr
		}
		raw = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repository: loading base catalogue: %w", err)
	}

	var cf catalogueFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("%w: base catalogue: %v", ErrInvalidData, err)
	}

	repo := &Repository{
		baseGeneration: baseGeneration,
		baseMoves:      make(map[ident.MoveID]MoveRecord, len(cf.Moves)),
		basePokemon:    make(map[ident.Species]PokemonRecord, len(cf.Pokemon)),
		baseItems:      make(map[ident.Item]ItemRecord, len(cf.Items)),
		baseAbilities:  make(map[ident.Ability]AbilityRecord, len(cf.Abilities)),
		overlays:       make(map[int]generationOverlay),
		moveCache:      make(map[genIDKey[ident.MoveID]]MoveRecord),
		pokemonCache:   make(map[genIDKey[ident.Species]]PokemonRecord),
		itemCache:      make(map[genIDKey[ident.Item]]ItemRecord),
		abilityCache:   make(map[genIDKey[ident.Ability]]AbilityRecord),
	}

	for _, m := range cf.Moves {
		m.ID = ident.NewMoveID(string(m.ID))
		if _, dup := repo.baseMoves[m.ID]; dup {
			return nil, fmt.Errorf("%w: move %q", ErrDuplicateEntry, m.ID)
		}
		repo.baseMoves[m.ID] = m
	}
	for _, p := range cf.Pokemon {
		p.Species = ident.NewSpecies(string(p.Species))
		if _, dup := repo.basePokemon[p.Species]; dup {
			return nil, fmt.Errorf("%w: species %q", ErrDuplicateEntry, p.Species)
		}
		repo.basePokemon[p.Species] = p
	}
	for _, it := range cf.Items {
		it.Item = ident.NewItem(string(it.Item))
		if _, dup := repo.baseItems[it.Item]; dup {
			return nil, fmt.Errorf("%w: item %q", ErrDuplicateEntry, it.Item)
		}
		repo.baseItems[it.Item] = it
	}
	for _, a := range cf.Abilities {
		a.Ability = ident.NewAbility(string(a.Ability))
		if _, dup := repo.baseAbilities[a.Ability]; dup {
			return nil, fmt.Errorf("%w: ability %q", ErrDuplicateEntry, a.Ability)
		}
		repo.baseAbilities[a.Ability] = a
	}

	for g := MinGeneration; g < baseGeneration; g++ {
		overlay, ok, loadErr := loadOverlay(ctx, dataDir, g)
		if loadErr != nil {
			return nil, fmt.Errorf("repository: loading generation %d overlay: %w", g, loadErr)
		}
		if ok {
			repo.overlays[g] = overlay
		}
	}

	log.WithFields(logrus.Fields{
		"moves": len(repo.baseMoves), "pokemon": len(repo.basePokemon),
		"items": len(repo.baseItems), "abilities": len(repo.baseAbilities),
		"overlays": len(repo.overlays),
	}).Info("catalogue loaded")

	return repo, nil
}

// loadOverlay reads dataDir/changes/gen{g}.json if present. A missing file
// is not an error: most generations carry no delta for a given catalogue.
func loadOverlay(ctx context.Context, dataDir string, g int) (generationOverlay, bool, error) {
	path := filepath.Join(dataDir, "changes", fmt.Sprintf("gen%d.json", g))

	var raw []byte
	err := retry.ExecuteFileSystem(ctx, func(context.Context) error {
		b, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		raw = b
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return generationOverlay{}, false, nil
		}
		return generationOverlay{}, false, err
	}

	var overlay generationOverlay
	if err := json.Unmarshal(raw, &overlay); err != nil {
		return generationOverlay{}, false, fmt.Errorf("%w: gen%d.json: %v", ErrInvalidData, g, err)
	}
	return overlay, true, nil
}

// Move resolves a move's record as it behaved in generation gen, folding
// every overlay from the base generation down to gen.
func (r *Repository) Move(gen int, id ident.MoveID) (MoveRecord, error) {
	if !ValidGeneration(gen) {
		return MoveRecord{}, fmt.Errorf("%w: %d", ErrUnsupportedGeneration, gen)
	}
	key := genIDKey[ident.MoveID]{Gen: gen, ID: id}

	r.cacheMu.RLock()
	if rec, ok := r.moveCache[key]; ok {
		r.cacheMu.RUnlock()
		return rec, nil
	}
	r.cacheMu.RUnlock()

	base, ok := r.baseMoves[id]
	if !ok {
		return MoveRecord{}, fmt.Errorf("%w: move %q", ErrDataNotFound, id)
	}

	rec := base
	for g := r.baseGeneration - 1; g >= gen; g-- {
		overlay, present := r.overlays[g]
		if !present {
			continue
		}
		patch, changed := overlay.Moves[string(id)]
		if !changed {
			continue
		}
		merged, err := mergePatch(rec, patch)
		if err != nil {
			return MoveRecord{}, fmt.Errorf("%w: move %q gen%d: %v", ErrInvalidData, id, g, err)
		}
		rec = merged
	}

	r.cacheMu.Lock()
	r.moveCache[key] = rec
	r.cacheMu.Unlock()
	return rec, nil
}

// Pokemon resolves a species' record as it behaved in generation gen.
func (r *Repository) Pokemon(gen int, species ident.Species) (PokemonRecord, error) {
	if !ValidGeneration(gen) {
		return PokemonRecord{}, fmt.Errorf("%w: %d", ErrUnsupportedGeneration, gen)
	}
	key := genIDKey[ident.Species]{Gen: gen, ID: species}

	r.cacheMu.RLock()
	if rec, ok := r.pokemonCache[key]; ok {
		r.cacheMu.RUnlock()
		return rec, nil
	}
	r.cacheMu.RUnlock()

	base, ok := r.basePokemon[species]
	if !ok {
		return PokemonRecord{}, fmt.Errorf("%w: species %q", ErrDataNotFound, species)
	}

	rec := base
	for g := r.baseGeneration - 1; g >= gen; g-- {
		overlay, present := r.overlays[g]
		if !present {
			continue
		}
		patch, changed := overlay.Pokemon[string(species)]
		if !changed {
			continue
		}
		merged, err := mergePatch(rec, patch)
		if err != nil {
			return PokemonRecord{}, fmt.Errorf("%w: species %q gen%d: %v", ErrInvalidData, species, g, err)
		}
		rec = merged
	}

	r.cacheMu.Lock()
	r.pokemonCache[key] = rec
	r.cacheMu.Unlock()
	return rec, nil
}

// Item resolves a held item's record. Items rarely change across
// generations, but the lookup still folds overlays for the handful that do
// (e.g. Gen 2-only berries with different names).
func (r *Repository) Item(gen int, item ident.Item) (ItemRecord, error) {
	if !ValidGeneration(gen) {
		return ItemRecord{}, fmt.Errorf("%w: %d", ErrUnsupportedGeneration, gen)
	}
	key := genIDKey[ident.Item]{Gen: gen, ID: item}

	r.cacheMu.RLock()
	if rec, ok := r.itemCache[key]; ok {
		r.cacheMu.RUnlock()
		return rec, nil
	}
	r.cacheMu.RUnlock()

	base, ok := r.baseItems[item]
	if !ok {
		return ItemRecord{}, fmt.Errorf("%w: item %q", ErrDataNotFound, item)
	}

	rec := base
	for g := r.baseGeneration - 1; g >= gen; g-- {
		overlay, present := r.overlays[g]
		if !present {
			continue
		}
		patch, changed := overlay.Items[string(item)]
		if !changed {
			continue
		}
		merged, err := mergePatch(rec, patch)
		if err != nil {
			return ItemRecord{}, fmt.Errorf("%w: item %q gen%d: %v", ErrInvalidData, item, g, err)
		}
		rec = merged
	}

	r.cacheMu.Lock()
	r.itemCache[key] = rec
	r.cacheMu.Unlock()
	return rec, nil
}

// Ability resolves an ability's record.
func (r *Repository) Ability(gen int, ab ident.Ability) (AbilityRecord, error) {
	if !ValidGeneration(gen) {
		return AbilityRecord{}, fmt.Errorf("%w: %d", ErrUnsupportedGeneration, gen)
	}
	key := genIDKey[ident.Ability]{Gen: gen, ID: ab}

	r.cacheMu.RLock()
	if rec, ok := r.abilityCache[key]; ok {
		r.cacheMu.RUnlock()
		return rec, nil
	}
	r.cacheMu.RUnlock()

	base, ok := r.baseAbilities[ab]
	if !ok {
		return AbilityRecord{}, fmt.Errorf("%w: ability %q", ErrDataNotFound, ab)
	}

	rec := base
	for g := r.baseGeneration - 1; g >= gen; g-- {
		overlay, present := r.overlays[g]
		if !present {
			continue
		}
		patch, changed := overlay.Abilities[string(ab)]
		if !changed {
			continue
		}
		merged, err := mergePatch(rec, patch)
		if err != nil {
			return AbilityRecord{}, fmt.Errorf("%w: ability %q gen%d: %v", ErrInvalidData, ab, g, err)
		}
		rec = merged
	}

	r.cacheMu.Lock()
	r.abilityCache[key] = rec
	r.cacheMu.Unlock()
	return rec, nil
}

var (
	singletonOnce sync.Once
	singleton     *Repository
	singletonErr  error
)

// LoadSingleton loads the process-wide Repository exactly once, caching the
// result (and any error) for subsequent callers. Most of the engine treats
// the repository as ambient read-only configuration, so this mirrors the
// teacher's sync.Once-guarded singleton convention for shared immutable
// state rather than threading a *Repository through every call.
func LoadSingleton(ctx context.Context, dataDir string, baseGeneration int) (*Repository, error) {
	singletonOnce.Do(func() {
		singleton, singletonErr = Load(ctx, dataDir, baseGeneration)
	})
	return singleton, singletonErr
}
