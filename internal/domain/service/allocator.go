package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/domain/contract"
	"github.com/diegoclair/chore-board/internal/domain/entity"
)

// MonthlyConfig is the preferred fixed split of the monthly groups.
type MonthlyConfig struct {
	PreferredGroupA []string
	PreferredGroupB []string
}

// Allocator keeps two disjoint groups covering every person, and which of them
// cleans surfaces while the other does the kitchen. Where the state lives is
// up to the injected SettingsRepo: the server shares one copy, the CLI keeps
// one per machine.
type Allocator struct {
	settings contract.SettingsRepo
	persons  []string
	cfg      MonthlyConfig
	rng      *rand.Rand

	// serializes init so concurrent first reads persist one grouping
	mu sync.Mutex
}

// NewAllocator creates an allocator. A nil rng uses a randomly seeded source.
func NewAllocator(settings contract.SettingsRepo, persons []string, cfg MonthlyConfig, rng *rand.Rand) *Allocator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Allocator{
		settings: settings,
		persons:  persons,
		cfg:      cfg,
		rng:      rng,
	}
}

// GetOrInitGroups returns the stored grouping when both groups have members,
// otherwise generates one and stores it.
func (a *Allocator) GetOrInitGroups(ctx context.Context) (entity.MonthlyGroups, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.getOrInit(ctx)
}

func (a *Allocator) getOrInit(ctx context.Context) (entity.MonthlyGroups, error) {
	// fewer than two persons can never fill both groups; nothing is stored
	if len(a.persons) < 2 {
		return a.generate(), nil
	}

	raw, found, err := a.settings.Get(ctx, domain.SettingMonthlyGroups)
	if err != nil {
		return entity.MonthlyGroups{}, fmt.Errorf("failed to get monthly groups: %w", err)
	}

	if found {
		var stored entity.MonthlyGroups
		if err := json.Unmarshal([]byte(raw), &stored); err == nil && stored.Valid() {
			return stored, nil
		}
		log.Printf("Stored monthly groups are unusable, generating new ones")
	}

	groups := a.generate()
	b, err := json.Marshal(groups)
	if err != nil {
		return entity.MonthlyGroups{}, fmt.Errorf("failed to marshal monthly groups: %w", err)
	}
	if err := a.settings.Set(ctx, domain.SettingMonthlyGroups, string(b)); err != nil {
		return entity.MonthlyGroups{}, fmt.Errorf("failed to save monthly groups: %w", err)
	}

	return groups, nil
}

// SwapAssignment flips which group cleans surfaces. Membership is untouched.
func (a *Allocator) SwapAssignment(ctx context.Context) (entity.MonthlyPlan, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	current, err := a.assignment(ctx)
	if err != nil {
		return entity.MonthlyPlan{}, err
	}

	next := domain.SurfacesOnGroupA
	if current == domain.SurfacesOnGroupA {
		next = domain.SurfacesOnGroupB
	}
	if err := a.settings.Set(ctx, domain.SettingMonthlyAssignment, next); err != nil {
		return entity.MonthlyPlan{}, fmt.Errorf("failed to save monthly assignment: %w", err)
	}

	groups, err := a.getOrInit(ctx)
	if err != nil {
		return entity.MonthlyPlan{}, err
	}
	return entity.NewMonthlyPlan(groups, next), nil
}

// ResetGroups drops the stored grouping and generates a new one.
func (a *Allocator) ResetGroups(ctx context.Context) (entity.MonthlyPlan, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.settings.Delete(ctx, domain.SettingMonthlyGroups); err != nil {
		return entity.MonthlyPlan{}, fmt.Errorf("failed to reset monthly groups: %w", err)
	}
	return a.plan(ctx)
}

// Plan resolves the current groups against the current assignment.
func (a *Allocator) Plan(ctx context.Context) (entity.MonthlyPlan, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.plan(ctx)
}

func (a *Allocator) plan(ctx context.Context) (entity.MonthlyPlan, error) {
	groups, err := a.getOrInit(ctx)
	if err != nil {
		return entity.MonthlyPlan{}, err
	}
	assignment, err := a.assignment(ctx)
	if err != nil {
		return entity.MonthlyPlan{}, err
	}
	return entity.NewMonthlyPlan(groups, assignment), nil
}

func (a *Allocator) assignment(ctx context.Context) (string, error) {
	value, found, err := a.settings.Get(ctx, domain.SettingMonthlyAssignment)
	if err != nil {
		return "", fmt.Errorf("failed to get monthly assignment: %w", err)
	}
	if found && value == domain.SurfacesOnGroupA {
		return domain.SurfacesOnGroupA, nil
	}
	return domain.DefaultMonthlyAssignment, nil
}

func (a *Allocator) generate() entity.MonthlyGroups {
	if groups, ok := a.preferred(); ok {
		return groups
	}

	shuffled := slices.Clone(a.persons)
	a.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	mid := (len(shuffled) + 1) / 2
	return entity.MonthlyGroups{
		GroupA: shuffled[:mid:mid],
		GroupB: shuffled[mid:],
	}
}

// preferred applies the fixed split when there are at least four persons and
// every preferred member is one of them. Persons outside the split join the
// smaller group, groupA on ties, so the groups still cover everyone.
func (a *Allocator) preferred() (entity.MonthlyGroups, bool) {
	prefA, prefB := a.cfg.PreferredGroupA, a.cfg.PreferredGroupB
	if len(a.persons) < 4 || len(prefA) == 0 || len(prefB) == 0 {
		return entity.MonthlyGroups{}, false
	}

	for _, p := range prefA {
		if !slices.Contains(a.persons, p) || slices.Contains(prefB, p) {
			return entity.MonthlyGroups{}, false
		}
	}
	for _, p := range prefB {
		if !slices.Contains(a.persons, p) {
			return entity.MonthlyGroups{}, false
		}
	}

	groups := entity.MonthlyGroups{
		GroupA: slices.Clone(prefA),
		GroupB: slices.Clone(prefB),
	}
	for _, p := range a.persons {
		if slices.Contains(groups.GroupA, p) || slices.Contains(groups.GroupB, p) {
			continue
		}
		if len(groups.GroupA) <= len(groups.GroupB) {
			groups.GroupA = append(groups.GroupA, p)
		} else {
			groups.GroupB = append(groups.GroupB, p)
		}
	}
	return groups, true
}
