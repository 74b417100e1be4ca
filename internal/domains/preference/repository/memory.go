package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"tzform/internal/domains/preference/model"
	"tzform/shared/constant"
	gDto "tzform/shared/dto"
	gModel "tzform/shared/model"
)

type memoryRepository struct {
	mu    sync.RWMutex
	items []model.Preference
}

// NewMemory returns a process-local store seeded with one sample record.
func NewMemory(seed ...model.Preference) Preference {
	if len(seed) == 0 {
		seed = []model.Preference{SeedPreference()}
	}

	return &memoryRepository{items: slices.Clone(seed)}
}

func SeedPreference() model.Preference {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	pref := model.Preference{
		ID:          "1",
		Name:        "John Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "1234567890",
		DateTime:    time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		Metadata:    gModel.NewMetadata(created),
	}

	return pref
}

func (r *memoryRepository) Insert(_ context.Context, pref model.Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, pref)

	return nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (model.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return model.Preference{}, ErrNotFound
	}

	return r.items[idx], nil
}

func (r *memoryRepository) GetAll(_ context.Context, params gDto.QueryParams, filter model.Filter) ([]model.Preference, error) {
	r.mu.RLock()
	matched := r.match(filter)
	r.mu.RUnlock()

	sortPreferences(matched, params.SortBy, params.SortDir)

	if params.Limit <= 0 {
		return matched, nil
	}

	start := params.Offset()
	if start >= len(matched) {
		return []model.Preference{}, nil
	}

	return matched[start:min(start+params.Limit, len(matched))], nil
}

func (r *memoryRepository) Count(_ context.Context, filter model.Filter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.match(filter)), nil
}

func (r *memoryRepository) Update(_ context.Context, pref model.Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(pref.ID)
	if idx == -1 {
		return ErrNotFound
	}

	r.items[idx] = pref

	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return ErrNotFound
	}

	r.items = slices.Delete(r.items, idx, idx+1)

	return nil
}

func (r *memoryRepository) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(p model.Preference) bool {
		return p.ID == id
	})
}

// match must be called with the lock held.
func (r *memoryRepository) match(filter model.Filter) []model.Preference {
	name := strings.ToLower(filter.Name)
	email := strings.ToLower(filter.Email)

	matched := make([]model.Preference, 0, len(r.items))

	for _, p := range r.items {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}

		if email != "" && !strings.Contains(strings.ToLower(p.Email), email) {
			continue
		}

		matched = append(matched, p)
	}

	return matched
}

func sortPreferences(items []model.Preference, sortBy, sortDir string) {
	if sortBy == "" {
		return
	}

	compare := func(a, b model.Preference) int {
		switch sortBy {
		case model.FieldName:
			return cmp.Compare(a.Name, b.Name)
		case model.FieldEmail:
			return cmp.Compare(a.Email, b.Email)
		case model.FieldDateTime:
			return a.DateTime.Compare(b.DateTime)
		case constant.FieldModifiedAt:
			return a.ModifiedAt.Compare(b.ModifiedAt)
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}

	slices.SortStableFunc(items, func(a, b model.Preference) int {
		if strings.EqualFold(sortDir, gDto.SortDirDesc) {
			return compare(b, a)
		}

		return compare(a, b)
	})
}
