package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzform/config"
	"tzform/infras/otel/mocks"
	"tzform/internal/domains/preference/model"
	"tzform/internal/domains/preference/repository"
	gDto "tzform/shared/dto"
)

func pref(id, name, email string, created time.Time) model.Preference {
	p := model.Preference{
		ID:       id,
		Name:     name,
		Email:    email,
		DateTime: created.Add(time.Hour),
	}
	p.CreatedAt = created
	p.ModifiedAt = created

	return p
}

func TestMemory_Seeded(t *testing.T) {
	repo := repository.NewMemory()

	got, err := repo.Get(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john.doe@example.com", got.Email)
	assert.Equal(t, "1234567890", got.PhoneNumber)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), got.DateTime)
	assert.Nil(t, got.TimeZone)
}

func TestMemory_CRUD(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := repository.NewMemory(pref("a", "Alice", "alice@example.com", base))

	require.NoError(t, repo.Insert(ctx, pref("b", "Bob", "bob@example.com", base.Add(time.Minute))))

	count, err := repo.Count(ctx, model.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	updated := pref("b", "Bobby", "bob@example.com", base.Add(time.Minute))
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Bobby", got.Name)

	require.NoError(t, repo.Delete(ctx, "a"))

	_, err = repo.Get(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "a"), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, pref("zzz", "", "", base)), repository.ErrNotFound)
}

func TestMemory_GetAll(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := repository.NewMemory(
		pref("1", "Charlie", "charlie@example.com", base),
		pref("2", "alice", "alice@corp.test", base.Add(time.Hour)),
		pref("3", "Bob", "bob@example.com", base.Add(2*time.Hour)),
	)

	tests := []struct {
		name    string
		params  gDto.QueryParams
		filter  model.Filter
		wantIDs []string
	}{
		{
			name:    "insertion order without sort",
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "newest first",
			params:  gDto.QueryParams{SortBy: "created_at", SortDir: "DESC"},
			wantIDs: []string{"3", "2", "1"},
		},
		{
			name:    "by name ascending",
			params:  gDto.QueryParams{SortBy: "name", SortDir: "ASC"},
			wantIDs: []string{"3", "1", "2"},
		},
		{
			name:    "email filter is case insensitive",
			filter:  model.Filter{Email: "EXAMPLE"},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "name filter",
			filter:  model.Filter{Name: "ali"},
			wantIDs: []string{"2"},
		},
		{
			name:    "second page",
			params:  gDto.QueryParams{Page: 2, Limit: 2, SortBy: "created_at", SortDir: "ASC"},
			wantIDs: []string{"3"},
		},
		{
			name:    "page past the end",
			params:  gDto.QueryParams{Page: 5, Limit: 2},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetAll(ctx, tt.params, tt.filter)
			require.NoError(t, err)

			ids := make([]string, len(got))
			for i, p := range got {
				ids[i] = p.ID
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMemory_GetAllDoesNotAlias(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	got, err := repo.GetAll(ctx, gDto.QueryParams{}, model.Filter{})
	require.NoError(t, err)

	got[0].Name = "mutated"

	stored, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", stored.Name)
}

func TestNew_SelectsMemoryWithoutConnection(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Driver = config.DBDriverPostgres

	repo := repository.New(cfg, nil, mocks.NewOtel())

	_, err := repo.Get(context.Background(), "1")
	assert.NoError(t, err)
}
