package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"tzform/config"
	"tzform/infras/otel"
	"tzform/infras/postgres"
	"tzform/internal/domains/preference/model"
	"tzform/shared"
	"tzform/shared/constant"
	gDto "tzform/shared/dto"
	gRepo "tzform/shared/repository"
)

var ErrNotFound = gRepo.ErrNotFound

type Preference interface {
	Insert(ctx context.Context, pref model.Preference) error
	Get(ctx context.Context, id string) (model.Preference, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter model.Filter) ([]model.Preference, error)
	Count(ctx context.Context, filter model.Filter) (int, error)
	Update(ctx context.Context, pref model.Preference) error
	Delete(ctx context.Context, id string) error
}

// New picks the store for DB_DRIVER. A nil connection means the in-memory store.
func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Preference {
	if cfg.DB.Driver != config.DBDriverPostgres || db == nil {
		return NewMemory()
	}

	return NewPostgres(db, otel)
}

type postgresRepository struct {
	gRepo.Table[model.Preference]
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Preference {
	return &postgresRepository{
		Table: gRepo.NewTable[model.Preference](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *postgresRepository) Get(ctx context.Context, id string) (model.Preference, error) {
	return r.Table.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *postgresRepository) GetAll(ctx context.Context, params gDto.QueryParams, filter model.Filter) ([]model.Preference, error) {
	return r.Table.List(ctx, params, filterGroup(filter)) //nolint:wrapcheck
}

func (r *postgresRepository) Count(ctx context.Context, filter model.Filter) (int, error) {
	return r.Table.Count(ctx, filterGroup(filter)) //nolint:wrapcheck
}

func (r *postgresRepository) Update(ctx context.Context, pref model.Preference) error {
	fields := map[string]any{
		model.FieldName:          pref.Name,
		model.FieldEmail:         pref.Email,
		model.FieldPhoneNumber:   pref.PhoneNumber,
		model.FieldDateTime:      pref.DateTime.UTC(),
		model.FieldTimeZone:      pref.TimeZone,
		constant.FieldModifiedAt: pref.ModifiedAt,
	}

	err := r.Table.Update(ctx, fields, shared.FilterByID(pref.ID, model.FieldID, model.TableName))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update preference %s: %w", pref.ID, err)
	}

	return err //nolint:wrapcheck
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	return r.Table.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func filterGroup(filter model.Filter) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if filter.Name != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    filter.Name,
			Table:    model.TableName,
		})
	}

	if filter.Email != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    filter.Email,
			Table:    model.TableName,
		})
	}

	return group
}
